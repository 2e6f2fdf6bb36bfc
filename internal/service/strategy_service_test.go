package service

import (
	"testing"
	"time"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStrategyService(db *gorm.DB) *StrategyService {
	return NewStrategyService(
		repository.NewStrategyRepository(db),
		repository.NewTradeRepository(db),
		repository.NewJournalRepository(db),
	)
}

func seedTaggedTrade(t *testing.T, db *gorm.DB, journalID uint, tags, riskReward string) *models.Trade {
	t.Helper()
	trade := &models.Trade{
		JournalID:  journalID,
		Symbol:     "EUR/USD",
		Direction:  "long",
		EntryPrice: 1.1000,
		Size:       1,
		Status:     models.TradeStatusOpen,
		Tags:       tags,
		RiskReward: riskReward,
		RecordedAt: time.Now(),
	}
	require.NoError(t, db.Create(trade).Error)
	return trade
}

func TestCheckTradesFlagsRiskRewardViolation(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newStrategyService(db)

	_, err := svc.Create(user.ID, &CreateStrategyRequest{
		Name:  "London Breakout",
		Rules: "Enter on the break of the opening range. Risk/reward must be 1:3.",
	})
	require.NoError(t, err)

	seedTaggedTrade(t, db, journal.ID, "London Breakout, news", "1:2")
	seedTaggedTrade(t, db, journal.ID, "London Breakout", "1:3")

	messages, err := svc.CheckTrades(user.ID)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "London Breakout")
	assert.Contains(t, messages[0], "Trade #")
}

func TestCheckTradesIgnoresUntaggedTrades(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newStrategyService(db)

	_, err := svc.Create(user.ID, &CreateStrategyRequest{
		Name:  "London Breakout",
		Rules: "Risk/reward must be 1:3.",
	})
	require.NoError(t, err)

	// Tag does not mention the strategy, so the rule never applies
	seedTaggedTrade(t, db, journal.ID, "scalp", "1:1")

	messages, err := svc.CheckTrades(user.ID)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestCheckTradesPassesWhenNoCheckableRule(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newStrategyService(db)

	_, err := svc.Create(user.ID, &CreateStrategyRequest{
		Name:  "Trend Following",
		Rules: "Only trade with the daily trend.",
	})
	require.NoError(t, err)

	seedTaggedTrade(t, db, journal.ID, "Trend Following", "")

	messages, err := svc.CheckTrades(user.ID)
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestStrategyUpdateAndOwnership(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seedUserAndJournal(t, db, "USD", 10000)
	svc := newStrategyService(db)

	strategy, err := svc.Create(user.ID, &CreateStrategyRequest{
		Name:  "Scalping",
		Rules: "M1 only.",
	})
	require.NoError(t, err)

	timeframe := "M5"
	updated, err := svc.Update(strategy.ID, user.ID, &UpdateStrategyRequest{Timeframe: &timeframe})
	require.NoError(t, err)
	assert.Equal(t, "M5", updated.Timeframe)

	_, err = svc.Update(strategy.ID, user.ID+1, &UpdateStrategyRequest{Timeframe: &timeframe})
	assert.ErrorIs(t, err, ErrStrategyAccess)

	assert.ErrorIs(t, svc.Delete(strategy.ID, user.ID+1), ErrStrategyAccess)
	require.NoError(t, svc.Delete(strategy.ID, user.ID))

	strategies, err := svc.List(user.ID)
	require.NoError(t, err)
	assert.Empty(t, strategies)
}
