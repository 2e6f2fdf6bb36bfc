package service

import (
	"context"
	"testing"
	"time"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStatsService(db *gorm.DB) *StatsService {
	return NewStatsService(
		repository.NewTradeRepository(db),
		repository.NewUserRepository(db),
		repository.NewJournalRepository(db),
		NewStatsCache(nil),
	)
}

func seedClosedTrade(t *testing.T, db *gorm.DB, journalID uint, symbol, tags string, entry time.Time, result float64) {
	t.Helper()
	exit := entry.Add(time.Hour)
	exitPrice := 1.0
	trade := &models.Trade{
		JournalID:  journalID,
		EntryTime:  entry,
		ExitTime:   &exit,
		Symbol:     symbol,
		Direction:  "long",
		EntryPrice: 1.0,
		ExitPrice:  &exitPrice,
		Size:       1,
		Result:     &result,
		Status:     models.TradeStatusClosed,
		Tags:       tags,
		RecordedAt: entry,
	}
	require.NoError(t, db.Create(trade).Error)
}

func TestDashboardTotalsAndWinRate(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newStatsService(db)

	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	seedClosedTrade(t, db, journal.ID, "EUR/USD", "", base, 500)
	seedClosedTrade(t, db, journal.ID, "EUR/USD", "", base.Add(time.Hour), -200)
	seedClosedTrade(t, db, journal.ID, "AAPL", "", base.Add(2*time.Hour), 100)
	seedClosedTrade(t, db, journal.ID, "AAPL", "", base.Add(3*time.Hour), -100)

	d, err := svc.GetDashboard(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, 4, d.TotalTrades)
	assert.InDelta(t, 600.0, d.TotalGains, 1e-9)
	assert.InDelta(t, 300.0, d.TotalLosses, 1e-9)
	assert.InDelta(t, 50.0, d.WinRate, 1e-9)
}

func TestDashboardEmptyHasZeroWinRate(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seedUserAndJournal(t, db, "USD", 10000)
	svc := newStatsService(db)

	d, err := svc.GetDashboard(context.Background(), user.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, d.TotalTrades)
	assert.Zero(t, d.WinRate)
}

func TestBySymbolGroupsAndCountsWins(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newStatsService(db)

	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	seedClosedTrade(t, db, journal.ID, "EUR/USD", "", base, 500)
	seedClosedTrade(t, db, journal.ID, "EUR/USD", "", base, -250)
	seedClosedTrade(t, db, journal.ID, "GOLD", "", base, 300)

	stats, err := svc.BySymbol(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Sorted by symbol
	assert.Equal(t, "EUR/USD", stats[0].Symbol)
	assert.Equal(t, 2, stats[0].TradeCount)
	assert.InDelta(t, 250.0, stats[0].Total, 1e-9)
	assert.InDelta(t, 50.0, stats[0].WinRate, 1e-9)

	assert.Equal(t, "GOLD", stats[1].Symbol)
	assert.InDelta(t, 100.0, stats[1].WinRate, 1e-9)
}

func TestByTagFansOutMultiTagTrades(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newStatsService(db)

	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	seedClosedTrade(t, db, journal.ID, "EUR/USD", "breakout, london", base, 400)
	seedClosedTrade(t, db, journal.ID, "EUR/USD", "breakout", base, -100)
	seedClosedTrade(t, db, journal.ID, "AAPL", " , ", base, 50) // only empty tags

	stats, err := svc.ByTag(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "breakout", stats[0].Tag)
	assert.Equal(t, 2, stats[0].TradeCount)
	assert.InDelta(t, 300.0, stats[0].Total, 1e-9)

	assert.Equal(t, "london", stats[1].Tag)
	assert.Equal(t, 1, stats[1].TradeCount)
	assert.InDelta(t, 400.0, stats[1].Total, 1e-9)
}

func TestByHourBucketsOnEntryHour(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newStatsService(db)

	seedClosedTrade(t, db, journal.ID, "EUR/USD", "",
		time.Date(2026, 6, 1, 9, 5, 0, 0, time.UTC), 100)
	seedClosedTrade(t, db, journal.ID, "EUR/USD", "",
		time.Date(2026, 6, 2, 9, 55, 0, 0, time.UTC), 200)
	seedClosedTrade(t, db, journal.ID, "EUR/USD", "",
		time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC), -50)

	stats, err := svc.ByHour(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "09:00", stats[0].Hour)
	assert.Equal(t, 2, stats[0].TradeCount)
	assert.InDelta(t, 300.0, stats[0].Total, 1e-9)

	assert.Equal(t, "15:00", stats[1].Hour)
	assert.Equal(t, 1, stats[1].TradeCount)
}

func TestByMonthBucketsOnEntryMonth(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newStatsService(db)

	seedClosedTrade(t, db, journal.ID, "EUR/USD", "",
		time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC), 100)
	seedClosedTrade(t, db, journal.ID, "EUR/USD", "",
		time.Date(2026, 6, 20, 9, 0, 0, 0, time.UTC), -40)
	seedClosedTrade(t, db, journal.ID, "EUR/USD", "",
		time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC), 75)

	stats, err := svc.ByMonth(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "2026-06", stats[0].Month)
	assert.Equal(t, 2, stats[0].TradeCount)
	assert.InDelta(t, 60.0, stats[0].Gains, 1e-9)

	assert.Equal(t, "2026-07", stats[1].Month)
	assert.InDelta(t, 75.0, stats[1].Gains, 1e-9)
}

func seedJournal(t *testing.T, db *gorm.DB, userID uint, currency string, capital float64) *models.Journal {
	t.Helper()
	journal := &models.Journal{
		Name:           currency + " book",
		InitialCapital: capital,
		Currency:       currency,
		Leverage:       30,
		UserID:         userID,
	}
	require.NoError(t, db.Create(journal).Error)
	return journal
}

func TestJournalDashboardScopesToOneJournal(t *testing.T) {
	db := setupTestDB(t)
	user, usdJournal := seedUserAndJournal(t, db, "USD", 10000)
	eurJournal := seedJournal(t, db, user.ID, "EUR", 10000)

	trades := newTradeService(db)
	stats := newStatsService(db)
	ctx := context.Background()

	// The same 50-pip EUR/USD long in both journals: 500 USD raw, which the
	// EUR journal converts to 455 EUR
	exit := time.Date(2026, 6, 1, 11, 0, 0, 0, time.UTC)
	for _, j := range []*models.Journal{usdJournal, eurJournal} {
		_, err := trades.Open(ctx, j.ID, user.ID, &OpenTradeRequest{
			EntryTime:  time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
			ExitTime:   &exit,
			Symbol:     "EUR/USD",
			Direction:  "long",
			EntryPrice: 1.1000,
			ExitPrice:  ptr(1.1050),
			Size:       1,
		})
		require.NoError(t, err)
	}

	usd, err := stats.JournalDashboard(ctx, usdJournal.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, usd.TotalTrades)
	assert.InDelta(t, 500.0, usd.TotalGains, 1e-6)

	eur, err := stats.JournalDashboard(ctx, eurJournal.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, eur.TotalTrades)
	assert.InDelta(t, 455.0, eur.TotalGains, 1e-6)

	// The user rollup counts both but never replaces the per-journal views
	rollup, err := stats.GetDashboard(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, rollup.TotalTrades)
}

func TestJournalBySymbolSeesOnlyThatJournal(t *testing.T) {
	db := setupTestDB(t)
	user, usdJournal := seedUserAndJournal(t, db, "USD", 10000)
	eurJournal := seedJournal(t, db, user.ID, "EUR", 10000)
	svc := newStatsService(db)

	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	seedClosedTrade(t, db, usdJournal.ID, "EUR/USD", "", base, 500)
	seedClosedTrade(t, db, eurJournal.ID, "GOLD", "", base, 300)

	stats, err := svc.JournalBySymbol(context.Background(), usdJournal.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "EUR/USD", stats[0].Symbol)
}

func TestJournalStatsRequireOwnership(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newStatsService(db)

	_, err := svc.JournalDashboard(context.Background(), journal.ID, user.ID+1)
	assert.ErrorIs(t, err, ErrJournalAccess)

	_, err = svc.JournalByTag(context.Background(), journal.ID, user.ID+1)
	assert.ErrorIs(t, err, ErrJournalAccess)
}

func TestRankingScoresParticipantsOnly(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newStatsService(db)

	require.NoError(t, db.Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("participate", true).Error)

	// Non-participating user is excluded even with better results
	other := &models.User{FirstName: "Eve", LastName: "Quiet", Email: "eve@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(other).Error)

	base := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	seedClosedTrade(t, db, journal.ID, "EUR/USD", "", base, 300)
	seedClosedTrade(t, db, journal.ID, "EUR/USD", "", base, -100)

	entries, err := svc.Ranking(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, user.ID, entries[0].UserID)
	assert.Equal(t, "Ada Trader", entries[0].Name)
	// 300 / (300 + 100) * 100
	assert.InDelta(t, 75.0, entries[0].Score, 1e-9)
}

func TestOpenTradesExcludedFromStats(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newStatsService(db)

	open := &models.Trade{
		JournalID:  journal.ID,
		EntryTime:  time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC),
		Symbol:     "EUR/USD",
		Direction:  "long",
		EntryPrice: 1.1,
		Size:       1,
		Status:     models.TradeStatusOpen,
		RecordedAt: time.Now(),
	}
	require.NoError(t, db.Create(open).Error)

	d, err := svc.GetDashboard(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, d.TotalTrades)
}
