package service

import (
	"context"
	"testing"
	"time"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Journal{},
		&models.PlatformLink{},
		&models.Trade{},
		&models.Analysis{},
		&models.AnalysisShare{},
		&models.AnalysisShareComment{},
		&models.Group{},
		&models.GroupMember{},
		&models.GroupMessage{},
		&models.Goal{},
		&models.Notification{},
		&models.ReflectionEntry{},
		&models.Strategy{},
		&models.AssistanceMessage{},
		&models.AssistanceReply{},
		&models.InfoPost{},
		&models.EconomicEvent{},
	))
	return db
}

func seedUserAndJournal(t *testing.T, db *gorm.DB, currency string, capital float64) (*models.User, *models.Journal) {
	t.Helper()
	user := &models.User{
		FirstName:    "Ada",
		LastName:     "Trader",
		Email:        "ada@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(user).Error)

	journal := &models.Journal{
		Name:           "Main",
		InitialCapital: capital,
		Currency:       currency,
		Leverage:       30,
		UserID:         user.ID,
	}
	require.NoError(t, db.Create(journal).Error)
	return user, journal
}

func newTradeService(db *gorm.DB) *TradeService {
	return NewTradeService(
		repository.NewTradeRepository(db),
		repository.NewJournalRepository(db),
		NewStatsCache(nil),
	)
}

func ptr(v float64) *float64 { return &v }

func TestOpenTradeStaysOpenWithoutExit(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newTradeService(db)

	trade, err := svc.Open(context.Background(), journal.ID, user.ID, &OpenTradeRequest{
		EntryTime:  time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
		Symbol:     "EUR/USD",
		Direction:  "long",
		EntryPrice: 1.1000,
		Size:       1,
	})
	require.NoError(t, err)

	assert.Equal(t, models.TradeStatusOpen, trade.Status)
	assert.Nil(t, trade.Result)
	assert.Nil(t, trade.ResultPercentage)
	assert.Nil(t, trade.ExitTime)
}

func TestOpenTradeWithExitClosesAndValues(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newTradeService(db)

	entry := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	exit := entry.Add(2 * time.Hour)
	trade, err := svc.Open(context.Background(), journal.ID, user.ID, &OpenTradeRequest{
		EntryTime:  entry,
		ExitTime:   &exit,
		Symbol:     "EUR/USD",
		Direction:  "long",
		EntryPrice: 1.1000,
		ExitPrice:  ptr(1.1050),
		Size:       1,
	})
	require.NoError(t, err)

	// 50 pips * 1 lot * 10 USD per pip = 500 USD
	assert.Equal(t, models.TradeStatusClosed, trade.Status)
	require.NotNil(t, trade.Result)
	assert.InDelta(t, 500.0, *trade.Result, 1e-9)
	require.NotNil(t, trade.ResultPercentage)
	assert.InDelta(t, 5.0, *trade.ResultPercentage, 1e-9)
}

func TestCloseTradeConvertsToJournalCurrency(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newTradeService(db)

	entry := time.Date(2026, 3, 3, 14, 0, 0, 0, time.UTC)
	trade, err := svc.Open(context.Background(), journal.ID, user.ID, &OpenTradeRequest{
		EntryTime:  entry,
		Symbol:     "USD/JPY",
		Direction:  "short",
		EntryPrice: 145.00,
		Size:       1,
	})
	require.NoError(t, err)

	closed, err := svc.Close(context.Background(), trade.ID, user.ID, &CloseTradeRequest{
		ExitTime:  entry.Add(time.Hour),
		ExitPrice: 144.50,
	})
	require.NoError(t, err)

	// short: (145.00 - 144.50) / 0.01 = 50 pips, 50 * 1 * 1000 = 50000 JPY,
	// 50000 JPY * 0.007 = 350 USD
	require.NotNil(t, closed.Result)
	assert.InDelta(t, 350.0, *closed.Result, 1e-9)
	assert.Equal(t, models.TradeStatusClosed, closed.Status)
	require.NotNil(t, closed.ExitTime)
	require.NotNil(t, closed.ExitPrice)
}

func TestCloseTradeTwiceFails(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newTradeService(db)

	entry := time.Now().UTC().Truncate(time.Second)
	trade, err := svc.Open(context.Background(), journal.ID, user.ID, &OpenTradeRequest{
		EntryTime:  entry,
		Symbol:     "AAPL",
		Direction:  "long",
		EntryPrice: 150,
		Size:       10,
	})
	require.NoError(t, err)

	_, err = svc.Close(context.Background(), trade.ID, user.ID, &CloseTradeRequest{
		ExitTime:  entry.Add(time.Hour),
		ExitPrice: 155,
	})
	require.NoError(t, err)

	_, err = svc.Close(context.Background(), trade.ID, user.ID, &CloseTradeRequest{
		ExitTime:  entry.Add(2 * time.Hour),
		ExitPrice: 160,
	})
	assert.ErrorIs(t, err, ErrTradeClosed)
}

func TestEditTradeRevalues(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newTradeService(db)

	entry := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	exit := entry.Add(time.Hour)
	trade, err := svc.Open(context.Background(), journal.ID, user.ID, &OpenTradeRequest{
		EntryTime:  entry,
		ExitTime:   &exit,
		Symbol:     "AAPL",
		Direction:  "long",
		EntryPrice: 150,
		ExitPrice:  ptr(155),
		Size:       10,
	})
	require.NoError(t, err)
	require.NotNil(t, trade.Result)
	assert.InDelta(t, 50.0, *trade.Result, 1e-9)

	edited, err := svc.Edit(context.Background(), trade.ID, user.ID, &EditTradeRequest{
		ExitPrice: ptr(145),
	})
	require.NoError(t, err)
	require.NotNil(t, edited.Result)
	assert.InDelta(t, -50.0, *edited.Result, 1e-9)
	assert.Equal(t, models.TradeStatusClosed, edited.Status)
}

func TestTradeOwnershipEnforced(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newTradeService(db)

	other := &models.User{FirstName: "Eve", LastName: "Other", Email: "eve@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(other).Error)

	trade, err := svc.Open(context.Background(), journal.ID, user.ID, &OpenTradeRequest{
		EntryTime:  time.Now().UTC(),
		Symbol:     "GOLD",
		Direction:  "long",
		EntryPrice: 2400,
		Size:       1,
	})
	require.NoError(t, err)

	_, err = svc.Get(trade.ID, other.ID)
	assert.ErrorIs(t, err, ErrTradeAccess)

	err = svc.Delete(context.Background(), trade.ID, other.ID)
	assert.ErrorIs(t, err, ErrTradeAccess)

	_, err = svc.Open(context.Background(), journal.ID, other.ID, &OpenTradeRequest{
		EntryTime:  time.Now().UTC(),
		Symbol:     "GOLD",
		Direction:  "long",
		EntryPrice: 2400,
		Size:       1,
	})
	assert.ErrorIs(t, err, ErrJournalAccess)
}

func TestOpenTradeValidation(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newTradeService(db)

	entry := time.Now().UTC()

	_, err := svc.Open(context.Background(), journal.ID, user.ID, &OpenTradeRequest{
		EntryTime: entry, Symbol: "AAPL", Direction: "sideways", EntryPrice: 1, Size: 1,
	})
	assert.ErrorIs(t, err, ErrInvalidDirection)

	_, err = svc.Open(context.Background(), journal.ID, user.ID, &OpenTradeRequest{
		EntryTime: entry, Symbol: "AAPL", Direction: "long", EntryPrice: -1, Size: 1,
	})
	assert.ErrorIs(t, err, ErrInvalidEntryPrice)

	before := entry.Add(-time.Hour)
	_, err = svc.Open(context.Background(), journal.ID, user.ID, &OpenTradeRequest{
		EntryTime: entry, ExitTime: &before, Symbol: "AAPL", Direction: "long",
		EntryPrice: 1, ExitPrice: ptr(2), Size: 1,
	})
	assert.ErrorIs(t, err, ErrExitBeforeEntry)
}

func TestFuturesTradeIgnoresSize(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "EUR", 10000)
	svc := newTradeService(db)

	entry := time.Date(2026, 5, 5, 8, 0, 0, 0, time.UTC)
	exit := entry.Add(time.Hour)
	trade, err := svc.Open(context.Background(), journal.ID, user.ID, &OpenTradeRequest{
		EntryTime:  entry,
		ExitTime:   &exit,
		Symbol:     "CAC40",
		Direction:  "long",
		EntryPrice: 8000,
		ExitPrice:  ptr(8010),
		Size:       99,
	})
	require.NoError(t, err)

	// 10 points * 10 contracts * 10 EUR per point = 1000 EUR, size ignored
	require.NotNil(t, trade.Result)
	assert.InDelta(t, 1000.0, *trade.Result, 1e-9)
}

func TestOpenRejectsLoneExitField(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newTradeService(db)
	ctx := context.Background()

	entry := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	exit := entry.Add(2 * time.Hour)

	// Exit price without exit time
	_, err := svc.Open(ctx, journal.ID, user.ID, &OpenTradeRequest{
		EntryTime:  entry,
		Symbol:     "EUR/USD",
		Direction:  "long",
		EntryPrice: 1.1000,
		ExitPrice:  ptr(1.1050),
		Size:       1,
	})
	assert.ErrorIs(t, err, ErrExitIncomplete)

	// Exit time without exit price
	_, err = svc.Open(ctx, journal.ID, user.ID, &OpenTradeRequest{
		EntryTime:  entry,
		ExitTime:   &exit,
		Symbol:     "EUR/USD",
		Direction:  "long",
		EntryPrice: 1.1000,
		Size:       1,
	})
	assert.ErrorIs(t, err, ErrExitIncomplete)
}
