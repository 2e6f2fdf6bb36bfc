package worker

import (
	"context"
	"testing"
	"time"

	"github.com/NAPONYAHASINE/journal/internal/calendar"
	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubSource struct {
	events []calendar.Event
	err    error
}

func (s *stubSource) FetchEvents(ctx context.Context) ([]calendar.Event, error) {
	return s.events, s.err
}

func setupCalendarDB(t *testing.T) (*gorm.DB, *repository.CalendarRepository) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.EconomicEvent{}))
	return db, repository.NewCalendarRepository(db)
}

func TestFetchOnceStoresNewEvents(t *testing.T) {
	_, repo := setupCalendarDB(t)

	date := time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)
	source := &stubSource{events: []calendar.Event{
		{Title: "CPI Release", Date: date, Impact: "high", Currency: "USD"},
		{Title: "ECB Rate Decision", Date: date.Add(2 * time.Hour), Impact: "high", Currency: "EUR"},
	}}

	w := NewCalendarWorker(source, repo, time.Hour)
	w.fetchOnce()

	events, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestFetchOnceIsIdempotent(t *testing.T) {
	_, repo := setupCalendarDB(t)

	date := time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)
	source := &stubSource{events: []calendar.Event{
		{Title: "CPI Release", Date: date, Impact: "high", Currency: "USD"},
	}}

	w := NewCalendarWorker(source, repo, time.Hour)
	w.fetchOnce()
	w.fetchOnce()

	events, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "CPI Release", events[0].Title)
}

func TestFetchOnceSkipsUntitledEvents(t *testing.T) {
	_, repo := setupCalendarDB(t)

	source := &stubSource{events: []calendar.Event{
		{Title: "", Date: time.Now(), Impact: "low", Currency: "USD"},
	}}

	w := NewCalendarWorker(source, repo, time.Hour)
	w.fetchOnce()

	events, err := repo.ListAll()
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestSameTitleDifferentDateIsDistinct(t *testing.T) {
	_, repo := setupCalendarDB(t)

	date := time.Date(2026, 9, 1, 12, 30, 0, 0, time.UTC)
	source := &stubSource{events: []calendar.Event{
		{Title: "NFP", Date: date, Impact: "high", Currency: "USD"},
		{Title: "NFP", Date: date.AddDate(0, 1, 0), Impact: "high", Currency: "USD"},
	}}

	w := NewCalendarWorker(source, repo, time.Hour)
	w.fetchOnce()

	events, err := repo.ListAll()
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
