package worker

import (
	"context"
	"log"
	"time"

	"github.com/NAPONYAHASINE/journal/internal/calendar"
	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
)

// EventSource is the subset of the calendar client the worker needs
type EventSource interface {
	FetchEvents(ctx context.Context) ([]calendar.Event, error)
}

// CalendarWorker periodically pulls economic events and appends the ones
// not stored yet. Rows are keyed by (title, date); existing rows are never
// touched.
type CalendarWorker struct {
	source       EventSource
	calendarRepo *repository.CalendarRepository
	interval     time.Duration
	stopChan     chan struct{}
}

// NewCalendarWorker creates a new economic calendar worker
func NewCalendarWorker(source EventSource, calendarRepo *repository.CalendarRepository, interval time.Duration) *CalendarWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &CalendarWorker{
		source:       source,
		calendarRepo: calendarRepo,
		interval:     interval,
		stopChan:     make(chan struct{}),
	}
}

// Start begins the fetch loop. It fetches once immediately, then on every
// tick until Stop is called.
func (w *CalendarWorker) Start() {
	log.Printf("Calendar worker started with interval: %v", w.interval)

	w.fetchOnce()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.fetchOnce()
		case <-w.stopChan:
			log.Println("Calendar worker stopped")
			return
		}
	}
}

// Stop stops the fetch loop
func (w *CalendarWorker) Stop() {
	close(w.stopChan)
}

// fetchOnce pulls the upcoming events and stores the new ones
func (w *CalendarWorker) fetchOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	events, err := w.source.FetchEvents(ctx)
	if err != nil {
		log.Printf("Calendar worker: fetch failed: %v", err)
		return
	}

	inserted := 0
	for _, e := range events {
		if e.Title == "" {
			continue
		}
		created, err := w.calendarRepo.CreateIfAbsent(&models.EconomicEvent{
			Date:        e.Date,
			Title:       e.Title,
			Impact:      e.Impact,
			Currency:    e.Currency,
			Description: e.Description,
		})
		if err != nil {
			log.Printf("Calendar worker: failed to store event %q: %v", e.Title, err)
			continue
		}
		if created {
			inserted++
		}
	}

	if inserted > 0 {
		log.Printf("Calendar worker: stored %d new events", inserted)
	}
}
