package service

import (
	"context"
	"errors"
	"time"

	"github.com/NAPONYAHASINE/journal/internal/market"
	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
)

var (
	ErrTradeAccess       = errors.New("trade not found or not owned by user")
	ErrTradeClosed       = errors.New("trade is already closed")
	ErrInvalidDirection  = errors.New("direction must be long or short")
	ErrInvalidEntryPrice = errors.New("entry price must be positive")
	ErrInvalidExitPrice  = errors.New("exit price must be positive")
	ErrInvalidSize       = errors.New("size must be positive")
	ErrExitBeforeEntry   = errors.New("exit time must not precede entry time")
	ErrExitIncomplete    = errors.New("exit time and exit price must be supplied together")
)

// TradeService handles the trade lifecycle. Every state that yields a result
// goes through the same valuation pipeline: raw result in the instrument's
// settlement currency, conversion into the journal currency, then percentage
// of initial capital.
type TradeService struct {
	tradeRepo   *repository.TradeRepository
	journalRepo *repository.JournalRepository
	cache       *StatsCache
}

// NewTradeService creates a new TradeService
func NewTradeService(tradeRepo *repository.TradeRepository, journalRepo *repository.JournalRepository, cache *StatsCache) *TradeService {
	return &TradeService{
		tradeRepo:   tradeRepo,
		journalRepo: journalRepo,
		cache:       cache,
	}
}

// OpenTradeRequest represents the trade entry request. Exit fields may be
// supplied to log an already-finished trade in one call.
type OpenTradeRequest struct {
	EntryTime  time.Time  `json:"entry_time" binding:"required"`
	ExitTime   *time.Time `json:"exit_time"`
	Session    string     `json:"session" binding:"omitempty,max=50"`
	Symbol     string     `json:"symbol" binding:"required,min=1,max=50"`
	Direction  string     `json:"direction" binding:"required"`
	EntryPrice float64    `json:"entry_price" binding:"required"`
	ExitPrice  *float64   `json:"exit_price"`
	Size       float64    `json:"size" binding:"required"`
	RiskReward string     `json:"risk_reward" binding:"omitempty,max=10"`
	TimeFrame  string     `json:"time_frame" binding:"omitempty,max=50"`
	Notes      string     `json:"notes" binding:"omitempty,max=50000"`
	Screenshot string     `json:"screenshot" binding:"omitempty,max=200"`
	Tags       string     `json:"tags" binding:"omitempty,max=200"`
}

// CloseTradeRequest represents the trade exit request
type CloseTradeRequest struct {
	ExitTime  time.Time `json:"exit_time" binding:"required"`
	ExitPrice float64   `json:"exit_price" binding:"required"`
}

// EditTradeRequest represents trade edit fields, all optional. Changing any
// pricing field re-runs valuation.
type EditTradeRequest struct {
	EntryTime  *time.Time `json:"entry_time"`
	ExitTime   *time.Time `json:"exit_time"`
	Session    *string    `json:"session" binding:"omitempty,max=50"`
	Symbol     *string    `json:"symbol" binding:"omitempty,min=1,max=50"`
	Direction  *string    `json:"direction"`
	EntryPrice *float64   `json:"entry_price"`
	ExitPrice  *float64   `json:"exit_price"`
	Size       *float64   `json:"size"`
	RiskReward *string    `json:"risk_reward" binding:"omitempty,max=10"`
	TimeFrame  *string    `json:"time_frame" binding:"omitempty,max=50"`
	Notes      *string    `json:"notes" binding:"omitempty,max=50000"`
	Screenshot *string    `json:"screenshot" binding:"omitempty,max=200"`
	Tags       *string    `json:"tags" binding:"omitempty,max=200"`
}

// Open logs a trade in a journal. The trade is stored OPEN unless both exit
// time and exit price are present, in which case it is valued and stored
// CLOSED immediately. A lone exit field is rejected.
func (s *TradeService) Open(ctx context.Context, journalID, userID uint, req *OpenTradeRequest) (*models.Trade, error) {
	journal, err := s.journalRepo.GetForUser(journalID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrJournalNotFound) {
			return nil, ErrJournalAccess
		}
		return nil, err
	}

	dir := market.Direction(req.Direction)
	if !dir.Valid() {
		return nil, ErrInvalidDirection
	}
	if req.EntryPrice <= 0 {
		return nil, ErrInvalidEntryPrice
	}
	if req.Size <= 0 {
		return nil, ErrInvalidSize
	}
	if req.ExitPrice != nil && *req.ExitPrice <= 0 {
		return nil, ErrInvalidExitPrice
	}
	if req.ExitTime != nil && req.ExitTime.Before(req.EntryTime) {
		return nil, ErrExitBeforeEntry
	}
	if (req.ExitTime == nil) != (req.ExitPrice == nil) {
		return nil, ErrExitIncomplete
	}

	trade := &models.Trade{
		JournalID:  journalID,
		EntryTime:  req.EntryTime,
		Session:    req.Session,
		Symbol:     req.Symbol,
		Direction:  dir,
		EntryPrice: req.EntryPrice,
		Size:       req.Size,
		RiskReward: req.RiskReward,
		TimeFrame:  req.TimeFrame,
		Notes:      req.Notes,
		Screenshot: req.Screenshot,
		Tags:       req.Tags,
		Status:     models.TradeStatusOpen,
		RecordedAt: time.Now(),
	}

	if req.ExitTime != nil && req.ExitPrice != nil {
		trade.ExitTime = req.ExitTime
		trade.ExitPrice = req.ExitPrice
		s.value(trade, journal)
		trade.Status = models.TradeStatusClosed
	}

	if err := s.tradeRepo.Create(trade); err != nil {
		return nil, err
	}

	s.cache.InvalidateUser(ctx, userID)
	return trade, nil
}

// Close records a trade's exit and values it. A trade closes exactly once.
func (s *TradeService) Close(ctx context.Context, tradeID, userID uint, req *CloseTradeRequest) (*models.Trade, error) {
	trade, journal, err := s.getOwned(tradeID, userID)
	if err != nil {
		return nil, err
	}
	if trade.IsClosed() {
		return nil, ErrTradeClosed
	}
	if req.ExitPrice <= 0 {
		return nil, ErrInvalidExitPrice
	}
	if req.ExitTime.Before(trade.EntryTime) {
		return nil, ErrExitBeforeEntry
	}

	trade.ExitTime = &req.ExitTime
	trade.ExitPrice = &req.ExitPrice
	s.value(trade, journal)
	trade.Status = models.TradeStatusClosed

	if err := s.tradeRepo.Update(trade); err != nil {
		return nil, err
	}

	s.cache.InvalidateUser(ctx, userID)
	return trade, nil
}

// Edit applies partial changes to a trade. When a pricing field changes on a
// trade that has exit data, the result is recomputed from scratch.
func (s *TradeService) Edit(ctx context.Context, tradeID, userID uint, req *EditTradeRequest) (*models.Trade, error) {
	trade, journal, err := s.getOwned(tradeID, userID)
	if err != nil {
		return nil, err
	}

	if req.Direction != nil {
		dir := market.Direction(*req.Direction)
		if !dir.Valid() {
			return nil, ErrInvalidDirection
		}
		trade.Direction = dir
	}
	if req.EntryPrice != nil {
		if *req.EntryPrice <= 0 {
			return nil, ErrInvalidEntryPrice
		}
		trade.EntryPrice = *req.EntryPrice
	}
	if req.ExitPrice != nil {
		if *req.ExitPrice <= 0 {
			return nil, ErrInvalidExitPrice
		}
		trade.ExitPrice = req.ExitPrice
	}
	if req.Size != nil {
		if *req.Size <= 0 {
			return nil, ErrInvalidSize
		}
		trade.Size = *req.Size
	}
	if req.EntryTime != nil {
		trade.EntryTime = *req.EntryTime
	}
	if req.ExitTime != nil {
		trade.ExitTime = req.ExitTime
	}
	if trade.ExitTime != nil && trade.ExitTime.Before(trade.EntryTime) {
		return nil, ErrExitBeforeEntry
	}
	if req.Session != nil {
		trade.Session = *req.Session
	}
	if req.Symbol != nil {
		trade.Symbol = *req.Symbol
	}
	if req.RiskReward != nil {
		trade.RiskReward = *req.RiskReward
	}
	if req.TimeFrame != nil {
		trade.TimeFrame = *req.TimeFrame
	}
	if req.Notes != nil {
		trade.Notes = *req.Notes
	}
	if req.Screenshot != nil {
		trade.Screenshot = *req.Screenshot
	}
	if req.Tags != nil {
		trade.Tags = *req.Tags
	}

	// Revalue from current fields. A trade without exit data stays OPEN
	// with no result.
	s.value(trade, journal)
	if trade.ExitTime != nil && trade.ExitPrice != nil {
		trade.Status = models.TradeStatusClosed
	} else {
		trade.Status = models.TradeStatusOpen
		trade.Result = nil
		trade.ResultPercentage = nil
	}

	if err := s.tradeRepo.Update(trade); err != nil {
		return nil, err
	}

	s.cache.InvalidateUser(ctx, userID)
	return trade, nil
}

// Delete removes a trade owned by the user
func (s *TradeService) Delete(ctx context.Context, tradeID, userID uint) error {
	trade, _, err := s.getOwned(tradeID, userID)
	if err != nil {
		return err
	}
	if err := s.tradeRepo.Delete(trade); err != nil {
		return err
	}
	s.cache.InvalidateUser(ctx, userID)
	return nil
}

// Get retrieves a trade owned by the user
func (s *TradeService) Get(tradeID, userID uint) (*models.Trade, error) {
	trade, _, err := s.getOwned(tradeID, userID)
	return trade, err
}

// List retrieves the trades of a journal owned by the user, oldest first
func (s *TradeService) List(journalID, userID uint) ([]models.Trade, error) {
	if _, err := s.journalRepo.GetForUser(journalID, userID); err != nil {
		if errors.Is(err, repository.ErrJournalNotFound) {
			return nil, ErrJournalAccess
		}
		return nil, err
	}
	return s.tradeRepo.ListByJournal(journalID)
}

// ListByStatus retrieves the trades of a journal filtered by lifecycle status
func (s *TradeService) ListByStatus(journalID, userID uint, status models.TradeStatus) ([]models.Trade, error) {
	if _, err := s.journalRepo.GetForUser(journalID, userID); err != nil {
		if errors.Is(err, repository.ErrJournalNotFound) {
			return nil, ErrJournalAccess
		}
		return nil, err
	}
	return s.tradeRepo.ListByJournalAndStatus(journalID, status)
}

// value computes the trade's result in the journal currency and its
// percentage of initial capital. With no exit price both stay nil.
func (s *TradeService) value(trade *models.Trade, journal *models.Journal) {
	inst, ok := market.Resolve(trade.Symbol)
	if !ok {
		inst = market.Unclassified(trade.Symbol)
	}

	raw := market.ValueTrade(inst, journal.Currency, trade.Direction, trade.EntryPrice, trade.ExitPrice, trade.Size)
	if raw == nil {
		trade.Result = nil
		trade.ResultPercentage = nil
		return
	}

	converted := market.Convert(raw.Amount, raw.Currency, journal.Currency)
	pct := market.Percentage(converted, journal.InitialCapital)
	trade.Result = &converted
	trade.ResultPercentage = &pct
}

// getOwned loads a trade and proves the caller owns its journal
func (s *TradeService) getOwned(tradeID, userID uint) (*models.Trade, *models.Journal, error) {
	trade, err := s.tradeRepo.GetByID(tradeID)
	if err != nil {
		if errors.Is(err, repository.ErrTradeNotFound) {
			return nil, nil, ErrTradeAccess
		}
		return nil, nil, err
	}

	journal, err := s.journalRepo.GetForUser(trade.JournalID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrJournalNotFound) {
			return nil, nil, ErrTradeAccess
		}
		return nil, nil, err
	}
	return trade, journal, nil
}
