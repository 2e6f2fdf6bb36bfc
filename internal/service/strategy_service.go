package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
)

var ErrStrategyAccess = errors.New("strategy not found or not owned by user")

// StrategyService handles trading strategies and checks logged trades
// against them
type StrategyService struct {
	strategyRepo *repository.StrategyRepository
	tradeRepo    *repository.TradeRepository
	journalRepo  *repository.JournalRepository
}

// NewStrategyService creates a new StrategyService
func NewStrategyService(strategyRepo *repository.StrategyRepository, tradeRepo *repository.TradeRepository, journalRepo *repository.JournalRepository) *StrategyService {
	return &StrategyService{
		strategyRepo: strategyRepo,
		tradeRepo:    tradeRepo,
		journalRepo:  journalRepo,
	}
}

// CreateStrategyRequest represents the strategy creation request
type CreateStrategyRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=100"`
	Description string   `json:"description" binding:"omitempty,max=1000"`
	Rules       string   `json:"rules" binding:"required,max=50000"`
	Type        string   `json:"type" binding:"omitempty,max=50"`
	Instruments string   `json:"instruments" binding:"omitempty,max=1000"`
	Timeframe   string   `json:"timeframe" binding:"omitempty,max=20"`
	EntryType   string   `json:"entry_type" binding:"omitempty,max=20"`
	ExitType    string   `json:"exit_type" binding:"omitempty,max=1000"`
	Indicators  string   `json:"indicators" binding:"omitempty,max=1000"`
	Risk        string   `json:"risk" binding:"omitempty,max=20"`
	MaxLoss     *float64 `json:"max_loss"`
}

// UpdateStrategyRequest represents strategy update fields, all optional
type UpdateStrategyRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string  `json:"description" binding:"omitempty,max=1000"`
	Rules       *string  `json:"rules" binding:"omitempty,max=50000"`
	Type        *string  `json:"type" binding:"omitempty,max=50"`
	Instruments *string  `json:"instruments" binding:"omitempty,max=1000"`
	Timeframe   *string  `json:"timeframe" binding:"omitempty,max=20"`
	EntryType   *string  `json:"entry_type" binding:"omitempty,max=20"`
	ExitType    *string  `json:"exit_type" binding:"omitempty,max=1000"`
	Indicators  *string  `json:"indicators" binding:"omitempty,max=1000"`
	Risk        *string  `json:"risk" binding:"omitempty,max=20"`
	MaxLoss     *float64 `json:"max_loss"`
}

// Create creates a strategy for a user
func (s *StrategyService) Create(userID uint, req *CreateStrategyRequest) (*models.Strategy, error) {
	strategy := &models.Strategy{
		Name:        req.Name,
		Description: req.Description,
		Rules:       req.Rules,
		UserID:      userID,
		Type:        req.Type,
		Instruments: req.Instruments,
		Timeframe:   req.Timeframe,
		EntryType:   req.EntryType,
		ExitType:    req.ExitType,
		Indicators:  req.Indicators,
		Risk:        req.Risk,
		MaxLoss:     req.MaxLoss,
	}
	if err := s.strategyRepo.Create(strategy); err != nil {
		return nil, err
	}
	return strategy, nil
}

// List retrieves all strategies of a user, newest first
func (s *StrategyService) List(userID uint) ([]models.Strategy, error) {
	return s.strategyRepo.ListByUser(userID)
}

// Update applies partial changes to a strategy owned by the user
func (s *StrategyService) Update(id, userID uint, req *UpdateStrategyRequest) (*models.Strategy, error) {
	strategy, err := s.strategyRepo.GetForUser(id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrStrategyNotFound) {
			return nil, ErrStrategyAccess
		}
		return nil, err
	}

	if req.Name != nil {
		strategy.Name = *req.Name
	}
	if req.Description != nil {
		strategy.Description = *req.Description
	}
	if req.Rules != nil {
		strategy.Rules = *req.Rules
	}
	if req.Type != nil {
		strategy.Type = *req.Type
	}
	if req.Instruments != nil {
		strategy.Instruments = *req.Instruments
	}
	if req.Timeframe != nil {
		strategy.Timeframe = *req.Timeframe
	}
	if req.EntryType != nil {
		strategy.EntryType = *req.EntryType
	}
	if req.ExitType != nil {
		strategy.ExitType = *req.ExitType
	}
	if req.Indicators != nil {
		strategy.Indicators = *req.Indicators
	}
	if req.Risk != nil {
		strategy.Risk = *req.Risk
	}
	if req.MaxLoss != nil {
		strategy.MaxLoss = req.MaxLoss
	}

	if err := s.strategyRepo.Update(strategy); err != nil {
		return nil, err
	}
	return strategy, nil
}

// Delete removes a strategy owned by the user
func (s *StrategyService) Delete(id, userID uint) error {
	strategy, err := s.strategyRepo.GetForUser(id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrStrategyNotFound) {
			return ErrStrategyAccess
		}
		return err
	}
	return s.strategyRepo.Delete(strategy)
}

// CheckTrades matches every trade of the user against every strategy whose
// name appears in the trade's tags, and reports the violations found
func (s *StrategyService) CheckTrades(userID uint) ([]string, error) {
	journals, err := s.journalRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	strategies, err := s.strategyRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	var messages []string
	for i := range journals {
		trades, err := s.tradeRepo.ListByJournal(journals[i].ID)
		if err != nil {
			return nil, err
		}
		for j := range trades {
			trade := &trades[j]
			for k := range strategies {
				strategy := &strategies[k]
				if !strings.Contains(trade.Tags, strategy.Name) {
					continue
				}
				if !tradeFollowsStrategy(trade, strategy) {
					messages = append(messages, fmt.Sprintf(
						"Trade #%d does not follow strategy '%s'.",
						trade.ID, strategy.Name))
				}
			}
		}
	}
	return messages, nil
}

// tradeFollowsStrategy verifies a trade against a strategy's rules. Only the
// risk/reward rule is machine-checkable; everything else passes.
func tradeFollowsStrategy(trade *models.Trade, strategy *models.Strategy) bool {
	rules := strings.ToLower(strategy.Rules)
	if strings.Contains(rules, "risk/reward") && strings.Contains(rules, "1:3") {
		return trade.RiskReward == "1:3"
	}
	return true
}
