package service

import (
	"errors"
	"fmt"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
)

var (
	ErrGoalAccess    = errors.New("goal not found or not owned by user")
	ErrInvalidTarget = errors.New("target value must be positive")
)

const (
	// nearCompletionThreshold is the progress percentage at which the user
	// is alerted once per goal title.
	nearCompletionThreshold = 90

	nearCompletionAlert = "Your goal '%s' is close to completion!"
)

// GoalService handles goal tracking and near-completion alerts
type GoalService struct {
	goalRepo      *repository.GoalRepository
	notifications *NotificationService
}

// NewGoalService creates a new GoalService
func NewGoalService(goalRepo *repository.GoalRepository, notifications *NotificationService) *GoalService {
	return &GoalService{
		goalRepo:      goalRepo,
		notifications: notifications,
	}
}

// CreateGoalRequest represents the goal creation request
type CreateGoalRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=100"`
	Description string  `json:"description" binding:"omitempty,max=1000"`
	TargetValue float64 `json:"target_value" binding:"required"`
}

// ProgressRequest adds to a goal's current value
type ProgressRequest struct {
	Progress float64 `json:"progress" binding:"required"`
}

// Create creates a goal for a user
func (s *GoalService) Create(userID uint, req *CreateGoalRequest) (*models.Goal, error) {
	if req.TargetValue <= 0 {
		return nil, ErrInvalidTarget
	}

	goal := &models.Goal{
		Title:       req.Title,
		Description: req.Description,
		TargetValue: req.TargetValue,
		UserID:      userID,
	}
	if err := s.goalRepo.Create(goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// List retrieves all goals of a user
func (s *GoalService) List(userID uint) ([]models.Goal, error) {
	return s.goalRepo.ListByUser(userID)
}

// AddProgress adds to a goal's current value and recomputes its percentage.
// Crossing the near-completion threshold raises a one-time notification.
func (s *GoalService) AddProgress(id, userID uint, req *ProgressRequest) (*models.Goal, error) {
	goal, err := s.goalRepo.GetForUser(id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return nil, ErrGoalAccess
		}
		return nil, err
	}

	goal.CurrentValue += req.Progress
	goal.ProgressPercentage = goal.CurrentValue / goal.TargetValue * 100

	if err := s.goalRepo.Update(goal); err != nil {
		return nil, err
	}

	if goal.ProgressPercentage >= nearCompletionThreshold {
		message := fmt.Sprintf(nearCompletionAlert, goal.Title)
		if err := s.notifications.NotifyOnce(userID, message); err != nil {
			return nil, err
		}
	}

	return goal, nil
}

// CheckGoals scans a user's goals and raises the near-completion alert for
// any goal at or past the threshold that was not alerted yet
func (s *GoalService) CheckGoals(userID uint) error {
	goals, err := s.goalRepo.ListByUser(userID)
	if err != nil {
		return err
	}

	for i := range goals {
		if goals[i].ProgressPercentage < nearCompletionThreshold {
			continue
		}
		message := fmt.Sprintf(nearCompletionAlert, goals[i].Title)
		if err := s.notifications.NotifyOnce(userID, message); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a goal owned by the user
func (s *GoalService) Delete(id, userID uint) error {
	goal, err := s.goalRepo.GetForUser(id, userID)
	if err != nil {
		if errors.Is(err, repository.ErrGoalNotFound) {
			return ErrGoalAccess
		}
		return err
	}
	return s.goalRepo.Delete(goal)
}
