package service

import (
	"testing"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newGoalService(db *gorm.DB) (*GoalService, *NotificationService) {
	notifications := NewNotificationService(repository.NewNotificationRepository(db), nil)
	return NewGoalService(repository.NewGoalRepository(db), notifications), notifications
}

func TestGoalProgressPercentage(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seedUserAndJournal(t, db, "USD", 10000)
	svc, _ := newGoalService(db)

	goal, err := svc.Create(user.ID, &CreateGoalRequest{
		Title:       "Reach 1000",
		TargetValue: 1000,
	})
	require.NoError(t, err)
	assert.Zero(t, goal.ProgressPercentage)

	goal, err = svc.AddProgress(goal.ID, user.ID, &ProgressRequest{Progress: 250})
	require.NoError(t, err)
	assert.InDelta(t, 25.0, goal.ProgressPercentage, 1e-9)

	goal, err = svc.AddProgress(goal.ID, user.ID, &ProgressRequest{Progress: 250})
	require.NoError(t, err)
	assert.InDelta(t, 500.0, goal.CurrentValue, 1e-9)
	assert.InDelta(t, 50.0, goal.ProgressPercentage, 1e-9)
}

func TestGoalNearCompletionAlertIsDeduplicated(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seedUserAndJournal(t, db, "USD", 10000)
	svc, notifications := newGoalService(db)

	goal, err := svc.Create(user.ID, &CreateGoalRequest{
		Title:       "Reach 100",
		TargetValue: 100,
	})
	require.NoError(t, err)

	_, err = svc.AddProgress(goal.ID, user.ID, &ProgressRequest{Progress: 95})
	require.NoError(t, err)

	list, err := notifications.List(user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Contains(t, list[0].Message, "Reach 100")

	// Further progress past the threshold must not duplicate the alert
	_, err = svc.AddProgress(goal.ID, user.ID, &ProgressRequest{Progress: 3})
	require.NoError(t, err)
	require.NoError(t, svc.CheckGoals(user.ID))

	list, err = notifications.List(user.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestGoalBelowThresholdDoesNotAlert(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seedUserAndJournal(t, db, "USD", 10000)
	svc, notifications := newGoalService(db)

	goal, err := svc.Create(user.ID, &CreateGoalRequest{
		Title:       "Reach 100",
		TargetValue: 100,
	})
	require.NoError(t, err)

	_, err = svc.AddProgress(goal.ID, user.ID, &ProgressRequest{Progress: 50})
	require.NoError(t, err)

	list, err := notifications.List(user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGoalOwnershipEnforced(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seedUserAndJournal(t, db, "USD", 10000)
	svc, _ := newGoalService(db)

	other := &models.User{FirstName: "Eve", LastName: "Other", Email: "eve@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(other).Error)

	goal, err := svc.Create(user.ID, &CreateGoalRequest{Title: "Mine", TargetValue: 10})
	require.NoError(t, err)

	_, err = svc.AddProgress(goal.ID, other.ID, &ProgressRequest{Progress: 5})
	assert.ErrorIs(t, err, ErrGoalAccess)

	err = svc.Delete(goal.ID, other.ID)
	assert.ErrorIs(t, err, ErrGoalAccess)
}
