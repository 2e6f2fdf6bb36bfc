package service

import (
	"testing"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAnalysisService(db *gorm.DB) *AnalysisService {
	notifications := NewNotificationService(repository.NewNotificationRepository(db), nil)
	return NewAnalysisService(
		repository.NewAnalysisRepository(db),
		repository.NewJournalRepository(db),
		repository.NewUserRepository(db),
		notifications,
	)
}

func TestShareWithAllIsVisibleToEveryone(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newAnalysisService(db)

	other := &models.User{FirstName: "Eve", LastName: "Reader", Email: "eve@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(other).Error)

	analysis, err := svc.Create(journal.ID, user.ID, &CreateAnalysisRequest{
		Title:   "EURUSD weekly",
		Content: "Range bound below 1.12",
	})
	require.NoError(t, err)

	share, err := svc.Share(analysis.ID, user.ID, &ShareRequest{SharedWith: "all"})
	require.NoError(t, err)

	got, err := svc.GetShare(share.ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, analysis.ID, got.AnalysisID)

	community, err := svc.Community()
	require.NoError(t, err)
	assert.Len(t, community, 1)
}

func TestDirectedShareVisibleOnlyToRecipient(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newAnalysisService(db)

	recipient := &models.User{FirstName: "Eve", LastName: "Reader", Email: "eve@example.com", PasswordHash: "x"}
	stranger := &models.User{FirstName: "Mallory", LastName: "Else", Email: "mallory@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(recipient).Error)
	require.NoError(t, db.Create(stranger).Error)

	analysis, err := svc.Create(journal.ID, user.ID, &CreateAnalysisRequest{
		Title:   "Private note",
		Content: "For Eve only",
	})
	require.NoError(t, err)

	share, err := svc.Share(analysis.ID, user.ID, &ShareRequest{SharedWith: "eve@example.com"})
	require.NoError(t, err)

	// Recipient sees it, and was notified
	_, err = svc.GetShare(share.ID, recipient.ID)
	require.NoError(t, err)

	mine, err := svc.SharedWithMe(recipient.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	// Author still sees it
	_, err = svc.GetShare(share.ID, user.ID)
	require.NoError(t, err)

	// Stranger does not
	_, err = svc.GetShare(share.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrShareAccess)

	// And it is not in the community feed
	community, err := svc.Community()
	require.NoError(t, err)
	assert.Empty(t, community)
}

func TestShareRejectsInvalidRecipient(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newAnalysisService(db)

	analysis, err := svc.Create(journal.ID, user.ID, &CreateAnalysisRequest{
		Title:   "Note",
		Content: "Body",
	})
	require.NoError(t, err)

	_, err = svc.Share(analysis.ID, user.ID, &ShareRequest{SharedWith: "not-an-email"})
	assert.ErrorIs(t, err, ErrShareRecipient)
}

func TestCommentOnVisibleShare(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newAnalysisService(db)

	other := &models.User{FirstName: "Eve", LastName: "Reader", Email: "eve@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(other).Error)

	analysis, err := svc.Create(journal.ID, user.ID, &CreateAnalysisRequest{
		Title: "Open idea", Content: "Discuss",
	})
	require.NoError(t, err)

	share, err := svc.Share(analysis.ID, user.ID, &ShareRequest{SharedWith: "all"})
	require.NoError(t, err)

	comment, err := svc.Comment(share.ID, other.ID, &CommentRequest{Comment: "Nice setup"})
	require.NoError(t, err)
	assert.Equal(t, share.ID, comment.ShareID)

	got, err := svc.GetShare(share.ID, other.ID)
	require.NoError(t, err)
	assert.Len(t, got.Comments, 1)
}

func TestCannotShareSomeoneElsesAnalysis(t *testing.T) {
	db := setupTestDB(t)
	user, journal := seedUserAndJournal(t, db, "USD", 10000)
	svc := newAnalysisService(db)

	other := &models.User{FirstName: "Eve", LastName: "Other", Email: "eve@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(other).Error)

	analysis, err := svc.Create(journal.ID, user.ID, &CreateAnalysisRequest{
		Title: "Mine", Content: "Body",
	})
	require.NoError(t, err)

	_, err = svc.Share(analysis.ID, other.ID, &ShareRequest{SharedWith: "all"})
	assert.ErrorIs(t, err, ErrAnalysisAccess)
}
