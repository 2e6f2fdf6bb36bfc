package service

import (
	"testing"

	"github.com/NAPONYAHASINE/journal/internal/config"
	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
	"github.com/NAPONYAHASINE/journal/pkg/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(repository.NewUserRepository(db), config.JWTConfig{
		Secret:      "test-secret",
		ExpireHours: 1,
	})
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register(&RegisterRequest{
		FirstName: "Ada",
		LastName:  "Trader",
		Email:     "Ada@Example.com",
		Password:  "Sup3rSecret",
		Country:   "FR",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "Sup3rSecret", user.PasswordHash)

	token, err := svc.Login(&LoginRequest{Email: "ada@example.com", Password: "Sup3rSecret"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)

	claims, err := svc.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.False(t, claims.IsAdmin)
}

func TestRegisterAdminSuffix(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register(&RegisterRequest{
		FirstName: "Root",
		LastName:  "Admin",
		Email:     "boss@example.com.adminBloom",
		Password:  "Sup3rSecret",
	})
	require.NoError(t, err)

	// The suffix grants the role and never reaches storage
	assert.True(t, user.IsAdmin)
	assert.Equal(t, "boss@example.com", user.Email)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	req := &RegisterRequest{
		FirstName: "Ada", LastName: "Trader",
		Email: "ada@example.com", Password: "Sup3rSecret",
	}
	_, err := svc.Register(req)
	require.NoError(t, err)

	_, err = svc.Register(req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&RegisterRequest{
		FirstName: "Ada", LastName: "Trader",
		Email: "ada@example.com", Password: "short",
	})
	assert.ErrorIs(t, err, validate.ErrPasswordTooShort)

	_, err = svc.Register(&RegisterRequest{
		FirstName: "Ada", LastName: "Trader",
		Email: "ada@example.com", Password: "alllowercase1",
	})
	assert.ErrorIs(t, err, validate.ErrPasswordNoUpper)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&RegisterRequest{
		FirstName: "Ada", LastName: "Trader",
		Email: "ada@example.com", Password: "Sup3rSecret",
	})
	require.NoError(t, err)

	_, err = svc.Login(&LoginRequest{Email: "ada@example.com", Password: "WrongPass1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&LoginRequest{Email: "nobody@example.com", Password: "Sup3rSecret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register(&RegisterRequest{
		FirstName: "Ada", LastName: "Trader",
		Email: "ada@example.com", Password: "Sup3rSecret",
	})
	require.NoError(t, err)
	_ = user

	token, err := svc.Login(&LoginRequest{Email: "ada@example.com", Password: "Sup3rSecret"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token.AccessToken + "x")
	assert.Error(t, err)
}

func TestAdminUpdateUserEditsAnyAccount(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register(&RegisterRequest{
		FirstName: "Ada",
		LastName:  "Trader",
		Email:     "ada@example.com",
		Password:  "Sup3rSecret",
	})
	require.NoError(t, err)

	email := "New@Example.com"
	isAdmin := true
	password := "An0therSecret"
	updated, err := svc.AdminUpdateUser(user.ID, &AdminUpdateUserRequest{
		Email:       &email,
		IsAdmin:     &isAdmin,
		NewPassword: &password,
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	assert.True(t, updated.IsAdmin)

	// The new password works, the old one does not
	_, err = svc.Login(&LoginRequest{Email: "new@example.com", Password: "An0therSecret"})
	require.NoError(t, err)
	_, err = svc.Login(&LoginRequest{Email: "new@example.com", Password: "Sup3rSecret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminUpdateUserRejectsTakenEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Register(&RegisterRequest{
		FirstName: "Ada", LastName: "Trader",
		Email: "ada@example.com", Password: "Sup3rSecret",
	})
	require.NoError(t, err)
	eve, err := svc.Register(&RegisterRequest{
		FirstName: "Eve", LastName: "Other",
		Email: "eve@example.com", Password: "Sup3rSecret",
	})
	require.NoError(t, err)

	taken := "ada@example.com"
	_, err = svc.AdminUpdateUser(eve.ID, &AdminUpdateUserRequest{Email: &taken})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAdminDeleteUserCascades(t *testing.T) {
	db := setupTestDB(t)
	svc := newAuthService(db)

	user, err := svc.Register(&RegisterRequest{
		FirstName: "Ada", LastName: "Trader",
		Email: "ada@example.com", Password: "Sup3rSecret",
	})
	require.NoError(t, err)

	journal := &models.Journal{Name: "Main", InitialCapital: 1000, Currency: "USD", Leverage: 10, UserID: user.ID}
	require.NoError(t, db.Create(journal).Error)
	goal := &models.Goal{UserID: user.ID, Title: "Grow", TargetValue: 100}
	require.NoError(t, db.Create(goal).Error)

	require.NoError(t, svc.AdminDeleteUser(user.ID))

	_, err = svc.GetUserByID(user.ID)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	var journalCount, goalCount int64
	require.NoError(t, db.Model(&models.Journal{}).Where("user_id = ?", user.ID).Count(&journalCount).Error)
	require.NoError(t, db.Model(&models.Goal{}).Where("user_id = ?", user.ID).Count(&goalCount).Error)
	assert.Zero(t, journalCount)
	assert.Zero(t, goalCount)

	assert.ErrorIs(t, svc.AdminDeleteUser(user.ID), repository.ErrUserNotFound)
}
