package repository

import (
	"errors"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"gorm.io/gorm"
)

// ErrUserNotFound is returned when a user lookup matches nothing
var ErrUserNotFound = errors.New("user not found")

// UserRepository handles user data access
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by e-mail address
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail checks whether an e-mail is already registered
func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// List retrieves all users (admin view)
func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	result := r.db.Order("id ASC").Find(&users)
	return users, result.Error
}

// ListParticipants retrieves users who opted into the performance ranking
func (r *UserRepository) ListParticipants() ([]models.User, error) {
	var users []models.User
	result := r.db.Where("participate = ?", true).Find(&users)
	return users, result.Error
}

// Update persists changes to a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// DeleteCascade removes a user and everything they own in one transaction:
// support threads, reflections, strategies, groups, goals, notifications,
// shares and comments, then each journal with its analyses and trades.
func (r *UserRepository) DeleteCascade(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, del := range []*gorm.DB{
			tx.Where("user_id = ?", userID).Delete(&models.AssistanceMessage{}),
			tx.Where("user_id = ?", userID).Delete(&models.ReflectionEntry{}),
			tx.Where("user_id = ?", userID).Delete(&models.Strategy{}),
			tx.Where("owner_id = ?", userID).Delete(&models.Group{}),
			tx.Where("user_id = ?", userID).Delete(&models.GroupMember{}),
			tx.Where("user_id = ?", userID).Delete(&models.GroupMessage{}),
			tx.Where("user_id = ?", userID).Delete(&models.Notification{}),
			tx.Where("user_id = ?", userID).Delete(&models.Goal{}),
			tx.Where("shared_by_user_id = ?", userID).Delete(&models.AnalysisShare{}),
			tx.Where("user_id = ?", userID).Delete(&models.AnalysisShareComment{}),
		} {
			if del.Error != nil {
				return del.Error
			}
		}

		var journals []models.Journal
		if err := tx.Where("user_id = ?", userID).Find(&journals).Error; err != nil {
			return err
		}
		for _, j := range journals {
			if err := tx.Where("journal_id = ?", j.ID).Delete(&models.Analysis{}).Error; err != nil {
				return err
			}
			if err := tx.Where("journal_id = ?", j.ID).Delete(&models.Trade{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&j).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.User{}, userID).Error
	})
}
