package repository

import (
	"time"

	"teamquest-backend/internal/database/models"
	apperrors "teamquest-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
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
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetWithRelations retrieves a user with team memberships and inviter
func (r *UserRepository) GetWithRelations(id uint) (*models.User, error) {
	var user models.User
	err := r.db.
		Preload("TeamUsers.Team").
		Preload("InvitedBy").
		First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EmailExists checks whether a user with the given email exists
func (r *UserRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// AdminExists checks whether any admin user exists
func (r *UserRepository) AdminExists() (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&count).Error
	return count > 0, err
}

// Update updates a user
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// SetToken stores a single-use token and its absolute expiry on the user
func (r *UserRepository) SetToken(userID uint, token string, expires time.Time) error {
	return r.db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"token":         token,
		"token_expires": expires,
	}).Error
}

// ConsumePasswordToken redeems a single-use token and sets the password
// hash in one conditional UPDATE. The WHERE clause re-checks the token and
// its expiry, so two concurrent redemptions cannot both succeed: the first
// nulls the token, the second matches zero rows.
func (r *UserRepository) ConsumePasswordToken(token, passwordHash string) (*models.User, error) {
	var user models.User
	res := r.db.Model(&user).
		Clauses(clause.Returning{}).
		Where("token = ? AND token_expires > ?", token, time.Now().UTC()).
		Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"invited":       false,
			"token":         nil,
			"token_expires": nil,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrInvalidOrExpiredToken
	}
	return &user, nil
}

// ConsumeVerificationToken redeems a single-use token and marks the email
// verified, with the same compare-and-clear semantics as
// ConsumePasswordToken.
func (r *UserRepository) ConsumeVerificationToken(token string) (*models.User, error) {
	var user models.User
	res := r.db.Model(&user).
		Clauses(clause.Returning{}).
		Where("token = ? AND token_expires > ?", token, time.Now().UTC()).
		Updates(map[string]interface{}{
			"email_verified": true,
			"token":          nil,
			"token_expires":  nil,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.ErrInvalidOrExpiredToken
	}
	return &user, nil
}
