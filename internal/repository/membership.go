package repository

import (
	"teamquest-backend/internal/database/models"
	apperrors "teamquest-backend/internal/errors"

	"gorm.io/gorm"
)

// MembershipRepository handles database operations for team membership links
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Add creates a membership link
func (r *MembershipRepository) Add(teamUser *models.TeamUser) error {
	return r.db.Create(teamUser).Error
}

// Exists checks whether a (team, user) membership link exists
func (r *MembershipRepository) Exists(teamID, userID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamUser{}).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Count(&count).Error
	return count > 0, err
}

// Remove deletes a membership link. Deleting the link never touches the
// user or team records.
func (r *MembershipRepository) Remove(teamID, userID uint) error {
	res := r.db.Delete(&models.TeamUser{}, "team_id = ? AND user_id = ?", teamID, userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrMembershipNotFound
	}
	return nil
}
