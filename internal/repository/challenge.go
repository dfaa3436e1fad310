package repository

import (
	"teamquest-backend/internal/database/models"

	"gorm.io/gorm"
)

// ChallengeRepository handles database operations for challenges and their
// completion log
type ChallengeRepository struct {
	db *gorm.DB
}

// NewChallengeRepository creates a new challenge repository
func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

// Create creates a new challenge
func (r *ChallengeRepository) Create(challenge *models.Challenge) error {
	return r.db.Create(challenge).Error
}

// GetByID retrieves a challenge with its team's membership links, so the
// caller can run visibility checks without a second query.
func (r *ChallengeRepository) GetByID(id uint) (*models.Challenge, error) {
	var challenge models.Challenge
	err := r.db.
		Preload("Team.TeamUsers").
		First(&challenge, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &challenge, nil
}

// GetByTeamID retrieves all challenges of a team with their completions
func (r *ChallengeRepository) GetByTeamID(teamID uint) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := r.db.
		Preload("Completions").
		Where("team_id = ?", teamID).
		Find(&challenges).Error
	return challenges, err
}

// GetByCreator retrieves all challenges created by a user
func (r *ChallengeRepository) GetByCreator(userID uint) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := r.db.
		Preload("Completions").
		Where("created_by_id = ?", userID).
		Find(&challenges).Error
	return challenges, err
}

// Update updates a challenge
func (r *ChallengeRepository) Update(challenge *models.Challenge) error {
	return r.db.Save(challenge).Error
}

// Delete deletes a challenge and its completion log
func (r *ChallengeRepository) Delete(id uint) error {
	return r.db.Delete(&models.Challenge{}, "id = ?", id).Error
}

// AddCompletion logs a completion. Repeated completions of the same
// challenge by the same user are separate rows.
func (r *ChallengeRepository) AddCompletion(completion *models.ChallengeCompletion) error {
	return r.db.Create(completion).Error
}
