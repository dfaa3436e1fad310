package repository

import (
	"time"

	"teamquest-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// CreateWithCoach creates a team and records the creating coach's link in
// the same transaction.
func (r *TeamRepository) CreateWithCoach(team *models.Team, coachID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}
		teamCoach := &models.TeamCoach{
			TeamID:   team.ID,
			CoachID:  coachID,
			JoinedAt: time.Now().UTC(),
		}
		return tx.Create(teamCoach).Error
	})
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetWithMembers retrieves a team with its membership links and users
func (r *TeamRepository) GetWithMembers(id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.
		Preload("TeamUsers.User").
		Preload("TeamCoaches.Coach").
		First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetAll retrieves all teams
func (r *TeamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Find(&teams).Error
	return teams, err
}

// Update updates a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uint) error {
	return r.db.Delete(&models.Team{}, "id = ?", id).Error
}
