package repository

import (
	"teamquest-backend/internal/database/models"

	"gorm.io/gorm"
)

// OffSeasonRepository handles database operations for off-seasons
type OffSeasonRepository struct {
	db *gorm.DB
}

// NewOffSeasonRepository creates a new off-season repository
func NewOffSeasonRepository(db *gorm.DB) *OffSeasonRepository {
	return &OffSeasonRepository{db: db}
}

// Create creates a new off-season
func (r *OffSeasonRepository) Create(offSeason *models.OffSeason) error {
	return r.db.Create(offSeason).Error
}

// GetByID retrieves an off-season by ID
func (r *OffSeasonRepository) GetByID(id uint) (*models.OffSeason, error) {
	var offSeason models.OffSeason
	err := r.db.First(&offSeason, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &offSeason, nil
}

// GetByTeamID retrieves all off-seasons of a team, most recent first
func (r *OffSeasonRepository) GetByTeamID(teamID uint) ([]models.OffSeason, error) {
	var offSeasons []models.OffSeason
	err := r.db.
		Where("team_id = ?", teamID).
		Order("start_date DESC").
		Find(&offSeasons).Error
	return offSeasons, err
}

// Update updates an off-season
func (r *OffSeasonRepository) Update(offSeason *models.OffSeason) error {
	return r.db.Save(offSeason).Error
}

// Delete deletes an off-season
func (r *OffSeasonRepository) Delete(id uint) error {
	return r.db.Delete(&models.OffSeason{}, "id = ?", id).Error
}
