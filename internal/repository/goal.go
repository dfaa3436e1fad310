package repository

import (
	"teamquest-backend/internal/database/models"

	"gorm.io/gorm"
)

// TeamGoalRepository handles database operations for team goals
type TeamGoalRepository struct {
	db *gorm.DB
}

// NewTeamGoalRepository creates a new team goal repository
func NewTeamGoalRepository(db *gorm.DB) *TeamGoalRepository {
	return &TeamGoalRepository{db: db}
}

// Create creates a new team goal
func (r *TeamGoalRepository) Create(goal *models.TeamGoal) error {
	return r.db.Create(goal).Error
}

// GetByID retrieves a team goal by ID
func (r *TeamGoalRepository) GetByID(id uint) (*models.TeamGoal, error) {
	var goal models.TeamGoal
	err := r.db.Preload("CreatedBy").Preload("Team").First(&goal, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetByTeamID retrieves all goals of a team
func (r *TeamGoalRepository) GetByTeamID(teamID uint) ([]models.TeamGoal, error) {
	var goals []models.TeamGoal
	err := r.db.Preload("CreatedBy").Where("team_id = ?", teamID).Find(&goals).Error
	return goals, err
}

// Update updates a team goal
func (r *TeamGoalRepository) Update(goal *models.TeamGoal) error {
	return r.db.Save(goal).Error
}

// Delete deletes a team goal
func (r *TeamGoalRepository) Delete(id uint) error {
	return r.db.Delete(&models.TeamGoal{}, "id = ?", id).Error
}

// UserGoalRepository handles database operations for personal goals.
// All lookups are scoped to the owning user, so a foreign goal id behaves
// exactly like a missing one.
type UserGoalRepository struct {
	db *gorm.DB
}

// NewUserGoalRepository creates a new user goal repository
func NewUserGoalRepository(db *gorm.DB) *UserGoalRepository {
	return &UserGoalRepository{db: db}
}

// Create creates a new user goal
func (r *UserGoalRepository) Create(goal *models.UserGoal) error {
	return r.db.Create(goal).Error
}

// GetByIDForUser retrieves a user goal by ID, scoped to its owner
func (r *UserGoalRepository) GetByIDForUser(id, userID uint) (*models.UserGoal, error) {
	var goal models.UserGoal
	err := r.db.Preload("CreatedBy").First(&goal, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// GetByUserID retrieves all goals owned by a user
func (r *UserGoalRepository) GetByUserID(userID uint) ([]models.UserGoal, error) {
	var goals []models.UserGoal
	err := r.db.Preload("CreatedBy").Where("user_id = ?", userID).Find(&goals).Error
	return goals, err
}

// Update updates a user goal
func (r *UserGoalRepository) Update(goal *models.UserGoal) error {
	return r.db.Save(goal).Error
}

// Delete deletes a user goal, scoped to its owner
func (r *UserGoalRepository) Delete(id, userID uint) error {
	return r.db.Delete(&models.UserGoal{}, "id = ? AND user_id = ?", id, userID).Error
}
