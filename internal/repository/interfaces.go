package repository

import (
	"time"

	"teamquest-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetWithRelations(id uint) (*models.User, error)
	EmailExists(email string) (bool, error)
	AdminExists() (bool, error)
	Update(user *models.User) error
	SetToken(userID uint, token string, expires time.Time) error
	ConsumePasswordToken(token, passwordHash string) (*models.User, error)
	ConsumeVerificationToken(token string) (*models.User, error)
}

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	CreateWithCoach(team *models.Team, coachID uint) error
	GetByID(id uint) (*models.Team, error)
	GetWithMembers(id uint) (*models.Team, error)
	GetAll() ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uint) error
}

// MembershipRepositoryInterface defines the interface for team membership operations
type MembershipRepositoryInterface interface {
	Add(teamUser *models.TeamUser) error
	Exists(teamID, userID uint) (bool, error)
	Remove(teamID, userID uint) error
}

// ChallengeRepositoryInterface defines the interface for challenge repository operations
type ChallengeRepositoryInterface interface {
	Create(challenge *models.Challenge) error
	GetByID(id uint) (*models.Challenge, error)
	GetByTeamID(teamID uint) ([]models.Challenge, error)
	GetByCreator(userID uint) ([]models.Challenge, error)
	Update(challenge *models.Challenge) error
	Delete(id uint) error
	AddCompletion(completion *models.ChallengeCompletion) error
}

// TeamGoalRepositoryInterface defines the interface for team goal repository operations
type TeamGoalRepositoryInterface interface {
	Create(goal *models.TeamGoal) error
	GetByID(id uint) (*models.TeamGoal, error)
	GetByTeamID(teamID uint) ([]models.TeamGoal, error)
	Update(goal *models.TeamGoal) error
	Delete(id uint) error
}

// UserGoalRepositoryInterface defines the interface for user goal repository operations
type UserGoalRepositoryInterface interface {
	Create(goal *models.UserGoal) error
	GetByIDForUser(id, userID uint) (*models.UserGoal, error)
	GetByUserID(userID uint) ([]models.UserGoal, error)
	Update(goal *models.UserGoal) error
	Delete(id, userID uint) error
}

// OffSeasonRepositoryInterface defines the interface for off-season repository operations
type OffSeasonRepositoryInterface interface {
	Create(offSeason *models.OffSeason) error
	GetByID(id uint) (*models.OffSeason, error)
	GetByTeamID(teamID uint) ([]models.OffSeason, error)
	Update(offSeason *models.OffSeason) error
	Delete(id uint) error
}
