package testutils

import (
	"fmt"
	"time"

	"teamquest-backend/internal/auth"
	"teamquest-backend/internal/database/models"

	"github.com/google/uuid"
)

// Factories build model values with sane defaults for integration tests.
// IDs are left zero so Postgres assigns them on insert.

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with a unique email and a usable password hash
func (f *UserFactory) Create() *models.User {
	hash, _ := auth.HashPassword("password123")
	return &models.User{
		Email:         fmt.Sprintf("user-%s@test.com", uuid.New().String()[:8]),
		PasswordHash:  &hash,
		Role:          models.UserRolePlayer,
		EmailVerified: true,
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithRole sets a custom platform role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// Invited creates an email-only stub the way AddMember does for unknown
// addresses: no password, pending invitation token.
func (f *UserFactory) Invited(invitedByID uint) *models.User {
	token, _ := auth.NewSecureToken()
	expires := auth.TokenExpiry(auth.InvitationTTL)
	user := f.Create()
	user.PasswordHash = nil
	user.EmailVerified = false
	user.Invited = true
	user.InvitedByID = &invitedByID
	user.Token = &token
	user.TokenExpires = &expires
	return user
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a test Team with default values
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		Name:        "Test Team",
		Description: "A test team",
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// ChallengeFactory provides methods to create test Challenge data
type ChallengeFactory struct{}

// NewChallengeFactory creates a new ChallengeFactory
func NewChallengeFactory() *ChallengeFactory {
	return &ChallengeFactory{}
}

// Create creates a test Challenge on the given team
func (f *ChallengeFactory) Create(teamID, createdByID uint) *models.Challenge {
	now := time.Now().UTC()
	return &models.Challenge{
		Name:        "Morning Run",
		Description: "5km before practice",
		Type:        models.ChallengeTypeCardio,
		Frequency:   models.ChallengeFrequencyDaily,
		StartDate:   now,
		EndDate:     now.AddDate(0, 1, 0),
		TeamID:      teamID,
		CreatedByID: createdByID,
	}
}

// WithType sets a custom challenge type
func (f *ChallengeFactory) WithType(teamID, createdByID uint, challengeType models.ChallengeType) *models.Challenge {
	challenge := f.Create(teamID, createdByID)
	challenge.Type = challengeType
	return challenge
}

// TeamGoalFactory provides methods to create test TeamGoal data
type TeamGoalFactory struct{}

// NewTeamGoalFactory creates a new TeamGoalFactory
func NewTeamGoalFactory() *TeamGoalFactory {
	return &TeamGoalFactory{}
}

// Create creates a test TeamGoal on the given team
func (f *TeamGoalFactory) Create(teamID, createdByID uint) *models.TeamGoal {
	return &models.TeamGoal{
		Title:       "Win the season opener",
		Description: "Full attendance at every practice until then",
		Recurrence:  models.GoalRecurrenceNone,
		StartDate:   time.Now().UTC(),
		TeamID:      teamID,
		CreatedByID: createdByID,
	}
}

// UserGoalFactory provides methods to create test UserGoal data
type UserGoalFactory struct{}

// NewUserGoalFactory creates a new UserGoalFactory
func NewUserGoalFactory() *UserGoalFactory {
	return &UserGoalFactory{}
}

// Create creates a test UserGoal owned by the given user
func (f *UserGoalFactory) Create(userID uint) *models.UserGoal {
	return &models.UserGoal{
		Title:       "100 pushups a day",
		Recurrence:  models.GoalRecurrenceDaily,
		StartDate:   time.Now().UTC(),
		UserID:      userID,
		CreatedByID: userID,
	}
}

// OffSeasonFactory provides methods to create test OffSeason data
type OffSeasonFactory struct{}

// NewOffSeasonFactory creates a new OffSeasonFactory
func NewOffSeasonFactory() *OffSeasonFactory {
	return &OffSeasonFactory{}
}

// Create creates a test OffSeason on the given team
func (f *OffSeasonFactory) Create(teamID, createdByID uint) *models.OffSeason {
	start := time.Now().UTC()
	return &models.OffSeason{
		StartDate:   start,
		EndDate:     start.AddDate(0, 2, 0),
		TeamID:      teamID,
		CreatedByID: createdByID,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User      *UserFactory
	Team      *TeamFactory
	Challenge *ChallengeFactory
	TeamGoal  *TeamGoalFactory
	UserGoal  *UserGoalFactory
	OffSeason *OffSeasonFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:      NewUserFactory(),
		Team:      NewTeamFactory(),
		Challenge: NewChallengeFactory(),
		TeamGoal:  NewTeamGoalFactory(),
		UserGoal:  NewUserGoalFactory(),
		OffSeason: NewOffSeasonFactory(),
	}
}
