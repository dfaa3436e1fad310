package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"teamquest-backend/internal/auth"
	"teamquest-backend/internal/config"
	"teamquest-backend/internal/database"
	"teamquest-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed data structures matching scripts/data/seed.yaml

type UserData struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type TeamData struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	CoachEmail  string   `yaml:"coach_email"`
	Players     []string `yaml:"players,omitempty"`
}

type ChallengeData struct {
	TeamName     string `yaml:"team_name"`
	CreatorEmail string `yaml:"creator_email"`
	Name         string `yaml:"name"`
	Description  string `yaml:"description,omitempty"`
	Type         string `yaml:"type"`
	Frequency    string `yaml:"frequency"`
	DurationDays int    `yaml:"duration_days"`
}

type SeedFile struct {
	Users      []UserData      `yaml:"users"`
	Teams      []TeamData      `yaml:"teams"`
	Challenges []ChallengeData `yaml:"challenges"`
}

func main() {
	log.Println("Loading initial data from YAML...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	seedPath := "scripts/data/seed.yaml"
	if len(os.Args) > 1 {
		seedPath = os.Args[1]
	}

	if err := loadSeedFile(db, seedPath); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry waits for dockerized Postgres to come up before seeding.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedFile(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	usersByEmail := make(map[string]*models.User)
	for _, u := range seed.Users {
		user, err := upsertUser(db, u)
		if err != nil {
			return fmt.Errorf("seed user %s: %w", u.Email, err)
		}
		usersByEmail[u.Email] = user
	}

	teamsByName := make(map[string]*models.Team)
	for _, t := range seed.Teams {
		team, err := upsertTeam(db, t, usersByEmail)
		if err != nil {
			return fmt.Errorf("seed team %s: %w", t.Name, err)
		}
		teamsByName[t.Name] = team
	}

	for _, c := range seed.Challenges {
		if err := upsertChallenge(db, c, teamsByName, usersByEmail); err != nil {
			return fmt.Errorf("seed challenge %s: %w", c.Name, err)
		}
	}

	return nil
}

func upsertUser(db *gorm.DB, data UserData) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", data.Email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hash, err := auth.HashPassword(data.Password)
	if err != nil {
		return nil, err
	}
	role := models.UserRole(data.Role)
	if role == "" {
		role = models.UserRolePlayer
	}
	user = models.User{
		Email:         data.Email,
		PasswordHash:  &hash,
		Role:          role,
		EmailVerified: true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	log.Printf("Created user %s (%s)", user.Email, user.Role)
	return &user, nil
}

func upsertTeam(db *gorm.DB, data TeamData, users map[string]*models.User) (*models.Team, error) {
	coach, ok := users[data.CoachEmail]
	if !ok {
		return nil, fmt.Errorf("coach %s is not in the users section", data.CoachEmail)
	}

	var team models.Team
	err := db.Where("name = ?", data.Name).First(&team).Error
	if err == gorm.ErrRecordNotFound {
		team = models.Team{Name: data.Name, Description: data.Description}
		if err := db.Create(&team).Error; err != nil {
			return nil, err
		}
		now := time.Now().UTC()
		if err := db.Create(&models.TeamCoach{TeamID: team.ID, CoachID: coach.ID, JoinedAt: now}).Error; err != nil {
			return nil, err
		}
		if err := db.Create(&models.TeamUser{TeamID: team.ID, UserID: coach.ID, Role: models.TeamRoleCoach, JoinedAt: now}).Error; err != nil {
			return nil, err
		}
		log.Printf("Created team %s coached by %s", team.Name, coach.Email)
	} else if err != nil {
		return nil, err
	}

	for _, email := range data.Players {
		player, ok := users[email]
		if !ok {
			return nil, fmt.Errorf("player %s is not in the users section", email)
		}
		membership := models.TeamUser{
			TeamID:   team.ID,
			UserID:   player.ID,
			Role:     models.TeamRolePlayer,
			JoinedAt: time.Now().UTC(),
		}
		if err := db.Where("team_id = ? AND user_id = ?", team.ID, player.ID).
			FirstOrCreate(&membership).Error; err != nil {
			return nil, err
		}
	}

	return &team, nil
}

func upsertChallenge(db *gorm.DB, data ChallengeData, teams map[string]*models.Team, users map[string]*models.User) error {
	team, ok := teams[data.TeamName]
	if !ok {
		return fmt.Errorf("team %s is not in the teams section", data.TeamName)
	}
	creator, ok := users[data.CreatorEmail]
	if !ok {
		return fmt.Errorf("creator %s is not in the users section", data.CreatorEmail)
	}

	var existing models.Challenge
	err := db.Where("team_id = ? AND name = ?", team.ID, data.Name).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}

	duration := data.DurationDays
	if duration <= 0 {
		duration = 30
	}
	start := time.Now().UTC()
	challenge := models.Challenge{
		Name:        data.Name,
		Description: data.Description,
		Type:        models.ChallengeType(data.Type),
		Frequency:   models.ChallengeFrequency(data.Frequency),
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, duration),
		TeamID:      team.ID,
		CreatedByID: creator.ID,
	}
	if err := db.Create(&challenge).Error; err != nil {
		return err
	}
	log.Printf("Created challenge %s on team %s", challenge.Name, team.Name)
	return nil
}
