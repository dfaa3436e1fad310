package models

import (
	"time"
)

// ChallengeType categorizes a challenge
type ChallengeType string

const (
	ChallengeTypeCardio     ChallengeType = "cardio"
	ChallengeTypeStrength   ChallengeType = "strength"
	ChallengeTypeSkillBased ChallengeType = "skill_based"
	ChallengeTypeOther      ChallengeType = "other"
)

// ChallengeFrequency describes how often a challenge repeats
type ChallengeFrequency string

const (
	ChallengeFrequencyDaily  ChallengeFrequency = "daily"
	ChallengeFrequencyWeekly ChallengeFrequency = "weekly"
	ChallengeFrequencyCustom ChallengeFrequency = "custom"
)

// Challenge belongs to exactly one team and was created by exactly one
// user. The creator keeps ownership even after leaving the team.
type Challenge struct {
	ID          uint               `json:"id" gorm:"primaryKey"`
	Name        string             `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string             `json:"description" gorm:"size:500" validate:"max=500"`
	Type        ChallengeType      `json:"type" gorm:"type:varchar(20);not null"`
	Frequency   ChallengeFrequency `json:"frequency" gorm:"type:varchar(20);not null"`
	StartDate   time.Time          `json:"start_date"`
	EndDate     time.Time          `json:"end_date"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`

	TeamID      uint `json:"team_id" gorm:"not null;index"`
	CreatedByID uint `json:"created_by_id" gorm:"not null;index"`

	Team        Team                  `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	CreatedBy   User                  `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	Completions []ChallengeCompletion `json:"completions,omitempty" gorm:"foreignKey:ChallengeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Challenge
func (Challenge) TableName() string {
	return "challenges"
}

// ChallengeCompletion is one logged completion of a challenge by a user.
// There is deliberately no uniqueness constraint: each row is an
// independent log entry.
type ChallengeCompletion struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CompletedAt time.Time `json:"completed_at"`
	Notes       string    `json:"notes" gorm:"size:500"`

	ChallengeID uint `json:"challenge_id" gorm:"not null;index"`
	UserID      uint `json:"user_id" gorm:"not null;index"`

	Challenge Challenge `json:"challenge,omitempty" gorm:"foreignKey:ChallengeID"`
	User      User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for ChallengeCompletion
func (ChallengeCompletion) TableName() string {
	return "challenge_completions"
}
