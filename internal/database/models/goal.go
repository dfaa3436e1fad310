package models

import (
	"time"
)

// GoalRecurrence describes how often a goal repeats
type GoalRecurrence string

const (
	GoalRecurrenceNone    GoalRecurrence = "none"
	GoalRecurrenceDaily   GoalRecurrence = "daily"
	GoalRecurrenceWeekly  GoalRecurrence = "weekly"
	GoalRecurrenceMonthly GoalRecurrence = "monthly"
	GoalRecurrenceSeason  GoalRecurrence = "season"
)

// TeamGoal is a goal shared by every member of a team.
type TeamGoal struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string         `json:"description" gorm:"size:500" validate:"max=500"`
	Recurrence  GoalRecurrence `json:"recurrence" gorm:"type:varchar(20);not null;default:'none'"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	CreatedByID uint `json:"created_by_id" gorm:"not null;index"`
	TeamID      uint `json:"team_id" gorm:"not null;index"`

	CreatedBy User `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	Team      Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// TableName returns the table name for TeamGoal
func (TeamGoal) TableName() string {
	return "team_goals"
}

// UserGoal is a personal goal owned by a single user.
type UserGoal struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string         `json:"description" gorm:"size:500" validate:"max=500"`
	Recurrence  GoalRecurrence `json:"recurrence" gorm:"type:varchar(20);not null;default:'none'"`
	StartDate   time.Time      `json:"start_date"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`

	CreatedByID uint `json:"created_by_id" gorm:"not null;index"`
	UserID      uint `json:"user_id" gorm:"not null;index"`

	CreatedBy User `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	User      User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for UserGoal
func (UserGoal) TableName() string {
	return "user_goals"
}
