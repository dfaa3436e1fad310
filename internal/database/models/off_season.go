package models

import (
	"time"
)

// OffSeason is a period during which a team pauses its regular schedule.
// EndDate must be strictly after StartDate.
type OffSeason struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StartDate time.Time `json:"start_date" gorm:"not null"`
	EndDate   time.Time `json:"end_date" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TeamID      uint `json:"team_id" gorm:"not null;index"`
	CreatedByID uint `json:"created_by_id" gorm:"index"`

	Team      Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	CreatedBy User `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
}

// TableName returns the table name for OffSeason
func (OffSeason) TableName() string {
	return "off_seasons"
}
