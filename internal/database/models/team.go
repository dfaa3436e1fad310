package models

import (
	"time"
)

// Team is the tenant unit of the application. Coaches create teams and
// invite players into them.
type Team struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string    `json:"description" gorm:"size:500" validate:"max=500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relationships
	TeamUsers  []TeamUser  `json:"team_users,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	TeamCoaches []TeamCoach `json:"team_coaches,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	Challenges []Challenge `json:"challenges,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
