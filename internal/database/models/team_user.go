package models

import (
	"time"
)

// TeamRole is the role a member holds inside a single team, independent of
// their platform role.
type TeamRole string

const (
	TeamRoleCoach  TeamRole = "coach"
	TeamRolePlayer TeamRole = "player"
)

// TeamUser is the membership link between a user and a team. A (team, user)
// pair appears at most once; removing the link leaves both records intact.
type TeamUser struct {
	TeamID   uint      `json:"team_id" gorm:"primaryKey"`
	UserID   uint      `json:"user_id" gorm:"primaryKey"`
	Role     TeamRole  `json:"role" gorm:"type:varchar(20);not null;default:'player'"`
	JoinedAt time.Time `json:"joined_at"`

	Team Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for TeamUser
func (TeamUser) TableName() string {
	return "team_users"
}

// TeamCoach records the coaching link created when a coach creates a team.
type TeamCoach struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	TeamID   uint      `json:"team_id" gorm:"not null;index"`
	CoachID  uint      `json:"coach_id" gorm:"not null;index"`
	JoinedAt time.Time `json:"joined_at"`

	Team  Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Coach User `json:"coach,omitempty" gorm:"foreignKey:CoachID"`
}

// TableName returns the table name for TeamCoach
func (TeamCoach) TableName() string {
	return "team_coaches"
}
