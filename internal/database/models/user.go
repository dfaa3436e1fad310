package models

import (
	"time"
)

// UserRole is the platform-wide role of a user. Team-scoped permissions
// live on TeamUser instead.
type UserRole string

const (
	UserRolePlayer UserRole = "player"
	UserRoleCoach  UserRole = "coach"
	UserRoleAdmin  UserRole = "admin"
)

// User represents an account in the application. Invited users start as
// email-only stubs: PasswordHash is nil until they redeem their invitation
// token and set a password, and they cannot log in before that.
type User struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Email        string   `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash *string  `json:"-" gorm:"size:100"`
	Role         UserRole `json:"role" gorm:"type:varchar(20);not null;default:'player'"`
	Invited      bool     `json:"invited" gorm:"not null;default:false"`
	InvitedByID  *uint    `json:"invited_by_id,omitempty" gorm:"index"`
	// Non-owning back-reference to the inviter; loaded on demand, never
	// cascaded.
	InvitedBy     *User `json:"invited_by,omitempty" gorm:"foreignKey:InvitedByID;constraint:OnDelete:SET NULL"`
	EmailVerified bool  `json:"email_verified" gorm:"not null;default:false"`

	// Single-use token for invitation acceptance, password reset or email
	// verification. Token and TokenExpires are set and cleared together.
	Token        *string    `json:"-" gorm:"uniqueIndex;size:64"`
	TokenExpires *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	TeamUsers []TeamUser `json:"team_users,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// PendingSetup reports whether the user was invited but has not set a
// password yet. Such users must not authenticate through login.
func (u *User) PendingSetup() bool {
	return u.Invited && u.PasswordHash == nil
}
