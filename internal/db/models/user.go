package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user account in the system.
// Authentication is handled by an external auth service; this service keeps
// the reference data view of the account plus its role assignments.
type User struct {
	// ID is the unique identifier for the user.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// Username is the unique username for login.
	Username string `gorm:"unique;size:100;not null"`
	// FirstName is the user's first or given name.
	FirstName string `gorm:"size:100"`
	// LastName is the user's last or family name.
	LastName string `gorm:"size:100"`
	// Email is the user's email address.
	Email string `gorm:"size:255"`
	// HomeFacilityID is the user's home facility, nil when the user has none.
	HomeFacilityID *uuid.UUID `gorm:"type:uuid"`
	// Active indicates whether the user account is active.
	Active bool
	// RoleAssignments are the user's role grants.
	RoleAssignments []RoleAssignment `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the User model.
func (User) TableName() string {
	return "users"
}
