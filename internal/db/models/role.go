package models

import (
	"time"

	"github.com/google/uuid"
)

// Role represents a named set of rights of a single type.
// Roles are granted to users through role assignments; the assignment shape
// (direct, supervision, fulfillment, report access) must match the type of
// the rights the role carries.
type Role struct {
	// ID is the unique identifier for the role.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// Name is the unique name of the role.
	Name string `gorm:"unique;size:100;not null"`
	// Description provides a human-readable description of the role's purpose.
	Description string `gorm:"size:255"`
	// Rights is the set of rights the role carries (many-to-many).
	Rights []Right `gorm:"many2many:role_rights;constraint:OnDelete:CASCADE"`
	// CreatedAt is the timestamp when the role was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the role was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Role model.
func (Role) TableName() string {
	return "roles"
}
