// Package models contains database model definitions.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Right represents a grantable right in the role-based access control system.
// Rights form a closed, system-defined set; they are seeded at startup and
// cannot be created through the API.
type Right struct {
	// ID is the unique identifier for the right.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// Name is the unique name of the right (e.g., "USERS_MANAGE").
	Name string `gorm:"unique;size:100;not null"`
	// Type decides which role assignment shape can carry the right
	// (GENERAL_ADMIN, SUPERVISION, ORDER_FULFILLMENT or ORDER_REPORT).
	Type string `gorm:"type:varchar(30);not null"`
	// Description provides a human-readable explanation of what this right grants.
	Description string `gorm:"size:255"`
	// CreatedAt is the timestamp when the right was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the right was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Right model.
func (Right) TableName() string {
	return "rights"
}
