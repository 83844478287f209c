package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleAssignment is the flat storage row for a user's role grant. The
// populated scope columns decide the assignment shape: none for direct and
// report-access grants, program (plus optional supervisory node) for
// supervision grants, warehouse for fulfillment grants.
type RoleAssignment struct {
	// ID is the unique identifier for the assignment.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// UserID is the user holding the grant.
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	// RoleID is the granted role.
	RoleID uuid.UUID `gorm:"type:uuid;not null"`
	// Role is the associated role (loaded via foreign key).
	Role Role `gorm:"foreignKey:RoleID;constraint:OnDelete:CASCADE"`
	// ProgramID scopes a supervision grant, nil otherwise.
	ProgramID *uuid.UUID `gorm:"type:uuid"`
	// SupervisoryNodeID widens a supervision grant to a node subtree, nil
	// for home facility grants.
	SupervisoryNodeID *uuid.UUID `gorm:"type:uuid"`
	// WarehouseID scopes a fulfillment grant, nil otherwise.
	WarehouseID *uuid.UUID `gorm:"type:uuid"`
	// CreatedAt is the timestamp when the assignment was created (managed by GORM).
	CreatedAt time.Time
}

// TableName specifies the database table name for the RoleAssignment model.
func (RoleAssignment) TableName() string {
	return "role_assignments"
}
