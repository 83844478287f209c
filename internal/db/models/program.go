package models

import (
	"time"

	"github.com/google/uuid"
)

// Program represents a health program (e.g. family planning, essential
// medicines) that facilities support and orderables belong to.
type Program struct {
	// ID is the unique identifier for the program.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// Code is the unique program code.
	Code string `gorm:"unique;size:50;not null"`
	// Name is the display name of the program.
	Name string `gorm:"size:100"`
	// Description provides a human-readable description.
	Description string `gorm:"size:255"`
	// Active indicates whether the program is in use.
	Active bool
	// PeriodsSkippable indicates whether requisition periods can be skipped.
	PeriodsSkippable bool
	// SkipAuthorization skips the authorization step in requisitions.
	SkipAuthorization bool
	// CreatedAt is the timestamp when the program was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the program was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Program model.
func (Program) TableName() string {
	return "programs"
}

// SupportedProgram links a facility to a program it supports.
type SupportedProgram struct {
	FacilityID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProgramID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	// Active indicates whether the support is currently active.
	Active bool
	// SupportStartDate is when the facility started supporting the program.
	SupportStartDate *time.Time
	CreatedAt        time.Time
}

// TableName specifies the database table name for the SupportedProgram model.
func (SupportedProgram) TableName() string {
	return "supported_programs"
}
