package models

import (
	"time"

	"github.com/google/uuid"
)

// SupplyLine connects a supervisory node to the warehouse that supplies its
// facilities for one program.
type SupplyLine struct {
	// ID is the unique identifier for the supply line.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// SupervisoryNodeID is the supervised side of the line.
	SupervisoryNodeID uuid.UUID `gorm:"type:uuid;not null"`
	// SupervisoryNode is the associated node (loaded via foreign key).
	SupervisoryNode SupervisoryNode `gorm:"foreignKey:SupervisoryNodeID"`
	// ProgramID is the program the line applies to.
	ProgramID uuid.UUID `gorm:"type:uuid;not null"`
	// Program is the associated program (loaded via foreign key).
	Program Program `gorm:"foreignKey:ProgramID"`
	// SupplyingFacilityID is the warehouse that fulfills orders.
	SupplyingFacilityID uuid.UUID `gorm:"type:uuid;not null"`
	// SupplyingFacility is the associated warehouse (loaded via foreign key).
	SupplyingFacility Facility `gorm:"foreignKey:SupplyingFacilityID"`
	// Description provides a human-readable description.
	Description string `gorm:"size:255"`
	// CreatedAt is the timestamp when the line was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the line was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the SupplyLine model.
func (SupplyLine) TableName() string {
	return "supply_lines"
}
