package models

import (
	"time"

	"github.com/google/uuid"
)

// Orderable represents a product that can be ordered: its identity, packing
// and the programs it belongs to.
type Orderable struct {
	// ID is the unique identifier for the orderable.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// Code is the unique product code.
	Code string `gorm:"unique;size:50;not null"`
	// Name is the full product name.
	Name string `gorm:"size:255"`
	// Description provides a human-readable description.
	Description string `gorm:"size:255"`
	// PackRoundingThreshold decides when a partial pack rounds up.
	PackRoundingThreshold int64
	// NetContent is the number of dispensing units per pack.
	NetContent int64
	// RoundToZero rounds tiny remainders down to zero packs.
	RoundToZero bool
	// ProgramOrderables are the program memberships of this product.
	ProgramOrderables []ProgramOrderable `gorm:"foreignKey:OrderableID;constraint:OnDelete:CASCADE"`
	// CreatedAt is the timestamp when the orderable was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the orderable was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Orderable model.
func (Orderable) TableName() string {
	return "orderables"
}

// ProgramOrderable links an orderable to a program with program-specific
// ordering attributes.
type ProgramOrderable struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderableID uuid.UUID `gorm:"type:uuid;not null;index"`
	ProgramID   uuid.UUID `gorm:"type:uuid;not null;index"`
	// Program is the associated program (loaded via foreign key).
	Program Program `gorm:"foreignKey:ProgramID"`
	// Active indicates whether the product is currently orderable in the program.
	Active bool
	// FullSupply marks the product as full supply within the program.
	FullSupply bool
	// DisplayOrder orders products within a program category.
	DisplayOrder int
	// PricePerPack is the price of one pack, stored in minor units.
	PricePerPack int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for the ProgramOrderable model.
func (ProgramOrderable) TableName() string {
	return "program_orderables"
}
