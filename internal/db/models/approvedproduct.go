package models

import (
	"time"

	"github.com/google/uuid"
)

// FacilityTypeApprovedProduct approves an orderable for a facility type
// within a program, with the stock levels used for requisition calculations.
type FacilityTypeApprovedProduct struct {
	// ID is the unique identifier for the approval.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// FacilityTypeID is the approved facility type.
	FacilityTypeID uuid.UUID `gorm:"type:uuid;not null;index"`
	// FacilityType is the associated facility type (loaded via foreign key).
	FacilityType FacilityType `gorm:"foreignKey:FacilityTypeID"`
	// OrderableID is the approved product.
	OrderableID uuid.UUID `gorm:"type:uuid;not null;index"`
	// Orderable is the associated product (loaded via foreign key).
	Orderable Orderable `gorm:"foreignKey:OrderableID"`
	// ProgramID is the program the approval belongs to.
	ProgramID uuid.UUID `gorm:"type:uuid;not null;index"`
	// Program is the associated program (loaded via foreign key).
	Program Program `gorm:"foreignKey:ProgramID"`
	// MaxPeriodsOfStock caps how many periods of stock may be kept.
	MaxPeriodsOfStock float64
	// MinPeriodsOfStock is the reorder floor, zero when unset.
	MinPeriodsOfStock float64
	// EmergencyOrderPoint triggers emergency orders, zero when unset.
	EmergencyOrderPoint float64
	// Active indicates whether the approval is current.
	Active bool
	// CreatedAt is the timestamp when the approval was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the approval was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the FacilityTypeApprovedProduct model.
func (FacilityTypeApprovedProduct) TableName() string {
	return "facility_type_approved_products"
}
