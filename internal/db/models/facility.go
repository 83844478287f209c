package models

import (
	"time"

	"github.com/google/uuid"
)

// FacilityType classifies facilities (e.g. warehouse, health center) and is
// the anchor for facility type approved products.
type FacilityType struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code         string    `gorm:"unique;size:50;not null"`
	Name         string    `gorm:"size:100"`
	Description  string    `gorm:"size:255"`
	DisplayOrder int
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for the FacilityType model.
func (FacilityType) TableName() string {
	return "facility_types"
}

// GeographicZone is a node in the geographic hierarchy facilities live in.
type GeographicZone struct {
	ID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code     string     `gorm:"unique;size:50;not null"`
	Name     string     `gorm:"size:100"`
	Level    int        `gorm:"not null"`
	ParentID *uuid.UUID `gorm:"type:uuid"`
	// Children are the zones directly below this one.
	Children  []GeographicZone `gorm:"foreignKey:ParentID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the database table name for the GeographicZone model.
func (GeographicZone) TableName() string {
	return "geographic_zones"
}

// Facility represents a facility: a place where programs operate and stock
// is kept, from warehouses down to wards and service points.
type Facility struct {
	// ID is the unique identifier for the facility.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// Code is the unique facility code.
	Code string `gorm:"unique;size:50;not null"`
	// Name is the display name of the facility.
	Name string `gorm:"size:100"`
	// Description provides a human-readable description.
	Description string `gorm:"size:255"`
	// TypeID references the facility type.
	TypeID uuid.UUID `gorm:"type:uuid;not null"`
	// Type is the associated facility type (loaded via foreign key).
	Type FacilityType `gorm:"foreignKey:TypeID"`
	// GeographicZoneID places the facility in the geographic hierarchy.
	GeographicZoneID uuid.UUID `gorm:"type:uuid;not null"`
	// GeographicZone is the associated zone (loaded via foreign key).
	GeographicZone GeographicZone `gorm:"foreignKey:GeographicZoneID"`
	// Active indicates whether the facility is operational.
	Active bool
	// Enabled indicates whether the facility may be used in new workflows.
	Enabled bool
	// ExtraData holds free-form key/value metadata as a JSON document.
	ExtraData string `gorm:"type:text"`
	// CreatedAt is the timestamp when the facility was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the facility was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Facility model.
func (Facility) TableName() string {
	return "facilities"
}
