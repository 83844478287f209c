package models

import (
	"time"

	"github.com/google/uuid"
)

// ProcessingSchedule is a named cadence of processing periods (e.g. monthly).
type ProcessingSchedule struct {
	// ID is the unique identifier for the schedule.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// Code is the unique schedule code.
	Code string `gorm:"unique;size:50;not null"`
	// Name is the display name of the schedule.
	Name string `gorm:"size:100"`
	// Description provides a human-readable description.
	Description string `gorm:"size:255"`
	// Periods are the periods of this schedule, ordered by start date.
	Periods []ProcessingPeriod `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE"`
	// CreatedAt is the timestamp when the schedule was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the schedule was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the ProcessingSchedule model.
func (ProcessingSchedule) TableName() string {
	return "processing_schedules"
}

// ProcessingPeriod is one contiguous date range within a schedule.
type ProcessingPeriod struct {
	// ID is the unique identifier for the period.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// ScheduleID references the owning schedule.
	ScheduleID uuid.UUID `gorm:"type:uuid;not null;index"`
	// Name is the display name of the period.
	Name string `gorm:"size:100;not null"`
	// Description provides a human-readable description.
	Description string `gorm:"size:255"`
	// StartDate is the first day of the period.
	StartDate time.Time `gorm:"not null"`
	// EndDate is the last day of the period.
	EndDate time.Time `gorm:"not null"`
	// CreatedAt is the timestamp when the period was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the period was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the ProcessingPeriod model.
func (ProcessingPeriod) TableName() string {
	return "processing_periods"
}
