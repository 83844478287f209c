package models

import (
	"time"

	"github.com/google/uuid"
)

// SystemNotification is a banner message shown to all users, authored by an
// administrator and optionally limited to a date window.
type SystemNotification struct {
	// ID is the unique identifier for the notification.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// Title is the short headline of the notification.
	Title string `gorm:"size:255"`
	// Message is the notification body.
	Message string `gorm:"type:text;not null"`
	// AuthorID is the administrator who created the notification.
	AuthorID uuid.UUID `gorm:"type:uuid;not null;index"`
	// Author is the associated user (loaded via foreign key).
	Author User `gorm:"foreignKey:AuthorID"`
	// Active indicates whether the notification may be displayed at all.
	Active bool
	// StartDate is when display starts, nil for immediately.
	StartDate *time.Time
	// ExpiryDate is when display stops, nil for never.
	ExpiryDate *time.Time
	// CreatedAt is the timestamp when the notification was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the notification was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the SystemNotification model.
func (SystemNotification) TableName() string {
	return "system_notifications"
}

// IsDisplayed reports whether the notification is visible at the given time:
// it must be active, started and not expired.
func (n *SystemNotification) IsDisplayed(now time.Time) bool {
	if !n.Active {
		return false
	}

	if n.StartDate != nil && now.Before(*n.StartDate) {
		return false
	}

	if n.ExpiryDate != nil && !now.Before(*n.ExpiryDate) {
		return false
	}

	return true
}
