// Package systemnotification provides CRUD and search for system wide
// banner notifications.
package systemnotification

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/message"
	"github.com/openlogistics-io/referencedata/internal/web/params"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// expandAuthor is the only expand value the search supports.
const expandAuthor = "author"

// GetByID retrieves a notification.
func GetByID(db *gorm.DB, id uuid.UUID) (*models.SystemNotification, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var notification models.SystemNotification
	if result := db.First(&notification, "id = ?", id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeySystemNotificationNotFound)
		}

		return nil, result.Error
	}

	return &notification, nil
}

// Search retrieves notifications matching the validated search parameters,
// newest first. The isDisplayed filter is evaluated against the current
// time since display state is derived, not stored.
func Search(db *gorm.DB, p *params.SystemNotificationSearchParams, now time.Time) ([]models.SystemNotification, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	tx := db.Model(&models.SystemNotification{}).Order("created_at DESC")

	if authorID := p.AuthorID(); authorID != uuid.Nil {
		tx = tx.Where("author_id = ?", authorID)
	}

	for _, expand := range p.Expand() {
		if expand == expandAuthor {
			tx = tx.Preload("Author")
		}
	}

	var notifications []models.SystemNotification
	if result := tx.Find(&notifications); result.Error != nil {
		return nil, result.Error
	}

	if isDisplayed := p.IsDisplayed(); isDisplayed != nil {
		filtered := make([]models.SystemNotification, 0, len(notifications))

		for _, notification := range notifications {
			if notification.IsDisplayed(now) == *isDisplayed {
				filtered = append(filtered, notification)
			}
		}

		notifications = filtered
	}

	return notifications, nil
}

// Create stores a new notification.
func Create(db *gorm.DB, notification *models.SystemNotification) (*models.SystemNotification, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}

	if result := db.Create(notification); result.Error != nil {
		return nil, result.Error
	}

	return notification, nil
}

// Update replaces the stored notification fields.
func Update(db *gorm.DB, notification *models.SystemNotification) (*models.SystemNotification, error) {
	if _, err := GetByID(db, notification.ID); err != nil {
		return nil, err
	}

	result := db.Model(notification).
		Select("title", "message", "active", "start_date", "expiry_date").
		Updates(notification)
	if result.Error != nil {
		return nil, result.Error
	}

	return GetByID(db, notification.ID)
}

// Delete removes a notification.
func Delete(db *gorm.DB, id uuid.UUID) error {
	notification, err := GetByID(db, id)
	if err != nil {
		return err
	}

	return db.Delete(notification).Error
}
