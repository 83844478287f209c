// Package right provides access to the set of system rights. The set is
// seeded at startup; saves only adjust metadata and deletes are refused
// while a role still carries the right.
package right

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/message"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// GetAll retrieves all rights ordered by name.
func GetAll(db *gorm.DB) ([]models.Right, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rights []models.Right
	if result := db.Order("name").Find(&rights); result.Error != nil {
		return nil, result.Error
	}

	return rights, nil
}

// GetByID retrieves a right by its ID.
func GetByID(db *gorm.DB, id uuid.UUID) (*models.Right, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var right models.Right
	if result := db.First(&right, "id = ?", id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeyRightNotFound)
		}

		return nil, result.Error
	}

	return &right, nil
}

// GetByName retrieves a right by its unique name.
func GetByName(db *gorm.DB, name string) (*models.Right, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var right models.Right
	if result := db.First(&right, "name = ?", name); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeyRightNotFound)
		}

		return nil, result.Error
	}

	return &right, nil
}

// Save upserts a right by name: an existing right keeps its identity and
// gets the new type and description, an unknown name is inserted.
func Save(db *gorm.DB, right *models.Right) (*models.Right, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.Right
	result := db.First(&existing, "name = ?", right.Name)

	switch {
	case result.Error == nil:
		existing.Type = right.Type
		existing.Description = right.Description

		if result := db.Save(&existing); result.Error != nil {
			return nil, result.Error
		}

		return &existing, nil
	case errors.Is(result.Error, gorm.ErrRecordNotFound):
		if right.ID == uuid.Nil {
			right.ID = uuid.New()
		}

		if result := db.Create(right); result.Error != nil {
			return nil, result.Error
		}

		return right, nil
	default:
		return nil, result.Error
	}
}

// Delete removes a right. Rights still carried by a role cannot be deleted.
func Delete(db *gorm.DB, id uuid.UUID) error {
	if db == nil {
		return ErrDBNil
	}

	if _, err := GetByID(db, id); err != nil {
		return err
	}

	var references int64
	if result := db.Table("role_rights").Where("right_id = ?", id).Count(&references); result.Error != nil {
		return result.Error
	}

	if references > 0 {
		return message.NewValidationError(message.KeyRightInUse)
	}

	if result := db.Delete(&models.Right{}, "id = ?", id); result.Error != nil {
		return result.Error
	}

	return nil
}

// Search retrieves rights filtered by name and type; empty filters match
// everything.
func Search(db *gorm.DB, name, rightType string) ([]models.Right, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	tx := db.Order("name")
	if name != "" {
		tx = tx.Where("name = ?", name)
	}

	if rightType != "" {
		tx = tx.Where("type = ?", rightType)
	}

	var rights []models.Right
	if result := tx.Find(&rights); result.Error != nil {
		return nil, result.Error
	}

	return rights, nil
}
