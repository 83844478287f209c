// Package serviceaccount provides CRUD for API client accounts.
package serviceaccount

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/message"
	"github.com/openlogistics-io/referencedata/internal/keygen"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// apiKeyLen is the length of generated API keys.
const apiKeyLen = 32

// GetAll retrieves all service accounts ordered by name.
func GetAll(db *gorm.DB) ([]models.ServiceAccount, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var accounts []models.ServiceAccount
	if result := db.Order("name").Find(&accounts); result.Error != nil {
		return nil, result.Error
	}

	return accounts, nil
}

// GetByID retrieves a service account.
func GetByID(db *gorm.DB, id uuid.UUID) (*models.ServiceAccount, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var account models.ServiceAccount
	if result := db.First(&account, "id = ?", id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeyServiceAccountNotFound)
		}

		return nil, result.Error
	}

	return &account, nil
}

// Create stores a new service account and returns it together with the
// freshly generated plaintext API key. The key is shown exactly once; only
// its hash is stored.
func Create(db *gorm.DB, name string, createdBy uuid.UUID) (*models.ServiceAccount, string, error) {
	if db == nil {
		return nil, "", ErrDBNil
	}

	apiKey := keygen.NewKey(apiKeyLen)

	account := &models.ServiceAccount{
		ID:          uuid.New(),
		Name:        name,
		APIKeyHash:  models.HashAPIKey(apiKey),
		CreatedByID: createdBy,
	}

	if result := db.Create(account); result.Error != nil {
		return nil, "", result.Error
	}

	return account, apiKey, nil
}

// Delete removes a service account, revoking its key.
func Delete(db *gorm.DB, id uuid.UUID) error {
	account, err := GetByID(db, id)
	if err != nil {
		return err
	}

	return db.Delete(account).Error
}
