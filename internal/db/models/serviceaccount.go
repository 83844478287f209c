package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// ServiceAccount is an API client identity for trusted services. The API
// key is handed out once at creation and only its Argon2id hash is stored.
type ServiceAccount struct {
	// ID is the unique identifier for the service account.
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`
	// Name identifies the client service.
	Name string `gorm:"unique;size:100;not null"`
	// APIKeyHash is the Argon2id hash of the issued API key.
	APIKeyHash string `gorm:"size:255;not null"`
	// CreatedByID is the administrator who created the account.
	CreatedByID uuid.UUID `gorm:"type:uuid;not null"`
	// CreatedAt is the timestamp when the account was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the account was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the ServiceAccount model.
func (ServiceAccount) TableName() string {
	return "service_accounts"
}

// HashAPIKey hashes a plaintext API key using the Argon2id algorithm.
func HashAPIKey(key string) string {
	hash, err := argon2id.CreateHash(key, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash api key: %v", err)
	}

	return hash
}

// VerifyAPIKey verifies a plaintext API key against the stored hash.
// It uses constant-time comparison to prevent timing attacks.
func (a *ServiceAccount) VerifyAPIKey(key string) bool {
	match, err := argon2id.ComparePasswordAndHash(key, a.APIKeyHash)
	if err != nil {
		log.Error().Msgf("failed to verify api key: %v", err)
		return false
	}

	return match
}
