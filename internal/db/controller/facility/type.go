package facility

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/message"
)

// GetAllTypes retrieves all facility types ordered by display order.
func GetAllTypes(db *gorm.DB) ([]models.FacilityType, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var types []models.FacilityType
	if result := db.Order("display_order").Find(&types); result.Error != nil {
		return nil, result.Error
	}

	return types, nil
}

// GetTypeByID retrieves a facility type.
func GetTypeByID(db *gorm.DB, id uuid.UUID) (*models.FacilityType, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var facilityType models.FacilityType
	if result := db.First(&facilityType, "id = ?", id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeyFacilityTypeNotFound)
		}

		return nil, result.Error
	}

	return &facilityType, nil
}

// GetTypeByCode retrieves a facility type by its unique code.
func GetTypeByCode(db *gorm.DB, code string) (*models.FacilityType, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var facilityType models.FacilityType
	if result := db.First(&facilityType, "code = ?", code); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeyFacilityTypeNotFound, code)
		}

		return nil, result.Error
	}

	return &facilityType, nil
}

// CreateType stores a new facility type.
func CreateType(db *gorm.DB, facilityType *models.FacilityType) (*models.FacilityType, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if facilityType.ID == uuid.Nil {
		facilityType.ID = uuid.New()
	}

	if result := db.Create(facilityType); result.Error != nil {
		return nil, result.Error
	}

	return facilityType, nil
}

// GetZoneByID retrieves a geographic zone.
func GetZoneByID(db *gorm.DB, id uuid.UUID) (*models.GeographicZone, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var zone models.GeographicZone
	if result := db.First(&zone, "id = ?", id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeyGeographicZoneNotFound)
		}

		return nil, result.Error
	}

	return &zone, nil
}

// CreateZone stores a new geographic zone.
func CreateZone(db *gorm.DB, zone *models.GeographicZone) (*models.GeographicZone, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if zone.ID == uuid.Nil {
		zone.ID = uuid.New()
	}

	if zone.ParentID != nil {
		if _, err := GetZoneByID(db, *zone.ParentID); err != nil {
			return nil, err
		}
	}

	if result := db.Create(zone); result.Error != nil {
		return nil, result.Error
	}

	return zone, nil
}
