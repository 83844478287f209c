// Package facility provides CRUD and search for facilities, facility types
// and geographic zones.
package facility

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/message"
	"github.com/openlogistics-io/referencedata/internal/web/params"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// wardServiceTypeCode marks ward and service point facility types, excluded
// from searches on request.
const wardServiceTypeCode = "WS"

// GetAll retrieves all facilities with type and zone, ordered by code.
func GetAll(db *gorm.DB) ([]models.Facility, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var facilities []models.Facility
	result := db.Preload("Type").Preload("GeographicZone").Order("code").Find(&facilities)
	if result.Error != nil {
		return nil, result.Error
	}

	return facilities, nil
}

// GetByID retrieves a facility with type and zone.
func GetByID(db *gorm.DB, id uuid.UUID) (*models.Facility, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var facility models.Facility
	result := db.Preload("Type").Preload("GeographicZone").First(&facility, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeyFacilityNotFound)
		}

		return nil, result.Error
	}

	return &facility, nil
}

// Create stores a new facility. Type and zone must exist.
func Create(db *gorm.DB, facility *models.Facility) (*models.Facility, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if _, err := GetTypeByID(db, facility.TypeID); err != nil {
		return nil, err
	}

	if _, err := GetZoneByID(db, facility.GeographicZoneID); err != nil {
		return nil, err
	}

	if facility.ID == uuid.Nil {
		facility.ID = uuid.New()
	}

	if result := db.Create(facility); result.Error != nil {
		return nil, result.Error
	}

	return GetByID(db, facility.ID)
}

// Update replaces the stored facility fields.
func Update(db *gorm.DB, facility *models.Facility) (*models.Facility, error) {
	if _, err := GetByID(db, facility.ID); err != nil {
		return nil, err
	}

	result := db.Model(facility).
		Select("code", "name", "description", "type_id", "geographic_zone_id",
			"active", "enabled", "extra_data").
		Updates(facility)
	if result.Error != nil {
		return nil, result.Error
	}

	return GetByID(db, facility.ID)
}

// Delete removes a facility.
func Delete(db *gorm.DB, id uuid.UUID) error {
	facility, err := GetByID(db, id)
	if err != nil {
		return err
	}

	return db.Delete(facility).Error
}

// Search retrieves facilities matching the validated search parameters.
// With recurse set, the zone filter covers the zone's full subtree.
func Search(db *gorm.DB, p *params.FacilitySearchParams) ([]models.Facility, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	tx := db.Model(&models.Facility{}).Order("facilities.code")

	if ids := p.IDs(); len(ids) > 0 {
		tx = tx.Where("facilities.id IN ?", ids)
	}

	if code := p.Code(); code != "" {
		tx = tx.Where("facilities.code = ?", code)
	}

	if name := p.Name(); name != "" {
		tx = tx.Where("facilities.name LIKE ?", "%"+name+"%")
	}

	if typeCode := p.FacilityTypeCode(); typeCode != "" {
		tx = tx.
			Joins("JOIN facility_types ft ON ft.id = facilities.type_id").
			Where("ft.code = ?", typeCode)
	}

	if p.ExcludeWardsServices() {
		tx = tx.Where(
			"facilities.type_id NOT IN (?)",
			db.Model(&models.FacilityType{}).Select("id").Where("code = ?", wardServiceTypeCode),
		)
	}

	if active := p.Active(); active != nil {
		tx = tx.Where("facilities.active = ?", *active)
	}

	if zoneID := p.ZoneID(); zoneID != uuid.Nil {
		zoneIDs := []uuid.UUID{zoneID}

		if p.Recurse() {
			subtree, err := zoneSubtree(db, zoneID)
			if err != nil {
				return nil, err
			}

			zoneIDs = subtree
		}

		tx = tx.Where("facilities.geographic_zone_id IN ?", zoneIDs)
	}

	var facilities []models.Facility
	result := tx.Preload("Type").Preload("GeographicZone").Find(&facilities)
	if result.Error != nil {
		return nil, result.Error
	}

	if extra := p.ExtraData(); len(extra) > 0 {
		facilities = filterByExtraData(facilities, extra)
	}

	return facilities, nil
}

// filterByExtraData keeps facilities whose extra data document contains all
// requested key/value pairs. Matching happens in memory since the document
// is stored as JSON text.
func filterByExtraData(facilities []models.Facility, wanted map[string]string) []models.Facility {
	matched := make([]models.Facility, 0, len(facilities))

	for _, facility := range facilities {
		if facility.ExtraData == "" {
			continue
		}

		var doc map[string]string
		if err := json.Unmarshal([]byte(facility.ExtraData), &doc); err != nil {
			continue
		}

		ok := true

		for key, value := range wanted {
			if doc[key] != value {
				ok = false
				break
			}
		}

		if ok {
			matched = append(matched, facility)
		}
	}

	return matched
}

// zoneSubtree collects the zone and all its descendants breadth-first.
func zoneSubtree(db *gorm.DB, rootID uuid.UUID) ([]uuid.UUID, error) {
	subtree := []uuid.UUID{rootID}
	frontier := []uuid.UUID{rootID}

	for len(frontier) > 0 {
		var children []models.GeographicZone
		if result := db.Where("parent_id IN ?", frontier).Find(&children); result.Error != nil {
			return nil, result.Error
		}

		frontier = frontier[:0]
		for _, child := range children {
			subtree = append(subtree, child.ID)
			frontier = append(frontier, child.ID)
		}
	}

	return subtree, nil
}
