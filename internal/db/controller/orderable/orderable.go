// Package orderable provides CRUD and search for products, including the
// fulfill lookup used by ordering services.
package orderable

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/message"
	"github.com/openlogistics-io/referencedata/internal/web/params"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// GetByID retrieves an orderable with its program memberships.
func GetByID(db *gorm.DB, id uuid.UUID) (*models.Orderable, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var orderable models.Orderable
	result := db.
		Preload("ProgramOrderables").
		Preload("ProgramOrderables.Program").
		First(&orderable, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeyOrderableNotFound)
		}

		return nil, result.Error
	}

	return &orderable, nil
}

// Search retrieves orderables matching the validated search parameters;
// empty parameters match everything.
func Search(db *gorm.DB, p *params.OrderableSearchParams) ([]models.Orderable, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	tx := db.Model(&models.Orderable{}).Order("orderables.code")

	if !p.IsEmpty() {
		if ids := p.IDs(); len(ids) > 0 {
			tx = tx.Where("orderables.id IN ?", ids)
		}

		if code := p.Code(); code != "" {
			tx = tx.Where("orderables.code = ?", code)
		}

		if name := p.Name(); name != "" {
			tx = tx.Where("orderables.name LIKE ?", "%"+name+"%")
		}

		if programCode := p.ProgramCode(); programCode != "" {
			tx = tx.
				Joins("JOIN program_orderables po ON po.orderable_id = orderables.id").
				Joins("JOIN programs ON programs.id = po.program_id").
				Where("programs.code = ?", programCode)
		}
	}

	var orderables []models.Orderable
	result := tx.
		Preload("ProgramOrderables").
		Preload("ProgramOrderables.Program").
		Find(&orderables)
	if result.Error != nil {
		return nil, result.Error
	}

	return orderables, nil
}

// SearchFulfills retrieves the orderables that can be ordered at a facility:
// either the explicitly requested ids, or everything approved for the
// facility's type within the given programs.
func SearchFulfills(db *gorm.DB, p *params.OrderableFulfillSearchParams) ([]models.Orderable, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if ids := p.IDs(); len(ids) > 0 {
		var orderables []models.Orderable
		result := db.
			Preload("ProgramOrderables").
			Where("id IN ?", ids).
			Order("code").
			Find(&orderables)
		if result.Error != nil {
			return nil, result.Error
		}

		return orderables, nil
	}

	if !p.IsSearchByFacilityAndProgram() {
		return nil, nil
	}

	var facility models.Facility
	if result := db.First(&facility, "id = ?", p.FacilityID()); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeyFacilityNotFound)
		}

		return nil, result.Error
	}

	var orderables []models.Orderable
	result := db.Model(&models.Orderable{}).
		Joins("JOIN facility_type_approved_products ftap ON ftap.orderable_id = orderables.id").
		Where("ftap.facility_type_id = ?", facility.TypeID).
		Where("ftap.program_id IN ?", p.ProgramIDs()).
		Where("ftap.active = ?", true).
		Order("orderables.code").
		Preload("ProgramOrderables").
		Find(&orderables)
	if result.Error != nil {
		return nil, result.Error
	}

	return orderables, nil
}

// Create stores a new orderable with its program memberships.
func Create(db *gorm.DB, orderable *models.Orderable) (*models.Orderable, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if orderable.ID == uuid.Nil {
		orderable.ID = uuid.New()
	}

	for i := range orderable.ProgramOrderables {
		if orderable.ProgramOrderables[i].ID == uuid.Nil {
			orderable.ProgramOrderables[i].ID = uuid.New()
		}

		orderable.ProgramOrderables[i].OrderableID = orderable.ID
	}

	if result := db.Create(orderable); result.Error != nil {
		return nil, result.Error
	}

	return GetByID(db, orderable.ID)
}

// Update replaces the stored orderable fields and its program memberships.
func Update(db *gorm.DB, orderable *models.Orderable) (*models.Orderable, error) {
	if _, err := GetByID(db, orderable.ID); err != nil {
		return nil, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(orderable).
			Select("code", "name", "description", "pack_rounding_threshold",
				"net_content", "round_to_zero").
			Updates(orderable)
		if result.Error != nil {
			return result.Error
		}

		if result := tx.Where("orderable_id = ?", orderable.ID).Delete(&models.ProgramOrderable{}); result.Error != nil {
			return result.Error
		}

		for i := range orderable.ProgramOrderables {
			if orderable.ProgramOrderables[i].ID == uuid.Nil {
				orderable.ProgramOrderables[i].ID = uuid.New()
			}

			orderable.ProgramOrderables[i].OrderableID = orderable.ID
		}

		if len(orderable.ProgramOrderables) == 0 {
			return nil
		}

		return tx.Create(&orderable.ProgramOrderables).Error
	})
	if err != nil {
		return nil, err
	}

	return GetByID(db, orderable.ID)
}
