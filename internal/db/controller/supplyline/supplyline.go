// Package supplyline provides CRUD and search for supply lines.
package supplyline

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

// expandSupplyingFacility is the only expand value the search supports.
const expandSupplyingFacility = "supplyingFacility"

// GetByID retrieves a supply line with its associations.
func GetByID(db *gorm.DB, id uuid.UUID) (*models.SupplyLine, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var line models.SupplyLine
	result := db.
		Preload("SupervisoryNode").
		Preload("Program").
		Preload("SupplyingFacility").
		First(&line, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeySupplyLineNotFound)
		}

		return nil, result.Error
	}

	return &line, nil
}

// Search retrieves supply lines matching the validated search parameters.
// The supplying facility association is loaded only when expanded.
func Search(db *gorm.DB, p *params.SupplyLineSearchParams) ([]models.SupplyLine, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	tx := db.Model(&models.SupplyLine{}).Order("id")

	if programID := p.ProgramID(); programID != uuid.Nil {
		tx = tx.Where("program_id = ?", programID)
	}

	if nodeID := p.SupervisoryNodeID(); nodeID != uuid.Nil {
		tx = tx.Where("supervisory_node_id = ?", nodeID)
	}

	if facilityIDs := p.SupplyingFacilityIDs(); len(facilityIDs) > 0 {
		tx = tx.Where("supplying_facility_id IN ?", facilityIDs)
	}

	for _, expand := range p.Expand() {
		if expand == expandSupplyingFacility {
			tx = tx.Preload("SupplyingFacility")
		}
	}

	var lines []models.SupplyLine
	if result := tx.Find(&lines); result.Error != nil {
		return nil, result.Error
	}

	return lines, nil
}

// Create stores a new supply line. Node, program and warehouse must exist.
func Create(db *gorm.DB, line *models.SupplyLine) (*models.SupplyLine, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if err := checkReferences(db, line); err != nil {
		return nil, err
	}

	if line.ID == uuid.Nil {
		line.ID = uuid.New()
	}

	if result := db.Create(line); result.Error != nil {
		return nil, result.Error
	}

	return GetByID(db, line.ID)
}

// Update replaces the stored supply line fields.
func Update(db *gorm.DB, line *models.SupplyLine) (*models.SupplyLine, error) {
	if _, err := GetByID(db, line.ID); err != nil {
		return nil, err
	}

	if err := checkReferences(db, line); err != nil {
		return nil, err
	}

	result := db.Model(line).
		Select("supervisory_node_id", "program_id", "supplying_facility_id", "description").
		Updates(line)
	if result.Error != nil {
		return nil, result.Error
	}

	return GetByID(db, line.ID)
}

// Delete removes a supply line.
func Delete(db *gorm.DB, id uuid.UUID) error {
	line, err := GetByID(db, id)
	if err != nil {
		return err
	}

	return db.Delete(line).Error
}

func checkReferences(db *gorm.DB, line *models.SupplyLine) error {
	var node models.SupervisoryNode
	if result := db.First(&node, "id = ?", line.SupervisoryNodeID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return message.NewNotFoundError(message.KeySupervisoryNodeNotFound)
		}

		return result.Error
	}

	var program models.Program
	if result := db.First(&program, "id = ?", line.ProgramID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return message.NewNotFoundError(message.KeyProgramNotFound)
		}

		return result.Error
	}

	var warehouse models.Facility
	if result := db.First(&warehouse, "id = ?", line.SupplyingFacilityID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return message.NewNotFoundError(message.KeyFacilityNotFound)
		}

		return result.Error
	}

	return nil
}
