// Package program provides CRUD operations for programs.
package program

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

// GetAll retrieves all programs ordered by name.
func GetAll(db *gorm.DB) ([]models.Program, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var programs []models.Program
	if result := db.Order("name").Find(&programs); result.Error != nil {
		return nil, result.Error
	}

	return programs, nil
}

// GetByID retrieves a program.
func GetByID(db *gorm.DB, id uuid.UUID) (*models.Program, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var program models.Program
	if result := db.First(&program, "id = ?", id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeyProgramNotFound)
		}

		return nil, result.Error
	}

	return &program, nil
}

// GetByCode retrieves a program by its unique code.
func GetByCode(db *gorm.DB, code string) (*models.Program, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var program models.Program
	if result := db.First(&program, "code = ?", code); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeyProgramNotFound, code)
		}

		return nil, result.Error
	}

	return &program, nil
}

// Search retrieves programs matching the validated search parameters. The
// name filter matches partially and case-insensitively.
func Search(db *gorm.DB, p *params.ProgramSearchParams) ([]models.Program, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	tx := db.Order("name")

	if ids := p.IDs(); len(ids) > 0 {
		tx = tx.Where("id IN ?", ids)
	}

	if name := p.Name(); name != "" {
		tx = tx.Where("name LIKE ?", "%"+name+"%")
	}

	var programs []models.Program
	if result := tx.Find(&programs); result.Error != nil {
		return nil, result.Error
	}

	return programs, nil
}

// Create stores a new program.
func Create(db *gorm.DB, program *models.Program) (*models.Program, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if program.ID == uuid.Nil {
		program.ID = uuid.New()
	}

	if result := db.Create(program); result.Error != nil {
		return nil, result.Error
	}

	return program, nil
}

// Update replaces the stored program fields.
func Update(db *gorm.DB, program *models.Program) (*models.Program, error) {
	if _, err := GetByID(db, program.ID); err != nil {
		return nil, err
	}

	result := db.Model(program).
		Select("code", "name", "description", "active",
			"periods_skippable", "skip_authorization").
		Updates(program)
	if result.Error != nil {
		return nil, result.Error
	}

	return GetByID(db, program.ID)
}

// Delete removes a program.
func Delete(db *gorm.DB, id uuid.UUID) error {
	program, err := GetByID(db, id)
	if err != nil {
		return err
	}

	return db.Delete(program).Error
}
