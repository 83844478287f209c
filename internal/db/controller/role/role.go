// Package role provides CRUD operations for roles and their rights.
package role

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/domain"
	"github.com/openlogistics-io/referencedata/internal/message"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// GetAll retrieves all roles with their rights, ordered by name.
func GetAll(db *gorm.DB) ([]models.Role, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var roles []models.Role
	if result := db.Preload("Rights").Order("name").Find(&roles); result.Error != nil {
		return nil, result.Error
	}

	return roles, nil
}

// GetByID retrieves a role with its rights.
func GetByID(db *gorm.DB, id uuid.UUID) (*models.Role, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var role models.Role
	if result := db.Preload("Rights").First(&role, "id = ?", id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeyRoleNotFound)
		}

		return nil, result.Error
	}

	return &role, nil
}

// GetByName retrieves a role by its unique name.
func GetByName(db *gorm.DB, name string) (*models.Role, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var role models.Role
	if result := db.Preload("Rights").First(&role, "name = ?", name); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeyRoleNotFound)
		}

		return nil, result.Error
	}

	return &role, nil
}

// Create stores a new role with the given right names. The rights must all
// exist, be of one type and the role name must be free.
func Create(db *gorm.DB, name, description string, rightNames []string) (*models.Role, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	rights, err := resolveRights(db, rightNames)
	if err != nil {
		return nil, err
	}

	if err = validateGrouping(name, rights); err != nil {
		return nil, err
	}

	var existing models.Role
	if result := db.First(&existing, "name = ?", name); result.Error == nil {
		return nil, message.NewValidationError(message.KeyRoleNameDuplicated, name)
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	role := &models.Role{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Rights:      rights,
	}

	if result := db.Create(role); result.Error != nil {
		return nil, result.Error
	}

	return role, nil
}

// Update replaces name, description and the full right set of a role. The
// right set replacement is a diff: rights named in the request are added,
// rights missing from it are removed.
func Update(db *gorm.DB, id uuid.UUID, name, description string, rightNames []string) (*models.Role, error) {
	role, err := GetByID(db, id)
	if err != nil {
		return nil, err
	}

	rights, err := resolveRights(db, rightNames)
	if err != nil {
		return nil, err
	}

	if err = validateGrouping(name, rights); err != nil {
		return nil, err
	}

	if name != role.Name {
		var existing models.Role
		if result := db.First(&existing, "name = ?", name); result.Error == nil {
			return nil, message.NewValidationError(message.KeyRoleNameDuplicated, name)
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, result.Error
		}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		role.Name = name
		role.Description = description

		if result := tx.Model(role).Select("name", "description").Updates(role); result.Error != nil {
			return result.Error
		}

		return tx.Model(role).Association("Rights").Replace(rights)
	})
	if err != nil {
		return nil, err
	}

	role.Rights = rights

	return role, nil
}

// Delete removes a role and, through cascading, its right links and the
// role assignments granting it.
func Delete(db *gorm.DB, id uuid.UUID) error {
	role, err := GetByID(db, id)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(role).Association("Rights").Clear(); err != nil {
			return err
		}

		if result := tx.Where("role_id = ?", id).Delete(&models.RoleAssignment{}); result.Error != nil {
			return result.Error
		}

		if result := tx.Delete(role); result.Error != nil {
			return result.Error
		}

		return nil
	})
}

// CountUsers returns how many users hold the role through any assignment.
func CountUsers(db *gorm.DB, id uuid.UUID) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	result := db.Model(&models.RoleAssignment{}).
		Where("role_id = ?", id).
		Distinct("user_id").
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// resolveRights loads the named rights and fails on the first unknown name.
func resolveRights(db *gorm.DB, rightNames []string) ([]models.Right, error) {
	rights := make([]models.Right, 0, len(rightNames))

	for _, name := range rightNames {
		var right models.Right
		if result := db.First(&right, "name = ?", name); result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return nil, message.NewNotFoundError(message.KeyRightNotFound, name)
			}

			return nil, result.Error
		}

		rights = append(rights, right)
	}

	return rights, nil
}

// validateGrouping runs the domain grouping rules: at least one right, all
// of one type.
func validateGrouping(name string, rights []models.Right) error {
	domainRights := make([]domain.Right, 0, len(rights))
	for _, r := range rights {
		domainRights = append(domainRights, domain.NewRight(r.Name, domain.RightType(r.Type)))
	}

	_, err := domain.NewRole(name, domainRights...)

	return err
}
