// Package user provides CRUD operations for user accounts and their role
// assignments.
package user

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/message"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// GetAll retrieves all users ordered by username.
func GetAll(db *gorm.DB) ([]models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var users []models.User
	if result := db.Order("username").Find(&users); result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

// GetByID retrieves a user with role assignments and their roles.
func GetByID(db *gorm.DB, id uuid.UUID) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var user models.User
	result := db.
		Preload("RoleAssignments").
		Preload("RoleAssignments.Role").
		Preload("RoleAssignments.Role.Rights").
		First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeyUserNotFound)
		}

		return nil, result.Error
	}

	return &user, nil
}

// GetByUsername retrieves a user by their unique username.
func GetByUsername(db *gorm.DB, username string) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var user models.User
	if result := db.First(&user, "username = ?", username); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeyUserNotFound)
		}

		return nil, result.Error
	}

	return &user, nil
}

// Create stores a new user. The username must be free.
func Create(db *gorm.DB, user *models.User) (*models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var existing models.User
	if result := db.First(&existing, "username = ?", user.Username); result.Error == nil {
		return nil, message.NewValidationError(message.KeyUserUsernameDuplicated, user.Username)
	} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	if result := db.Create(user); result.Error != nil {
		return nil, result.Error
	}

	return user, nil
}

// Update replaces the stored account fields of a user. Role assignments are
// managed separately through ReplaceRoleAssignments.
func Update(db *gorm.DB, user *models.User) (*models.User, error) {
	existing, err := GetByID(db, user.ID)
	if err != nil {
		return nil, err
	}

	if existing.Username != user.Username {
		if _, err = GetByUsername(db, user.Username); err == nil {
			return nil, message.NewValidationError(message.KeyUserUsernameDuplicated, user.Username)
		} else if !isNotFound(err) {
			return nil, err
		}
	}

	result := db.Model(user).
		Select("username", "first_name", "last_name", "email", "home_facility_id", "active").
		Updates(user)
	if result.Error != nil {
		return nil, result.Error
	}

	return GetByID(db, user.ID)
}

// Delete removes a user and, through cascading, their role assignments.
func Delete(db *gorm.DB, id uuid.UUID) error {
	user, err := GetByID(db, id)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("user_id = ?", id).Delete(&models.RoleAssignment{}); result.Error != nil {
			return result.Error
		}

		return tx.Delete(user).Error
	})
}

// ReplaceRoleAssignments swaps the user's full set of role assignments for
// the given one. Assignments missing from the new set are removed.
func ReplaceRoleAssignments(db *gorm.DB, userID uuid.UUID, assignments []models.RoleAssignment) error {
	if db == nil {
		return ErrDBNil
	}

	if _, err := GetByID(db, userID); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if result := tx.Where("user_id = ?", userID).Delete(&models.RoleAssignment{}); result.Error != nil {
			return result.Error
		}

		for i := range assignments {
			assignments[i].UserID = userID
			if assignments[i].ID == uuid.Nil {
				assignments[i].ID = uuid.New()
			}
		}

		if len(assignments) == 0 {
			return nil
		}

		return tx.Create(&assignments).Error
	})
}

// Search retrieves users filtered by username, first name, last name, email
// and home facility. String filters match partially and case-insensitively.
func Search(db *gorm.DB, username, firstName, lastName, email string, homeFacilityID uuid.UUID) ([]models.User, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	tx := db.Order("username")

	if username != "" {
		tx = tx.Where("username LIKE ?", "%"+username+"%")
	}

	if firstName != "" {
		tx = tx.Where("first_name LIKE ?", "%"+firstName+"%")
	}

	if lastName != "" {
		tx = tx.Where("last_name LIKE ?", "%"+lastName+"%")
	}

	if email != "" {
		tx = tx.Where("email LIKE ?", "%"+email+"%")
	}

	if homeFacilityID != uuid.Nil {
		tx = tx.Where("home_facility_id = ?", homeFacilityID)
	}

	var users []models.User
	if result := tx.Find(&users); result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

func isNotFound(err error) bool {
	var nfErr *message.NotFoundError
	return errors.As(err, &nfErr)
}
