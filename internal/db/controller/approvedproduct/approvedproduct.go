// Package approvedproduct provides search over facility type approved
// products.
package approvedproduct

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/web/params"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// Search retrieves approved products for the requested facility types,
// optionally narrowed by program, orderables and active state.
func Search(db *gorm.DB, p *params.ApprovedProductSearchParams) ([]models.FacilityTypeApprovedProduct, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	tx := db.Model(&models.FacilityTypeApprovedProduct{}).
		Joins("JOIN facility_types ft ON ft.id = facility_type_approved_products.facility_type_id").
		Where("ft.code IN ?", p.FacilityTypeCodes()).
		Where("facility_type_approved_products.active = ?", p.Active()).
		Order("facility_type_approved_products.id")

	if programCode := p.ProgramCode(); programCode != "" {
		tx = tx.
			Joins("JOIN programs ON programs.id = facility_type_approved_products.program_id").
			Where("programs.code = ?", programCode)
	}

	if orderableIDs := p.OrderableIDs(); len(orderableIDs) > 0 {
		tx = tx.Where("facility_type_approved_products.orderable_id IN ?", orderableIDs)
	}

	var approvals []models.FacilityTypeApprovedProduct
	result := tx.
		Preload("FacilityType").
		Preload("Orderable").
		Preload("Program").
		Find(&approvals)
	if result.Error != nil {
		return nil, result.Error
	}

	return approvals, nil
}

// Create stores a new approval.
func Create(db *gorm.DB, approval *models.FacilityTypeApprovedProduct) (*models.FacilityTypeApprovedProduct, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if approval.ID == uuid.Nil {
		approval.ID = uuid.New()
	}

	if result := db.Create(approval); result.Error != nil {
		return nil, result.Error
	}

	return approval, nil
}
