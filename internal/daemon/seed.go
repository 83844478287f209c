package daemon

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/auth"
	"github.com/openlogistics-io/referencedata/internal/config"
	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/domain"
)

// systemRights is the closed set of rights the service knows. Rights are
// not created through the API; new ones are added here.
var systemRights = []models.Right{
	{Name: auth.RightFacilitiesManage, Type: string(domain.RightTypeGeneralAdmin)},
	{Name: auth.RightGeographicZoneManage, Type: string(domain.RightTypeGeneralAdmin)},
	{Name: auth.RightProgramsManage, Type: string(domain.RightTypeGeneralAdmin)},
	{Name: auth.RightOrderablesManage, Type: string(domain.RightTypeGeneralAdmin)},
	{Name: auth.RightSupplyLinesManage, Type: string(domain.RightTypeGeneralAdmin)},
	{Name: auth.RightSupervisoryNodesManage, Type: string(domain.RightTypeGeneralAdmin)},
	{Name: auth.RightProcessingSchedulesManage, Type: string(domain.RightTypeGeneralAdmin)},
	{Name: auth.RightSystemNotificationsManage, Type: string(domain.RightTypeGeneralAdmin)},
	{Name: auth.RightUsersManage, Type: string(domain.RightTypeGeneralAdmin)},
	{Name: auth.RightRightsView, Type: string(domain.RightTypeGeneralAdmin)},
	{Name: auth.RightRightsManage, Type: string(domain.RightTypeGeneralAdmin)},
	{Name: auth.RightRolesManage, Type: string(domain.RightTypeGeneralAdmin)},
	{Name: auth.RightRequisitionCreate, Type: string(domain.RightTypeSupervision)},
	{Name: auth.RightRequisitionApprove, Type: string(domain.RightTypeSupervision)},
	{Name: auth.RightOrdersView, Type: string(domain.RightTypeOrderFulfillment)},
	{Name: auth.RightPodsManage, Type: string(domain.RightTypeOrderFulfillment)},
	{Name: auth.RightReportsView, Type: string(domain.RightTypeOrderReport)},
}

// seed inserts the system rights and, on an empty database, a bootstrap
// admin holding every general-admin right through one role.
func seed(_ *config.Config, db *gorm.DB) {
	for _, right := range systemRights {
		var count int64
		db.Model(&models.Right{}).Where("name = ?", right.Name).Count(&count)

		if count == 0 {
			right.ID = uuid.New()
			if result := db.Create(&right); result.Error != nil {
				log.Error().Err(result.Error).Str("right", right.Name).Msg("failed to seed right")
			}
		}
	}

	var users int64
	db.Model(&models.User{}).Count(&users)

	if users > 0 {
		return
	}

	var adminRights []models.Right
	db.Where("type = ?", string(domain.RightTypeGeneralAdmin)).Find(&adminRights)

	adminRole := models.Role{
		ID:          uuid.New(),
		Name:        "System Administrator",
		Description: "Bootstrap role holding every general admin right",
		Rights:      adminRights,
	}
	if result := db.Create(&adminRole); result.Error != nil {
		log.Error().Err(result.Error).Msg("failed to seed admin role")
		return
	}

	admin := models.User{
		ID:       uuid.New(),
		Username: "admin",
		Active:   true,
	}
	if result := db.Create(&admin); result.Error != nil {
		log.Error().Err(result.Error).Msg("failed to seed admin user")
		return
	}

	assignment := models.RoleAssignment{
		ID:     uuid.New(),
		UserID: admin.ID,
		RoleID: adminRole.ID,
	}
	if result := db.Create(&assignment); result.Error != nil {
		log.Error().Err(result.Error).Msg("failed to seed admin role assignment")
	}
}
