// Package approvedproduct serves the facility type approved products API:
// which orderables a facility type may requisition per program, with stock
// level parameters.
package approvedproduct

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/auth"
	"github.com/openlogistics-io/referencedata/internal/config"
	controller "github.com/openlogistics-io/referencedata/internal/db/controller/approvedproduct"
	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/web/handler"
	"github.com/openlogistics-io/referencedata/internal/web/params"
)

// Path is the path of the approved products collection.
const Path = handler.RootPath + "facilityTypeApprovedProducts"

// Dto is the wire representation of an approval.
type Dto struct {
	ID                  uuid.UUID `json:"id"`
	FacilityTypeID      uuid.UUID `json:"facilityTypeId" validate:"required"`
	OrderableID         uuid.UUID `json:"orderableId" validate:"required"`
	ProgramID           uuid.UUID `json:"programId" validate:"required"`
	MaxPeriodsOfStock   float64   `json:"maxPeriodsOfStock" validate:"required,gt=0"`
	MinPeriodsOfStock   float64   `json:"minPeriodsOfStock"`
	EmergencyOrderPoint float64   `json:"emergencyOrderPoint"`
	Active              bool      `json:"active"`
}

// Service is the approved products handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the approved products handler.
var Handler = Service{}

// Init initializes the approved products handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, rights *auth.RightService) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	manage := auth.RequireAdminRight(rights, auth.RightOrderablesManage)

	app.Get(Path, s.Search)
	app.Post(Path, manage, s.Post)
}

// Search returns the approvals matching the validated search parameters.
// The facilityType parameter is required by construction.
func (s *Service) Search(c *fiber.Ctx) error {
	p, err := params.NewApprovedProductSearchParams(handler.QueryValues(c))
	if err != nil {
		return err
	}

	approvals, err := controller.Search(s.db, p)
	if err != nil {
		return err
	}

	return c.JSON(toDtos(approvals))
}

// Post creates an approval.
func (s *Service) Post(c *fiber.Ctx) error {
	var body Dto
	if err := handler.ParseBody(c, &body); err != nil {
		return err
	}

	if err := handler.ValidateStruct(s.validator, &body); err != nil {
		return err
	}

	created, err := controller.Create(s.db, body.toModel())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toDto(created))
}

func toDto(row *models.FacilityTypeApprovedProduct) Dto {
	return Dto{
		ID:                  row.ID,
		FacilityTypeID:      row.FacilityTypeID,
		OrderableID:         row.OrderableID,
		ProgramID:           row.ProgramID,
		MaxPeriodsOfStock:   row.MaxPeriodsOfStock,
		MinPeriodsOfStock:   row.MinPeriodsOfStock,
		EmergencyOrderPoint: row.EmergencyOrderPoint,
		Active:              row.Active,
	}
}

func toDtos(rows []models.FacilityTypeApprovedProduct) []Dto {
	dtos := make([]Dto, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toDto(&rows[i]))
	}

	return dtos
}

func (d *Dto) toModel() *models.FacilityTypeApprovedProduct {
	return &models.FacilityTypeApprovedProduct{
		ID:                  d.ID,
		FacilityTypeID:      d.FacilityTypeID,
		OrderableID:         d.OrderableID,
		ProgramID:           d.ProgramID,
		MaxPeriodsOfStock:   d.MaxPeriodsOfStock,
		MinPeriodsOfStock:   d.MinPeriodsOfStock,
		EmergencyOrderPoint: d.EmergencyOrderPoint,
		Active:              d.Active,
	}
}
