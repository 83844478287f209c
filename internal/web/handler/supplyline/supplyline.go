// Package supplyline serves the supply lines API: which warehouse supplies
// a supervisory node's facilities for a program.
package supplyline

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/auth"
	"github.com/openlogistics-io/referencedata/internal/config"
	controller "github.com/openlogistics-io/referencedata/internal/db/controller/supplyline"
	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/message"
	"github.com/openlogistics-io/referencedata/internal/web/handler"
	"github.com/openlogistics-io/referencedata/internal/web/params"
)

// Path is the path of the supply lines collection.
const Path = handler.RootPath + "supplyLines"

// Dto is the wire representation of a supply line. SupplyingFacilityName is
// filled only when the search expanded the supplying facility.
type Dto struct {
	ID                    uuid.UUID `json:"id"`
	SupervisoryNodeID     uuid.UUID `json:"supervisoryNodeId" validate:"required"`
	ProgramID             uuid.UUID `json:"programId" validate:"required"`
	SupplyingFacilityID   uuid.UUID `json:"supplyingFacilityId" validate:"required"`
	SupplyingFacilityName string    `json:"supplyingFacilityName,omitempty"`
	Description           string    `json:"description"`
}

// Service is the supply lines handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the supply lines handler.
var Handler = Service{}

// Init initializes the supply lines handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, rights *auth.RightService) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	manage := auth.RequireAdminRight(rights, auth.RightSupplyLinesManage)

	app.Get(Path, s.Search)
	app.Get(Path+"/:id", s.Get)
	app.Post(Path, manage, s.Post)
	app.Put(Path+"/:id", manage, s.Put)
	app.Delete(Path+"/:id", manage, s.Delete)
}

// Search returns the supply lines matching the validated search parameters.
func (s *Service) Search(c *fiber.Ctx) error {
	p, err := params.NewSupplyLineSearchParams(handler.QueryValues(c))
	if err != nil {
		return err
	}

	lines, err := controller.Search(s.db, p)
	if err != nil {
		return err
	}

	return c.JSON(toDtos(lines))
}

// Get returns one supply line.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeySupplyLineNotFound)
	if err != nil {
		return err
	}

	line, err := controller.GetByID(s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(toDto(line))
}

// Post creates a supply line after checking the referenced node, program
// and warehouse exist.
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

// Put updates a supply line.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeySupplyLineNotFound)
	if err != nil {
		return err
	}

	var body Dto
	if err := handler.ParseBody(c, &body); err != nil {
		return err
	}

	if err := handler.ValidateStruct(s.validator, &body); err != nil {
		return err
	}

	row := body.toModel()
	row.ID = id

	updated, err := controller.Update(s.db, row)
	if err != nil {
		return err
	}

	return c.JSON(toDto(updated))
}

// Delete removes a supply line.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeySupplyLineNotFound)
	if err != nil {
		return err
	}

	if err := controller.Delete(s.db, id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func toDto(row *models.SupplyLine) Dto {
	dto := Dto{
		ID:                  row.ID,
		SupervisoryNodeID:   row.SupervisoryNodeID,
		ProgramID:           row.ProgramID,
		SupplyingFacilityID: row.SupplyingFacilityID,
		Description:         row.Description,
	}

	if row.SupplyingFacility.ID != uuid.Nil {
		dto.SupplyingFacilityName = row.SupplyingFacility.Name
	}

	return dto
}

func toDtos(rows []models.SupplyLine) []Dto {
	dtos := make([]Dto, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toDto(&rows[i]))
	}

	return dtos
}

func (d *Dto) toModel() *models.SupplyLine {
	return &models.SupplyLine{
		ID:                  d.ID,
		SupervisoryNodeID:   d.SupervisoryNodeID,
		ProgramID:           d.ProgramID,
		SupplyingFacilityID: d.SupplyingFacilityID,
		Description:         d.Description,
	}
}
