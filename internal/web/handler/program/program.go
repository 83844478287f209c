// Package program serves the programs API.
package program

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/auth"
	"github.com/openlogistics-io/referencedata/internal/config"
	controller "github.com/openlogistics-io/referencedata/internal/db/controller/program"
	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/message"
	"github.com/openlogistics-io/referencedata/internal/web/handler"
	"github.com/openlogistics-io/referencedata/internal/web/params"
)

// Path is the path of the programs collection.
const Path = handler.RootPath + "programs"

// Dto is the wire representation of a program.
type Dto struct {
	ID                uuid.UUID `json:"id"`
	Code              string    `json:"code" validate:"required"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Active            bool      `json:"active"`
	PeriodsSkippable  bool      `json:"periodsSkippable"`
	SkipAuthorization bool      `json:"skipAuthorization"`
}

// Service is the programs handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the programs handler.
var Handler = Service{}

// Init initializes the programs handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, rights *auth.RightService) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	manage := auth.RequireAdminRight(rights, auth.RightProgramsManage)

	app.Get(Path, s.Search)
	app.Get(Path+"/:id", s.Get)
	app.Post(Path, manage, s.Post)
	app.Put(Path+"/:id", manage, s.Put)
	app.Delete(Path+"/:id", manage, s.Delete)
}

// Search returns the programs matching the id and name query parameters;
// without parameters it returns every program.
func (s *Service) Search(c *fiber.Ctx) error {
	p, err := params.NewProgramSearchParams(handler.QueryValues(c))
	if err != nil {
		return err
	}

	programs, err := controller.Search(s.db, p)
	if err != nil {
		return err
	}

	return c.JSON(toDtos(programs))
}

// Get returns one program.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyProgramNotFound)
	if err != nil {
		return err
	}

	program, err := controller.GetByID(s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(toDto(program))
}

// Post creates a program.
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

// Put updates a program.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyProgramNotFound)
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

// Delete removes a program.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyProgramNotFound)
	if err != nil {
		return err
	}

	if err := controller.Delete(s.db, id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func toDto(row *models.Program) Dto {
	return Dto{
		ID:                row.ID,
		Code:              row.Code,
		Name:              row.Name,
		Description:       row.Description,
		Active:            row.Active,
		PeriodsSkippable:  row.PeriodsSkippable,
		SkipAuthorization: row.SkipAuthorization,
	}
}

func toDtos(rows []models.Program) []Dto {
	dtos := make([]Dto, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toDto(&rows[i]))
	}

	return dtos
}

func (d *Dto) toModel() *models.Program {
	return &models.Program{
		ID:                d.ID,
		Code:              d.Code,
		Name:              d.Name,
		Description:       d.Description,
		Active:            d.Active,
		PeriodsSkippable:  d.PeriodsSkippable,
		SkipAuthorization: d.SkipAuthorization,
	}
}
