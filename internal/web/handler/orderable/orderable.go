// Package orderable serves the orderables API, including the fulfill lookup
// answering which products a facility may order within its programs.
package orderable

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/auth"
	"github.com/openlogistics-io/referencedata/internal/config"
	controller "github.com/openlogistics-io/referencedata/internal/db/controller/orderable"
	"github.com/openlogistics-io/referencedata/internal/message"
	"github.com/openlogistics-io/referencedata/internal/web/handler"
	"github.com/openlogistics-io/referencedata/internal/web/params"
)

const (
	// Path is the path of the orderables collection.
	Path = handler.RootPath + "orderables"

	// FulfillsPath is the path of the fulfill lookup.
	FulfillsPath = handler.RootPath + "orderableFulfills"
)

// Service is the orderables handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the orderables handler.
var Handler = Service{}

// Init initializes the orderables handler and registers its routes.
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
	app.Get(FulfillsPath, s.SearchFulfills)
	app.Get(Path+"/:id", s.Get)
	app.Post(Path, manage, s.Post)
	app.Put(Path+"/:id", manage, s.Put)
}

// Search returns the orderables matching the validated search parameters;
// an empty query returns every orderable.
func (s *Service) Search(c *fiber.Ctx) error {
	p, err := params.NewOrderableSearchParams(handler.QueryValues(c))
	if err != nil {
		return err
	}

	orderables, err := controller.Search(s.db, p)
	if err != nil {
		return err
	}

	return c.JSON(toDtos(orderables))
}

// SearchFulfills returns the orderables approved for a facility and its
// programs, or the ones listed by id.
func (s *Service) SearchFulfills(c *fiber.Ctx) error {
	p, err := params.NewOrderableFulfillSearchParams(handler.QueryValues(c))
	if err != nil {
		return err
	}

	orderables, err := controller.SearchFulfills(s.db, p)
	if err != nil {
		return err
	}

	return c.JSON(toDtos(orderables))
}

// Get returns one orderable with its program memberships.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyOrderableNotFound)
	if err != nil {
		return err
	}

	orderable, err := controller.GetByID(s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(toDto(orderable))
}

// Post creates an orderable with its program memberships.
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

// Put updates an orderable; the submitted program memberships replace the
// stored ones.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyOrderableNotFound)
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
