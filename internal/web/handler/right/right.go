// Package right serves the system rights API.
package right

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/auth"
	"github.com/openlogistics-io/referencedata/internal/config"
	controller "github.com/openlogistics-io/referencedata/internal/db/controller/right"
	"github.com/openlogistics-io/referencedata/internal/message"
	"github.com/openlogistics-io/referencedata/internal/web/handler"
)

const (
	// Path is the path of the rights collection.
	Path = handler.RootPath + "rights"

	// SearchPath is the path of the rights search endpoint.
	SearchPath = Path + "/search"
)

// Service is the rights handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the rights handler.
var Handler = Service{}

// Init initializes the rights handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, rights *auth.RightService) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	app.Get(Path,
		auth.RequireAdminRight(rights, auth.RightRightsView),
		s.GetAll,
	)
	app.Get(SearchPath,
		auth.RequireAdminRight(rights, auth.RightRightsView),
		s.Search,
	)
	app.Get(Path+"/:id",
		auth.RequireAdminRight(rights, auth.RightRightsView),
		s.Get,
	)
	app.Put(Path,
		auth.RequireAdminRight(rights, auth.RightRightsManage),
		s.Put,
	)
	app.Delete(Path+"/:id",
		auth.RequireAdminRight(rights, auth.RightRightsManage),
		s.Delete,
	)
}

// GetAll returns every right ordered by name.
func (s *Service) GetAll(c *fiber.Ctx) error {
	rights, err := controller.GetAll(s.db)
	if err != nil {
		return err
	}

	return c.JSON(toDtos(rights))
}

// Search returns the rights matching the name and type query parameters.
func (s *Service) Search(c *fiber.Ctx) error {
	rights, err := controller.Search(s.db, c.Query("name"), c.Query("type"))
	if err != nil {
		return err
	}

	return c.JSON(toDtos(rights))
}

// Get returns one right by id.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyRightNotFound)
	if err != nil {
		return err
	}

	right, err := controller.GetByID(s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(toDto(right))
}

// Put saves a right, keyed by name.
func (s *Service) Put(c *fiber.Ctx) error {
	var body Dto
	if err := handler.ParseBody(c, &body); err != nil {
		return err
	}

	if err := handler.ValidateStruct(s.validator, &body); err != nil {
		return err
	}

	saved, err := controller.Save(s.db, body.toModel())
	if err != nil {
		return err
	}

	return c.JSON(toDto(saved))
}

// Delete removes a right unless a role still carries it.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyRightNotFound)
	if err != nil {
		return err
	}

	if err := controller.Delete(s.db, id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
