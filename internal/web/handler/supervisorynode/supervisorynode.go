// Package supervisorynode serves the supervision hierarchy API.
package supervisorynode

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/auth"
	"github.com/openlogistics-io/referencedata/internal/config"
	controller "github.com/openlogistics-io/referencedata/internal/db/controller/supervisorynode"
	"github.com/openlogistics-io/referencedata/internal/message"
	"github.com/openlogistics-io/referencedata/internal/web/handler"
	"github.com/openlogistics-io/referencedata/internal/web/params"
)

// Path is the path of the supervisory nodes collection.
const Path = handler.RootPath + "supervisoryNodes"

// Service is the supervisory nodes handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the supervisory nodes handler.
var Handler = Service{}

// Init initializes the supervisory nodes handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, rights *auth.RightService) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	manage := auth.RequireAdminRight(rights, auth.RightSupervisoryNodesManage)

	app.Get(Path, s.Search)
	app.Get(Path+"/:id", s.Get)
	app.Post(Path, manage, s.Post)
	app.Put(Path+"/:id", manage, s.Put)
	app.Delete(Path+"/:id", manage, s.Delete)
}

// Search returns the nodes matching the validated search parameters.
func (s *Service) Search(c *fiber.Ctx) error {
	p, err := params.NewSupervisoryNodeSearchParams(handler.QueryValues(c))
	if err != nil {
		return err
	}

	nodes, err := controller.Search(s.db, p)
	if err != nil {
		return err
	}

	return c.JSON(toDtos(nodes))
}

// Get returns one node with children and requisition group.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeySupervisoryNodeNotFound)
	if err != nil {
		return err
	}

	node, err := controller.GetByID(s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(toDto(node))
}

// Post creates a node.
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

// Put updates a node.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeySupervisoryNodeNotFound)
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

// Delete removes a node, detaching its children.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeySupervisoryNodeNotFound)
	if err != nil {
		return err
	}

	if err := controller.Delete(s.db, id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
