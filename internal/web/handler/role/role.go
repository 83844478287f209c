// Package role serves the roles API. Roles bundle rights of one type; the
// rights set of an existing role is replaced as a whole on update.
package role

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/auth"
	"github.com/openlogistics-io/referencedata/internal/config"
	controller "github.com/openlogistics-io/referencedata/internal/db/controller/role"
	"github.com/openlogistics-io/referencedata/internal/message"
	"github.com/openlogistics-io/referencedata/internal/web/handler"
)

// Path is the path of the roles collection.
const Path = handler.RootPath + "roles"

// Service is the roles handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the roles handler.
var Handler = Service{}

// Init initializes the roles handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, rights *auth.RightService) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	manage := auth.RequireAdminRight(rights, auth.RightRolesManage)

	app.Get(Path, manage, s.GetAll)
	app.Get(Path+"/:id", manage, s.Get)
	app.Post(Path, manage, s.Post)
	app.Put(Path+"/:id", manage, s.Put)
	app.Delete(Path+"/:id", manage, s.Delete)
}

// GetAll returns every role with its rights.
func (s *Service) GetAll(c *fiber.Ctx) error {
	roles, err := controller.GetAll(s.db)
	if err != nil {
		return err
	}

	return c.JSON(toDtos(roles))
}

// Get returns one role with its rights and the number of users holding it.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyRoleNotFound)
	if err != nil {
		return err
	}

	role, err := controller.GetByID(s.db, id)
	if err != nil {
		return err
	}

	count, err := controller.CountUsers(s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(toDtoWithCount(role, count))
}

// Post creates a role from a name, description and set of right names.
func (s *Service) Post(c *fiber.Ctx) error {
	var body Dto
	if err := handler.ParseBody(c, &body); err != nil {
		return err
	}

	if err := handler.ValidateStruct(s.validator, &body); err != nil {
		return err
	}

	created, err := controller.Create(s.db, body.Name, body.Description, body.rightNames())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toDto(created))
}

// Put updates a role. The submitted rights replace the stored set: rights
// missing from the body are detached, new ones attached.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyRoleNotFound)
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

	updated, err := controller.Update(s.db, id, body.Name, body.Description, body.rightNames())
	if err != nil {
		return err
	}

	return c.JSON(toDto(updated))
}

// Delete removes a role together with the assignments granting it.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyRoleNotFound)
	if err != nil {
		return err
	}

	if err := controller.Delete(s.db, id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
