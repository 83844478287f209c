// Package systemnotification serves the system notifications API: banners
// authored by administrators and shown to every user while active.
package systemnotification

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/auth"
	"github.com/openlogistics-io/referencedata/internal/config"
	controller "github.com/openlogistics-io/referencedata/internal/db/controller/systemnotification"
	"github.com/openlogistics-io/referencedata/internal/message"
	"github.com/openlogistics-io/referencedata/internal/web/handler"
	"github.com/openlogistics-io/referencedata/internal/web/params"
)

// Path is the path of the system notifications collection.
const Path = handler.RootPath + "systemNotifications"

// Service is the system notifications handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate

	// now is replaceable in tests; displayed-state filtering depends on it.
	now func() time.Time
}

// Handler is the system notifications handler.
var Handler = Service{}

// Init initializes the system notifications handler and registers its
// routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, rights *auth.RightService) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	if s.now == nil {
		s.now = time.Now
	}

	manage := auth.RequireAdminRight(rights, auth.RightSystemNotificationsManage)

	app.Get(Path, s.Search)
	app.Get(Path+"/:id", s.Get)
	app.Post(Path, manage, s.Post)
	app.Put(Path+"/:id", manage, s.Put)
	app.Delete(Path+"/:id", manage, s.Delete)
}

// Search returns the notifications matching the validated search
// parameters; isDisplayed filters on the current display state.
func (s *Service) Search(c *fiber.Ctx) error {
	p, err := params.NewSystemNotificationSearchParams(handler.QueryValues(c))
	if err != nil {
		return err
	}

	notifications, err := controller.Search(s.db, p, s.now())
	if err != nil {
		return err
	}

	return c.JSON(s.toDtos(notifications))
}

// Get returns one notification.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeySystemNotificationNotFound)
	if err != nil {
		return err
	}

	notification, err := controller.GetByID(s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(s.toDto(notification))
}

// Post creates a notification authored by the calling user.
func (s *Service) Post(c *fiber.Ctx) error {
	var body Dto
	if err := handler.ParseBody(c, &body); err != nil {
		return err
	}

	if err := handler.ValidateStruct(s.validator, &body); err != nil {
		return err
	}

	row := body.toModel()

	// default the author to the caller
	if principal := auth.PrincipalFromContext(c); row.AuthorID == uuid.Nil {
		row.AuthorID = principal.UserID
	}

	created, err := controller.Create(s.db, row)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(s.toDto(created))
}

// Put updates a notification.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeySystemNotificationNotFound)
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

	return c.JSON(s.toDto(updated))
}

// Delete removes a notification.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeySystemNotificationNotFound)
	if err != nil {
		return err
	}

	if err := controller.Delete(s.db, id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
