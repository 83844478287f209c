// Package serviceaccount serves the service accounts API. The endpoints are
// restricted to trusted service-level tokens; the issued API key is returned
// exactly once, at creation.
package serviceaccount

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/auth"
	"github.com/openlogistics-io/referencedata/internal/config"
	controller "github.com/openlogistics-io/referencedata/internal/db/controller/serviceaccount"
	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/message"
	"github.com/openlogistics-io/referencedata/internal/web/handler"
)

// Path is the path of the service accounts collection.
const Path = handler.RootPath + "serviceAccounts"

// Dto is the wire representation of a service account. APIKey is set only
// in the creation response.
type Dto struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required"`
	CreatedByID uuid.UUID `json:"createdById"`
	APIKey      string    `json:"apiKey,omitempty"`
}

// CreateRequest is the body of a creation call.
type CreateRequest struct {
	Name      string    `json:"name" validate:"required"`
	CreatedBy uuid.UUID `json:"createdBy" validate:"required"`
}

// Service is the service accounts handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the service accounts handler.
var Handler = Service{}

// Init initializes the service accounts handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, rights *auth.RightService) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	root := auth.RequireRootAccess(rights)

	app.Get(Path, root, s.GetAll)
	app.Get(Path+"/:id", root, s.Get)
	app.Post(Path, root, s.Post)
	app.Delete(Path+"/:id", root, s.Delete)
}

// GetAll returns every service account, without key material.
func (s *Service) GetAll(c *fiber.Ctx) error {
	accounts, err := controller.GetAll(s.db)
	if err != nil {
		return err
	}

	return c.JSON(toDtos(accounts))
}

// Get returns one service account.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyServiceAccountNotFound)
	if err != nil {
		return err
	}

	account, err := controller.GetByID(s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(toDto(account))
}

// Post creates a service account and returns the plaintext API key. Only
// the key's hash is stored; the key cannot be retrieved again.
func (s *Service) Post(c *fiber.Ctx) error {
	var body CreateRequest
	if err := handler.ParseBody(c, &body); err != nil {
		return err
	}

	if err := handler.ValidateStruct(s.validator, &body); err != nil {
		return err
	}

	account, apiKey, err := controller.Create(s.db, body.Name, body.CreatedBy)
	if err != nil {
		return err
	}

	dto := toDto(account)
	dto.APIKey = apiKey

	return c.Status(fiber.StatusCreated).JSON(dto)
}

// Delete removes a service account, revoking its key.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyServiceAccountNotFound)
	if err != nil {
		return err
	}

	if err := controller.Delete(s.db, id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func toDto(row *models.ServiceAccount) Dto {
	return Dto{
		ID:          row.ID,
		Name:        row.Name,
		CreatedByID: row.CreatedByID,
	}
}

func toDtos(rows []models.ServiceAccount) []Dto {
	dtos := make([]Dto, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toDto(&rows[i]))
	}

	return dtos
}
