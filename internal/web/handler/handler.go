// Package handler holds what the per-entity web handlers share: the route
// root, the nil-dependency guard message and the handler interface.
package handler

import (
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/auth"
	"github.com/openlogistics-io/referencedata/internal/config"
	"github.com/openlogistics-io/referencedata/internal/message"
)

const (
	// RootPath is the root path of the API route group.
	RootPath = "/api/"

	// ErrNilACDFatalLogMsg is used if the app, cfg or db pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, db *gorm.DB, rights *auth.RightService)
}

// PathID parses the :id route parameter, returning a not-found error with
// the given key when it is not a UUID. Route params are matched greedily by
// fiber, so a malformed id is indistinguishable from a missing entity for
// the client.
func PathID(c *fiber.Ctx, notFoundKey string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, message.NewNotFoundError(notFoundKey)
	}

	return id, nil
}

// ValidateStruct runs the validator over a parsed request body and converts
// failures into the shared validation error key, naming the offending
// fields.
func ValidateStruct(v *validator.Validate, body any) error {
	err := v.Struct(body)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return message.NewValidationError(message.KeyValidationFailed)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fields = append(fields, fieldError.Field()+" "+fieldError.Tag())
	}

	return message.NewValidationError(message.KeyValidationFailed, strings.Join(fields, "; "))
}

// QueryValues collects the raw query string into url.Values, keeping
// repeated keys. c.Queries() flattens duplicates, which the multi-valued
// search parameters must not lose.
func QueryValues(c *fiber.Ctx) url.Values {
	values := url.Values{}

	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		values.Add(string(key), string(value))
	})

	return values
}

// ParseBody decodes a JSON request body, mapping decode failures onto the
// shared validation error key.
func ParseBody(c *fiber.Ctx, body any) error {
	if err := c.BodyParser(body); err != nil {
		return message.NewValidationError(message.KeyValidationFailed, err.Error())
	}

	return nil
}
