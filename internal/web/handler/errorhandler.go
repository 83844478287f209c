package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/openlogistics-io/referencedata/internal/message"
)

// ErrorHandler maps the typed domain errors onto HTTP statuses with a
// localized JSON body. Everything unrecognized becomes a 500 without
// leaking its text to the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		validation   *message.ValidationError
		unauthorized *message.UnauthorizedError
		notFound     *message.NotFoundError
		fiberErr     *fiber.Error
	)

	switch {
	case errors.As(err, &validation):
		return c.Status(fiber.StatusBadRequest).JSON(validation.Message.Response())

	case errors.As(err, &unauthorized):
		status := fiber.StatusForbidden
		if unauthorized.Unauthenticated {
			status = fiber.StatusUnauthorized
		}

		return c.Status(status).JSON(unauthorized.Message.Response())

	case errors.As(err, &notFound):
		return c.Status(fiber.StatusNotFound).JSON(notFound.Message.Response())

	case errors.As(err, &fiberErr):
		return c.Status(fiberErr.Code).
			JSON(message.LocalizedResponse{MessageKey: "referenceData.error.http", Message: fiberErr.Message})

	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")

		return c.Status(fiber.StatusInternalServerError).
			JSON(message.LocalizedResponse{MessageKey: "referenceData.error.internal", Message: "internal error"})
	}
}
