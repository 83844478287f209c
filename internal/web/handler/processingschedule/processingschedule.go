// Package processingschedule serves the processing schedules API. Periods
// are appended through the schedule and must be contiguous.
package processingschedule

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/auth"
	"github.com/openlogistics-io/referencedata/internal/config"
	controller "github.com/openlogistics-io/referencedata/internal/db/controller/processingschedule"
	"github.com/openlogistics-io/referencedata/internal/message"
	"github.com/openlogistics-io/referencedata/internal/web/handler"
)

const (
	// Path is the path of the schedules collection.
	Path = handler.RootPath + "processingSchedules"

	// PeriodsPath is the path of the standalone period lookup.
	PeriodsPath = handler.RootPath + "processingPeriods"
)

// Service is the schedules handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the schedules handler.
var Handler = Service{}

// Init initializes the schedules handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, rights *auth.RightService) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	manage := auth.RequireAdminRight(rights, auth.RightProcessingSchedulesManage)

	app.Get(Path, s.GetAll)
	app.Get(Path+"/:id", s.Get)
	app.Post(Path, manage, s.Post)
	app.Put(Path+"/:id", manage, s.Put)
	app.Post(Path+"/:id/periods", manage, s.PostPeriod)
	app.Get(PeriodsPath+"/:id", s.GetPeriod)
}

// GetAll returns every schedule with its periods.
func (s *Service) GetAll(c *fiber.Ctx) error {
	schedules, err := controller.GetAll(s.db)
	if err != nil {
		return err
	}

	return c.JSON(toDtos(schedules))
}

// Get returns one schedule with its periods ordered by start date.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyProcessingScheduleNotFound)
	if err != nil {
		return err
	}

	schedule, err := controller.GetByID(s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(toDto(schedule))
}

// Post creates a schedule.
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

// Put updates a schedule's metadata; periods are managed separately.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyProcessingScheduleNotFound)
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

// PostPeriod appends a period to a schedule. The period must start the day
// after the last stored period ends.
func (s *Service) PostPeriod(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyProcessingScheduleNotFound)
	if err != nil {
		return err
	}

	var body PeriodDto
	if err := handler.ParseBody(c, &body); err != nil {
		return err
	}

	if err := handler.ValidateStruct(s.validator, &body); err != nil {
		return err
	}

	created, err := controller.AddPeriod(s.db, id, body.toModel())
	if err != nil {
		if errors.Is(err, controller.ErrPeriodGap) {
			return message.NewValidationError(message.KeyProcessingPeriodGap)
		}

		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toPeriodDto(created))
}

// GetPeriod returns one period by id.
func (s *Service) GetPeriod(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyProcessingPeriodNotFound)
	if err != nil {
		return err
	}

	period, err := controller.GetPeriod(s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(toPeriodDto(period))
}
