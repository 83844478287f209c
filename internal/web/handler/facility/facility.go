// Package facility serves the facilities API, together with the facility
// type and geographic zone catalogs facilities hang off.
package facility

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/auth"
	"github.com/openlogistics-io/referencedata/internal/config"
	controller "github.com/openlogistics-io/referencedata/internal/db/controller/facility"
	"github.com/openlogistics-io/referencedata/internal/message"
	"github.com/openlogistics-io/referencedata/internal/web/handler"
	"github.com/openlogistics-io/referencedata/internal/web/params"
)

const (
	// Path is the path of the facilities collection.
	Path = handler.RootPath + "facilities"

	// SearchPath is the path of the facility search endpoint.
	SearchPath = Path + "/search"

	// TypesPath is the path of the facility types catalog.
	TypesPath = handler.RootPath + "facilityTypes"

	// ZonesPath is the path of the geographic zones catalog.
	ZonesPath = handler.RootPath + "geographicZones"
)

// Service is the facilities handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

// Handler is the facilities handler.
var Handler = Service{}

// Init initializes the facilities handler and registers its routes. Reads
// are open to any caller; writes need the matching manage right.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, rights *auth.RightService) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validator = validator.New()

	manage := auth.RequireAdminRight(rights, auth.RightFacilitiesManage)
	manageZones := auth.RequireAdminRight(rights, auth.RightGeographicZoneManage)

	app.Get(Path, s.GetAll)
	app.Get(SearchPath, s.Search)
	app.Get(Path+"/:id", s.Get)
	app.Post(Path, manage, s.Post)
	app.Put(Path+"/:id", manage, s.Put)
	app.Delete(Path+"/:id", manage, s.Delete)

	app.Get(TypesPath, s.GetTypes)
	app.Post(TypesPath, manage, s.PostType)

	app.Get(ZonesPath+"/:id", s.GetZone)
	app.Post(ZonesPath, manageZones, s.PostZone)
}

// GetAll returns every facility.
func (s *Service) GetAll(c *fiber.Ctx) error {
	facilities, err := controller.GetAll(s.db)
	if err != nil {
		return err
	}

	return c.JSON(toDtos(facilities))
}

// Search returns the facilities matching the validated search parameters.
func (s *Service) Search(c *fiber.Ctx) error {
	p, err := params.NewFacilitySearchParams(handler.QueryValues(c))
	if err != nil {
		return err
	}

	facilities, err := controller.Search(s.db, p)
	if err != nil {
		return err
	}

	return c.JSON(toDtos(facilities))
}

// Get returns one facility.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyFacilityNotFound)
	if err != nil {
		return err
	}

	facility, err := controller.GetByID(s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(toDto(facility))
}

// Post creates a facility.
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

// Put updates a facility.
func (s *Service) Put(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyFacilityNotFound)
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

// Delete removes a facility.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyFacilityNotFound)
	if err != nil {
		return err
	}

	if err := controller.Delete(s.db, id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetTypes returns every facility type.
func (s *Service) GetTypes(c *fiber.Ctx) error {
	types, err := controller.GetAllTypes(s.db)
	if err != nil {
		return err
	}

	return c.JSON(toTypeDtos(types))
}

// PostType creates a facility type.
func (s *Service) PostType(c *fiber.Ctx) error {
	var body TypeDto
	if err := handler.ParseBody(c, &body); err != nil {
		return err
	}

	if err := handler.ValidateStruct(s.validator, &body); err != nil {
		return err
	}

	created, err := controller.CreateType(s.db, body.toModel())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toTypeDto(created))
}

// GetZone returns one geographic zone.
func (s *Service) GetZone(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyGeographicZoneNotFound)
	if err != nil {
		return err
	}

	zone, err := controller.GetZoneByID(s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(toZoneDto(zone))
}

// PostZone creates a geographic zone.
func (s *Service) PostZone(c *fiber.Ctx) error {
	var body ZoneDto
	if err := handler.ParseBody(c, &body); err != nil {
		return err
	}

	if err := handler.ValidateStruct(s.validator, &body); err != nil {
		return err
	}

	created, err := controller.CreateZone(s.db, body.toModel())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toZoneDto(created))
}
