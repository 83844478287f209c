// Package user serves the users API: account data plus the role assignments
// granting rights. Assignments submitted on save replace the stored set.
package user

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/auth"
	"github.com/openlogistics-io/referencedata/internal/config"
	"github.com/openlogistics-io/referencedata/internal/db/controller/role"
	"github.com/openlogistics-io/referencedata/internal/db/controller/supervisorynode"
	controller "github.com/openlogistics-io/referencedata/internal/db/controller/user"
	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/domain"
	"github.com/openlogistics-io/referencedata/internal/message"
	"github.com/openlogistics-io/referencedata/internal/web/handler"
)

// Path is the path of the users collection.
const Path = handler.RootPath + "users"

// Service is the users handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	rights    *auth.RightService
	validator *validator.Validate
}

// Handler is the users handler.
var Handler = Service{}

// Init initializes the users handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, rights *auth.RightService) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.rights = rights
	s.validator = validator.New()

	manage := auth.RequireAdminRight(rights, auth.RightUsersManage)

	app.Get(Path, manage, s.GetAll)
	app.Get(Path+"/:id", s.Get)
	app.Put(Path, manage, s.Put)
	app.Delete(Path+"/:id", manage, s.Delete)
	app.Get(Path+"/:id/roleAssignments", manage, s.GetRoleAssignments)
	app.Put(Path+"/:id/roleAssignments", manage, s.PutRoleAssignments)
}

// GetAll returns users, filtered by the username, firstName, lastName,
// email and homeFacilityId query parameters when present.
func (s *Service) GetAll(c *fiber.Ctx) error {
	homeFacilityID := uuid.Nil

	if raw := c.Query("homeFacilityId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return message.NewValidationError(message.KeyInvalidUUIDFormat, raw)
		}

		homeFacilityID = parsed
	}

	users, err := controller.Search(
		s.db,
		c.Query("username"),
		c.Query("firstName"),
		c.Query("lastName"),
		c.Query("email"),
		homeFacilityID,
	)
	if err != nil {
		return err
	}

	return c.JSON(toDtos(users))
}

// Get returns one user with role assignments. Users may always read their
// own account; reading anyone else needs the manage right.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyUserNotFound)
	if err != nil {
		return err
	}

	err = s.rights.CheckAdminRight(
		auth.PrincipalFromContext(c), auth.RightUsersManage, auth.AllowSelf(id),
	)
	if err != nil {
		return err
	}

	row, err := controller.GetByID(s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(toDto(row))
}

// Put saves a user. A body without an id creates the account; with one it
// updates the stored account. Submitted role assignments replace the stored
// set after each is validated against its role's right type.
func (s *Service) Put(c *fiber.Ctx) error {
	var body Dto
	if err := handler.ParseBody(c, &body); err != nil {
		return err
	}

	if err := handler.ValidateStruct(s.validator, &body); err != nil {
		return err
	}

	saved, err := s.save(&body)
	if err != nil {
		return err
	}

	if body.RoleAssignments != nil {
		if err := s.replaceAssignments(saved, body.RoleAssignments); err != nil {
			return err
		}
	}

	reloaded, err := controller.GetByID(s.db, saved.ID)
	if err != nil {
		return err
	}

	return c.JSON(toDto(reloaded))
}

// Delete removes a user and the role assignments granted to it.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyUserNotFound)
	if err != nil {
		return err
	}

	if err := controller.Delete(s.db, id); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetRoleAssignments returns the user's role assignments in their flat
// record shape.
func (s *Service) GetRoleAssignments(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyUserNotFound)
	if err != nil {
		return err
	}

	row, err := controller.GetByID(s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(toRecords(row.RoleAssignments))
}

// PutRoleAssignments replaces the user's role assignments with the
// submitted set.
func (s *Service) PutRoleAssignments(c *fiber.Ctx) error {
	id, err := handler.PathID(c, message.KeyUserNotFound)
	if err != nil {
		return err
	}

	row, err := controller.GetByID(s.db, id)
	if err != nil {
		return err
	}

	var records []domain.RoleAssignmentRecord
	if err := handler.ParseBody(c, &records); err != nil {
		return err
	}

	if err := s.replaceAssignments(row, records); err != nil {
		return err
	}

	reloaded, err := controller.GetByID(s.db, id)
	if err != nil {
		return err
	}

	return c.JSON(toRecords(reloaded.RoleAssignments))
}

func (s *Service) save(body *Dto) (*models.User, error) {
	row := body.toModel()

	if row.ID == uuid.Nil {
		return controller.Create(s.db, row)
	}

	if _, err := controller.GetByID(s.db, row.ID); err != nil {
		var notFound *message.NotFoundError
		if errors.As(err, &notFound) {
			return controller.Create(s.db, row)
		}

		return nil, err
	}

	return controller.Update(s.db, row)
}

// replaceAssignments validates each record by rebuilding its domain variant
// against the granted role, then swaps the stored set.
func (s *Service) replaceAssignments(row *models.User, records []domain.RoleAssignmentRecord) error {
	ctx := domain.ImportContext{
		Node: func(nodeID uuid.UUID) (*domain.SupervisoryNode, error) {
			return supervisorynode.LoadDomainNode(s.db, nodeID)
		},
	}

	if row.HomeFacilityID != nil {
		ctx.HomeFacilityID = *row.HomeFacilityID
	}

	rows := make([]models.RoleAssignment, 0, len(records))

	for _, record := range records {
		granted, err := role.GetByID(s.db, record.RoleID)
		if err != nil {
			return err
		}

		domainRole, err := toDomainRole(granted)
		if err != nil {
			return err
		}

		if _, err := domain.NewRoleAssignment(domainRole, record, ctx); err != nil {
			return err
		}

		rows = append(rows, models.RoleAssignment{
			RoleID:            record.RoleID,
			ProgramID:         record.ProgramID,
			SupervisoryNodeID: record.SupervisoryNodeID,
			WarehouseID:       record.WarehouseID,
		})
	}

	return controller.ReplaceRoleAssignments(s.db, row.ID, rows)
}

func toDomainRole(row *models.Role) (*domain.Role, error) {
	rights := make([]domain.Right, 0, len(row.Rights))
	for _, right := range row.Rights {
		rights = append(rights, domain.NewRight(right.Name, domain.RightType(right.Type)))
	}

	domainRole, err := domain.NewRole(row.Name, rights...)
	if err != nil {
		return nil, err
	}

	domainRole.ID = row.ID

	return domainRole, nil
}
