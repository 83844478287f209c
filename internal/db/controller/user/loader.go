package user

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/db/controller/supervisorynode"
	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/domain"
)

// Loader implements the user lookup needed by right checks, rebuilding the
// domain view of a user with all role assignments resolved.
type Loader struct {
	db *gorm.DB
}

// NewLoader creates a Loader on the given database handle.
func NewLoader(db *gorm.DB) *Loader {
	return &Loader{db: db}
}

// LoadUser rebuilds the domain user, role assignments included. Supervisory
// node subtrees referenced by supervision assignments are loaded in full so
// that facility coverage checks can walk them.
func (l *Loader) LoadUser(id uuid.UUID) (*domain.User, error) {
	return LoadDomainUser(l.db, id)
}

// LoadDomainUser rebuilds the domain view of a user.
func LoadDomainUser(db *gorm.DB, id uuid.UUID) (*domain.User, error) {
	row, err := GetByID(db, id)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:        row.ID,
		Username:  row.Username,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		Active:    row.Active,
	}

	if row.HomeFacilityID != nil {
		user.HomeFacilityID = *row.HomeFacilityID
	}

	ctx := domain.ImportContext{
		Node: func(nodeID uuid.UUID) (*domain.SupervisoryNode, error) {
			return supervisorynode.LoadDomainNode(db, nodeID)
		},
		HomeFacilityID: user.HomeFacilityID,
	}

	for i := range row.RoleAssignments {
		assignment, err := toDomainAssignment(&row.RoleAssignments[i], ctx)
		if err != nil {
			return nil, err
		}

		user.AssignRoles(assignment)
	}

	return user, nil
}

func toDomainAssignment(row *models.RoleAssignment, ctx domain.ImportContext) (domain.RoleAssignment, error) {
	rights := make([]domain.Right, 0, len(row.Role.Rights))
	for _, right := range row.Role.Rights {
		rights = append(rights, domain.NewRight(right.Name, domain.RightType(right.Type)))
	}

	role, err := domain.NewRole(row.Role.Name, rights...)
	if err != nil {
		return nil, err
	}

	role.ID = row.Role.ID

	record := domain.RoleAssignmentRecord{
		RoleID:            row.RoleID,
		ProgramID:         row.ProgramID,
		SupervisoryNodeID: row.SupervisoryNodeID,
		WarehouseID:       row.WarehouseID,
	}

	return domain.NewRoleAssignment(role, record, ctx)
}
