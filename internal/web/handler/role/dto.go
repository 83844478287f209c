package role

import (
	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/db/models"
)

// RightDto names one right carried by a role. Only the name matters on
// input; id and type are filled on output.
type RightDto struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name" validate:"required"`
	Type string    `json:"type"`
}

// Dto is the wire representation of a role.
type Dto struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name" validate:"required"`
	Description string     `json:"description"`
	Rights      []RightDto `json:"rights" validate:"required,dive"`

	// UserCount is how many users hold the role, filled on single reads.
	UserCount *int64 `json:"userCount,omitempty"`
}

func (d *Dto) rightNames() []string {
	names := make([]string, 0, len(d.Rights))
	for _, right := range d.Rights {
		names = append(names, right.Name)
	}

	return names
}

func toDto(role *models.Role) Dto {
	rights := make([]RightDto, 0, len(role.Rights))
	for _, right := range role.Rights {
		rights = append(rights, RightDto{ID: right.ID, Name: right.Name, Type: right.Type})
	}

	return Dto{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		Rights:      rights,
	}
}

func toDtoWithCount(role *models.Role, count int64) Dto {
	dto := toDto(role)
	dto.UserCount = &count

	return dto
}

func toDtos(roles []models.Role) []Dto {
	dtos := make([]Dto, 0, len(roles))
	for i := range roles {
		dtos = append(dtos, toDto(&roles[i]))
	}

	return dtos
}
