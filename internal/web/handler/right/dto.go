package right

import (
	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/db/models"
)

// Dto is the wire representation of a right.
type Dto struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Type        string    `json:"type" validate:"required,oneof=GENERAL_ADMIN SUPERVISION ORDER_FULFILLMENT ORDER_REPORT"`
	Description string    `json:"description"`
}

func toDto(right *models.Right) Dto {
	return Dto{
		ID:          right.ID,
		Name:        right.Name,
		Type:        right.Type,
		Description: right.Description,
	}
}

func toDtos(rights []models.Right) []Dto {
	dtos := make([]Dto, 0, len(rights))
	for i := range rights {
		dtos = append(dtos, toDto(&rights[i]))
	}

	return dtos
}

func (d *Dto) toModel() *models.Right {
	return &models.Right{
		ID:          d.ID,
		Name:        d.Name,
		Type:        d.Type,
		Description: d.Description,
	}
}
