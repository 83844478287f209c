package orderable

import (
	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/db/models"
)

// ProgramOrderableDto is the wire representation of one program membership.
type ProgramOrderableDto struct {
	ProgramID    uuid.UUID `json:"programId" validate:"required"`
	Active       bool      `json:"active"`
	FullSupply   bool      `json:"fullSupply"`
	DisplayOrder int       `json:"displayOrder"`
	PricePerPack int64     `json:"pricePerPack"`
}

// Dto is the wire representation of an orderable.
type Dto struct {
	ID                    uuid.UUID             `json:"id"`
	Code                  string                `json:"code" validate:"required"`
	Name                  string                `json:"name"`
	Description           string                `json:"description"`
	PackRoundingThreshold int64                 `json:"packRoundingThreshold"`
	NetContent            int64                 `json:"netContent"`
	RoundToZero           bool                  `json:"roundToZero"`
	Programs              []ProgramOrderableDto `json:"programs" validate:"dive"`
}

func toDto(row *models.Orderable) Dto {
	programs := make([]ProgramOrderableDto, 0, len(row.ProgramOrderables))
	for _, membership := range row.ProgramOrderables {
		programs = append(programs, ProgramOrderableDto{
			ProgramID:    membership.ProgramID,
			Active:       membership.Active,
			FullSupply:   membership.FullSupply,
			DisplayOrder: membership.DisplayOrder,
			PricePerPack: membership.PricePerPack,
		})
	}

	return Dto{
		ID:                    row.ID,
		Code:                  row.Code,
		Name:                  row.Name,
		Description:           row.Description,
		PackRoundingThreshold: row.PackRoundingThreshold,
		NetContent:            row.NetContent,
		RoundToZero:           row.RoundToZero,
		Programs:              programs,
	}
}

func toDtos(rows []models.Orderable) []Dto {
	dtos := make([]Dto, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toDto(&rows[i]))
	}

	return dtos
}

func (d *Dto) toModel() *models.Orderable {
	memberships := make([]models.ProgramOrderable, 0, len(d.Programs))
	for _, program := range d.Programs {
		memberships = append(memberships, models.ProgramOrderable{
			ProgramID:    program.ProgramID,
			Active:       program.Active,
			FullSupply:   program.FullSupply,
			DisplayOrder: program.DisplayOrder,
			PricePerPack: program.PricePerPack,
		})
	}

	return &models.Orderable{
		ID:                    d.ID,
		Code:                  d.Code,
		Name:                  d.Name,
		Description:           d.Description,
		PackRoundingThreshold: d.PackRoundingThreshold,
		NetContent:            d.NetContent,
		RoundToZero:           d.RoundToZero,
		ProgramOrderables:     memberships,
	}
}
