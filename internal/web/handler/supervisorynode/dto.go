package supervisorynode

import (
	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/db/models"
)

// GroupDto is the wire representation of a node's requisition group.
type GroupDto struct {
	ID          uuid.UUID   `json:"id"`
	Code        string      `json:"code"`
	Name        string      `json:"name"`
	FacilityIDs []uuid.UUID `json:"facilityIds"`
	ProgramIDs  []uuid.UUID `json:"programIds"`
}

// Dto is the wire representation of a supervisory node. ChildIDs and
// RequisitionGroup are filled on reads only; the hierarchy is edited
// through the parentId of each node.
type Dto struct {
	ID               uuid.UUID   `json:"id"`
	Code             string      `json:"code" validate:"required"`
	Name             string      `json:"name"`
	Description      string      `json:"description"`
	FacilityID       *uuid.UUID  `json:"facilityId,omitempty"`
	ParentID         *uuid.UUID  `json:"parentId,omitempty"`
	ChildIDs         []uuid.UUID `json:"childIds,omitempty"`
	RequisitionGroup *GroupDto   `json:"requisitionGroup,omitempty"`
}

func toDto(row *models.SupervisoryNode) Dto {
	dto := Dto{
		ID:          row.ID,
		Code:        row.Code,
		Name:        row.Name,
		Description: row.Description,
		FacilityID:  row.FacilityID,
		ParentID:    row.ParentID,
	}

	for _, child := range row.Children {
		dto.ChildIDs = append(dto.ChildIDs, child.ID)
	}

	if row.RequisitionGroup != nil {
		group := GroupDto{
			ID:   row.RequisitionGroup.ID,
			Code: row.RequisitionGroup.Code,
			Name: row.RequisitionGroup.Name,
		}

		for _, facility := range row.RequisitionGroup.Facilities {
			group.FacilityIDs = append(group.FacilityIDs, facility.ID)
		}

		for _, program := range row.RequisitionGroup.Programs {
			group.ProgramIDs = append(group.ProgramIDs, program.ID)
		}

		dto.RequisitionGroup = &group
	}

	return dto
}

func toDtos(rows []models.SupervisoryNode) []Dto {
	dtos := make([]Dto, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toDto(&rows[i]))
	}

	return dtos
}

func (d *Dto) toModel() *models.SupervisoryNode {
	return &models.SupervisoryNode{
		ID:          d.ID,
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
		FacilityID:  d.FacilityID,
		ParentID:    d.ParentID,
	}
}
