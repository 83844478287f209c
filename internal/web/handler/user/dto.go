package user

import (
	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/domain"
)

// Dto is the wire representation of a user. RoleAssignments is nil when the
// caller did not submit any, which leaves the stored set untouched.
type Dto struct {
	ID              uuid.UUID                     `json:"id"`
	Username        string                        `json:"username" validate:"required"`
	FirstName       string                        `json:"firstName"`
	LastName        string                        `json:"lastName"`
	Email           string                        `json:"email" validate:"omitempty,email"`
	HomeFacilityID  *uuid.UUID                    `json:"homeFacilityId,omitempty"`
	Active          bool                          `json:"active"`
	RoleAssignments []domain.RoleAssignmentRecord `json:"roleAssignments,omitempty"`
}

func toDto(row *models.User) Dto {
	return Dto{
		ID:              row.ID,
		Username:        row.Username,
		FirstName:       row.FirstName,
		LastName:        row.LastName,
		Email:           row.Email,
		HomeFacilityID:  row.HomeFacilityID,
		Active:          row.Active,
		RoleAssignments: toRecords(row.RoleAssignments),
	}
}

func toDtos(rows []models.User) []Dto {
	dtos := make([]Dto, 0, len(rows))
	for i := range rows {
		dto := toDto(&rows[i])
		// collection reads stay shallow
		dto.RoleAssignments = nil
		dtos = append(dtos, dto)
	}

	return dtos
}

func toRecords(rows []models.RoleAssignment) []domain.RoleAssignmentRecord {
	records := make([]domain.RoleAssignmentRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.RoleAssignmentRecord{
			RoleID:            row.RoleID,
			ProgramID:         row.ProgramID,
			SupervisoryNodeID: row.SupervisoryNodeID,
			WarehouseID:       row.WarehouseID,
		})
	}

	return records
}

func (d *Dto) toModel() *models.User {
	return &models.User{
		ID:             d.ID,
		Username:       d.Username,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Email:          d.Email,
		HomeFacilityID: d.HomeFacilityID,
		Active:         d.Active,
	}
}
