package facility

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/db/models"
)

// Dto is the wire representation of a facility.
type Dto struct {
	ID               uuid.UUID         `json:"id"`
	Code             string            `json:"code" validate:"required"`
	Name             string            `json:"name"`
	Description      string            `json:"description"`
	TypeID           uuid.UUID         `json:"typeId" validate:"required"`
	Type             *TypeDto          `json:"type,omitempty"`
	GeographicZoneID uuid.UUID         `json:"geographicZoneId" validate:"required"`
	GeographicZone   *ZoneDto          `json:"geographicZone,omitempty"`
	Active           bool              `json:"active"`
	Enabled          bool              `json:"enabled"`
	ExtraData        map[string]string `json:"extraData,omitempty"`
}

// TypeDto is the wire representation of a facility type.
type TypeDto struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code" validate:"required"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"displayOrder"`
	Active       bool      `json:"active"`
}

// ZoneDto is the wire representation of a geographic zone.
type ZoneDto struct {
	ID       uuid.UUID  `json:"id"`
	Code     string     `json:"code" validate:"required"`
	Name     string     `json:"name"`
	Level    int        `json:"level" validate:"required"`
	ParentID *uuid.UUID `json:"parentId,omitempty"`
}

func toDto(row *models.Facility) Dto {
	dto := Dto{
		ID:               row.ID,
		Code:             row.Code,
		Name:             row.Name,
		Description:      row.Description,
		TypeID:           row.TypeID,
		GeographicZoneID: row.GeographicZoneID,
		Active:           row.Active,
		Enabled:          row.Enabled,
	}

	if row.Type.ID != uuid.Nil {
		typeDto := toTypeDto(&row.Type)
		dto.Type = &typeDto
	}

	if row.GeographicZone.ID != uuid.Nil {
		zoneDto := toZoneDto(&row.GeographicZone)
		dto.GeographicZone = &zoneDto
	}

	if row.ExtraData != "" {
		// stored as a JSON document; a corrupt value is dropped, not fatal
		_ = json.Unmarshal([]byte(row.ExtraData), &dto.ExtraData)
	}

	return dto
}

func toDtos(rows []models.Facility) []Dto {
	dtos := make([]Dto, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toDto(&rows[i]))
	}

	return dtos
}

func (d *Dto) toModel() *models.Facility {
	row := &models.Facility{
		ID:               d.ID,
		Code:             d.Code,
		Name:             d.Name,
		Description:      d.Description,
		TypeID:           d.TypeID,
		GeographicZoneID: d.GeographicZoneID,
		Active:           d.Active,
		Enabled:          d.Enabled,
	}

	if len(d.ExtraData) > 0 {
		encoded, err := json.Marshal(d.ExtraData)
		if err == nil {
			row.ExtraData = string(encoded)
		}
	}

	return row
}

func toTypeDto(row *models.FacilityType) TypeDto {
	return TypeDto{
		ID:           row.ID,
		Code:         row.Code,
		Name:         row.Name,
		Description:  row.Description,
		DisplayOrder: row.DisplayOrder,
		Active:       row.Active,
	}
}

func toTypeDtos(rows []models.FacilityType) []TypeDto {
	dtos := make([]TypeDto, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toTypeDto(&rows[i]))
	}

	return dtos
}

func (d *TypeDto) toModel() *models.FacilityType {
	return &models.FacilityType{
		ID:           d.ID,
		Code:         d.Code,
		Name:         d.Name,
		Description:  d.Description,
		DisplayOrder: d.DisplayOrder,
		Active:       d.Active,
	}
}

func toZoneDto(row *models.GeographicZone) ZoneDto {
	return ZoneDto{
		ID:       row.ID,
		Code:     row.Code,
		Name:     row.Name,
		Level:    row.Level,
		ParentID: row.ParentID,
	}
}

func (d *ZoneDto) toModel() *models.GeographicZone {
	return &models.GeographicZone{
		ID:       d.ID,
		Code:     d.Code,
		Name:     d.Name,
		Level:    d.Level,
		ParentID: d.ParentID,
	}
}
