package processingschedule

import (
	"time"

	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/db/models"
)

// PeriodDto is the wire representation of a processing period.
type PeriodDto struct {
	ID          uuid.UUID `json:"id"`
	ScheduleID  uuid.UUID `json:"scheduleId"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	EndDate     time.Time `json:"endDate" validate:"required,gtfield=StartDate"`
}

// Dto is the wire representation of a processing schedule.
type Dto struct {
	ID          uuid.UUID   `json:"id"`
	Code        string      `json:"code" validate:"required"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Periods     []PeriodDto `json:"periods,omitempty"`
}

func toPeriodDto(row *models.ProcessingPeriod) PeriodDto {
	return PeriodDto{
		ID:          row.ID,
		ScheduleID:  row.ScheduleID,
		Name:        row.Name,
		Description: row.Description,
		StartDate:   row.StartDate,
		EndDate:     row.EndDate,
	}
}

func (d *PeriodDto) toModel() *models.ProcessingPeriod {
	return &models.ProcessingPeriod{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
	}
}

func (d *Dto) toModel() *models.ProcessingSchedule {
	return &models.ProcessingSchedule{
		ID:          d.ID,
		Code:        d.Code,
		Name:        d.Name,
		Description: d.Description,
	}
}

func toDto(row *models.ProcessingSchedule) Dto {
	dto := Dto{
		ID:          row.ID,
		Code:        row.Code,
		Name:        row.Name,
		Description: row.Description,
	}

	for i := range row.Periods {
		dto.Periods = append(dto.Periods, toPeriodDto(&row.Periods[i]))
	}

	return dto
}

func toDtos(rows []models.ProcessingSchedule) []Dto {
	dtos := make([]Dto, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, toDto(&rows[i]))
	}

	return dtos
}
