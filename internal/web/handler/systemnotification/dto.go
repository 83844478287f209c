package systemnotification

import (
	"time"

	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/db/models"
)

// Dto is the wire representation of a system notification. Displayed is
// derived from the active flag and the date window at read time.
type Dto struct {
	ID         uuid.UUID  `json:"id"`
	Title      string     `json:"title"`
	Message    string     `json:"message" validate:"required"`
	AuthorID   uuid.UUID  `json:"authorId"`
	Active     bool       `json:"active"`
	StartDate  *time.Time `json:"startDate,omitempty"`
	ExpiryDate *time.Time `json:"expiryDate,omitempty"`
	Displayed  bool       `json:"displayed"`
}

func (s *Service) toDto(row *models.SystemNotification) Dto {
	return Dto{
		ID:         row.ID,
		Title:      row.Title,
		Message:    row.Message,
		AuthorID:   row.AuthorID,
		Active:     row.Active,
		StartDate:  row.StartDate,
		ExpiryDate: row.ExpiryDate,
		Displayed:  row.IsDisplayed(s.now()),
	}
}

func (s *Service) toDtos(rows []models.SystemNotification) []Dto {
	dtos := make([]Dto, 0, len(rows))
	for i := range rows {
		dtos = append(dtos, s.toDto(&rows[i]))
	}

	return dtos
}

func (d *Dto) toModel() *models.SystemNotification {
	return &models.SystemNotification{
		ID:         d.ID,
		Title:      d.Title,
		Message:    d.Message,
		AuthorID:   d.AuthorID,
		Active:     d.Active,
		StartDate:  d.StartDate,
		ExpiryDate: d.ExpiryDate,
	}
}
