// Package processingschedule provides CRUD for processing schedules and
// their periods.
package processingschedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/message"
)

// ErrDBNil is returned when the database connection is nil.
var ErrDBNil = errors.New("database connection is nil")

// ErrPeriodGap is returned when a new period does not start right after the
// schedule's last period ends.
var ErrPeriodGap = errors.New("period must start the day after the previous period ends")

// GetAll retrieves all schedules with their periods, ordered by code.
func GetAll(db *gorm.DB) ([]models.ProcessingSchedule, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var schedules []models.ProcessingSchedule
	result := db.
		Preload("Periods", func(tx *gorm.DB) *gorm.DB { return tx.Order("start_date") }).
		Order("code").
		Find(&schedules)
	if result.Error != nil {
		return nil, result.Error
	}

	return schedules, nil
}

// GetByID retrieves a schedule with its periods ordered by start date.
func GetByID(db *gorm.DB, id uuid.UUID) (*models.ProcessingSchedule, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var schedule models.ProcessingSchedule
	result := db.
		Preload("Periods", func(tx *gorm.DB) *gorm.DB { return tx.Order("start_date") }).
		First(&schedule, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeyProcessingScheduleNotFound)
		}

		return nil, result.Error
	}

	return &schedule, nil
}

// Create stores a new schedule.
func Create(db *gorm.DB, schedule *models.ProcessingSchedule) (*models.ProcessingSchedule, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if schedule.ID == uuid.Nil {
		schedule.ID = uuid.New()
	}

	if result := db.Create(schedule); result.Error != nil {
		return nil, result.Error
	}

	return schedule, nil
}

// Update replaces the stored schedule fields. Periods are managed through
// AddPeriod.
func Update(db *gorm.DB, schedule *models.ProcessingSchedule) (*models.ProcessingSchedule, error) {
	if _, err := GetByID(db, schedule.ID); err != nil {
		return nil, err
	}

	result := db.Model(schedule).
		Select("code", "name", "description").
		Updates(schedule)
	if result.Error != nil {
		return nil, result.Error
	}

	return GetByID(db, schedule.ID)
}

/// AddPeriod appends a period to a schedule. Periods must be contiguous: the
// new period has to start the day after the current last one ends.
func AddPeriod(db *gorm.DB, scheduleID uuid.UUID, period *models.ProcessingPeriod) (*models.ProcessingPeriod, error) {
	schedule, err := GetByID(db, scheduleID)
	if err != nil {
		return nil, err
	}

	if count := len(schedule.Periods); count > 0 {
		last := schedule.Periods[count-1]
		expected := last.EndDate.AddDate(0, 0, 1)

		if !sameDay(period.StartDate, expected) {
			return nil, ErrPeriodGap
		}
	}

	if period.ID == uuid.Nil {
		period.ID = uuid.New()
	}

	period.ScheduleID = scheduleID

	if result := db.Create(period); result.Error != nil {
		return nil, result.Error
	}

	return period, nil
}

// GetPeriod retrieves a single period.
func GetPeriod(db *gorm.DB, id uuid.UUID) (*models.ProcessingPeriod, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var period models.ProcessingPeriod
	if result := db.First(&period, "id = ?", id); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, message.NewNotFoundError(message.KeyProcessingPeriodNotFound)
		}

		return nil, result.Error
	}

	return &period, nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
