package processingschedule

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/message"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.ProcessingSchedule{}, &models.ProcessingPeriod{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func day(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)

	return parsed
}

func TestAddPeriod(t *testing.T) {
	db := setupTestDB(t)

	schedule, err := Create(db, &models.ProcessingSchedule{Code: "M", Name: "Monthly"})
	require.NoError(t, err)

	_, err = AddPeriod(db, schedule.ID, &models.ProcessingPeriod{
		Name:      "Jan 2026",
		StartDate: day(t, "2026-01-01"),
		EndDate:   day(t, "2026-01-31"),
	})
	require.NoError(t, err)

	t.Run("contiguous period accepted", func(t *testing.T) {
		_, err := AddPeriod(db, schedule.ID, &models.ProcessingPeriod{
			Name:      "Feb 2026",
			StartDate: day(t, "2026-02-01"),
			EndDate:   day(t, "2026-02-28"),
		})
		require.NoError(t, err)

		loaded, err := GetByID(db, schedule.ID)
		require.NoError(t, err)
		require.Len(t, loaded.Periods, 2)
		assert.Equal(t, "Jan 2026", loaded.Periods[0].Name)
		assert.Equal(t, "Feb 2026", loaded.Periods[1].Name)
	})

	t.Run("gap rejected", func(t *testing.T) {
		_, err := AddPeriod(db, schedule.ID, &models.ProcessingPeriod{
			Name:      "Apr 2026",
			StartDate: day(t, "2026-04-01"),
			EndDate:   day(t, "2026-04-30"),
		})
		require.ErrorIs(t, err, ErrPeriodGap)
	})

	t.Run("overlap rejected", func(t *testing.T) {
		_, err := AddPeriod(db, schedule.ID, &models.ProcessingPeriod{
			Name:      "Feb again",
			StartDate: day(t, "2026-02-15"),
			EndDate:   day(t, "2026-03-15"),
		})
		require.ErrorIs(t, err, ErrPeriodGap)
	})

	t.Run("unknown schedule", func(t *testing.T) {
		_, err := AddPeriod(db, uuid.New(), &models.ProcessingPeriod{
			Name:      "May 2026",
			StartDate: day(t, "2026-05-01"),
			EndDate:   day(t, "2026-05-31"),
		})

		var nfErr *message.NotFoundError
		require.ErrorAs(t, err, &nfErr)
		assert.Equal(t, message.KeyProcessingScheduleNotFound, nfErr.MessageKey())
	})
}
