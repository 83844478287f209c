package systemnotification

import (
	"net/url"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/web/params"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.User{}, &models.SystemNotification{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestSearch(t *testing.T) {
	db := setupTestDB(t)

	author := models.User{ID: uuid.New(), Username: "admin"}
	require.NoError(t, db.Create(&author).Error)
	other := models.User{ID: uuid.New(), Username: "other"}
	require.NoError(t, db.Create(&other).Error)

	now := time.Now()
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	displayed, err := Create(db, &models.SystemNotification{
		Message: "maintenance tonight", AuthorID: author.ID, Active: true,
	})
	require.NoError(t, err)

	_, err = Create(db, &models.SystemNotification{
		Message: "expired", AuthorID: author.ID, Active: true, ExpiryDate: &past,
	})
	require.NoError(t, err)

	_, err = Create(db, &models.SystemNotification{
		Message: "not yet", AuthorID: other.ID, Active: true, StartDate: &future,
	})
	require.NoError(t, err)

	_, err = Create(db, &models.SystemNotification{
		Message: "inactive", AuthorID: author.ID, Active: false,
	})
	require.NoError(t, err)

	search := func(values url.Values) []models.SystemNotification {
		p, err := params.NewSystemNotificationSearchParams(values)
		require.NoError(t, err)

		notifications, err := Search(db, p, now)
		require.NoError(t, err)

		return notifications
	}

	t.Run("no filters", func(t *testing.T) {
		assert.Len(t, search(url.Values{}), 4)
	})

	t.Run("by author", func(t *testing.T) {
		assert.Len(t, search(url.Values{"authorId": {author.ID.String()}}), 3)
	})

	t.Run("displayed only", func(t *testing.T) {
		notifications := search(url.Values{"isDisplayed": {"true"}})
		require.Len(t, notifications, 1)
		assert.Equal(t, displayed.ID, notifications[0].ID)
	})

	t.Run("hidden only", func(t *testing.T) {
		assert.Len(t, search(url.Values{"isDisplayed": {"false"}}), 3)
	})
}

func TestIsDisplayedWindow(t *testing.T) {
	now := time.Now()
	start := now.Add(-time.Hour)
	expiry := now.Add(time.Hour)

	notification := models.SystemNotification{
		Active:     true,
		StartDate:  &start,
		ExpiryDate: &expiry,
	}

	assert.True(t, notification.IsDisplayed(now))
	assert.False(t, notification.IsDisplayed(now.Add(2*time.Hour)))
	assert.False(t, notification.IsDisplayed(now.Add(-2*time.Hour)))
}
