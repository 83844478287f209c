package processingschedule

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/openlogistics-io/referencedata/internal/auth"
	"github.com/openlogistics-io/referencedata/internal/config"
	usercontroller "github.com/openlogistics-io/referencedata/internal/db/controller/user"
	"github.com/openlogistics-io/referencedata/internal/db/models"
	"github.com/openlogistics-io/referencedata/internal/message"
	"github.com/openlogistics-io/referencedata/internal/web/handler"
)

const testSecret = "test-secret"

func testApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Right{}, &models.Role{}, &models.RoleAssignment{}, &models.User{},
		&models.ProcessingSchedule{}, &models.ProcessingPeriod{},
	)
	require.NoError(t, err)

	app := fiber.New(fiber.Config{ErrorHandler: handler.ErrorHandler})
	app.Use(auth.TokenMiddleware(testSecret))

	cfg := &config.Config{}
	cfg.Auth.Secret = testSecret

	service := Service{}
	service.Init(app, cfg, db, auth.NewRightService(usercontroller.NewLoader(db)))

	return app, db
}

func serviceToken(t *testing.T) string {
	t.Helper()

	token, err := auth.NewServiceToken(testSecret, "test-client", time.Minute)
	require.NoError(t, err)

	return token
}

func doJSON(t *testing.T, app *fiber.App, method, target, token string, body any) *http.Response {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func day(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)

	return parsed
}

func seedSchedule(t *testing.T, db *gorm.DB) models.ProcessingSchedule {
	t.Helper()

	schedule := models.ProcessingSchedule{ID: uuid.New(), Code: "M1", Name: "Monthly"}
	require.NoError(t, db.Create(&schedule).Error)

	return schedule
}

func TestPostPeriodAppendsContiguously(t *testing.T) {
	app, db := testApp(t)

	schedule := seedSchedule(t, db)
	token := serviceToken(t)

	first := PeriodDto{Name: "Jan", StartDate: day(t, "2026-01-01"), EndDate: day(t, "2026-01-31")}
	resp := doJSON(t, app, fiber.MethodPost, Path+"/"+schedule.ID.String()+"/periods", token, first)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	second := PeriodDto{Name: "Feb", StartDate: day(t, "2026-02-01"), EndDate: day(t, "2026-02-28")}
	resp = doJSON(t, app, fiber.MethodPost, Path+"/"+schedule.ID.String()+"/periods", token, second)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, Path+"/"+schedule.ID.String(), "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var loaded Dto
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loaded))
	require.Len(t, loaded.Periods, 2)
	assert.Equal(t, "Jan", loaded.Periods[0].Name)
	assert.Equal(t, "Feb", loaded.Periods[1].Name)
}

func TestPostPeriodRejectsGap(t *testing.T) {
	app, db := testApp(t)

	schedule := seedSchedule(t, db)
	token := serviceToken(t)

	first := PeriodDto{Name: "Jan", StartDate: day(t, "2026-01-01"), EndDate: day(t, "2026-01-31")}
	resp := doJSON(t, app, fiber.MethodPost, Path+"/"+schedule.ID.String()+"/periods", token, first)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	gapped := PeriodDto{Name: "Mar", StartDate: day(t, "2026-03-01"), EndDate: day(t, "2026-03-31")}
	resp = doJSON(t, app, fiber.MethodPost, Path+"/"+schedule.ID.String()+"/periods", token, gapped)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body message.LocalizedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, message.KeyProcessingPeriodGap, body.MessageKey)
}

func TestPostPeriodRejectsInvertedDates(t *testing.T) {
	app, db := testApp(t)

	schedule := seedSchedule(t, db)

	inverted := PeriodDto{Name: "Bad", StartDate: day(t, "2026-01-31"), EndDate: day(t, "2026-01-01")}
	resp := doJSON(t, app, fiber.MethodPost, Path+"/"+schedule.ID.String()+"/periods", serviceToken(t), inverted)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetAllIsOpen(t *testing.T) {
	app, db := testApp(t)

	seedSchedule(t, db)

	resp := doJSON(t, app, fiber.MethodGet, Path, "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var schedules []Dto
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&schedules))
	assert.Len(t, schedules, 1)
}
