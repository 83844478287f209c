package facility

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
		&models.FacilityType{}, &models.GeographicZone{}, &models.Facility{},
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

func seedCatalog(t *testing.T, db *gorm.DB) (models.FacilityType, models.GeographicZone) {
	t.Helper()

	facilityType := models.FacilityType{ID: uuid.New(), Code: "HC", Name: "Health Center", Active: true}
	require.NoError(t, db.Create(&facilityType).Error)

	zone := models.GeographicZone{ID: uuid.New(), Code: "C1", Name: "Country", Level: 1}
	require.NoError(t, db.Create(&zone).Error)

	return facilityType, zone
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

func decodeError(t *testing.T, resp *http.Response) message.LocalizedResponse {
	t.Helper()

	var body message.LocalizedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return body
}

func TestSearchRejectsUnknownParameter(t *testing.T) {
	app, _ := testApp(t)

	resp := doJSON(t, app, fiber.MethodGet, SearchPath+"?bogus=1", "", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, message.KeyFacilitySearchInvalidParams, decodeError(t, resp).MessageKey)
}

func TestSearchByCode(t *testing.T) {
	app, db := testApp(t)
	facilityType, zone := seedCatalog(t, db)

	require.NoError(t, db.Create(&models.Facility{
		ID: uuid.New(), Code: "F001", Name: "Central", TypeID: facilityType.ID,
		GeographicZoneID: zone.ID, Active: true, Enabled: true,
	}).Error)
	require.NoError(t, db.Create(&models.Facility{
		ID: uuid.New(), Code: "F002", Name: "North", TypeID: facilityType.ID,
		GeographicZoneID: zone.ID, Active: true, Enabled: true,
	}).Error)

	resp := doJSON(t, app, fiber.MethodGet, SearchPath+"?code=F001", "", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var found []Dto
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&found))
	require.Len(t, found, 1)
	assert.Equal(t, "F001", found[0].Code)
}

func TestPostRequiresRight(t *testing.T) {
	app, db := testApp(t)
	facilityType, zone := seedCatalog(t, db)

	body := Dto{Code: "F001", TypeID: facilityType.ID, GeographicZoneID: zone.ID}

	resp := doJSON(t, app, fiber.MethodPost, Path, "", body)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestPostRejectsUnknownZone(t *testing.T) {
	app, db := testApp(t)
	facilityType, _ := seedCatalog(t, db)

	body := Dto{Code: "F001", TypeID: facilityType.ID, GeographicZoneID: uuid.New()}

	resp := doJSON(t, app, fiber.MethodPost, Path, serviceToken(t), body)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, message.KeyGeographicZoneNotFound, decodeError(t, resp).MessageKey)
}

func TestPostCreatesFacility(t *testing.T) {
	app, db := testApp(t)
	facilityType, zone := seedCatalog(t, db)

	body := Dto{
		Code: "F001", Name: "Central", TypeID: facilityType.ID,
		GeographicZoneID: zone.ID, Active: true, Enabled: true,
		ExtraData: map[string]string{"type": "rural"},
	}

	resp := doJSON(t, app, fiber.MethodPost, Path, serviceToken(t), body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created Dto
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, "F001", created.Code)
	assert.Equal(t, "rural", created.ExtraData["type"])
}
