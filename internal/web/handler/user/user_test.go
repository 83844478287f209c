package user

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
	"github.com/openlogistics-io/referencedata/internal/domain"
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
		&models.SupervisoryNode{}, &models.RequisitionGroup{},
		&models.Facility{}, &models.FacilityType{}, &models.GeographicZone{},
		&models.Program{},
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

func seedRole(t *testing.T, db *gorm.DB, name, rightName, rightType string) models.Role {
	t.Helper()

	right := models.Right{ID: uuid.New(), Name: rightName, Type: rightType}
	require.NoError(t, db.Create(&right).Error)

	role := models.Role{ID: uuid.New(), Name: name, Rights: []models.Right{right}}
	require.NoError(t, db.Create(&role).Error)

	return role
}

func serviceToken(t *testing.T) string {
	t.Helper()

	token, err := auth.NewServiceToken(testSecret, "test-client", time.Minute)
	require.NoError(t, err)

	return token
}

func userToken(t *testing.T, id uuid.UUID) string {
	t.Helper()

	token, err := auth.NewUserToken(testSecret, id, time.Minute)
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

func decodeDto(t *testing.T, resp *http.Response) Dto {
	t.Helper()

	var dto Dto
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&dto))

	return dto
}

func decodeError(t *testing.T, resp *http.Response) message.LocalizedResponse {
	t.Helper()

	var body message.LocalizedResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	return body
}

func TestPutCreatesUser(t *testing.T) {
	app, _ := testApp(t)

	body := Dto{Username: "alice", FirstName: "Alice", Active: true}

	resp := doJSON(t, app, fiber.MethodPut, Path, serviceToken(t), body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	created := decodeDto(t, resp)
	assert.Equal(t, "alice", created.Username)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

func TestPutSavesRoleAssignmentsAsSet(t *testing.T) {
	app, db := testApp(t)

	adminRole := seedRole(t, db, "admins", "USERS_MANAGE", "GENERAL_ADMIN")
	reportRole := seedRole(t, db, "reporters", "REPORTS_VIEW", "ORDER_REPORT")

	create := Dto{
		Username: "alice",
		Active:   true,
		RoleAssignments: []domain.RoleAssignmentRecord{
			{RoleID: adminRole.ID},
		},
	}

	resp := doJSON(t, app, fiber.MethodPut, Path, serviceToken(t), create)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	saved := decodeDto(t, resp)
	require.Len(t, saved.RoleAssignments, 1)

	// replace the set: admin grant out, report grant in
	records := []domain.RoleAssignmentRecord{{RoleID: reportRole.ID}}

	resp = doJSON(t, app, fiber.MethodPut, Path+"/"+saved.ID.String()+"/roleAssignments", serviceToken(t), records)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var replaced []domain.RoleAssignmentRecord
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&replaced))
	require.Len(t, replaced, 1)
	assert.Equal(t, reportRole.ID, replaced[0].RoleID)
}

func TestPutRoleAssignmentRejectsScopeMismatch(t *testing.T) {
	app, db := testApp(t)

	adminRole := seedRole(t, db, "admins", "USERS_MANAGE", "GENERAL_ADMIN")

	row := models.User{ID: uuid.New(), Username: "alice", Active: true}
	require.NoError(t, db.Create(&row).Error)

	warehouseID := uuid.New()
	records := []domain.RoleAssignmentRecord{
		{RoleID: adminRole.ID, WarehouseID: &warehouseID},
	}

	resp := doJSON(t, app, fiber.MethodPut, Path+"/"+row.ID.String()+"/roleAssignments", serviceToken(t), records)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, message.KeyRoleAssignmentScopeMismatch, decodeError(t, resp).MessageKey)
}

func TestPutRoleAssignmentRejectsRoleWithoutRights(t *testing.T) {
	app, db := testApp(t)

	emptyRole := models.Role{ID: uuid.New(), Name: "empty"}
	require.NoError(t, db.Create(&emptyRole).Error)

	row := models.User{ID: uuid.New(), Username: "alice", Active: true}
	require.NoError(t, db.Create(&row).Error)

	records := []domain.RoleAssignmentRecord{{RoleID: emptyRole.ID}}

	resp := doJSON(t, app, fiber.MethodPut, Path+"/"+row.ID.String()+"/roleAssignments", serviceToken(t), records)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, message.KeyRoleMustHaveARight, decodeError(t, resp).MessageKey)
}

func TestGetOneAllowsSelf(t *testing.T) {
	app, db := testApp(t)

	row := models.User{ID: uuid.New(), Username: "alice", Active: true}
	require.NoError(t, db.Create(&row).Error)

	resp := doJSON(t, app, fiber.MethodGet, Path+"/"+row.ID.String(), userToken(t, row.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "alice", decodeDto(t, resp).Username)
}

func TestGetOneDeniesOtherUserWithoutRight(t *testing.T) {
	app, db := testApp(t)

	alice := models.User{ID: uuid.New(), Username: "alice", Active: true}
	bob := models.User{ID: uuid.New(), Username: "bob", Active: true}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&bob).Error)

	resp := doJSON(t, app, fiber.MethodGet, Path+"/"+alice.ID.String(), userToken(t, bob.ID), nil)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestSearchByUsername(t *testing.T) {
	app, db := testApp(t)

	for _, username := range []string{"alice", "alina", "bob"} {
		require.NoError(t, db.Create(&models.User{ID: uuid.New(), Username: username, Active: true}).Error)
	}

	resp := doJSON(t, app, fiber.MethodGet, Path+"?username=ali", serviceToken(t), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var found []Dto
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&found))
	assert.Len(t, found, 2)
}

func TestSearchRejectsMalformedHomeFacilityID(t *testing.T) {
	app, _ := testApp(t)

	resp := doJSON(t, app, fiber.MethodGet, Path+"?homeFacilityId=not-a-uuid", serviceToken(t), nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, message.KeyInvalidUUIDFormat, decodeError(t, resp).MessageKey)
}
