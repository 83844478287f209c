package facility

import (
	"net/url"
	"testing"

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

	err = db.AutoMigrate(&models.FacilityType{}, &models.GeographicZone{}, &models.Facility{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

type fixture struct {
	healthCenter models.FacilityType
	wardService  models.FacilityType
	country      models.GeographicZone
	district     models.GeographicZone
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	f := fixture{
		healthCenter: models.FacilityType{ID: uuid.New(), Code: "HC", Name: "Health Center", Active: true},
		wardService:  models.FacilityType{ID: uuid.New(), Code: "WS", Name: "Ward/Service", Active: true},
		country:      models.GeographicZone{ID: uuid.New(), Code: "C", Level: 1},
	}
	f.district = models.GeographicZone{ID: uuid.New(), Code: "D", Level: 2, ParentID: &f.country.ID}

	require.NoError(t, db.Create(&f.healthCenter).Error)
	require.NoError(t, db.Create(&f.wardService).Error)
	require.NoError(t, db.Create(&f.country).Error)
	require.NoError(t, db.Create(&f.district).Error)

	return f
}

func seedFacility(t *testing.T, db *gorm.DB, code string, typeID, zoneID uuid.UUID, mutate func(*models.Facility)) models.Facility {
	t.Helper()

	facility := models.Facility{
		ID:               uuid.New(),
		Code:             code,
		Name:             code,
		TypeID:           typeID,
		GeographicZoneID: zoneID,
		Active:           true,
		Enabled:          true,
	}

	if mutate != nil {
		mutate(&facility)
	}

	require.NoError(t, db.Create(&facility).Error)

	return facility
}

func searchParams(t *testing.T, values url.Values) *params.FacilitySearchParams {
	t.Helper()

	p, err := params.NewFacilitySearchParams(values)
	require.NoError(t, err)

	return p
}

func TestSearch(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	clinic := seedFacility(t, db, "CLINIC-1", f.healthCenter.ID, f.district.ID, func(fa *models.Facility) {
		fa.Name = "Kalemie Clinic"
		fa.ExtraData = `{"region":"north"}`
	})
	seedFacility(t, db, "CLINIC-2", f.healthCenter.ID, f.country.ID, func(fa *models.Facility) {
		fa.Active = false
	})
	seedFacility(t, db, "WARD-1", f.wardService.ID, f.district.ID, nil)

	t.Run("empty params match everything", func(t *testing.T) {
		facilities, err := Search(db, searchParams(t, url.Values{}))
		require.NoError(t, err)
		assert.Len(t, facilities, 3)
	})

	t.Run("by code", func(t *testing.T) {
		facilities, err := Search(db, searchParams(t, url.Values{"code": {"CLINIC-1"}}))
		require.NoError(t, err)
		require.Len(t, facilities, 1)
		assert.Equal(t, clinic.ID, facilities[0].ID)
	})

	t.Run("by partial name", func(t *testing.T) {
		facilities, err := Search(db, searchParams(t, url.Values{"name": {"alemie"}}))
		require.NoError(t, err)
		require.Len(t, facilities, 1)
		assert.Equal(t, clinic.ID, facilities[0].ID)
	})

	t.Run("by type code", func(t *testing.T) {
		facilities, err := Search(db, searchParams(t, url.Values{"type": {"WS"}}))
		require.NoError(t, err)
		require.Len(t, facilities, 1)
		assert.Equal(t, "WARD-1", facilities[0].Code)
	})

	t.Run("exclude wards and services", func(t *testing.T) {
		facilities, err := Search(db, searchParams(t, url.Values{"excludeWardsServices": {"true"}}))
		require.NoError(t, err)
		assert.Len(t, facilities, 2)

		for _, facility := range facilities {
			assert.NotEqual(t, "WARD-1", facility.Code)
		}
	})

	t.Run("active filter", func(t *testing.T) {
		facilities, err := Search(db, searchParams(t, url.Values{"active": {"false"}}))
		require.NoError(t, err)
		require.Len(t, facilities, 1)
		assert.Equal(t, "CLINIC-2", facilities[0].Code)
	})

	t.Run("zone without recurse", func(t *testing.T) {
		facilities, err := Search(db, searchParams(t, url.Values{"zoneId": {f.country.ID.String()}}))
		require.NoError(t, err)
		require.Len(t, facilities, 1)
		assert.Equal(t, "CLINIC-2", facilities[0].Code)
	})

	t.Run("zone with recurse covers subtree", func(t *testing.T) {
		facilities, err := Search(db, searchParams(t, url.Values{
			"zoneId":  {f.country.ID.String()},
			"recurse": {"true"},
		}))
		require.NoError(t, err)
		assert.Len(t, facilities, 3)
	})

	t.Run("extra data match", func(t *testing.T) {
		facilities, err := Search(db, searchParams(t, url.Values{"extraData": {`{"region":"north"}`}}))
		require.NoError(t, err)
		require.Len(t, facilities, 1)
		assert.Equal(t, clinic.ID, facilities[0].ID)
	})

	t.Run("extra data mismatch", func(t *testing.T) {
		facilities, err := Search(db, searchParams(t, url.Values{"extraData": {`{"region":"south"}`}}))
		require.NoError(t, err)
		assert.Empty(t, facilities)
	})
}

func TestCreateChecksReferences(t *testing.T) {
	db := setupTestDB(t)
	f := seedFixture(t, db)

	_, err := Create(db, &models.Facility{Code: "X", TypeID: uuid.New(), GeographicZoneID: f.district.ID})
	require.Error(t, err)

	_, err = Create(db, &models.Facility{Code: "X", TypeID: f.healthCenter.ID, GeographicZoneID: uuid.New()})
	require.Error(t, err)

	created, err := Create(db, &models.Facility{
		Code: "X", TypeID: f.healthCenter.ID, GeographicZoneID: f.district.ID, Active: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "HC", created.Type.Code)
}
