package orderable

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

	err = db.AutoMigrate(
		&models.Program{}, &models.Orderable{}, &models.ProgramOrderable{},
		&models.FacilityType{}, &models.GeographicZone{}, &models.Facility{},
		&models.FacilityTypeApprovedProduct{},
	)
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestSearch(t *testing.T) {
	db := setupTestDB(t)

	program := models.Program{ID: uuid.New(), Code: "EM", Name: "Essential Meds", Active: true}
	require.NoError(t, db.Create(&program).Error)

	paracetamol, err := Create(db, &models.Orderable{
		Code: "C100",
		Name: "Paracetamol 500mg",
		ProgramOrderables: []models.ProgramOrderable{
			{ProgramID: program.ID, Active: true, FullSupply: true},
		},
	})
	require.NoError(t, err)

	_, err = Create(db, &models.Orderable{Code: "C200", Name: "Gloves"})
	require.NoError(t, err)

	search := func(values url.Values) []models.Orderable {
		p, err := params.NewOrderableSearchParams(values)
		require.NoError(t, err)

		orderables, err := Search(db, p)
		require.NoError(t, err)

		return orderables
	}

	t.Run("empty params match everything", func(t *testing.T) {
		assert.Len(t, search(url.Values{}), 2)
	})

	t.Run("by code", func(t *testing.T) {
		orderables := search(url.Values{"code": {"C100"}})
		require.Len(t, orderables, 1)
		assert.Equal(t, paracetamol.ID, orderables[0].ID)
	})

	t.Run("by partial name", func(t *testing.T) {
		orderables := search(url.Values{"name": {"aracetamo"}})
		require.Len(t, orderables, 1)
		assert.Equal(t, paracetamol.ID, orderables[0].ID)
	})

	t.Run("by program code", func(t *testing.T) {
		orderables := search(url.Values{"program": {"EM"}})
		require.Len(t, orderables, 1)
		assert.Equal(t, paracetamol.ID, orderables[0].ID)
	})
}

func TestSearchFulfills(t *testing.T) {
	db := setupTestDB(t)

	program := models.Program{ID: uuid.New(), Code: "EM", Active: true}
	require.NoError(t, db.Create(&program).Error)

	healthCenter := models.FacilityType{ID: uuid.New(), Code: "HC", Active: true}
	require.NoError(t, db.Create(&healthCenter).Error)
	zone := models.GeographicZone{ID: uuid.New(), Code: "Z", Level: 1}
	require.NoError(t, db.Create(&zone).Error)
	facility := models.Facility{
		ID: uuid.New(), Code: "F1", TypeID: healthCenter.ID, GeographicZoneID: zone.ID, Active: true,
	}
	require.NoError(t, db.Create(&facility).Error)

	approved, err := Create(db, &models.Orderable{Code: "C100", Name: "Paracetamol"})
	require.NoError(t, err)
	_, err = Create(db, &models.Orderable{Code: "C200", Name: "Gloves"})
	require.NoError(t, err)

	ftap := models.FacilityTypeApprovedProduct{
		ID:             uuid.New(),
		FacilityTypeID: healthCenter.ID,
		OrderableID:    approved.ID,
		ProgramID:      program.ID,
		Active:         true,
	}
	require.NoError(t, db.Create(&ftap).Error)

	fulfills := func(values url.Values) []models.Orderable {
		p, err := params.NewOrderableFulfillSearchParams(values)
		require.NoError(t, err)

		orderables, err := SearchFulfills(db, p)
		require.NoError(t, err)

		return orderables
	}

	t.Run("by facility and program", func(t *testing.T) {
		orderables := fulfills(url.Values{
			"facilityId": {facility.ID.String()},
			"programId":  {program.ID.String()},
		})
		require.Len(t, orderables, 1)
		assert.Equal(t, approved.ID, orderables[0].ID)
	})

	t.Run("by ids", func(t *testing.T) {
		orderables := fulfills(url.Values{"id": {approved.ID.String()}})
		require.Len(t, orderables, 1)
		assert.Equal(t, approved.ID, orderables[0].ID)
	})

	t.Run("unknown facility", func(t *testing.T) {
		p, err := params.NewOrderableFulfillSearchParams(url.Values{
			"facilityId": {uuid.New().String()},
			"programId":  {program.ID.String()},
		})
		require.NoError(t, err)

		_, err = SearchFulfills(db, p)
		require.Error(t, err)
	})
}

func TestUpdateReplacesProgramMemberships(t *testing.T) {
	db := setupTestDB(t)

	programA := models.Program{ID: uuid.New(), Code: "A", Active: true}
	programB := models.Program{ID: uuid.New(), Code: "B", Active: true}
	require.NoError(t, db.Create(&programA).Error)
	require.NoError(t, db.Create(&programB).Error)

	created, err := Create(db, &models.Orderable{
		Code: "C100",
		ProgramOrderables: []models.ProgramOrderable{
			{ProgramID: programA.ID, Active: true},
		},
	})
	require.NoError(t, err)

	created.ProgramOrderables = []models.ProgramOrderable{
		{ProgramID: programB.ID, Active: true},
	}

	updated, err := Update(db, created)
	require.NoError(t, err)
	require.Len(t, updated.ProgramOrderables, 1)
	assert.Equal(t, programB.ID, updated.ProgramOrderables[0].ProgramID)
}
