package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlogistics-io/referencedata/internal/message"
)

func adminRole(t *testing.T, rights ...string) *Role {
	t.Helper()
	return typedRole(t, RightTypeGeneralAdmin, rights...)
}

func typedRole(t *testing.T, rightType RightType, rights ...string) *Role {
	t.Helper()

	set := make([]Right, 0, len(rights))
	for _, name := range rights {
		set = append(set, NewRight(name, rightType))
	}

	role, err := NewRole("test-role", set...)
	require.NoError(t, err)

	return role
}

func TestDirectRoleAssignment_RequiresGeneralAdminRole(t *testing.T) {
	_, err := NewDirectRoleAssignment(typedRole(t, RightTypeSupervision, "REQUISITION_APPROVE"))
	require.Error(t, err)

	var vErr *message.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, message.KeyRoleAssignmentScopeMismatch, vErr.MessageKey())
}

func TestDirectRoleAssignment_HasRight(t *testing.T) {
	assignment, err := NewDirectRoleAssignment(adminRole(t, "USERS_MANAGE"))
	require.NoError(t, err)

	has := assignment.HasRight(RightQuery{Right: NewRight("USERS_MANAGE", RightTypeGeneralAdmin)})
	assert.True(t, has)

	has = assignment.HasRight(RightQuery{Right: NewRight("ROLES_MANAGE", RightTypeGeneralAdmin)})
	assert.False(t, has)
}

func TestReportAccessRoleAssignment_RequiresOrderReportRole(t *testing.T) {
	_, err := NewReportAccessRoleAssignment(adminRole(t, "USERS_MANAGE"))
	require.Error(t, err)

	assignment, err := NewReportAccessRoleAssignment(typedRole(t, RightTypeOrderReport, "REPORTS_VIEW"))
	require.NoError(t, err)
	assert.True(t, assignment.HasRight(RightQuery{Right: NewRight("REPORTS_VIEW", RightTypeOrderReport)}))
}

func TestFulfillmentRoleAssignment_MatchesWarehouseExactly(t *testing.T) {
	role := typedRole(t, RightTypeOrderFulfillment, "ORDERS_VIEW")
	warehouseID := uuid.New()

	assignment, err := NewFulfillmentRoleAssignment(role, warehouseID)
	require.NoError(t, err)

	right := NewRight("ORDERS_VIEW", RightTypeOrderFulfillment)
	assert.True(t, assignment.HasRight(RightQuery{Right: right, WarehouseID: warehouseID}))
	assert.False(t, assignment.HasRight(RightQuery{Right: right, WarehouseID: uuid.New()}))
	assert.False(t, assignment.HasRight(RightQuery{Right: right}))
}

func TestFulfillmentRoleAssignment_RequiresWarehouse(t *testing.T) {
	role := typedRole(t, RightTypeOrderFulfillment, "ORDERS_VIEW")

	_, err := NewFulfillmentRoleAssignment(role, uuid.Nil)
	require.Error(t, err)
}

func supervisedNode(facilityID, programID uuid.UUID) *SupervisoryNode {
	parent := NewSupervisoryNode(uuid.New(), "SN-P", "parent", uuid.New())
	child := NewSupervisoryNode(uuid.New(), "SN-C", "child", uuid.New())
	parent.AddChild(child)

	child.AttachGroup(RequisitionGroup{
		ID:          uuid.New(),
		Code:        "RG1",
		ProgramIDs:  []uuid.UUID{programID},
		FacilityIDs: []uuid.UUID{facilityID},
	})

	return parent
}

func TestSupervisionRoleAssignment_NodeScopeCoversSubtree(t *testing.T) {
	role := typedRole(t, RightTypeSupervision, "REQUISITION_APPROVE")
	programID := uuid.New()
	facilityID := uuid.New()

	// facility hangs off a child node; an assignment at the parent covers it
	node := supervisedNode(facilityID, programID)

	assignment, err := NewSupervisionRoleAssignment(role, programID, node, uuid.Nil)
	require.NoError(t, err)

	right := NewRight("REQUISITION_APPROVE", RightTypeSupervision)

	assert.True(t, assignment.HasRight(RightQuery{Right: right, ProgramID: programID, FacilityID: facilityID}))
	assert.False(t, assignment.HasRight(RightQuery{Right: right, ProgramID: programID, FacilityID: uuid.New()}))
	assert.False(t, assignment.HasRight(RightQuery{Right: right, ProgramID: uuid.New(), FacilityID: facilityID}))
}

func TestSupervisionRoleAssignment_ProgramLevelQueryIgnoresFacility(t *testing.T) {
	role := typedRole(t, RightTypeSupervision, "REQUISITION_CREATE")
	programID := uuid.New()

	assignment, err := NewSupervisionRoleAssignment(role, programID, nil, uuid.Nil)
	require.NoError(t, err)

	right := NewRight("REQUISITION_CREATE", RightTypeSupervision)
	assert.True(t, assignment.HasRight(RightQuery{Right: right, ProgramID: programID}))
}

func TestSupervisionRoleAssignment_HomeFacilityFallback(t *testing.T) {
	role := typedRole(t, RightTypeSupervision, "REQUISITION_CREATE")
	programID := uuid.New()
	homeFacilityID := uuid.New()

	assignment, err := NewSupervisionRoleAssignment(role, programID, nil, homeFacilityID)
	require.NoError(t, err)

	right := NewRight("REQUISITION_CREATE", RightTypeSupervision)
	assert.True(t, assignment.HasRight(RightQuery{Right: right, ProgramID: programID, FacilityID: homeFacilityID}))
	assert.False(t, assignment.HasRight(RightQuery{Right: right, ProgramID: programID, FacilityID: uuid.New()}))
}

func TestSupervisionRoleAssignment_RequiresProgram(t *testing.T) {
	role := typedRole(t, RightTypeSupervision, "REQUISITION_CREATE")

	_, err := NewSupervisionRoleAssignment(role, uuid.Nil, nil, uuid.Nil)
	require.Error(t, err)
}

func TestSupervisionRoleAssignment_SupervisedFacilities(t *testing.T) {
	role := typedRole(t, RightTypeSupervision, "REQUISITION_APPROVE")
	programID := uuid.New()
	facilityID := uuid.New()
	node := supervisedNode(facilityID, programID)

	assignment, err := NewSupervisionRoleAssignment(role, programID, node, uuid.Nil)
	require.NoError(t, err)

	right := NewRight("REQUISITION_APPROVE", RightTypeSupervision)
	assert.Equal(t, []uuid.UUID{facilityID}, assignment.SupervisedFacilities(right, programID))
	assert.Empty(t, assignment.SupervisedFacilities(right, uuid.New()))
}

func TestNewRoleAssignment_SelectsVariantFromRecordShape(t *testing.T) {
	programID := uuid.New()
	nodeID := uuid.New()
	warehouseID := uuid.New()

	ctx := ImportContext{
		Node: func(id uuid.UUID) (*SupervisoryNode, error) {
			return NewSupervisoryNode(id, "SN1", "node", uuid.New()), nil
		},
	}

	t.Run("no scope on admin role builds direct", func(t *testing.T) {
		assignment, err := NewRoleAssignment(adminRole(t, "USERS_MANAGE"), RoleAssignmentRecord{}, ctx)
		require.NoError(t, err)
		assert.IsType(t, &DirectRoleAssignment{}, assignment)
	})

	t.Run("no scope on report role builds report access", func(t *testing.T) {
		role := typedRole(t, RightTypeOrderReport, "REPORTS_VIEW")
		assignment, err := NewRoleAssignment(role, RoleAssignmentRecord{}, ctx)
		require.NoError(t, err)
		assert.IsType(t, &ReportAccessRoleAssignment{}, assignment)
	})

	t.Run("program id builds supervision", func(t *testing.T) {
		role := typedRole(t, RightTypeSupervision, "REQUISITION_CREATE")
		record := RoleAssignmentRecord{ProgramID: &programID}

		assignment, err := NewRoleAssignment(role, record, ctx)
		require.NoError(t, err)
		assert.IsType(t, &SupervisionRoleAssignment{}, assignment)
	})

	t.Run("program and node ids build node scoped supervision", func(t *testing.T) {
		role := typedRole(t, RightTypeSupervision, "REQUISITION_CREATE")
		record := RoleAssignmentRecord{ProgramID: &programID, SupervisoryNodeID: &nodeID}

		assignment, err := NewRoleAssignment(role, record, ctx)
		require.NoError(t, err)

		supervision, ok := assignment.(*SupervisionRoleAssignment)
		require.True(t, ok)
		assert.NotNil(t, supervision.SupervisoryNode())
	})

	t.Run("warehouse id builds fulfillment", func(t *testing.T) {
		role := typedRole(t, RightTypeOrderFulfillment, "ORDERS_VIEW")
		record := RoleAssignmentRecord{WarehouseID: &warehouseID}

		assignment, err := NewRoleAssignment(role, record, ctx)
		require.NoError(t, err)
		assert.IsType(t, &FulfillmentRoleAssignment{}, assignment)
	})

	t.Run("program id with non supervision role fails", func(t *testing.T) {
		record := RoleAssignmentRecord{ProgramID: &programID}

		_, err := NewRoleAssignment(adminRole(t, "USERS_MANAGE"), record, ctx)
		require.Error(t, err)
	})

	t.Run("program and warehouse together match no variant", func(t *testing.T) {
		role := typedRole(t, RightTypeSupervision, "REQUISITION_CREATE")
		record := RoleAssignmentRecord{ProgramID: &programID, WarehouseID: &warehouseID}

		_, err := NewRoleAssignment(role, record, ctx)
		require.Error(t, err)

		var vErr *message.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, message.KeyRoleAssignmentUnknownShape, vErr.MessageKey())
	})

	t.Run("node without program matches no variant", func(t *testing.T) {
		role := typedRole(t, RightTypeSupervision, "REQUISITION_CREATE")
		record := RoleAssignmentRecord{SupervisoryNodeID: &nodeID}

		_, err := NewRoleAssignment(role, record, ctx)
		require.Error(t, err)
	})
}

func TestRoleAssignment_RecordRoundTrip(t *testing.T) {
	programID := uuid.New()
	warehouseID := uuid.New()
	node := NewSupervisoryNode(uuid.New(), "SN1", "node", uuid.New())

	supervisionRole := typedRole(t, RightTypeSupervision, "REQUISITION_CREATE")
	supervision, err := NewSupervisionRoleAssignment(supervisionRole, programID, node, uuid.Nil)
	require.NoError(t, err)

	record := supervision.Record()
	require.NotNil(t, record.ProgramID)
	require.NotNil(t, record.SupervisoryNodeID)
	assert.Equal(t, programID, *record.ProgramID)
	assert.Equal(t, node.ID, *record.SupervisoryNodeID)
	assert.Nil(t, record.WarehouseID)

	fulfillmentRole := typedRole(t, RightTypeOrderFulfillment, "ORDERS_VIEW")
	fulfillment, err := NewFulfillmentRoleAssignment(fulfillmentRole, warehouseID)
	require.NoError(t, err)

	record = fulfillment.Record()
	require.NotNil(t, record.WarehouseID)
	assert.Equal(t, warehouseID, *record.WarehouseID)
	assert.Nil(t, record.ProgramID)
}

func TestUser_HasRight(t *testing.T) {
	adminAssignment, err := NewDirectRoleAssignment(adminRole(t, "GEOGRAPHIC_ZONE_MANAGE"))
	require.NoError(t, err)

	user := &User{ID: uuid.New(), Username: "jdoe"}
	user.AssignRoles(adminAssignment)

	assert.True(t, user.HasRight(RightQuery{Right: NewRight("GEOGRAPHIC_ZONE_MANAGE", RightTypeGeneralAdmin)}))
	assert.False(t, user.HasRight(RightQuery{Right: NewRight("USERS_MANAGE", RightTypeGeneralAdmin)}))

	user.ClearRoleAssignments()
	assert.Empty(t, user.RoleAssignments())
	assert.False(t, user.HasRight(RightQuery{Right: NewRight("GEOGRAPHIC_ZONE_MANAGE", RightTypeGeneralAdmin)}))
}
