package domain

import (
	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/message"
)

// RightQuery describes a permission question: does some assignment grant
// this right, within this scope? Absent scope fields are uuid.Nil.
type RightQuery struct {
	Right       Right
	ProgramID   uuid.UUID
	FacilityID  uuid.UUID
	WarehouseID uuid.UUID
}

// RoleAssignment is a closed set of variants, each with exactly the scope
// fields its right type requires. Invalid field combinations are therefore
// unrepresentable instead of being guarded at runtime.
type RoleAssignment interface {
	// Role returns the granted role.
	Role() *Role

	// HasRight reports whether this assignment satisfies the query.
	HasRight(query RightQuery) bool

	// Record flattens the assignment to its transfer representation.
	Record() RoleAssignmentRecord

	sealed()
}

// RoleAssignmentRecord is the flat transfer shape used at the API and
// persistence boundaries. Which optional fields are populated determines the
// variant on import.
type RoleAssignmentRecord struct {
	RoleID            uuid.UUID  `json:"roleId"`
	ProgramID         *uuid.UUID `json:"programId,omitempty"`
	SupervisoryNodeID *uuid.UUID `json:"supervisoryNodeId,omitempty"`
	WarehouseID       *uuid.UUID `json:"warehouseId,omitempty"`
}

func scopeMismatch(role *Role, expected RightType) error {
	return message.NewValidationError(
		message.KeyRoleAssignmentScopeMismatch,
		role.Name, string(role.Type()), string(expected),
	)
}

// DirectRoleAssignment grants a general-admin role system-wide.
type DirectRoleAssignment struct {
	role *Role
}

// NewDirectRoleAssignment constructs a scope-free assignment of a
// general-admin role.
func NewDirectRoleAssignment(role *Role) (*DirectRoleAssignment, error) {
	if role.Type() != RightTypeGeneralAdmin {
		return nil, scopeMismatch(role, RightTypeGeneralAdmin)
	}

	return &DirectRoleAssignment{role: role}, nil
}

// Role returns the granted role.
func (a *DirectRoleAssignment) Role() *Role { return a.role }

// HasRight matches purely on role membership; direct assignments carry no
// scope.
func (a *DirectRoleAssignment) HasRight(query RightQuery) bool {
	return a.role.Contains(query.Right)
}

// Record flattens the assignment for transfer.
func (a *DirectRoleAssignment) Record() RoleAssignmentRecord {
	return RoleAssignmentRecord{RoleID: a.role.ID}
}

func (a *DirectRoleAssignment) sealed() {}

// ReportAccessRoleAssignment grants an order-report role, scope-free like a
// direct assignment but restricted to reporting rights.
type ReportAccessRoleAssignment struct {
	role *Role
}

// NewReportAccessRoleAssignment constructs an assignment of an order-report
// role.
func NewReportAccessRoleAssignment(role *Role) (*ReportAccessRoleAssignment, error) {
	if role.Type() != RightTypeOrderReport {
		return nil, scopeMismatch(role, RightTypeOrderReport)
	}

	return &ReportAccessRoleAssignment{role: role}, nil
}

// Role returns the granted role.
func (a *ReportAccessRoleAssignment) Role() *Role { return a.role }

// HasRight matches purely on role membership.
func (a *ReportAccessRoleAssignment) HasRight(query RightQuery) bool {
	return a.role.Contains(query.Right)
}

// Record flattens the assignment for transfer.
func (a *ReportAccessRoleAssignment) Record() RoleAssignmentRecord {
	return RoleAssignmentRecord{RoleID: a.role.ID}
}

func (a *ReportAccessRoleAssignment) sealed() {}

// SupervisionRoleAssignment grants a supervision role within a program. With
// a supervisory node the grant covers the node's whole subtree; without one
// it covers only the user's home facility.
type SupervisionRoleAssignment struct {
	role           *Role
	programID      uuid.UUID
	node           *SupervisoryNode
	homeFacilityID uuid.UUID
}

// NewSupervisionRoleAssignment constructs a program-scoped assignment of a
// supervision role. node may be nil for a home-facility grant;
// homeFacilityID is the owning user's home facility (uuid.Nil when the user
// has none).
func NewSupervisionRoleAssignment(
	role *Role,
	programID uuid.UUID,
	node *SupervisoryNode,
	homeFacilityID uuid.UUID,
) (*SupervisionRoleAssignment, error) {
	if role.Type() != RightTypeSupervision {
		return nil, scopeMismatch(role, RightTypeSupervision)
	}

	if programID == uuid.Nil {
		return nil, message.NewValidationError(message.KeyRoleAssignmentUnknownShape, role.Name)
	}

	return &SupervisionRoleAssignment{
		role:           role,
		programID:      programID,
		node:           node,
		homeFacilityID: homeFacilityID,
	}, nil
}

// Role returns the granted role.
func (a *SupervisionRoleAssignment) Role() *Role { return a.role }

// ProgramID returns the program scope.
func (a *SupervisionRoleAssignment) ProgramID() uuid.UUID { return a.programID }

// SupervisoryNode returns the node scope, or nil for home-facility grants.
func (a *SupervisionRoleAssignment) SupervisoryNode() *SupervisoryNode { return a.node }

// HasRight matches when the role contains the right, the program scope
// equals the queried program, and the queried facility (if any) is covered:
// by the node subtree when a node is set, else by the home facility.
func (a *SupervisionRoleAssignment) HasRight(query RightQuery) bool {
	if !a.role.Contains(query.Right) || a.programID != query.ProgramID {
		return false
	}

	if query.FacilityID == uuid.Nil {
		// program-level query, no facility to cover
		return true
	}

	if a.node != nil {
		return a.node.Supervises(query.FacilityID, query.ProgramID)
	}

	return a.homeFacilityID != uuid.Nil && a.homeFacilityID == query.FacilityID
}

// SupervisedFacilities returns the facilities this assignment covers for the
// given right and program, empty without a node scope.
func (a *SupervisionRoleAssignment) SupervisedFacilities(right Right, programID uuid.UUID) []uuid.UUID {
	if a.node == nil {
		return nil
	}

	covered := make([]uuid.UUID, 0)

	for _, facilityID := range a.node.AllSupervisedFacilities(programID) {
		query := RightQuery{Right: right, ProgramID: programID, FacilityID: facilityID}
		if a.HasRight(query) {
			covered = append(covered, facilityID)
		}
	}

	return covered
}

// Record flattens the assignment for transfer.
func (a *SupervisionRoleAssignment) Record() RoleAssignmentRecord {
	record := RoleAssignmentRecord{RoleID: a.role.ID}

	programID := a.programID
	record.ProgramID = &programID

	if a.node != nil {
		nodeID := a.node.ID
		record.SupervisoryNodeID = &nodeID
	}

	return record
}

func (a *SupervisionRoleAssignment) sealed() {}

// FulfillmentRoleAssignment grants an order-fulfillment role at one
// warehouse facility.
type FulfillmentRoleAssignment struct {
	role        *Role
	warehouseID uuid.UUID
}

// NewFulfillmentRoleAssignment constructs a warehouse-scoped assignment of
// an order-fulfillment role.
func NewFulfillmentRoleAssignment(role *Role, warehouseID uuid.UUID) (*FulfillmentRoleAssignment, error) {
	if role.Type() != RightTypeOrderFulfillment {
		return nil, scopeMismatch(role, RightTypeOrderFulfillment)
	}

	if warehouseID == uuid.Nil {
		return nil, message.NewValidationError(message.KeyRoleAssignmentUnknownShape, role.Name)
	}

	return &FulfillmentRoleAssignment{role: role, warehouseID: warehouseID}, nil
}

// Role returns the granted role.
func (a *FulfillmentRoleAssignment) Role() *Role { return a.role }

// WarehouseID returns the warehouse scope.
func (a *FulfillmentRoleAssignment) WarehouseID() uuid.UUID { return a.warehouseID }

// HasRight matches on role membership plus exact warehouse equality.
func (a *FulfillmentRoleAssignment) HasRight(query RightQuery) bool {
	return a.role.Contains(query.Right) && a.warehouseID == query.WarehouseID
}

// Record flattens the assignment for transfer.
func (a *FulfillmentRoleAssignment) Record() RoleAssignmentRecord {
	record := RoleAssignmentRecord{RoleID: a.role.ID}

	warehouseID := a.warehouseID
	record.WarehouseID = &warehouseID

	return record
}

func (a *FulfillmentRoleAssignment) sealed() {}

// ImportContext supplies the referenced entities needed to rebuild an
// assignment from its flat record.
type ImportContext struct {
	// Node resolves a supervisory node id to its loaded hierarchy. Called
	// only for supervision records carrying a node id.
	Node func(id uuid.UUID) (*SupervisoryNode, error)

	// HomeFacilityID is the owning user's home facility, uuid.Nil if none.
	HomeFacilityID uuid.UUID
}

// NewRoleAssignment rebuilds the correct variant from a flat record. The
// populated scope fields select the variant; combinations matching no
// variant are rejected.
func NewRoleAssignment(role *Role, record RoleAssignmentRecord, ctx ImportContext) (RoleAssignment, error) {
	switch {
	case record.ProgramID != nil && record.WarehouseID != nil:
		return nil, message.NewValidationError(message.KeyRoleAssignmentUnknownShape, role.Name)

	case record.ProgramID != nil:
		var node *SupervisoryNode

		if record.SupervisoryNodeID != nil {
			var err error
			if node, err = ctx.Node(*record.SupervisoryNodeID); err != nil {
				return nil, err
			}
		}

		return NewSupervisionRoleAssignment(role, *record.ProgramID, node, ctx.HomeFacilityID)

	case record.SupervisoryNodeID != nil:
		// node without program matches no variant
		return nil, message.NewValidationError(message.KeyRoleAssignmentUnknownShape, role.Name)

	case record.WarehouseID != nil:
		return NewFulfillmentRoleAssignment(role, *record.WarehouseID)

	case role.Type() == RightTypeOrderReport:
		return NewReportAccessRoleAssignment(role)

	default:
		return NewDirectRoleAssignment(role)
	}
}
