package domain

import (
	"github.com/google/uuid"
)

// RequisitionGroup links a supervisory node to the facilities it supervises
// for a set of programs.
type RequisitionGroup struct {
	ID          uuid.UUID
	Code        string
	Name        string
	ProgramIDs  []uuid.UUID
	FacilityIDs []uuid.UUID
}

func (g RequisitionGroup) servesProgram(programID uuid.UUID) bool {
	for _, id := range g.ProgramIDs {
		if id == programID {
			return true
		}
	}

	return false
}

// SupervisoryNode is one node of the supervision hierarchy. A node
// supervises the facilities of its own requisition groups plus everything
// its child nodes supervise.
type SupervisoryNode struct {
	ID         uuid.UUID
	Code       string
	Name       string
	FacilityID uuid.UUID

	parent   *SupervisoryNode
	children []*SupervisoryNode
	groups   []RequisitionGroup
}

// NewSupervisoryNode constructs a node without hierarchy links.
func NewSupervisoryNode(id uuid.UUID, code, name string, facilityID uuid.UUID) *SupervisoryNode {
	return &SupervisoryNode{ID: id, Code: code, Name: name, FacilityID: facilityID}
}

// AddChild links a child node into this node's subtree.
func (n *SupervisoryNode) AddChild(child *SupervisoryNode) {
	child.parent = n
	n.children = append(n.children, child)
}

// Parent returns the parent node, or nil at the hierarchy root.
func (n *SupervisoryNode) Parent() *SupervisoryNode {
	return n.parent
}

// AttachGroup adds a requisition group supervised directly by this node.
func (n *SupervisoryNode) AttachGroup(group RequisitionGroup) {
	n.groups = append(n.groups, group)
}

// AllSupervisedFacilities collects the facilities supervised by this node's
// subtree for the given program.
func (n *SupervisoryNode) AllSupervisedFacilities(programID uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	n.collectSupervisedFacilities(programID, seen)

	facilities := make([]uuid.UUID, 0, len(seen))
	for id := range seen {
		facilities = append(facilities, id)
	}

	return facilities
}

func (n *SupervisoryNode) collectSupervisedFacilities(programID uuid.UUID, seen map[uuid.UUID]struct{}) {
	for _, group := range n.groups {
		if !group.servesProgram(programID) {
			continue
		}

		for _, facilityID := range group.FacilityIDs {
			seen[facilityID] = struct{}{}
		}
	}

	for _, child := range n.children {
		child.collectSupervisedFacilities(programID, seen)
	}
}

// Supervises reports whether this node's subtree covers the facility for the
// program.
func (n *SupervisoryNode) Supervises(facilityID, programID uuid.UUID) bool {
	for _, group := range n.groups {
		if !group.servesProgram(programID) {
			continue
		}

		for _, id := range group.FacilityIDs {
			if id == facilityID {
				return true
			}
		}
	}

	for _, child := range n.children {
		if child.Supervises(facilityID, programID) {
			return true
		}
	}

	return false
}
