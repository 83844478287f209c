// Package domain implements the right-based authorization model: rights,
// roles and the role-assignment variants that scope a role grant to a
// program, supervisory node or warehouse.
package domain

import (
	"github.com/google/uuid"
)

// RightType categorizes a right and determines what kind of scope a role
// assignment granting it may carry.
type RightType string

const (
	// RightTypeGeneralAdmin rights apply system-wide, without scope.
	RightTypeGeneralAdmin RightType = "GENERAL_ADMIN"
	// RightTypeSupervision rights apply within a program, optionally
	// narrowed to a supervisory node subtree.
	RightTypeSupervision RightType = "SUPERVISION"
	// RightTypeOrderFulfillment rights apply to fulfillment operations at
	// a warehouse facility.
	RightTypeOrderFulfillment RightType = "ORDER_FULFILLMENT"
	// RightTypeOrderReport rights grant access to reporting, without scope.
	RightTypeOrderReport RightType = "ORDER_REPORT"
)

// Valid reports whether t is one of the closed set of right types.
func (t RightType) Valid() bool {
	switch t {
	case RightTypeGeneralAdmin, RightTypeSupervision, RightTypeOrderFulfillment, RightTypeOrderReport:
		return true
	default:
		return false
	}
}

// Right is an atomic named permission. Identity is the name: two rights with
// the same name are the same right regardless of any other attribute.
type Right struct {
	ID          uuid.UUID
	Name        string
	Type        RightType
	Description string
}

// NewRight is the only construction path for a Right, so a right can never
// exist with a name but no type or the other way around.
func NewRight(name string, rightType RightType) Right {
	return Right{Name: name, Type: rightType}
}

// Equal compares rights by name only.
func (r Right) Equal(other Right) bool {
	return r.Name == other.Name
}
