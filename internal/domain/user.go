package domain

import (
	"github.com/google/uuid"
)

// User is the authorization view of a user account: identity, home facility
// and the set of role assignments it owns.
type User struct {
	ID             uuid.UUID
	Username       string
	FirstName      string
	LastName       string
	Email          string
	HomeFacilityID uuid.UUID
	Active         bool

	assignments []RoleAssignment
}

// AssignRoles adds role assignments to the user.
func (u *User) AssignRoles(assignments ...RoleAssignment) {
	u.assignments = append(u.assignments, assignments...)
}

// ClearRoleAssignments removes all role assignments. Used before a full set
// replacement.
func (u *User) ClearRoleAssignments() {
	u.assignments = nil
}

// RoleAssignments returns the user's role assignments.
func (u *User) RoleAssignments() []RoleAssignment {
	return u.assignments
}

// HasRight reports whether any of the user's role assignments satisfies the
// query. The first match wins.
func (u *User) HasRight(query RightQuery) bool {
	for _, assignment := range u.assignments {
		if assignment.HasRight(query) {
			return true
		}
	}

	return false
}
