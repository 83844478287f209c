package domain

import (
	"sort"

	"github.com/google/uuid"

	"github.com/openlogistics-io/referencedata/internal/message"
)

// Role is a named bundle of rights that all share one RightType. The shared
// type decides which role-assignment variant may grant the role.
type Role struct {
	ID          uuid.UUID
	Name        string
	Description string

	// keyed by right name, matching right identity semantics
	rights map[string]Right
}

// NewRole constructs a role from at least one right. All supplied rights
// must share one RightType.
func NewRole(name string, rights ...Right) (*Role, error) {
	role := &Role{Name: name}
	if err := role.Group(rights...); err != nil {
		return nil, err
	}

	return role, nil
}

// Group replaces the role's rights with the given set, enforcing the
// single-type invariant. An empty set is rejected.
func (r *Role) Group(rights ...Right) error {
	set := make(map[string]Right, len(rights))
	for _, right := range rights {
		set[right.Name] = right
	}

	if len(set) == 0 {
		return message.NewValidationError(message.KeyRoleMustHaveARight)
	}

	if err := checkRightTypesMatch(set); err != nil {
		return err
	}

	r.rights = set

	return nil
}

func checkRightTypesMatch(set map[string]Right) error {
	var rightType RightType

	for _, right := range set {
		if rightType == "" {
			rightType = right.Type
			continue
		}

		if right.Type != rightType {
			return message.NewValidationError(
				message.KeyRoleRightsAreDifferentTypes,
				string(rightType), string(right.Type),
			)
		}
	}

	return nil
}

// Type returns the RightType shared by all the role's rights.
func (r *Role) Type() RightType {
	for _, right := range r.rights {
		return right.Type
	}

	return ""
}

// Contains reports whether the role grants the given right (by name).
func (r *Role) Contains(right Right) bool {
	_, ok := r.rights[right.Name]
	return ok
}

// Rights returns the role's rights sorted by name for stable output.
func (r *Role) Rights() []Right {
	rights := make([]Right, 0, len(r.rights))
	for _, right := range r.rights {
		rights = append(rights, right)
	}

	sort.Slice(rights, func(i, j int) bool { return rights[i].Name < rights[j].Name })

	return rights
}

// UpdateRights replaces the role's rights with the desired set and reports
// the difference. Rights in desired but not current are returned as added,
// rights in current but not desired as removed; the intersection is left
// untouched. The desired set is validated like any other construction.
func (r *Role) UpdateRights(desired []Right) (added, removed []Right, err error) {
	current := r.rights

	if err = r.Group(desired...); err != nil {
		return nil, nil, err
	}

	for name, right := range r.rights {
		if _, ok := current[name]; !ok {
			added = append(added, right)
		}
	}

	for name, right := range current {
		if _, ok := r.rights[name]; !ok {
			removed = append(removed, right)
		}
	}

	sort.Slice(added, func(i, j int) bool { return added[i].Name < added[j].Name })
	sort.Slice(removed, func(i, j int) bool { return removed[i].Name < removed[j].Name })

	return added, removed, nil
}

// Equal compares roles by name and rights set.
func (r *Role) Equal(other *Role) bool {
	if other == nil || r.Name != other.Name || len(r.rights) != len(other.rights) {
		return false
	}

	for name := range r.rights {
		if _, ok := other.rights[name]; !ok {
			return false
		}
	}

	return true
}
