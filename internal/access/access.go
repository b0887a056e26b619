// Package access resolves caller roles on a shopping list. Role logic lives
// here rather than on the entity so the data model stays a plain value.
package access

import "shopping-list-manager/internal/entities"

// Role is the caller's relationship to a shopping list.
type Role int

const (
	// RoleNone means the caller has no access to the list.
	RoleNone Role = iota
	// RoleMember means the caller appears in the list members.
	RoleMember
	// RoleOwner means the caller created the list.
	RoleOwner
)

// String returns a human-readable role name.
func (r Role) String() string {
	switch r {
	case RoleOwner:
		return "Owner"
	case RoleMember:
		return "Member"
	default:
		return "None"
	}
}

// Resolve returns the caller's role on the list. Ownership wins over
// membership: the owner is reported as Owner even when also listed as member.
func Resolve(list *entities.ShoppingList, callerID string) Role {
	if list == nil || callerID == "" {
		return RoleNone
	}
	if list.OwnerID == callerID {
		return RoleOwner
	}
	for _, m := range list.Members {
		if m == callerID {
			return RoleMember
		}
	}
	return RoleNone
}

// HasAccess reports whether the caller is owner or member of the list.
func HasAccess(list *entities.ShoppingList, callerID string) bool {
	return Resolve(list, callerID) != RoleNone
}

// Check verifies the resolved role against the required set.
// It returns entities.ErrForbidden when the role is not sufficient.
func Check(role Role, required ...Role) error {
	for _, r := range required {
		if role == r {
			return nil
		}
	}
	return entities.ErrForbidden
}
