package access

import (
	"testing"

	"shopping-list-manager/internal/entities"

	"github.com/stretchr/testify/require"
)

func testList() *entities.ShoppingList {
	return &entities.ShoppingList{
		ID:      "list-1",
		Name:    "Weekly",
		OwnerID: "user-1",
		Members: []string{"user-1", "user-2"},
	}
}

func TestResolveOwner(t *testing.T) {
	list := testList()
	require.Equal(t, RoleOwner, Resolve(list, "user-1"))
	require.True(t, HasAccess(list, "user-1"))
}

func TestResolveOwnerNotListedAsMember(t *testing.T) {
	list := testList()
	list.Members = []string{"user-2"}

	require.Equal(t, RoleOwner, Resolve(list, "user-1"))
	require.True(t, HasAccess(list, "user-1"))
}

func TestResolveMember(t *testing.T) {
	list := testList()
	require.Equal(t, RoleMember, Resolve(list, "user-2"))
	require.True(t, HasAccess(list, "user-2"))
}

func TestResolveStranger(t *testing.T) {
	list := testList()
	require.Equal(t, RoleNone, Resolve(list, "user-3"))
	require.False(t, HasAccess(list, "user-3"))
}

func TestResolveNilAndEmpty(t *testing.T) {
	require.Equal(t, RoleNone, Resolve(nil, "user-1"))
	require.Equal(t, RoleNone, Resolve(testList(), ""))
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check(RoleOwner, RoleOwner))
	require.NoError(t, Check(RoleMember, RoleOwner, RoleMember))
	require.ErrorIs(t, Check(RoleMember, RoleOwner), entities.ErrForbidden)
	require.ErrorIs(t, Check(RoleNone, RoleOwner, RoleMember), entities.ErrForbidden)
}

func TestRoleString(t *testing.T) {
	require.Equal(t, "Owner", RoleOwner.String())
	require.Equal(t, "Member", RoleMember.String())
	require.Equal(t, "None", RoleNone.String())
}
