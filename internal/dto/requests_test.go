package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateListInValidate(t *testing.T) {
	in := CreateListIn{Name: "  Weekly  "}
	require.Empty(t, in.Validate())
	require.Equal(t, "Weekly", in.Name)

	in = CreateListIn{Name: "   "}
	problems := in.Validate()
	require.Contains(t, problems, "name")

	in = CreateListIn{Name: strings.Repeat("x", 256)}
	problems = in.Validate()
	require.Contains(t, problems, "name")
}

func TestUpdateListInValidate(t *testing.T) {
	in := UpdateListIn{ID: "list-1", Name: "Groceries"}
	require.Empty(t, in.Validate())

	in = UpdateListIn{Name: "Groceries"}
	require.Contains(t, in.Validate(), "id")

	in = UpdateListIn{ID: "list-1"}
	require.Contains(t, in.Validate(), "name")
}

func TestArchiveListInValidate(t *testing.T) {
	flag := false
	in := ArchiveListIn{ID: "list-1", Archived: &flag}
	require.Empty(t, in.Validate())

	in = ArchiveListIn{ID: "list-1"}
	require.Contains(t, in.Validate(), "archived")
}

func TestAddMemberInValidate(t *testing.T) {
	in := AddMemberIn{ShoppingListID: "list-1", UserID: "user-2"}
	require.Empty(t, in.Validate())

	in = AddMemberIn{}
	problems := in.Validate()
	require.Contains(t, problems, "shoppingListId")
	require.Contains(t, problems, "userId")
}

func TestAddItemInValidate(t *testing.T) {
	in := AddItemIn{ShoppingListID: "list-1", Name: "Milk", Quantity: 2}
	require.Empty(t, in.Validate())

	in = AddItemIn{ShoppingListID: "list-1", Name: "Milk", Quantity: -1}
	require.Contains(t, in.Validate(), "quantity")

	in = AddItemIn{ShoppingListID: "list-1", Name: strings.Repeat("x", 300)}
	require.Contains(t, in.Validate(), "name")
}

func TestResolveItemInValidate(t *testing.T) {
	resolved := true
	in := ResolveItemIn{ShoppingListID: "list-1", ItemID: "item-1", Resolved: &resolved}
	require.Empty(t, in.Validate())

	in = ResolveItemIn{ShoppingListID: "list-1", ItemID: "item-1"}
	require.Contains(t, in.Validate(), "resolved")
}
