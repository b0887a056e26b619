package dto

import (
	"fmt"
	"strings"
)

// maxNameLength bounds list and item names at the API boundary.
const maxNameLength = 255

// CreateListIn is the body of POST /shoppingList/create.
type CreateListIn struct {
	Name string `json:"name"`
}

// Validate returns a field->message map; empty means valid.
func (in *CreateListIn) Validate() map[string]string {
	problems := map[string]string{}
	in.Name = strings.TrimSpace(in.Name)
	checkName(problems, "name", in.Name)
	return problems
}

// UpdateListIn is the body of PUT /shoppingList/update.
type UpdateListIn struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Validate returns a field->message map; empty means valid.
func (in *UpdateListIn) Validate() map[string]string {
	problems := map[string]string{}
	checkRequired(problems, "id", in.ID)
	in.Name = strings.TrimSpace(in.Name)
	checkName(problems, "name", in.Name)
	return problems
}

// ArchiveListIn is the body of PATCH /shoppingList/archive. Archived is a
// pointer so a missing flag is distinguishable from an explicit false.
type ArchiveListIn struct {
	ID       string `json:"id"`
	Archived *bool  `json:"archived"`
}

// Validate returns a field->message map; empty means valid.
func (in *ArchiveListIn) Validate() map[string]string {
	problems := map[string]string{}
	checkRequired(problems, "id", in.ID)
	if in.Archived == nil {
		problems["archived"] = "archived flag is required"
	}
	return problems
}

// AddMemberIn is the body of POST /shoppingList/addMember.
type AddMemberIn struct {
	ShoppingListID string `json:"shoppingListId"`
	UserID         string `json:"userId"`
}

// Validate returns a field->message map; empty means valid.
func (in *AddMemberIn) Validate() map[string]string {
	problems := map[string]string{}
	checkRequired(problems, "shoppingListId", in.ShoppingListID)
	checkRequired(problems, "userId", in.UserID)
	return problems
}

// LeaveListIn is the body of POST /shoppingList/leave.
type LeaveListIn struct {
	ShoppingListID string `json:"shoppingListId"`
}

// Validate returns a field->message map; empty means valid.
func (in *LeaveListIn) Validate() map[string]string {
	problems := map[string]string{}
	checkRequired(problems, "shoppingListId", in.ShoppingListID)
	return problems
}

// AddItemIn is the body of POST /shoppingList/addItem.
type AddItemIn struct {
	ShoppingListID string `json:"shoppingListId"`
	Name           string `json:"name"`
	Description    string `json:"description,omitempty"`
	Quantity       int    `json:"quantity,omitempty"`
}

// Validate returns a field->message map; empty means valid.
func (in *AddItemIn) Validate() map[string]string {
	problems := map[string]string{}
	checkRequired(problems, "shoppingListId", in.ShoppingListID)
	in.Name = strings.TrimSpace(in.Name)
	checkName(problems, "name", in.Name)
	if in.Quantity < 0 {
		problems["quantity"] = "quantity must be a positive integer"
	}
	return problems
}

// ResolveItemIn is the body of PATCH /shoppingList/resolveItem.
type ResolveItemIn struct {
	ShoppingListID string `json:"shoppingListId"`
	ItemID         string `json:"itemId"`
	Resolved       *bool  `json:"resolved"`
}

// Validate returns a field->message map; empty means valid.
func (in *ResolveItemIn) Validate() map[string]string {
	problems := map[string]string{}
	checkRequired(problems, "shoppingListId", in.ShoppingListID)
	checkRequired(problems, "itemId", in.ItemID)
	if in.Resolved == nil {
		problems["resolved"] = "resolved flag is required"
	}
	return problems
}

func checkRequired(problems map[string]string, field, value string) {
	if strings.TrimSpace(value) == "" {
		problems[field] = field + " is required"
	}
}

func checkName(problems map[string]string, field, value string) {
	switch {
	case value == "":
		problems[field] = field + " is required"
	case len(value) > maxNameLength:
		problems[field] = fmt.Sprintf("%s must be between 1 and %d characters", field, maxNameLength)
	}
}
