// Package dto defines the transport envelopes and request/response shapes of
// the shopping list API.
package dto

import "time"

// Error codes carried in failure envelopes.
const (
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeForbidden     = "FORBIDDEN"
	CodeNotFound      = "NOT_FOUND"
	CodeInvalidInput  = "INVALID_DTO_IN"
	CodeAlreadyMember = "ALREADY_MEMBER"
	CodeNotAMember    = "NOT_A_MEMBER"
	CodeInternal      = "INTERNAL_SERVER_ERROR"
)

// SuccessEnvelope wraps every successful response.
type SuccessEnvelope struct {
	Status int `json:"status"`
	DtoOut any `json:"dtoOut"`
}

// ErrorBody describes a failure with a stable machine-readable code.
type ErrorBody struct {
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	ParamMap map[string]string `json:"paramMap"`
}

// ErrorEnvelope wraps every failed response.
type ErrorEnvelope struct {
	Status int       `json:"status"`
	Error  ErrorBody `json:"error"`
}

// Item is the transport shape of a list item.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
	Resolved    bool   `json:"resolved"`
}

// ShoppingList is the transport shape of a list aggregate.
type ShoppingList struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	OwnerID   string     `json:"ownerId"`
	Members   []string   `json:"members"`
	Items     []Item     `json:"items"`
	Archived  bool       `json:"archived"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// PageInfo describes the single result page of a list query.
type PageInfo struct {
	PageIndex int `json:"pageIndex"`
	PageSize  int `json:"pageSize"`
	Total     int `json:"total"`
}

// ListPage is the dtoOut of GET /shoppingList/list.
type ListPage struct {
	ItemList []ShoppingList `json:"itemList"`
	PageInfo PageInfo       `json:"pageInfo"`
}

// DeleteOut is the dtoOut of DELETE /shoppingList/delete.
type DeleteOut struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// MemberAddedOut is the dtoOut of POST /shoppingList/addMember.
type MemberAddedOut struct {
	ShoppingListID string    `json:"shoppingListId"`
	UserID         string    `json:"userId"`
	AddedAt        time.Time `json:"addedAt"`
}

// MemberRemovedOut is the dtoOut of DELETE /shoppingList/removeMember.
type MemberRemovedOut struct {
	ShoppingListID string    `json:"shoppingListId"`
	UserID         string    `json:"userId"`
	RemovedAt      time.Time `json:"removedAt"`
}

// MemberLeftOut is the dtoOut of POST /shoppingList/leave.
type MemberLeftOut struct {
	ShoppingListID string    `json:"shoppingListId"`
	UserID         string    `json:"userId"`
	LeftAt         time.Time `json:"leftAt"`
}

// ItemRemovedOut is the dtoOut of DELETE /shoppingList/removeItem.
type ItemRemovedOut struct {
	ShoppingListID string    `json:"shoppingListId"`
	ItemID         string    `json:"itemId"`
	RemovedAt      time.Time `json:"removedAt"`
}
