// Package entities contains core business entities.
package entities

import "time"

// Item is a single entry inside a shopping list. It has no lifecycle of its
// own: it is created, mutated and deleted only through its owning list.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity,omitempty"`
	Resolved    bool   `json:"resolved"`
}

// ShoppingList is the aggregate root. Items are embedded and persisted
// together with the list as one atomic unit.
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
