// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"shopping-list-manager/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ShoppingListInterface exposes operations over the list aggregate. Every
// mutation reads and writes the aggregate as a whole; implementations must
// serialize mutations per list id so concurrent updates are not lost.
// AddItem ignores the incoming item id and resolved flag: the repository
// assigns the id and new items always start unresolved.
type ShoppingListInterface interface {
	Create(ctx context.Context, name, ownerID string) (*entities.ShoppingList, error)
	GetByID(ctx context.Context, id string) (*entities.ShoppingList, error)
	ListFor(ctx context.Context, callerID string, archived bool) ([]entities.ShoppingList, error)
	Rename(ctx context.Context, id, name string) (*entities.ShoppingList, error)
	Delete(ctx context.Context, id string) error
	SetArchived(ctx context.Context, id string, archived bool) (*entities.ShoppingList, error)
	AddMember(ctx context.Context, id, userID string) error
	RemoveMember(ctx context.Context, id, userID string) error
	AddItem(ctx context.Context, id string, item entities.Item) (*entities.Item, error)
	RemoveItem(ctx context.Context, id, itemID string) error
	SetItemResolved(ctx context.Context, id, itemID string, resolved bool) (*entities.Item, error)
}
