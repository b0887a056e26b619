package usecase

import (
	"context"

	"shopping-list-manager/internal/entities"
)

// ShoppingListUsecaseInterface abstracts list-level operations for the
// delivery layer. Every call authenticates the caller id and authorizes it
// against the target list before touching the repository.
type ShoppingListUsecaseInterface interface {
	CreateList(ctx context.Context, callerID, name string) (*entities.ShoppingList, error)
	GetList(ctx context.Context, callerID, listID string) (*entities.ShoppingList, error)
	ListLists(ctx context.Context, callerID string, archived bool) ([]entities.ShoppingList, error)
	RenameList(ctx context.Context, callerID, listID, name string) (*entities.ShoppingList, error)
	DeleteList(ctx context.Context, callerID, listID string) error
	ArchiveList(ctx context.Context, callerID, listID string, archived bool) (*entities.ShoppingList, error)
}

// MembershipUsecaseInterface abstracts membership mutations.
type MembershipUsecaseInterface interface {
	AddMember(ctx context.Context, callerID, listID, userID string) error
	RemoveMember(ctx context.Context, callerID, listID, userID string) error
	LeaveList(ctx context.Context, callerID, listID string) error
}

// ItemUsecaseInterface abstracts item mutations inside a list.
type ItemUsecaseInterface interface {
	AddItem(ctx context.Context, callerID, listID string, item entities.Item) (*entities.Item, error)
	RemoveItem(ctx context.Context, callerID, listID, itemID string) error
	ResolveItem(ctx context.Context, callerID, listID, itemID string, resolved bool) (*entities.Item, error)
}
