package domain

import (
	"context"
	"fmt"

	"shopping-list-manager/internal/access"
	"shopping-list-manager/internal/entities"
)

// AddItem appends an item to the list. Owner or member.
func (u *Usecase) AddItem(ctx context.Context, callerID, listID string, item entities.Item) (*entities.Item, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if item.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if item.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", entities.ErrInvalidArgument)
	}
	if _, err := u.authorize(ctx, callerID, listID, access.RoleOwner, access.RoleMember); err != nil {
		return nil, err
	}
	return u.repo.AddItem(ctx, listID, item)
}

// RemoveItem deletes an item from the list. Owner or member.
func (u *Usecase) RemoveItem(ctx context.Context, callerID, listID, itemID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if itemID == "" {
		return fmt.Errorf("%w: itemId is required", entities.ErrInvalidArgument)
	}
	if _, err := u.authorize(ctx, callerID, listID, access.RoleOwner, access.RoleMember); err != nil {
		return err
	}
	return u.repo.RemoveItem(ctx, listID, itemID)
}

// ResolveItem sets the resolved flag on an item. Owner or member.
func (u *Usecase) ResolveItem(ctx context.Context, callerID, listID, itemID string, resolved bool) (*entities.Item, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if itemID == "" {
		return nil, fmt.Errorf("%w: itemId is required", entities.ErrInvalidArgument)
	}
	if _, err := u.authorize(ctx, callerID, listID, access.RoleOwner, access.RoleMember); err != nil {
		return nil, err
	}
	return u.repo.SetItemResolved(ctx, listID, itemID, resolved)
}
