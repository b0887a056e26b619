package domain

import (
	"context"
	"fmt"

	"shopping-list-manager/internal/access"
	"shopping-list-manager/internal/entities"
)

// CreateList creates a list owned by the caller. Any authenticated identity
// may create; the creator becomes the sole owner.
func (u *Usecase) CreateList(ctx context.Context, callerID, name string) (*entities.ShoppingList, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if callerID == "" {
		return nil, entities.ErrUnauthenticated
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	return u.repo.Create(ctx, name, callerID)
}

// GetList returns a list the caller owns or is a member of.
func (u *Usecase) GetList(ctx context.Context, callerID, listID string) (*entities.ShoppingList, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.authorize(ctx, callerID, listID, access.RoleOwner, access.RoleMember); err != nil {
		return nil, err
	}
	return u.repo.GetByID(ctx, listID)
}

// ListLists returns the caller's lists filtered by the archived flag. There
// is no single target list, so identity alone grants access and the query
// scopes results to the caller.
func (u *Usecase) ListLists(ctx context.Context, callerID string, archived bool) ([]entities.ShoppingList, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if callerID == "" {
		return nil, entities.ErrUnauthenticated
	}
	return u.repo.ListFor(ctx, callerID, archived)
}

// RenameList updates the list name. Owner only.
func (u *Usecase) RenameList(ctx context.Context, callerID, listID, name string) (*entities.ShoppingList, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if _, err := u.authorize(ctx, callerID, listID, access.RoleOwner); err != nil {
		return nil, err
	}
	return u.repo.Rename(ctx, listID, name)
}

// DeleteList deletes the list and all its items. Owner only.
func (u *Usecase) DeleteList(ctx context.Context, callerID, listID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.authorize(ctx, callerID, listID, access.RoleOwner); err != nil {
		return err
	}
	return u.repo.Delete(ctx, listID)
}

// ArchiveList sets the archived flag. Owner only.
func (u *Usecase) ArchiveList(ctx context.Context, callerID, listID string, archived bool) (*entities.ShoppingList, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.authorize(ctx, callerID, listID, access.RoleOwner); err != nil {
		return nil, err
	}
	return u.repo.SetArchived(ctx, listID, archived)
}
