package domain

import (
	"context"
	"fmt"

	"shopping-list-manager/internal/access"
	"shopping-list-manager/internal/entities"
)

// AddMember grants a user access to the list. Owner only.
func (u *Usecase) AddMember(ctx context.Context, callerID, listID, userID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return fmt.Errorf("%w: userId is required", entities.ErrInvalidArgument)
	}
	if _, err := u.authorize(ctx, callerID, listID, access.RoleOwner); err != nil {
		return err
	}
	return u.repo.AddMember(ctx, listID, userID)
}

// RemoveMember revokes a user's membership. Owner only.
func (u *Usecase) RemoveMember(ctx context.Context, callerID, listID, userID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if userID == "" {
		return fmt.Errorf("%w: userId is required", entities.ErrInvalidArgument)
	}
	if _, err := u.authorize(ctx, callerID, listID, access.RoleOwner); err != nil {
		return err
	}
	return u.repo.RemoveMember(ctx, listID, userID)
}

// LeaveList removes the caller from the member set. Ownership never
// transfers: an owner leaving only drops the redundant members entry and
// keeps full access through ownership.
func (u *Usecase) LeaveList(ctx context.Context, callerID, listID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if _, err := u.authorize(ctx, callerID, listID, access.RoleOwner, access.RoleMember); err != nil {
		return err
	}
	return u.repo.RemoveMember(ctx, listID, callerID)
}
