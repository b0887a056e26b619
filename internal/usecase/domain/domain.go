// Package domain contains application usecases orchestrating the shopping
// list logic: input checks, the authorization gate and repository calls.
package domain

import (
	"context"
	"fmt"
	"time"

	"shopping-list-manager/internal/access"
	"shopping-list-manager/internal/entities"
	"shopping-list-manager/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	timeout time.Duration
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// authorize resolves the caller's role on the target list and checks it
// against the required set. A missing list surfaces as ErrListNotFound before
// any role is resolved; an insufficient role surfaces as ErrForbidden. The
// resolved role is returned for handlers that branch on owner-only sub-actions.
func (u *Usecase) authorize(ctx context.Context, callerID, listID string, required ...access.Role) (access.Role, error) {
	if callerID == "" {
		return access.RoleNone, entities.ErrUnauthenticated
	}
	if listID == "" {
		return access.RoleNone, fmt.Errorf("%w: shoppingListId is required", entities.ErrInvalidArgument)
	}

	list, err := u.repo.GetByID(ctx, listID)
	if err != nil {
		return access.RoleNone, err
	}

	role := access.Resolve(list, callerID)
	if err := access.Check(role, required...); err != nil {
		u.log.Infow("access denied",
			"list_id", listID,
			"caller_id", callerID,
			"role", role.String(),
		)
		return role, err
	}
	return role, nil
}
