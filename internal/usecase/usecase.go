package usecase

import (
	"context"
	"time"

	"shopping-list-manager/internal/repository"
	"shopping-list-manager/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ShoppingListUsecaseInterface
	MembershipUsecaseInterface
	ItemUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout)
}
