// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"shopping-list-manager/internal/usecase"

	"go.uber.org/zap"
)

// Handler translates shopping list HTTP requests into usecase calls.
type Handler struct {
	log *zap.SugaredLogger
	uc  usecase.InterfaceUsecase
}

// NewHandler constructs an HTTP handler with service dependencies.
func NewHandler(log *zap.SugaredLogger, usecase usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log: log,
		uc:  usecase,
	}
}
