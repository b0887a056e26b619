package handlers_fiber

import (
	"errors"
	"net/http"

	"shopping-list-manager/internal/dto"
	"shopping-list-manager/internal/entities"

	"github.com/gofiber/fiber/v2"
)

func writeSuccess(c *fiber.Ctx, dtoOut any) error {
	return c.Status(http.StatusOK).JSON(dto.SuccessEnvelope{
		Status: http.StatusOK,
		DtoOut: dtoOut,
	})
}

// writeError maps sentinel errors to HTTP envelopes. Anything unclassified is
// reported as an internal error without leaking details to the caller.
func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := dto.CodeInternal
	msg := "an unexpected error occurred"

	switch {
	case errors.Is(err, entities.ErrUnauthenticated):
		status = http.StatusUnauthorized
		code = dto.CodeUnauthorized
		msg = "authentication required"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = dto.CodeForbidden
		msg = "access denied"
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = dto.CodeInvalidInput
		msg = err.Error()
	case errors.Is(err, entities.ErrListNotFound):
		status = http.StatusNotFound
		code = dto.CodeNotFound
		msg = "shopping list not found"
	case errors.Is(err, entities.ErrItemNotFound):
		status = http.StatusNotFound
		code = dto.CodeNotFound
		msg = "item not found"
	case errors.Is(err, entities.ErrAlreadyMember):
		status = http.StatusBadRequest
		code = dto.CodeAlreadyMember
		msg = "user is already a member"
	case errors.Is(err, entities.ErrNotAMember):
		status = http.StatusNotFound
		code = dto.CodeNotAMember
		msg = "user is not a member"
	}

	return c.Status(status).JSON(errorEnvelope(status, code, msg, nil))
}

func writeValidation(c *fiber.Ctx, paramMap map[string]string) error {
	return c.Status(http.StatusBadRequest).
		JSON(errorEnvelope(http.StatusBadRequest, dto.CodeInvalidInput, "invalid input data", paramMap))
}

func writeBadBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).
		JSON(errorEnvelope(http.StatusBadRequest, dto.CodeInvalidInput, "invalid body", nil))
}

func errorEnvelope(status int, code, msg string, paramMap map[string]string) dto.ErrorEnvelope {
	if paramMap == nil {
		paramMap = map[string]string{}
	}
	return dto.ErrorEnvelope{
		Status: status,
		Error: dto.ErrorBody{
			Code:     code,
			Message:  msg,
			ParamMap: paramMap,
		},
	}
}
