package handlers_fiber

import (
	"time"

	"shopping-list-manager/internal/dto"
	"shopping-list-manager/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// AddMember handles POST /shoppingList/addMember. Owner only.
func (h *Handler) AddMember(c *fiber.Ctx) error {
	var body dto.AddMemberIn
	if err := c.BodyParser(&body); err != nil {
		return writeBadBody(c)
	}
	if problems := body.Validate(); len(problems) > 0 {
		return writeValidation(c, problems)
	}

	if err := h.uc.AddMember(c.Context(), middleware.UserID(c), body.ShoppingListID, body.UserID); err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, dto.MemberAddedOut{
		ShoppingListID: body.ShoppingListID,
		UserID:         body.UserID,
		AddedAt:        time.Now().UTC(),
	})
}

// RemoveMember handles DELETE /shoppingList/removeMember?shoppingListId=...&userId=...
func (h *Handler) RemoveMember(c *fiber.Ctx) error {
	listID := c.Query("shoppingListId")
	userID := c.Query("userId")
	problems := map[string]string{}
	if listID == "" {
		problems["shoppingListId"] = "shoppingListId is required"
	}
	if userID == "" {
		problems["userId"] = "userId is required"
	}
	if len(problems) > 0 {
		return writeValidation(c, problems)
	}

	if err := h.uc.RemoveMember(c.Context(), middleware.UserID(c), listID, userID); err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, dto.MemberRemovedOut{
		ShoppingListID: listID,
		UserID:         userID,
		RemovedAt:      time.Now().UTC(),
	})
}

// LeaveShoppingList handles POST /shoppingList/leave. The caller removes
// themselves from the member set.
func (h *Handler) LeaveShoppingList(c *fiber.Ctx) error {
	var body dto.LeaveListIn
	if err := c.BodyParser(&body); err != nil {
		return writeBadBody(c)
	}
	if problems := body.Validate(); len(problems) > 0 {
		return writeValidation(c, problems)
	}

	callerID := middleware.UserID(c)
	if err := h.uc.LeaveList(c.Context(), callerID, body.ShoppingListID); err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, dto.MemberLeftOut{
		ShoppingListID: body.ShoppingListID,
		UserID:         callerID,
		LeftAt:         time.Now().UTC(),
	})
}
