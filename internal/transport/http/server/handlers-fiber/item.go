package handlers_fiber

import (
	"time"

	"shopping-list-manager/internal/dto"
	"shopping-list-manager/internal/entities"
	"shopping-list-manager/internal/mapper"
	"shopping-list-manager/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// AddItem handles POST /shoppingList/addItem. Owner or member.
func (h *Handler) AddItem(c *fiber.Ctx) error {
	var body dto.AddItemIn
	if err := c.BodyParser(&body); err != nil {
		return writeBadBody(c)
	}
	if problems := body.Validate(); len(problems) > 0 {
		return writeValidation(c, problems)
	}

	item, err := h.uc.AddItem(c.Context(), middleware.UserID(c), body.ShoppingListID, entities.Item{
		Name:        body.Name,
		Description: body.Description,
		Quantity:    body.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, mapper.ToDTOItem(*item))
}

// RemoveItem handles DELETE /shoppingList/removeItem?shoppingListId=...&itemId=...
func (h *Handler) RemoveItem(c *fiber.Ctx) error {
	listID := c.Query("shoppingListId")
	itemID := c.Query("itemId")
	problems := map[string]string{}
	if listID == "" {
		problems["shoppingListId"] = "shoppingListId is required"
	}
	if itemID == "" {
		problems["itemId"] = "itemId is required"
	}
	if len(problems) > 0 {
		return writeValidation(c, problems)
	}

	if err := h.uc.RemoveItem(c.Context(), middleware.UserID(c), listID, itemID); err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, dto.ItemRemovedOut{
		ShoppingListID: listID,
		ItemID:         itemID,
		RemovedAt:      time.Now().UTC(),
	})
}

// ResolveItem handles PATCH /shoppingList/resolveItem. Owner or member.
func (h *Handler) ResolveItem(c *fiber.Ctx) error {
	var body dto.ResolveItemIn
	if err := c.BodyParser(&body); err != nil {
		return writeBadBody(c)
	}
	if problems := body.Validate(); len(problems) > 0 {
		return writeValidation(c, problems)
	}

	item, err := h.uc.ResolveItem(c.Context(), middleware.UserID(c), body.ShoppingListID, body.ItemID, *body.Resolved)
	if err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, mapper.ToDTOItem(*item))
}
