package handlers_fiber

import (
	"strconv"

	"shopping-list-manager/internal/dto"
	"shopping-list-manager/internal/mapper"
	"shopping-list-manager/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateShoppingList handles POST /shoppingList/create. The caller becomes
// the owner of the new list.
func (h *Handler) CreateShoppingList(c *fiber.Ctx) error {
	var body dto.CreateListIn
	if err := c.BodyParser(&body); err != nil {
		return writeBadBody(c)
	}
	if problems := body.Validate(); len(problems) > 0 {
		return writeValidation(c, problems)
	}

	list, err := h.uc.CreateList(c.Context(), middleware.UserID(c), body.Name)
	if err != nil {
		h.log.Errorw("failed to create shopping list", "error", err.Error())
		return writeError(c, err)
	}

	return writeSuccess(c, mapper.ToDTOList(*list))
}

// GetShoppingList handles GET /shoppingList/get?id=...
func (h *Handler) GetShoppingList(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return writeValidation(c, map[string]string{"id": "id is required"})
	}

	list, err := h.uc.GetList(c.Context(), middleware.UserID(c), id)
	if err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, mapper.ToDTOList(*list))
}

// ListShoppingLists handles GET /shoppingList/list?archived=...
func (h *Handler) ListShoppingLists(c *fiber.Ctx) error {
	archived := false
	if raw := c.Query("archived"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return writeValidation(c, map[string]string{"archived": "archived must be a boolean"})
		}
		archived = parsed
	}

	lists, err := h.uc.ListLists(c.Context(), middleware.UserID(c), archived)
	if err != nil {
		h.log.Errorw("failed to list shopping lists", "error", err.Error())
		return writeError(c, err)
	}

	return writeSuccess(c, mapper.ToDTOListPage(lists))
}

// UpdateShoppingList handles PUT /shoppingList/update.
func (h *Handler) UpdateShoppingList(c *fiber.Ctx) error {
	var body dto.UpdateListIn
	if err := c.BodyParser(&body); err != nil {
		return writeBadBody(c)
	}
	if problems := body.Validate(); len(problems) > 0 {
		return writeValidation(c, problems)
	}

	list, err := h.uc.RenameList(c.Context(), middleware.UserID(c), body.ID, body.Name)
	if err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, mapper.ToDTOList(*list))
}

// DeleteShoppingList handles DELETE /shoppingList/delete?id=...
func (h *Handler) DeleteShoppingList(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return writeValidation(c, map[string]string{"id": "id is required"})
	}

	if err := h.uc.DeleteList(c.Context(), middleware.UserID(c), id); err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, dto.DeleteOut{ID: id, Deleted: true})
}

// ArchiveShoppingList handles PATCH /shoppingList/archive.
func (h *Handler) ArchiveShoppingList(c *fiber.Ctx) error {
	var body dto.ArchiveListIn
	if err := c.BodyParser(&body); err != nil {
		return writeBadBody(c)
	}
	if problems := body.Validate(); len(problems) > 0 {
		return writeValidation(c, problems)
	}

	list, err := h.uc.ArchiveList(c.Context(), middleware.UserID(c), body.ID, *body.Archived)
	if err != nil {
		return writeError(c, err)
	}

	return writeSuccess(c, mapper.ToDTOList(*list))
}
