package handlers_fiber

import (
	"shopping-list-manager/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts the shopping list API under /shoppingList. Every
// route requires a caller identity; per-operation role checks happen in the
// usecase layer against the target list.
func RegisterRoutes(app *fiber.App, h *Handler) {
	api := app.Group("/shoppingList", middleware.Identity())

	api.Post("/create", h.CreateShoppingList)
	api.Get("/get", h.GetShoppingList)
	api.Get("/list", h.ListShoppingLists)
	api.Put("/update", h.UpdateShoppingList)
	api.Delete("/delete", h.DeleteShoppingList)
	api.Patch("/archive", h.ArchiveShoppingList)

	api.Post("/addMember", h.AddMember)
	api.Delete("/removeMember", h.RemoveMember)
	api.Post("/leave", h.LeaveShoppingList)

	api.Post("/addItem", h.AddItem)
	api.Delete("/removeItem", h.RemoveItem)
	api.Patch("/resolveItem", h.ResolveItem)
}
