package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LilMortal/Feastly-App/internal/stores"
)

// ToastHandler exposes the live toast queue so clients can poll feedback
// messages and dismiss them early.
type ToastHandler struct {
	store *stores.ToastStore
}

// NewToastHandler creates a new ToastHandler.
func NewToastHandler(store *stores.ToastStore) *ToastHandler {
	return &ToastHandler{
		store: store,
	}
}

// RegisterRoutes registers the toast routes with the Fiber app.
func (h *ToastHandler) RegisterRoutes(router fiber.Router) {
	toastRoutes := router.Group("/toasts")
	toastRoutes.Get("/", h.HandleGetToasts)
	toastRoutes.Delete("/:id", h.HandleDismissToast)
}

// HandleGetToasts returns the live toasts in insertion order.
func (h *ToastHandler) HandleGetToasts(c *fiber.Ctx) error {
	return c.JSON(h.store.Toasts())
}

// HandleDismissToast removes a toast immediately. Dismissing an unknown id
// is a no-op and still succeeds.
func (h *ToastHandler) HandleDismissToast(c *fiber.Ctx) error {
	h.store.RemoveToast(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
