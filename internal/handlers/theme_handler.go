package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/LilMortal/Feastly-App/internal/models"
	"github.com/LilMortal/Feastly-App/internal/stores"
)

// ThemeHandler exposes the theme preference.
type ThemeHandler struct {
	store *stores.ThemeStore
}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler(store *stores.ThemeStore) *ThemeHandler {
	return &ThemeHandler{
		store: store,
	}
}

// RegisterRoutes registers the theme routes with the Fiber app.
func (h *ThemeHandler) RegisterRoutes(router fiber.Router) {
	themeRoutes := router.Group("/theme")
	themeRoutes.Get("/", h.HandleGetTheme)
	themeRoutes.Put("/", h.HandleSetTheme)
	themeRoutes.Post("/toggle", h.HandleToggleTheme)
}

// HandleGetTheme returns the current theme.
func (h *ThemeHandler) HandleGetTheme(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"theme": h.store.Theme(),
	})
}

// HandleSetTheme persists and applies an explicit theme.
func (h *ThemeHandler) HandleSetTheme(c *fiber.Ctx) error {
	var req struct {
		Theme models.Theme `json:"theme"`
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing theme request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if !req.Theme.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Theme must be 'light' or 'dark'",
		})
	}

	h.store.SetTheme(req.Theme)
	return c.JSON(fiber.Map{
		"theme": h.store.Theme(),
	})
}

// HandleToggleTheme flips light and dark.
func (h *ThemeHandler) HandleToggleTheme(c *fiber.Ctx) error {
	h.store.ToggleTheme()
	return c.JSON(fiber.Map{
		"theme": h.store.Theme(),
	})
}
