package handlers

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/LilMortal/Feastly-App/internal/stores"
)

// CafeHandler handles HTTP requests for the café catalog.
type CafeHandler struct {
	store *stores.CafeStore
}

// NewCafeHandler creates a new CafeHandler.
func NewCafeHandler(store *stores.CafeStore) *CafeHandler {
	return &CafeHandler{
		store: store,
	}
}

// RegisterRoutes registers the café routes with the Fiber app.
func (h *CafeHandler) RegisterRoutes(router fiber.Router) {
	cafeRoutes := router.Group("/cafes")
	cafeRoutes.Get("/", h.HandleGetCafes)
	cafeRoutes.Get("/:id", h.HandleGetCafeByID)
}

// HandleGetCafes returns the café collection, filtered by the optional
// rating and search query parameters. Absent parameters reset the matching
// filter, so each request describes its full filter state.
func (h *CafeHandler) HandleGetCafes(c *fiber.Ctx) error {
	if raw := c.Query("rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "rating must be a number",
			})
		}
		h.store.SetRatingFilter(&rating)
	} else {
		h.store.SetRatingFilter(nil)
	}
	h.store.SetSearchFilter(c.Query("search"))

	h.store.FetchCafes()

	return c.JSON(fiber.Map{
		"cafes":   h.store.FilteredCafes(),
		"filters": h.store.Filters(),
	})
}

// HandleGetCafeByID returns one café's detail record.
func (h *CafeHandler) HandleGetCafeByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid cafe id",
		})
	}

	h.store.FetchCafeByID(id)

	cafe := h.store.SelectedCafe()
	if cafe == nil {
		log.Printf("Cafe %d not found", id)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Cafe not found",
		})
	}
	return c.JSON(cafe)
}
