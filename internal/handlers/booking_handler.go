package handlers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/LilMortal/Feastly-App/internal/models"
	"github.com/LilMortal/Feastly-App/internal/stores"
)

// BookingHandler handles HTTP requests for bookings. All booking routes are
// registered behind the auth guard.
type BookingHandler struct {
	store    *stores.BookingStore
	validate *validator.Validate
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(store *stores.BookingStore) *BookingHandler {
	return &BookingHandler{
		store:    store,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the booking routes with the Fiber app.
func (h *BookingHandler) RegisterRoutes(router fiber.Router) {
	bookingRoutes := router.Group("/bookings")
	bookingRoutes.Get("/", h.HandleGetBookings)
	bookingRoutes.Post("/", h.HandleCreateBooking)
	bookingRoutes.Post("/:id/cancel", h.HandleCancelBooking)
}

// HandleGetBookings returns the booking history, refreshed from the booking
// service. The optional filter parameter narrows to upcoming or past.
func (h *BookingHandler) HandleGetBookings(c *fiber.Ctx) error {
	h.store.FetchUserBookings()

	switch c.Query("filter") {
	case "upcoming":
		return c.JSON(h.store.Upcoming())
	case "past":
		return c.JSON(h.store.Past())
	default:
		return c.JSON(h.store.Bookings())
	}
}

// HandleCreateBooking creates a booking from a draft.
func (h *BookingHandler) HandleCreateBooking(c *fiber.Ctx) error {
	var draft models.BookingDraft
	if err := c.BodyParser(&draft); err != nil {
		log.Printf("Error parsing booking request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(draft); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if !h.store.CreateBooking(draft) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create booking",
		})
	}

	// The created record is the newest entry in the held sequence.
	bookings := h.store.Bookings()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Booking created successfully",
		"booking": bookings[len(bookings)-1],
	})
}

// HandleCancelBooking transitions a booking to cancelled.
func (h *BookingHandler) HandleCancelBooking(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid booking id",
		})
	}

	if !h.store.CancelBooking(id) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Booking with ID %d not found", id),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Booking %d cancelled", id),
	})
}
