package repositories

import (
	"github.com/LilMortal/Feastly-App/internal/models"
)

// BookingRepository defines the interface for booking data access.
// Bookings are never deleted; cancellation goes through UpdateStatus.
type BookingRepository interface {
	GetAll() ([]models.Booking, error)
	GetByID(id int) (*models.Booking, error)
	Create(booking *models.Booking) error
	UpdateStatus(id int, status models.BookingStatus) error
}
