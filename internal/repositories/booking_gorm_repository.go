package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/LilMortal/Feastly-App/internal/models"
)

// GORMBookingRepository is a GORM implementation of BookingRepository.
type GORMBookingRepository struct {
	db *gorm.DB
}

// NewGORMBookingRepository creates a new instance of GORMBookingRepository.
func NewGORMBookingRepository(db *gorm.DB) *GORMBookingRepository {
	return &GORMBookingRepository{
		db: db,
	}
}

// GetAll retrieves all bookings from the database, ordered by id.
func (r *GORMBookingRepository) GetAll() ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.Order("id").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to get all bookings: %w", err)
	}
	return bookings, nil
}

// GetByID retrieves a single booking by its ID from the database.
func (r *GORMBookingRepository) GetByID(id int) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get booking by ID %d: %w", id, err)
	}
	return &booking, nil
}

// Create creates a new booking in the database.
func (r *GORMBookingRepository) Create(booking *models.Booking) error {
	if err := r.db.Create(booking).Error; err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// UpdateStatus updates the status of a booking.
func (r *GORMBookingRepository) UpdateStatus(id int, status models.BookingStatus) error {
	res := r.db.Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update booking status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("booking with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
