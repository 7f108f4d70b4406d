package repositories

import (
	"fmt"
	"sort"
	"sync"

	"github.com/LilMortal/Feastly-App/internal/models"
)

// MockBookingRepository is an in-memory implementation of BookingRepository.
type MockBookingRepository struct {
	bookings map[int]models.Booking
	nextID   int
	mu       sync.RWMutex
}

// NewMockBookingRepository creates a new instance of MockBookingRepository.
func NewMockBookingRepository() *MockBookingRepository {
	return &MockBookingRepository{
		bookings: make(map[int]models.Booking),
		nextID:   1,
	}
}

// GetAll returns all bookings ordered by id, which preserves creation order.
func (r *MockBookingRepository) GetAll() ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.bookings))
	for id := range r.bookings {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	bookingList := make([]models.Booking, 0, len(ids))
	for _, id := range ids {
		bookingList = append(bookingList, r.bookings[id])
	}
	return bookingList, nil
}

// GetByID returns a booking by its ID.
func (r *MockBookingRepository) GetByID(id int) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking with ID %d: %w", id, ErrNotFound)
	}
	return &booking, nil
}

// Create adds a new booking, assigning the next numeric id when none is set.
func (r *MockBookingRepository) Create(booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if booking.ID == 0 {
		booking.ID = r.nextID
	}
	if booking.ID >= r.nextID {
		r.nextID = booking.ID + 1
	}
	r.bookings[booking.ID] = *booking
	return nil
}

// UpdateStatus updates the status of a booking.
func (r *MockBookingRepository) UpdateStatus(id int, status models.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return fmt.Errorf("booking with ID %d: %w", id, ErrNotFound)
	}
	booking.Status = status
	r.bookings[id] = booking
	return nil
}
