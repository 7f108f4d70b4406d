package stores

import (
	"sync"

	"github.com/LilMortal/Feastly-App/internal/models"
)

// BookingService is the slice of the booking backend the booking store uses.
type BookingService interface {
	Create(draft models.BookingDraft) (*models.Booking, error)
	ListForCurrentUser() ([]models.Booking, error)
	Cancel(id int) (bool, error)
}

// BookingStore holds the current user's bookings. Two actions in flight at
// once are not mutually excluded: whichever finishes last wins the loading
// flag, and appends are independent.
type BookingStore struct {
	mu       sync.Mutex
	bookings []models.Booking
	loading  bool

	service  BookingService
	notifier Notifier
}

// NewBookingStore creates a new BookingStore.
func NewBookingStore(service BookingService, notifier Notifier) *BookingStore {
	return &BookingStore{
		service:  service,
		notifier: notifier,
	}
}

// CreateBooking sends a draft to the booking service and appends the
// confirmed result. It reports whether the booking was created.
func (s *BookingStore) CreateBooking(draft models.BookingDraft) bool {
	s.setLoading(true)

	booking, err := s.service.Create(draft)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.notifier.Notify(models.ToastError, "Failed to create booking")
		return false
	}

	s.bookings = append(s.bookings, *booking)
	s.notifier.Notify(models.ToastSuccess, "Booking created successfully")
	return true
}

// FetchUserBookings replaces the held sequence from the booking service,
// which recomputes past non-cancelled bookings to completed along the way.
// On failure the held sequence is unchanged.
func (s *BookingStore) FetchUserBookings() {
	s.setLoading(true)

	bookings, err := s.service.ListForCurrentUser()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.notifier.Notify(models.ToastError, "Failed to fetch bookings")
		return
	}
	s.bookings = bookings
}

// CancelBooking transitions a booking to cancelled, keeping the record. An
// unknown id is a silent no-op returning false; a service failure emits an
// error toast.
func (s *BookingStore) CancelBooking(id int) bool {
	s.setLoading(true)

	ok, err := s.service.Cancel(id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.notifier.Notify(models.ToastError, "Failed to cancel booking")
		return false
	}
	if !ok {
		return false
	}

	for i := range s.bookings {
		if s.bookings[i].ID == id {
			s.bookings[i].Status = models.BookingCancelled
			break
		}
	}
	s.notifier.Notify(models.ToastSuccess, "Booking cancelled successfully")
	return true
}

// Bookings returns the held sequence.
func (s *BookingStore) Bookings() []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.Booking(nil), s.bookings...)
}

// Upcoming returns the bookings still counted as upcoming (confirmed or
// pending). The partition is derived on each call, never stored.
func (s *BookingStore) Upcoming() []models.Booking {
	return s.partition(true)
}

// Past returns the completed and cancelled bookings.
func (s *BookingStore) Past() []models.Booking {
	return s.partition(false)
}

// IsLoading reports whether an action is in flight.
func (s *BookingStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

func (s *BookingStore) partition(upcoming bool) []models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	part := make([]models.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		if booking.IsUpcoming() == upcoming {
			part = append(part, booking)
		}
	}
	return part
}

func (s *BookingStore) setLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = loading
}
