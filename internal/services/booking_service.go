package services

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/LilMortal/Feastly-App/internal/models"
	"github.com/LilMortal/Feastly-App/internal/repositories"
)

// EventPublisher is the slice of the message broker the booking service uses.
// The RabbitMQ client satisfies it; a nil publisher disables events.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// BookingService handles booking creation, retrieval, and cancellation over
// the (simulated) remote boundary.
type BookingService struct {
	repo    repositories.BookingRepository
	events  EventPublisher
	now     func() time.Time
	latency time.Duration
}

// NewBookingService creates a new BookingService. The events publisher may be
// nil. A nil now falls back to time.Now.
func NewBookingService(repo repositories.BookingRepository, events EventPublisher, now func() time.Time, latency time.Duration) *BookingService {
	if now == nil {
		now = time.Now
	}
	return &BookingService{
		repo:    repo,
		events:  events,
		now:     now,
		latency: latency,
	}
}

// Create turns a draft into a confirmed booking with a server-assigned id.
// The target slot's availability is neither checked nor updated, so two rapid
// calls can book the same slot.
func (s *BookingService) Create(draft models.BookingDraft) (*models.Booking, error) {
	s.simulateLatency()

	booking := &models.Booking{
		CafeID:    draft.CafeID,
		CafeName:  draft.CafeName,
		CafeImage: draft.CafeImage,
		Date:      draft.Date,
		Time:      draft.Time,
		PartySize: draft.PartySize,
		Status:    models.BookingConfirmed,
	}
	if err := s.repo.Create(booking); err != nil {
		return nil, err
	}

	s.publishEvent("booking.created", booking)
	return booking, nil
}

// ListForCurrentUser returns the booking history. As a side effect of
// retrieval, any non-cancelled booking whose date has passed is recomputed to
// completed. Completion never overrides cancellation.
func (s *BookingService) ListForCurrentUser() ([]models.Booking, error) {
	s.simulateLatency()

	bookings, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	today := s.now().Format("2006-01-02")
	for i, booking := range bookings {
		if booking.Status != models.BookingCancelled && booking.Status != models.BookingCompleted && booking.Date < today {
			if err := s.repo.UpdateStatus(booking.ID, models.BookingCompleted); err != nil {
				return nil, err
			}
			bookings[i].Status = models.BookingCompleted
		}
	}
	return bookings, nil
}

// Cancel transitions a booking to cancelled. The record is retained. An
// unknown id returns (false, nil) rather than an error.
func (s *BookingService) Cancel(id int) (bool, error) {
	s.simulateLatency()

	booking, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := s.repo.UpdateStatus(booking.ID, models.BookingCancelled); err != nil {
		return false, err
	}

	booking.Status = models.BookingCancelled
	s.publishEvent("booking.cancelled", booking)
	return true, nil
}

// publishEvent emits a booking lifecycle event when a broker is configured.
// Event failures are logged and never fail the booking operation.
func (s *BookingService) publishEvent(routingKey string, booking *models.Booking) {
	if s.events == nil {
		return
	}
	body, err := json.Marshal(booking)
	if err != nil {
		log.Printf("Failed to marshal booking %d for event %s: %v", booking.ID, routingKey, err)
		return
	}
	if err := s.events.Publish("booking", routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event for booking %d: %v", routingKey, booking.ID, err)
	}
}

func (s *BookingService) simulateLatency() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}
