package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/LilMortal/Feastly-App/internal/models"
	"github.com/LilMortal/Feastly-App/internal/repositories"
	"github.com/LilMortal/Feastly-App/internal/services"
)

// MockEventPublisher is a mock implementation of services.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

// fixedClock pins "today" so the completion rule is deterministic.
func fixedClock(date string) func() time.Time {
	return func() time.Time {
		t, _ := time.Parse("2006-01-02", date)
		return t
	}
}

func seededBookingRepo(t *testing.T) repositories.BookingRepository {
	t.Helper()
	repo := repositories.NewMockBookingRepository()
	bookings := []models.Booking{
		{ID: 1, CafeID: 1, CafeName: "The Crumby Café", Date: "2025-05-20", Time: "10:30", PartySize: 2, Status: models.BookingConfirmed},
		{ID: 2, CafeID: 3, CafeName: "Rustic Bean", Date: "2025-05-25", Time: "12:00", PartySize: 4, Status: models.BookingPending},
		{ID: 3, CafeID: 2, CafeName: "Brew & Bloom", Date: "2025-04-15", Time: "09:30", PartySize: 1, Status: models.BookingCancelled},
	}
	for i := range bookings {
		assert.NoError(t, repo.Create(&bookings[i]))
	}
	return repo
}

func TestBookingService_Create(t *testing.T) {
	repo := repositories.NewMockBookingRepository()
	service := services.NewBookingService(repo, nil, nil, 0)

	draft := models.BookingDraft{
		CafeID:    1,
		CafeName:  "The Crumby Café",
		CafeImage: "https://example.com/cafe.jpg",
		Date:      "2027-06-01",
		Time:      "10:30",
		PartySize: 2,
	}

	booking, err := service.Create(draft)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
	assert.NotZero(t, booking.ID)
	assert.Equal(t, 2, booking.PartySize)

	// A second booking gets its own id
	second, err := service.Create(draft)
	assert.NoError(t, err)
	assert.NotEqual(t, booking.ID, second.ID)
}

func TestBookingService_Create_PublishesEvent(t *testing.T) {
	repo := repositories.NewMockBookingRepository()
	mockEvents := new(MockEventPublisher)
	service := services.NewBookingService(repo, mockEvents, nil, 0)

	mockEvents.On("Publish", "booking", "booking.created", mock.Anything).Return(nil).Once()

	_, err := service.Create(models.BookingDraft{CafeID: 1, CafeName: "The Crumby Café", Date: "2027-06-01", Time: "10:30", PartySize: 2})
	assert.NoError(t, err)
	mockEvents.AssertExpectations(t)
}

func TestBookingService_Create_NeverTouchesSlotAvailability(t *testing.T) {
	repo := repositories.NewMockBookingRepository()
	service := services.NewBookingService(repo, nil, nil, 0)

	// Two rapid bookings of the same slot both succeed: there is no slot
	// locking by design.
	draft := models.BookingDraft{CafeID: 1, CafeName: "The Crumby Café", Date: "2027-06-01", Time: "12:00", PartySize: 2}
	first, err := service.Create(draft)
	assert.NoError(t, err)
	second, err := service.Create(draft)
	assert.NoError(t, err)

	assert.Equal(t, first.Time, second.Time)
	assert.Equal(t, first.Date, second.Date)
}

func TestBookingService_ListForCurrentUser_CompletionRule(t *testing.T) {
	repo := seededBookingRepo(t)
	service := services.NewBookingService(repo, nil, fixedClock("2025-05-22"), 0)

	bookings, err := service.ListForCurrentUser()
	assert.NoError(t, err)
	assert.Len(t, bookings, 3)

	byID := make(map[int]models.Booking, len(bookings))
	for _, b := range bookings {
		byID[b.ID] = b
	}

	// Confirmed with a past date is recomputed to completed
	assert.Equal(t, models.BookingCompleted, byID[1].Status)
	// Pending with a future date stays pending
	assert.Equal(t, models.BookingPending, byID[2].Status)
	// Completion never overrides cancellation
	assert.Equal(t, models.BookingCancelled, byID[3].Status)

	// The recomputation is persisted, not just reported
	stored, err := repo.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, stored.Status)
}

func TestBookingService_Cancel(t *testing.T) {
	repo := seededBookingRepo(t)
	mockEvents := new(MockEventPublisher)
	service := services.NewBookingService(repo, mockEvents, fixedClock("2025-05-01"), 0)

	mockEvents.On("Publish", "booking", "booking.cancelled", mock.Anything).Return(nil).Once()

	ok, err := service.Cancel(1)
	assert.NoError(t, err)
	assert.True(t, ok)

	// The record is retained with a cancelled status
	stored, err := repo.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, stored.Status)
	mockEvents.AssertExpectations(t)

	// Unknown id is a miss, not an error
	ok, err = service.Cancel(99)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBookingService_CancelledBookingStaysCancelled(t *testing.T) {
	repo := seededBookingRepo(t)
	service := services.NewBookingService(repo, nil, fixedClock("2025-05-01"), 0)

	ok, err := service.Cancel(1)
	assert.NoError(t, err)
	assert.True(t, ok)

	// Its date passes; a later fetch must not flip it to completed
	late := services.NewBookingService(repo, nil, fixedClock("2025-06-01"), 0)
	bookings, err := late.ListForCurrentUser()
	assert.NoError(t, err)
	for _, b := range bookings {
		if b.ID == 1 {
			assert.Equal(t, models.BookingCancelled, b.Status)
		}
	}
}
