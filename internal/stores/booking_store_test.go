package stores_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/LilMortal/Feastly-App/internal/models"
	"github.com/LilMortal/Feastly-App/internal/stores"
)

// MockBookingService is a mock implementation of stores.BookingService.
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(draft models.BookingDraft) (*models.Booking, error) {
	args := m.Called(draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingService) ListForCurrentUser() ([]models.Booking, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingService) Cancel(id int) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func TestBookingStore_CreateBooking(t *testing.T) {
	mockService := new(MockBookingService)
	notifier := &stubNotifier{}
	store := stores.NewBookingStore(mockService, notifier)

	draft := models.BookingDraft{
		CafeID:    1,
		CafeName:  "The Crumby Café",
		Date:      "2027-06-01",
		Time:      "10:30",
		PartySize: 2,
	}
	created := &models.Booking{
		ID: 7, CafeID: 1, CafeName: "The Crumby Café",
		Date: "2027-06-01", Time: "10:30", PartySize: 2,
		Status: models.BookingConfirmed,
	}

	mockService.On("Create", draft).Return(created, nil).Once()
	ok := store.CreateBooking(draft)

	assert.True(t, ok)
	assert.False(t, store.IsLoading())
	bookings := store.Bookings()
	assert.Len(t, bookings, 1)
	assert.Equal(t, 7, bookings[0].ID)
	assert.Equal(t, models.BookingConfirmed, bookings[0].Status)

	toastType, message, got := notifier.last()
	assert.True(t, got)
	assert.Equal(t, models.ToastSuccess, toastType)
	assert.Contains(t, message, "created")
	mockService.AssertExpectations(t)
}

func TestBookingStore_CreateBooking_ServiceFailure(t *testing.T) {
	mockService := new(MockBookingService)
	notifier := &stubNotifier{}
	store := stores.NewBookingStore(mockService, notifier)

	draft := models.BookingDraft{CafeID: 1, CafeName: "The Crumby Café", Date: "2027-06-01", Time: "10:30", PartySize: 2}
	mockService.On("Create", draft).Return(nil, fmt.Errorf("backend unavailable")).Once()

	ok := store.CreateBooking(draft)

	assert.False(t, ok)
	assert.False(t, store.IsLoading())
	assert.Empty(t, store.Bookings())
	toastType, _, got := notifier.last()
	assert.True(t, got)
	assert.Equal(t, models.ToastError, toastType)
	mockService.AssertExpectations(t)
}

func TestBookingStore_FetchUserBookings(t *testing.T) {
	mockService := new(MockBookingService)
	notifier := &stubNotifier{}
	store := stores.NewBookingStore(mockService, notifier)

	fetched := []models.Booking{
		{ID: 1, Status: models.BookingConfirmed, Date: "2027-05-20"},
		{ID: 2, Status: models.BookingCompleted, Date: "2025-04-15"},
	}
	mockService.On("ListForCurrentUser").Return(fetched, nil).Once()
	store.FetchUserBookings()

	assert.Equal(t, fetched, store.Bookings())
	assert.False(t, store.IsLoading())

	// A failed refresh leaves the held sequence unchanged
	mockService.On("ListForCurrentUser").Return(nil, fmt.Errorf("backend unavailable")).Once()
	store.FetchUserBookings()

	assert.Equal(t, fetched, store.Bookings())
	toastType, _, got := notifier.last()
	assert.True(t, got)
	assert.Equal(t, models.ToastError, toastType)
	mockService.AssertExpectations(t)
}

func TestBookingStore_CancelBooking(t *testing.T) {
	mockService := new(MockBookingService)
	notifier := &stubNotifier{}
	store := stores.NewBookingStore(mockService, notifier)

	mockService.On("ListForCurrentUser").Return([]models.Booking{
		{ID: 1, Status: models.BookingConfirmed, Date: "2027-05-20"},
	}, nil).Once()
	store.FetchUserBookings()

	mockService.On("Cancel", 1).Return(true, nil).Once()
	ok := store.CancelBooking(1)

	assert.True(t, ok)
	bookings := store.Bookings()
	assert.Len(t, bookings, 1, "a cancelled booking is retained, not removed")
	assert.Equal(t, models.BookingCancelled, bookings[0].Status)
	toastType, _, got := notifier.last()
	assert.True(t, got)
	assert.Equal(t, models.ToastSuccess, toastType)
	mockService.AssertExpectations(t)
}

func TestBookingStore_CancelBooking_UnknownID(t *testing.T) {
	mockService := new(MockBookingService)
	notifier := &stubNotifier{}
	store := stores.NewBookingStore(mockService, notifier)

	// Unknown id: silent no-op returning false, no toast
	mockService.On("Cancel", 99).Return(false, nil).Once()
	ok := store.CancelBooking(99)

	assert.False(t, ok)
	assert.False(t, store.IsLoading())
	assert.Zero(t, notifier.count())

	// Service failure: false plus an error toast
	mockService.On("Cancel", 1).Return(false, fmt.Errorf("backend unavailable")).Once()
	ok = store.CancelBooking(1)

	assert.False(t, ok)
	toastType, _, got := notifier.last()
	assert.True(t, got)
	assert.Equal(t, models.ToastError, toastType)
	mockService.AssertExpectations(t)
}

func TestBookingStore_UpcomingPastPartition(t *testing.T) {
	mockService := new(MockBookingService)
	store := stores.NewBookingStore(mockService, &stubNotifier{})

	mockService.On("ListForCurrentUser").Return([]models.Booking{
		{ID: 1, Status: models.BookingConfirmed},
		{ID: 2, Status: models.BookingPending},
		{ID: 3, Status: models.BookingCompleted},
		{ID: 4, Status: models.BookingCancelled},
	}, nil).Once()
	store.FetchUserBookings()

	upcoming := store.Upcoming()
	past := store.Past()

	assert.Len(t, upcoming, 2)
	assert.Equal(t, 1, upcoming[0].ID)
	assert.Equal(t, 2, upcoming[1].ID)

	assert.Len(t, past, 2)
	assert.Equal(t, 3, past[0].ID)
	assert.Equal(t, 4, past[1].ID)
	mockService.AssertExpectations(t)
}
