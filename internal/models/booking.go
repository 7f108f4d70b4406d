package models

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

// Booking represents a table reservation. The café name and image are a
// denormalized snapshot taken at booking time, so a booking stays readable
// even if the catalog record changes. Bookings are never hard-deleted;
// cancellation is a status transition.
type Booking struct {
	ID        int           `json:"id" gorm:"primaryKey"`
	CafeID    int           `json:"cafeId"`
	CafeName  string        `json:"cafeName"`
	CafeImage string        `json:"cafeImage"`
	Date      string        `json:"date"` // calendar date, "2006-01-02"
	Time      string        `json:"time"`
	PartySize int           `json:"partySize"`
	Status    BookingStatus `json:"status"`
}

// IsUpcoming reports whether the booking counts as upcoming for list views.
// The partition is derived from status alone, never stored separately.
func (b Booking) IsUpcoming() bool {
	return b.Status == BookingConfirmed || b.Status == BookingPending
}

// BookingDraft is the payload for creating a booking. The server assigns the
// id and fixes the initial status, so the draft carries neither.
type BookingDraft struct {
	CafeID    int    `json:"cafeId" validate:"required"`
	CafeName  string `json:"cafeName" validate:"required"`
	CafeImage string `json:"cafeImage"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required"`
	PartySize int    `json:"partySize" validate:"required,gte=1"`
}
