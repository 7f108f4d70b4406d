package models

// TimeSlot is a single bookable time unit belonging to one café.
// Slot IDs are unique within their café, not globally.
type TimeSlot struct {
	ID        int    `json:"id"`
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// Cafe represents one café in the catalog. Cafés are read-only reference
// data; the client never mutates them.
type Cafe struct {
	ID          int        `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" validate:"required,min=2,max=100"`
	Address     string     `json:"address"`
	Description string     `json:"description"`
	Rating      float64    `json:"rating" validate:"gte=0,lte=5"`
	PriceLevel  int        `json:"priceLevel" validate:"gte=1,lte=3"`
	Image       string     `json:"image"`
	CoverImage  string     `json:"coverImage"`
	Menu        []string   `json:"menu" gorm:"serializer:json"`
	TimeSlots   []TimeSlot `json:"timeSlots" gorm:"serializer:json"`
}
