package models

import "time"

// Booking statuses. QuickFind-originated bookings are confirmed on creation;
// there is no intermediate pending state on this path.
const (
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusPending   = "PENDING"
)

// Booking represents a confirmed booking record.
type Booking struct {
	ID         string    `bson:"id" json:"id"`                   // Unique booking identifier (UUID)
	ClientID   string    `bson:"client_id" json:"client_id"`     // User who made the booking
	ProviderID string    `bson:"provider_id" json:"provider_id"` // Provider who was booked
	ServiceID  string    `bson:"service_id" json:"service_id"`   // Booked service from the provider's catalogue
	Date       string    `bson:"date" json:"date"`               // Booking date in "YYYY-MM-DD" format
	Time       string    `bson:"time" json:"time,omitempty"`     // Booking time in "HH:MM" format
	TotalPrice float64   `bson:"total_price" json:"total_price"`
	Status     string    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
