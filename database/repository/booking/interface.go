package bookingRepo

import "quickfind/models"

// BookingRepository persists booking records. QuickFind creates bookings
// exactly once per confirm and never updates them afterward.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
}
