package models

// Event names published on the channel bus.
const (
	EventRequestOffered   = "request_offered"
	EventBookingConfirmed = "booking_confirmed"
)

// Candidate is a provider annotated with its computed distance from a search
// origin. It exists only for the duration of one nearby-search call.
type Candidate struct {
	Provider   Provider `json:"provider"`
	DistanceKm float64  `json:"distance"`
}

// Offer is the payload of a request_offered event, delivered to the
// requesting client's channel when a provider accepts.
type Offer struct {
	BusinessID   string  `json:"businessId"`
	BusinessName string  `json:"businessName"`
	Price        float64 `json:"price"`
	Address      string  `json:"address"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	LogoURL      string  `json:"logoUrl"`
	RequestID    string  `json:"requestId"`
}

// BookingConfirmedEvent is the payload of a booking_confirmed event,
// delivered to the provider's channel after the client confirms.
type BookingConfirmedEvent struct {
	BookingID string `json:"bookingId"`
	RequestID string `json:"requestId"`
}

// SolicitationPayload is the dispatch-queue task payload carrying a
// quickfind request toward a provider.
type SolicitationPayload struct {
	RequestID  string `json:"requestId"`
	ProviderID string `json:"providerId"`
	ClientName string `json:"clientName"`
	Category   string `json:"category,omitempty"`
}
