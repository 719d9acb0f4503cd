package quickfind

import (
	"context"

	"quickfind/models"
)

// Respond actions.
const (
	ActionAccept = "accept"
	ActionReject = "reject"
)

// SearchQuery describes one nearby-provider search.
type SearchQuery struct {
	Lat       float64
	Lng       float64
	Category  string
	RadiusKm  float64
	MinRating float64
}

// ConfirmRequest carries the optional booking details of a confirm call.
// Unset fields fall back to the provider's cheapest service and a
// next-day placeholder date.
type ConfirmRequest struct {
	ServiceID string `json:"serviceId,omitempty"`
	Date      string `json:"date,omitempty"` // "YYYY-MM-DD"
	Time      string `json:"time,omitempty"` // "HH:MM"
}

// SolicitationDispatcher hands a minted request off to the notification path
// that reaches the provider. Implemented by the dispatch queue.
type SolicitationDispatcher interface {
	Dispatch(ctx context.Context, payload models.SolicitationPayload) error
}

// Service is the QuickFind proximity matching and negotiation protocol.
// Each call is an independent, stateless unit of work: continuity between
// steps is reconstructed from the request token and fresh catalog reads.
type Service interface {
	// SearchNearby returns active providers within the radius, annotated with
	// distance and sorted nearest first, then filtered by minimum rating.
	SearchNearby(ctx context.Context, query SearchQuery) ([]models.Candidate, error)
	// Solicit mints a request token for the client and dispatches the
	// solicitation toward the provider. Returns the token.
	Solicit(ctx context.Context, clientID, providerID, category string) (string, error)
	// Respond handles a provider's accept/reject. Accept publishes an offer
	// to the requesting client's channel; reject is deliberately silent.
	Respond(ctx context.Context, providerID, requestID, action string) error
	// Confirm creates exactly one confirmed booking and notifies the
	// provider's channel. Not idempotent: a replayed token books again.
	Confirm(ctx context.Context, requestID, providerID string, req ConfirmRequest) (*models.Booking, error)
}
