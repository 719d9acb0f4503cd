package quickfind

import (
	"context"
	"errors"
	"fmt"
	"time"

	providerRepo "quickfind/database/repository/provider"
	"quickfind/models"
	"quickfind/services/channel"
	"quickfind/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Respond handles a provider's answer to a solicitation.
//
// A reject acknowledges success and publishes nothing: the client must treat
// silence as rejection, which avoids leaking provider presence on decline.
// An accept loads the provider's current snapshot and publishes an offer to
// the originating client's channel, carrying the original token so the client
// can correlate it with its own pending requests.
func (s *DefaultQuickFindService) Respond(ctx context.Context, providerID, requestID, action string) error {
	logger := utils.GetLogger()

	switch action {
	case ActionReject:
		logger.Info("quickfind request rejected",
			zap.String("providerID", providerID),
			zap.String("requestID", requestID),
		)
		return nil
	case ActionAccept:
		// fall through below
	default:
		return fmt.Errorf("action %q: %w", action, ErrInvalidAction)
	}

	clientID, err := DecodeRequestToken(requestID)
	if err != nil {
		return err
	}

	provider, err := s.ProviderRepo.GetByID(providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return fmt.Errorf("responding provider %s: %w", providerID, ErrProviderNotFound)
		}
		return fmt.Errorf("failed to load provider snapshot: %w", err)
	}

	offer := models.Offer{
		BusinessID:   provider.ID,
		BusinessName: provider.Profile.ProviderName,
		Address:      provider.Profile.Address,
		LogoURL:      provider.Profile.LogoURL,
		RequestID:    requestID,
	}
	if svc := provider.CheapestService(); svc != nil {
		offer.Price = svc.Price
	}
	if lat, lng, ok := provider.Profile.LocationGeo.LatLng(); ok {
		offer.Lat = lat
		offer.Lng = lng
	}

	// Delivery is best-effort: a lost offer leaves the client in silence,
	// same as a rejection.
	topic := channel.UserTopic(clientID)
	if err := s.Bus.Publish(ctx, topic, models.EventRequestOffered, offer); err != nil {
		logger.Warn("failed to publish offer",
			zap.String("topic", topic),
			zap.String("requestID", requestID),
			zap.Error(err),
		)
		return nil
	}

	logger.Info("offer published",
		zap.String("providerID", providerID),
		zap.String("clientID", clientID),
		zap.String("requestID", requestID),
	)
	return nil
}

// Confirm finalizes a negotiation: it re-reads the chosen provider's
// snapshot, creates exactly one confirmed booking, and publishes a
// booking_confirmed event to the provider's channel.
//
// Confirm is not idempotent. The token carries no nonce and no negotiation
// state is held server-side, so a replayed confirm creates a second booking.
// Deduplication, if needed, belongs to the caller.
func (s *DefaultQuickFindService) Confirm(ctx context.Context, requestID, providerID string, req ConfirmRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	clientID, err := DecodeRequestToken(requestID)
	if err != nil {
		return nil, err
	}

	provider, err := s.ProviderRepo.GetByID(providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return nil, fmt.Errorf("chosen provider %s: %w", providerID, ErrProviderNotFound)
		}
		return nil, fmt.Errorf("failed to load provider snapshot: %w", err)
	}

	var service *models.Service
	if req.ServiceID != "" {
		if service = provider.ServiceByID(req.ServiceID); service == nil {
			return nil, fmt.Errorf("service %s on provider %s: %w", req.ServiceID, providerID, ErrServiceNotFound)
		}
	} else {
		service = provider.CheapestService()
	}

	date := req.Date
	if date == "" {
		// Placeholder until the parties settle on a schedule out of band.
		date = time.Now().Add(24 * time.Hour).Format("2006-01-02")
	}

	booking := &models.Booking{
		ID:         uuid.New().String(),
		ClientID:   clientID,
		ProviderID: providerID,
		Date:       date,
		Time:       req.Time,
		Status:     models.BookingStatusConfirmed,
		CreatedAt:  time.Now(),
	}
	if service != nil {
		booking.ServiceID = service.ID
		booking.TotalPrice = service.Price
	}

	if err := s.BookingRepo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	// The booking stands even if the notification is lost; recovery is an
	// external concern.
	topic := channel.UserTopic(providerID)
	event := models.BookingConfirmedEvent{BookingID: booking.ID, RequestID: requestID}
	if err := s.Bus.Publish(ctx, topic, models.EventBookingConfirmed, event); err != nil {
		logger.Warn("failed to publish booking confirmation",
			zap.String("topic", topic),
			zap.String("bookingID", booking.ID),
			zap.Error(err),
		)
	}

	logger.Info("quickfind booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.String("clientID", clientID),
		zap.String("providerID", providerID),
	)
	return booking, nil
}
