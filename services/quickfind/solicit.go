package quickfind

import (
	"context"
	"errors"
	"fmt"

	providerRepo "quickfind/database/repository/provider"
	"quickfind/models"
	"quickfind/utils"

	"go.uber.org/zap"
)

// Solicit mints a request token for the client and hands the solicitation to
// the dispatch queue that notifies the provider. Nothing is persisted: if the
// provider never answers, the request simply evaporates.
func (s *DefaultQuickFindService) Solicit(ctx context.Context, clientID, providerID, category string) (string, error) {
	provider, err := s.ProviderRepo.GetByID(providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			return "", fmt.Errorf("solicited provider %s: %w", providerID, ErrProviderNotFound)
		}
		return "", fmt.Errorf("failed to load provider snapshot: %w", err)
	}

	requestID := EncodeRequestToken(clientID)

	payload := models.SolicitationPayload{
		RequestID:  requestID,
		ProviderID: provider.ID,
		Category:   category,
	}
	// The client name is decoration on the push; a failed lookup must not
	// block the solicitation.
	if account, err := s.AccountRepo.GetByID(clientID); err == nil {
		payload.ClientName = account.Name
	}
	if err := s.Dispatcher.Dispatch(ctx, payload); err != nil {
		return "", fmt.Errorf("failed to dispatch solicitation: %w", err)
	}

	utils.GetLogger().Info("solicitation dispatched",
		zap.String("clientID", clientID),
		zap.String("providerID", providerID),
		zap.String("requestID", requestID),
	)
	return requestID, nil
}
