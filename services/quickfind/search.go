package quickfind

import (
	"context"
	"fmt"

	"quickfind/models"
	"quickfind/utils"

	"go.uber.org/zap"
)

// SearchNearby reads a fresh catalog snapshot, runs the radius filter and
// applies the rating floor. When nothing matches it returns an empty list
// rather than an error.
func (s *DefaultQuickFindService) SearchNearby(ctx context.Context, query SearchQuery) ([]models.Candidate, error) {
	providers, err := s.ProviderRepo.GetActive(query.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog snapshot: %w", err)
	}

	candidates := FilterByRadius(query.Lat, query.Lng, query.RadiusKm, providers)

	// Rating eligibility is applied after distance ranking so the two
	// concerns stay separate.
	if query.MinRating > 0 {
		eligible := candidates[:0]
		for _, c := range candidates {
			if c.Provider.Profile.Rating >= query.MinRating {
				eligible = append(eligible, c)
			}
		}
		candidates = eligible
	}

	utils.GetLogger().Debug("quickfind search completed",
		zap.Float64("lat", query.Lat),
		zap.Float64("lng", query.Lng),
		zap.Float64("radiusKm", query.RadiusKm),
		zap.String("category", query.Category),
		zap.Int("candidates", len(candidates)),
	)
	return candidates, nil
}
