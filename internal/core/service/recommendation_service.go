package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
	"github.com/futureproof/careerguide/internal/pkg/metrics"
)

const (
	degradedReason = "Using demo data due to processing issue"
	failedReason   = "Failed to generate recommendations"
)

type recommendationService struct {
	catalog ports.Catalog
	latency time.Duration
	log     zerolog.Logger
}

// NewRecommendationService waits latency before answering each request,
// which the client shows as a thinking state.
func NewRecommendationService(catalog ports.Catalog, latency time.Duration, log zerolog.Logger) ports.RecommendationService {
	return &recommendationService{catalog: catalog, latency: latency, log: log}
}

// Recommend never returns an error: invalid input or a resolver failure
// degrade to the demo set, and only an empty demo set fails.
func (s *recommendationService) Recommend(ctx context.Context, in domain.AssessmentInput) (res domain.RecommendationResult) {
	defer func() {
		metrics.RecommendationsTotal.WithLabelValues(string(res.Outcome)).Inc()
		s.log.Info().Str("outcome", string(res.Outcome)).Int("count", len(res.Recommendations)).Msg("recommendations resolved")
	}()

	if err := s.think(ctx); err != nil {
		s.log.Warn().Err(err).Msg("recommendation request abandoned")
		return domain.FailedResult(failedReason)
	}

	a, err := domain.NewAssessment(in)
	if err != nil {
		s.log.Warn().Err(err).Msg("assessment rejected, serving demo recommendations")
		return s.degrade(in)
	}

	recs, err := s.resolve(a)
	if err != nil {
		s.log.Error().Err(err).Msg("resolver failed, serving demo recommendations")
		return s.degrade(in)
	}
	return domain.OkResult(recs, a)
}

func (s *recommendationService) think(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *recommendationService) resolve(a *domain.Assessment) (recs []domain.RoleRecommendation, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("resolver panic: %v", r)
		}
	}()
	return domain.Resolve(s.catalog.Recommendations(), a)
}

func (s *recommendationService) degrade(in domain.AssessmentInput) domain.RecommendationResult {
	catalog := s.catalog.Recommendations()
	fallback := catalog.FallbackSet()
	if len(fallback) == 0 {
		return domain.FailedResult(failedReason)
	}
	if domain.ExperienceLevel(in.ExperienceLevel).IsBeginner() {
		fallback = domain.AdjustForBeginner(fallback, catalog.FoundationalStep)
	}
	return domain.DegradedResult(fallback, degradedReason)
}
