package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
)

type assessmentService struct {
	docs documents
	ttl  time.Duration
	log  zerolog.Logger
}

// NewAssessmentService stores assessments for ttl, normally the session lifetime.
func NewAssessmentService(kv ports.KVStore, ttl time.Duration, log zerolog.Logger) ports.AssessmentService {
	return &assessmentService{docs: documents{kv: kv, log: log}, ttl: ttl, log: log}
}

func (s *assessmentService) Submit(ctx context.Context, ns string, in domain.AssessmentInput) (*domain.Assessment, error) {
	a, err := domain.NewAssessment(in)
	if err != nil {
		return nil, fmt.Errorf("submit assessment: %w", err)
	}
	if err := s.docs.save(ctx, ns, docAssessment, a, s.ttl); err != nil {
		return nil, fmt.Errorf("submit assessment: %w", err)
	}
	s.log.Info().Str("namespace", ns).Str("experience_level", string(a.ExperienceLevel)).Msg("assessment stored")
	return a, nil
}

func (s *assessmentService) Current(ctx context.Context, ns string) (*domain.Assessment, error) {
	a, ok, _ := loadDoc[*domain.Assessment](ctx, s.docs, ns, docAssessment)
	if !ok {
		return nil, nil
	}
	return a, nil
}
