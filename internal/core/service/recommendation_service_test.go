package service

import (
	"context"
	"testing"
	"time"

	"github.com/futureproof/careerguide/internal/core/domain"
)

func TestRecommendationService_Outcomes(t *testing.T) {
	svc := NewRecommendationService(testCatalog(), 0, nopLog())
	ctx := context.Background()

	res := svc.Recommend(ctx, validInput())
	if res.Outcome != domain.OutcomeOK || len(res.Recommendations) != 3 || res.Assessment == nil {
		t.Fatalf("expected ok result, got %+v", res)
	}
	if res.Recommendations[1].Title != "Data Scientist" {
		t.Fatalf("analytics interest should promote the data variant, got %q", res.Recommendations[1].Title)
	}

	res = svc.Recommend(ctx, domain.AssessmentInput{ExperienceLevel: "Beginner - Just Starting Out"})
	if res.Outcome != domain.OutcomeDegraded || res.Reason == "" || len(res.Recommendations) != 3 {
		t.Fatalf("expected degraded result, got %+v", res)
	}
	for _, r := range res.Recommendations {
		if len(r.NextSteps) > 3 {
			t.Fatalf("beginner fallback must be trimmed, got %v", r.NextSteps)
		}
	}
}

func TestRecommendationService_CancelledContextFails(t *testing.T) {
	svc := NewRecommendationService(testCatalog(), time.Minute, nopLog())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := svc.Recommend(ctx, validInput())
	if res.Outcome != domain.OutcomeFailed || res.Reason == "" || len(res.Recommendations) != 0 {
		t.Fatalf("expected failed result, got %+v", res)
	}
}

func TestRecommendationService_WaitsForLatency(t *testing.T) {
	svc := NewRecommendationService(testCatalog(), 20*time.Millisecond, nopLog())

	start := time.Now()
	res := svc.Recommend(context.Background(), validInput())
	if res.Outcome != domain.OutcomeOK {
		t.Fatalf("expected ok, got %+v", res)
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Fatalf("recommendation returned before the thinking delay elapsed")
	}
}
