package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/futureproof/careerguide/internal/core/domain"
)

func TestRecommendationHandler_Outcomes(t *testing.T) {
	recs := []domain.RoleRecommendation{{Title: "Data Analyst", Badge: domain.BadgeHighMatch}}

	tests := []struct {
		name       string
		result     domain.RecommendationResult
		wantCode   int
		wantFields map[string]any
	}{
		{
			name:     "ok",
			result:   domain.OkResult(recs, &domain.Assessment{CurrentField: "Marketing"}),
			wantCode: http.StatusOK,
			wantFields: map[string]any{
				"success": true,
				"outcome": "ok",
				"demo":    true,
			},
		},
		{
			name:     "degraded",
			result:   domain.DegradedResult(recs, "Using demo data due to processing issue"),
			wantCode: http.StatusOK,
			wantFields: map[string]any{
				"success": true,
				"outcome": "degraded",
				"demo":    true,
				"error":   "Using demo data due to processing issue",
			},
		},
		{
			name:     "failed",
			result:   domain.FailedResult("Failed to generate recommendations"),
			wantCode: http.StatusInternalServerError,
			wantFields: map[string]any{
				"success": false,
				"outcome": "failed",
				"error":   "Failed to generate recommendations",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewRecommendationHandler(&stubRecommendationService{
				recommendFn: func(context.Context, domain.AssessmentInput) domain.RecommendationResult {
					return tt.result
				},
			})
			_, c, rec := newTestContext(http.MethodPost, "/recommendations", `{"currentField":"Marketing"}`)

			if err := h.Recommend(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}

			var resp map[string]any
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			for k, want := range tt.wantFields {
				if resp[k] != want {
					t.Fatalf("%s: expected %v, got %v", k, want, resp[k])
				}
			}
		})
	}
}

func TestRecommendationHandler_MalformedBodyStillCallsService(t *testing.T) {
	called := false
	h := NewRecommendationHandler(&stubRecommendationService{
		recommendFn: func(_ context.Context, in domain.AssessmentInput) domain.RecommendationResult {
			called = true
			if in.CurrentField != "" || len(in.SelectedSkills) != 0 {
				t.Fatalf("expected zero input, got %+v", in)
			}
			return domain.DegradedResult(nil, "Using demo data due to processing issue")
		},
	})
	_, c, rec := newTestContext(http.MethodPost, "/recommendations", "{broken")

	if err := h.Recommend(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("service not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
