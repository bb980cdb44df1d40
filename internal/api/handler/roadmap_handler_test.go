package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/futureproof/careerguide/internal/core/domain"
)

func TestRoadmapHandler_ToggleMilestone(t *testing.T) {
	stub := &stubRoadmapService{
		toggleFn: func(_ context.Context, ns, roleKey, milestoneID string) (domain.ViewerSnapshot, error) {
			if ns != testNamespace || roleKey != "data-analyst" || milestoneID != "0-1" {
				t.Fatalf("unexpected args: %s %s %s", ns, roleKey, milestoneID)
			}
			return domain.ViewerSnapshot{
				Phase:               domain.PhaseFound,
				CompletedMilestones: []string{"0-1"},
				ProgressPercent:     11,
			}, nil
		},
	}
	h := NewRoadmapHandler(stub)

	_, c, rec := newTestContext(http.MethodPost, "/", "")
	c.SetParamNames("role", "milestone")
	c.SetParamValues("data-analyst", "0-1")

	if err := h.ToggleMilestone(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var snap domain.ViewerSnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if snap.ProgressPercent != 11 || len(snap.CompletedMilestones) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestRoadmapHandler_Get_NotFound(t *testing.T) {
	stub := &stubRoadmapService{
		getFn: func(context.Context, string) (*domain.Roadmap, error) {
			return nil, domain.ErrRoadmapNotFound
		},
	}
	h := NewRoadmapHandler(stub)

	_, c, _ := newTestContext(http.MethodGet, "/", "")
	c.SetParamNames("role")
	c.SetParamValues("ai-prompt-engineer")

	err := h.Get(c)
	if !errors.Is(err, domain.ErrRoadmapNotFound) {
		t.Fatalf("expected ErrRoadmapNotFound, got %v", err)
	}
}

func TestRoadmapHandler_SetStage(t *testing.T) {
	var gotStage int
	stub := &stubRoadmapService{
		stageFn: func(_ context.Context, _, _ string, stage int) (domain.ViewerSnapshot, error) {
			gotStage = stage
			return domain.ViewerSnapshot{Phase: domain.PhaseFound, ActiveStage: stage}, nil
		},
	}
	h := NewRoadmapHandler(stub)

	_, c, rec := newTestContext(http.MethodPut, "/", `{"stage":2}`)
	c.SetParamNames("role")
	c.SetParamValues("data-analyst")

	if err := h.SetStage(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK || gotStage != 2 {
		t.Fatalf("expected 200 with stage 2, got %d stage %d", rec.Code, gotStage)
	}
}

func TestRoadmapHandler_SetStage_Validation(t *testing.T) {
	stub := &stubRoadmapService{
		stageFn: func(context.Context, string, string, int) (domain.ViewerSnapshot, error) {
			t.Fatalf("should not be called")
			return domain.ViewerSnapshot{}, nil
		},
	}
	h := NewRoadmapHandler(stub)

	for _, body := range []string{`{}`, `{"stage":-1}`} {
		_, c, _ := newTestContext(http.MethodPut, "/", body)
		c.SetParamNames("role")
		c.SetParamValues("data-analyst")

		var ve *domain.ValidationError
		if err := h.SetStage(c); !errors.As(err, &ve) {
			t.Fatalf("%s: expected validation error, got %v", body, err)
		}
	}
}

func TestRoadmapHandler_View_RequiresNamespace(t *testing.T) {
	h := NewRoadmapHandler(&stubRoadmapService{})

	_, c, _ := newTestContext(http.MethodGet, "/", "")
	c.Set("namespace", "")

	if err := h.View(c); err == nil {
		t.Fatalf("expected error without namespace")
	}
}
