package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/futureproof/careerguide/internal/core/domain"
)

func TestProgressHandler_SaveAndRemoveMilestone(t *testing.T) {
	svc := newFakeProgressService()
	h := NewProgressHandler(svc)

	_, c, rec := newTestContext(http.MethodPost, "/", `{"stage":0,"milestoneId":"0-0"}`)
	c.SetParamNames("role")
	c.SetParamValues("data-analyst")
	if err := h.SaveMilestone(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got domain.ProgressRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if diff := cmp.Diff([]string{"0-0"}, got.CompletedMilestones); diff != "" {
		t.Fatalf("milestones mismatch (-want +got):\n%s", diff)
	}

	_, c, rec = newTestContext(http.MethodPost, "/", `{"milestoneId":"0-0","completed":false}`)
	c.SetParamNames("role")
	c.SetParamValues("data-analyst")
	if err := h.SaveMilestone(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.records["data-analyst"].HasMilestone("0-0") {
		t.Fatalf("milestone should have been removed")
	}
}

func TestProgressHandler_SaveMilestone_Validation(t *testing.T) {
	h := NewProgressHandler(newFakeProgressService())

	_, c, _ := newTestContext(http.MethodPost, "/", `{"stage":0}`)
	c.SetParamNames("role")
	c.SetParamValues("data-analyst")

	var ve *domain.ValidationError
	if err := h.SaveMilestone(c); !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if diff := cmp.Diff([]string{"milestoneId"}, ve.FieldNames()); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
}

func TestProgressHandler_SaveMilestone_StorageError(t *testing.T) {
	svc := newFakeProgressService()
	svc.saveErr = domain.ErrStorageUnavailable
	h := NewProgressHandler(svc)

	_, c, _ := newTestContext(http.MethodPost, "/", `{"stage":0,"milestoneId":"0-0"}`)
	c.SetParamNames("role")
	c.SetParamValues("data-analyst")

	if err := h.SaveMilestone(c); !errors.Is(err, domain.ErrStorageUnavailable) {
		t.Fatalf("expected ErrStorageUnavailable, got %v", err)
	}
}

func TestProgressHandler_Get_NoRecord(t *testing.T) {
	h := NewProgressHandler(newFakeProgressService())

	_, c, rec := newTestContext(http.MethodGet, "/", "")
	c.SetParamNames("role")
	c.SetParamValues("product-manager")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestProgressHandler_LogSessionAndHours(t *testing.T) {
	svc := newFakeProgressService()
	h := NewProgressHandler(svc)

	_, c, rec := newTestContext(http.MethodPost, "/v1/sessions/log", `{"roleKey":"data-analyst","hoursSpent":1.5}`)
	if err := h.LogSession(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	_, c, rec = newTestContext(http.MethodGet, "/v1/hours", "")
	if err := h.Hours(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp hoursResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.TotalHours != 1.5 {
		t.Fatalf("expected 1.5 hours, got %v", resp.TotalHours)
	}
}

func TestProgressHandler_LogSession_RejectsNonPositiveHours(t *testing.T) {
	h := NewProgressHandler(newFakeProgressService())

	_, c, _ := newTestContext(http.MethodPost, "/v1/sessions/log", `{"roleKey":"data-analyst","hoursSpent":0}`)

	var ve *domain.ValidationError
	if err := h.LogSession(c); !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
