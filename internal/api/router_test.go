package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/futureproof/careerguide/internal/api/handler"
	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/service"
	"github.com/futureproof/careerguide/internal/infrastructure/catalog"
	"github.com/futureproof/careerguide/internal/infrastructure/completion"
	"github.com/futureproof/careerguide/internal/infrastructure/db/memory"
)

func newTestServices() Services {
	log := zerolog.Nop()
	kv := memory.NewKVStore()
	cat := catalog.MustLoad()
	mock := completion.NewMockProvider()
	mock.Default = "Focus on SQL first."
	progress := service.NewProgressService(kv, log)

	return Services{
		Sessions:        service.NewSessionService("test-secret", time.Hour, log),
		Assessments:     service.NewAssessmentService(kv, time.Hour, log),
		Recommendations: service.NewRecommendationService(cat, 0, log),
		Roadmaps:        service.NewRoadmapService(cat, progress, log),
		Progress:        progress,
		Portfolio:       service.NewPortfolioService(kv, log),
		Dashboard:       service.NewDashboardService(cat, progress),
		Directory:       service.NewDirectoryService(cat, kv, log),
		Chat:            service.NewChatService(mock, service.ChatConfig{}, log),
		Dependencies:    map[string]handler.Pinger{"store": kv},
	}
}

func do(t *testing.T, e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// The router registers Prometheus collectors globally, so the whole flow
// runs against a single instance.
func TestRouter_SessionFlow(t *testing.T) {
	e := NewRouter(newTestServices(), zerolog.Nop())

	if rec := do(t, e, http.MethodGet, "/health", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}
	if rec := do(t, e, http.MethodGet, "/health/ready", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("ready: expected 200, got %d", rec.Code)
	}

	if rec := do(t, e, http.MethodGet, "/v1/dashboard", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("dashboard without session: expected 401, got %d", rec.Code)
	}

	rec := do(t, e, http.MethodPost, "/v1/sessions", "", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("sessions: expected 201, got %d", rec.Code)
	}
	var sess struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &sess); err != nil || sess.Token == "" {
		t.Fatalf("sessions: bad body %s", rec.Body.String())
	}

	rec = do(t, e, http.MethodPost, "/v1/roadmaps/data-analyst/milestones/0-0/toggle", sess.Token, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("toggle: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var snap domain.ViewerSnapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("toggle: invalid json: %v", err)
	}
	if snap.Phase != domain.PhaseFound || len(snap.CompletedMilestones) != 1 || snap.ProgressPercent == 0 {
		t.Fatalf("toggle: unexpected snapshot %+v", snap)
	}

	rec = do(t, e, http.MethodPost, "/v1/roadmaps/unknown-role/milestones/0-0/toggle", sess.Token, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("toggle unknown: expected 404, got %d", rec.Code)
	}

	rec = do(t, e, http.MethodGet, "/v1/roadmaps/unknown-role/view", sess.Token, "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"not_found"`) {
		t.Fatalf("view unknown: expected not_found snapshot, got %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, e, http.MethodPost, "/v1/assessment", sess.Token, `{"currentField":""}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("assessment: expected 422, got %d", rec.Code)
	}

	rec = do(t, e, http.MethodGet, "/v1/portfolio", sess.Token, "")
	var projects []domain.PortfolioProject
	if err := json.Unmarshal(rec.Body.Bytes(), &projects); err != nil || len(projects) != 2 {
		t.Fatalf("portfolio: expected demo projects, got %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, e, http.MethodGet, "/v1/dashboard", sess.Token, "")
	var dash domain.Dashboard
	if err := json.Unmarshal(rec.Body.Bytes(), &dash); err != nil {
		t.Fatalf("dashboard: invalid json: %v", err)
	}
	if dash.TotalMilestonesCompleted != 1 {
		t.Fatalf("dashboard: expected 1 milestone, got %+v", dash)
	}

	rec = do(t, e, http.MethodPost, "/chat", "", `{"messages":[{"role":"user","content":"Where do I start?"}]}`)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Focus on SQL first.") {
		t.Fatalf("chat: unexpected response %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, e, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
}
