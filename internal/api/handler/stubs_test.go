package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/futureproof/careerguide/internal/api/middleware"
	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
)

const testNamespace = "0123456789abcdef0123456789abcdef"

// newTestContext builds an echo context for method/target with an optional
// JSON body, scoped to testNamespace.
func newTestContext(method, target, body string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req = httptest.NewRequest(method, target, nil)
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.NamespaceKey, testNamespace)
	return e, c, rec
}

type stubChatService struct {
	askFn func(ctx context.Context, history []domain.ChatTurn, profile *domain.UserProfile) (string, error)
}

func (s *stubChatService) Ask(ctx context.Context, history []domain.ChatTurn, profile *domain.UserProfile) (string, error) {
	return s.askFn(ctx, history, profile)
}

type stubRecommendationService struct {
	recommendFn func(ctx context.Context, in domain.AssessmentInput) domain.RecommendationResult
}

func (s *stubRecommendationService) Recommend(ctx context.Context, in domain.AssessmentInput) domain.RecommendationResult {
	return s.recommendFn(ctx, in)
}

type stubRoadmapService struct {
	getFn    func(ctx context.Context, roleKey string) (*domain.Roadmap, error)
	viewFn   func(ctx context.Context, ns, roleKey string) (domain.ViewerSnapshot, error)
	toggleFn func(ctx context.Context, ns, roleKey, milestoneID string) (domain.ViewerSnapshot, error)
	stageFn  func(ctx context.Context, ns, roleKey string, stage int) (domain.ViewerSnapshot, error)
}

func (s *stubRoadmapService) GetRoadmap(ctx context.Context, roleKey string) (*domain.Roadmap, error) {
	return s.getFn(ctx, roleKey)
}

func (s *stubRoadmapService) View(ctx context.Context, ns, roleKey string) (domain.ViewerSnapshot, error) {
	return s.viewFn(ctx, ns, roleKey)
}

func (s *stubRoadmapService) ToggleMilestone(ctx context.Context, ns, roleKey, milestoneID string) (domain.ViewerSnapshot, error) {
	return s.toggleFn(ctx, ns, roleKey, milestoneID)
}

func (s *stubRoadmapService) SetStage(ctx context.Context, ns, roleKey string, stage int) (domain.ViewerSnapshot, error) {
	return s.stageFn(ctx, ns, roleKey, stage)
}

// fakeProgressService keeps records in memory keyed by role.
type fakeProgressService struct {
	records map[string]*domain.ProgressRecord
	hours   float64
	saveErr error
}

func newFakeProgressService() *fakeProgressService {
	return &fakeProgressService{records: map[string]*domain.ProgressRecord{}}
}

func (s *fakeProgressService) SaveMilestone(_ context.Context, _, roleKey string, stage int, milestoneID string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	rec, ok := s.records[roleKey]
	if !ok {
		rec = &domain.ProgressRecord{RoleKey: roleKey, Stage: stage}
		s.records[roleKey] = rec
	}
	rec.AddMilestone(milestoneID)
	return nil
}

func (s *fakeProgressService) RemoveMilestone(_ context.Context, _, roleKey, milestoneID string) error {
	if rec, ok := s.records[roleKey]; ok {
		rec.RemoveMilestone(milestoneID)
	}
	return nil
}

func (s *fakeProgressService) SetStage(_ context.Context, _, roleKey string, stage int) error {
	if rec, ok := s.records[roleKey]; ok {
		rec.Stage = stage
	}
	return nil
}

func (s *fakeProgressService) GetProgress(_ context.Context, _, roleKey string) *domain.ProgressRecord {
	rec, ok := s.records[roleKey]
	if !ok {
		return nil
	}
	cp := *rec
	return &cp
}

func (s *fakeProgressService) ListProgress(context.Context, string) []domain.ProgressRecord {
	out := make([]domain.ProgressRecord, 0, len(s.records))
	for _, rec := range s.records {
		out = append(out, *rec)
	}
	return out
}

func (s *fakeProgressService) LogSession(_ context.Context, _, _ string, hours float64, _ string) error {
	s.hours += hours
	return nil
}

func (s *fakeProgressService) GetTotalHoursInvested(context.Context, string) float64 {
	return s.hours
}

type stubPortfolioService struct {
	listFn   func(ctx context.Context, ns string) []domain.PortfolioProject
	createFn func(ctx context.Context, ns string, in ports.ProjectInput) (*domain.PortfolioProject, error)
	updateFn func(ctx context.Context, ns, id string, in ports.ProjectInput) (*domain.PortfolioProject, error)
	deleteFn func(ctx context.Context, ns, id string) error
}

func (s *stubPortfolioService) List(ctx context.Context, ns string) []domain.PortfolioProject {
	return s.listFn(ctx, ns)
}

func (s *stubPortfolioService) Create(ctx context.Context, ns string, in ports.ProjectInput) (*domain.PortfolioProject, error) {
	return s.createFn(ctx, ns, in)
}

func (s *stubPortfolioService) Update(ctx context.Context, ns, id string, in ports.ProjectInput) (*domain.PortfolioProject, error) {
	return s.updateFn(ctx, ns, id, in)
}

func (s *stubPortfolioService) Delete(ctx context.Context, ns, id string) error {
	return s.deleteFn(ctx, ns, id)
}

func (s *stubPortfolioService) Stats(ctx context.Context, ns string) domain.PortfolioStats {
	return domain.ComputePortfolioStats(s.listFn(ctx, ns))
}

type stubDirectoryService struct {
	mentorsFn func(ctx context.Context, f domain.MentorFilter) []domain.Mentor
	connectFn func(ctx context.Context, ns, mentorID string) error
	connected []domain.Mentor
}

func (s *stubDirectoryService) Roles(context.Context) []domain.RoleCard { return nil }

func (s *stubDirectoryService) Mentors(ctx context.Context, f domain.MentorFilter) []domain.Mentor {
	return s.mentorsFn(ctx, f)
}

func (s *stubDirectoryService) Connect(ctx context.Context, ns, mentorID string) error {
	return s.connectFn(ctx, ns, mentorID)
}

func (s *stubDirectoryService) Connected(context.Context, string) []domain.Mentor {
	return s.connected
}

type stubAssessmentService struct {
	submitFn  func(ctx context.Context, ns string, in domain.AssessmentInput) (*domain.Assessment, error)
	currentFn func(ctx context.Context, ns string) (*domain.Assessment, error)
}

func (s *stubAssessmentService) Submit(ctx context.Context, ns string, in domain.AssessmentInput) (*domain.Assessment, error) {
	return s.submitFn(ctx, ns, in)
}

func (s *stubAssessmentService) Current(ctx context.Context, ns string) (*domain.Assessment, error) {
	return s.currentFn(ctx, ns)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
