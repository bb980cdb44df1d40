package ports

import (
	"context"

	"github.com/futureproof/careerguide/internal/core/domain"
)

type SessionService interface {
	Issue(ctx context.Context) (*domain.Session, error)
	// Parse validates a bearer token and returns the session it names.
	Parse(token string) (*domain.Session, error)
}

type AssessmentService interface {
	Submit(ctx context.Context, ns string, in domain.AssessmentInput) (*domain.Assessment, error)
	// Current returns nil when the session has not completed the wizard.
	Current(ctx context.Context, ns string) (*domain.Assessment, error)
}

type RecommendationService interface {
	Recommend(ctx context.Context, in domain.AssessmentInput) domain.RecommendationResult
}

type RoadmapService interface {
	GetRoadmap(ctx context.Context, roleKey string) (*domain.Roadmap, error)
	View(ctx context.Context, ns, roleKey string) (domain.ViewerSnapshot, error)
	ToggleMilestone(ctx context.Context, ns, roleKey, milestoneID string) (domain.ViewerSnapshot, error)
	SetStage(ctx context.Context, ns, roleKey string, stage int) (domain.ViewerSnapshot, error)
}

type ProgressService interface {
	SaveMilestone(ctx context.Context, ns, roleKey string, stage int, milestoneID string) error
	RemoveMilestone(ctx context.Context, ns, roleKey, milestoneID string) error
	SetStage(ctx context.Context, ns, roleKey string, stage int) error
	// GetProgress returns nil when the role has no record.
	GetProgress(ctx context.Context, ns, roleKey string) *domain.ProgressRecord
	ListProgress(ctx context.Context, ns string) []domain.ProgressRecord
	LogSession(ctx context.Context, ns, roleKey string, hours float64, notes string) error
	GetTotalHoursInvested(ctx context.Context, ns string) float64
}

// ProjectInput is the user-editable part of a portfolio project.
type ProjectInput struct {
	Title        string   `json:"title"        validate:"required"`
	Description  string   `json:"description"`
	Role         string   `json:"role"         validate:"required"`
	Skills       []string `json:"skills"`
	Duration     string   `json:"duration"`
	Status       string   `json:"status"       validate:"required,oneof=completed in-progress planned"`
	Link         string   `json:"link"         validate:"omitempty,url"`
	Achievements []string `json:"achievements"`
}

type PortfolioService interface {
	List(ctx context.Context, ns string) []domain.PortfolioProject
	Create(ctx context.Context, ns string, in ProjectInput) (*domain.PortfolioProject, error)
	Update(ctx context.Context, ns, id string, in ProjectInput) (*domain.PortfolioProject, error)
	Delete(ctx context.Context, ns, id string) error
	Stats(ctx context.Context, ns string) domain.PortfolioStats
}

type DashboardService interface {
	Summary(ctx context.Context, ns string) domain.Dashboard
}

type DirectoryService interface {
	Roles(ctx context.Context) []domain.RoleCard
	Mentors(ctx context.Context, filter domain.MentorFilter) []domain.Mentor
	Connect(ctx context.Context, ns, mentorID string) error
	Connected(ctx context.Context, ns string) []domain.Mentor
}

type ChatService interface {
	Ask(ctx context.Context, history []domain.ChatTurn, profile *domain.UserProfile) (string, error)
}
