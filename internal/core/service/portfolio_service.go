package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
)

type portfolioService struct {
	docs     documents
	validate *validator.Validate
	newID    func() string
	log      zerolog.Logger
}

func NewPortfolioService(kv ports.KVStore, log zerolog.Logger) ports.PortfolioService {
	return &portfolioService{
		docs:     documents{kv: kv, log: log},
		validate: domain.NewValidator(),
		newID:    uuid.NewString,
		log:      log,
	}
}

// List returns the stored projects, or the demo projects when the session
// has never saved a portfolio.
func (s *portfolioService) List(ctx context.Context, ns string) []domain.PortfolioProject {
	projects, _ := s.load(ctx, ns)
	return projects
}

// load is List for writers: a failed or corrupt read is returned instead of
// falling back to the demo projects.
func (s *portfolioService) load(ctx context.Context, ns string) ([]domain.PortfolioProject, error) {
	projects, ok, err := loadDoc[[]domain.PortfolioProject](ctx, s.docs, ns, docPortfolio)
	switch {
	case err != nil:
		return domain.DemoProjects(), err
	case !ok:
		return domain.DemoProjects(), nil
	case projects == nil:
		return []domain.PortfolioProject{}, nil
	}
	return projects, nil
}

func (s *portfolioService) Create(ctx context.Context, ns string, in ports.ProjectInput) (*domain.PortfolioProject, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("create project: %w", domain.ValidationErrorFrom(err))
	}

	projects, err := s.load(ctx, ns)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	p := projectFromInput(s.newID(), in)
	projects = append(projects, p)
	if err := s.docs.save(ctx, ns, docPortfolio, projects, 0); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.log.Info().Str("namespace", ns).Str("project_id", p.ID).Msg("portfolio project created")
	return &p, nil
}

func (s *portfolioService) Update(ctx context.Context, ns, id string, in ports.ProjectInput) (*domain.PortfolioProject, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("update project: %w", domain.ValidationErrorFrom(err))
	}

	projects, err := s.load(ctx, ns)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	i := slices.IndexFunc(projects, func(p domain.PortfolioProject) bool { return p.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("update project %s: %w", id, domain.ErrProjectNotFound)
	}
	projects[i] = projectFromInput(id, in)

	if err := s.docs.save(ctx, ns, docPortfolio, projects, 0); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return &projects[i], nil
}

func (s *portfolioService) Delete(ctx context.Context, ns, id string) error {
	projects, err := s.load(ctx, ns)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	i := slices.IndexFunc(projects, func(p domain.PortfolioProject) bool { return p.ID == id })
	if i < 0 {
		return fmt.Errorf("delete project %s: %w", id, domain.ErrProjectNotFound)
	}
	projects = slices.Delete(projects, i, i+1)

	if err := s.docs.save(ctx, ns, docPortfolio, projects, 0); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func (s *portfolioService) Stats(ctx context.Context, ns string) domain.PortfolioStats {
	return domain.ComputePortfolioStats(s.List(ctx, ns))
}

func projectFromInput(id string, in ports.ProjectInput) domain.PortfolioProject {
	return domain.PortfolioProject{
		ID:           id,
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Role:         strings.TrimSpace(in.Role),
		Skills:       domain.UniqueStrings(in.Skills),
		Duration:     strings.TrimSpace(in.Duration),
		Status:       domain.ProjectStatus(in.Status),
		Link:         strings.TrimSpace(in.Link),
		Achievements: domain.UniqueStrings(in.Achievements),
	}
}
