package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
	"github.com/futureproof/careerguide/internal/pkg/metrics"
)

type roadmapService struct {
	catalog  ports.Catalog
	progress ports.ProgressService
	log      zerolog.Logger
}

// NewRoadmapService returns a RoadmapService that persists viewer state
// through progress.
func NewRoadmapService(catalog ports.Catalog, progress ports.ProgressService, log zerolog.Logger) ports.RoadmapService {
	return &roadmapService{catalog: catalog, progress: progress, log: log}
}

func (s *roadmapService) GetRoadmap(_ context.Context, roleKey string) (*domain.Roadmap, error) {
	key := domain.NormalizeRoleKey(roleKey)
	rm, ok := s.catalog.Roadmap(key)
	if !ok {
		return nil, fmt.Errorf("get roadmap %q: %w", key, domain.ErrRoadmapNotFound)
	}
	return rm, nil
}

// View returns the viewer for roleKey restored from stored progress.
// An unknown role yields a not_found snapshot rather than an error.
func (s *roadmapService) View(ctx context.Context, ns, roleKey string) (domain.ViewerSnapshot, error) {
	v, err := s.viewer(ctx, ns, roleKey)
	if err != nil {
		return domain.ViewerSnapshot{}, err
	}
	return v.Snapshot(), nil
}

// ToggleMilestone flips one milestone and persists the result.
func (s *roadmapService) ToggleMilestone(ctx context.Context, ns, roleKey, milestoneID string) (domain.ViewerSnapshot, error) {
	stage, milestone, err := domain.ParseMilestoneID(milestoneID)
	if err != nil {
		return domain.ViewerSnapshot{}, invalidField("milestoneId", err.Error())
	}

	v, err := s.viewer(ctx, ns, roleKey)
	if err != nil {
		return domain.ViewerSnapshot{}, err
	}
	if v.Phase() != domain.PhaseFound {
		return v.Snapshot(), fmt.Errorf("toggle milestone: %w", domain.ErrRoadmapNotFound)
	}

	completed, ok := v.ToggleMilestone(stage, milestone)
	if !ok {
		return domain.ViewerSnapshot{}, invalidField("milestoneId", "milestone "+milestoneID+" is not part of this roadmap")
	}

	key := domain.NormalizeRoleKey(roleKey)
	if completed {
		err = s.progress.SaveMilestone(ctx, ns, key, v.ActiveStage(), milestoneID)
		metrics.MilestonesToggledTotal.WithLabelValues("completed").Inc()
	} else {
		err = s.progress.RemoveMilestone(ctx, ns, key, milestoneID)
		metrics.MilestonesToggledTotal.WithLabelValues("reopened").Inc()
	}
	if err != nil {
		return domain.ViewerSnapshot{}, fmt.Errorf("toggle milestone: %w", err)
	}

	s.log.Debug().Str("namespace", ns).Str("role_key", key).Str("milestone", milestoneID).Bool("completed", completed).Msg("milestone toggled")
	return v.Snapshot(), nil
}

// SetStage moves the active stage, clamped to the roadmap, and stores it.
func (s *roadmapService) SetStage(ctx context.Context, ns, roleKey string, stage int) (domain.ViewerSnapshot, error) {
	v, err := s.viewer(ctx, ns, roleKey)
	if err != nil {
		return domain.ViewerSnapshot{}, err
	}
	if v.Phase() != domain.PhaseFound {
		return v.Snapshot(), fmt.Errorf("set stage: %w", domain.ErrRoadmapNotFound)
	}
	v.SetActiveStage(stage)
	if err := s.progress.SetStage(ctx, ns, domain.NormalizeRoleKey(roleKey), v.ActiveStage()); err != nil {
		return domain.ViewerSnapshot{}, fmt.Errorf("set stage: %w", err)
	}
	return v.Snapshot(), nil
}

func (s *roadmapService) viewer(ctx context.Context, ns, roleKey string) (*domain.RoadmapViewer, error) {
	rec := s.progress.GetProgress(ctx, ns, roleKey)

	var completed []string
	if rec != nil {
		completed = rec.CompletedMilestones
	}
	v := domain.NewRoadmapViewer(completed)
	if err := v.Load(ctx, func(ctx context.Context) (*domain.Roadmap, error) {
		return s.GetRoadmap(ctx, roleKey)
	}); err != nil {
		return nil, fmt.Errorf("load roadmap: %w", err)
	}
	if rec != nil {
		v.SetActiveStage(rec.Stage)
	}
	return v, nil
}
