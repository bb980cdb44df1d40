package service

import (
	"context"
	"math"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
)

type dashboardService struct {
	catalog  ports.Catalog
	progress ports.ProgressService
}

func NewDashboardService(catalog ports.Catalog, progress ports.ProgressService) ports.DashboardService {
	return &dashboardService{catalog: catalog, progress: progress}
}

// Summary aggregates progress for every stored role that still has a roadmap.
func (s *dashboardService) Summary(ctx context.Context, ns string) domain.Dashboard {
	d := domain.Dashboard{
		Roles:      []domain.RoleProgress{},
		TotalHours: s.progress.GetTotalHoursInvested(ctx, ns),
	}

	percentSum := 0
	for _, rec := range s.progress.ListProgress(ctx, ns) {
		rm, ok := s.catalog.Roadmap(rec.RoleKey)
		if !ok {
			continue
		}

		completed, inStage := 0, 0
		for _, id := range rec.CompletedMilestones {
			if !rm.HasMilestone(id) {
				continue
			}
			completed++
			if stage, _, _ := domain.ParseMilestoneID(id); stage == rec.Stage {
				inStage++
			}
		}
		total := rm.TotalMilestones()
		row := domain.RoleProgress{
			RoleKey:             rec.RoleKey,
			Title:               rm.Title,
			Stage:               rec.Stage,
			CompletedMilestones: completed,
			TotalMilestones:     total,
			Percent:             domain.CalculateProgressPercentage(completed, total),
			HoursRemaining:      domain.TimeEstimate(rec.Stage, inStage),
		}
		d.Roles = append(d.Roles, row)
		d.TotalMilestonesCompleted += completed
		percentSum += row.Percent
	}

	if n := len(d.Roles); n > 0 {
		d.OverallProgress = int(math.Round(float64(percentSum) / float64(n)))
	}
	return d
}
