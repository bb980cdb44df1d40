package service

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/futureproof/careerguide/internal/core/domain"
)

func TestDashboardService_Summary(t *testing.T) {
	progress := NewProgressService(newStubKV(), nopLog())
	svc := NewDashboardService(testCatalog(), progress)
	ctx := context.Background()

	empty := svc.Summary(ctx, testNS)
	if len(empty.Roles) != 0 || empty.OverallProgress != 0 || empty.TotalHours != 0 {
		t.Fatalf("expected empty dashboard, got %+v", empty)
	}

	_ = progress.SaveMilestone(ctx, testNS, "data-analyst", 0, "0-0")
	_ = progress.SaveMilestone(ctx, testNS, "data-analyst", 0, "0-1")
	_ = progress.SaveMilestone(ctx, testNS, "data-analyst", 0, "7-7")
	_ = progress.SaveMilestone(ctx, testNS, "astronaut", 0, "0-0")
	_ = progress.LogSession(ctx, testNS, "data-analyst", 1.5, "")
	_ = progress.LogSession(ctx, testNS, "data-analyst", 2, "")

	got := svc.Summary(ctx, testNS)
	want := domain.Dashboard{
		Roles: []domain.RoleProgress{{
			RoleKey:             "data-analyst",
			Title:               "Data Analyst",
			Stage:               0,
			CompletedMilestones: 2,
			TotalMilestones:     9,
			Percent:             22,
			HoursRemaining:      5,
		}},
		TotalMilestonesCompleted: 2,
		OverallProgress:          22,
		TotalHours:               3.5,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("dashboard mismatch (-want +got):\n%s", diff)
	}
}
