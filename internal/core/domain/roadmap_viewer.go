package domain

import (
	"context"
	"errors"
	"slices"
	"sync"
)

type ViewerPhase string

const (
	PhaseLoading  ViewerPhase = "loading"
	PhaseFound    ViewerPhase = "found"
	PhaseNotFound ViewerPhase = "not_found"
)

// RoadmapLookup resolves the roadmap a viewer displays. It may block.
type RoadmapLookup func(ctx context.Context) (*Roadmap, error)

// RoadmapViewer tracks the active stage and completed milestones for one
// roadmap. It starts in PhaseLoading and moves to PhaseFound or
// PhaseNotFound once Load resolves. Safe for concurrent use.
type RoadmapViewer struct {
	mu        sync.RWMutex
	phase     ViewerPhase
	roadmap   *Roadmap
	active    int
	completed map[string]struct{}
}

// ViewerSnapshot is a point-in-time copy of a viewer's state.
type ViewerSnapshot struct {
	Phase               ViewerPhase `json:"phase"`
	Roadmap             *Roadmap    `json:"roadmap,omitempty"`
	ActiveStage         int         `json:"activeStage"`
	CompletedMilestones []string    `json:"completedMilestones"`
	ProgressPercent     int         `json:"progressPercent"`
}

// NewRoadmapViewer returns a loading viewer seeded with previously
// completed milestone ids.
func NewRoadmapViewer(completed []string) *RoadmapViewer {
	v := &RoadmapViewer{phase: PhaseLoading, completed: make(map[string]struct{}, len(completed))}
	for _, id := range completed {
		v.completed[id] = struct{}{}
	}
	return v
}

// Load runs lookup and settles the phase. ErrRoadmapNotFound moves the viewer
// to PhaseNotFound; any other error leaves it loading and is returned.
func (v *RoadmapViewer) Load(ctx context.Context, lookup RoadmapLookup) error {
	rm, err := lookup(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	switch {
	case errors.Is(err, ErrRoadmapNotFound) || (err == nil && rm == nil):
		v.phase = PhaseNotFound
		v.roadmap = nil
	case err != nil:
		return err
	default:
		v.phase = PhaseFound
		v.roadmap = rm
		v.active = 0
	}
	return nil
}

func (v *RoadmapViewer) Phase() ViewerPhase {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.phase
}

func (v *RoadmapViewer) ActiveStage() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.active
}

// Next advances the active stage. It reports false at the last stage or
// when no roadmap is loaded.
func (v *RoadmapViewer) Next() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.phase != PhaseFound || v.active >= len(v.roadmap.Stages)-1 {
		return false
	}
	v.active++
	return true
}

// Previous moves back one stage. It reports false at stage 0.
func (v *RoadmapViewer) Previous() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.phase != PhaseFound || v.active == 0 {
		return false
	}
	v.active--
	return true
}

// SetActiveStage jumps to stage, clamped to the roadmap bounds.
func (v *RoadmapViewer) SetActiveStage(stage int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.phase != PhaseFound {
		return
	}
	v.active = max(0, min(stage, len(v.roadmap.Stages)-1))
}

// ToggleMilestone flips completion of the milestone and reports whether it
// is now complete. Ids outside the loaded roadmap are ignored.
func (v *RoadmapViewer) ToggleMilestone(stage, milestone int) (completed bool, ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	id := MilestoneID(stage, milestone)
	if v.phase != PhaseFound || !v.roadmap.HasMilestone(id) {
		return false, false
	}
	if _, done := v.completed[id]; done {
		delete(v.completed, id)
		return false, true
	}
	v.completed[id] = struct{}{}
	return true, true
}

func (v *RoadmapViewer) IsCompleted(stage, milestone int) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.completed[MilestoneID(stage, milestone)]
	return ok
}

// ProgressPercent is the rounded share of completed milestones across all
// stages, 0 when nothing is loaded.
func (v *RoadmapViewer) ProgressPercent() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.progressLocked()
}

func (v *RoadmapViewer) progressLocked() int {
	if v.roadmap == nil {
		return 0
	}
	done := 0
	for id := range v.completed {
		if v.roadmap.HasMilestone(id) {
			done++
		}
	}
	return CalculateProgressPercentage(done, v.roadmap.TotalMilestones())
}

func (v *RoadmapViewer) Snapshot() ViewerSnapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	ids := make([]string, 0, len(v.completed))
	for id := range v.completed {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ViewerSnapshot{
		Phase:               v.phase,
		Roadmap:             v.roadmap,
		ActiveStage:         v.active,
		CompletedMilestones: ids,
		ProgressPercent:     v.progressLocked(),
	}
}
