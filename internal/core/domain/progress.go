package domain

import (
	"math"
	"slices"
	"time"
)

// ProgressRecord is one role's roadmap progress for a session.
type ProgressRecord struct {
	RoleKey             string    `json:"roleKey"`
	Stage               int       `json:"stage"`
	CompletedMilestones []string  `json:"completedMilestones"`
	LastUpdated         time.Time `json:"lastUpdated"`
}

func (p *ProgressRecord) HasMilestone(id string) bool {
	return slices.Contains(p.CompletedMilestones, id)
}

// AddMilestone inserts id and reports whether the set changed.
func (p *ProgressRecord) AddMilestone(id string) bool {
	if p.HasMilestone(id) {
		return false
	}
	p.CompletedMilestones = append(p.CompletedMilestones, id)
	return true
}

// RemoveMilestone deletes id and reports whether the set changed.
func (p *ProgressRecord) RemoveMilestone(id string) bool {
	i := slices.Index(p.CompletedMilestones, id)
	if i < 0 {
		return false
	}
	p.CompletedMilestones = slices.Delete(p.CompletedMilestones, i, i+1)
	return true
}

// LearningSession is an entry of the append-only study log.
type LearningSession struct {
	RoleKey    string    `json:"roleKey"`
	HoursSpent float64   `json:"hoursSpent"`
	Notes      string    `json:"notes,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

const milestonesPerStage = 3

// stageHours is the estimated effort per roadmap stage; stages past the
// end use defaultStageHours.
var stageHours = []int{14, 28, 21}

const defaultStageHours = 14

// CalculateProgressPercentage returns round(100*completed/total), or 0 when
// total is not positive.
func CalculateProgressPercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// TimeEstimate returns the hours left in stage given the milestones already
// completed in it. It never goes below zero.
func TimeEstimate(stage, completed int) int {
	hours := defaultStageHours
	if stage >= 0 && stage < len(stageHours) {
		hours = stageHours[stage]
	}
	remaining := max(milestonesPerStage-completed, 0)
	return int(math.Ceil(float64(hours*remaining) / milestonesPerStage))
}
