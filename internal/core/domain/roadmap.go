package domain

import (
	"fmt"
	"strconv"
	"strings"
)

type Resource struct {
	Title string `json:"title" yaml:"title"`
	Type  string `json:"type"  yaml:"type"`
	Time  string `json:"time"  yaml:"time"`
}

type Stage struct {
	Title       string     `json:"title"       yaml:"title"`
	Duration    string     `json:"duration"    yaml:"duration"`
	Description string     `json:"description" yaml:"description"`
	Items       []string   `json:"items"       yaml:"items"`
	Resources   []Resource `json:"resources"   yaml:"resources"`
	Milestones  []string   `json:"milestones"  yaml:"milestones"`
}

// Roadmap is an ordered learning path for one role.
type Roadmap struct {
	Key    string  `json:"key"    yaml:"key"`
	Title  string  `json:"title"  yaml:"title"`
	Stages []Stage `json:"stages" yaml:"stages"`
}

// TotalMilestones counts milestones across every stage.
func (r *Roadmap) TotalMilestones() int {
	total := 0
	for _, s := range r.Stages {
		total += len(s.Milestones)
	}
	return total
}

// HasMilestone reports whether id addresses a milestone of this roadmap.
func (r *Roadmap) HasMilestone(id string) bool {
	stage, milestone, err := ParseMilestoneID(id)
	if err != nil || stage >= len(r.Stages) {
		return false
	}
	return milestone < len(r.Stages[stage].Milestones)
}

// NormalizeRoleKey lowercases s and joins whitespace-separated words with "-",
// so "Data Analyst" becomes "data-analyst".
func NormalizeRoleKey(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}

// MilestoneID formats the "{stage}-{milestone}" key used in progress records.
func MilestoneID(stage, milestone int) string {
	return strconv.Itoa(stage) + "-" + strconv.Itoa(milestone)
}

// ParseMilestoneID is the inverse of MilestoneID.
func ParseMilestoneID(id string) (stage, milestone int, err error) {
	left, right, ok := strings.Cut(id, "-")
	if !ok {
		return 0, 0, fmt.Errorf("milestone id %q: expected {stage}-{milestone}", id)
	}
	if stage, err = strconv.Atoi(left); err != nil || stage < 0 {
		return 0, 0, fmt.Errorf("milestone id %q: bad stage", id)
	}
	if milestone, err = strconv.Atoi(right); err != nil || milestone < 0 {
		return 0, 0, fmt.Errorf("milestone id %q: bad milestone", id)
	}
	// "00-0" and "+0-0" would alias "0-0".
	if MilestoneID(stage, milestone) != id {
		return 0, 0, fmt.Errorf("milestone id %q: not in canonical form", id)
	}
	return stage, milestone, nil
}
