package domain

import (
	"strings"
	"time"
)

// ExperienceLevel is the self-reported seniority collected by the wizard.
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

var experienceLevels = []ExperienceLevel{LevelBeginner, LevelIntermediate, LevelAdvanced}

// ParseExperienceLevel maps an enum value or a wizard label such as
// "Beginner - Just Starting Out" to its ExperienceLevel.
func ParseExperienceLevel(raw string) (ExperienceLevel, bool) {
	s := strings.ToLower(raw)
	for _, lvl := range experienceLevels {
		if strings.Contains(s, string(lvl)) {
			return lvl, true
		}
	}
	return "", false
}

// IsBeginner reports whether the level mentions "beginner".
func (l ExperienceLevel) IsBeginner() bool {
	return strings.Contains(strings.ToLower(string(l)), string(LevelBeginner))
}

// LearningStyle is optional and free-form; the wizard offers the values below.
type LearningStyle string

const (
	StyleHandsOn   LearningStyle = "hands-on"
	StyleVisual    LearningStyle = "visual"
	StyleReading   LearningStyle = "reading"
	StyleMentoring LearningStyle = "mentoring"
)

// Assessment is the profile emitted once per wizard completion.
// Treat it as immutable; use Clone before handing it to code that may mutate.
type Assessment struct {
	Name            string          `json:"name,omitempty"`
	CurrentField    string          `json:"currentField"`
	CareerGoal      string          `json:"careerGoal,omitempty"`
	SelectedSkills  []string        `json:"selectedSkills"`
	Interests       []string        `json:"interests"`
	LearningStyle   LearningStyle   `json:"learningStyle,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// AssessmentInput is untrusted wizard input.
type AssessmentInput struct {
	Name            string   `json:"name"`
	CurrentField    string   `json:"currentField"    validate:"required"`
	CareerGoal      string   `json:"careerGoal"`
	SelectedSkills  []string `json:"selectedSkills"  validate:"min=1"`
	Interests       []string `json:"interests"`
	LearningStyle   string   `json:"learningStyle"`
	ExperienceLevel string   `json:"experienceLevel" validate:"required,experience_level"`
}

var assessmentValidator = NewValidator()

// NewAssessment validates in and builds an Assessment. Every missing or
// invalid field is reported in a single *ValidationError.
func NewAssessment(in AssessmentInput) (*Assessment, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.CurrentField = strings.TrimSpace(in.CurrentField)
	in.CareerGoal = strings.TrimSpace(in.CareerGoal)
	in.LearningStyle = strings.TrimSpace(in.LearningStyle)
	in.ExperienceLevel = strings.TrimSpace(in.ExperienceLevel)
	in.SelectedSkills = UniqueStrings(in.SelectedSkills)
	in.Interests = UniqueStrings(in.Interests)

	if err := assessmentValidator.Struct(in); err != nil {
		return nil, ValidationErrorFrom(err)
	}

	level, _ := ParseExperienceLevel(in.ExperienceLevel)
	return &Assessment{
		Name:            in.Name,
		CurrentField:    in.CurrentField,
		CareerGoal:      in.CareerGoal,
		SelectedSkills:  in.SelectedSkills,
		Interests:       in.Interests,
		LearningStyle:   LearningStyle(in.LearningStyle),
		ExperienceLevel: level,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// Clone returns a deep copy.
func (a *Assessment) Clone() *Assessment {
	if a == nil {
		return nil
	}
	c := *a
	c.SelectedSkills = append([]string(nil), a.SelectedSkills...)
	c.Interests = append([]string(nil), a.Interests...)
	return &c
}

// mentions reports whether the current field or any interest contains one
// of the keywords, case-insensitively.
func (a *Assessment) mentions(keywords ...string) bool {
	haystack := append([]string{a.CurrentField}, a.Interests...)
	for _, h := range haystack {
		h = strings.ToLower(h)
		for _, k := range keywords {
			if strings.Contains(h, k) {
				return true
			}
		}
	}
	return false
}

// UniqueStrings trims entries and drops blanks and duplicates, keeping
// first-seen order.
func UniqueStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
