package domain

// MatchBadge labels how well a role fits the assessment.
type MatchBadge string

const (
	BadgeHighMatch  MatchBadge = "High Match"
	BadgeGreatFit   MatchBadge = "Great Fit"
	BadgeGoodOption MatchBadge = "Good Option"
	BadgeGoodFit    MatchBadge = "Good Fit"
)

type RoleRecommendation struct {
	Title       string     `json:"title"       yaml:"title"`
	Badge       MatchBadge `json:"badge"       yaml:"badge"`
	Description string     `json:"description" yaml:"description"`
	WhyGoodFit  string     `json:"whyGoodFit"  yaml:"whyGoodFit"`
	NextSteps   []string   `json:"nextSteps"   yaml:"nextSteps"`
}

func (r RoleRecommendation) clone() RoleRecommendation {
	r.NextSteps = append([]string(nil), r.NextSteps...)
	return r
}

// RecommendationCatalog is the data the resolver works from.
// Base slot 0 is replaced by DesignVariant and slot 1 by DataVariant.
type RecommendationCatalog struct {
	Base             []RoleRecommendation `yaml:"base"`
	DesignVariant    RoleRecommendation   `yaml:"designVariant"`
	DataVariant      RoleRecommendation   `yaml:"dataVariant"`
	Fallback         []RoleRecommendation `yaml:"fallback"`
	FoundationalStep string               `yaml:"foundationalStep"`
}

const (
	designSlot = 0
	dataSlot   = 1
)

// Outcome tags a RecommendationResult.
type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeDegraded Outcome = "degraded"
	OutcomeFailed   Outcome = "failed"
)

// RecommendationResult is exactly one of ok, degraded or failed.
// Assessment is only set for ok results; Reason only for the other two.
type RecommendationResult struct {
	Outcome         Outcome              `json:"outcome"`
	Recommendations []RoleRecommendation `json:"recommendations,omitempty"`
	Assessment      *Assessment          `json:"assessment,omitempty"`
	Reason          string               `json:"reason,omitempty"`
}

func OkResult(recs []RoleRecommendation, a *Assessment) RecommendationResult {
	return RecommendationResult{Outcome: OutcomeOK, Recommendations: recs, Assessment: a}
}

func DegradedResult(recs []RoleRecommendation, reason string) RecommendationResult {
	return RecommendationResult{Outcome: OutcomeDegraded, Recommendations: recs, Reason: reason}
}

func FailedResult(reason string) RecommendationResult {
	return RecommendationResult{Outcome: OutcomeFailed, Reason: reason}
}

// Resolve maps an assessment onto the catalog. It never mutates the catalog.
func Resolve(catalog *RecommendationCatalog, a *Assessment) ([]RoleRecommendation, error) {
	if catalog == nil || len(catalog.Base) <= dataSlot {
		return nil, ErrCatalogIncomplete
	}

	recs := cloneAll(catalog.Base)
	if a.mentions("design") {
		recs[designSlot] = catalog.DesignVariant.clone()
	}
	if a.mentions("data", "analytics") {
		recs[dataSlot] = catalog.DataVariant.clone()
	}
	if a.ExperienceLevel.IsBeginner() {
		recs = AdjustForBeginner(recs, catalog.FoundationalStep)
	}
	return recs, nil
}

// AdjustForBeginner returns copies whose next steps are the foundational
// step followed by the first two original steps.
func AdjustForBeginner(recs []RoleRecommendation, foundational string) []RoleRecommendation {
	out := make([]RoleRecommendation, len(recs))
	for i, r := range recs {
		steps := []string{foundational}
		steps = append(steps, r.NextSteps[:min(2, len(r.NextSteps))]...)
		r.NextSteps = steps
		out[i] = r
	}
	return out
}

// FallbackSet returns a copy of the demo recommendations.
func (c *RecommendationCatalog) FallbackSet() []RoleRecommendation {
	if c == nil {
		return nil
	}
	return cloneAll(c.Fallback)
}

func cloneAll(recs []RoleRecommendation) []RoleRecommendation {
	out := make([]RoleRecommendation, len(recs))
	for i, r := range recs {
		out[i] = r.clone()
	}
	return out
}
