package ports

import "github.com/futureproof/careerguide/internal/core/domain"

// Catalog is the read-only reference data shipped with the service.
type Catalog interface {
	Recommendations() *domain.RecommendationCatalog
	// Roadmap looks up a normalized role key.
	Roadmap(key string) (*domain.Roadmap, bool)
	Roles() []domain.RoleCard
	Mentors() []domain.Mentor
}
