// Package catalog loads the static reference data shipped with the service:
// recommendations, roadmaps, role cards and mentors. The YAML sources are
// embedded at compile time.
package catalog

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/futureproof/careerguide/internal/core/domain"
)

//go:embed data/*.yaml
var dataFiles embed.FS

const (
	recommendationsFile = "recommendations.yaml"
	roadmapsFile        = "roadmaps.yaml"
	rolesFile           = "roles.yaml"
	mentorsFile         = "mentors.yaml"
)

// Catalog is immutable after Load.
type Catalog struct {
	recommendations *domain.RecommendationCatalog
	roadmaps        map[string]*domain.Roadmap
	roles           []domain.RoleCard
	mentors         []domain.Mentor
}

// Load parses the embedded catalog.
func Load() (*Catalog, error) {
	sub, err := fs.Sub(dataFiles, "data")
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return LoadFS(sub)
}

// MustLoad is Load for package initialisation; it panics on a broken build.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// LoadFS parses catalog files from the root of fsys.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{recommendations: &domain.RecommendationCatalog{}}

	if err := decode(fsys, recommendationsFile, c.recommendations); err != nil {
		return nil, err
	}

	var roadmaps []*domain.Roadmap
	if err := decode(fsys, roadmapsFile, &roadmaps); err != nil {
		return nil, err
	}
	c.roadmaps = make(map[string]*domain.Roadmap, len(roadmaps))
	for _, rm := range roadmaps {
		key := domain.NormalizeRoleKey(rm.Key)
		if key == "" {
			key = domain.NormalizeRoleKey(rm.Title)
		}
		if _, dup := c.roadmaps[key]; dup {
			return nil, fmt.Errorf("catalog: duplicate roadmap %q", key)
		}
		rm.Key = key
		c.roadmaps[key] = rm
	}

	if err := decode(fsys, rolesFile, &c.roles); err != nil {
		return nil, err
	}
	for i := range c.roles {
		c.roles[i].Key = domain.NormalizeRoleKey(c.roles[i].Title)
		_, c.roles[i].HasRoadmap = c.roadmaps[c.roles[i].Key]
	}

	if err := decode(fsys, mentorsFile, &c.mentors); err != nil {
		return nil, err
	}
	return c, nil
}

func decode(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", name, err)
	}
	return nil
}

func (c *Catalog) Recommendations() *domain.RecommendationCatalog {
	return c.recommendations
}

func (c *Catalog) Roadmap(key string) (*domain.Roadmap, bool) {
	rm, ok := c.roadmaps[key]
	return rm, ok
}

// RoadmapKeys lists the known roadmaps in sorted order.
func (c *Catalog) RoadmapKeys() []string {
	keys := make([]string, 0, len(c.roadmaps))
	for k := range c.roadmaps {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (c *Catalog) Roles() []domain.RoleCard {
	return slices.Clone(c.roles)
}

func (c *Catalog) Mentors() []domain.Mentor {
	return slices.Clone(c.mentors)
}
