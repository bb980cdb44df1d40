package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
)

type directoryService struct {
	catalog ports.Catalog
	docs    documents
	log     zerolog.Logger
}

// NewDirectoryService serves role cards and mentors and records mentor
// connection requests per session.
func NewDirectoryService(catalog ports.Catalog, kv ports.KVStore, log zerolog.Logger) ports.DirectoryService {
	return &directoryService{catalog: catalog, docs: documents{kv: kv, log: log}, log: log}
}

func (s *directoryService) Roles(_ context.Context) []domain.RoleCard {
	return s.catalog.Roles()
}

func (s *directoryService) Mentors(_ context.Context, f domain.MentorFilter) []domain.Mentor {
	expertise := strings.ToLower(strings.TrimSpace(f.Expertise))
	out := []domain.Mentor{}
	for _, m := range s.catalog.Mentors() {
		if f.MaxHourlyRate > 0 && m.HourlyRate > f.MaxHourlyRate {
			continue
		}
		if expertise != "" && !slices.ContainsFunc(m.Expertise, func(e string) bool {
			return strings.Contains(strings.ToLower(e), expertise)
		}) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Connect records a mentorship request. Repeated requests are no-ops.
func (s *directoryService) Connect(ctx context.Context, ns, mentorID string) error {
	if _, ok := s.mentor(mentorID); !ok {
		return fmt.Errorf("connect mentor %s: %w", mentorID, domain.ErrMentorNotFound)
	}

	ids, _, err := loadDoc[[]string](ctx, s.docs, ns, docMentors)
	if err != nil {
		return fmt.Errorf("connect mentor: %w", err)
	}
	if slices.Contains(ids, mentorID) {
		return nil
	}
	ids = append(ids, mentorID)
	if err := s.docs.save(ctx, ns, docMentors, ids, 0); err != nil {
		return fmt.Errorf("connect mentor: %w", err)
	}

	s.log.Info().Str("namespace", ns).Str("mentor_id", mentorID).Msg("mentorship requested")
	return nil
}

// Connected lists requested mentors in request order.
func (s *directoryService) Connected(ctx context.Context, ns string) []domain.Mentor {
	ids, _, _ := loadDoc[[]string](ctx, s.docs, ns, docMentors)
	out := make([]domain.Mentor, 0, len(ids))
	for _, id := range ids {
		if m, ok := s.mentor(id); ok {
			out = append(out, m)
		}
	}
	return out
}

func (s *directoryService) mentor(id string) (domain.Mentor, bool) {
	for _, m := range s.catalog.Mentors() {
		if m.ID == id {
			return m, true
		}
	}
	return domain.Mentor{}, false
}
