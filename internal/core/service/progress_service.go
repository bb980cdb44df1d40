package service

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
)

type progressService struct {
	docs documents
	now  func() time.Time
	log  zerolog.Logger
}

// NewProgressService returns a ProgressService over kv.
func NewProgressService(kv ports.KVStore, log zerolog.Logger) ports.ProgressService {
	return &progressService{
		docs: documents{kv: kv, log: log},
		now:  func() time.Time { return time.Now().UTC() },
		log:  log,
	}
}

type progressDoc map[string]domain.ProgressRecord

// load returns the stored progress document. Readers may ignore the error
// and use the empty document; writers must not.
func (s *progressService) load(ctx context.Context, ns string) (progressDoc, error) {
	doc, _, err := loadDoc[progressDoc](ctx, s.docs, ns, docProgress)
	if err != nil || doc == nil {
		return progressDoc{}, err
	}
	return doc, nil
}

// SaveMilestone marks a milestone complete, creating the role's record at
// the given stage on first use.
func (s *progressService) SaveMilestone(ctx context.Context, ns, roleKey string, stage int, milestoneID string) error {
	if err := checkMilestoneArgs(roleKey, stage, milestoneID); err != nil {
		return err
	}
	roleKey = domain.NormalizeRoleKey(roleKey)

	doc, err := s.load(ctx, ns)
	if err != nil {
		return fmt.Errorf("save milestone: %w", err)
	}
	rec, ok := doc[roleKey]
	if !ok {
		rec = domain.ProgressRecord{RoleKey: roleKey, Stage: stage, CompletedMilestones: []string{}}
	}
	rec.AddMilestone(milestoneID)
	rec.LastUpdated = s.now()
	doc[roleKey] = rec

	if err := s.docs.save(ctx, ns, docProgress, doc, 0); err != nil {
		return fmt.Errorf("save milestone: %w", err)
	}
	return nil
}

// RemoveMilestone clears a milestone. Removing an absent milestone is a no-op.
func (s *progressService) RemoveMilestone(ctx context.Context, ns, roleKey, milestoneID string) error {
	roleKey = domain.NormalizeRoleKey(roleKey)
	doc, err := s.load(ctx, ns)
	if err != nil {
		return fmt.Errorf("remove milestone: %w", err)
	}
	rec, ok := doc[roleKey]
	if !ok || !rec.RemoveMilestone(milestoneID) {
		return nil
	}
	rec.LastUpdated = s.now()
	doc[roleKey] = rec

	if err := s.docs.save(ctx, ns, docProgress, doc, 0); err != nil {
		return fmt.Errorf("remove milestone: %w", err)
	}
	return nil
}

func (s *progressService) SetStage(ctx context.Context, ns, roleKey string, stage int) error {
	if strings.TrimSpace(roleKey) == "" {
		return invalidField("roleKey", "roleKey is required")
	}
	if stage < 0 {
		return invalidField("stage", "stage must be at least 0")
	}
	roleKey = domain.NormalizeRoleKey(roleKey)

	doc, err := s.load(ctx, ns)
	if err != nil {
		return fmt.Errorf("set stage: %w", err)
	}
	rec, ok := doc[roleKey]
	if !ok {
		rec = domain.ProgressRecord{RoleKey: roleKey, CompletedMilestones: []string{}}
	}
	rec.Stage = stage
	rec.LastUpdated = s.now()
	doc[roleKey] = rec

	if err := s.docs.save(ctx, ns, docProgress, doc, 0); err != nil {
		return fmt.Errorf("set stage: %w", err)
	}
	return nil
}

func (s *progressService) GetProgress(ctx context.Context, ns, roleKey string) *domain.ProgressRecord {
	roleKey = domain.NormalizeRoleKey(roleKey)
	doc, _ := s.load(ctx, ns)
	rec, ok := doc[roleKey]
	if !ok {
		return nil
	}
	rec.RoleKey = roleKey
	return &rec
}

// ListProgress returns every record ordered by role key.
func (s *progressService) ListProgress(ctx context.Context, ns string) []domain.ProgressRecord {
	doc, _ := s.load(ctx, ns)
	out := make([]domain.ProgressRecord, 0, len(doc))
	for key, rec := range doc {
		rec.RoleKey = key
		out = append(out, rec)
	}
	slices.SortFunc(out, func(a, b domain.ProgressRecord) int { return strings.Compare(a.RoleKey, b.RoleKey) })
	return out
}

// LogSession appends to the session's study log.
func (s *progressService) LogSession(ctx context.Context, ns, roleKey string, hours float64, notes string) error {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return invalidField("hoursSpent", "hoursSpent must be greater than 0")
	}
	log, _, err := loadDoc[[]domain.LearningSession](ctx, s.docs, ns, docSessions)
	if err != nil {
		return fmt.Errorf("log session: %w", err)
	}
	log = append(log, domain.LearningSession{
		RoleKey:    domain.NormalizeRoleKey(roleKey),
		HoursSpent: hours,
		Notes:      strings.TrimSpace(notes),
		Timestamp:  s.now(),
	})
	if err := s.docs.save(ctx, ns, docSessions, log, 0); err != nil {
		return fmt.Errorf("log session: %w", err)
	}
	return nil
}

// GetTotalHoursInvested sums the study log; a missing or corrupt log counts as 0.
func (s *progressService) GetTotalHoursInvested(ctx context.Context, ns string) float64 {
	log, _, _ := loadDoc[[]domain.LearningSession](ctx, s.docs, ns, docSessions)
	total := 0.0
	for _, entry := range log {
		total += entry.HoursSpent
	}
	return total
}

func checkMilestoneArgs(roleKey string, stage int, milestoneID string) error {
	v := &domain.ValidationError{}
	if strings.TrimSpace(roleKey) == "" {
		v.Fields = append(v.Fields, domain.FieldError{Field: "roleKey", Message: "roleKey is required"})
	}
	if stage < 0 {
		v.Fields = append(v.Fields, domain.FieldError{Field: "stage", Message: "stage must be at least 0"})
	}
	if strings.TrimSpace(milestoneID) == "" {
		v.Fields = append(v.Fields, domain.FieldError{Field: "milestoneId", Message: "milestoneId is required"})
	} else if _, _, err := domain.ParseMilestoneID(milestoneID); err != nil {
		v.Fields = append(v.Fields, domain.FieldError{Field: "milestoneId", Message: err.Error()})
	}
	if len(v.Fields) > 0 {
		return v
	}
	return nil
}
