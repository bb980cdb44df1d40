package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
	"github.com/futureproof/careerguide/internal/pkg/metrics"
)

// Document names stored per session namespace.
const (
	docAssessment = "userAssessment"
	docProgress   = "progressData"
	docSessions   = "learningSessions"
	docPortfolio  = "portfolioProjects"
	docMentors    = "myMentors"
)

// StorageKey returns the backend key for a session document.
// Key format: fp:<namespace>:<name>
func StorageKey(ns, name string) string {
	return fmt.Sprintf("fp:%s:%s", ns, name)
}

// documents reads and writes whole JSON documents for a session.
type documents struct {
	kv  ports.KVStore
	log zerolog.Logger
}

// loadDoc decodes the named document. An unreadable or corrupt document is
// logged, counted and reported as domain.ErrStorageUnavailable with
// found=false. Readers treat that as absence; read-modify-write callers
// must stop before saving so stored data is never replaced by an empty one.
func loadDoc[T any](ctx context.Context, d documents, ns, name string) (T, bool, error) {
	var zero T
	raw, found, err := d.kv.Get(ctx, StorageKey(ns, name))
	if err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("read").Inc()
		d.log.Warn().Err(err).Str("namespace", ns).Str("doc", name).Msg("storage read failed")
		return zero, false, fmt.Errorf("read %s: %w", name, domain.ErrStorageUnavailable)
	}
	if !found {
		return zero, false, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("decode").Inc()
		d.log.Warn().Err(err).Str("namespace", ns).Str("doc", name).Msg("corrupt document")
		return zero, false, fmt.Errorf("decode %s: %w", name, domain.ErrStorageUnavailable)
	}
	return v, true, nil
}

// save replaces the named document. Backend failures surface as
// domain.ErrStorageUnavailable.
func (d documents) save(ctx context.Context, ns, name string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := d.kv.Set(ctx, StorageKey(ns, name), raw, ttl); err != nil {
		metrics.StorageErrorsTotal.WithLabelValues("write").Inc()
		d.log.Error().Err(err).Str("namespace", ns).Str("doc", name).Msg("storage write failed")
		return fmt.Errorf("save %s: %w", name, domain.ErrStorageUnavailable)
	}
	return nil
}

func invalidField(field, msg string) error {
	return &domain.ValidationError{Fields: []domain.FieldError{{Field: field, Message: msg}}}
}
