package service

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/blake2b"

	"github.com/futureproof/careerguide/internal/core/domain"
	"github.com/futureproof/careerguide/internal/core/ports"
	"github.com/futureproof/careerguide/internal/pkg/metrics"
)

const DefaultSessionTTL = 24 * time.Hour

type sessionService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	log    zerolog.Logger
}

// NewSessionService issues anonymous HS256 session tokens signed with secret.
func NewSessionService(secret string, ttl time.Duration, log zerolog.Logger) ports.SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &sessionService{secret: []byte(secret), ttl: ttl, now: time.Now, log: log}
}

func (s *sessionService) Issue(_ context.Context) (*domain.Session, error) {
	sid := uuid.NewString()
	exp := s.now().Add(s.ttl)

	claims := jwt.MapClaims{
		"sid": sid,
		"exp": exp.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err := t.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("issue session: %w", err)
	}

	metrics.SessionsIssuedTotal.Inc()
	s.log.Debug().Str("namespace", NamespaceFor(sid)).Msg("session issued")
	return &domain.Session{
		ID:        sid,
		Namespace: NamespaceFor(sid),
		Token:     token,
		ExpiresAt: time.Unix(exp.Unix(), 0).UTC(),
	}, nil
}

func (s *sessionService) Parse(token string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired(), jwt.WithTimeFunc(s.now))
	if err != nil || !tkn.Valid {
		return nil, fmt.Errorf("parse session: %w", domain.ErrSessionInvalid)
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return nil, fmt.Errorf("parse session: missing sid: %w", domain.ErrSessionInvalid)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, fmt.Errorf("parse session: %w", domain.ErrSessionInvalid)
	}
	return &domain.Session{ID: sid, Namespace: NamespaceFor(sid), Token: token, ExpiresAt: exp.UTC()}, nil
}

// NamespaceFor derives the storage namespace for a session id: the first
// 16 bytes of its BLAKE2b-256 digest, hex encoded.
func NamespaceFor(sid string) string {
	sum := blake2b.Sum256([]byte(sid))
	return hex.EncodeToString(sum[:16])
}
