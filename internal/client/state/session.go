package state

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nadocloud/nadoquest/internal/client/models"
	"github.com/nadocloud/nadoquest/internal/client/repositories/records"
)

// SessionNamespace is the persistence namespace of the session snapshot.
const SessionNamespace = "quest-auth"

// sessionRecord is the persisted shape of the session slice.
type sessionRecord struct {
	Token           *string      `json:"token"`
	User            *models.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// SessionStore holds the authentication session. Invariant: the store is
// authenticated exactly when both token and user are present; the three
// fields change together, never individually.
type SessionStore struct {
	mu    sync.RWMutex
	repo  records.Repository
	token string
	user  *models.User
}

// NewSessionStore builds a store rehydrated from the persisted snapshot.
// A missing or corrupt snapshot yields an unauthenticated store; only
// repository failures are returned.
func NewSessionStore(ctx context.Context, repo records.Repository) (*SessionStore, error) {
	s := &SessionStore{repo: repo}

	raw, err := repo.Get(ctx, SessionNamespace)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return s, nil
	}

	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		// Corrupt snapshot: start logged out rather than refuse to start.
		return s, nil
	}
	if rec.IsAuthenticated && rec.Token != nil && rec.User != nil {
		s.token = *rec.Token
		user := *rec.User
		s.user = &user
	}
	return s, nil
}

// SetAuth atomically stores the token and user and persists the snapshot.
func (s *SessionStore) SetAuth(ctx context.Context, token string, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	u := user
	s.user = &u
	return s.save(ctx)
}

// Clear atomically wipes the session and persists the empty snapshot.
func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil
	return s.save(ctx)
}

// Token returns the current access token ("" when logged out). Implements
// the API client's TokenProvider capability.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current user, or nil when logged out.
func (s *SessionStore) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether both token and user are present.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.user != nil
}

// TokenExpiresAt returns the token's "exp" claim without verifying the
// signature. Zero time when there is no token, the token is not a JWT,
// or it carries no expiry.
func (s *SessionStore) TokenExpiresAt() time.Time {
	token := s.Token()
	if token == "" {
		return time.Time{}
	}

	var claims jwt.RegisteredClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// save persists the current slice; callers hold the write lock.
func (s *SessionStore) save(ctx context.Context) error {
	rec := sessionRecord{IsAuthenticated: s.token != "" && s.user != nil}
	if s.token != "" {
		token := s.token
		rec.Token = &token
	}
	if s.user != nil {
		user := *s.user
		rec.User = &user
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, SessionNamespace, raw)
}
