package store

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"

	"ferromart/internal/backend"
	"ferromart/internal/domain"
	applog "ferromart/internal/log"
)

// SessionStore holds the logged-in profile and mirrors it to the state
// table. The persisted session has no expiry and is never revalidated
// against the backend.
type SessionStore struct {
	mu         sync.RWMutex
	db         *sqlx.DB
	api        *backend.Client
	adminEmail string
	user       *domain.UserProfile
}

func NewSessionStore(db *sqlx.DB, api *backend.Client, adminEmail string) *SessionStore {
	s := &SessionStore{db: db, api: api, adminEmail: adminEmail}
	s.restore()
	return s
}

func (s *SessionStore) restore() {
	raw, ok, err := loadValue(s.db, userKey)
	if err != nil {
		applog.Error(nil, "session.state.load", err, nil)
		return
	}
	if !ok {
		return
	}
	var p domain.UserProfile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		applog.Error(nil, "session.state.parse", err, nil)
		return
	}
	s.user = &p
}

// Login sends the credentials to the backend and, on success, persists
// and returns the mapped profile. Any failure (transport, non-2xx,
// malformed body) yields nil; callers distinguish success only by
// whether a profile came back.
func (s *SessionStore) Login(ctx context.Context, email, password string) *domain.UserProfile {
	cl, err := s.api.Login(ctx, email, password)
	if err != nil || cl.ID == 0 {
		applog.Error(nil, "session.login", err, map[string]any{"email": email})
		return nil
	}

	name := cl.Name
	if name == "" {
		name = "Customer"
	}
	p := &domain.UserProfile{
		ID:    cl.ID,
		Email: cl.Email,
		Name:  name,
		// UI hint only; the backend re-checks privileges on every call.
		IsAdmin: strings.EqualFold(email, s.adminEmail),
	}

	s.mu.Lock()
	s.user = p
	if b, err := json.Marshal(p); err == nil {
		if err := saveValue(s.db, userKey, string(b)); err != nil {
			applog.Error(nil, "session.state.save", err, nil)
		}
	}
	s.mu.Unlock()
	return p
}

// Logout clears the in-memory and persisted profile.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if err := deleteValue(s.db, userKey); err != nil {
		applog.Error(nil, "session.state.clear", err, nil)
	}
}

// Current returns the active profile, or nil when nobody is logged in.
func (s *SessionStore) Current() *domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}
