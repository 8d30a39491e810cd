package fobini

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// Keystore entry names for the persisted session. The refresh token slot is
// part of the on-disk layout but nothing writes or reads it today.
const (
	keyAccessToken  = "access_token"
	keyRefreshToken = "refresh_token"
	keyUserData     = "user_data"
)

// CredentialStore persists opaque string secrets in an app-scoped store.
// Implemented by keystore.Store.
type CredentialStore interface {
	// Get returns the named secret; ok is false when it is absent.
	Get(name string) (value string, ok bool, err error)
	// Set stores the named secret, overwriting any previous value.
	Set(name, value string) error
	// Delete removes the named secret. Deleting an absent secret is not an
	// error.
	Delete(name string) error
}

// SessionManager owns the current session: the access token and the cached
// user snapshot, mirrored between memory and the credential store. Every
// mutation writes through to the store immediately; reads hydrate lazily
// from the store on first access. Safe for concurrent use, with
// last-write-wins semantics for racing mutations.
//
// It implements TokenProvider and SessionInvalidator for the Client.
type SessionManager struct {
	store  CredentialStore
	logger *slog.Logger

	mu          sync.Mutex
	token       string
	tokenLoaded bool
	user        *User
}

// NewSessionManager creates a SessionManager backed by the given store.
// logger may be nil, in which case slog.Default() is used.
func NewSessionManager(store CredentialStore, logger *slog.Logger) *SessionManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{store: store, logger: logger}
}

// AccessToken returns the current access token. The second return value is
// false when no session is active.
func (s *SessionManager) AccessToken() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hydrateTokenLocked()
	if s.token == "" {
		return "", false
	}
	return s.token, true
}

// IsLoggedIn reports whether a non-empty access token is retrievable from
// memory or the store.
func (s *SessionManager) IsLoggedIn() bool {
	_, ok := s.AccessToken()
	return ok
}

// SaveSession persists a new session after a successful login or register.
func (s *SessionManager) SaveSession(token string, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Set(keyAccessToken, token); err != nil {
		return err
	}
	s.token = token
	s.tokenLoaded = true

	return s.saveUserLocked(user)
}

// SaveUser replaces the cached user snapshot, e.g. after a profile fetch.
func (s *SessionManager) SaveUser(user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveUserLocked(user)
}

func (s *SessionManager) saveUserLocked(user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.store.Set(keyUserData, string(data)); err != nil {
		return err
	}
	s.user = &user
	return nil
}

// CurrentUser returns the cached user snapshot: memory first, then a
// read-through from the store. Returns nil in the anonymous state. The
// snapshot may be one profile fetch stale.
func (s *SessionManager) CurrentUser() *User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		u := *s.user
		return &u
	}

	raw, ok, err := s.store.Get(keyUserData)
	if err != nil || !ok {
		return nil
	}
	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		s.logger.Warn("stored user data is unreadable", "error", err)
		return nil
	}
	s.user = &user
	u := user
	return &u
}

// ClearSession removes the persisted token, user snapshot, and the refresh
// token slot, returning the manager to the anonymous state. Idempotent;
// called on logout and on any 401 response.
func (s *SessionManager) ClearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range []string{keyAccessToken, keyRefreshToken, keyUserData} {
		if err := s.store.Delete(key); err != nil {
			s.logger.Warn("failed to delete secret", "name", key, "error", err)
		}
	}
	s.token = ""
	s.tokenLoaded = true
	s.user = nil
}

// hydrateTokenLocked reads the token from the store once per process
// lifetime. Callers must hold s.mu.
func (s *SessionManager) hydrateTokenLocked() {
	if s.tokenLoaded {
		return
	}
	s.tokenLoaded = true
	tok, ok, err := s.store.Get(keyAccessToken)
	if err != nil {
		s.logger.Warn("failed to read access token", "error", err)
		return
	}
	if ok {
		s.token = tok
	}
}
