// Package auth holds the client-side credential session: the bearer token and
// the profile of the logged-in user, persisted so a restart reconstructs the
// same state.
package auth

import (
	"context"
	"errors"
	"sync"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"

	"scriptcraft-client/internal/core"
	"scriptcraft-client/internal/storage"
)

// Storage keys, shared with the web client.
const (
	tokenKey    = "token"
	userInfoKey = "userInfo"
)

// Session is the credential session store. The token is authoritative: the
// session counts as logged in exactly when the token is non-empty, whether or
// not a profile is present.
type Session struct {
	mu    sync.RWMutex
	store storage.Store
	token string
	user  *core.UserInfo
}

// NewSession hydrates a session from the durable store. Missing or corrupt
// state degrades to logged-out rather than failing startup.
func NewSession(ctx context.Context, store storage.Store) *Session {
	s := &Session{store: store}

	token, ok, err := store.Get(ctx, tokenKey)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read stored token, starting logged out")
		return s
	}
	if ok {
		s.token = token
	}

	raw, ok, err := store.Get(ctx, userInfoKey)
	if err != nil || !ok {
		return s
	}
	var user core.UserInfo
	if err := sonic.UnmarshalString(raw, &user); err != nil {
		// Token stays authoritative; only the profile is dropped.
		log.Warn().Err(err).Msg("stored profile is corrupt, discarding")
		return s
	}
	s.user = &user
	return s
}

// SetLoginInfo overwrites both fields and persists them. The token is opaque;
// no format validation happens here.
func (s *Session) SetLoginInfo(ctx context.Context, token string, user core.UserInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = &user

	raw, err := sonic.MarshalString(user)
	if err != nil {
		return err
	}
	return errors.Join(
		s.store.Set(ctx, tokenKey, token),
		s.store.Set(ctx, userInfoKey, raw),
	)
}

// Logout clears both fields and removes the durable entries. Calling it on an
// already logged-out session is a no-op.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil

	return errors.Join(
		s.store.Delete(ctx, tokenKey),
		s.store.Delete(ctx, userInfoKey),
	)
}

// Token returns the current bearer token, empty when logged out. The error
// return lets callers fail closed should a future backend make reads fallible.
func (s *Session) Token() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

// User returns the stored profile, reporting absence via the boolean.
func (s *Session) User() (core.UserInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return core.UserInfo{}, false
	}
	return *s.user, true
}

// IsLoggedIn is derived from the token on every call, never cached.
func (s *Session) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}
