package client

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// Session is the signed in user of a client. Without a user, the client
// is in guest mode and all data only lives in memory.
type Session struct {
	mu    sync.RWMutex
	api   *API
	store Store
	user  *User
}

// NewSession restores the user persisted in the store. A store that
// cannot be read leaves the session signed out.
func NewSession(api *API, store Store) *Session {
	s := &Session{api: api, store: store}

	user, err := store.Load()
	if err != nil {
		log.Warn().Err(err).Msg("restoring session")
		return s
	}

	s.user = user
	return s
}

// User returns the signed in user.
func (s *Session) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// SignedIn reports if there is a signed in user.
func (s *Session) SignedIn() bool {
	_, ok := s.User()
	return ok
}

// Register creates the account and signs in with it.
func (s *Session) Register(ctx context.Context, name, email, password string) (User, error) {
	if _, err := s.api.Register(ctx, name, email, password); err != nil {
		return User{}, err
	}

	return s.Login(ctx, email, password)
}

// Login verifies the credentials and persists the user.
func (s *Session) Login(ctx context.Context, email, password string) (User, error) {
	user, err := s.api.Login(ctx, email, password)
	if err != nil {
		return User{}, err
	}

	if err := s.store.Save(user); err != nil {
		return User{}, err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	log.Debug().Str("user", user.ID).Msg("signed in")
	return user, nil
}

// Logout forgets the user. The session is in guest mode afterwards.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	return s.store.Clear()
}

// remote returns the API authenticated as the user and the ID of the
// user. ok is false in guest mode.
func (s *Session) remote() (api *API, userID string, ok bool) {
	user, ok := s.User()
	if !ok {
		return nil, "", false
	}
	return s.api.WithToken(user.Token), user.ID, true
}
