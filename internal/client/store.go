package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// User is the signed in user as it is kept between runs.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token,omitempty"` // Bearer token, empty if the server did not issue one
}

// Store persists the signed in user.
type Store interface {
	// Load returns the persisted user, or nil if there is none.
	Load() (*User, error)
	Save(User) error
	Clear() error
}

// FileStore keeps the user in a JSON file.
type FileStore struct {
	Path string
}

func (s FileStore) Load() (*User, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("reading session file %s: %w", s.Path, err)
	}

	if user.ID == "" {
		return nil, fmt.Errorf("reading session file %s: no user id", s.Path)
	}

	return &user, nil
}

func (s FileStore) Save(user User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}

	return os.WriteFile(s.Path, data, 0o600)
}

func (s FileStore) Clear() error {
	err := os.Remove(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// MemoryStore keeps the user for the lifetime of the process.
type MemoryStore struct {
	mu   sync.Mutex
	user *User
}

func (s *MemoryStore) Load() (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, nil
	}
	u := *s.user
	return &u, nil
}

func (s *MemoryStore) Save(user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	return nil
}
