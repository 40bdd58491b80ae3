// Package session holds the authentication state of the client: an
// authenticated user, a guest marker, or neither. State is written through
// to durable storage on every transition and rehydrated at construction.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/agrolink/agrolink/pkg/storage"
)

// Namespace is the durable storage key for session state.
const Namespace = "agrolink-auth"

// User represents the authenticated account holder
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar"`
	IsFarmer bool   `json:"isFarmer"`
}

// UserPatch carries a partial user update. Nil fields are left unchanged.
type UserPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
	IsFarmer *bool   `json:"isFarmer,omitempty"`
}

// State is the full observable session state
type State struct {
	User            *User `json:"user"`
	IsAuthenticated bool  `json:"isAuthenticated"`
	IsGuest         bool  `json:"isGuest"`
}

// Store is the session state container. IsAuthenticated and IsGuest are
// never simultaneously true.
type Store struct {
	mu      sync.Mutex
	state   State
	backend storage.Store
}

// NewStore creates a session store rehydrated from durable storage
func NewStore(ctx context.Context, backend storage.Store) (*Store, error) {
	s := &Store{backend: backend}

	blob, err := backend.Load(ctx, Namespace)
	if errors.Is(err, storage.ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to rehydrate session: %w", err)
	}
	if err := json.Unmarshal(blob, &s.state); err != nil {
		return nil, fmt.Errorf("failed to rehydrate session: %w", err)
	}
	return s, nil
}

// Login replaces the session with the given user. The user record is
// accepted as supplied; obtaining a valid one is the caller's job.
func (s *Store) Login(ctx context.Context, user User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{
		User:            &user,
		IsAuthenticated: true,
		IsGuest:         false,
	}
	return s.persist(ctx)
}

// Logout resets the session to unauthenticated. Idempotent; also clears
// the guest marker.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{}
	return s.persist(ctx)
}

// LoginAsGuest marks the session as a guest browsing session
func (s *Store) LoginAsGuest(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = State{IsGuest: true}
	return s.persist(ctx)
}

// UpdateUser shallow-merges the patch into the current user. No-op when no
// user is present; never touches the authenticated/guest flags.
func (s *Store) UpdateUser(ctx context.Context, patch UserPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.User == nil {
		return nil
	}
	if patch.Name != nil {
		s.state.User.Name = *patch.Name
	}
	if patch.Email != nil {
		s.state.User.Email = *patch.Email
	}
	if patch.Phone != nil {
		s.state.User.Phone = *patch.Phone
	}
	if patch.Avatar != nil {
		s.state.User.Avatar = *patch.Avatar
	}
	if patch.IsFarmer != nil {
		s.state.User.IsFarmer = *patch.IsFarmer
	}
	return s.persist(ctx)
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.state
	if s.state.User != nil {
		user := *s.state.User
		out.User = &user
	}
	return out
}

// User returns a copy of the current user, or nil
func (s *Store) User() *User {
	return s.Snapshot().User
}

// IsAuthenticated reports whether a user is logged in
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsAuthenticated
}

// IsGuest reports whether the session is a guest session
func (s *Store) IsGuest() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsGuest
}

func (s *Store) persist(ctx context.Context) error {
	blob, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}
	if err := s.backend.Save(ctx, Namespace, blob); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
