// Package favorites tracks which yields and feed posts the user has
// favorited. Membership is backed by hash sets; insertion order is kept
// separately so the persisted form stays an ordered sequence.
package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/agrolink/agrolink/pkg/storage"
)

// Namespace is the durable storage key for favorites state.
const Namespace = "agrolink-favorites"

// State is the persisted form: two ordered ID sequences
type State struct {
	Yields []string `json:"yields"`
	Posts  []string `json:"posts"`
}

// Store is the favorites state container
type Store struct {
	mu      sync.Mutex
	yields  favoriteSet
	posts   favoriteSet
	backend storage.Store
}

// favoriteSet keeps O(1) membership alongside insertion order
type favoriteSet struct {
	order   []string
	members map[string]struct{}
}

func newFavoriteSet(ids []string) favoriteSet {
	set := favoriteSet{members: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		// Collapse duplicates that older persisted blobs may carry
		if _, ok := set.members[id]; ok {
			continue
		}
		set.members[id] = struct{}{}
		set.order = append(set.order, id)
	}
	return set
}

func (f *favoriteSet) add(id string) {
	if _, ok := f.members[id]; ok {
		return
	}
	f.members[id] = struct{}{}
	f.order = append(f.order, id)
}

func (f *favoriteSet) remove(id string) {
	if _, ok := f.members[id]; !ok {
		return
	}
	delete(f.members, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
}

func (f *favoriteSet) contains(id string) bool {
	_, ok := f.members[id]
	return ok
}

func (f *favoriteSet) ids() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// NewStore creates a favorites store rehydrated from durable storage
func NewStore(ctx context.Context, backend storage.Store) (*Store, error) {
	s := &Store{
		yields:  newFavoriteSet(nil),
		posts:   newFavoriteSet(nil),
		backend: backend,
	}

	blob, err := backend.Load(ctx, Namespace)
	if errors.Is(err, storage.ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to rehydrate favorites: %w", err)
	}

	var state State
	if err := json.Unmarshal(blob, &state); err != nil {
		return nil, fmt.Errorf("failed to rehydrate favorites: %w", err)
	}
	s.yields = newFavoriteSet(state.Yields)
	s.posts = newFavoriteSet(state.Posts)
	return s, nil
}

// AddYield marks a yield as favorite. Adding an existing favorite is a no-op.
func (s *Store) AddYield(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.yields.add(id)
	return s.persist(ctx)
}

// RemoveYield unmarks a yield
func (s *Store) RemoveYield(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.yields.remove(id)
	return s.persist(ctx)
}

// AddPost marks a post as favorite
func (s *Store) AddPost(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts.add(id)
	return s.persist(ctx)
}

// RemovePost unmarks a post
func (s *Store) RemovePost(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.posts.remove(id)
	return s.persist(ctx)
}

// IsYieldFavorite reports whether a yield is favorited
func (s *Store) IsYieldFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.yields.contains(id)
}

// IsPostFavorite reports whether a post is favorited
func (s *Store) IsPostFavorite(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.posts.contains(id)
}

// Snapshot returns the current state as ordered sequences
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		Yields: s.yields.ids(),
		Posts:  s.posts.ids(),
	}
}

func (s *Store) persist(ctx context.Context) error {
	state := State{
		Yields: s.yields.ids(),
		Posts:  s.posts.ids(),
	}
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize favorites: %w", err)
	}
	if err := s.backend.Save(ctx, Namespace, blob); err != nil {
		return fmt.Errorf("failed to persist favorites: %w", err)
	}
	return nil
}
