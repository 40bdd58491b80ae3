// Package cart implements the line-item container behind both the cart and
// the basket. One implementation, two instances under separate persistence
// namespaces, so the two cannot drift apart.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/agrolink/agrolink/internal/catalog"
	"github.com/agrolink/agrolink/pkg/storage"
)

// Persistence namespaces for the two container instances.
const (
	CartNamespace   = "agrolink-cart"
	BasketNamespace = "agrolink-basket"
)

// Item is one line in the container: a chosen yield and its quantity. The
// yield is a snapshot taken at add time; later catalog changes do not
// propagate to lines already added.
type Item struct {
	ID       string        `json:"id"`
	YieldID  string        `json:"yieldId"`
	Quantity int           `json:"quantity"`
	Yield    catalog.Yield `json:"yield"`
}

// State is the persisted form of the container
type State struct {
	Items []Item `json:"items"`
}

// Store is the cart/basket state container. At most one line exists per
// yield ID, and every line quantity is at least 1.
type Store struct {
	mu        sync.Mutex
	items     []Item
	namespace string
	backend   storage.Store
}

// NewStore creates a container rehydrated from the given namespace
func NewStore(ctx context.Context, backend storage.Store, namespace string) (*Store, error) {
	s := &Store{
		namespace: namespace,
		backend:   backend,
	}

	blob, err := backend.Load(ctx, namespace)
	if errors.Is(err, storage.ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to rehydrate %s: %w", namespace, err)
	}

	var state State
	if err := json.Unmarshal(blob, &state); err != nil {
		return nil, fmt.Errorf("failed to rehydrate %s: %w", namespace, err)
	}
	s.items = state.Items
	return s, nil
}

// Add puts quantity units of a yield into the container. A line for the
// same yield already present has its quantity incremented; otherwise a new
// line is appended with a fresh identifier.
func (s *Store) Add(ctx context.Context, y catalog.Yield, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].YieldID == y.ID {
			s.items[i].Quantity += quantity
			return s.persist(ctx)
		}
	}

	s.items = append(s.items, Item{
		ID:       uuid.NewString(),
		YieldID:  y.ID,
		Quantity: quantity,
		Yield:    y,
	})
	return s.persist(ctx)
}

// Remove deletes the line with the given line-item ID. No-op when absent.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return s.persist(ctx)
		}
	}
	return nil
}

// UpdateQuantity overwrites the quantity of a line. A quantity below 1
// removes the line instead, keeping the quantity invariant inside the
// store rather than at every call site. No-op when the line is absent.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if quantity < 1 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity = quantity
		}
		return s.persist(ctx)
	}
	return nil
}

// Clear empties the container
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	return s.persist(ctx)
}

// Items returns a copy of the current lines
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Total returns the sum of snapshot price times quantity over all lines
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for _, item := range s.items {
		total += item.Yield.Price * float64(item.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities over all lines
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Store) persist(ctx context.Context) error {
	blob, err := json.Marshal(State{Items: s.items})
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", s.namespace, err)
	}
	if err := s.backend.Save(ctx, s.namespace, blob); err != nil {
		return fmt.Errorf("failed to persist %s: %w", s.namespace, err)
	}
	return nil
}
