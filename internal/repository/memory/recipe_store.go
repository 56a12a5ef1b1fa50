// Package memory provides an in-process port.RecipeStore. Durable storage
// lives outside this service; this store backs the API surface and tests.
package memory

import (
	"context"
	"sync"

	"forkful/internal/domain"
	"forkful/internal/port"
)

// RecipeStore is a mutex-guarded map keyed by recipe ID.
type RecipeStore struct {
	mu      sync.RWMutex
	recipes map[string]domain.Recipe
	order   []string
}

var _ port.RecipeStore = (*RecipeStore)(nil)

// NewRecipeStore creates an empty store.
func NewRecipeStore() *RecipeStore {
	return &RecipeStore{recipes: make(map[string]domain.Recipe)}
}

func (s *RecipeStore) Save(_ context.Context, recipe *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.recipes[recipe.ID]; !exists {
		s.order = append(s.order, recipe.ID)
	}
	s.recipes[recipe.ID] = *recipe
	return nil
}

func (s *RecipeStore) GetByID(_ context.Context, id string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.recipes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

func (s *RecipeStore) List(_ context.Context) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Recipe, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.recipes[id])
	}
	return out, nil
}
