package port

import (
	"context"

	"forkful/internal/domain"
)

// RecipeStore defines the contract for recipe persistence. The extraction core
// only feeds this interface; storage itself lives outside the core.
type RecipeStore interface {
	Save(ctx context.Context, recipe *domain.Recipe) error
	GetByID(ctx context.Context, id string) (*domain.Recipe, error)
	List(ctx context.Context) ([]domain.Recipe, error)
}
