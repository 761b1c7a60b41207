package ports

import (
	"context"

	"github.com/devconnector/devconnector-api/internal/core/domain"
)

// PostRepository defines persistence operations for post aggregates.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) error
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// FindAll returns every post sorted by date descending (newest first).
	FindAll(ctx context.Context) ([]*domain.Post, error)
	Update(ctx context.Context, p *domain.Post) error
	Delete(ctx context.Context, id string) error
}
