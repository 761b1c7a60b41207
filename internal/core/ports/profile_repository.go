package ports

import (
	"context"

	"github.com/devconnector/devconnector-api/internal/core/domain"
)

// ProfileRepository defines persistence operations for profile aggregates.
// Mutations follow a read-modify-write cycle: the service loads the aggregate,
// mutates its sub-lists in memory, and writes the whole document back
// (last-write-wins on concurrent updates, no optimistic concurrency token).
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	// FindAll returns every stored profile. Ordering is unspecified.
	FindAll(ctx context.Context) ([]*domain.Profile, error)
	Create(ctx context.Context, p *domain.Profile) error
	Update(ctx context.Context, p *domain.Profile) error
	DeleteByUserID(ctx context.Context, userID string) error
}
