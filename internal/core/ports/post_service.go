package ports

import (
	"context"

	"github.com/devconnector/devconnector-api/internal/core/domain"
)

// PostService defines use-case operations for posts and their embedded
// likes/comments sub-lists.
type PostService interface {
	// Create persists a new post, snapshotting the author's name and avatar
	// as of posting time.
	Create(ctx context.Context, authorID, text string) (*domain.Post, error)
	// List returns all posts newest first.
	List(ctx context.Context) ([]*domain.Post, error)
	GetByID(ctx context.Context, id string) (*domain.Post, error)
	// Delete removes a post. Only the author may delete it.
	Delete(ctx context.Context, postID, requesterID string) error
	Like(ctx context.Context, postID, userID string) ([]domain.Like, error)
	Unlike(ctx context.Context, postID, userID string) ([]domain.Like, error)
	AddComment(ctx context.Context, postID, authorID, text string) ([]domain.Comment, error)
	// RemoveComment removes a comment by id. Any authenticated user may remove
	// any comment; no ownership check is applied.
	RemoveComment(ctx context.Context, postID, commentID string) ([]domain.Comment, error)
}
