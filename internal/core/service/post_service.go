package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/devconnector/devconnector-api/internal/api/metrics"
	"github.com/devconnector/devconnector-api/internal/core/domain"
	"github.com/devconnector/devconnector-api/internal/core/ports"
)

// PostService implements the post/engagement editor: post lifecycle plus
// mutations of the embedded likes and comments sub-lists. Structurally it
// mirrors ProfileService: load the aggregate, mutate in memory, write back.
type PostService struct {
	posts  ports.PostRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, users ports.UserRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, users: users, logger: logger}
}

// Create persists a new post. The author's name and avatar are denormalized
// into the post at creation time and never re-synchronized.
func (s *PostService) Create(ctx context.Context, authorID, text string) (*domain.Post, error) {
	if text == "" {
		return nil, domain.NewValidationError("text is required")
	}

	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	post := &domain.Post{
		Text:         text,
		AuthorID:     author.ID,
		AuthorName:   author.Name,
		AuthorAvatar: author.AvatarURL,
		Date:         time.Now().UTC(),
		Likes:        []domain.Like{},
		Comments:     []domain.Comment{},
	}

	if err := s.posts.Create(ctx, post); err != nil {
		s.logger.Error().Err(err).Str("user_id", authorID).Msg("failed to create post")
		return nil, err
	}

	metrics.PostsCreatedTotal.Inc()
	s.logger.Info().Str("post_id", post.ID).Str("user_id", authorID).Msg("post created")
	return post, nil
}

// List returns all posts newest first.
func (s *PostService) List(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.FindAll(ctx)
}

func (s *PostService) GetByID(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

// Delete removes a post. Only the author may delete; anyone else gets
// ErrNotPostAuthor and the post is left untouched.
func (s *PostService) Delete(ctx context.Context, postID, requesterID string) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != requesterID {
		return domain.ErrNotPostAuthor
	}

	if err := s.posts.Delete(ctx, postID); err != nil {
		return err
	}

	s.logger.Info().Str("post_id", postID).Str("user_id", requesterID).Msg("post deleted")
	return nil
}

// Like records a like by userID, rejecting duplicates with ErrAlreadyLiked.
func (s *PostService) Like(ctx context.Context, postID, userID string) ([]domain.Like, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.LikedBy(userID) {
		return nil, domain.ErrAlreadyLiked
	}

	post.AddLike(userID)
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}

	metrics.PostLikesTotal.WithLabelValues("like").Inc()
	return post.Likes, nil
}

// Unlike removes the user's like, rejecting a never-liked post with
// ErrNotLiked.
func (s *PostService) Unlike(ctx context.Context, postID, userID string) ([]domain.Like, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.RemoveLike(userID) {
		return nil, domain.ErrNotLiked
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}

	metrics.PostLikesTotal.WithLabelValues("unlike").Inc()
	return post.Likes, nil
}

// AddComment inserts a comment at the head of the post's comment list,
// snapshotting the comment author's display fields.
func (s *PostService) AddComment(ctx context.Context, postID, authorID, text string) ([]domain.Comment, error) {
	if text == "" {
		return nil, domain.NewValidationError("text is required")
	}

	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}

	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	post.AddComment(domain.Comment{
		ID:           newEntryID(),
		Text:         text,
		AuthorID:     author.ID,
		AuthorName:   author.Name,
		AuthorAvatar: author.AvatarURL,
		Date:         time.Now().UTC(),
	})

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}

// RemoveComment removes a comment by id. Ownership is intentionally not
// checked: any authenticated user may remove any comment, preserving the
// original product behavior.
func (s *PostService) RemoveComment(ctx context.Context, postID, commentID string) ([]domain.Comment, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.RemoveComment(commentID) {
		return nil, domain.ErrCommentNotFound
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post.Comments, nil
}
