package handler

import "github.com/devconnector/devconnector-api/internal/core/domain"

type createPostRequest struct {
	Text string `json:"text" validate:"required"`
}

type addCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type listPostsResponse struct {
	Count int            `json:"count"`
	Posts []*domain.Post `json:"posts"`
}

type likesResponse struct {
	Likes []domain.Like `json:"likes"`
}

type commentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}
