package domain

import (
	"errors"
	"strings"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrProfileNotFound = errors.New("profile not found")
var ErrPostNotFound = errors.New("post not found")
var ErrCommentNotFound = errors.New("comment not found")
var ErrEntryNotFound = errors.New("profile entry not found")
var ErrNotPostAuthor = errors.New("user is not the post author")
var ErrAlreadyLiked = errors.New("post already liked")
var ErrNotLiked = errors.New("post has not yet been liked")
var ErrGithubUserNotFound = errors.New("no github profile found")

// ValidationError enumerates every failing field of a request, one message
// per field, so clients can render them individually.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError builds a ValidationError from the given messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
