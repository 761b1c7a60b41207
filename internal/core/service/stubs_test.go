package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/devconnector/devconnector-api/internal/core/domain"
	"github.com/devconnector/devconnector-api/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID      map[string]*domain.User
	seq       int
	findErr   error // if set, FindByID returns this error
	deleteErr error // if set, Delete returns this error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.seq++
	clone := *u
	clone.ID = fmt.Sprintf("user_%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.byID, id)
	return nil
}

// seedUser stores a user directly, bypassing Create.
func (r *stubUserRepo) seedUser(id, name, email, avatar string) *domain.User {
	u := &domain.User{ID: id, Name: name, Email: email, AvatarURL: avatar}
	r.byID[id] = u
	return u
}

type stubProfileRepo struct {
	byUser    map[string]*domain.Profile
	updateErr error // if set, Update returns this error
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{byUser: make(map[string]*domain.Profile)}
}

func (r *stubProfileRepo) FindByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	p, ok := r.byUser[userID]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubProfileRepo) FindAll(_ context.Context) ([]*domain.Profile, error) {
	out := make([]*domain.Profile, 0, len(r.byUser))
	for _, p := range r.byUser {
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (r *stubProfileRepo) Create(_ context.Context, p *domain.Profile) error {
	if _, ok := r.byUser[p.UserID]; ok {
		// mirrors the unique index on user
		return fmt.Errorf("duplicate profile for user %s", p.UserID)
	}
	if p.ID == "" {
		p.ID = "profile_" + p.UserID
	}
	clone := *p
	r.byUser[p.UserID] = &clone
	return nil
}

func (r *stubProfileRepo) Update(_ context.Context, p *domain.Profile) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	if _, ok := r.byUser[p.UserID]; !ok {
		return domain.ErrProfileNotFound
	}
	clone := *p
	r.byUser[p.UserID] = &clone
	return nil
}

func (r *stubProfileRepo) DeleteByUserID(_ context.Context, userID string) error {
	if _, ok := r.byUser[userID]; !ok {
		return domain.ErrProfileNotFound
	}
	delete(r.byUser, userID)
	return nil
}

type stubPostRepo struct {
	byID      map[string]*domain.Post
	seq       int
	createErr error // if set, Create returns this error
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{byID: make(map[string]*domain.Post)}
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	p.ID = fmt.Sprintf("post_%d", r.seq)
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPostRepo) FindAll(_ context.Context) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(r.byID))
	for _, p := range r.byID {
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (r *stubPostRepo) Update(_ context.Context, p *domain.Post) error {
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrPostNotFound
	}
	clone := *p
	r.byID[p.ID] = &clone
	return nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubGithubClient struct {
	repos   []ports.GithubRepo
	err     error
	lastArg string
}

func (c *stubGithubClient) Repos(_ context.Context, username string) ([]ports.GithubRepo, error) {
	c.lastArg = username
	if c.err != nil {
		return nil, c.err
	}
	return c.repos, nil
}
