package ports

import (
	"context"
	"time"

	"github.com/devconnector/devconnector-api/internal/core/domain"
)

// UpsertProfileInput carries the profile fields accepted by the upsert
// operation. Empty fields are ignored (sparse merge-update); Skills is a
// comma-delimited text list normalized by the service.
type UpsertProfileInput struct {
	UserID         string
	Company        string
	Website        string
	Location       string
	Status         string
	Bio            string
	GithubUsername string
	Skills         string

	YouTube   string
	Twitter   string
	Facebook  string
	LinkedIn  string
	Instagram string
}

// ExperienceInput carries a new work-history entry. Title, Company and From
// are required; the service assigns the entry id.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// EducationInput carries a new education entry. School, Degree, FieldOfStudy
// and From are required.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// ProfileView is the public projection of a profile: the stored aggregate
// joined with the owning user's display fields. Sensitive account fields are
// never part of the view.
type ProfileView struct {
	Profile    domain.Profile
	UserName   string
	UserAvatar string
}

// GithubRepo is a single public repository returned by the GitHub proxy.
type GithubRepo struct {
	Name        string
	HTMLURL     string
	Description string
	Stars       int
	Watchers    int
	Forks       int
}

// GithubClient fetches a user's public repositories.
type GithubClient interface {
	Repos(ctx context.Context, username string) ([]GithubRepo, error)
}

// ProfileService defines use-case operations on profile aggregates.
type ProfileService interface {
	// GetByUser returns the profile owned by userID joined with the user's
	// display fields. Serves both the private /me route and the public
	// by-user-id route.
	GetByUser(ctx context.Context, userID string) (*ProfileView, error)
	ListProfiles(ctx context.Context) ([]*ProfileView, error)
	// Upsert creates the profile on first use, otherwise merge-updates the
	// non-empty input fields into the existing document.
	Upsert(ctx context.Context, in UpsertProfileInput) (*domain.Profile, error)
	AddExperience(ctx context.Context, userID string, in ExperienceInput) (*domain.Profile, error)
	RemoveExperience(ctx context.Context, userID, entryID string) (*domain.Profile, error)
	AddEducation(ctx context.Context, userID string, in EducationInput) (*domain.Profile, error)
	RemoveEducation(ctx context.Context, userID, entryID string) (*domain.Profile, error)
	// DeleteAccount removes the profile and the user record. The two deletes
	// are independent; posts by the user are deliberately not cascaded.
	DeleteAccount(ctx context.Context, userID string) error
	GithubRepos(ctx context.Context, username string) ([]GithubRepo, error)
}
