package handler

import (
	"time"

	"github.com/devconnector/devconnector-api/internal/core/domain"
)

// --- Request types ---

type upsertProfileRequest struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Status         string `json:"status" validate:"required"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"github_username"`
	// Skills is a comma-delimited text list, normalized server-side.
	Skills string `json:"skills" validate:"required"`

	YouTube   string `json:"youtube"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	LinkedIn  string `json:"linkedin"`
	Instagram string `json:"instagram"`
}

// Dates arrive as strings ("2006-01-02" or RFC 3339) and are parsed by the
// mapper; required-field checks run before parsing.

type experienceRequest struct {
	Title       string `json:"title"   validate:"required"`
	Company     string `json:"company" validate:"required"`
	Location    string `json:"location"`
	From        string `json:"from"    validate:"required"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type educationRequest struct {
	School       string `json:"school"         validate:"required"`
	Degree       string `json:"degree"         validate:"required"`
	FieldOfStudy string `json:"field_of_study" validate:"required"`
	From         string `json:"from"           validate:"required"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// --- Response types ---
// Owned by the transport layer so the JSON contract is not coupled to
// internal service changes.

// profileOwnerResponse is the joined owner display block on public views.
type profileOwnerResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type profileViewResponse struct {
	ID             string               `json:"id"`
	User           profileOwnerResponse `json:"user"`
	Company        string               `json:"company,omitempty"`
	Website        string               `json:"website,omitempty"`
	Location       string               `json:"location,omitempty"`
	Status         string               `json:"status"`
	Bio            string               `json:"bio,omitempty"`
	GithubUsername string               `json:"github_username,omitempty"`
	Skills         []string             `json:"skills"`
	Social         domain.SocialLinks   `json:"social"`
	Experience     []domain.Experience  `json:"experience"`
	Education      []domain.Education   `json:"education"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

type listProfilesResponse struct {
	Count    int                   `json:"count"`
	Profiles []profileViewResponse `json:"profiles"`
}

type githubRepoResponse struct {
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description,omitempty"`
	Stars       int    `json:"stargazers_count"`
	Watchers    int    `json:"watchers_count"`
	Forks       int    `json:"forks_count"`
}

type messageResponse struct {
	Msg string `json:"msg"`
}
