// Package github implements the public-repos proxy backing the profile
// GitHub endpoint. Responses are cached in Redis so repeated profile views do
// not burn through the upstream rate limit.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/devconnector/devconnector-api/internal/api/metrics"
	"github.com/devconnector/devconnector-api/internal/core/domain"
	"github.com/devconnector/devconnector-api/internal/core/ports"
)

const (
	defaultBaseURL = "https://api.github.com"
	reposPerPage   = 5
)

// ResponseCache is the cache the client stores serialized responses in.
// A nil cache disables caching entirely.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, payload []byte) error
}

// Client fetches a user's most recent public repositories from the GitHub
// REST API.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	cache   ResponseCache
	logger  zerolog.Logger
}

// NewClient creates a Client. token may be empty (unauthenticated requests,
// lower rate limit); cache may be nil.
func NewClient(token string, cache ResponseCache, logger zerolog.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: defaultBaseURL,
		token:   token,
		cache:   cache,
		logger:  logger,
	}
}

// Repos returns the user's five most recently created public repositories.
// An unknown username surfaces as domain.ErrGithubUserNotFound.
func (c *Client) Repos(ctx context.Context, username string) ([]ports.GithubRepo, error) {
	if repos, ok := c.cached(ctx, username); ok {
		return repos, nil
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=%d&sort=created&direction=desc",
		c.baseURL, url.PathEscape(username), reposPerPage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("github request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrGithubUserNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github request: unexpected status %d", resp.StatusCode)
	}

	var payload []repoPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("github response: %w", err)
	}

	repos := make([]ports.GithubRepo, 0, len(payload))
	for _, r := range payload {
		repos = append(repos, ports.GithubRepo{
			Name:        r.Name,
			HTMLURL:     r.HTMLURL,
			Description: r.Description,
			Stars:       r.StargazersCount,
			Watchers:    r.WatchersCount,
			Forks:       r.ForksCount,
		})
	}

	c.store(ctx, username, repos)
	return repos, nil
}

type repoPayload struct {
	Name            string `json:"name"`
	HTMLURL         string `json:"html_url"`
	Description     string `json:"description"`
	StargazersCount int    `json:"stargazers_count"`
	WatchersCount   int    `json:"watchers_count"`
	ForksCount      int    `json:"forks_count"`
}

func (c *Client) cached(ctx context.Context, username string) ([]ports.GithubRepo, bool) {
	if c.cache == nil {
		return nil, false
	}

	payload, hit, err := c.cache.Get(ctx, username)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", username).Msg("github cache lookup failed, fetching upstream")
		return nil, false
	}
	if !hit {
		metrics.GithubCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var repos []ports.GithubRepo
	if err := json.Unmarshal(payload, &repos); err != nil {
		c.logger.Warn().Err(err).Str("username", username).Msg("github cache entry corrupt, fetching upstream")
		return nil, false
	}

	metrics.GithubCacheTotal.WithLabelValues("hit").Inc()
	return repos, true
}

func (c *Client) store(ctx context.Context, username string, repos []ports.GithubRepo) {
	if c.cache == nil {
		return
	}

	payload, err := json.Marshal(repos)
	if err != nil {
		return
	}
	if err := c.cache.Set(ctx, username, payload); err != nil {
		c.logger.Warn().Err(err).Str("username", username).Msg("failed to cache github repos")
	}
}
