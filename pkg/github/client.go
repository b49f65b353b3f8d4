// Package github provides a minimal GitHub REST client for the stats proxy.
// Uses raw HTTP calls (no SDK) to minimize external dependencies.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
)

const defaultBaseURL = "https://api.github.com"

// maxErrorBody caps how much of an upstream error payload we buffer for
// forwarding to the caller.
const maxErrorBody = 1 << 20

// Profile is the slice of the GitHub user-profile response the site renders.
// JSON field names match the upstream shape so the response passes through
// unchanged.
type Profile struct {
	Login       string `json:"login"`
	Name        string `json:"name,omitempty"`
	Bio         string `json:"bio,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	HTMLURL     string `json:"html_url,omitempty"`
	PublicRepos int    `json:"public_repos"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
}

// UpstreamError carries a non-success upstream status and body so handlers
// can forward both verbatim.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("github: upstream status %d", e.StatusCode)
}

// Client fetches GitHub user profiles.
type Client interface {
	// User returns the profile for the given username, or an *UpstreamError
	// when GitHub responds with a non-2xx status.
	User(ctx context.Context, username string) (*Profile, error)
}

// RealClient is the HTTP implementation of Client.
type RealClient struct {
	// BaseURL is overridable in tests; defaults to the public API.
	BaseURL string

	httpClient *http.Client
}

// NewClient creates a RealClient. When token is non-empty, requests carry it
// as a bearer token via an oauth2 transport, which raises the upstream rate
// limit; anonymous requests work but are throttled hard by GitHub.
func NewClient(token string) *RealClient {
	hc := &http.Client{Timeout: 15 * time.Second}
	if token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(context.Background(), src)
		hc.Timeout = 15 * time.Second
	}
	return &RealClient{BaseURL: defaultBaseURL, httpClient: hc}
}

var _ Client = (*RealClient)(nil)

// User fetches /users/{username}. No retries and no caching: a single
// upstream failure is surfaced directly.
func (c *RealClient) User(ctx context.Context, username string) (*Profile, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.BaseURL, url.PathEscape(username))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: body}
	}

	var p Profile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("github: decode user response: %w", err)
	}
	return &p, nil
}
