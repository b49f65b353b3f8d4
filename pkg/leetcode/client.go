// Package leetcode provides a minimal LeetCode GraphQL client for the stats
// proxy. Uses raw HTTP calls (no SDK) to minimize external dependencies.
package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultEndpoint = "https://leetcode.com/graphql"

// profileQuery requests accepted-submission counts per difficulty, the
// site-wide question counts per difficulty, and the user's ranking.
const profileQuery = `
query getUserProfile($username: String!) {
  matchedUser(username: $username) {
    submitStats {
      acSubmissionNum {
        difficulty
        count
      }
    }
    profile {
      ranking
    }
  }
  allQuestionsCount {
    difficulty
    count
  }
}`

// ErrUserNotFound is returned when LeetCode has no such user or reports
// errors for the query.
var ErrUserNotFound = errors.New("leetcode: user not found")

// Stats is the normalized per-user solve breakdown. A difficulty bucket the
// upstream omits is reported as 0, never null. Ranking is null for users
// without one.
type Stats struct {
	TotalSolved    int  `json:"totalSolved"`
	TotalQuestions int  `json:"totalQuestions"`
	EasySolved     int  `json:"easySolved"`
	MediumSolved   int  `json:"mediumSolved"`
	HardSolved     int  `json:"hardSolved"`
	Ranking        *int `json:"ranking"`
}

// Client fetches LeetCode user stats.
type Client interface {
	UserStats(ctx context.Context, username string) (*Stats, error)
}

// RealClient is the HTTP implementation of Client.
type RealClient struct {
	// Endpoint is overridable in tests; defaults to the public GraphQL API.
	Endpoint string

	httpClient *http.Client
}

// NewClient creates a RealClient with a bounded request timeout.
func NewClient() *RealClient {
	return &RealClient{
		Endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

var _ Client = (*RealClient)(nil)

type difficultyCount struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

// UserStats queries the GraphQL endpoint and reduces the Easy/Medium/Hard/All
// buckets into a Stats record. No retries and no caching.
func (c *RealClient) UserStats(ctx context.Context, username string) (*Stats, error) {
	payload, err := json.Marshal(map[string]any{
		"query":     profileQuery,
		"variables": map[string]string{"username": username},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result struct {
		Data *struct {
			MatchedUser *struct {
				SubmitStats struct {
					ACSubmissionNum []difficultyCount `json:"acSubmissionNum"`
				} `json:"submitStats"`
				Profile *struct {
					Ranking *int `json:"ranking"`
				} `json:"profile"`
			} `json:"matchedUser"`
			AllQuestionsCount []difficultyCount `json:"allQuestionsCount"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("leetcode: decode response: %w", err)
	}

	// The upstream reports unknown users via the errors array or a null
	// matchedUser, not an HTTP status.
	if len(result.Errors) > 0 || result.Data == nil || result.Data.MatchedUser == nil {
		return nil, ErrUserNotFound
	}

	solved := result.Data.MatchedUser.SubmitStats.ACSubmissionNum
	stats := &Stats{
		TotalSolved:    countFor(solved, "All"),
		TotalQuestions: countFor(result.Data.AllQuestionsCount, "All"),
		EasySolved:     countFor(solved, "Easy"),
		MediumSolved:   countFor(solved, "Medium"),
		HardSolved:     countFor(solved, "Hard"),
	}
	if p := result.Data.MatchedUser.Profile; p != nil {
		stats.Ranking = p.Ranking
	}
	return stats, nil
}

// countFor returns the count for the named difficulty, defaulting to 0 when
// the bucket is absent.
func countFor(buckets []difficultyCount, difficulty string) int {
	for _, b := range buckets {
		if b.Difficulty == difficulty {
			return b.Count
		}
	}
	return 0
}
