package model

import "time"

// Project is a portfolio project record. Created via the seed/admin insert
// path; the public site only ever reads these.
type Project struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TechStack   []string  `json:"techStack"`
	GitHubURL   string    `json:"githubUrl,omitempty"`
	DemoURL     string    `json:"demoUrl,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
}
