// Package github wraps the GitHub API calls the miner needs: issue search,
// discussion comments, and pull request review comments.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub API client with the repository context
type Client struct {
	client *github.Client
	owner  string
	repo   string
}

// NewClient creates a new GitHub client. An empty token is allowed: the
// client then runs unauthenticated, subject to much lower rate limits.
func NewClient(ctx context.Context, token string) *Client {
	if token == "" {
		slog.Warn("No GitHub token provided - API rate limits will be restricted")
		return &Client{client: github.NewClient(nil)}
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &Client{client: github.NewClient(tc)}
}

// WithRepository returns a copy of the client bound to an owner/name pair.
func (c *Client) WithRepository(owner, repo string) *Client {
	return &Client{client: c.client, owner: owner, repo: repo}
}

// Slug returns the owner/name form of the bound repository, or the empty
// string when the client is not bound to one.
func (c *Client) Slug() string {
	if c.owner == "" && c.repo == "" {
		return ""
	}
	return c.owner + "/" + c.repo
}

// SplitRepoSlug validates an owner/name repository slug and splits it.
func SplitRepoSlug(slug string) (owner, repo string, err error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return "", "", fmt.Errorf("repository is empty")
	}
	parts := strings.Split(slug, "/")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return "", "", fmt.Errorf("invalid repository slug %q, expected owner/repo", slug)
	}
	return parts[0], parts[1], nil
}

// paginatedList drains a paginated list endpoint, concatenating all pages.
func paginatedList[T any](fetch func(page int) ([]T, *github.Response, error)) ([]T, error) {
	var all []T
	page := 0

	for {
		items, resp, err := fetch(page)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)

		if resp.NextPage == 0 {
			break
		}
		page = resp.NextPage
	}

	return all, nil
}
