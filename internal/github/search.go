package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/go-github/v57/github"
)

// SearchIssuesByCommenter searches for issues and pull requests the given
// user has commented on, in the backend's relevance order. All result pages
// are concatenated before the list is truncated to max entries.
func (c *Client) SearchIssuesByCommenter(ctx context.Context, commenter string, max int) ([]Issue, error) {
	query := fmt.Sprintf("repo:%s/%s commenter:%s", c.owner, c.repo, commenter)

	opts := &github.SearchOptions{
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	var allIssues []Issue

	for {
		slog.Debug("GitHub API: Searching issues", "query", query, "page", opts.Page)
		result, resp, err := c.client.Search.Issues(ctx, query, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to search issues: %w", err)
		}

		for _, issue := range result.Issues {
			allIssues = append(allIssues, Issue{
				Number:        issue.GetNumber(),
				Title:         issue.GetTitle(),
				URL:           issue.GetHTMLURL(),
				IsPullRequest: issue.IsPullRequest(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	if max > 0 && len(allIssues) > max {
		allIssues = allIssues[:max]
	}

	return allIssues, nil
}
