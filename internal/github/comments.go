package github

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/go-github/v57/github"
)

// IssueCommentsByAuthor retrieves all discussion comments on an issue or
// pull request and keeps only those written by the given author. The issues
// API has no author filter, so filtering happens client-side.
func (c *Client) IssueCommentsByAuthor(ctx context.Context, issueNumber int, author string) ([]Comment, error) {
	raw, err := paginatedList(func(page int) ([]*github.IssueComment, *github.Response, error) {
		opts := &github.IssueListCommentsOptions{
			ListOptions: github.ListOptions{
				PerPage: 100,
				Page:    page,
			},
		}
		slog.Debug("GitHub API: Listing issue comments", "owner", c.owner, "repo", c.repo, "issue", issueNumber, "page", page)
		return c.client.Issues.ListComments(ctx, c.owner, c.repo, issueNumber, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list issue comments: %w", err)
	}

	var comments []Comment
	for _, comment := range raw {
		if !strings.EqualFold(comment.GetUser().GetLogin(), author) {
			continue
		}
		comments = append(comments, Comment{
			Body:      comment.GetBody(),
			Author:    comment.GetUser().GetLogin(),
			CreatedAt: comment.GetCreatedAt().Time,
			Reactions: comment.GetReactions().GetTotalCount(),
		})
	}

	return comments, nil
}

// ReviewCommentsByAuthor retrieves all inline review comments on a pull
// request and keeps only those written by the given author.
func (c *Client) ReviewCommentsByAuthor(ctx context.Context, prNumber int, author string) ([]Comment, error) {
	raw, err := paginatedList(func(page int) ([]*github.PullRequestComment, *github.Response, error) {
		opts := &github.PullRequestListCommentsOptions{
			ListOptions: github.ListOptions{
				PerPage: 100,
				Page:    page,
			},
		}
		slog.Debug("GitHub API: Listing review comments", "owner", c.owner, "repo", c.repo, "pr", prNumber, "page", page)
		return c.client.PullRequests.ListComments(ctx, c.owner, c.repo, prNumber, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list review comments: %w", err)
	}

	var comments []Comment
	for _, comment := range raw {
		if !strings.EqualFold(comment.GetUser().GetLogin(), author) {
			continue
		}
		comments = append(comments, Comment{
			Body:            comment.GetBody(),
			Author:          comment.GetUser().GetLogin(),
			CreatedAt:       comment.GetCreatedAt().Time,
			Reactions:       comment.GetReactions().GetTotalCount(),
			IsReviewComment: true,
		})
	}

	return comments, nil
}
