package wisdom

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/alan/wisdom-miner/internal/github"
)

// ProgressInterval is how many collected issues pass between progress
// callbacks.
const ProgressInterval = 10

// Pipeline mines one user's comments from one repository in a single pass.
type Pipeline struct {
	Source      Source
	Repo        string
	Author      string
	MaxIssues   int
	MinLength   int
	Concurrency int
	// Progress, when set, is called after every ProgressInterval collected
	// issues and once after the last one. With Concurrency > 1 it may be
	// invoked from multiple goroutines at the same time.
	Progress func(done, total int)
}

// Run executes the mining stages in order: discovery, collection,
// filter/score, categorization. A discovery failure aborts the run; a
// single issue's comment-fetch failure only empties that issue's slot.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	issues, err := p.Source.SearchIssuesByCommenter(ctx, p.Author, p.MaxIssues)
	if err != nil {
		return nil, fmt.Errorf("failed to discover issues: %w", err)
	}
	slog.Info("Discovered issues with comments by author", "author", p.Author, "count", len(issues))

	collected := p.collect(ctx, issues)

	kept := FilterAndRank(collected, p.MinLength)

	return &Report{
		Repo:            p.Repo,
		Author:          p.Author,
		IssuesScanned:   len(issues),
		CommentsFetched: len(collected),
		CommentsKept:    len(kept),
		Buckets:         Bucketize(kept),
	}, nil
}

// collect fetches every issue's comments into per-issue slots merged in
// discovery order, so the result does not depend on fan-out scheduling.
func (p *Pipeline) collect(ctx context.Context, issues []github.Issue) []Comment {
	slots := make([][]Comment, len(issues))

	limit := p.Concurrency
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)

	var done atomic.Int64
	for i, issue := range issues {
		i, issue := i, issue
		g.Go(func() error {
			slots[i] = p.commentsForIssue(ctx, issue)
			if n := int(done.Add(1)); p.Progress != nil && (n%ProgressInterval == 0 || n == len(issues)) {
				p.Progress(n, len(issues))
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	var all []Comment
	for _, slot := range slots {
		all = append(all, slot...)
	}
	return all
}

// commentsForIssue returns the author's comments on one issue, stamped with
// the issue metadata. Fetch failures degrade to an empty result so one bad
// issue cannot void the whole report.
func (p *Pipeline) commentsForIssue(ctx context.Context, issue github.Issue) []Comment {
	var raw []github.Comment

	topLevel, err := p.Source.IssueCommentsByAuthor(ctx, issue.Number, p.Author)
	if err != nil {
		slog.Warn("Failed to fetch issue comments, treating issue as empty", "issue", issue.Number, "error", err)
	} else {
		raw = append(raw, topLevel...)
	}

	if issue.IsPullRequest {
		review, err := p.Source.ReviewCommentsByAuthor(ctx, issue.Number, p.Author)
		if err != nil {
			slog.Warn("Failed to fetch review comments, keeping discussion comments only", "pr", issue.Number, "error", err)
		} else {
			raw = append(raw, review...)
		}
	}

	comments := make([]Comment, 0, len(raw))
	for _, rc := range raw {
		comments = append(comments, Comment{
			Body:            rc.Body,
			Author:          rc.Author,
			CreatedAt:       rc.CreatedAt,
			Reactions:       rc.Reactions,
			IsReviewComment: rc.IsReviewComment,
			IssueNumber:     issue.Number,
			IssueTitle:      issue.Title,
			IssueURL:        issue.URL,
		})
	}
	return comments
}
