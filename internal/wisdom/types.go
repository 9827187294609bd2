// Package wisdom implements the comment mining pipeline: discover the issues
// a user commented on, collect their comments, filter and score them, and
// partition the survivors into topic buckets for the rendered report.
package wisdom

import (
	"context"
	"time"

	"github.com/alan/wisdom-miner/internal/github"
)

// Source is the narrow slice of the GitHub client the pipeline depends on,
// so the stages can be exercised against fixture data.
type Source interface {
	SearchIssuesByCommenter(ctx context.Context, commenter string, max int) ([]github.Issue, error)
	IssueCommentsByAuthor(ctx context.Context, issueNumber int, author string) ([]github.Comment, error)
	ReviewCommentsByAuthor(ctx context.Context, prNumber int, author string) ([]github.Comment, error)
}

// Comment is a harvested comment merged with the metadata of the issue it
// was made on, plus the score assigned by the ranking stage.
type Comment struct {
	Body            string
	Author          string
	CreatedAt       time.Time
	Reactions       int
	IsReviewComment bool
	IssueNumber     int
	IssueTitle      string
	IssueURL        string
	Score           int
}

// Bucket is a named topic partition of the surviving comments.
type Bucket struct {
	Label    string
	Comments []Comment
}

// Report is the complete result of one mining run.
type Report struct {
	Repo            string
	Author          string
	IssuesScanned   int
	CommentsFetched int
	CommentsKept    int
	Buckets         []Bucket
}
