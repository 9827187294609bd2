package github

import "time"

// Issue represents an issue or pull request returned by the search API
type Issue struct {
	Number        int
	Title         string
	URL           string
	IsPullRequest bool
}

// Comment represents a single comment on an issue or pull request.
// Review comments are the inline ones attached to a diff; everything else
// comes from the discussion thread.
type Comment struct {
	Body            string
	Author          string
	CreatedAt       time.Time
	Reactions       int
	IsReviewComment bool
}
