package wisdom

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() Report {
	return Report{
		Repo:            "elixir-lang/elixir",
		Author:          "josevalim",
		IssuesScanned:   42,
		CommentsFetched: 10,
		CommentsKept:    2,
		Buckets: []Bucket{
			{
				Label: "OTP & Processes",
				Comments: []Comment{
					{
						Body:            "Prefer a Task here because the work is one-off.",
						Author:          "josevalim",
						CreatedAt:       time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC),
						Reactions:       4,
						IsReviewComment: true,
						IssueNumber:     1234,
						IssueTitle:      "Supervisor shutdown order",
						IssueURL:        "https://github.com/elixir-lang/elixir/pull/1234",
						Score:           48,
					},
					{
						Body:        "First paragraph.\n\nSecond paragraph.",
						Author:      "josevalim",
						CreatedAt:   time.Date(2022, 1, 15, 0, 0, 0, 0, time.UTC),
						IssueNumber: 99,
						IssueTitle:  "Process dictionary usage",
						IssueURL:    "https://github.com/elixir-lang/elixir/issues/99",
						Score:       12,
					},
				},
			},
		},
	}
}

func TestRenderMarkdown(t *testing.T) {
	generatedAt := time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC)
	doc := RenderMarkdown(sampleReport(), generatedAt)

	assert.Contains(t, doc, "# Wisdom from @josevalim")
	assert.Contains(t, doc, "Distilled review commentary mined from elixir-lang/elixir.")
	assert.Contains(t, doc, "- **Generated:** 2024-01-02")
	assert.Contains(t, doc, "- **Issues scanned:** 42")
	assert.Contains(t, doc, "- **Comments kept:** 2 of 10 fetched")

	assert.Contains(t, doc, "## OTP & Processes (2)")
	assert.Contains(t, doc, "### [#1234: Supervisor shutdown order](https://github.com/elixir-lang/elixir/pull/1234)")
	assert.Contains(t, doc, "**Score 48** | 4 reactions | 2023-05-01 | review comment")
	assert.Contains(t, doc, "**Score 12** | 0 reactions | 2022-01-15 | discussion comment")

	// Bodies render as blockquotes, blank lines included.
	assert.Contains(t, doc, "> Prefer a Task here because the work is one-off.\n")
	assert.Contains(t, doc, "> First paragraph.\n>\n> Second paragraph.\n")
}

func TestRenderMarkdown_Idempotent(t *testing.T) {
	generatedAt := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	first := RenderMarkdown(sampleReport(), generatedAt)
	second := RenderMarkdown(sampleReport(), generatedAt)

	assert.Equal(t, first, second)
}

func TestRenderMarkdown_EmptyReport(t *testing.T) {
	report := Report{Repo: "elixir-lang/elixir", Author: "josevalim"}

	doc := RenderMarkdown(report, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	assert.Contains(t, doc, "No comments cleared the length threshold.")
	assert.NotContains(t, doc, "## ")
}

func TestRenderMarkdown_TruncatesBuckets(t *testing.T) {
	bucket := Bucket{Label: "Testing"}
	for i := 0; i < MaxCommentsPerBucket+2; i++ {
		bucket.Comments = append(bucket.Comments, Comment{
			Body:        fmt.Sprintf("comment %d", i),
			IssueNumber: i,
			IssueTitle:  fmt.Sprintf("issue %d", i),
			Score:       100 - i,
		})
	}
	report := Report{Repo: "r", Author: "a", Buckets: []Bucket{bucket}}

	doc := RenderMarkdown(report, time.Now())

	assert.Contains(t, doc, fmt.Sprintf("## Testing (showing %d of %d)", MaxCommentsPerBucket, MaxCommentsPerBucket+2))
	assert.Contains(t, doc, "> comment 19")
	assert.NotContains(t, doc, "> comment 20")
	assert.Equal(t, MaxCommentsPerBucket, strings.Count(doc, "### ["))
}

func TestRenderMarkdown_BucketSectionOrderFollowsReport(t *testing.T) {
	report := Report{
		Repo:   "r",
		Author: "a",
		Buckets: []Bucket{
			{Label: "Ecto & Data", Comments: []Comment{{Body: "b1"}, {Body: "b2"}}},
			{Label: "Testing", Comments: []Comment{{Body: "b3"}}},
		},
	}

	doc := RenderMarkdown(report, time.Now())

	ecto := strings.Index(doc, "## Ecto & Data")
	testing := strings.Index(doc, "## Testing")
	require.NotEqual(t, -1, ecto)
	require.NotEqual(t, -1, testing)
	assert.Less(t, ecto, testing)
}
