package wisdom

import (
	"fmt"
	"strings"
	"time"
)

// MaxCommentsPerBucket caps how many comments a bucket section renders,
// even when more qualified.
const MaxCommentsPerBucket = 20

// RenderMarkdown renders the report as a Markdown document. generatedAt is
// the only varying input: the same report renders byte-identically apart
// from the Generated line.
func RenderMarkdown(report Report, generatedAt time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Wisdom from @%s\n\n", report.Author))
	sb.WriteString(fmt.Sprintf("Distilled review commentary mined from %s.\n\n", report.Repo))
	sb.WriteString(fmt.Sprintf("- **Generated:** %s\n", generatedAt.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("- **Issues scanned:** %d\n", report.IssuesScanned))
	sb.WriteString(fmt.Sprintf("- **Comments kept:** %d of %d fetched\n", report.CommentsKept, report.CommentsFetched))

	if len(report.Buckets) == 0 {
		sb.WriteString("\nNo comments cleared the length threshold.\n")
		return sb.String()
	}

	for _, bucket := range report.Buckets {
		sb.WriteString("\n")
		writeBucket(&sb, bucket)
	}

	return sb.String()
}

func writeBucket(sb *strings.Builder, bucket Bucket) {
	shown := len(bucket.Comments)
	if shown > MaxCommentsPerBucket {
		shown = MaxCommentsPerBucket
	}

	if shown < len(bucket.Comments) {
		fmt.Fprintf(sb, "## %s (showing %d of %d)\n", bucket.Label, shown, len(bucket.Comments))
	} else {
		fmt.Fprintf(sb, "## %s (%d)\n", bucket.Label, len(bucket.Comments))
	}

	for _, comment := range bucket.Comments[:shown] {
		sb.WriteString("\n")
		writeComment(sb, comment)
	}
}

func writeComment(sb *strings.Builder, c Comment) {
	fmt.Fprintf(sb, "### [#%d: %s](%s)\n\n", c.IssueNumber, c.IssueTitle, c.IssueURL)

	kind := "discussion comment"
	if c.IsReviewComment {
		kind = "review comment"
	}
	fmt.Fprintf(sb, "**Score %d** | %d reactions | %s | %s\n\n",
		c.Score, c.Reactions, c.CreatedAt.Format("2006-01-02"), kind)

	for _, line := range strings.Split(strings.TrimRight(c.Body, "\n"), "\n") {
		if line == "" {
			sb.WriteString(">\n")
			continue
		}
		sb.WriteString("> " + line + "\n")
	}
}
