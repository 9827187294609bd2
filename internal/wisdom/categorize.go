package wisdom

import (
	"regexp"
	"sort"
)

// UncategorizedLabel is the fallback bucket for comments matching no rule.
const UncategorizedLabel = "Uncategorized"

// CategoryRule pairs a bucket label with the pattern that claims a comment.
type CategoryRule struct {
	Label   string
	Pattern *regexp.Regexp
}

// categoryRules is evaluated in order against the comment body concatenated
// with the parent issue title; the first matching rule wins.
var categoryRules = []CategoryRule{
	{"OTP & Processes", regexp.MustCompile(`(?i)genserver|gen_server|supervis|\botp\b|process|concurren|deadlock|race condition`)},
	{"Ecto & Data", regexp.MustCompile(`(?i)\becto\b|changeset|migration|\bschema\b|database|\bsql\b|transaction`)},
	{"Phoenix & Web", regexp.MustCompile(`(?i)phoenix|live_?view|controller|router|\bplug\b|channel|socket|endpoint`)},
	{"Performance", regexp.MustCompile(`(?i)performance|\bslow\b|optimi[sz]|benchmark|memory|latency|throughput`)},
	{"Error Handling", regexp.MustCompile(`(?i)error|exception|rescue|\braise\b|crash|failure|timeout`)},
	{"Testing", regexp.MustCompile(`(?i)\btests?\b|\btesting\b|exunit|\bmock\b|assert|coverage|flaky`)},
	{"API Design", regexp.MustCompile(`(?i)\bapi\b|deprecat|backward|breaking change|public interface|contract`)},
	{"Code Style", regexp.MustCompile(`(?i)\bstyle\b|convention|readab|refactor|formatting|\blint\b`)},
}

// Categorize returns the label of the first rule matching the comment, or
// UncategorizedLabel when none does. The classification is total and
// deterministic: it depends only on the body and parent issue title.
func Categorize(c Comment) string {
	text := c.Body + " " + c.IssueTitle
	for _, rule := range categoryRules {
		if rule.Pattern.MatchString(text) {
			return rule.Label
		}
	}
	return UncategorizedLabel
}

// Bucketize partitions ranked comments into buckets and orders the buckets
// by descending member count. Comments keep their incoming (score) order
// inside a bucket; equal-sized buckets keep rule order, Uncategorized last.
// Empty buckets are omitted.
func Bucketize(comments []Comment) []Bucket {
	byLabel := make(map[string]*Bucket, len(categoryRules)+1)
	order := make([]*Bucket, 0, len(categoryRules)+1)
	for _, rule := range categoryRules {
		b := &Bucket{Label: rule.Label}
		byLabel[rule.Label] = b
		order = append(order, b)
	}
	fallback := &Bucket{Label: UncategorizedLabel}
	byLabel[UncategorizedLabel] = fallback
	order = append(order, fallback)

	for _, c := range comments {
		b := byLabel[Categorize(c)]
		b.Comments = append(b.Comments, c)
	}

	var buckets []Bucket
	for _, b := range order {
		if len(b.Comments) > 0 {
			buckets = append(buckets, *b)
		}
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return len(buckets[i].Comments) > len(buckets[j].Comments)
	})

	return buckets
}
