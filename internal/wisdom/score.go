package wisdom

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// wisdomKeywords is the fixed explanatory-language vocabulary the scorer
// counts. No entry is a substring of another, so the per-keyword counts
// never claim the same span twice.
var wisdomKeywords = []string{
	"because", "reason", "pitfall", "recommend", "avoid", "prefer",
	"design", "instead", "tradeoff", "gotcha", "careful", "idiomatic",
	"convention", "rule of thumb",
}

const (
	reactionWeight = 10
	keywordWeight  = 5
	lengthDivisor  = 100
)

// KeywordMatches counts non-overlapping, case-insensitive occurrences of
// the wisdom keyword set in body.
func KeywordMatches(body string) int {
	lower := strings.ToLower(body)
	total := 0
	for _, kw := range wisdomKeywords {
		total += strings.Count(lower, kw)
	}
	return total
}

// ScoreComment computes the wisdom score:
//
//	reactions*10 + keyword matches*5 + floor(length/100)
//
// Length is counted in runes, like the filter threshold.
func ScoreComment(c Comment) int {
	return c.Reactions*reactionWeight +
		KeywordMatches(c.Body)*keywordWeight +
		utf8.RuneCountInString(c.Body)/lengthDivisor
}

// FilterAndRank drops comments shorter than minLength runes (a comment
// exactly at the threshold survives), scores the rest, and sorts them by
// descending score. The sort is stable, so ties keep collection order.
func FilterAndRank(comments []Comment, minLength int) []Comment {
	kept := make([]Comment, 0, len(comments))
	for _, c := range comments {
		if utf8.RuneCountInString(c.Body) < minLength {
			continue
		}
		c.Score = ScoreComment(c)
		kept = append(kept, c)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Score > kept[j].Score
	})

	return kept
}
