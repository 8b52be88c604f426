package debate

import (
	"regexp"
	"strings"
)

// Near-duplicate detection keeps AI debaters from circling the same
// argument. Two messages count as duplicates when their normalized
// forms match exactly or their significant-word overlap crosses the
// Jaccard threshold.

const (
	// duplicateThreshold is the Jaccard index above which two messages
	// are considered the same argument restated.
	duplicateThreshold = 0.65

	// minSignificantWordLen filters out stopword-sized tokens before
	// computing overlap.
	minSignificantWordLen = 4
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// NormalizeContent lowercases, strips punctuation and collapses
// whitespace so that trivial formatting differences never mask a repeat.
func NormalizeContent(content string) string {
	normalized := strings.ToLower(content)
	normalized = nonAlphanumeric.ReplaceAllString(normalized, " ")
	normalized = whitespaceRuns.ReplaceAllString(normalized, " ")
	return strings.TrimSpace(normalized)
}

// ContentSimilarity returns the Jaccard index of the two messages'
// significant-word sets. Either side having no significant words yields 0.
func ContentSimilarity(a, b string) float64 {
	aWords := significantWords(a)
	bWords := significantWords(b)
	if len(aWords) == 0 || len(bWords) == 0 {
		return 0
	}

	intersection := 0
	for word := range aWords {
		if _, ok := bWords[word]; ok {
			intersection++
		}
	}
	union := len(aWords) + len(bWords) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// IsDuplicate reports whether the candidate repeats any of the recent
// messages, either verbatim after normalization or above the similarity
// threshold.
func IsDuplicate(candidate string, recent []string) bool {
	normalizedCandidate := NormalizeContent(candidate)
	for _, message := range recent {
		normalizedMessage := NormalizeContent(message)
		if normalizedMessage == "" {
			continue
		}
		if normalizedCandidate == normalizedMessage {
			return true
		}
		if ContentSimilarity(candidate, message) >= duplicateThreshold {
			return true
		}
	}
	return false
}

func significantWords(content string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, word := range strings.Split(NormalizeContent(content), " ") {
		if len(word) >= minSignificantWordLen {
			words[word] = struct{}{}
		}
	}
	return words
}
