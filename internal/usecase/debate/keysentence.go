package debate

import (
	"math"
	"strings"
)

// SplitSentences breaks text into sentences on terminal punctuation
// followed by whitespace. Runs of whitespace are collapsed first so word
// counts downstream stay stable.
func SplitSentences(text string) []string {
	collapsed := whitespaceRuns.ReplaceAllString(text, " ")

	var sentences []string
	start := 0
	for i := 0; i < len(collapsed); i++ {
		c := collapsed[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		// Consume the full punctuation run before looking for the break
		for i+1 < len(collapsed) && (collapsed[i+1] == '.' || collapsed[i+1] == '!' || collapsed[i+1] == '?') {
			i++
		}
		if i+1 < len(collapsed) && collapsed[i+1] == ' ' {
			if sentence := strings.TrimSpace(collapsed[start : i+1]); sentence != "" {
				sentences = append(sentences, sentence)
			}
			start = i + 2
		}
	}
	if tail := strings.TrimSpace(collapsed[start:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

// KeySentence picks the most substantial sentence of a message, scored
// by word count (capped at 40) plus character length in tens (capped at
// 10). Returns the key sentence and the remaining text. Used by exports
// to surface the core claim of a highlighted message.
func KeySentence(content string) (key, rest string) {
	sentences := SplitSentences(content)
	if len(sentences) == 0 {
		return "", content
	}
	if len(sentences) == 1 {
		return sentences[0], ""
	}

	best := sentences[0]
	bestScore := 0.0
	for _, sentence := range sentences {
		wordCount := len(strings.Split(sentence, " "))
		score := math.Min(float64(wordCount), 40) + math.Min(float64(len(sentence))/10, 10)
		if score > bestScore {
			bestScore = score
			best = sentence
		}
	}

	kept := make([]string, 0, len(sentences)-1)
	for _, sentence := range sentences {
		if sentence != best {
			kept = append(kept, sentence)
		}
	}
	return best, strings.Join(kept, " ")
}
