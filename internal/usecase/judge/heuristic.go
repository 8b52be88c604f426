package judge

import (
	"regexp"
	"strings"

	"github.com/debateclub/arena/internal/domain/entities"
)

// The heuristic judge is the deterministic fallback used whenever no AI
// judge credential is available or the AI judge misbehaves. It must stay
// a pure function of its inputs: identical input, identical score.

const heuristicRationale = "Heuristic judge: scored based on structure, length, and keyword analysis"

var (
	reasoningPattern    = regexp.MustCompile(`(?i)\b(research|study|data|evidence)\b`)
	examplePattern      = regexp.MustCompile(`(?i)\b(for example|such as|according to)\b`)
	citationPattern     = regexp.MustCompile(`(?i)\b(study|research|report|survey)\b`)
	vagueClaimPattern   = regexp.MustCompile(`(?i)\b(study|research)\b.*\b(showed|found|demonstrated)\b`)
	namedSourcePattern  = regexp.MustCompile(`(?i)\b(university|journal|institute|organization)\b`)
	personalAttackWords = regexp.MustCompile(`(?i)\b(stupid|idiot|fool|ignorant|dumb)\b`)
	multiSentence       = regexp.MustCompile(`[.!?].*[.!?]`)
)

// HeuristicScore scores a message without calling any external judge.
//
// Argument Quality (0-4): length, connective reasoning, research keywords;
// personal attacks subtract 2 when the rule is on. Relevance (0-2):
// baseline 1, upgraded when at least half the topic's words appear in the
// content. Evidence (0-2): examples and citations, with a deduction for
// vague study claims when noFakeCitations is on. Clarity (0-2): within
// the word limit and more than one sentence. Total is the clamped sum.
func HeuristicScore(content, topic string, rules entities.DebateRules) entities.MessageScore {
	words := len(strings.Fields(content))

	argumentQuality := 0.0
	if words >= 30 {
		argumentQuality++
	}
	if words >= 60 {
		argumentQuality++
	}
	if strings.Contains(content, "because") || strings.Contains(content, "therefore") {
		argumentQuality++
	}
	if reasoningPattern.MatchString(content) {
		argumentQuality++
	}

	relevance := 1.0
	topicWords := strings.Fields(strings.ToLower(topic))
	contentLower := strings.ToLower(content)
	matchCount := 0
	for _, word := range topicWords {
		if strings.Contains(contentLower, word) {
			matchCount++
		}
	}
	if len(topicWords) > 0 && float64(matchCount) >= float64(len(topicWords))/2 {
		relevance = 2
	}

	evidence := 0.0
	if examplePattern.MatchString(content) {
		evidence++
	}
	if citationPattern.MatchString(content) {
		evidence++
	}
	if rules.NoFakeCitations && vagueClaimPattern.MatchString(content) {
		// Penalize vague claims without a named source
		if !namedSourcePattern.MatchString(content) {
			evidence = maxFloat(0, evidence-1)
		}
	}

	clarity := 0.0
	if words <= rules.MaxMessageLength {
		clarity++
	}
	if multiSentence.MatchString(content) {
		clarity++
	}

	if rules.NoPersonalAttacks && personalAttackWords.MatchString(content) {
		argumentQuality = maxFloat(0, argumentQuality-2)
	}

	total := argumentQuality + relevance + evidence + clarity

	return entities.MessageScore{
		Total:           clampTotal(total),
		ArgumentQuality: argumentQuality,
		Relevance:       relevance,
		Evidence:        evidence,
		Clarity:         clarity,
		Rationale:       heuristicRationale,
	}
}

func clampTotal(total float64) float64 {
	if total < 0 {
		return 0
	}
	if total > 10 {
		return 10
	}
	return total
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
