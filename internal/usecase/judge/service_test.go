package judge

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/debateclub/arena/internal/domain/entities"
)

func TestBuildJudgePrompt_ContextRuneSafe(t *testing.T) {
	input := ScoreInput{
		Content: "A concise argument about oversight.",
		Context: ScoreContext{
			Topic:          "AI regulation",
			Phase:          entities.PhaseOpening,
			RecentMessages: []entities.DebateMessage{{Content: strings.Repeat("議", 120)}},
		},
		Rules: entities.DefaultRules(),
	}

	prompt := buildJudgePrompt(input)

	if !utf8.ValidString(prompt) {
		t.Fatal("prompt contains a split rune")
	}
	if !strings.Contains(prompt, "- "+strings.Repeat("議", 100)+"\n") {
		t.Fatal("context message not truncated at 100 runes")
	}
	if strings.Contains(prompt, strings.Repeat("議", 101)) {
		t.Fatal("context message longer than 100 runes")
	}
}
