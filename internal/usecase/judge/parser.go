package judge

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/debateclub/arena/internal/domain/entities"
)

// Parser handles parsing and validation of AI judge responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// judgeVerdict is the JSON shape the judge prompt asks for
type judgeVerdict struct {
	ArgumentQuality *float64 `json:"argumentQuality"`
	Relevance       *float64 `json:"relevance"`
	Evidence        *float64 `json:"evidence"`
	Clarity         *float64 `json:"clarity"`
	Rationale       string   `json:"rationale"`
}

// ParseScore extracts a MessageScore from a raw judge response. Models
// wrap JSON in markdown fences or prose, so the first balanced object is
// extracted before unmarshalling. Total is recomputed from the sub-scores
// and clamped to [0,10] rather than trusted from the model.
func (p *Parser) ParseScore(raw string) (entities.MessageScore, error) {
	jsonString := extractJSON(raw)
	if jsonString == "" {
		return entities.MessageScore{}, fmt.Errorf("no JSON object in judge response")
	}

	var verdict judgeVerdict
	if err := json.Unmarshal([]byte(jsonString), &verdict); err != nil {
		return entities.MessageScore{}, fmt.Errorf("failed to parse judge response: %w", err)
	}

	if verdict.ArgumentQuality == nil || verdict.Relevance == nil || verdict.Evidence == nil || verdict.Clarity == nil {
		return entities.MessageScore{}, fmt.Errorf("missing sub-scores in judge response")
	}

	rationale := verdict.Rationale
	if rationale == "" {
		rationale = "AI judge score"
	}

	total := *verdict.ArgumentQuality + *verdict.Relevance + *verdict.Evidence + *verdict.Clarity
	return entities.MessageScore{
		Total:           clampTotal(total),
		ArgumentQuality: *verdict.ArgumentQuality,
		Relevance:       *verdict.Relevance,
		Evidence:        *verdict.Evidence,
		Clarity:         *verdict.Clarity,
		Rationale:       rationale,
	}, nil
}

// extractJSON extracts JSON content from markdown code blocks or plain text
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
		return strings.TrimSpace(content)
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
		return strings.TrimSpace(content)
	}

	// Fall back to the outermost brace pair
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return content[start : end+1]
}
