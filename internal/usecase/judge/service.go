package judge

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/debateclub/arena/internal/domain/entities"
	"github.com/debateclub/arena/pkg/ai"
)

// ScoreContext is the judging context passed alongside a message
type ScoreContext struct {
	Topic          string
	Phase          entities.DebatePhase
	RecentMessages []entities.DebateMessage
}

// ScoreInput is everything the judge needs for one verdict
type ScoreInput struct {
	Content       string
	Context       ScoreContext
	Rules         entities.DebateRules
	JudgeProvider string
	JudgeModel    string
}

// Service scores debate messages
type Service interface {
	Score(ctx context.Context, input ScoreInput) entities.MessageScore
}

type judgeService struct {
	registry *ai.Registry
	parser   *Parser
	logger   *zap.Logger
}

// NewService constructs a judge service backed by the provider registry
func NewService(registry *ai.Registry, logger *zap.Logger) Service {
	return &judgeService{
		registry: registry,
		parser:   NewParser(),
		logger:   logger,
	}
}

// Score asks the AI judge for a verdict and falls back to the heuristic
// scorer on any failure. It never returns an error: a score always comes
// back, which keeps the pipeline's failure handling trivial.
func (s *judgeService) Score(ctx context.Context, input ScoreInput) entities.MessageScore {
	if s.registry != nil && !s.registry.DemoMode() && s.registry.HasCredential(input.JudgeProvider) {
		score, err := s.scoreWithAI(ctx, input)
		if err == nil {
			return score
		}
		if s.logger != nil {
			s.logger.Warn("AI judge failed, falling back to heuristic",
				zap.String("provider", input.JudgeProvider),
				zap.Error(err),
			)
		}
	}

	return HeuristicScore(input.Content, input.Context.Topic, input.Rules)
}

func (s *judgeService) scoreWithAI(ctx context.Context, input ScoreInput) (entities.MessageScore, error) {
	raw, err := s.registry.Generate(ctx, ai.GenerateParams{
		Provider:    input.JudgeProvider,
		Model:       input.JudgeModel,
		System:      buildJudgeSystemPrompt(input.Rules),
		Prompt:      buildJudgePrompt(input),
		Temperature: 0.3,
		MaxTokens:   300,
	})
	if err != nil {
		return entities.MessageScore{}, err
	}

	score, err := s.parser.ParseScore(raw)
	if err != nil {
		return entities.MessageScore{}, err
	}
	return score, nil
}

func buildJudgeSystemPrompt(rules entities.DebateRules) string {
	fakeCitationNote := ""
	if rules.NoFakeCitations {
		fakeCitationNote = " (deduct for fake citations)"
	}
	return fmt.Sprintf(`You are an expert debate judge. Score the following debate message on a 0-10 scale using this rubric:
- Argument Quality (0-4): Strength and validity of reasoning
- Relevance (0-2): How well it addresses the topic and phase
- Evidence (0-2): Quality of examples and citations%s
- Clarity (0-2): How well-structured and concise the message is

Respond ONLY with valid JSON: {"argumentQuality": X, "relevance": X, "evidence": X, "clarity": X, "rationale": "brief explanation"}`, fakeCitationNote)
}

func buildJudgePrompt(input ScoreInput) string {
	ruleParts := fmt.Sprintf("Max %d words", input.Rules.MaxMessageLength)
	if input.Rules.StayOnTopic {
		ruleParts += ", stay on topic"
	}
	if input.Rules.NoPersonalAttacks {
		ruleParts += ", no personal attacks"
	}

	var recent strings.Builder
	for _, m := range input.Context.RecentMessages {
		content := m.Content
		if r := []rune(content); len(r) > 100 {
			content = string(r[:100])
		}
		recent.WriteString("- " + content + "\n")
	}

	return fmt.Sprintf(`Topic: %s
Phase: %s
Rules: %s

Message to score:
"%s"

Recent context:
%s
Provide your score as JSON:`, input.Context.Topic, input.Context.Phase, ruleParts, input.Content, recent.String())
}
