package debate

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/debateclub/arena/internal/domain/entities"
	"github.com/debateclub/arena/internal/domain/repositories"
	"github.com/debateclub/arena/internal/usecase/judge"
	"github.com/debateclub/arena/pkg/ai"
)

const (
	// recentWindow is how many trailing messages feed prompts and
	// duplicate checks.
	recentWindow = 8

	// judgeContextWindow is how many trailing messages the judge sees.
	judgeContextWindow = 3

	// bestMessageBatchSize is the message interval at which a batch
	// winner is selected.
	bestMessageBatchSize = 5

	defaultTemperature = 0.7
)

// Pipeline turns a selected speaker into a persisted, scored message.
// One ProduceMessage call is one turn: generate, de-duplicate, judge,
// persist, update standings and run best-of-batch selection.
type Pipeline struct {
	repo      repositories.DebateRepository
	generator ai.Generator
	judge     judge.Service
	logger    *zap.Logger
}

// NewPipeline wires the message pipeline
func NewPipeline(repo repositories.DebateRepository, generator ai.Generator, judgeService judge.Service, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		repo:      repo,
		generator: generator,
		judge:     judgeService,
		logger:    logger,
	}
}

// ProduceMessage runs one speaking turn for the participant. A failed
// generation returns the error so the caller can log and skip the tick;
// a duplicate after one retry is dropped silently, which keeps the
// debate moving instead of stalling on a repetitive model.
func (p *Pipeline) ProduceMessage(ctx context.Context, session *entities.DebateSession, participant *entities.Participant, now time.Time) error {
	recent := session.RecentMessages(recentWindow)
	recentContents := make([]string, len(recent))
	for i, m := range recent {
		recentContents[i] = m.Content
	}

	text, err := p.requestText(ctx, session, participant, recent, recentContents, false)
	if err != nil {
		return fmt.Errorf("failed to generate message: %w", err)
	}
	if text == "" {
		return nil
	}

	if IsDuplicate(text, recentContents) {
		text, err = p.requestText(ctx, session, participant, recent, recentContents, true)
		if err != nil {
			return fmt.Errorf("failed to regenerate message: %w", err)
		}
		if text == "" || IsDuplicate(text, recentContents) {
			if p.logger != nil {
				p.logger.Debug("dropping duplicate message after retry",
					zap.String("debate_id", session.ID.String()),
					zap.String("participant", participant.Name),
				)
			}
			return nil
		}
	}

	return p.scoreAndSave(ctx, session, participant, text, now)
}

func (p *Pipeline) requestText(ctx context.Context, session *entities.DebateSession, participant *entities.Participant, recent []entities.DebateMessage, avoid []string, retry bool) (string, error) {
	temperature := participant.Temperature
	if temperature == 0 {
		temperature = defaultTemperature
	}

	text, err := p.generator.Generate(ctx, ai.GenerateParams{
		Provider:    participant.Provider,
		Model:       participant.Model,
		System:      buildSystemPrompt(session, participant, recent, avoid, retry),
		Prompt:      buildUserPrompt(session, participant),
		Temperature: temperature,
		MaxTokens:   session.DebateRules().MaxMessageLength * 2, // rough words-to-tokens estimate
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (p *Pipeline) scoreAndSave(ctx context.Context, session *entities.DebateSession, participant *entities.Participant, content string, now time.Time) error {
	score := p.judge.Score(ctx, judge.ScoreInput{
		Content: content,
		Context: judge.ScoreContext{
			Topic:          session.TopicTitle,
			Phase:          session.CurrentPhase,
			RecentMessages: session.RecentMessages(judgeContextWindow),
		},
		Rules:         session.DebateRules(),
		JudgeProvider: session.JudgeProvider,
		JudgeModel:    session.JudgeModel,
	})

	message := entities.NewDebateMessage(session.ID, participant.ID, content, session.CurrentPhase, now)
	message.AttachScore(score)

	session.Messages = append(session.Messages, message)
	session.ProgressFor(participant.ID).ApplyScore(score.Total, now)

	var best *entities.DebateMessage
	var event *entities.BestMessageEvent
	if len(session.Messages)%bestMessageBatchSize == 0 {
		best, event = selectBatchWinner(session, now)
	}

	// The aggregate is saved first: a failed session save must not leave
	// a message row behind for the next tick's reload to pick up.
	session.UpdatedAt = now
	if err := p.repo.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	if err := p.repo.SaveMessage(ctx, &session.Messages[len(session.Messages)-1]); err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	if best != nil {
		if err := p.repo.SaveMessage(ctx, best); err != nil {
			return fmt.Errorf("failed to save batch winner: %w", err)
		}
		if err := p.repo.SaveBestMessageEvent(ctx, event); err != nil {
			return fmt.Errorf("failed to save best message event: %w", err)
		}
		if p.logger != nil {
			p.logger.Info("batch winner selected",
				zap.String("debate_id", session.ID.String()),
				zap.String("message_id", best.ID.String()),
				zap.Int("batch", event.BatchNumber),
			)
		}
	}

	if p.logger != nil {
		p.logger.Info("message produced",
			zap.String("debate_id", session.ID.String()),
			zap.String("participant", participant.Name),
			zap.String("phase", string(session.CurrentPhase)),
			zap.Float64("score", score.Total),
		)
	}
	return nil
}

// selectBatchWinner marks the highest-scored message of the completed
// batch, awards the bonus and records the batch event on the session.
// Ties keep the earliest message.
func selectBatchWinner(session *entities.DebateSession, now time.Time) (*entities.DebateMessage, *entities.BestMessageEvent) {
	start := len(session.Messages) - bestMessageBatchSize
	var best *entities.DebateMessage
	for i := start; i < len(session.Messages); i++ {
		m := &session.Messages[i]
		if m.ScoreValue() == nil {
			continue
		}
		if best == nil || m.ScoreValue().Total > best.ScoreValue().Total {
			best = m
		}
	}
	if best == nil {
		return nil, nil
	}

	best.MarkBest()
	session.ProgressFor(best.ParticipantID).AwardBestMessage()

	event := entities.NewBestMessageEvent(session.ID, best.ID, best.ParticipantID, len(session.Messages)/bestMessageBatchSize, now)
	session.BestMessageEvents = append(session.BestMessageEvents, event)
	return best, &event
}

var phaseGuidance = map[entities.DebatePhase]string{
	entities.PhaseOpening:   "Present your INITIAL position with fresh reasoning. Establish your unique perspective.",
	entities.PhaseRebuttals: "DIRECTLY address opponent arguments. Counter with new evidence or logical flaws you identify.",
	entities.PhaseCrossExam: "Ask probing questions OR answer with precision. Expose weaknesses or clarify your stance.",
	entities.PhaseClosing:   "SYNTHESIZE the debate. Highlight what you won, acknowledge complexity, leave lasting impact.",
}

func buildSystemPrompt(session *entities.DebateSession, participant *entities.Participant, recent []entities.DebateMessage, avoid []string, retry bool) string {
	rules := session.DebateRules()

	guidance, ok := phaseGuidance[session.CurrentPhase]
	if !ok {
		guidance = "Advance the discussion with NEW information, angles, or reasoning."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, a %s debater in a live structured debate.\n\n", participant.Name, participant.RoleStyle)
	fmt.Fprintf(&b, "Debate Topic: %s\n", session.TopicTitle)
	fmt.Fprintf(&b, "Current Phase: %s\n", entities.PhaseLabel(session.CurrentPhase))
	fmt.Fprintf(&b, "Your Role Style: %s\n", participant.RoleStyle)
	fmt.Fprintf(&b, "Messages so far: %d\n\n", len(recent))
	fmt.Fprintf(&b, "Phase Goal: %s\n\n", guidance)

	b.WriteString("Rules:\n")
	fmt.Fprintf(&b, "- Keep your response under %d words\n", rules.MaxMessageLength)
	if rules.StayOnTopic {
		b.WriteString("- Stay focused on the topic\n")
	}
	if rules.NoPersonalAttacks {
		b.WriteString("- Be respectful, no personal attacks\n")
	}
	if rules.NoFakeCitations {
		b.WriteString("- Only cite real, verifiable sources\n")
	}

	b.WriteString("\nCRITICAL DIVERSITY REQUIREMENTS:\n")
	b.WriteString("- DO NOT repeat arguments already made (yours or others)\n")
	b.WriteString("- Introduce NEW evidence, examples, or logical angles\n")
	fmt.Fprintf(&b, "- If %d messages exist, the debate has PROGRESSED - build on it, don't reset\n", len(recent))
	b.WriteString("- Vary your sentence structure and vocabulary from prior messages\n")
	if retry {
		b.WriteString("- COMPLETELY DIFFERENT approach required - previous attempt was too similar\n")
	}

	b.WriteString("\nRecent discussion (what's ALREADY been said):\n")
	for i, m := range recent {
		name := "Unknown"
		if p := session.ParticipantByID(m.ParticipantID); p != nil {
			name = p.Name
		}
		fmt.Fprintf(&b, "[%d] %s: %s\n", i+1, name, m.Content)
	}

	if len(avoid) > 0 {
		b.WriteString("\nFORBIDDEN - Do NOT echo these patterns:\n")
		for i, message := range avoid {
			if r := []rune(message); len(r) > 100 {
				message = string(r[:100])
			}
			fmt.Fprintf(&b, "%d. \"%s...\"\n", i+1, message)
		}
	}

	fmt.Fprintf(&b, "\nProvide a %s response that ADVANCES the debate with original thinking.", participant.RoleStyle)
	return b.String()
}

func buildUserPrompt(session *entities.DebateSession, participant *entities.Participant) string {
	return fmt.Sprintf("As %s, provide your next argument in this %s phase of the debate on: %q",
		participant.Name, entities.PhaseLabel(session.CurrentPhase), session.TopicTitle)
}
