package debate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/debateclub/arena/internal/domain/entities"
	"github.com/debateclub/arena/internal/domain/repositories"
	"github.com/debateclub/arena/internal/infrastructure/cache"
	"github.com/debateclub/arena/pkg/config"
)

// sessionCacheTTL bounds staleness of cached session reads. It matches
// the tick interval so a poll never lags more than one turn behind.
const sessionCacheTTL = 2 * time.Second

func sessionCacheKey(id uuid.UUID) string {
	return "debate:" + id.String()
}

// ParticipantInput describes one debater at session creation
type ParticipantInput struct {
	Name        string
	Team        *entities.Team
	Provider    string
	Model       string
	RoleStyle   entities.RoleStyle
	Temperature float64
}

// CreateDebateInput is everything needed to start a debate
type CreateDebateInput struct {
	TopicID          string
	TopicTitle       string
	TopicDescription *string
	Mode             entities.DebateMode
	Format           entities.DebateFormat
	JudgeProvider    string
	JudgeModel       string
	Rules            *entities.DebateRules
	Participants     []ParticipantInput
}

// Stats aggregates activity across all debates
type Stats struct {
	TotalDebates      int     `json:"total_debates"`
	ActiveDebates     int     `json:"active_debates"`
	FinishedDebates   int     `json:"finished_debates"`
	TotalParticipants int     `json:"total_participants"`
	TotalMessages     int     `json:"total_messages"`
	BestMessages      int     `json:"best_messages"`
	AvgMessageScore   float64 `json:"avg_message_score"`
}

// Service is the application-facing API over debate sessions
type Service interface {
	CreateDebate(ctx context.Context, input CreateDebateInput) (*entities.DebateSession, error)
	GetDebate(ctx context.Context, id uuid.UUID) (*entities.DebateSession, error)
	ListDebates(ctx context.Context) ([]*entities.DebateSession, error)
	DeleteDebate(ctx context.Context, id uuid.UUID) error

	RaiseHand(ctx context.Context, id, participantID uuid.UUID, intent entities.IntentKind, priority int) (*entities.RaiseHandIntent, error)
	PauseDebate(ctx context.Context, id uuid.UUID) (*entities.DebateSession, error)
	ResumeDebate(ctx context.Context, id uuid.UUID) (*entities.DebateSession, error)
	EndDebate(ctx context.Context, id uuid.UUID) (*entities.DebateSession, error)

	GetStats(ctx context.Context) (*Stats, error)
}

type debateService struct {
	repo         repositories.DebateRepository
	cache        cache.Store
	orchestrator *Orchestrator
	cfg          *config.Config
	logger       *zap.Logger
}

// NewService creates the debate service
func NewService(repo repositories.DebateRepository, store cache.Store, orchestrator *Orchestrator, cfg *config.Config, logger *zap.Logger) Service {
	return &debateService{
		repo:         repo,
		cache:        store,
		orchestrator: orchestrator,
		cfg:          cfg,
		logger:       logger,
	}
}

// CreateDebate validates the setup, persists the session and starts its
// runner. The debate is live immediately: the first message arrives on
// the first eligible tick.
func (s *debateService) CreateDebate(ctx context.Context, input CreateDebateInput) (*entities.DebateSession, error) {
	title, description, err := resolveTopic(input)
	if err != nil {
		return nil, err
	}

	if input.Mode != entities.DebateModeTeam && input.Mode != entities.DebateModeSolo {
		return nil, entities.ErrInvalidMode
	}
	if !input.Format.IsValid() {
		return nil, entities.ErrInvalidFormat
	}
	if len(input.Participants) < 2 {
		return nil, entities.ErrTooFewParticipants
	}

	participants := make([]entities.Participant, 0, len(input.Participants))
	for i, in := range input.Participants {
		team := in.Team
		if input.Mode == entities.DebateModeSolo {
			team = nil
		}
		roleStyle := in.RoleStyle
		if roleStyle == "" {
			roleStyle = entities.RoleStyleAnalytical
		}
		participants = append(participants, entities.NewParticipant(in.Name, team, in.Provider, in.Model, roleStyle, in.Temperature, i))
	}

	if input.Mode == entities.DebateModeTeam {
		if err := validateTeamSplit(participants); err != nil {
			return nil, err
		}
	}

	judgeProvider := input.JudgeProvider
	if judgeProvider == "" {
		judgeProvider = s.cfg.Judge.Provider
	}
	judgeModel := input.JudgeModel
	if judgeModel == "" {
		judgeModel = s.cfg.Judge.Model
	}

	rules := entities.DefaultRules()
	if input.Rules != nil {
		rules = *input.Rules
	}

	session := entities.NewDebateSession(title, description, input.Mode, input.Format, judgeProvider, judgeModel, rules, participants)
	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save debate: %w", err)
	}

	s.orchestrator.Start(session.ID)

	s.logger.Info("debate created",
		zap.String("debate_id", session.ID.String()),
		zap.String("topic", title),
		zap.String("mode", string(session.Mode)),
		zap.String("format", string(session.Format)),
		zap.Int("participants", len(participants)),
	)
	return session, nil
}

// GetDebate serves a session, preferring the short-lived cache
func (s *debateService) GetDebate(ctx context.Context, id uuid.UUID) (*entities.DebateSession, error) {
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, sessionCacheKey(id)); ok {
			var session entities.DebateSession
			if err := json.Unmarshal([]byte(raw), &session); err == nil {
				return &session, nil
			}
		}
	}

	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if raw, err := json.Marshal(session); err == nil {
			if err := s.cache.Set(ctx, sessionCacheKey(id), string(raw), sessionCacheTTL); err != nil {
				s.logger.Debug("session cache write failed", zap.Error(err))
			}
		}
	}
	return session, nil
}

func (s *debateService) ListDebates(ctx context.Context) ([]*entities.DebateSession, error) {
	return s.repo.GetAllSessions(ctx)
}

func (s *debateService) DeleteDebate(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetSession(ctx, id); err != nil {
		return err
	}

	s.orchestrator.Stop(id)
	if err := s.repo.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("failed to delete debate: %w", err)
	}
	s.invalidate(ctx, id)

	s.logger.Info("debate deleted", zap.String("debate_id", id.String()))
	return nil
}

// RaiseHand queues a solo-mode request to speak next. The scheduler
// consumes the queue on the following ticks.
func (s *debateService) RaiseHand(ctx context.Context, id, participantID uuid.UUID, intent entities.IntentKind, priority int) (*entities.RaiseHandIntent, error) {
	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.IsFinished() {
		return nil, entities.ErrDebateFinished
	}
	if session.Mode != entities.DebateModeSolo {
		return nil, entities.ErrRaiseHandTeamMode
	}
	if session.ParticipantByID(participantID) == nil {
		return nil, entities.ErrParticipantNotFound
	}

	entry := session.EnqueueRaiseHand(participantID, intent, priority)
	session.UpdatedAt = time.Now()
	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save raise-hand intent: %w", err)
	}
	s.invalidate(ctx, id)
	return &entry, nil
}

func (s *debateService) PauseDebate(ctx context.Context, id uuid.UUID) (*entities.DebateSession, error) {
	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != entities.DebateStatusActive {
		return nil, entities.ErrDebateNotActive
	}

	session.Status = entities.DebateStatusPaused
	session.UpdatedAt = time.Now()
	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to pause debate: %w", err)
	}
	s.invalidate(ctx, id)

	s.logger.Info("debate paused", zap.String("debate_id", id.String()))
	return session, nil
}

func (s *debateService) ResumeDebate(ctx context.Context, id uuid.UUID) (*entities.DebateSession, error) {
	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != entities.DebateStatusPaused {
		return nil, entities.ErrDebateNotPaused
	}

	session.Status = entities.DebateStatusActive
	session.UpdatedAt = time.Now()
	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to resume debate: %w", err)
	}
	s.invalidate(ctx, id)
	s.orchestrator.Start(id)

	s.logger.Info("debate resumed", zap.String("debate_id", id.String()))
	return session, nil
}

// EndDebate finishes a debate ahead of its time limit
func (s *debateService) EndDebate(ctx context.Context, id uuid.UUID) (*entities.DebateSession, error) {
	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.IsFinished() {
		return nil, entities.ErrDebateFinished
	}

	winner := session.Finish(time.Now())
	if err := s.repo.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to end debate: %w", err)
	}
	s.orchestrator.Stop(id)
	s.invalidate(ctx, id)

	s.logger.Info("debate ended by request",
		zap.String("debate_id", id.String()),
		zap.Int("final_score", winner.FinalScore),
	)
	return session, nil
}

func (s *debateService) GetStats(ctx context.Context) (*Stats, error) {
	sessions, err := s.repo.GetAllSessions(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	scoreSum := 0.0
	scored := 0
	for _, session := range sessions {
		stats.TotalDebates++
		switch session.Status {
		case entities.DebateStatusActive, entities.DebateStatusPaused:
			stats.ActiveDebates++
		case entities.DebateStatusFinished:
			stats.FinishedDebates++
		}
		stats.TotalParticipants += len(session.Participants)
		stats.TotalMessages += len(session.Messages)
		stats.BestMessages += len(session.BestMessageEvents)
		for i := range session.Messages {
			if score := session.Messages[i].ScoreValue(); score != nil {
				scoreSum += score.Total
				scored++
			}
		}
	}
	if scored > 0 {
		stats.AvgMessageScore = scoreSum / float64(scored)
	}
	return stats, nil
}

func (s *debateService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, sessionCacheKey(id)); err != nil {
		s.logger.Debug("cache invalidation failed", zap.Error(err))
	}
}

func resolveTopic(input CreateDebateInput) (string, *string, error) {
	if input.TopicID != "" {
		topic, ok := entities.TopicByID(input.TopicID)
		if !ok {
			return "", nil, entities.ErrTopicNotFound
		}
		description := topic.Description
		return topic.Title, &description, nil
	}
	if input.TopicTitle == "" {
		return "", nil, entities.ErrTopicNotFound
	}
	return input.TopicTitle, input.TopicDescription, nil
}

func validateTeamSplit(participants []entities.Participant) error {
	teamA, teamB := 0, 0
	for i := range participants {
		switch {
		case participants[i].OnTeam(entities.TeamA):
			teamA++
		case participants[i].OnTeam(entities.TeamB):
			teamB++
		default:
			return entities.ErrInvalidTeamSplit
		}
	}
	if teamA == 0 || teamB == 0 {
		return entities.ErrInvalidTeamSplit
	}
	return nil
}
