package debate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/debateclub/arena/internal/adapter/repository"
	"github.com/debateclub/arena/internal/domain/entities"
	"github.com/debateclub/arena/internal/infrastructure/cache"
	"github.com/debateclub/arena/internal/usecase/judge"
	"github.com/debateclub/arena/pkg/ai"
	"github.com/debateclub/arena/pkg/config"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	repo := repository.NewMemoryDebateRepository()
	store := cache.NewMemoryStore()
	cfg := &config.Config{
		Judge:  config.JudgeConfig{Provider: "openai", Model: "gpt-4o-mini"},
		Debate: config.DebateConfig{TickInterval: time.Hour},
	}
	logger := zap.NewNop()
	pipeline := NewPipeline(repo, ai.NewSeededMockGenerator(1), judge.NewService(nil, logger), logger)
	orchestrator := NewOrchestrator(repo, pipeline, NewSeededScheduler(1), store, time.Hour, logger)
	t.Cleanup(orchestrator.Shutdown)
	return NewService(repo, store, orchestrator, cfg, logger)
}

func soloInput(names ...string) CreateDebateInput {
	participants := make([]ParticipantInput, 0, len(names))
	for _, name := range names {
		participants = append(participants, ParticipantInput{
			Name:     name,
			Provider: "openai",
			Model:    "gpt-4o-mini",
		})
	}
	return CreateDebateInput{
		TopicTitle:   "Universal basic income should be adopted",
		Mode:         entities.DebateModeSolo,
		Format:       entities.FormatFast,
		Participants: participants,
	}
}

func teamInput(teams ...entities.Team) CreateDebateInput {
	participants := make([]ParticipantInput, 0, len(teams))
	for i := range teams {
		team := teams[i]
		participants = append(participants, ParticipantInput{
			Name:     "Debater",
			Team:     &team,
			Provider: "openai",
			Model:    "gpt-4o-mini",
		})
	}
	input := soloInput()
	input.Mode = entities.DebateModeTeam
	input.Participants = participants
	return input
}

func TestCreateDebate_Solo(t *testing.T) {
	svc := newTestService(t)

	teamA := entities.TeamA
	input := soloInput("Ada", "Grace")
	input.Participants[0].Team = &teamA // ignored in solo mode
	input.Participants[0].RoleStyle = entities.RoleStylePassionate

	session, err := svc.CreateDebate(context.Background(), input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !session.IsActive() {
		t.Fatalf("status = %s, want active", session.Status)
	}
	if session.CurrentPhase != entities.PhaseOpening {
		t.Fatalf("phase = %s, want opening", session.CurrentPhase)
	}
	if session.Duration != entities.FormatFast.DurationMinutes() {
		t.Fatalf("duration = %d", session.Duration)
	}
	if session.JudgeProvider != "openai" || session.JudgeModel != "gpt-4o-mini" {
		t.Fatalf("judge defaults not applied: %s/%s", session.JudgeProvider, session.JudgeModel)
	}
	if session.Participants[0].Team != nil {
		t.Fatal("solo mode must strip team assignments")
	}
	if session.Participants[0].RoleStyle != entities.RoleStylePassionate {
		t.Fatalf("role style = %s", session.Participants[0].RoleStyle)
	}
	if session.Participants[1].RoleStyle != entities.RoleStyleAnalytical {
		t.Fatalf("empty role style should default to analytical, got %s", session.Participants[1].RoleStyle)
	}
	if len(session.Progress) != 2 {
		t.Fatalf("progress entries = %d", len(session.Progress))
	}
}

func TestCreateDebate_BuiltinTopic(t *testing.T) {
	svc := newTestService(t)

	input := soloInput("Ada", "Grace")
	input.TopicID = "ai-jobs"
	input.TopicTitle = ""

	session, err := svc.CreateDebate(context.Background(), input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if session.TopicTitle != "AI will create more jobs than it destroys" {
		t.Fatalf("topic not resolved: %q", session.TopicTitle)
	}
	if session.TopicDescription == nil || *session.TopicDescription == "" {
		t.Fatal("builtin topic description missing")
	}
}

func TestCreateDebate_Validation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateDebateInput
		want  error
	}{
		{"unknown topic id", func() CreateDebateInput {
			in := soloInput("Ada", "Grace")
			in.TopicID = "nope"
			return in
		}(), entities.ErrTopicNotFound},
		{"missing topic", func() CreateDebateInput {
			in := soloInput("Ada", "Grace")
			in.TopicTitle = ""
			return in
		}(), entities.ErrTopicNotFound},
		{"invalid mode", func() CreateDebateInput {
			in := soloInput("Ada", "Grace")
			in.Mode = "tournament"
			return in
		}(), entities.ErrInvalidMode},
		{"invalid format", func() CreateDebateInput {
			in := soloInput("Ada", "Grace")
			in.Format = "marathon"
			return in
		}(), entities.ErrInvalidFormat},
		{"too few participants", soloInput("Ada"), entities.ErrTooFewParticipants},
		{"one-sided teams", teamInput(entities.TeamA, entities.TeamA), entities.ErrInvalidTeamSplit},
		{"unassigned participant", func() CreateDebateInput {
			in := teamInput(entities.TeamA, entities.TeamB)
			in.Participants[1].Team = nil
			return in
		}(), entities.ErrInvalidTeamSplit},
	}

	for _, tc := range cases {
		if _, err := svc.CreateDebate(ctx, tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("%s: err = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestRaiseHand(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	session, err := svc.CreateDebate(ctx, soloInput("Ada", "Grace"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	entry, err := svc.RaiseHand(ctx, session.ID, session.Participants[0].ID, entities.IntentChallenge, 7)
	if err != nil {
		t.Fatalf("raise hand failed: %v", err)
	}
	if entry.Intent != entities.IntentChallenge || entry.Priority != 7 {
		t.Fatalf("unexpected entry %+v", entry)
	}

	saved, err := svc.GetDebate(ctx, session.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(saved.RaiseHandQueue) != 1 {
		t.Fatalf("queue length = %d", len(saved.RaiseHandQueue))
	}

	if _, err := svc.RaiseHand(ctx, session.ID, uuid.New(), entities.IntentRespond, 1); !errors.Is(err, entities.ErrParticipantNotFound) {
		t.Fatalf("unknown participant: err = %v", err)
	}

	team, err := svc.CreateDebate(ctx, teamInput(entities.TeamA, entities.TeamB))
	if err != nil {
		t.Fatalf("create team failed: %v", err)
	}
	if _, err := svc.RaiseHand(ctx, team.ID, team.Participants[0].ID, entities.IntentRespond, 1); !errors.Is(err, entities.ErrRaiseHandTeamMode) {
		t.Fatalf("team mode: err = %v", err)
	}

	if _, err := svc.EndDebate(ctx, session.ID); err != nil {
		t.Fatalf("end failed: %v", err)
	}
	if _, err := svc.RaiseHand(ctx, session.ID, session.Participants[0].ID, entities.IntentRespond, 1); !errors.Is(err, entities.ErrDebateFinished) {
		t.Fatalf("finished debate: err = %v", err)
	}
}

func TestPauseResumeEnd(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	session, err := svc.CreateDebate(ctx, soloInput("Ada", "Grace"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	paused, err := svc.PauseDebate(ctx, session.ID)
	if err != nil {
		t.Fatalf("pause failed: %v", err)
	}
	if paused.Status != entities.DebateStatusPaused {
		t.Fatalf("status = %s", paused.Status)
	}
	if _, err := svc.PauseDebate(ctx, session.ID); !errors.Is(err, entities.ErrDebateNotActive) {
		t.Fatalf("double pause: err = %v", err)
	}

	resumed, err := svc.ResumeDebate(ctx, session.ID)
	if err != nil {
		t.Fatalf("resume failed: %v", err)
	}
	if !resumed.IsActive() {
		t.Fatalf("status = %s", resumed.Status)
	}
	if _, err := svc.ResumeDebate(ctx, session.ID); !errors.Is(err, entities.ErrDebateNotPaused) {
		t.Fatalf("double resume: err = %v", err)
	}

	ended, err := svc.EndDebate(ctx, session.ID)
	if err != nil {
		t.Fatalf("end failed: %v", err)
	}
	if !ended.IsFinished() {
		t.Fatalf("status = %s", ended.Status)
	}
	if ended.Winner.Data() == nil {
		t.Fatal("no winner recorded")
	}
	if _, err := svc.EndDebate(ctx, session.ID); !errors.Is(err, entities.ErrDebateFinished) {
		t.Fatalf("double end: err = %v", err)
	}
}

func TestEndDebate_TeamTieGoesToA(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	session, err := svc.CreateDebate(ctx, teamInput(entities.TeamA, entities.TeamB))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	ended, err := svc.EndDebate(ctx, session.ID)
	if err != nil {
		t.Fatalf("end failed: %v", err)
	}
	winner := ended.Winner.Data()
	if winner == nil || winner.Team == nil || *winner.Team != entities.TeamA {
		t.Fatalf("tie must go to team A, got %+v", winner)
	}
}

func TestDeleteDebate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	session, err := svc.CreateDebate(ctx, soloInput("Ada", "Grace"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteDebate(ctx, session.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetDebate(ctx, session.ID); !errors.Is(err, entities.ErrDebateNotFound) {
		t.Fatalf("get after delete: err = %v", err)
	}
	if err := svc.DeleteDebate(ctx, session.ID); !errors.Is(err, entities.ErrDebateNotFound) {
		t.Fatalf("double delete: err = %v", err)
	}
}

func TestGetStats(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	first, err := svc.CreateDebate(ctx, soloInput("Ada", "Grace"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateDebate(ctx, teamInput(entities.TeamA, entities.TeamB)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.EndDebate(ctx, first.ID); err != nil {
		t.Fatalf("end failed: %v", err)
	}

	stats, err := svc.GetStats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalDebates != 2 {
		t.Fatalf("total = %d", stats.TotalDebates)
	}
	if stats.ActiveDebates != 1 || stats.FinishedDebates != 1 {
		t.Fatalf("active = %d, finished = %d", stats.ActiveDebates, stats.FinishedDebates)
	}
	if stats.TotalParticipants != 4 {
		t.Fatalf("participants = %d", stats.TotalParticipants)
	}
}
