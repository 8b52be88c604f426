package debate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/debateclub/arena/internal/adapter/repository"
	"github.com/debateclub/arena/internal/domain/entities"
	"github.com/debateclub/arena/internal/domain/repositories"
	"github.com/debateclub/arena/internal/usecase/judge"
	"github.com/debateclub/arena/pkg/ai"
)

type fakeGenerator struct {
	responses []string
	err       error
	calls     []ai.GenerateParams
}

func (f *fakeGenerator) Generate(_ context.Context, params ai.GenerateParams) (string, error) {
	f.calls = append(f.calls, params)
	if f.err != nil {
		return "", f.err
	}
	idx := len(f.calls) - 1
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	return f.responses[idx], nil
}

type fakeJudge struct {
	totals []float64
	i      int
}

func (f *fakeJudge) Score(_ context.Context, _ judge.ScoreInput) entities.MessageScore {
	total := 5.0
	if f.i < len(f.totals) {
		total = f.totals[f.i]
	}
	f.i++
	return entities.MessageScore{
		Total:           total,
		ArgumentQuality: total / 2,
		Relevance:       1,
		Evidence:        1,
		Clarity:         1,
		Rationale:       "test verdict",
	}
}

func newTestPipeline(gen *fakeGenerator, j judge.Service) (*Pipeline, *repository.MemoryDebateRepository) {
	repo := repository.NewMemoryDebateRepository()
	return NewPipeline(repo, gen, j, zap.NewNop()), repo
}

func scoredMessage(session *entities.DebateSession, participant *entities.Participant, content string, total float64, at time.Time) entities.DebateMessage {
	m := entities.NewDebateMessage(session.ID, participant.ID, content, session.CurrentPhase, at)
	m.AttachScore(entities.MessageScore{Total: total})
	return m
}

func TestProduceMessage_SavesScoredMessage(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"Grid storage changes the economics of renewables entirely."}}
	pipeline, repo := newTestPipeline(gen, &fakeJudge{totals: []float64{7.5}})
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")
	now := time.Now()

	if err := pipeline.ProduceMessage(context.Background(), session, &session.Participants[0], now); err != nil {
		t.Fatalf("produce failed: %v", err)
	}

	if len(session.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(session.Messages))
	}
	msg := session.Messages[0]
	if msg.Content != gen.responses[0] {
		t.Fatalf("unexpected content %q", msg.Content)
	}
	if msg.ScoreValue() == nil || msg.ScoreValue().Total != 7.5 {
		t.Fatalf("unexpected score %+v", msg.ScoreValue())
	}

	progress := session.ProgressFor(session.Participants[0].ID)
	if progress.MessagesCount != 1 {
		t.Fatalf("messages count = %d", progress.MessagesCount)
	}
	if progress.Points != 17 { // 10 base + floor(7.5)
		t.Fatalf("points = %d, want 17", progress.Points)
	}
	if progress.LastSpeakTime == nil || !progress.LastSpeakTime.Equal(now) {
		t.Fatalf("last speak time = %v", progress.LastSpeakTime)
	}

	saved, err := repo.GetMessages(context.Background(), session.ID)
	if err != nil || len(saved) != 1 {
		t.Fatalf("persisted messages = %d (err %v)", len(saved), err)
	}
	if _, err := repo.GetSession(context.Background(), session.ID); err != nil {
		t.Fatalf("session not persisted: %v", err)
	}
}

func TestProduceMessage_GenerationError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("provider down")}
	pipeline, _ := newTestPipeline(gen, &fakeJudge{})
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")

	err := pipeline.ProduceMessage(context.Background(), session, &session.Participants[0], time.Now())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(session.Messages) != 0 {
		t.Fatalf("message saved despite failure: %d", len(session.Messages))
	}
}

func TestProduceMessage_EmptyTextSkipped(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"   "}}
	pipeline, _ := newTestPipeline(gen, &fakeJudge{})
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")

	if err := pipeline.ProduceMessage(context.Background(), session, &session.Participants[0], time.Now()); err != nil {
		t.Fatalf("produce failed: %v", err)
	}
	if len(session.Messages) != 0 {
		t.Fatalf("empty text should not be saved, got %d messages", len(session.Messages))
	}
}

func TestProduceMessage_DuplicateRetriesOnce(t *testing.T) {
	prior := "Solar energy will dominate future power grids for decades."
	gen := &fakeGenerator{responses: []string{
		"Solar energy will dominate future power grids for years.",
		"Transmission capacity is the real bottleneck nobody mentions.",
	}}
	pipeline, _ := newTestPipeline(gen, &fakeJudge{})
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")
	session.Messages = append(session.Messages, scoredMessage(session, &session.Participants[1], prior, 6, time.Now()))

	if err := pipeline.ProduceMessage(context.Background(), session, &session.Participants[0], time.Now()); err != nil {
		t.Fatalf("produce failed: %v", err)
	}

	if len(gen.calls) != 2 {
		t.Fatalf("expected a single retry, got %d calls", len(gen.calls))
	}
	if !strings.Contains(gen.calls[1].System, "COMPLETELY DIFFERENT") {
		t.Fatal("retry prompt missing the diversity escalation")
	}
	if len(session.Messages) != 2 || session.Messages[1].Content != gen.responses[1] {
		t.Fatalf("retry content not saved: %v", session.Messages)
	}
}

func TestProduceMessage_PersistentDuplicateDropped(t *testing.T) {
	prior := "Solar energy will dominate future power grids for decades."
	gen := &fakeGenerator{responses: []string{
		"Solar energy will dominate future power grids for years.",
		"Solar energy will dominate future power grids this century.",
	}}
	pipeline, _ := newTestPipeline(gen, &fakeJudge{})
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")
	session.Messages = append(session.Messages, scoredMessage(session, &session.Participants[1], prior, 6, time.Now()))

	if err := pipeline.ProduceMessage(context.Background(), session, &session.Participants[0], time.Now()); err != nil {
		t.Fatalf("duplicate drop must not error: %v", err)
	}
	if len(session.Messages) != 1 {
		t.Fatalf("duplicate was saved: %d messages", len(session.Messages))
	}
}

func TestProduceMessage_BatchWinnerSelection(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"Interconnect queues delay every new project by years now."}}
	pipeline, repo := newTestPipeline(gen, &fakeJudge{totals: []float64{6}})
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")
	now := time.Now()

	ada := &session.Participants[0]
	grace := &session.Participants[1]
	for i, tc := range []struct {
		p     *entities.Participant
		total float64
	}{
		{grace, 7}, {ada, 3}, {grace, 4}, {ada, 5},
	} {
		m := scoredMessage(session, tc.p, "seeded argument number "+strings.Repeat("x", i+1), tc.total, now.Add(time.Duration(i)*time.Second))
		session.Messages = append(session.Messages, m)
	}

	gracePointsBefore := session.ProgressFor(grace.ID).Points

	if err := pipeline.ProduceMessage(context.Background(), session, ada, now); err != nil {
		t.Fatalf("produce failed: %v", err)
	}

	if len(session.Messages) != 5 {
		t.Fatalf("expected 5 messages, got %d", len(session.Messages))
	}
	if !session.Messages[0].IsBestMessage {
		t.Fatal("highest scored message not marked best")
	}
	for _, m := range session.Messages[1:] {
		if m.IsBestMessage {
			t.Fatalf("wrong message marked best: %q", m.Content)
		}
	}

	graceProgress := session.ProgressFor(grace.ID)
	if graceProgress.Points != gracePointsBefore+5 {
		t.Fatalf("bonus points = %d, want %d", graceProgress.Points, gracePointsBefore+5)
	}
	if graceProgress.BestMessagesCount != 1 {
		t.Fatalf("best count = %d", graceProgress.BestMessagesCount)
	}

	if len(session.BestMessageEvents) != 1 {
		t.Fatalf("expected 1 event, got %d", len(session.BestMessageEvents))
	}
	event := session.BestMessageEvents[0]
	if event.BatchNumber != 1 {
		t.Fatalf("batch number = %d", event.BatchNumber)
	}
	if event.MessageID != session.Messages[0].ID {
		t.Fatal("event references the wrong message")
	}

	events, err := repo.GetBestMessageEvents(context.Background(), session.ID)
	if err != nil || len(events) != 1 {
		t.Fatalf("persisted events = %d (err %v)", len(events), err)
	}
}

func TestProduceMessage_BatchTieKeepsEarliest(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"A completely novel framing about distributed generation economics."}}
	pipeline, _ := newTestPipeline(gen, &fakeJudge{totals: []float64{4}})
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")
	now := time.Now()

	ada := &session.Participants[0]
	grace := &session.Participants[1]
	for i, tc := range []struct {
		p     *entities.Participant
		total float64
	}{
		{grace, 6}, {ada, 6}, {grace, 3}, {ada, 2},
	} {
		m := scoredMessage(session, tc.p, "seeded argument number "+strings.Repeat("y", i+1), tc.total, now.Add(time.Duration(i)*time.Second))
		session.Messages = append(session.Messages, m)
	}

	if err := pipeline.ProduceMessage(context.Background(), session, ada, now); err != nil {
		t.Fatalf("produce failed: %v", err)
	}
	if !session.Messages[0].IsBestMessage {
		t.Fatal("tie must keep the earliest message")
	}
	if session.Messages[1].IsBestMessage {
		t.Fatal("later tied message must not win")
	}
}

type failingSessionRepo struct {
	repositories.DebateRepository
	failSessionSave bool
}

func (f *failingSessionRepo) SaveSession(ctx context.Context, session *entities.DebateSession) error {
	if f.failSessionSave {
		return errors.New("connection reset")
	}
	return f.DebateRepository.SaveSession(ctx, session)
}

func TestProduceMessage_SessionSaveFailureLeavesNoRows(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"Storage costs fell faster than every forecast predicted."}}
	mem := repository.NewMemoryDebateRepository()
	pipeline := NewPipeline(&failingSessionRepo{DebateRepository: mem, failSessionSave: true}, gen, &fakeJudge{}, zap.NewNop())
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")

	if err := pipeline.ProduceMessage(context.Background(), session, &session.Participants[0], time.Now()); err == nil {
		t.Fatal("expected error from failed session save")
	}

	saved, err := mem.GetMessages(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("get messages: %v", err)
	}
	if len(saved) != 0 {
		t.Fatalf("message rows persisted despite failed session save: %d", len(saved))
	}
}

func TestBuildSystemPrompt_AvoidListRuneSafe(t *testing.T) {
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")
	avoid := []string{strings.Repeat("気", 120)}

	prompt := buildSystemPrompt(session, &session.Participants[0], nil, avoid, false)

	if !utf8.ValidString(prompt) {
		t.Fatal("prompt contains a split rune")
	}
	if !strings.Contains(prompt, strings.Repeat("気", 100)+"...") {
		t.Fatal("avoid entry not truncated at 100 runes")
	}
	if strings.Contains(prompt, strings.Repeat("気", 101)) {
		t.Fatal("avoid entry longer than 100 runes")
	}
}
