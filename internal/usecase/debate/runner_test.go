package debate

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/debateclub/arena/internal/adapter/repository"
	"github.com/debateclub/arena/internal/domain/entities"
	"github.com/debateclub/arena/internal/infrastructure/cache"
)

func newTestOrchestrator(gen *fakeGenerator) (*Orchestrator, *repository.MemoryDebateRepository) {
	repo := repository.NewMemoryDebateRepository()
	pipeline := NewPipeline(repo, gen, &fakeJudge{}, zap.NewNop())
	o := NewOrchestrator(repo, pipeline, NewSeededScheduler(1), cache.NewMemoryStore(), time.Hour, zap.NewNop())
	return o, repo
}

func TestTick_ProducesMessage(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"Opening argument about grid economics and storage costs."}}
	o, repo := newTestOrchestrator(gen)

	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")
	if err := repo.SaveSession(context.Background(), session); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	if done := o.tick(session.ID, 1); done {
		t.Fatal("tick retired a live debate")
	}

	saved, err := repo.GetSession(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("reload session: %v", err)
	}
	if len(saved.Messages) != 1 {
		t.Fatalf("expected 1 message after tick, got %d", len(saved.Messages))
	}
}

func TestTick_AdvancesPhaseWithoutSpeaking(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"should not be used this tick"}}
	o, repo := newTestOrchestrator(gen)

	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")
	session.PhaseStartTime = time.Now().Add(-3 * time.Minute)
	if err := repo.SaveSession(context.Background(), session); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	if done := o.tick(session.ID, 1); done {
		t.Fatal("tick retired a live debate")
	}

	saved, _ := repo.GetSession(context.Background(), session.ID)
	if saved.CurrentPhase != entities.PhaseRebuttals {
		t.Fatalf("phase = %s, want rebuttals", saved.CurrentPhase)
	}
	if len(saved.Messages) != 0 {
		t.Fatal("phase transition tick must not produce a message")
	}
	if len(gen.calls) != 0 {
		t.Fatal("generator called during a phase transition tick")
	}
}

func TestTick_FinishesAtTimeLimit(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"unused"}}
	o, repo := newTestOrchestrator(gen)

	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")
	session.StartTime = time.Now().Add(-session.TimeLimit() - time.Minute)
	if err := repo.SaveSession(context.Background(), session); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	if done := o.tick(session.ID, 1); !done {
		t.Fatal("expected runner to retire at the time limit")
	}

	saved, _ := repo.GetSession(context.Background(), session.ID)
	if !saved.IsFinished() {
		t.Fatalf("status = %s, want finished", saved.Status)
	}
	if saved.Winner.Data() == nil {
		t.Fatal("no winner recorded")
	}
	if saved.EndTime == nil {
		t.Fatal("no end time recorded")
	}

	// A finished debate keeps retiring on subsequent ticks
	if done := o.tick(session.ID, 2); !done {
		t.Fatal("finished debate must retire the runner")
	}
}

func TestTick_PausedDebateIdles(t *testing.T) {
	gen := &fakeGenerator{responses: []string{"unused"}}
	o, repo := newTestOrchestrator(gen)

	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")
	session.Status = entities.DebateStatusPaused
	if err := repo.SaveSession(context.Background(), session); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	if done := o.tick(session.ID, 1); done {
		t.Fatal("paused debate must keep its runner alive")
	}
	saved, _ := repo.GetSession(context.Background(), session.ID)
	if len(saved.Messages) != 0 {
		t.Fatal("paused debate produced a message")
	}
}

func TestTick_MissingSessionRetires(t *testing.T) {
	o, _ := newTestOrchestrator(&fakeGenerator{responses: []string{"unused"}})
	if done := o.tick(uuid.New(), 1); !done {
		t.Fatal("missing session must retire the runner")
	}
}

func TestOrchestrator_StartStopIdempotent(t *testing.T) {
	o, repo := newTestOrchestrator(&fakeGenerator{responses: []string{"unused"}})
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")
	if err := repo.SaveSession(context.Background(), session); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	o.Start(session.ID)
	o.Start(session.ID) // second start is a no-op
	o.Stop(session.ID)
	o.Stop(session.ID) // second stop must not panic
	o.Shutdown()
}

func TestResumeActive(t *testing.T) {
	o, repo := newTestOrchestrator(&fakeGenerator{responses: []string{"unused"}})
	defer o.Shutdown()

	active := newTestSession(entities.DebateModeSolo, "Ada", "Grace")
	finished := newTestSession(entities.DebateModeSolo, "Alan", "Edsger")
	finished.Finish(time.Now())
	for _, s := range []*entities.DebateSession{active, finished} {
		if err := repo.SaveSession(context.Background(), s); err != nil {
			t.Fatalf("seed session: %v", err)
		}
	}

	if err := o.ResumeActive(context.Background()); err != nil {
		t.Fatalf("resume failed: %v", err)
	}

	o.mu.Lock()
	_, activeRunning := o.runners[active.ID]
	_, finishedRunning := o.runners[finished.ID]
	o.mu.Unlock()
	if !activeRunning {
		t.Fatal("active debate has no runner")
	}
	if finishedRunning {
		t.Fatal("finished debate got a runner")
	}
}
