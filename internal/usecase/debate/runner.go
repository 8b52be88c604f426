package debate

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/debateclub/arena/internal/domain/entities"
	"github.com/debateclub/arena/internal/domain/repositories"
	"github.com/debateclub/arena/internal/infrastructure/cache"
	"github.com/debateclub/arena/pkg/jobcontext"
)

// Orchestrator runs one ticker goroutine per live debate. Every tick
// reloads the session, checks the overall time limit, advances the
// phase when its budget is spent, and otherwise lets the scheduler pick
// a speaker for the pipeline. Ticks are serialized per debate; a slow
// tick simply drops the ticks it overlapped.
type Orchestrator struct {
	repo      repositories.DebateRepository
	pipeline  *Pipeline
	scheduler *Scheduler
	cache     cache.Store
	interval  time.Duration
	logger    *zap.Logger

	mu      sync.Mutex
	runners map[uuid.UUID]chan struct{}
	wg      sync.WaitGroup
}

// NewOrchestrator creates an orchestrator; interval is the tick period
func NewOrchestrator(repo repositories.DebateRepository, pipeline *Pipeline, scheduler *Scheduler, store cache.Store, interval time.Duration, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		repo:      repo,
		pipeline:  pipeline,
		scheduler: scheduler,
		cache:     store,
		interval:  interval,
		logger:    logger,
		runners:   make(map[uuid.UUID]chan struct{}),
	}
}

// Start launches the tick loop for a debate. Idempotent: a debate that
// already has a runner keeps it.
func (o *Orchestrator) Start(debateID uuid.UUID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, running := o.runners[debateID]; running {
		return
	}

	stop := make(chan struct{})
	o.runners[debateID] = stop
	o.wg.Add(1)
	go o.run(debateID, stop)

	o.logger.Info("debate runner started", zap.String("debate_id", debateID.String()))
}

// Stop terminates the runner of a debate, if any
func (o *Orchestrator) Stop(debateID uuid.UUID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if stop, running := o.runners[debateID]; running {
		close(stop)
		delete(o.runners, debateID)
	}
}

// Shutdown stops every runner and waits for in-flight ticks to drain
func (o *Orchestrator) Shutdown() {
	o.mu.Lock()
	for id, stop := range o.runners {
		close(stop)
		delete(o.runners, id)
	}
	o.mu.Unlock()
	o.wg.Wait()
}

// ResumeActive restarts runners for debates that were live when the
// process last stopped.
func (o *Orchestrator) ResumeActive(ctx context.Context) error {
	sessions, err := o.repo.GetAllSessions(ctx)
	if err != nil {
		return err
	}
	for _, s := range sessions {
		if s.Status == entities.DebateStatusActive || s.Status == entities.DebateStatusPaused {
			o.Start(s.ID)
		}
	}
	return nil
}

func (o *Orchestrator) run(debateID uuid.UUID, stop <-chan struct{}) {
	defer o.wg.Done()

	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	var seq uint64
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			seq++
			if done := o.tick(debateID, seq); done {
				o.Stop(debateID)
				return
			}
		}
	}
}

// tick runs one scheduling step. Returns true when the runner should
// retire: the debate finished, was deleted, or cannot be loaded.
func (o *Orchestrator) tick(debateID uuid.UUID, seq uint64) bool {
	ctx, cancel := jobcontext.TickBegin(context.Background(), debateID, seq)
	defer cancel()

	session, err := o.repo.GetSession(ctx, debateID)
	if err != nil {
		if errors.Is(err, entities.ErrDebateNotFound) {
			return true
		}
		o.logger.Error("tick failed to load session",
			zap.String("debate_id", debateID.String()),
			zap.Error(err),
		)
		return false
	}

	if session.IsFinished() {
		return true
	}
	if !session.IsActive() {
		return false
	}

	now := time.Now()

	if now.Sub(session.StartTime) >= session.TimeLimit() {
		return o.finish(ctx, session, now)
	}

	if o.scheduler.AdvancePhase(session, now) {
		if err := o.repo.SaveSession(ctx, session); err != nil {
			o.logger.Error("failed to save phase transition",
				zap.String("debate_id", debateID.String()),
				zap.Error(err),
			)
			return false
		}
		o.invalidate(ctx, session.ID)
		o.logger.Info("phase advanced",
			zap.String("debate_id", debateID.String()),
			zap.String("phase", string(session.CurrentPhase)),
		)
		return false
	}

	speaker := o.scheduler.NextSpeaker(session, now)
	if speaker == nil {
		return false
	}

	if err := o.pipeline.ProduceMessage(ctx, session, speaker, now); err != nil {
		o.logger.Warn("tick produced no message",
			zap.String("debate_id", debateID.String()),
			zap.String("participant", speaker.Name),
			zap.Uint64("tick", jobcontext.GetTickSeq(ctx)),
			zap.Error(err),
		)
		return false
	}

	o.invalidate(ctx, session.ID)
	return false
}

// finish ends the debate exactly once from the runner side
func (o *Orchestrator) finish(ctx context.Context, session *entities.DebateSession, now time.Time) bool {
	winner := session.Finish(now)
	if err := o.repo.SaveSession(ctx, session); err != nil {
		// Leave the session active so the next tick retries the finish
		o.logger.Error("failed to save finished debate",
			zap.String("debate_id", session.ID.String()),
			zap.Error(err),
		)
		return false
	}
	o.invalidate(ctx, session.ID)

	fields := []zap.Field{
		zap.String("debate_id", session.ID.String()),
		zap.Int("final_score", winner.FinalScore),
	}
	if winner.Team != nil {
		fields = append(fields, zap.String("winning_team", string(*winner.Team)))
	}
	if winner.ParticipantID != nil {
		fields = append(fields, zap.String("winner_id", winner.ParticipantID.String()))
	}
	o.logger.Info("debate finished", fields...)
	return true
}

func (o *Orchestrator) invalidate(ctx context.Context, debateID uuid.UUID) {
	if o.cache == nil {
		return
	}
	if err := o.cache.Delete(ctx, sessionCacheKey(debateID)); err != nil {
		o.logger.Debug("cache invalidation failed", zap.Error(err))
	}
}
