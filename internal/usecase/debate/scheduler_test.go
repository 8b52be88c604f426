package debate

import (
	"testing"
	"time"

	"github.com/debateclub/arena/internal/domain/entities"
)

func newTestSession(mode entities.DebateMode, names ...string) *entities.DebateSession {
	participants := make([]entities.Participant, 0, len(names))
	for i, name := range names {
		var team *entities.Team
		if mode == entities.DebateModeTeam {
			side := entities.TeamA
			if i%2 == 1 {
				side = entities.TeamB
			}
			team = &side
		}
		participants = append(participants, entities.NewParticipant(name, team, "openai", "gpt-4o-mini", entities.RoleStyleAnalytical, 0.7, i))
	}
	return entities.NewDebateSession("Renewable energy", nil, mode, entities.FormatClassic, "openai", "gpt-4o-mini", entities.DefaultRules(), participants)
}

func setLastSpoke(session *entities.DebateSession, p *entities.Participant, at time.Time) {
	session.ProgressFor(p.ID).LastSpeakTime = &at
}

func TestAdvancePhase(t *testing.T) {
	s := NewSeededScheduler(1)
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")
	now := time.Now()

	// Opening in classic runs 2 minutes
	session.PhaseStartTime = now.Add(-time.Minute)
	if s.AdvancePhase(session, now) {
		t.Fatal("advanced with budget remaining")
	}
	if session.CurrentPhase != entities.PhaseOpening {
		t.Fatalf("phase changed to %s", session.CurrentPhase)
	}

	session.PhaseStartTime = now.Add(-2 * time.Minute)
	if !s.AdvancePhase(session, now) {
		t.Fatal("did not advance after budget elapsed")
	}
	if session.CurrentPhase != entities.PhaseRebuttals {
		t.Fatalf("expected rebuttals, got %s", session.CurrentPhase)
	}
	if !session.PhaseStartTime.Equal(now) {
		t.Fatal("phase start time not reset")
	}
}

func TestAdvancePhase_LastPhaseHolds(t *testing.T) {
	s := NewSeededScheduler(1)
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")
	now := time.Now()

	session.CurrentPhase = entities.PhaseClosing
	session.PhaseStartTime = now.Add(-time.Hour)
	if s.AdvancePhase(session, now) {
		t.Fatal("closing phase must not advance")
	}
	if session.CurrentPhase != entities.PhaseClosing {
		t.Fatalf("phase changed to %s", session.CurrentPhase)
	}
}

func TestNextSpeaker_CooldownFiltersEveryone(t *testing.T) {
	s := NewSeededScheduler(1)
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")
	now := time.Now()

	setLastSpoke(session, &session.Participants[0], now.Add(-5*time.Second))
	setLastSpoke(session, &session.Participants[1], now.Add(-10*time.Second)) // boundary, still cooling

	if chosen := s.NextSpeaker(session, now); chosen != nil {
		t.Fatalf("expected no speaker, got %s", chosen.Name)
	}

	setLastSpoke(session, &session.Participants[1], now.Add(-11*time.Second))
	chosen := s.NextSpeaker(session, now)
	if chosen == nil || chosen.Name != "Grace" {
		t.Fatalf("expected Grace past cooldown, got %v", chosen)
	}
}

func TestNextSpeaker_NeverSpokenGoesFirst(t *testing.T) {
	s := NewSeededScheduler(1)
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace", "Alan")
	now := time.Now()

	setLastSpoke(session, &session.Participants[0], now.Add(-time.Minute))
	setLastSpoke(session, &session.Participants[2], now.Add(-2*time.Minute))

	chosen := s.NextSpeaker(session, now)
	if chosen == nil || chosen.Name != "Grace" {
		t.Fatalf("expected never-spoken Grace, got %v", chosen)
	}
}

func TestNextSpeaker_LeastRecentWins(t *testing.T) {
	s := NewSeededScheduler(1)
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace", "Alan")
	now := time.Now()

	setLastSpoke(session, &session.Participants[0], now.Add(-time.Minute))
	setLastSpoke(session, &session.Participants[1], now.Add(-3*time.Minute))
	setLastSpoke(session, &session.Participants[2], now.Add(-2*time.Minute))

	chosen := s.NextSpeaker(session, now)
	if chosen == nil || chosen.Name != "Grace" {
		t.Fatalf("expected least recent Grace, got %v", chosen)
	}
}

func TestNextSpeaker_RaiseHandPriority(t *testing.T) {
	s := NewSeededScheduler(1)
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace", "Alan")
	now := time.Now()

	session.EnqueueRaiseHand(session.Participants[0].ID, entities.IntentRespond, 5)
	session.EnqueueRaiseHand(session.Participants[1].ID, entities.IntentChallenge, 9)

	chosen := s.NextSpeaker(session, now)
	if chosen == nil || chosen.Name != "Grace" {
		t.Fatalf("expected highest priority Grace, got %v", chosen)
	}

	// Grace's intent is consumed, Ada's stays queued
	if len(session.RaiseHandQueue) != 1 || session.RaiseHandQueue[0].ParticipantID != session.Participants[0].ID {
		t.Fatalf("unexpected queue after dequeue: %v", session.RaiseHandQueue)
	}
}

func TestNextSpeaker_RaiseHandTieGoesToEarliest(t *testing.T) {
	s := NewSeededScheduler(1)
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")
	now := time.Now()

	first := session.EnqueueRaiseHand(session.Participants[1].ID, entities.IntentQuestion, 5)
	session.EnqueueRaiseHand(session.Participants[0].ID, entities.IntentRespond, 5)
	// Force a clear ordering regardless of clock resolution
	session.RaiseHandQueue[1].CreatedAt = first.CreatedAt.Add(time.Second)

	chosen := s.NextSpeaker(session, now)
	if chosen == nil || chosen.ID != session.Participants[1].ID {
		t.Fatalf("expected earliest requester Grace, got %v", chosen)
	}
}

func TestNextSpeaker_QueuedButCoolingFallsBack(t *testing.T) {
	s := NewSeededScheduler(1)
	session := newTestSession(entities.DebateModeSolo, "Ada", "Grace")
	now := time.Now()

	session.EnqueueRaiseHand(session.Participants[0].ID, entities.IntentRespond, 9)
	setLastSpoke(session, &session.Participants[0], now.Add(-2*time.Second))

	chosen := s.NextSpeaker(session, now)
	if chosen == nil || chosen.Name != "Grace" {
		t.Fatalf("expected fallback to Grace, got %v", chosen)
	}
	// The cooling participant keeps their place in the queue
	if len(session.RaiseHandQueue) != 1 {
		t.Fatalf("queue should be untouched, got %v", session.RaiseHandQueue)
	}
}

func TestNextSpeaker_TeamModePicksEligible(t *testing.T) {
	s := NewSeededScheduler(7)
	session := newTestSession(entities.DebateModeTeam, "Ada", "Grace", "Alan", "Edsger")
	now := time.Now()

	setLastSpoke(session, &session.Participants[0], now.Add(-time.Second))
	setLastSpoke(session, &session.Participants[2], now.Add(-3*time.Second))

	for i := 0; i < 10; i++ {
		chosen := s.NextSpeaker(session, now)
		if chosen == nil {
			t.Fatal("expected a speaker")
		}
		if chosen.Name != "Grace" && chosen.Name != "Edsger" {
			t.Fatalf("picked cooling participant %s", chosen.Name)
		}
	}
}
