package debate

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/debateclub/arena/internal/domain/entities"
)

// speakCooldown is the minimum gap between two turns of the same
// participant.
const speakCooldown = 10 * time.Second

// Scheduler decides phase transitions and speaker turns. It is pure
// apart from the random source used for team-mode selection, so tests
// can drive it with a seeded source and fixed clocks.
type Scheduler struct {
	cooldown time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

// NewScheduler creates a scheduler with the default cooldown and a
// time-seeded random source.
func NewScheduler() *Scheduler {
	return &Scheduler{
		cooldown: speakCooldown,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededScheduler creates a deterministic scheduler for tests
func NewSeededScheduler(seed int64) *Scheduler {
	return &Scheduler{
		cooldown: speakCooldown,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// AdvancePhase moves the session to the next phase when the current one
// has used up its budget. Returns true when a transition happened; the
// caller persists the session and skips speaker selection for that tick.
// The last phase never advances here: the overall time limit ends the
// debate instead.
func (s *Scheduler) AdvancePhase(session *entities.DebateSession, now time.Time) bool {
	budget, ok := session.Format.PhaseDuration(session.CurrentPhase)
	if !ok {
		return false
	}
	if now.Sub(session.PhaseStartTime) < budget {
		return false
	}
	next, ok := entities.NextPhase(session.CurrentPhase)
	if !ok {
		return false
	}
	session.CurrentPhase = next
	session.PhaseStartTime = now
	session.UpdatedAt = now
	return true
}

// NextSpeaker picks the participant who speaks this tick, or nil when
// everyone is cooling down.
//
// Solo mode honours the raise-hand queue first: highest priority wins,
// ties go to the earliest request, and the chosen participant's queued
// intents are consumed. With an empty queue the least recent speaker
// goes next, never-spoken participants first. Team mode picks uniformly
// at random among the eligible.
func (s *Scheduler) NextSpeaker(session *entities.DebateSession, now time.Time) *entities.Participant {
	eligible := s.eligibleParticipants(session, now)
	if len(eligible) == 0 {
		return nil
	}

	if session.Mode == entities.DebateModeSolo {
		if chosen := s.dequeueRaisedHand(session, eligible); chosen != nil {
			return chosen
		}
		return leastRecentSpeaker(session, eligible)
	}

	s.mu.Lock()
	idx := s.rng.Intn(len(eligible))
	s.mu.Unlock()
	return eligible[idx]
}

func (s *Scheduler) eligibleParticipants(session *entities.DebateSession, now time.Time) []*entities.Participant {
	eligible := make([]*entities.Participant, 0, len(session.Participants))
	for i := range session.Participants {
		p := &session.Participants[i]
		last := session.ProgressFor(p.ID).LastSpeakTime
		if last == nil || now.Sub(*last) > s.cooldown {
			eligible = append(eligible, p)
		}
	}
	return eligible
}

func (s *Scheduler) dequeueRaisedHand(session *entities.DebateSession, eligible []*entities.Participant) *entities.Participant {
	eligibleByID := make(map[string]*entities.Participant, len(eligible))
	for _, p := range eligible {
		eligibleByID[p.ID.String()] = p
	}

	queued := make([]entities.RaiseHandIntent, 0, len(session.RaiseHandQueue))
	for _, intent := range session.RaiseHandQueue {
		if _, ok := eligibleByID[intent.ParticipantID.String()]; ok {
			queued = append(queued, intent)
		}
	}
	if len(queued) == 0 {
		return nil
	}

	sort.SliceStable(queued, func(i, j int) bool {
		if queued[i].Priority != queued[j].Priority {
			return queued[i].Priority > queued[j].Priority
		}
		return queued[i].CreatedAt.Before(queued[j].CreatedAt)
	})

	chosen := eligibleByID[queued[0].ParticipantID.String()]
	session.RemoveRaisedHands(chosen.ID)
	return chosen
}

func leastRecentSpeaker(session *entities.DebateSession, eligible []*entities.Participant) *entities.Participant {
	chosen := eligible[0]
	chosenLast := lastSpoke(session, chosen)
	for _, p := range eligible[1:] {
		if last := lastSpoke(session, p); last.Before(chosenLast) {
			chosen = p
			chosenLast = last
		}
	}
	return chosen
}

func lastSpoke(session *entities.DebateSession, p *entities.Participant) time.Time {
	if last := session.ProgressFor(p.ID).LastSpeakTime; last != nil {
		return *last
	}
	return time.Time{}
}
