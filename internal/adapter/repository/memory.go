package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/debateclub/arena/internal/domain/entities"
)

// MemoryDebateRepository keeps sessions in memory. Used when no database
// is configured and in tests; state is lost on restart.
//
// Sessions are copied on every save and load. Runner and handler
// goroutines each work on their own aggregate, the same isolation the
// database-backed repository provides through row scans.
type MemoryDebateRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*entities.DebateSession
	messages map[uuid.UUID][]entities.DebateMessage
	events   map[uuid.UUID][]entities.BestMessageEvent
}

// NewMemoryDebateRepository creates an empty in-memory repository
func NewMemoryDebateRepository() *MemoryDebateRepository {
	return &MemoryDebateRepository{
		sessions: make(map[uuid.UUID]*entities.DebateSession),
		messages: make(map[uuid.UUID][]entities.DebateMessage),
		events:   make(map[uuid.UUID][]entities.BestMessageEvent),
	}
}

// cloneSession copies the aggregate with fresh collection slices. The
// elements themselves are value types; their pointer fields are only
// ever replaced, never mutated in place, so element copies suffice.
func cloneSession(s *entities.DebateSession) *entities.DebateSession {
	c := *s
	c.Participants = append([]entities.Participant(nil), s.Participants...)
	c.Progress = append([]entities.ParticipantProgress(nil), s.Progress...)
	c.Messages = append([]entities.DebateMessage(nil), s.Messages...)
	c.RaiseHandQueue = append([]entities.RaiseHandIntent(nil), s.RaiseHandQueue...)
	c.BestMessageEvents = append([]entities.BestMessageEvent(nil), s.BestMessageEvents...)
	c.ConsumedRaiseHands = nil
	return &c
}

// SaveSession stores a snapshot of the session aggregate. Raise-hand
// entries follow the same rules as the database path: entries the
// aggregate consumed are dropped, entries enqueued by other writers
// since this aggregate was loaded are kept.
func (r *MemoryDebateRepository) SaveSession(_ context.Context, session *entities.DebateSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := cloneSession(session)
	if prev, ok := r.sessions[session.ID]; ok {
		snapshot.RaiseHandQueue = mergeRaiseHands(prev.RaiseHandQueue, snapshot.RaiseHandQueue, session.ConsumedRaiseHands)
	}
	r.sessions[session.ID] = snapshot
	session.ConsumedRaiseHands = nil
	return nil
}

func mergeRaiseHands(stored, incoming []entities.RaiseHandIntent, consumed []uuid.UUID) []entities.RaiseHandIntent {
	dropped := make(map[uuid.UUID]bool, len(consumed))
	for _, id := range consumed {
		dropped[id] = true
	}
	present := make(map[uuid.UUID]bool, len(incoming))
	for _, intent := range incoming {
		present[intent.ID] = true
	}
	for _, intent := range stored {
		if !dropped[intent.ID] && !present[intent.ID] {
			incoming = append(incoming, intent)
		}
	}
	return incoming
}

// GetSession returns a copy of the session by id
func (r *MemoryDebateRepository) GetSession(_ context.Context, id uuid.UUID) (*entities.DebateSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, entities.ErrDebateNotFound
	}
	return cloneSession(session), nil
}

// GetAllSessions returns copies of every session, newest first
func (r *MemoryDebateRepository) GetAllSessions(_ context.Context) ([]*entities.DebateSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sessions := make([]*entities.DebateSession, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, cloneSession(s))
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})
	return sessions, nil
}

// DeleteSession removes a session and its owned records
func (r *MemoryDebateRepository) DeleteSession(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	delete(r.messages, id)
	delete(r.events, id)
	return nil
}

// SaveMessage upserts a message by id
func (r *MemoryDebateRepository) SaveMessage(_ context.Context, message *entities.DebateMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.messages[message.DebateID]
	for i := range list {
		if list[i].ID == message.ID {
			list[i] = *message
			return nil
		}
	}
	r.messages[message.DebateID] = append(list, *message)
	return nil
}

// GetMessages returns the messages of a debate in append order
func (r *MemoryDebateRepository) GetMessages(_ context.Context, debateID uuid.UUID) ([]entities.DebateMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.DebateMessage(nil), r.messages[debateID]...), nil
}

// SaveBestMessageEvent appends a batch-winner event
func (r *MemoryDebateRepository) SaveBestMessageEvent(_ context.Context, event *entities.BestMessageEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[event.DebateID] = append(r.events[event.DebateID], *event)
	return nil
}

// GetBestMessageEvents returns the batch-winner events of a debate
func (r *MemoryDebateRepository) GetBestMessageEvents(_ context.Context, debateID uuid.UUID) ([]entities.BestMessageEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entities.BestMessageEvent(nil), r.events[debateID]...), nil
}
