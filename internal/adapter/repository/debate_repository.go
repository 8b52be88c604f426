package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/debateclub/arena/internal/domain/entities"
)

// DebateRepository implements the debate repository interface using GORM
type DebateRepository struct {
	db *gorm.DB
}

// NewDebateRepository creates a new debate repository
func NewDebateRepository(db *gorm.DB) *DebateRepository {
	return &DebateRepository{
		db: db,
	}
}

// SaveSession upserts the full session aggregate including participants,
// progress, queue entries and events. Messages are saved individually by
// the pipeline but are also carried here for completeness.
func (r *DebateRepository) SaveSession(ctx context.Context, session *entities.DebateSession) error {
	err := r.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Save(session).Error
	if err != nil {
		return fmt.Errorf("failed to save debate session: %w", err)
	}

	// Only intents the scheduler consumed since load are pruned, by id.
	// Intents enqueued concurrently between this aggregate's load and
	// save keep their rows.
	if len(session.ConsumedRaiseHands) > 0 {
		err := r.db.WithContext(ctx).
			Where("debate_id = ? AND id IN ?", session.ID, session.ConsumedRaiseHands).
			Delete(&entities.RaiseHandIntent{}).Error
		if err != nil {
			return fmt.Errorf("failed to prune raise-hand queue: %w", err)
		}
		session.ConsumedRaiseHands = nil
	}

	return nil
}

// GetSession loads a full session aggregate by id
func (r *DebateRepository) GetSession(ctx context.Context, id uuid.UUID) (*entities.DebateSession, error) {
	var session entities.DebateSession
	err := r.db.WithContext(ctx).
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("participants.created_at ASC")
		}).
		Preload("Progress").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("debate_messages.created_at ASC")
		}).
		Preload("RaiseHandQueue", func(db *gorm.DB) *gorm.DB {
			return db.Order("raise_hand_intents.created_at ASC")
		}).
		Preload("BestMessageEvents", func(db *gorm.DB) *gorm.DB {
			return db.Order("best_message_events.batch_number ASC")
		}).
		Where("id = ?", id).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrDebateNotFound
		}
		return nil, fmt.Errorf("failed to find debate session: %w", err)
	}
	return &session, nil
}

// GetAllSessions returns every session, newest first
func (r *DebateRepository) GetAllSessions(ctx context.Context) ([]*entities.DebateSession, error) {
	var sessions []*entities.DebateSession
	err := r.db.WithContext(ctx).
		Preload("Participants").
		Preload("Progress").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("debate_messages.created_at ASC")
		}).
		Order("created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list debate sessions: %w", err)
	}
	return sessions, nil
}

// DeleteSession removes a session and everything it owns
func (r *DebateRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&entities.DebateMessage{},
			&entities.ParticipantProgress{},
			&entities.RaiseHandIntent{},
			&entities.BestMessageEvent{},
			&entities.Participant{},
		} {
			if err := tx.Where("debate_id = ?", id).Delete(model).Error; err != nil {
				return fmt.Errorf("failed to delete debate children: %w", err)
			}
		}
		if err := tx.Where("id = ?", id).Delete(&entities.DebateSession{}).Error; err != nil {
			return fmt.Errorf("failed to delete debate session: %w", err)
		}
		return nil
	})
}

// SaveMessage persists a single message
func (r *DebateRepository) SaveMessage(ctx context.Context, message *entities.DebateMessage) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(message).Error
	if err != nil {
		return fmt.Errorf("failed to save debate message: %w", err)
	}
	return nil
}

// GetMessages returns all messages of a debate in time order
func (r *DebateRepository) GetMessages(ctx context.Context, debateID uuid.UUID) ([]entities.DebateMessage, error) {
	var messages []entities.DebateMessage
	err := r.db.WithContext(ctx).
		Where("debate_id = ?", debateID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list debate messages: %w", err)
	}
	return messages, nil
}

// SaveBestMessageEvent persists a batch-winner event
func (r *DebateRepository) SaveBestMessageEvent(ctx context.Context, event *entities.BestMessageEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to save best message event: %w", err)
	}
	return nil
}

// GetBestMessageEvents returns the batch-winner events of a debate
func (r *DebateRepository) GetBestMessageEvents(ctx context.Context, debateID uuid.UUID) ([]entities.BestMessageEvent, error) {
	var events []entities.BestMessageEvent
	err := r.db.WithContext(ctx).
		Where("debate_id = ?", debateID).
		Order("batch_number ASC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list best message events: %w", err)
	}
	return events, nil
}
