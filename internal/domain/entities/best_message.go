package entities

import (
	"time"

	"github.com/google/uuid"
)

// BestMessageEvent is emitted once per completed 5-message batch that
// yields a qualifying best message.
type BestMessageEvent struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	DebateID      uuid.UUID `gorm:"type:uuid;not null;index" json:"debate_id"`
	MessageID     uuid.UUID `gorm:"type:uuid;not null" json:"message_id"`
	ParticipantID uuid.UUID `gorm:"type:uuid;not null" json:"participant_id"`
	BatchNumber   int       `gorm:"not null" json:"batch_number"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

// TableName specifies the table name for BestMessageEvent
func (BestMessageEvent) TableName() string {
	return "best_message_events"
}

// NewBestMessageEvent creates an event for the batch winner
func NewBestMessageEvent(debateID, messageID, participantID uuid.UUID, batchNumber int, now time.Time) BestMessageEvent {
	return BestMessageEvent{
		ID:            uuid.New(),
		DebateID:      debateID,
		MessageID:     messageID,
		ParticipantID: participantID,
		BatchNumber:   batchNumber,
		CreatedAt:     now,
	}
}
