package entities

import (
	"time"

	"github.com/google/uuid"
)

// IntentKind classifies why a participant wants to speak out of turn
type IntentKind string

const (
	IntentRespond   IntentKind = "respond"
	IntentQuestion  IntentKind = "question"
	IntentClarify   IntentKind = "clarify"
	IntentChallenge IntentKind = "challenge"
)

// RaiseHandIntent is a solo-mode request to speak next. Entries are
// consumed the moment their participant is chosen by the scheduler.
type RaiseHandIntent struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	DebateID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"debate_id"`
	ParticipantID uuid.UUID  `gorm:"type:uuid;not null" json:"participant_id"`
	Intent        IntentKind `gorm:"type:varchar(20);not null" json:"intent"`
	Priority      int        `gorm:"not null" json:"priority"`
	CreatedAt     time.Time  `gorm:"not null" json:"created_at"`
}

// TableName specifies the table name for RaiseHandIntent
func (RaiseHandIntent) TableName() string {
	return "raise_hand_intents"
}

// NewRaiseHandIntent creates a queued intent timestamped now
func NewRaiseHandIntent(debateID, participantID uuid.UUID, intent IntentKind, priority int) RaiseHandIntent {
	return RaiseHandIntent{
		ID:            uuid.New(),
		DebateID:      debateID,
		ParticipantID: participantID,
		Intent:        intent,
		Priority:      priority,
		CreatedAt:     time.Now(),
	}
}
