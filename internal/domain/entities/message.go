package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// MessageScore is the judged quality of a single message. Total is the
// sum of the sub-scores clamped to [0,10].
type MessageScore struct {
	Total           float64 `json:"total"`            // 0-10
	ArgumentQuality float64 `json:"argument_quality"` // 0-4
	Relevance       float64 `json:"relevance"`        // 0-2
	Evidence        float64 `json:"evidence"`         // 0-2
	Clarity         float64 `json:"clarity"`          // 0-2
	Rationale       string  `json:"rationale"`
}

// DebateMessage is one argument produced by a participant. Content,
// participant and timestamps are fixed at creation; the score is attached
// at most once afterwards and the best-message flag set by batch selection.
type DebateMessage struct {
	ID              uuid.UUID                         `gorm:"type:uuid;primary_key" json:"id"`
	DebateID        uuid.UUID                         `gorm:"type:uuid;not null;index" json:"debate_id"`
	ParticipantID   uuid.UUID                         `gorm:"type:uuid;not null;index" json:"participant_id"`
	Content         string                            `gorm:"type:text;not null" json:"content"`
	Phase           DebatePhase                       `gorm:"type:varchar(20);not null" json:"phase"`
	Score           datatypes.JSONType[*MessageScore] `gorm:"type:jsonb" json:"score"`
	IsBestMessage   bool                              `gorm:"default:false" json:"is_best_message"`
	BestMessageRank *int                              `json:"best_message_rank,omitempty"`
	CreatedAt       time.Time                         `gorm:"not null;index" json:"created_at"`
}

// TableName specifies the table name for DebateMessage
func (DebateMessage) TableName() string {
	return "debate_messages"
}

// NewDebateMessage creates an unscored message at the given instant
func NewDebateMessage(debateID, participantID uuid.UUID, content string, phase DebatePhase, now time.Time) DebateMessage {
	return DebateMessage{
		ID:            uuid.New(),
		DebateID:      debateID,
		ParticipantID: participantID,
		Content:       content,
		Phase:         phase,
		CreatedAt:     now,
	}
}

// AttachScore records the judge's verdict
func (m *DebateMessage) AttachScore(score MessageScore) {
	m.Score = datatypes.NewJSONType(&score)
}

// ScoreValue returns the attached score, or nil when unscored
func (m *DebateMessage) ScoreValue() *MessageScore {
	return m.Score.Data()
}

// MarkBest flags this message as the winner of its 5-message batch
func (m *DebateMessage) MarkBest() {
	rank := 1
	m.IsBestMessage = true
	m.BestMessageRank = &rank
}
