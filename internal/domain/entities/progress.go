package entities

import (
	"time"

	"github.com/google/uuid"
)

// ParticipantProgress tracks per-participant standing within a debate.
// Mutated only by the message pipeline after a message is scored and saved.
type ParticipantProgress struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	DebateID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"debate_id"`
	ParticipantID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"participant_id"`
	Points            int        `gorm:"default:0" json:"points"`
	MessagesCount     int        `gorm:"default:0" json:"messages_count"`
	BestMessagesCount int        `gorm:"default:0" json:"best_messages_count"`
	AvgScore          float64    `gorm:"default:0" json:"avg_score"`
	LastSpeakTime     *time.Time `json:"last_speak_time,omitempty"`
}

// TableName specifies the table name for ParticipantProgress
func (ParticipantProgress) TableName() string {
	return "participant_progress"
}

// ApplyScore records a scored message: message count, last-speak time,
// base points (10 + floor of the total) and the running average.
func (p *ParticipantProgress) ApplyScore(total float64, now time.Time) {
	p.MessagesCount++
	p.LastSpeakTime = &now
	p.Points += 10 + int(total)
	p.AvgScore = (p.AvgScore*float64(p.MessagesCount-1) + total) / float64(p.MessagesCount)
}

// AwardBestMessage grants the batch bonus
func (p *ParticipantProgress) AwardBestMessage() {
	p.Points += 5
	p.BestMessagesCount++
}
