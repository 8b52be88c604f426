package entities

import (
	"time"

	"github.com/google/uuid"
)

// Team identifies a side in a team-mode debate
type Team string

const (
	TeamA Team = "A"
	TeamB Team = "B"
)

// RoleStyle shapes the rhetorical personality of an AI debater
type RoleStyle string

const (
	RoleStyleAggressive RoleStyle = "aggressive"
	RoleStyleAnalytical RoleStyle = "analytical"
	RoleStyleDiplomatic RoleStyle = "diplomatic"
	RoleStylePassionate RoleStyle = "passionate"
)

// ParticipantColors is the fixed palette assigned to debaters in creation order
var ParticipantColors = []string{
	"#3B82F6", // blue
	"#8B5CF6", // purple
	"#EC4899", // pink
	"#F59E0B", // amber
	"#10B981", // emerald
	"#EF4444", // red
	"#06B6D4", // cyan
	"#F97316", // orange
}

// Participant is an AI-backed debater. Provider and model are opaque
// identifiers resolved by the generation capability, never interpreted here.
// Participants are created at session setup and never mutated afterwards.
type Participant struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	DebateID    uuid.UUID `gorm:"type:uuid;not null;index" json:"debate_id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Team        *Team     `gorm:"type:varchar(1)" json:"team,omitempty"`
	Provider    string    `gorm:"type:varchar(30);not null" json:"provider"`
	Model       string    `gorm:"type:varchar(100);not null" json:"model"`
	RoleStyle   RoleStyle `gorm:"type:varchar(20);default:'analytical'" json:"role_style"`
	Temperature float64   `gorm:"default:0.7" json:"temperature"`
	Color       string    `gorm:"type:varchar(10)" json:"color"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "participants"
}

// NewParticipant creates a debater; index selects the palette color
func NewParticipant(name string, team *Team, provider, model string, roleStyle RoleStyle, temperature float64, index int) Participant {
	return Participant{
		ID:          uuid.New(),
		Name:        name,
		Team:        team,
		Provider:    provider,
		Model:       model,
		RoleStyle:   roleStyle,
		Temperature: temperature,
		Color:       ParticipantColors[index%len(ParticipantColors)],
		CreatedAt:   time.Now(),
	}
}

// OnTeam checks team membership
func (p *Participant) OnTeam(team Team) bool {
	return p.Team != nil && *p.Team == team
}
