package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DebateMode represents how participants compete
type DebateMode string

const (
	DebateModeTeam DebateMode = "team"
	DebateModeSolo DebateMode = "solo"
)

// DebateStatus represents the lifecycle state of a debate session
type DebateStatus string

const (
	DebateStatusSetup    DebateStatus = "setup"
	DebateStatusActive   DebateStatus = "active"
	DebateStatusPaused   DebateStatus = "paused"
	DebateStatusFinished DebateStatus = "finished"
)

// DebateRules constrain what participants may say and how it is judged
type DebateRules struct {
	MaxMessageLength  int  `json:"max_message_length"` // words, 120-180
	NoPersonalAttacks bool `json:"no_personal_attacks"`
	StayOnTopic       bool `json:"stay_on_topic"`
	NoFakeCitations   bool `json:"no_fake_citations"`
}

// DefaultRules returns the rules a new debate starts with
func DefaultRules() DebateRules {
	return DebateRules{
		MaxMessageLength:  150,
		NoPersonalAttacks: true,
		StayOnTopic:       true,
		NoFakeCitations:   true,
	}
}

// DebateWinner records the outcome of a finished debate
type DebateWinner struct {
	Team          *Team       `json:"team,omitempty"`
	ParticipantID *uuid.UUID  `json:"participant_id,omitempty"`
	Participants  []uuid.UUID `json:"participants"`
	FinalScore    int         `json:"final_score"`
}

// DebateSession is the aggregate root for a single debate.
// It exclusively owns all contained collections; messages and events
// reference participants by id only.
type DebateSession struct {
	ID               uuid.UUID                         `gorm:"type:uuid;primary_key" json:"id"`
	TopicTitle       string                            `gorm:"type:varchar(255);not null" json:"topic_title"`
	TopicDescription *string                           `gorm:"type:text" json:"topic_description,omitempty"`
	Mode             DebateMode                        `gorm:"type:varchar(10);not null;default:'team'" json:"mode"`
	Format           DebateFormat                      `gorm:"type:varchar(20);not null" json:"format"`
	Duration         int                               `gorm:"not null" json:"duration"` // minutes
	JudgeProvider    string                            `gorm:"type:varchar(30)" json:"judge_provider"`
	JudgeModel       string                            `gorm:"type:varchar(100)" json:"judge_model"`
	Rules            datatypes.JSONType[DebateRules]   `gorm:"type:jsonb" json:"rules"`
	Status           DebateStatus                      `gorm:"type:varchar(20);not null;default:'setup';index" json:"status"`
	CurrentPhase     DebatePhase                       `gorm:"type:varchar(20);not null" json:"current_phase"`
	StartTime        time.Time                         `gorm:"not null" json:"start_time"`
	EndTime          *time.Time                        `json:"end_time,omitempty"`
	PhaseStartTime   time.Time                         `gorm:"not null" json:"phase_start_time"`
	Winner           datatypes.JSONType[*DebateWinner] `gorm:"type:jsonb" json:"winner"`

	Participants      []Participant         `gorm:"foreignKey:DebateID" json:"participants"`
	Progress          []ParticipantProgress `gorm:"foreignKey:DebateID" json:"progress"`
	Messages          []DebateMessage       `gorm:"foreignKey:DebateID" json:"messages"`
	RaiseHandQueue    []RaiseHandIntent     `gorm:"foreignKey:DebateID" json:"raise_hand_queue"`
	BestMessageEvents []BestMessageEvent    `gorm:"foreignKey:DebateID" json:"best_message_events"`

	// ConsumedRaiseHands collects the ids of queue entries removed since
	// the aggregate was loaded. Persistence prunes exactly these rows, so
	// intents enqueued by other writers in the meantime survive a save.
	ConsumedRaiseHands []uuid.UUID `gorm:"-" json:"-"`

	CreatedAt time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:now()" json:"updated_at"`
}

// TableName specifies the table name for DebateSession
func (DebateSession) TableName() string {
	return "debates"
}

// NewDebateSession creates an active debate with one progress entry per
// participant. Participants keep their ids; the session id is assigned here.
func NewDebateSession(topicTitle string, topicDescription *string, mode DebateMode, format DebateFormat, judgeProvider, judgeModel string, rules DebateRules, participants []Participant) *DebateSession {
	now := time.Now()
	id := uuid.New()

	progress := make([]ParticipantProgress, 0, len(participants))
	for i := range participants {
		participants[i].DebateID = id
		progress = append(progress, ParticipantProgress{
			ID:            uuid.New(),
			DebateID:      id,
			ParticipantID: participants[i].ID,
		})
	}

	return &DebateSession{
		ID:               id,
		TopicTitle:       topicTitle,
		TopicDescription: topicDescription,
		Mode:             mode,
		Format:           format,
		Duration:         format.DurationMinutes(),
		JudgeProvider:    judgeProvider,
		JudgeModel:       judgeModel,
		Rules:            datatypes.NewJSONType(rules),
		Status:           DebateStatusActive,
		CurrentPhase:     PhaseOpening,
		StartTime:        now,
		PhaseStartTime:   now,
		Participants:     participants,
		Progress:         progress,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// IsActive checks if the debate is currently running
func (s *DebateSession) IsActive() bool {
	return s.Status == DebateStatusActive
}

// IsFinished checks if the debate has ended
func (s *DebateSession) IsFinished() bool {
	return s.Status == DebateStatusFinished
}

// DebateRules returns the rules snapshot for this session
func (s *DebateSession) DebateRules() DebateRules {
	return s.Rules.Data()
}

// TimeLimit returns the total wall-clock budget for the debate
func (s *DebateSession) TimeLimit() time.Duration {
	return time.Duration(s.Duration) * time.Minute
}

// ParticipantByID returns the participant with the given id, or nil
func (s *DebateSession) ParticipantByID(id uuid.UUID) *Participant {
	for i := range s.Participants {
		if s.Participants[i].ID == id {
			return &s.Participants[i]
		}
	}
	return nil
}

// ProgressFor returns the progress entry for a participant. Every
// participant has exactly one entry for the session's lifetime; a missing
// entry means the session is corrupted, so this panics.
func (s *DebateSession) ProgressFor(participantID uuid.UUID) *ParticipantProgress {
	for i := range s.Progress {
		if s.Progress[i].ParticipantID == participantID {
			return &s.Progress[i]
		}
	}
	panic("entities: no progress entry for participant " + participantID.String())
}

// TeamPoints sums points across all participants of a team
func (s *DebateSession) TeamPoints(team Team) int {
	total := 0
	for i := range s.Progress {
		p := s.ParticipantByID(s.Progress[i].ParticipantID)
		if p != nil && p.Team != nil && *p.Team == team {
			total += s.Progress[i].Points
		}
	}
	return total
}

// RecentMessages returns up to n of the newest messages in order
func (s *DebateSession) RecentMessages(n int) []DebateMessage {
	if len(s.Messages) <= n {
		return s.Messages
	}
	return s.Messages[len(s.Messages)-n:]
}

// EnqueueRaiseHand appends a raise-hand intent for a participant
func (s *DebateSession) EnqueueRaiseHand(participantID uuid.UUID, intent IntentKind, priority int) RaiseHandIntent {
	entry := NewRaiseHandIntent(s.ID, participantID, intent, priority)
	s.RaiseHandQueue = append(s.RaiseHandQueue, entry)
	return entry
}

// RemoveRaisedHands drops every queued intent belonging to a participant
// and records the dropped ids in ConsumedRaiseHands
func (s *DebateSession) RemoveRaisedHands(participantID uuid.UUID) {
	kept := s.RaiseHandQueue[:0]
	for _, intent := range s.RaiseHandQueue {
		if intent.ParticipantID != participantID {
			kept = append(kept, intent)
			continue
		}
		s.ConsumedRaiseHands = append(s.ConsumedRaiseHands, intent.ID)
	}
	s.RaiseHandQueue = kept
}

// Finish transitions the session to finished and records the winner.
// Team ties resolve to team A; solo ties to the first highest entry in
// progress order.
func (s *DebateSession) Finish(now time.Time) *DebateWinner {
	winner := s.computeWinner()
	s.Status = DebateStatusFinished
	s.EndTime = &now
	s.UpdatedAt = now
	s.Winner = datatypes.NewJSONType(winner)
	return winner
}

func (s *DebateSession) computeWinner() *DebateWinner {
	if s.Mode == DebateModeTeam {
		teamA := s.TeamPoints(TeamA)
		teamB := s.TeamPoints(TeamB)
		winning := TeamA
		score := teamA
		if teamB > teamA {
			winning = TeamB
			score = teamB
		}
		members := make([]uuid.UUID, 0)
		for i := range s.Participants {
			if s.Participants[i].Team != nil && *s.Participants[i].Team == winning {
				members = append(members, s.Participants[i].ID)
			}
		}
		return &DebateWinner{Team: &winning, Participants: members, FinalScore: score}
	}

	if len(s.Progress) == 0 {
		return &DebateWinner{Participants: []uuid.UUID{}}
	}
	top := &s.Progress[0]
	for i := range s.Progress {
		if s.Progress[i].Points > top.Points {
			top = &s.Progress[i]
		}
	}
	id := top.ParticipantID
	return &DebateWinner{
		ParticipantID: &id,
		Participants:  []uuid.UUID{id},
		FinalScore:    top.Points,
	}
}
