package debate

import "time"

// ScoreResponse is a judged message score
type ScoreResponse struct {
	Total           float64 `json:"total"`
	ArgumentQuality float64 `json:"argument_quality"`
	Relevance       float64 `json:"relevance"`
	Evidence        float64 `json:"evidence"`
	Clarity         float64 `json:"clarity"`
	Rationale       string  `json:"rationale"`
}

// ParticipantResponse is one debater in API responses
type ParticipantResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Team        *string `json:"team,omitempty"`
	Provider    string  `json:"provider"`
	Model       string  `json:"model"`
	RoleStyle   string  `json:"role_style"`
	Temperature float64 `json:"temperature"`
	Color       string  `json:"color"`
}

// ProgressResponse is one participant's standing
type ProgressResponse struct {
	ParticipantID     string     `json:"participant_id"`
	Points            int        `json:"points"`
	MessagesCount     int        `json:"messages_count"`
	BestMessagesCount int        `json:"best_messages_count"`
	AvgScore          float64    `json:"avg_score"`
	LastSpeakTime     *time.Time `json:"last_speak_time,omitempty"`
}

// MessageResponse is one transcript message
type MessageResponse struct {
	ID              string         `json:"id"`
	ParticipantID   string         `json:"participant_id"`
	ParticipantName string         `json:"participant_name,omitempty"`
	Content         string         `json:"content"`
	Phase           string         `json:"phase"`
	Score           *ScoreResponse `json:"score,omitempty"`
	IsBestMessage   bool           `json:"is_best_message"`
	BestMessageRank *int           `json:"best_message_rank,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// RaiseHandResponse is one queued raise-hand intent
type RaiseHandResponse struct {
	ID            string    `json:"id"`
	ParticipantID string    `json:"participant_id"`
	Intent        string    `json:"intent"`
	Priority      int       `json:"priority"`
	CreatedAt     time.Time `json:"created_at"`
}

// BestMessageEventResponse is one batch-winner event
type BestMessageEventResponse struct {
	ID            string    `json:"id"`
	MessageID     string    `json:"message_id"`
	ParticipantID string    `json:"participant_id"`
	BatchNumber   int       `json:"batch_number"`
	CreatedAt     time.Time `json:"created_at"`
}

// WinnerResponse records a finished debate's outcome
type WinnerResponse struct {
	Team          *string  `json:"team,omitempty"`
	ParticipantID *string  `json:"participant_id,omitempty"`
	Participants  []string `json:"participants"`
	FinalScore    int      `json:"final_score"`
}

// DebateResponse is the full session view
type DebateResponse struct {
	ID               string     `json:"id"`
	TopicTitle       string     `json:"topic_title"`
	TopicDescription *string    `json:"topic_description,omitempty"`
	Mode             string     `json:"mode"`
	Format           string     `json:"format"`
	Duration         int        `json:"duration"`
	JudgeProvider    string     `json:"judge_provider"`
	JudgeModel       string     `json:"judge_model"`
	Status           string     `json:"status"`
	CurrentPhase     string     `json:"current_phase"`
	PhaseLabel       string     `json:"phase_label"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          *time.Time `json:"end_time,omitempty"`
	PhaseStartTime   time.Time  `json:"phase_start_time"`

	Rules struct {
		MaxMessageLength  int  `json:"max_message_length"`
		NoPersonalAttacks bool `json:"no_personal_attacks"`
		StayOnTopic       bool `json:"stay_on_topic"`
		NoFakeCitations   bool `json:"no_fake_citations"`
	} `json:"rules"`

	Winner            *WinnerResponse            `json:"winner,omitempty"`
	Participants      []ParticipantResponse      `json:"participants"`
	Progress          []ProgressResponse         `json:"progress"`
	Messages          []MessageResponse          `json:"messages"`
	RaiseHandQueue    []RaiseHandResponse        `json:"raise_hand_queue"`
	BestMessageEvents []BestMessageEventResponse `json:"best_message_events"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DebateListItem is the compact session view used in listings
type DebateListItem struct {
	ID           string    `json:"id"`
	TopicTitle   string    `json:"topic_title"`
	Mode         string    `json:"mode"`
	Format       string    `json:"format"`
	Status       string    `json:"status"`
	CurrentPhase string    `json:"current_phase"`
	Participants int       `json:"participants"`
	Messages     int       `json:"messages"`
	StartTime    time.Time `json:"start_time"`
	CreatedAt    time.Time `json:"created_at"`
}

// DebateListResponse is the listing payload
type DebateListResponse struct {
	Debates []DebateListItem `json:"debates"`
	Total   int              `json:"total"`
}

// SummaryResponse is the shareable recap
type SummaryResponse struct {
	DebateID string `json:"debate_id"`
	Summary  string `json:"summary"`
}

// ExportResponse describes a stored transcript artifact
type ExportResponse struct {
	DebateID string `json:"debate_id"`
	Format   string `json:"format"`
	URL      string `json:"url"`
}
