package debate

// ParticipantRequest describes one debater in a create request
type ParticipantRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Team        *string `json:"team,omitempty" validate:"omitempty,oneof=A B"`
	Provider    string  `json:"provider" validate:"required,oneof=openai gemini mistral xai deepseek"`
	Model       string  `json:"model" validate:"required,max=100"`
	RoleStyle   string  `json:"role_style,omitempty" validate:"omitempty,oneof=aggressive analytical diplomatic passionate"`
	Temperature float64 `json:"temperature,omitempty" validate:"omitempty,gte=0,lte=2"`
}

// RulesRequest overrides the default debate rules. Absent fields keep
// their defaults.
type RulesRequest struct {
	MaxMessageLength  *int  `json:"max_message_length,omitempty" validate:"omitempty,gte=120,lte=180"`
	NoPersonalAttacks *bool `json:"no_personal_attacks,omitempty"`
	StayOnTopic       *bool `json:"stay_on_topic,omitempty"`
	NoFakeCitations   *bool `json:"no_fake_citations,omitempty"`
}

// CreateDebateRequest creates and immediately starts a debate. Either a
// builtin topic id or a custom topic title must be supplied.
type CreateDebateRequest struct {
	TopicID          string               `json:"topic_id,omitempty"`
	TopicTitle       string               `json:"topic_title,omitempty" validate:"required_without=TopicID,max=255"`
	TopicDescription *string              `json:"topic_description,omitempty"`
	Mode             string               `json:"mode" validate:"required,debatemode"`
	Format           string               `json:"format" validate:"required,debateformat"`
	JudgeProvider    string               `json:"judge_provider,omitempty" validate:"omitempty,oneof=openai gemini mistral xai deepseek"`
	JudgeModel       string               `json:"judge_model,omitempty" validate:"omitempty,max=100"`
	Rules            *RulesRequest        `json:"rules,omitempty"`
	Participants     []ParticipantRequest `json:"participants" validate:"required,min=2,dive"`
}

// RaiseHandRequest queues a solo-mode request to speak next
type RaiseHandRequest struct {
	ParticipantID string `json:"participant_id" validate:"required,uuid"`
	Intent        string `json:"intent" validate:"required,oneof=respond question clarify challenge"`
	Priority      int    `json:"priority" validate:"gte=0,lte=10"`
}
