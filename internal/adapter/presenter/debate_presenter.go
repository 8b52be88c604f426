package presenter

import (
	"github.com/debateclub/arena/internal/adapter/dto/debate"
	"github.com/debateclub/arena/internal/domain/entities"
)

// ToDebateResponse converts a DebateSession aggregate to its API view
func ToDebateResponse(s *entities.DebateSession) *debate.DebateResponse {
	if s == nil {
		return nil
	}

	response := &debate.DebateResponse{
		ID:               s.ID.String(),
		TopicTitle:       s.TopicTitle,
		TopicDescription: s.TopicDescription,
		Mode:             string(s.Mode),
		Format:           string(s.Format),
		Duration:         s.Duration,
		JudgeProvider:    s.JudgeProvider,
		JudgeModel:       s.JudgeModel,
		Status:           string(s.Status),
		CurrentPhase:     string(s.CurrentPhase),
		PhaseLabel:       entities.PhaseLabel(s.CurrentPhase),
		StartTime:        s.StartTime,
		EndTime:          s.EndTime,
		PhaseStartTime:   s.PhaseStartTime,
		Winner:           toWinnerResponse(s.Winner.Data()),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}

	rules := s.DebateRules()
	response.Rules.MaxMessageLength = rules.MaxMessageLength
	response.Rules.NoPersonalAttacks = rules.NoPersonalAttacks
	response.Rules.StayOnTopic = rules.StayOnTopic
	response.Rules.NoFakeCitations = rules.NoFakeCitations

	response.Participants = make([]debate.ParticipantResponse, len(s.Participants))
	for i := range s.Participants {
		response.Participants[i] = toParticipantResponse(&s.Participants[i])
	}

	response.Progress = make([]debate.ProgressResponse, len(s.Progress))
	for i := range s.Progress {
		p := &s.Progress[i]
		response.Progress[i] = debate.ProgressResponse{
			ParticipantID:     p.ParticipantID.String(),
			Points:            p.Points,
			MessagesCount:     p.MessagesCount,
			BestMessagesCount: p.BestMessagesCount,
			AvgScore:          p.AvgScore,
			LastSpeakTime:     p.LastSpeakTime,
		}
	}

	response.Messages = make([]debate.MessageResponse, len(s.Messages))
	for i := range s.Messages {
		response.Messages[i] = toMessageResponse(s, &s.Messages[i])
	}

	response.RaiseHandQueue = make([]debate.RaiseHandResponse, len(s.RaiseHandQueue))
	for i, intent := range s.RaiseHandQueue {
		response.RaiseHandQueue[i] = ToRaiseHandResponse(&intent)
	}

	response.BestMessageEvents = make([]debate.BestMessageEventResponse, len(s.BestMessageEvents))
	for i, event := range s.BestMessageEvents {
		response.BestMessageEvents[i] = debate.BestMessageEventResponse{
			ID:            event.ID.String(),
			MessageID:     event.MessageID.String(),
			ParticipantID: event.ParticipantID.String(),
			BatchNumber:   event.BatchNumber,
			CreatedAt:     event.CreatedAt,
		}
	}

	return response
}

// ToDebateListResponse converts sessions to the compact listing view
func ToDebateListResponse(sessions []*entities.DebateSession) *debate.DebateListResponse {
	items := make([]debate.DebateListItem, len(sessions))
	for i, s := range sessions {
		items[i] = debate.DebateListItem{
			ID:           s.ID.String(),
			TopicTitle:   s.TopicTitle,
			Mode:         string(s.Mode),
			Format:       string(s.Format),
			Status:       string(s.Status),
			CurrentPhase: string(s.CurrentPhase),
			Participants: len(s.Participants),
			Messages:     len(s.Messages),
			StartTime:    s.StartTime,
			CreatedAt:    s.CreatedAt,
		}
	}
	return &debate.DebateListResponse{Debates: items, Total: len(items)}
}

// ToRaiseHandResponse converts a queued intent to its API view
func ToRaiseHandResponse(intent *entities.RaiseHandIntent) debate.RaiseHandResponse {
	return debate.RaiseHandResponse{
		ID:            intent.ID.String(),
		ParticipantID: intent.ParticipantID.String(),
		Intent:        string(intent.Intent),
		Priority:      intent.Priority,
		CreatedAt:     intent.CreatedAt,
	}
}

func toParticipantResponse(p *entities.Participant) debate.ParticipantResponse {
	response := debate.ParticipantResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Provider:    p.Provider,
		Model:       p.Model,
		RoleStyle:   string(p.RoleStyle),
		Temperature: p.Temperature,
		Color:       p.Color,
	}
	if p.Team != nil {
		team := string(*p.Team)
		response.Team = &team
	}
	return response
}

func toMessageResponse(s *entities.DebateSession, m *entities.DebateMessage) debate.MessageResponse {
	response := debate.MessageResponse{
		ID:              m.ID.String(),
		ParticipantID:   m.ParticipantID.String(),
		Content:         m.Content,
		Phase:           string(m.Phase),
		IsBestMessage:   m.IsBestMessage,
		BestMessageRank: m.BestMessageRank,
		CreatedAt:       m.CreatedAt,
	}
	if p := s.ParticipantByID(m.ParticipantID); p != nil {
		response.ParticipantName = p.Name
	}
	if score := m.ScoreValue(); score != nil {
		response.Score = &debate.ScoreResponse{
			Total:           score.Total,
			ArgumentQuality: score.ArgumentQuality,
			Relevance:       score.Relevance,
			Evidence:        score.Evidence,
			Clarity:         score.Clarity,
			Rationale:       score.Rationale,
		}
	}
	return response
}

func toWinnerResponse(w *entities.DebateWinner) *debate.WinnerResponse {
	if w == nil {
		return nil
	}
	response := &debate.WinnerResponse{
		Participants: make([]string, len(w.Participants)),
		FinalScore:   w.FinalScore,
	}
	for i, id := range w.Participants {
		response.Participants[i] = id.String()
	}
	if w.Team != nil {
		team := string(*w.Team)
		response.Team = &team
	}
	if w.ParticipantID != nil {
		id := w.ParticipantID.String()
		response.ParticipantID = &id
	}
	return response
}
