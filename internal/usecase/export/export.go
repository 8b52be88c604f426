package export

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/debateclub/arena/internal/domain/entities"
	"github.com/debateclub/arena/internal/infrastructure/storage"
	"github.com/debateclub/arena/internal/usecase/debate"
)

// Format selects the transcript rendering
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ErrUnsupportedFormat is returned for unknown export formats
var ErrUnsupportedFormat = fmt.Errorf("unsupported export format")

// Artifact is a rendered transcript, optionally stored as an object
type Artifact struct {
	Format      Format `json:"format"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
	URL         string `json:"url,omitempty"`
}

// Service renders debate transcripts and summaries
type Service struct {
	storage *storage.MinIOClient // nil when artifact storage is disabled
	logger  *zap.Logger
}

// NewService creates an export service; storage may be nil
func NewService(store *storage.MinIOClient, logger *zap.Logger) *Service {
	return &Service{storage: store, logger: logger}
}

// Export renders the session in the requested format. With store set
// and object storage configured, the artifact is also uploaded and its
// URL filled in.
func (s *Service) Export(ctx context.Context, session *entities.DebateSession, format Format, store bool) (*Artifact, error) {
	var artifact *Artifact
	switch format {
	case FormatJSON:
		data, err := ToJSON(session)
		if err != nil {
			return nil, err
		}
		artifact = &Artifact{Format: FormatJSON, ContentType: "application/json", Data: data}
	case FormatMarkdown:
		artifact = &Artifact{Format: FormatMarkdown, ContentType: "text/markdown", Data: []byte(ToMarkdown(session))}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if store && s.storage != nil {
		objectName := fmt.Sprintf("transcripts/%s-%d.%s", session.ID, time.Now().Unix(), extension(format))
		url, err := s.storage.UploadTranscript(ctx, objectName, artifact.Data, artifact.ContentType)
		if err != nil {
			return nil, fmt.Errorf("failed to store transcript: %w", err)
		}
		artifact.URL = url
		s.logger.Info("transcript stored",
			zap.String("debate_id", session.ID.String()),
			zap.String("object", objectName),
		)
	}
	return artifact, nil
}

func extension(format Format) string {
	if format == FormatMarkdown {
		return "md"
	}
	return "json"
}

// ToJSON renders the full session aggregate as indented JSON
func ToJSON(session *entities.DebateSession) ([]byte, error) {
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}
	return data, nil
}

// ToMarkdown renders a human-readable transcript
func ToMarkdown(session *entities.DebateSession) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", session.TopicTitle)
	if session.TopicDescription != nil && *session.TopicDescription != "" {
		fmt.Fprintf(&b, "%s\n\n", *session.TopicDescription)
	}

	fmt.Fprintf(&b, "- Mode: %s\n", modeLabel(session.Mode))
	fmt.Fprintf(&b, "- Format: %s (%d min)\n", session.Format, session.Duration)
	fmt.Fprintf(&b, "- Status: %s\n", session.Status)
	fmt.Fprintf(&b, "- Started: %s\n", session.StartTime.Format(time.RFC3339))
	if session.EndTime != nil {
		fmt.Fprintf(&b, "- Ended: %s\n", session.EndTime.Format(time.RFC3339))
	}
	b.WriteString("\n## Participants\n\n")
	for i := range session.Participants {
		p := &session.Participants[i]
		if p.Team != nil {
			fmt.Fprintf(&b, "- %s (Team %s) - %s / %s\n", p.Name, *p.Team, p.Provider, p.Model)
		} else {
			fmt.Fprintf(&b, "- %s - %s / %s\n", p.Name, p.Provider, p.Model)
		}
	}

	if winner := session.Winner.Data(); winner != nil {
		b.WriteString("\n## Result\n\n")
		if winner.Team != nil {
			fmt.Fprintf(&b, "Winner: Team %s (%d points)\n", *winner.Team, winner.FinalScore)
		} else if winner.ParticipantID != nil {
			name := "Unknown"
			if p := session.ParticipantByID(*winner.ParticipantID); p != nil {
				name = p.Name
			}
			fmt.Fprintf(&b, "Winner: %s (%d points)\n", name, winner.FinalScore)
		}
	}

	b.WriteString("\n## Transcript\n\n")
	for i := range session.Messages {
		m := &session.Messages[i]
		name := "Unknown"
		if p := session.ParticipantByID(m.ParticipantID); p != nil {
			name = p.Name
		}
		fmt.Fprintf(&b, "### [%s] %s\n\n", entities.PhaseLabel(m.Phase), name)
		fmt.Fprintf(&b, "%s\n\n", m.Content)
		if score := m.ScoreValue(); score != nil {
			fmt.Fprintf(&b, "> Score: %.1f/10", score.Total)
			if m.IsBestMessage {
				b.WriteString(" - Best of batch")
			}
			b.WriteString("\n\n")
		}
	}
	return b.String()
}

// BuildSummary renders the shareable plain-text recap: topic, outcome
// and the top three scored messages with their key sentence.
func BuildSummary(session *entities.DebateSession) string {
	var lines []string

	lines = append(lines, "Topic: "+session.TopicTitle)
	if session.TopicDescription != nil && *session.TopicDescription != "" {
		lines = append(lines, "Context: "+*session.TopicDescription)
	}
	lines = append(lines, "Mode: "+modeLabel(session.Mode))

	if session.Mode == entities.DebateModeTeam {
		teamA := session.TeamPoints(entities.TeamA)
		teamB := session.TeamPoints(entities.TeamB)
		winner := "Tie"
		if teamA > teamB {
			winner = "Team A"
		} else if teamB > teamA {
			winner = "Team B"
		}
		lines = append(lines, fmt.Sprintf("Winner: %s (%d - %d)", winner, teamA, teamB))
	} else if len(session.Progress) > 0 {
		leader := &session.Progress[0]
		for i := range session.Progress {
			if session.Progress[i].Points > leader.Points {
				leader = &session.Progress[i]
			}
		}
		if p := session.ParticipantByID(leader.ParticipantID); p != nil {
			lines = append(lines, fmt.Sprintf("Leader: %s (%d pts, Avg %.1f)", p.Name, leader.Points, leader.AvgScore))
		}
	}

	if highlights := topMessages(session, 3); len(highlights) > 0 {
		lines = append(lines, "Highlights:")
		for _, m := range highlights {
			name := "Unknown"
			if p := session.ParticipantByID(m.ParticipantID); p != nil {
				name = p.Name
			}
			key, _ := debate.KeySentence(m.Content)
			if len(key) > 140 {
				key = key[:140] + "..."
			}
			lines = append(lines, fmt.Sprintf("- %s: %s", name, key))
		}
	}
	return strings.Join(lines, "\n")
}

func topMessages(session *entities.DebateSession, n int) []entities.DebateMessage {
	scored := make([]entities.DebateMessage, 0, len(session.Messages))
	for i := range session.Messages {
		if session.Messages[i].ScoreValue() != nil {
			scored = append(scored, session.Messages[i])
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].ScoreValue().Total > scored[j].ScoreValue().Total
	})
	if len(scored) > n {
		scored = scored[:n]
	}
	return scored
}

func modeLabel(mode entities.DebateMode) string {
	if mode == entities.DebateModeSolo {
		return "Solo Panel"
	}
	return "Team Debate"
}
