package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/debateclub/arena/internal/domain/entities"
)

// DebateRepository persists debate sessions. The session aggregate is the
// unit of consistency: SaveSession writes the full object including its
// collections, and GetSession loads them back.
type DebateRepository interface {
	SaveSession(ctx context.Context, session *entities.DebateSession) error
	GetSession(ctx context.Context, id uuid.UUID) (*entities.DebateSession, error)
	GetAllSessions(ctx context.Context) ([]*entities.DebateSession, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error

	SaveMessage(ctx context.Context, message *entities.DebateMessage) error
	GetMessages(ctx context.Context, debateID uuid.UUID) ([]entities.DebateMessage, error)

	SaveBestMessageEvent(ctx context.Context, event *entities.BestMessageEvent) error
	GetBestMessageEvents(ctx context.Context, debateID uuid.UUID) ([]entities.BestMessageEvent, error)
}
