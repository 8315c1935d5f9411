package practiceservice

import (
	"context"

	practicetypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/practice/domain/types"
	"github.com/google/uuid"
)

type Service interface {
	CreateSession(ctx context.Context, userID uuid.UUID, req SessionRequest) (*practicetypes.Session, error)
	GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*practicetypes.Session, error)
	ListSessions(ctx context.Context, userID uuid.UUID, page Page) ([]practicetypes.Session, error)
	UpdateSession(ctx context.Context, userID, sessionID uuid.UUID, req SessionRequest) (*practicetypes.Session, error)
	DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error
}
