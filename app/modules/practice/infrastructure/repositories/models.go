package practicedb

import (
	"time"

	practicetypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/practice/domain/types"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Session struct {
	bun.BaseModel `bun:"table:practice_sessions,alias:ps"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	UserID        uuid.UUID `bun:"user_id,type:uuid,notnull"`
	PracticeType  string    `bun:"practice_type,notnull"`
	Outcome       int       `bun:"outcome,notnull"`
	Notes         string    `bun:"notes,notnull"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func (s *Session) ToDomain() practicetypes.Session {
	return practicetypes.Session{
		ID:        s.ID,
		UserID:    s.UserID,
		Type:      practicetypes.SessionType(s.PracticeType),
		Outcome:   practicetypes.Outcome(s.Outcome),
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
	}
}
