package rounddb

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Round is a full or partial round of golf owned by one user.
type Round struct {
	bun.BaseModel `bun:"table:rounds,alias:r"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	UserID        uuid.UUID `bun:"user_id,type:uuid,notnull"`
	CourseName    string    `bun:"course_name,notnull"`
	HolesPlayed   *int      `bun:"holes_played"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`

	Holes []*Hole `bun:"rel:has-many,join:id=round_id"`
}

type Hole struct {
	bun.BaseModel   `bun:"table:holes,alias:h"`
	ID              uuid.UUID `bun:"id,pk,type:uuid"`
	RoundID         uuid.UUID `bun:"round_id,type:uuid,notnull"`
	UserID          uuid.UUID `bun:"user_id,type:uuid,notnull"`
	Number          int       `bun:"number,notnull"`
	Par             int       `bun:"par,notnull"`
	Score           *int      `bun:"score"`
	MentalScorecard *int      `bun:"mental_scorecard"`
	CreatedAt       time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`

	Shots []*Shot `bun:"rel:has-many,join:id=hole_id"`
}

// Shot stores the category and strokes gained computed when it was saved.
// An unclassified shot has an empty Category, stored as NULL.
type Shot struct {
	bun.BaseModel `bun:"table:shots,alias:s"`
	ID            uuid.UUID `bun:"id,pk,type:uuid"`
	HoleID        uuid.UUID `bun:"hole_id,type:uuid,notnull"`
	UserID        uuid.UUID `bun:"user_id,type:uuid,notnull"`
	Number        int       `bun:"number,notnull"`
	StartDistance int       `bun:"start_distance,notnull"`
	Lie           string    `bun:"lie,notnull"`
	Category      string    `bun:"category,nullzero"`
	StrokesGained float64   `bun:"strokes_gained,notnull"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// ScorecardUpload records the parsed payload behind an imported round.
type ScorecardUpload struct {
	bun.BaseModel `bun:"table:scorecard_uploads,alias:su"`
	ID            uuid.UUID  `bun:"id,pk,type:uuid"`
	UserID        uuid.UUID  `bun:"user_id,type:uuid,notnull"`
	CourseName    string     `bun:"course_name,notnull"`
	Filename      string     `bun:"filename,notnull"`
	Payload       string     `bun:"payload,type:jsonb,notnull"`
	RoundID       *uuid.UUID `bun:"round_id,type:uuid"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
