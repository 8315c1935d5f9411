package practicetypes

import (
	"time"

	"github.com/google/uuid"
)

// SessionType is what a practice session worked on.
type SessionType string

const (
	SessionFullSwing SessionType = "FS"
	SessionShortGame SessionType = "SG"
	SessionPutting   SessionType = "PT"
)

func (t SessionType) Valid() bool {
	switch t {
	case SessionFullSwing, SessionShortGame, SessionPutting:
		return true
	}
	return false
}

func (t SessionType) Label() string {
	switch t {
	case SessionFullSwing:
		return "Full Swing"
	case SessionShortGame:
		return "Short Game"
	case SessionPutting:
		return "Putting"
	}
	return string(t)
}

// Outcome is the player's own rating of a session, 1 (poor) to 4 (excellent).
type Outcome int

const (
	OutcomePoor Outcome = iota + 1
	OutcomeAverage
	OutcomeGood
	OutcomeExcellent
)

func (o Outcome) Valid() bool { return o >= OutcomePoor && o <= OutcomeExcellent }

func (o Outcome) Label() string {
	switch o {
	case OutcomePoor:
		return "Poor"
	case OutcomeAverage:
		return "Average"
	case OutcomeGood:
		return "Good"
	case OutcomeExcellent:
		return "Excellent"
	}
	return "Unknown"
}

type Session struct {
	ID        uuid.UUID   `json:"id"`
	UserID    uuid.UUID   `json:"user_id"`
	Type      SessionType `json:"practice_type"`
	Outcome   Outcome     `json:"outcome"`
	Notes     string      `json:"notes"`
	CreatedAt time.Time   `json:"created_at"`
}
