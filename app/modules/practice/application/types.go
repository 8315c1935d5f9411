package practiceservice

import (
	"fmt"

	practicetypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/practice/domain/types"
)

const (
	// DefaultPageSize applies when a list request gives no limit.
	DefaultPageSize = 10
	maxPageSize     = 100
	maxNotesLength  = 5000
)

// SessionRequest creates or replaces a session. Empty fields take the
// defaults: full swing, average.
type SessionRequest struct {
	Type    practicetypes.SessionType `json:"practice_type"`
	Outcome practicetypes.Outcome     `json:"outcome"`
	Notes   string                    `json:"notes"`
}

func (r *SessionRequest) normalize() error {
	if r.Type == "" {
		r.Type = practicetypes.SessionFullSwing
	}
	if r.Outcome == 0 {
		r.Outcome = practicetypes.OutcomeAverage
	}
	if !r.Type.Valid() {
		return fmt.Errorf("%w: unknown practice type %q", ErrInvalidSession, r.Type)
	}
	if !r.Outcome.Valid() {
		return fmt.Errorf("%w: outcome must be 1-4, got %d", ErrInvalidSession, r.Outcome)
	}
	if len(r.Notes) > maxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidSession, maxNotesLength)
	}
	return nil
}

// Page selects a window of the session list.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) clamp() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > maxPageSize {
		p.Limit = maxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
