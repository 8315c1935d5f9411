package roundservice

import (
	"fmt"
	"strings"
	"time"

	"github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/strokesgained"
	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
	"github.com/google/uuid"
)

const (
	maxHoles        = 18
	minPar, maxPar  = 2, 6
	maxStrokes      = 20
	maxCourseLength = 100
)

type CreateRoundRequest struct {
	CourseName  string     `json:"course_name"`
	HolesPlayed *int       `json:"holes_played,omitempty"`
	PlayedAt    *time.Time `json:"played_at,omitempty"`
}

func (r CreateRoundRequest) validate() error {
	name := strings.TrimSpace(r.CourseName)
	if name == "" || len(name) > maxCourseLength {
		return fmt.Errorf("%w: course name must be 1-%d characters", ErrInvalidRound, maxCourseLength)
	}
	if r.HolesPlayed != nil && (*r.HolesPlayed < 1 || *r.HolesPlayed > maxHoles) {
		return fmt.Errorf("%w: holes played must be 1-%d", ErrInvalidRound, maxHoles)
	}
	return nil
}

type HoleRequest struct {
	Number          int  `json:"number"`
	Par             int  `json:"par"`
	Score           *int `json:"score,omitempty"`
	MentalScorecard *int `json:"mental_scorecard,omitempty"`
}

func (r HoleRequest) validate() error {
	if r.Number < 1 || r.Number > maxHoles {
		return fmt.Errorf("%w: number must be 1-%d", ErrInvalidHole, maxHoles)
	}
	if r.Par < minPar || r.Par > maxPar {
		return fmt.Errorf("%w: par must be %d-%d", ErrInvalidHole, minPar, maxPar)
	}
	if r.Score != nil && (*r.Score < 1 || *r.Score > maxStrokes) {
		return fmt.Errorf("%w: score must be 1-%d", ErrInvalidHole, maxStrokes)
	}
	if r.MentalScorecard != nil {
		if *r.MentalScorecard < 1 || *r.MentalScorecard > maxStrokes {
			return fmt.Errorf("%w: mental scorecard must be 1-%d", ErrInvalidHole, maxStrokes)
		}
		if r.Score != nil && *r.MentalScorecard > *r.Score {
			return fmt.Errorf("%w: mental scorecard cannot exceed score", ErrInvalidHole)
		}
	}
	return nil
}

// ShotInput is one entry of the ordered shot list for a hole.
type ShotInput struct {
	StartDistance int            `json:"start_distance"`
	Lie           roundtypes.Lie `json:"lie"`
}

// validateShots checks lies and distances, including that calc's table covers
// every distance.
func validateShots(shots []ShotInput, calc *strokesgained.Calculator) error {
	for i, s := range shots {
		if !s.Lie.Valid() {
			return fmt.Errorf("%w: shot %d has unknown lie %q", ErrInvalidShot, i+1, s.Lie)
		}
		if s.StartDistance < 1 {
			return fmt.Errorf("%w: shot %d distance must be at least 1", ErrInvalidShot, i+1)
		}
		if err := calc.CheckRange(s.Lie, s.StartDistance); err != nil {
			return fmt.Errorf("%w: shot %d: %v", ErrInvalidShot, i+1, err)
		}
	}
	return nil
}

type ImportRequest struct {
	CourseName string
	Filename   string
	Data       []byte
	PlayedAt   *time.Time
}

type ImageImportRequest struct {
	CourseName string
	Filename   string
	Image      []byte
	MediaType  string
	PlayedAt   *time.Time
}

// RoundDetail is a round with its derived totals.
type RoundDetail struct {
	roundtypes.Round
	Complete      bool                      `json:"complete"`
	Score         int                       `json:"score"`
	Par           int                       `json:"par"`
	StrokesGained roundtypes.CategoryTotals `json:"strokes_gained"`
	HoleTotals    []HoleTotals              `json:"hole_totals"`
}

type HoleTotals struct {
	HoleID        uuid.UUID                 `json:"hole_id"`
	Number        int                       `json:"number"`
	StrokesGained roundtypes.CategoryTotals `json:"strokes_gained"`
}

type RoundSummary struct {
	ID            uuid.UUID                 `json:"id"`
	CourseName    string                    `json:"course_name"`
	CreatedAt     time.Time                 `json:"created_at"`
	HolesPlayed   *int                      `json:"holes_played,omitempty"`
	Complete      bool                      `json:"complete"`
	Score         int                       `json:"score"`
	Par           int                       `json:"par"`
	StrokesGained roundtypes.CategoryTotals `json:"strokes_gained"`
}

// HoleDeletion describes what a hole delete changed.
type HoleDeletion struct {
	RoundID    uuid.UUID `json:"round_id"`
	Number     int       `json:"number"`
	Renumbered int       `json:"renumbered"`
}

func newRoundDetail(r roundtypes.Round) *RoundDetail {
	d := &RoundDetail{
		Round:         r,
		Complete:      r.Complete(),
		Score:         r.Score(),
		Par:           r.Par(),
		StrokesGained: r.Totals(),
		HoleTotals:    make([]HoleTotals, 0, len(r.Holes)),
	}
	for _, h := range r.Holes {
		d.HoleTotals = append(d.HoleTotals, HoleTotals{HoleID: h.ID, Number: h.Number, StrokesGained: h.Totals()})
	}
	return d
}

func newRoundSummary(r roundtypes.Round) RoundSummary {
	return RoundSummary{
		ID:            r.ID,
		CourseName:    r.CourseName,
		CreatedAt:     r.CreatedAt,
		HolesPlayed:   r.HolesPlayed,
		Complete:      r.Complete(),
		Score:         r.Score(),
		Par:           r.Par(),
		StrokesGained: r.Totals(),
	}
}
