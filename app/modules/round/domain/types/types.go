package roundtypes

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Lie is the surface a shot is played from.
type Lie string

const (
	LieTee      Lie = "tee"
	LieFairway  Lie = "fairway"
	LieRough    Lie = "rough"
	LieRecovery Lie = "recovery"
	LiePenalty  Lie = "penalty"
	LieSand     Lie = "sand"
	LieGreen    Lie = "green"
)

// ValidLies lists every lie in display order.
var ValidLies = []Lie{LieTee, LieFairway, LieRough, LieRecovery, LiePenalty, LieSand, LieGreen}

func (l Lie) Valid() bool {
	switch l {
	case LieTee, LieFairway, LieRough, LieRecovery, LiePenalty, LieSand, LieGreen:
		return true
	}
	return false
}

// ParseLie normalizes s and reports whether it names a known lie.
func ParseLie(s string) (Lie, bool) {
	l := Lie(strings.ToLower(strings.TrimSpace(s)))
	return l, l.Valid()
}

// CoerceLie parses s and falls back to fairway for anything unrecognized.
func CoerceLie(s string) Lie {
	if l, ok := ParseLie(s); ok {
		return l
	}
	return LieFairway
}

// Shot is a single stroke. StartDistance is in feet on the green and in
// yards everywhere else.
type Shot struct {
	ID            uuid.UUID `json:"id"`
	HoleID        uuid.UUID `json:"hole_id"`
	UserID        uuid.UUID `json:"user_id"`
	Number        int       `json:"number"`
	StartDistance int       `json:"start_distance"`
	Lie           Lie       `json:"lie"`
	Category      Category  `json:"category"`
	StrokesGained float64   `json:"strokes_gained"`
}

func (s Shot) Yards() float64 {
	if s.Lie == LieGreen {
		return float64(s.StartDistance) / 3
	}
	return float64(s.StartDistance)
}

func (s Shot) Feet() float64 {
	if s.Lie == LieGreen {
		return float64(s.StartDistance)
	}
	return float64(s.StartDistance) * 3
}

// Hole holds its shots ordered by Number.
type Hole struct {
	ID              uuid.UUID `json:"id"`
	RoundID         uuid.UUID `json:"round_id"`
	UserID          uuid.UUID `json:"user_id"`
	Number          int       `json:"number"`
	Par             int       `json:"par"`
	Score           *int      `json:"score,omitempty"`
	MentalScorecard *int      `json:"mental_scorecard,omitempty"`
	Shots           []Shot    `json:"shots"`
}

func (h Hole) HasShots() bool { return len(h.Shots) > 0 }

// StrokesGained sums every shot on the hole, including unclassified ones.
func (h Hole) StrokesGained() float64 {
	var total float64
	for _, s := range h.Shots {
		total += s.StrokesGained
	}
	return total
}

func (h Hole) StrokesGainedFor(c Category) float64 {
	var total float64
	for _, s := range h.Shots {
		if s.Category == c {
			total += s.StrokesGained
		}
	}
	return total
}

func (h Hole) Totals() CategoryTotals {
	return CategoryTotals{
		Driving:        h.StrokesGainedFor(CategoryDrive),
		Approach:       h.StrokesGainedFor(CategoryApproach),
		AroundTheGreen: h.StrokesGainedFor(CategoryAroundGreen),
		Putting:        h.StrokesGainedFor(CategoryPutt),
		Total:          h.StrokesGained(),
	}
}

// CountShots returns how many shots on the hole belong to c.
func (h Hole) CountShots(c Category) int {
	n := 0
	for _, s := range h.Shots {
		if s.Category == c {
			n++
		}
	}
	return n
}

func (h Hole) HasLie(l Lie) bool {
	for _, s := range h.Shots {
		if s.Lie == l {
			return true
		}
	}
	return false
}

// ShotByNumber returns the shot with the given number, if recorded.
func (h Hole) ShotByNumber(n int) (Shot, bool) {
	for _, s := range h.Shots {
		if s.Number == n {
			return s, true
		}
	}
	return Shot{}, false
}

// CategoryTotals is the strokes gained split by category. Total also counts
// unclassified shots, so it can exceed the sum of the four categories.
type CategoryTotals struct {
	Driving        float64 `json:"driving"`
	Approach       float64 `json:"approach"`
	AroundTheGreen float64 `json:"around_the_green"`
	Putting        float64 `json:"putting"`
	Total          float64 `json:"total"`
}

func (t CategoryTotals) Add(o CategoryTotals) CategoryTotals {
	return CategoryTotals{
		Driving:        t.Driving + o.Driving,
		Approach:       t.Approach + o.Approach,
		AroundTheGreen: t.AroundTheGreen + o.AroundTheGreen,
		Putting:        t.Putting + o.Putting,
		Total:          t.Total + o.Total,
	}
}

// Round holds its holes ordered by Number.
type Round struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	CourseName  string    `json:"course_name"`
	HolesPlayed *int      `json:"holes_played,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Holes       []Hole    `json:"holes"`
}

// Complete reports whether every hole the round expects has at least one
// shot. A round without holes_played is never complete.
func (r Round) Complete() bool {
	if r.HolesPlayed == nil {
		return false
	}
	withShots := 0
	for _, h := range r.Holes {
		if h.HasShots() {
			withShots++
		}
	}
	return withShots == *r.HolesPlayed
}

func (r Round) Totals() CategoryTotals {
	var t CategoryTotals
	for _, h := range r.Holes {
		t = t.Add(h.Totals())
	}
	return t
}

// Score sums the recorded hole scores, skipping holes without one.
func (r Round) Score() int {
	total := 0
	for _, h := range r.Holes {
		if h.Score != nil {
			total += *h.Score
		}
	}
	return total
}

func (r Round) Par() int {
	total := 0
	for _, h := range r.Holes {
		total += h.Par
	}
	return total
}
