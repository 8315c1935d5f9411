package parsers

import (
	"errors"
	"sort"
	"strings"

	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
)

// ErrEmptyScorecard is returned when a file parses but holds no holes.
var ErrEmptyScorecard = errors.New("scorecard has no holes")

const defaultPar = 4

// Scorecard is the structured content of an uploaded scorecard.
type Scorecard struct {
	Holes []Hole `json:"holes"`
}

// HolesPlayed is the number of holes on the card.
func (s *Scorecard) HolesPlayed() int { return len(s.Holes) }

// Hole carries its shots in play order. Score is the number of shots.
type Hole struct {
	Number int    `json:"number"`
	Par    int    `json:"par"`
	Score  int    `json:"score"`
	Shots  []Shot `json:"shots"`
}

type Shot struct {
	Number        int            `json:"number"`
	StartDistance int            `json:"start_distance"`
	Lie           roundtypes.Lie `json:"lie"`
}

// lieCodes are the single-letter lie marks printed on the paper card.
var lieCodes = map[string]roundtypes.Lie{
	"t": roundtypes.LieTee,
	"f": roundtypes.LieFairway,
	"r": roundtypes.LieRough,
	"x": roundtypes.LieRecovery,
	"p": roundtypes.LiePenalty,
	"s": roundtypes.LieSand,
	"g": roundtypes.LieGreen,
}

// parseLie accepts a lie name or card letter. Anything else is fairway.
func parseLie(raw string) roundtypes.Lie {
	if l, ok := lieCodes[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return l
	}
	return roundtypes.CoerceLie(raw)
}

// finalize orders shots and holes by number, fills hole numbers that were
// missing by position and sets each score to the shot count.
func (s *Scorecard) finalize() error {
	if len(s.Holes) == 0 {
		return ErrEmptyScorecard
	}
	for i := range s.Holes {
		h := &s.Holes[i]
		if h.Number <= 0 {
			h.Number = i + 1
		}
		if h.Par == 0 {
			h.Par = defaultPar
		}
		sort.SliceStable(h.Shots, func(a, b int) bool { return h.Shots[a].Number < h.Shots[b].Number })
		h.Score = len(h.Shots)
	}
	sort.SliceStable(s.Holes, func(a, b int) bool { return s.Holes[a].Number < s.Holes[b].Number })
	return nil
}
