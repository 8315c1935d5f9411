package statsservice

import (
	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
)

const holesPerRound = 18

// Scope decides how counts and sums are reported: per 18 holes across every
// round a player has, or raw for a single round.
type Scope struct {
	round bool
}

var (
	PerEighteen = Scope{}
	SingleRound = Scope{round: true}
)

func (s Scope) IsRound() bool { return s.round }

// scale reports raw per 18 holes over the given denominator, or raw itself
// for a single round. A zero denominator yields 0.
func (s Scope) scale(raw float64, holes int) float64 {
	return s.scaleTo(raw, holes, holesPerRound)
}

func (s Scope) scaleTo(raw float64, holes int, per float64) float64 {
	if s.round {
		return raw
	}
	if holes == 0 {
		return 0
	}
	return raw / float64(holes) * per
}

// ratio is a division that treats an empty denominator as 0.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func percent(num, den int) float64 {
	return ratio(float64(num), float64(den)) * 100
}

// holesWith counts holes holding at least one shot of category c.
func holesWith(holes []roundtypes.Hole, c roundtypes.Category) int {
	n := 0
	for _, h := range holes {
		if h.CountShots(c) > 0 {
			n++
		}
	}
	return n
}

// nextShot returns the shot after index i on the hole, if any.
func nextShot(h roundtypes.Hole, i int) (roundtypes.Shot, bool) {
	if i+1 < len(h.Shots) {
		return h.Shots[i+1], true
	}
	return roundtypes.Shot{}, false
}
