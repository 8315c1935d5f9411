package statsservice

import (
	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
)

// bogeyWedgeRange is the yardage inside which a bogey counts as a mistake.
const bogeyWedgeRange = 150

// TigerFiveStats counts holes with each of the five classic mistakes.
type TigerFiveStats struct {
	Penalties       float64 `json:"penalties"`
	DoubleBogeys    float64 `json:"double_bogeys"`
	ThreePutts      float64 `json:"three_putts"`
	BogeysInside150 float64 `json:"bogeys_inside_150"`
	TwoChips        float64 `json:"two_chips"`
	Holes           int     `json:"holes"`
}

// ComputeTigerFive counts double bogeys on every scored hole and the other
// mistakes on holes with shots. Per 18 scales by the holes with shots.
func ComputeTigerFive(holes []roundtypes.Hole, scope Scope) TigerFiveStats {
	var played, penalties, doubles, threePutts, bogeys, twoChips int
	for _, h := range holes {
		if h.Score != nil && *h.Score >= h.Par+2 {
			doubles++
		}
		if !h.HasShots() {
			continue
		}
		played++

		penalized := h.HasLie(roundtypes.LiePenalty)
		if penalized {
			penalties++
		}
		if countLie(h, roundtypes.LieGreen) >= 3 {
			threePutts++
		}
		if h.Score != nil && *h.Score == h.Par+1 && !penalized && hasWedgeShot(h) {
			bogeys++
		}
		if h.CountShots(roundtypes.CategoryAroundGreen) == 2 {
			twoChips++
		}
	}

	return TigerFiveStats{
		Penalties:       scope.scale(float64(penalties), played),
		DoubleBogeys:    scope.scale(float64(doubles), played),
		ThreePutts:      scope.scale(float64(threePutts), played),
		BogeysInside150: scope.scale(float64(bogeys), played),
		TwoChips:        scope.scale(float64(twoChips), played),
		Holes:           played,
	}
}

func countLie(h roundtypes.Hole, l roundtypes.Lie) int {
	n := 0
	for _, s := range h.Shots {
		if s.Lie == l {
			n++
		}
	}
	return n
}

// hasWedgeShot reports a fairway approach or chip from inside 150 yards.
func hasWedgeShot(h roundtypes.Hole) bool {
	for _, s := range h.Shots {
		if s.Lie != roundtypes.LieFairway || s.Yards() > bogeyWedgeRange {
			continue
		}
		if s.Category == roundtypes.CategoryApproach || s.Category == roundtypes.CategoryAroundGreen {
			return true
		}
	}
	return false
}
