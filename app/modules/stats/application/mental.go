package statsservice

import (
	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
	"github.com/google/uuid"
)

// MentalScorecardStats compares the self-assessed score with the real one
// over holes that have both.
type MentalScorecardStats struct {
	MentalScore   float64 `json:"mental_score"`
	ActualScore   float64 `json:"actual_score"`
	MentalPercent float64 `json:"mental_percent"`
	Rounds        int     `json:"rounds"`
	Holes         int     `json:"holes"`
}

func ComputeMentalScorecard(holes []roundtypes.Hole, scope Scope) MentalScorecardStats {
	var mental, actual, counted int
	rounds := map[uuid.UUID]struct{}{}
	for _, h := range holes {
		if h.MentalScorecard == nil || h.Score == nil {
			continue
		}
		mental += *h.MentalScorecard
		actual += *h.Score
		counted++
		rounds[h.RoundID] = struct{}{}
	}

	return MentalScorecardStats{
		MentalScore:   scope.scale(float64(mental), counted),
		ActualScore:   scope.scale(float64(actual), counted),
		MentalPercent: percent(mental, actual),
		Rounds:        len(rounds),
		Holes:         counted,
	}
}
