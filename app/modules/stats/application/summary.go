package statsservice

import (
	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
)

// Summary is every stats family computed over the same holes.
type Summary struct {
	PerEighteen     bool                 `json:"per_eighteen"`
	Holes           int                  `json:"holes"`
	StrokesGained   StrokesGainedStats   `json:"strokes_gained"`
	Approach        ApproachStats        `json:"approach"`
	Putting         PuttingStats         `json:"putting"`
	ShortGame       ShortGameStats       `json:"short_game"`
	Driving         DrivingStats         `json:"driving"`
	TigerFive       TigerFiveStats       `json:"tiger_five"`
	MentalScorecard MentalScorecardStats `json:"mental_scorecard"`
}

func ComputeSummary(holes []roundtypes.Hole, scope Scope) Summary {
	return Summary{
		PerEighteen:     !scope.IsRound(),
		Holes:           len(holes),
		StrokesGained:   ComputeStrokesGained(holes, scope),
		Approach:        ComputeApproach(holes, scope),
		Putting:         ComputePutting(holes, scope),
		ShortGame:       ComputeShortGame(holes, scope),
		Driving:         ComputeDriving(holes, scope),
		TigerFive:       ComputeTigerFive(holes, scope),
		MentalScorecard: ComputeMentalScorecard(holes, scope),
	}
}
