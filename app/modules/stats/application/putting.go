package statsservice

import (
	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
)

type PuttingStats struct {
	// MakeRate is the percentage of putts in each bucket that were the
	// hole's final shot.
	MakeRate        []BucketValue `json:"make_rate"`
	MakeRateOverall float64       `json:"make_rate_overall"`
	StrokesGained   []BucketValue `json:"strokes_gained"`
}

func ComputePutting(holes []roundtypes.Hole, scope Scope) PuttingStats {
	attempts := make([]int, len(PuttingBuckets))
	makes := make([]int, len(PuttingBuckets))
	var totalAttempts, totalMakes int

	for _, h := range holes {
		last := lastShotNumber(h)
		for _, s := range h.Shots {
			if s.Category != roundtypes.CategoryPutt {
				continue
			}
			made := s.Number == last
			totalAttempts++
			if made {
				totalMakes++
			}
			for i, b := range PuttingBuckets {
				if b.Contains(s.StartDistance) {
					attempts[i]++
					if made {
						makes[i]++
					}
				}
			}
		}
	}

	rates := make([]BucketValue, len(PuttingBuckets))
	for i, b := range PuttingBuckets {
		rates[i] = BucketValue{Bucket: b.Label, Value: percent(makes[i], attempts[i])}
	}

	return PuttingStats{
		MakeRate:        rates,
		MakeRateOverall: percent(totalMakes, totalAttempts),
		StrokesGained:   strokesGainedByBucket(holes, scope, roundtypes.CategoryPutt, PuttingBuckets, nil),
	}
}

func lastShotNumber(h roundtypes.Hole) int {
	last := 0
	for _, s := range h.Shots {
		if s.Number > last {
			last = s.Number
		}
	}
	return last
}
