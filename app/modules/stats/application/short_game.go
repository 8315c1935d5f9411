package statsservice

import (
	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
)

type ShortGameStats struct {
	ProximityFairway []BucketValue `json:"proximity_fairway"`
	ProximityRough   []BucketValue `json:"proximity_rough"`
	ProximitySand    float64       `json:"proximity_sand"`
	StrokesGained    []BucketValue `json:"strokes_gained"`
	// TwoChipRate is the percentage of holes, keyed by where the first
	// around-the-green shot was played from, that needed two or more.
	TwoChipRateFairway []BucketValue `json:"two_chip_rate_fairway"`
	TwoChipRateRough   []BucketValue `json:"two_chip_rate_rough"`
	TwoChipRateSand    float64       `json:"two_chip_rate_sand"`
}

var sandBucket = []Bucket{{Label: "sand", Min: 0}}

func ComputeShortGame(holes []roundtypes.Hole, scope Scope) ShortGameStats {
	fairway := fromLie(roundtypes.LieFairway)
	rough := fromLie(roundtypes.LieRough)
	sand := fromLie(roundtypes.LieSand)

	return ShortGameStats{
		ProximityFairway:   proximityByBucket(holes, roundtypes.CategoryAroundGreen, ShortGameBuckets, fairway),
		ProximityRough:     proximityByBucket(holes, roundtypes.CategoryAroundGreen, ShortGameBuckets, rough),
		ProximitySand:      proximityByBucket(holes, roundtypes.CategoryAroundGreen, sandBucket, sand)[0].Value,
		StrokesGained:      strokesGainedByBucket(holes, scope, roundtypes.CategoryAroundGreen, ShortGameBuckets, nil),
		TwoChipRateFairway: twoChipRate(holes, ShortGameBuckets, roundtypes.LieFairway),
		TwoChipRateRough:   twoChipRate(holes, ShortGameBuckets, roundtypes.LieRough),
		TwoChipRateSand:    twoChipRate(holes, sandBucket, roundtypes.LieSand)[0].Value,
	}
}

func twoChipRate(holes []roundtypes.Hole, buckets []Bucket, lie roundtypes.Lie) []BucketValue {
	chances := make([]int, len(buckets))
	doubles := make([]int, len(buckets))
	for _, h := range holes {
		first, ok := firstAroundGreen(h)
		if !ok || first.Lie != lie {
			continue
		}
		twice := h.CountShots(roundtypes.CategoryAroundGreen) >= 2
		for i, b := range buckets {
			if b.Contains(first.StartDistance) {
				chances[i]++
				if twice {
					doubles[i]++
				}
			}
		}
	}

	out := make([]BucketValue, len(buckets))
	for i, b := range buckets {
		out[i] = BucketValue{Bucket: b.Label, Value: percent(doubles[i], chances[i])}
	}
	return out
}

func firstAroundGreen(h roundtypes.Hole) (roundtypes.Shot, bool) {
	for _, s := range h.Shots {
		if s.Category == roundtypes.CategoryAroundGreen {
			return s, true
		}
	}
	return roundtypes.Shot{}, false
}
