package statsservice

import (
	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
)

type ApproachStats struct {
	StrokesGained      []BucketValue `json:"strokes_gained"`
	StrokesGainedRough []BucketValue `json:"strokes_gained_rough"`
	Proximity          []BucketValue `json:"proximity"`
	ProximityRough     []BucketValue `json:"proximity_rough"`
}

func ComputeApproach(holes []roundtypes.Hole, scope Scope) ApproachStats {
	rough := fromLie(roundtypes.LieRough)
	return ApproachStats{
		StrokesGained:      strokesGainedByBucket(holes, scope, roundtypes.CategoryApproach, ApproachBuckets, nil),
		StrokesGainedRough: strokesGainedByBucket(holes, scope, roundtypes.CategoryApproach, ApproachBuckets, rough),
		Proximity:          proximityByBucket(holes, roundtypes.CategoryApproach, ApproachBuckets, nil),
		ProximityRough:     proximityByBucket(holes, roundtypes.CategoryApproach, ApproachBuckets, rough),
	}
}
