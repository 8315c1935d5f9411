package statsservice

import (
	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
)

// drivesPerEighteen is the usual number of driving holes in 18.
const drivesPerEighteen = 14

// DrivingStats counts where tee shots on par 4s and 5s finished, read from
// the lie of each hole's second shot.
type DrivingStats struct {
	Fairways  float64 `json:"fairways"`
	Rough     float64 `json:"rough"`
	Penalties float64 `json:"penalties"`
	Holes     int     `json:"holes"`
}

func ComputeDriving(holes []roundtypes.Hole, scope Scope) DrivingStats {
	var driving, fairway, rough, penalty int
	for _, h := range holes {
		if h.Par != 4 && h.Par != 5 {
			continue
		}
		driving++
		second, ok := h.ShotByNumber(2)
		if !ok {
			continue
		}
		switch second.Lie {
		case roundtypes.LieFairway:
			fairway++
		case roundtypes.LieRough:
			rough++
		case roundtypes.LiePenalty:
			penalty++
		}
	}

	return DrivingStats{
		Fairways:  scope.scaleTo(float64(fairway), driving, drivesPerEighteen),
		Rough:     scope.scaleTo(float64(rough), driving, drivesPerEighteen),
		Penalties: scope.scaleTo(float64(penalty), driving, drivesPerEighteen),
		Holes:     driving,
	}
}
