package statsservice

import (
	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
)

// StrokesGainedStats is strokes gained by category.
type StrokesGainedStats struct {
	Driving        float64 `json:"driving"`
	Approach       float64 `json:"approach"`
	AroundTheGreen float64 `json:"around_the_green"`
	Putting        float64 `json:"putting"`
	Total          float64 `json:"total"`
	Holes          int     `json:"holes"`
}

// ComputeStrokesGained sums the persisted per-shot values of scored holes.
// Per 18 it divides by the number of holes with a score.
func ComputeStrokesGained(holes []roundtypes.Hole, scope Scope) StrokesGainedStats {
	var totals roundtypes.CategoryTotals
	scored := 0
	for _, h := range holes {
		if h.Score == nil {
			continue
		}
		scored++
		totals = totals.Add(h.Totals())
	}
	return StrokesGainedStats{
		Driving:        scope.scale(totals.Driving, scored),
		Approach:       scope.scale(totals.Approach, scored),
		AroundTheGreen: scope.scale(totals.AroundTheGreen, scored),
		Putting:        scope.scale(totals.Putting, scored),
		Total:          scope.scale(totals.Total, scored),
		Holes:          scored,
	}
}

// strokesGainedByBucket sums strokes gained of category c shots that match
// keep, one figure per bucket. Per 18 the denominator is the number of holes
// holding a shot of category c.
func strokesGainedByBucket(holes []roundtypes.Hole, scope Scope, c roundtypes.Category, buckets []Bucket, keep func(roundtypes.Shot) bool) []BucketValue {
	sums := make([]float64, len(buckets))
	for _, h := range holes {
		for _, s := range h.Shots {
			if s.Category != c || (keep != nil && !keep(s)) {
				continue
			}
			for i, b := range buckets {
				if b.Contains(s.StartDistance) {
					sums[i] += s.StrokesGained
				}
			}
		}
	}

	denominator := holesWith(holes, c)
	out := make([]BucketValue, len(buckets))
	for i, b := range buckets {
		out[i] = BucketValue{Bucket: b.Label, Value: scope.scale(sums[i], denominator)}
	}
	return out
}

// proximityByBucket averages, in feet, the start distance of the shot
// following each category c shot that matches keep. Shots that hole out have
// no successor and are left out.
func proximityByBucket(holes []roundtypes.Hole, c roundtypes.Category, buckets []Bucket, keep func(roundtypes.Shot) bool) []BucketValue {
	sums := make([]float64, len(buckets))
	counts := make([]int, len(buckets))
	for _, h := range holes {
		for i, s := range h.Shots {
			if s.Category != c || (keep != nil && !keep(s)) {
				continue
			}
			next, ok := nextShot(h, i)
			if !ok {
				continue
			}
			for j, b := range buckets {
				if b.Contains(s.StartDistance) {
					sums[j] += next.Feet()
					counts[j]++
				}
			}
		}
	}

	out := make([]BucketValue, len(buckets))
	for i, b := range buckets {
		out[i] = BucketValue{Bucket: b.Label, Value: ratio(sums[i], float64(counts[i]))}
	}
	return out
}

func fromLie(l roundtypes.Lie) func(roundtypes.Shot) bool {
	return func(s roundtypes.Shot) bool { return s.Lie == l }
}
