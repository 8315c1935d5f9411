// Package benchmark holds the expected-strokes-to-hole-out table that
// strokes gained is measured against.
package benchmark

import (
	"errors"
	"fmt"
	"sort"

	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
)

// ErrBenchmarkMissing means the table has no entry for a lie/distance pair.
// It points at a table defect, never at bad user input.
var ErrBenchmarkMissing = errors.New("benchmark entry missing")

// Table is immutable once built and safe for concurrent use.
type Table struct {
	name   string
	values map[roundtypes.Lie]map[int]float64
}

// New builds a table from dense per-lie values. The input maps are copied.
func New(name string, values map[roundtypes.Lie]map[int]float64) *Table {
	t := &Table{name: name, values: make(map[roundtypes.Lie]map[int]float64, len(values))}
	for lie, byDistance := range values {
		m := make(map[int]float64, len(byDistance))
		for d, v := range byDistance {
			m[d] = v
		}
		t.values[lie] = m
	}
	return t
}

func (t *Table) Name() string { return t.name }

// ExpectedStrokes returns the average strokes to hole out from distance on
// lie. Penalty lies are looked up as recovery.
func (t *Table) ExpectedStrokes(lie roundtypes.Lie, distance int) (float64, error) {
	if lie == roundtypes.LiePenalty {
		lie = roundtypes.LieRecovery
	}
	if v, ok := t.values[lie][distance]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: lie=%s distance=%d table=%s", ErrBenchmarkMissing, lie, distance, t.name)
}

// Lies returns the lies that have values, sorted.
func (t *Table) Lies() []roundtypes.Lie {
	lies := make([]roundtypes.Lie, 0, len(t.values))
	for l := range t.values {
		lies = append(lies, l)
	}
	sort.Slice(lies, func(i, j int) bool { return lies[i] < lies[j] })
	return lies
}

// Range reports the smallest and largest distance stored for lie.
func (t *Table) Range(lie roundtypes.Lie) (min, max int, ok bool) {
	if lie == roundtypes.LiePenalty {
		lie = roundtypes.LieRecovery
	}
	byDistance, ok := t.values[lie]
	if !ok || len(byDistance) == 0 {
		return 0, 0, false
	}
	first := true
	for d := range byDistance {
		if first || d < min {
			min = d
		}
		if first || d > max {
			max = d
		}
		first = false
	}
	return min, max, true
}
