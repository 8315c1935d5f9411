// Package strokesgained scores shots against a benchmark table.
package strokesgained

import (
	"errors"
	"fmt"

	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
)

// ExpectationTable is satisfied by *benchmark.Table.
type ExpectationTable interface {
	ExpectedStrokes(lie roundtypes.Lie, distance int) (float64, error)
	Range(lie roundtypes.Lie) (min, max int, ok bool)
}

// ErrOutOfRange means the table has no value for a lie at that distance.
var ErrOutOfRange = errors.New("distance outside benchmark range")

type Calculator struct {
	table ExpectationTable
}

func NewCalculator(table ExpectationTable) *Calculator {
	return &Calculator{table: table}
}

// CheckRange returns ErrOutOfRange unless the table covers distance on lie.
func (c *Calculator) CheckRange(lie roundtypes.Lie, distance int) error {
	lo, hi, ok := c.table.Range(lie)
	if !ok {
		return fmt.Errorf("%w: no values for lie %s", ErrOutOfRange, lie)
	}
	if distance < lo || distance > hi {
		return fmt.Errorf("%w: %s covers %d-%d, got %d", ErrOutOfRange, lie, lo, hi, distance)
	}
	return nil
}

// StrokesGained scores shot against the one that followed it on the hole.
// A nil next means the shot holed out.
func (c *Calculator) StrokesGained(shot roundtypes.Shot, next *roundtypes.Shot) (float64, error) {
	before, err := c.table.ExpectedStrokes(shot.Lie, shot.StartDistance)
	if err != nil {
		return 0, err
	}
	if next == nil {
		return before - 1, nil
	}
	after, err := c.table.ExpectedStrokes(next.Lie, next.StartDistance)
	if err != nil {
		return 0, err
	}
	return before - after - 1, nil
}

// ScoreHole numbers shots 1..n in the order given, then classifies and
// scores each against its successor. The input slice is not modified.
func (c *Calculator) ScoreHole(shots []roundtypes.Shot) ([]roundtypes.Shot, error) {
	scored := make([]roundtypes.Shot, len(shots))
	copy(scored, shots)
	for i := range scored {
		scored[i].Number = i + 1
		scored[i].Category = roundtypes.Classify(scored[i].Lie, scored[i].StartDistance)
	}
	for i := range scored {
		var next *roundtypes.Shot
		if i+1 < len(scored) {
			next = &scored[i+1]
		}
		sg, err := c.StrokesGained(scored[i], next)
		if err != nil {
			return nil, fmt.Errorf("shot %d: %w", scored[i].Number, err)
		}
		scored[i].StrokesGained = sg
	}
	return scored, nil
}
