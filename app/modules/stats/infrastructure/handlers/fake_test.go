package statshandlers

import (
	"context"

	statsservice "github.com/Black-And-White-Club/birdie-buddy/app/modules/stats/application"
	"github.com/google/uuid"
)

// FakeService records calls and the round scope each one received.
type FakeService struct {
	trace  []string
	rounds []*uuid.UUID

	Err   error
	Chart []byte
}

func (f *FakeService) record(step string, roundID *uuid.UUID) {
	f.trace = append(f.trace, step)
	f.rounds = append(f.rounds, roundID)
}

func (f *FakeService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeService) StrokesGained(_ context.Context, _ uuid.UUID, roundID *uuid.UUID) (statsservice.StrokesGainedStats, error) {
	f.record("StrokesGained", roundID)
	return statsservice.StrokesGainedStats{Driving: 1.5, Holes: 18}, f.Err
}

func (f *FakeService) Approach(_ context.Context, _ uuid.UUID, roundID *uuid.UUID) (statsservice.ApproachStats, error) {
	f.record("Approach", roundID)
	return statsservice.ApproachStats{}, f.Err
}

func (f *FakeService) Putting(_ context.Context, _ uuid.UUID, roundID *uuid.UUID) (statsservice.PuttingStats, error) {
	f.record("Putting", roundID)
	return statsservice.PuttingStats{MakeRateOverall: 42}, f.Err
}

func (f *FakeService) ShortGame(_ context.Context, _ uuid.UUID, roundID *uuid.UUID) (statsservice.ShortGameStats, error) {
	f.record("ShortGame", roundID)
	return statsservice.ShortGameStats{}, f.Err
}

func (f *FakeService) Driving(_ context.Context, _ uuid.UUID, roundID *uuid.UUID) (statsservice.DrivingStats, error) {
	f.record("Driving", roundID)
	return statsservice.DrivingStats{}, f.Err
}

func (f *FakeService) TigerFive(_ context.Context, _ uuid.UUID, roundID *uuid.UUID) (statsservice.TigerFiveStats, error) {
	f.record("TigerFive", roundID)
	return statsservice.TigerFiveStats{ThreePutts: 2}, f.Err
}

func (f *FakeService) MentalScorecard(_ context.Context, _ uuid.UUID, roundID *uuid.UUID) (statsservice.MentalScorecardStats, error) {
	f.record("MentalScorecard", roundID)
	return statsservice.MentalScorecardStats{}, f.Err
}

func (f *FakeService) Summary(_ context.Context, _ uuid.UUID, roundID *uuid.UUID) (statsservice.Summary, error) {
	f.record("Summary", roundID)
	return statsservice.Summary{PerEighteen: roundID == nil}, f.Err
}

func (f *FakeService) StrokesGainedChart(_ context.Context, _ uuid.UUID, roundID *uuid.UUID) ([]byte, error) {
	f.record("StrokesGainedChart", roundID)
	return f.Chart, f.Err
}

var _ statsservice.Service = (*FakeService)(nil)
