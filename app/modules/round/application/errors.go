package roundservice

import "errors"

// Domain errors for the round service. They come back as failure results and
// map to 4xx responses; anything else is an infrastructure error.
var (
	ErrRoundNotFound = errors.New("round not found")
	ErrHoleNotFound  = errors.New("hole not found")

	ErrInvalidRound = errors.New("invalid round")
	ErrInvalidHole  = errors.New("invalid hole")
	ErrInvalidShot  = errors.New("invalid shot")

	// ErrHoleOutOfRange means the hole number exceeds the round's holes_played.
	ErrHoleOutOfRange = errors.New("hole number exceeds holes played")

	ErrInvalidScorecard    = errors.New("invalid scorecard")
	ErrScorecardUnreadable = errors.New("scorecard image could not be read")
)
