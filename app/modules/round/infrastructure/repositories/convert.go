package rounddb

import (
	"sort"

	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
)

// ToDomain converts the round and any loaded holes, ordered by number.
func (r *Round) ToDomain() roundtypes.Round {
	out := roundtypes.Round{
		ID:          r.ID,
		UserID:      r.UserID,
		CourseName:  r.CourseName,
		HolesPlayed: r.HolesPlayed,
		CreatedAt:   r.CreatedAt,
		Holes:       make([]roundtypes.Hole, 0, len(r.Holes)),
	}
	for _, h := range r.Holes {
		out.Holes = append(out.Holes, h.ToDomain())
	}
	sort.SliceStable(out.Holes, func(i, j int) bool { return out.Holes[i].Number < out.Holes[j].Number })
	return out
}

// ToDomain converts the hole and any loaded shots, ordered by number.
func (h *Hole) ToDomain() roundtypes.Hole {
	out := roundtypes.Hole{
		ID:              h.ID,
		RoundID:         h.RoundID,
		UserID:          h.UserID,
		Number:          h.Number,
		Par:             h.Par,
		Score:           h.Score,
		MentalScorecard: h.MentalScorecard,
		Shots:           make([]roundtypes.Shot, 0, len(h.Shots)),
	}
	for _, s := range h.Shots {
		out.Shots = append(out.Shots, s.ToDomain())
	}
	sort.SliceStable(out.Shots, func(i, j int) bool { return out.Shots[i].Number < out.Shots[j].Number })
	return out
}

func (s *Shot) ToDomain() roundtypes.Shot {
	return roundtypes.Shot{
		ID:            s.ID,
		HoleID:        s.HoleID,
		UserID:        s.UserID,
		Number:        s.Number,
		StartDistance: s.StartDistance,
		Lie:           roundtypes.Lie(s.Lie),
		Category:      roundtypes.Category(s.Category),
		StrokesGained: s.StrokesGained,
	}
}

func ShotFromDomain(s roundtypes.Shot) *Shot {
	return &Shot{
		ID:            s.ID,
		HoleID:        s.HoleID,
		UserID:        s.UserID,
		Number:        s.Number,
		StartDistance: s.StartDistance,
		Lie:           string(s.Lie),
		Category:      string(s.Category),
		StrokesGained: s.StrokesGained,
	}
}

// HolesToDomain converts a slice of loaded holes.
func HolesToDomain(holes []*Hole) []roundtypes.Hole {
	out := make([]roundtypes.Hole, 0, len(holes))
	for _, h := range holes {
		out = append(out, h.ToDomain())
	}
	return out
}
