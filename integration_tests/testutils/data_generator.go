package testutils

import (
	"time"

	practicedb "github.com/Black-And-White-Club/birdie-buddy/app/modules/practice/infrastructure/repositories"
	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
	rounddb "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/repositories"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// TestDataGenerator provides methods to create test data for integration tests
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a new test data generator with optional seed
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}
	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

func (g *TestDataGenerator) Seed() int64 { return g.seed }

// GenerateRound returns an unsaved round for userID with holesPlayed set.
func (g *TestDataGenerator) GenerateRound(userID uuid.UUID, holesPlayed int) *rounddb.Round {
	end := time.Now().Add(-time.Hour)
	return &rounddb.Round{
		ID:          uuid.New(),
		UserID:      userID,
		CourseName:  g.faker.City() + " Golf Club",
		HolesPlayed: &holesPlayed,
		CreatedAt:   g.faker.DateRange(end.AddDate(0, -6, 0), end),
	}
}

// GenerateHole returns an unsaved hole with a plausible shot sequence. Its
// shots carry no category or strokes gained; score them before saving if
// those matter.
func (g *TestDataGenerator) GenerateHole(round *rounddb.Round, number int) (*rounddb.Hole, []roundtypes.Shot) {
	par := g.faker.Number(3, 5)
	shots := g.generateShots(par)
	score := len(shots)
	mental := score - g.faker.Number(0, 1)

	return &rounddb.Hole{
		ID:              uuid.New(),
		RoundID:         round.ID,
		UserID:          round.UserID,
		Number:          number,
		Par:             par,
		Score:           &score,
		MentalScorecard: &mental,
	}, shots
}

// generateShots walks from the tee to the cup: a tee shot, approaches into
// range, then one to three putts.
func (g *TestDataGenerator) generateShots(par int) []roundtypes.Shot {
	var distance int
	switch par {
	case 3:
		distance = g.faker.Number(120, 220)
	case 4:
		distance = g.faker.Number(320, 460)
	default:
		distance = g.faker.Number(480, 600)
	}

	shots := []roundtypes.Shot{{StartDistance: distance, Lie: roundtypes.LieTee}}
	for distance > 40 && len(shots) < par {
		distance = distance * g.faker.Number(5, 35) / 100
		if distance < 1 {
			distance = 1
		}
		lie := roundtypes.Lie(g.faker.RandomString([]string{"fairway", "fairway", "rough", "sand"}))
		if lie == roundtypes.LieSand && distance > 200 {
			lie = roundtypes.LieRough
		}
		shots = append(shots, roundtypes.Shot{StartDistance: distance, Lie: lie})
	}

	putts := g.faker.Number(1, 3)
	feet := g.faker.Number(3, 45)
	for i := 0; i < putts; i++ {
		shots = append(shots, roundtypes.Shot{StartDistance: feet, Lie: roundtypes.LieGreen})
		feet = max(1, feet/4)
	}
	return shots
}

// ToRows converts scored shots into rows for holeID.
func ToRows(holeID, userID uuid.UUID, shots []roundtypes.Shot) []*rounddb.Shot {
	rows := make([]*rounddb.Shot, 0, len(shots))
	for i, s := range shots {
		s.Number = i + 1
		s.HoleID = holeID
		s.UserID = userID
		rows = append(rows, rounddb.ShotFromDomain(s))
	}
	return rows
}

// GenerateSession returns an unsaved practice session created at the given time.
func (g *TestDataGenerator) GenerateSession(userID uuid.UUID, createdAt time.Time) *practicedb.Session {
	return &practicedb.Session{
		ID:           uuid.New(),
		UserID:       userID,
		PracticeType: g.faker.RandomString([]string{"FS", "SG", "PT"}),
		Outcome:      g.faker.Number(1, 4),
		Notes:        g.faker.Sentence(8),
		CreatedAt:    createdAt,
	}
}
