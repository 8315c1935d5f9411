package roundtypes

// Category is the strokes-gained bucket a shot falls into.
type Category string

const (
	CategoryDrive       Category = "drive"
	CategoryApproach    Category = "approach"
	CategoryAroundGreen Category = "around_green"
	CategoryPutt        Category = "putt"
	// CategoryNone marks shots no rule matches, such as recovery and
	// penalty shots or sand/rough shots beyond approach range.
	CategoryNone Category = ""
)

const (
	// ApproachShotStartDistance is the yardage at or below which a
	// non-tee shot off the green counts as around the green.
	ApproachShotStartDistance = 30
	// TeeShotStartDistance is the longest yardage still treated as an approach.
	TeeShotStartDistance = 250
)

func IsPutt(lie Lie) bool { return lie == LieGreen }

func IsShortGameShot(lie Lie, distance int) bool {
	switch lie {
	case LieFairway, LieRough, LieSand:
		return distance <= ApproachShotStartDistance
	}
	return false
}

func IsApproachShot(lie Lie, distance int) bool {
	switch lie {
	case LieTee, LieFairway, LieRough, LieSand:
		return distance > ApproachShotStartDistance && distance <= TeeShotStartDistance
	}
	return false
}

func IsTeeShot(lie Lie, distance int) bool {
	return lie == LieTee && !IsApproachShot(lie, distance)
}

// Classify applies the rules in order; the first match wins.
func Classify(lie Lie, distance int) Category {
	switch {
	case IsPutt(lie):
		return CategoryPutt
	case IsShortGameShot(lie, distance):
		return CategoryAroundGreen
	case IsApproachShot(lie, distance):
		return CategoryApproach
	case IsTeeShot(lie, distance):
		return CategoryDrive
	default:
		return CategoryNone
	}
}
