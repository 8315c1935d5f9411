package statsservice

// Bucket is a half-open distance range [Min, Max). Max of 0 means no upper
// bound. Inclusive closes the range at Max.
type Bucket struct {
	Label     string
	Min       int
	Max       int
	Inclusive bool
}

func (b Bucket) Contains(d int) bool {
	if d < b.Min {
		return false
	}
	switch {
	case b.Max == 0:
		return true
	case b.Inclusive:
		return d <= b.Max
	default:
		return d < b.Max
	}
}

// ApproachBuckets are in yards.
var ApproachBuckets = []Bucket{
	{Label: "30-100", Min: 30, Max: 100},
	{Label: "100-150", Min: 100, Max: 150},
	{Label: "150-200", Min: 150, Max: 200},
	{Label: "200+", Min: 200},
}

// PuttingBuckets are in feet.
var PuttingBuckets = []Bucket{
	{Label: "0-3", Min: 0, Max: 3},
	{Label: "3-6", Min: 3, Max: 6},
	{Label: "6-9", Min: 6, Max: 9},
	{Label: "9-12", Min: 9, Max: 12},
	{Label: "12-15", Min: 12, Max: 15},
	{Label: "15-20", Min: 15, Max: 20},
	{Label: "20-30", Min: 20, Max: 30},
	{Label: "30-40", Min: 30, Max: 40},
	{Label: "40+", Min: 40},
}

// ShortGameBuckets are in yards. The last one closes at 30 so every
// around-the-green shot lands in a bucket.
var ShortGameBuckets = []Bucket{
	{Label: "0-10", Min: 0, Max: 10},
	{Label: "10-20", Min: 10, Max: 20},
	{Label: "20-30", Min: 20, Max: 30, Inclusive: true},
}

// BucketValue is one bucket's figure in a stats response.
type BucketValue struct {
	Bucket string  `json:"bucket"`
	Value  float64 `json:"value"`
}

// Lookup returns the value for label, or 0 when absent.
func Lookup(values []BucketValue, label string) float64 {
	for _, v := range values {
		if v.Bucket == label {
			return v.Value
		}
	}
	return 0
}
