package benchmark

import (
	_ "embed"
	"fmt"
	"math"
	"os"
	"sort"

	roundtypes "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/domain/types"
	"gopkg.in/yaml.v3"
)

//go:embed data/pga_tour.yaml
var pgaTour []byte

type tableFile struct {
	Name   string                     `yaml:"name"`
	Curves map[string]map[int]float64 `yaml:"curves"`
}

// Load returns the built-in tour table.
func Load() (*Table, error) {
	return Parse(pgaTour)
}

// LoadFile reads a table in the same YAML layout as the built-in one.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes anchor points per lie and fills every integer distance
// between consecutive anchors.
func Parse(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode benchmark table: %w", err)
	}
	if len(f.Curves) == 0 {
		return nil, fmt.Errorf("benchmark table %q has no curves", f.Name)
	}

	values := make(map[roundtypes.Lie]map[int]float64, len(f.Curves))
	for name, anchors := range f.Curves {
		lie, ok := roundtypes.ParseLie(name)
		if !ok {
			return nil, fmt.Errorf("benchmark table %q: unknown lie %q", f.Name, name)
		}
		if lie == roundtypes.LiePenalty {
			return nil, fmt.Errorf("benchmark table %q: penalty is looked up as recovery and cannot have its own curve", f.Name)
		}
		dense, err := expand(anchors)
		if err != nil {
			return nil, fmt.Errorf("benchmark table %q, lie %s: %w", f.Name, lie, err)
		}
		values[lie] = dense
	}
	return New(f.Name, values), nil
}

func expand(anchors map[int]float64) (map[int]float64, error) {
	if len(anchors) == 0 {
		return nil, fmt.Errorf("no anchors")
	}
	distances := make([]int, 0, len(anchors))
	for d, v := range anchors {
		if d < 1 {
			return nil, fmt.Errorf("distance %d must be at least 1", d)
		}
		if v < 1 {
			return nil, fmt.Errorf("expected strokes %.3f at %d must be at least 1", v, d)
		}
		distances = append(distances, d)
	}
	sort.Ints(distances)

	dense := make(map[int]float64, distances[len(distances)-1]-distances[0]+1)
	dense[distances[0]] = round3(anchors[distances[0]])
	for i := 1; i < len(distances); i++ {
		lo, hi := distances[i-1], distances[i]
		vlo, vhi := anchors[lo], anchors[hi]
		for d := lo + 1; d <= hi; d++ {
			frac := float64(d-lo) / float64(hi-lo)
			dense[d] = round3(vlo + (vhi-vlo)*frac)
		}
	}
	return dense, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
