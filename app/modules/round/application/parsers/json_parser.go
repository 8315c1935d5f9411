package parsers

import (
	"encoding/json"
	"fmt"
	"strings"
)

// JSONParser reads the scorecard JSON returned by the vision service.
// Markdown code fences around the document are ignored.
type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

type jsonScorecard struct {
	Holes []jsonHole `json:"holes"`
}

type jsonHole struct {
	Number *int       `json:"number"`
	Par    *int       `json:"par"`
	Shots  []jsonShot `json:"shots"`
}

type jsonShot struct {
	Number        *int    `json:"number"`
	StartDistance *int    `json:"start_distance"`
	Lie           *string `json:"lie"`
}

func (p *JSONParser) Parse(data []byte) (*Scorecard, error) {
	var raw jsonScorecard
	if err := json.Unmarshal([]byte(stripCodeFence(string(data))), &raw); err != nil {
		return nil, fmt.Errorf("failed to decode scorecard JSON: %w", err)
	}

	card := &Scorecard{Holes: make([]Hole, 0, len(raw.Holes))}
	for _, rh := range raw.Holes {
		h := Hole{Number: valueOr(rh.Number, 0), Par: valueOr(rh.Par, defaultPar)}
		for _, rs := range rh.Shots {
			lie := "fairway"
			if rs.Lie != nil {
				lie = *rs.Lie
			}
			h.Shots = append(h.Shots, Shot{
				Number:        valueOr(rs.Number, 1),
				StartDistance: valueOr(rs.StartDistance, 0),
				Lie:           parseLie(lie),
			})
		}
		card.Holes = append(card.Holes, h)
	}

	if err := card.finalize(); err != nil {
		return nil, err
	}
	return card, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
