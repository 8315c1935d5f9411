package parsers

import (
	"fmt"
	"strconv"
	"strings"
)

// Tabular scorecards carry one shot per row under a header row:
//
//	Hole, Par, Shot, Distance, Lie
//
// Shot is optional; without it shots keep row order.

var (
	holeColumnNames     = []string{"hole", "hole number", "hole_no", "h"}
	parColumnNames      = []string{"par"}
	shotColumnNames     = []string{"shot", "stroke", "shot number"}
	distanceColumnNames = []string{"distance", "start distance", "start_distance", "yards", "dist"}
	lieColumnNames      = []string{"lie", "start lie", "start_lie"}
)

// findColumn searches for a column by multiple possible names (case-insensitive)
// Removes spaces, underscores, and hyphens for normalization
func findColumn(header []string, possibleNames []string) int {
	for i, col := range header {
		colNorm := normalizeHeader(col)
		for _, name := range possibleNames {
			if colNorm == normalizeHeader(name) {
				return i
			}
		}
	}
	return -1
}

func normalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(s)
}

type columns struct {
	hole, par, shot, distance, lie int
}

func findHeader(rows [][]string) (int, columns, error) {
	for i, row := range rows {
		c := columns{
			hole:     findColumn(row, holeColumnNames),
			par:      findColumn(row, parColumnNames),
			shot:     findColumn(row, shotColumnNames),
			distance: findColumn(row, distanceColumnNames),
			lie:      findColumn(row, lieColumnNames),
		}
		if c.hole >= 0 && c.distance >= 0 && c.lie >= 0 {
			return i, c, nil
		}
	}
	return -1, columns{}, fmt.Errorf("no header row with hole, distance and lie columns")
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func parseShotRows(rows [][]string) (*Scorecard, error) {
	headerIdx, cols, err := findHeader(rows)
	if err != nil {
		return nil, err
	}

	card := &Scorecard{}
	byNumber := map[int]int{}
	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		line := i + 1

		holeNum, err := strconv.Atoi(cell(row, cols.hole))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid hole number %q", line, cell(row, cols.hole))
		}
		distance, err := strconv.Atoi(cell(row, cols.distance))
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid distance %q", line, cell(row, cols.distance))
		}

		idx, ok := byNumber[holeNum]
		if !ok {
			card.Holes = append(card.Holes, Hole{Number: holeNum})
			idx = len(card.Holes) - 1
			byNumber[holeNum] = idx
		}
		h := &card.Holes[idx]

		if raw := cell(row, cols.par); raw != "" && h.Par == 0 {
			par, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: invalid par %q", line, raw)
			}
			h.Par = par
		}

		shotNum := len(h.Shots) + 1
		if raw := cell(row, cols.shot); raw != "" {
			if shotNum, err = strconv.Atoi(raw); err != nil {
				return nil, fmt.Errorf("row %d: invalid shot number %q", line, raw)
			}
		}

		h.Shots = append(h.Shots, Shot{
			Number:        shotNum,
			StartDistance: distance,
			Lie:           parseLie(cell(row, cols.lie)),
		})
	}

	if err := card.finalize(); err != nil {
		return nil, err
	}
	return card, nil
}
