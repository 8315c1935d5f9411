package statsservice

import (
	"bytes"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartPalette holds the colors used when rendering charts.
type ChartPalette struct {
	Background drawing.Color
	TextColor  drawing.Color
	Gained     drawing.Color
	Lost       drawing.Color
}

// DefaultPalette is fairway green on white.
var DefaultPalette = ChartPalette{
	Background: drawing.ColorWhite,
	TextColor:  drawing.ColorFromHex("1f2933"),
	Gained:     drawing.ColorFromHex("2f855a"),
	Lost:       drawing.ColorFromHex("c53030"),
}

// RenderStrokesGainedChart draws strokes gained by category as a PNG bar
// chart around zero.
func RenderStrokesGainedChart(sg StrokesGainedStats, palette ChartPalette) ([]byte, error) {
	if sg.Holes == 0 {
		return renderNoDataPlaceholder(palette)
	}

	values := []struct {
		label string
		value float64
	}{
		{"Driving", sg.Driving},
		{"Approach", sg.Approach},
		{"Around green", sg.AroundTheGreen},
		{"Putting", sg.Putting},
	}

	lo, hi := 0.0, 0.0
	bars := make([]chart.Value, 0, len(values))
	for _, v := range values {
		lo = min(lo, v.value)
		hi = max(hi, v.value)
		color := palette.Gained
		if v.value < 0 {
			color = palette.Lost
		}
		bars = append(bars, chart.Value{
			Label: v.label,
			Value: v.value,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		})
	}
	// go-chart rejects a zero-height range.
	if hi-lo < 0.5 {
		hi += 0.25
		lo -= 0.25
	}

	return renderBars("Strokes gained", 800, 400, bars, lo, hi, palette)
}

// renderNoDataPlaceholder draws an empty bar chart titled with the message.
// go-chart needs at least one bar, so it gets a single invisible zero bar.
func renderNoDataPlaceholder(palette ChartPalette) ([]byte, error) {
	bars := []chart.Value{{
		Value: 0,
		Style: chart.Style{FillColor: palette.Background, StrokeColor: palette.Background},
	}}
	return renderBars("No shots recorded yet", 400, 200, bars, -1, 1, palette)
}

func renderBars(title string, width, height int, bars []chart.Value, lo, hi float64, palette ChartPalette) ([]byte, error) {
	graph := chart.BarChart{
		Title:        title,
		Width:        width,
		Height:       height,
		BarWidth:     width / 10,
		UseBaseValue: true,
		BaseValue:    0,
		Background: chart.Style{
			FillColor: palette.Background,
		},
		Canvas: chart.Style{
			FillColor: palette.Background,
		},
		TitleStyle: chart.Style{
			FontColor: palette.TextColor,
		},
		XAxis: chart.Style{
			FontColor: palette.TextColor,
		},
		YAxis: chart.YAxis{
			Style: chart.Style{
				FontColor: palette.TextColor,
			},
			Range: &chart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: bars,
	}

	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
