package report

import (
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ahmedm-02/OUSD-Literacy-Disparities/pkg/zone"
)

// Category colours, as hex without the leading '#'.
var categoryColors = map[string]string{
	zone.Ready:    "3caa57",
	zone.Middle:   "f1d302",
	zone.NotReady: "fb3640",
}

func categoryColor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return "a0a0a0"
}

func categoryStyle(category string) chart.Style {
	col := drawing.ColorFromHex(categoryColor(category))
	return chart.Style{
		FillColor:   col,
		StrokeColor: col,
		StrokeWidth: 1,
	}
}

// RenderPNG draws s as one stacked bar per zone with a dashed line at the
// mean readiness.
func RenderPNG(w io.Writer, s *Summary) error {
	bars := make([]chart.StackedBar, len(s.Zones))
	for i, z := range s.Zones {
		values := make([]chart.Value, 0, len(s.Categories))
		for _, c := range s.Categories {
			values = append(values, chart.Value{
				Label: c,
				Value: s.Proportions[c][i],
				Style: categoryStyle(c),
			})
		}
		bars[i] = chart.StackedBar{Name: fmt.Sprintf("Zone %d", z), Values: values}
	}

	sbc := chart.StackedBarChart{
		Title:      fmt.Sprintf("%s (mean %.2f)", s.Title, s.Mean),
		Width:      1280,
		Height:     640,
		BarSpacing: 16,
		Background: chart.Style{
			Padding: chart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20},
		},
		Bars:     bars,
		Elements: []chart.Renderable{meanLine(s.Mean)},
	}

	return sbc.Render(chart.PNG, w)
}

// meanLine draws a horizontal reference line at share mean of the bar
// height.
func meanLine(mean float64) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		y := canvasBox.Bottom - int(mean*float64(canvasBox.Height()))

		r.SetStrokeColor(chart.ColorBlue)
		r.SetStrokeWidth(2)
		r.SetStrokeDashArray([]float64{6, 4})
		r.MoveTo(canvasBox.Left, y)
		r.LineTo(canvasBox.Right, y)
		r.Stroke()
	}
}

// SavePNG renders s to a PNG file.
func SavePNG(path string, s *Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}

	if err := RenderPNG(f, s); err != nil {
		f.Close()
		return fmt.Errorf("render chart: %w", err)
	}
	return f.Close()
}
