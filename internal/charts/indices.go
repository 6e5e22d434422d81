package charts

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/pcastera/richelieu/internal/models"
)

// RenderIndexChart renders the normalized index comparison as a PNG line
// chart, one colored series per index rebased to 100.
func RenderIndexChart(indices map[string]models.IndexSeries) ([]byte, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("no index series to render")
	}

	// Deterministic series order for the legend.
	tickers := make([]string, 0, len(indices))
	for t := range indices {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	var series []chart.Series
	for _, ticker := range tickers {
		idx := indices[ticker]
		if len(idx.Data) < 2 {
			continue
		}

		xValues := make([]time.Time, len(idx.Data))
		yValues := make([]float64, len(idx.Data))
		for i, p := range idx.Data {
			xValues[i] = p.Time.Time
			yValues[i] = p.Value
		}

		name := idx.Name
		if name == "" {
			name = ticker
		}

		series = append(series, chart.TimeSeries{
			Name: name,
			Style: chart.Style{
				StrokeColor: drawing.ColorFromHex(strings.TrimPrefix(idx.Color, "#")),
				StrokeWidth: 2.0,
			},
			XValues: xValues,
			YValues: yValues,
		})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("no index series with enough points to render")
	}

	graph := chart.Chart{
		Title:  "Indices (base 100)",
		Width:  900,
		Height: 420,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("2006")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Series: series,
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
