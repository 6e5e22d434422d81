package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/pcastera/richelieu/internal/models"
)

// maxDonutSlices keeps the allocation donut legible; lighter sectors are
// folded into a trailing "Autres" slice.
const maxDonutSlices = 9

// RenderSectorChart renders the sector market-cap allocation as a PNG donut.
// Weights must arrive heaviest first.
func RenderSectorChart(weights []models.SectorWeight) ([]byte, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("no sector weights to render")
	}

	values := make([]chart.Value, 0, maxDonutSlices+1)
	var restCap, restWeight float64
	for i, w := range weights {
		if i < maxDonutSlices {
			values = append(values, chart.Value{
				Value: w.MarketCap,
				Label: fmt.Sprintf("%s (%.1f%%)", w.Sector, w.Weight),
			})
			continue
		}
		restCap += w.MarketCap
		restWeight += w.Weight
	}
	if restCap > 0 {
		values = append(values, chart.Value{
			Value: restCap,
			Label: fmt.Sprintf("Autres (%.1f%%)", restWeight),
		})
	}

	graph := chart.DonutChart{
		Title:  "Répartition sectorielle",
		Width:  600,
		Height: 600,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
