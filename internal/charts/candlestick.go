// Package charts renders dashboard panels to PNG with go-chart.
package charts

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/pcastera/richelieu/internal/common"
	"github.com/pcastera/richelieu/internal/models"
)

// CandlestickSeries draws daily OHLC bars. go-chart has no candlestick series
// of its own, so this implements the Series and BoundedValuesProvider
// contracts the same way the library's band series do; the high/low bounds
// drive Y-axis range computation.
type CandlestickSeries struct {
	Name  string
	Style chart.Style
	Bars  []models.HistoryBar

	RisingColor  drawing.Color
	FallingColor drawing.Color
}

// GetName returns the series name.
func (cs *CandlestickSeries) GetName() string {
	return cs.Name
}

// GetYAxis returns which axis the series is rendered on.
func (cs *CandlestickSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

// GetStyle returns the series style.
func (cs *CandlestickSeries) GetStyle() chart.Style {
	return cs.Style
}

// Len returns the number of bars.
func (cs *CandlestickSeries) Len() int {
	return len(cs.Bars)
}

// GetValues returns (time, close) for range and tick computation.
func (cs *CandlestickSeries) GetValues(index int) (float64, float64) {
	bar := cs.Bars[index]
	return chart.TimeToFloat64(bar.Time.Time), bar.Close
}

// GetBoundedValues returns (time, high, low) so the Y range spans full wicks.
func (cs *CandlestickSeries) GetBoundedValues(index int) (float64, float64, float64) {
	bar := cs.Bars[index]
	return chart.TimeToFloat64(bar.Time.Time), bar.High, bar.Low
}

// Validate ensures the series can render.
func (cs *CandlestickSeries) Validate() error {
	if len(cs.Bars) == 0 {
		return fmt.Errorf("candlestick series %s has no bars", cs.Name)
	}
	return nil
}

func (cs *CandlestickSeries) risingColor() drawing.Color {
	if !cs.RisingColor.IsZero() {
		return cs.RisingColor
	}
	return drawing.ColorFromHex("16a34a") // green-600
}

func (cs *CandlestickSeries) fallingColor() drawing.Color {
	if !cs.FallingColor.IsZero() {
		return cs.FallingColor
	}
	return drawing.ColorFromHex("dc2626") // red-600
}

// Render draws wicks and bodies onto the chart canvas.
func (cs *CandlestickSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	if len(cs.Bars) == 0 {
		return
	}

	// Body half-width derived from candle spacing, clamped so dense
	// multi-year charts degrade to bar-of-one-pixel rather than smearing.
	halfWidth := canvasBox.Width() / (len(cs.Bars) * 3)
	if halfWidth < 1 {
		halfWidth = 1
	}
	if halfWidth > 6 {
		halfWidth = 6
	}

	cb := canvasBox.Bottom
	cl := canvasBox.Left

	for _, bar := range cs.Bars {
		x := cl + xrange.Translate(chart.TimeToFloat64(bar.Time.Time))
		yOpen := cb - yrange.Translate(bar.Open)
		yClose := cb - yrange.Translate(bar.Close)
		yHigh := cb - yrange.Translate(bar.High)
		yLow := cb - yrange.Translate(bar.Low)

		color := cs.risingColor()
		if bar.Close < bar.Open {
			color = cs.fallingColor()
		}

		// Wick
		r.SetStrokeColor(color)
		r.SetStrokeWidth(1.0)
		r.MoveTo(x, yHigh)
		r.LineTo(x, yLow)
		r.Stroke()

		// Body
		top, bottom := yOpen, yClose
		if top > bottom {
			top, bottom = bottom, top
		}
		if bottom == top {
			bottom = top + 1 // doji still gets a visible body
		}
		r.SetFillColor(color)
		r.SetStrokeColor(color)
		r.SetStrokeWidth(1.0)
		r.MoveTo(x-halfWidth, top)
		r.LineTo(x+halfWidth, top)
		r.LineTo(x+halfWidth, bottom)
		r.LineTo(x-halfWidth, bottom)
		r.Close()
		r.FillStroke()
	}
}

// RenderCandlestickChart renders a ticker's OHLC history as a PNG.
func RenderCandlestickChart(ticker string, bars []models.HistoryBar, currency string) ([]byte, error) {
	if len(bars) < 2 {
		return nil, fmt.Errorf("need at least 2 bars, got %d", len(bars))
	}

	series := &CandlestickSeries{
		Name: ticker,
		Bars: bars,
	}

	graph := chart.Chart{
		Title:  ticker,
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f %s", f, common.CurrencySymbol(currency))
				}
				return ""
			},
		},
		Series: []chart.Series{series},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
