package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcastera/richelieu/internal/models"
)

func day(s string) models.Date {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return models.Date{Time: t}
}

func series(color string, points ...models.IndexPoint) models.IndexSeries {
	return models.IndexSeries{Name: "idx", Color: color, Data: points}
}

func pt(date string, value float64) models.IndexPoint {
	return models.IndexPoint{Time: day(date), Value: value}
}

func TestNormalizeIndices(t *testing.T) {
	t.Run("rebases all series to 100 at earliest shared date", func(t *testing.T) {
		indices := map[string]models.IndexSeries{
			"A": series("ff0000", pt("2020-01-01", 50), pt("2020-01-02", 55)),
			"B": series("00ff00", pt("2020-01-02", 10), pt("2020-01-03", 11)),
		}

		out := NormalizeIndices(indices)

		a := out["A"].Data
		require.Len(t, a, 1)
		assert.Equal(t, "2020-01-02", a[0].Time.Format("2006-01-02"))
		assert.Equal(t, 100.00, a[0].Value)

		b := out["B"].Data
		require.Len(t, b, 2)
		assert.Equal(t, 100.00, b[0].Value)
		assert.Equal(t, 110.00, b[1].Value)
	})

	t.Run("points before the base date are dropped", func(t *testing.T) {
		indices := map[string]models.IndexSeries{
			"A": series("ff0000", pt("2019-06-01", 40), pt("2020-01-01", 50), pt("2020-02-01", 60)),
			"B": series("00ff00", pt("2020-01-01", 200), pt("2020-02-01", 210)),
		}

		out := NormalizeIndices(indices)

		for name, s := range out {
			for _, p := range s.Data {
				assert.False(t, p.Time.Before(day("2020-01-01").Time), "series %s kept a pre-base point", name)
			}
			assert.Equal(t, 100.00, s.Data[0].Value)
		}
	})

	t.Run("no shared date returns input unchanged", func(t *testing.T) {
		indices := map[string]models.IndexSeries{
			"A": series("ff0000", pt("2020-01-01", 50)),
			"B": series("00ff00", pt("2020-01-02", 10)),
		}

		out := NormalizeIndices(indices)

		assert.Equal(t, indices, out)
	})

	t.Run("zero base value leaves that series unrescaled", func(t *testing.T) {
		indices := map[string]models.IndexSeries{
			"A": series("ff0000", pt("2020-01-01", 0), pt("2020-01-02", 5)),
			"B": series("00ff00", pt("2020-01-01", 10), pt("2020-01-02", 12)),
		}

		out := NormalizeIndices(indices)

		// A untouched, including its zero point
		require.Len(t, out["A"].Data, 2)
		assert.Equal(t, 0.0, out["A"].Data[0].Value)
		assert.Equal(t, 5.0, out["A"].Data[1].Value)

		// B still rebased
		assert.Equal(t, 100.00, out["B"].Data[0].Value)
		assert.Equal(t, 120.00, out["B"].Data[1].Value)
	})

	t.Run("rounding is two decimals", func(t *testing.T) {
		indices := map[string]models.IndexSeries{
			"A": series("ff0000", pt("2020-01-01", 3), pt("2020-01-02", 4)),
			"B": series("00ff00", pt("2020-01-01", 7), pt("2020-01-02", 8)),
		}

		out := NormalizeIndices(indices)

		// 4/3 = 133.333... → 133.33; 8/7 = 114.285... → 114.29
		assert.Equal(t, 133.33, out["A"].Data[1].Value)
		assert.Equal(t, 114.29, out["B"].Data[1].Value)
	})

	t.Run("empty input returned as-is", func(t *testing.T) {
		assert.Empty(t, NormalizeIndices(nil))
	})
}
