package weather

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func series(name string, highs []float64, precip []float64) LocationForecast {
	lf := LocationForecast{Name: name}
	for i, high := range highs {
		day := Day{
			Date:      fmt.Sprintf("2026-08-%02d", 25+i),
			TempHighC: high,
			PrecipMM:  precip[i],
		}
		lf.Forecasts = append(lf.Forecasts, day)
	}
	return lf
}

func TestRainyDays(t *testing.T) {
	lf := series("London", []float64{20, 20, 20}, []float64{0, 0.2, 0.3})
	// 0.2 sits exactly on the threshold and does not count
	assert.Equal(t, 1, RainyDays(lf.Forecasts))
}

func TestRecommendations(t *testing.T) {
	t.Run("equal temperatures are comparable", func(t *testing.T) {
		paris := series("Paris", []float64{20, 21, 22, 21, 20, 21, 22}, make([]float64, 7))
		london := series("London", []float64{20, 21, 22, 21, 20, 21, 22}, make([]float64, 7))

		recs := Recommendations(paris, london, 7)
		require.NotEmpty(t, recs)
		assert.Contains(t, recs[0], "comparable")
		assert.Contains(t, recs[len(recs)-1], "similar weather patterns")
	})

	t.Run("sub-degree difference is still comparable", func(t *testing.T) {
		a := series("Paris", []float64{20.0, 20.0}, make([]float64, 2))
		b := series("London", []float64{20.9, 20.9}, make([]float64, 2))

		recs := Recommendations(a, b, 2)
		assert.Contains(t, recs[0], "comparable")
	})

	t.Run("warmer location named first", func(t *testing.T) {
		nice := series("Nice", []float64{28, 29, 28}, make([]float64, 3))
		oslo := series("Oslo", []float64{12, 13, 12}, make([]float64, 3))

		recs := Recommendations(oslo, nice, 3)
		assert.Contains(t, recs[0], "Nice will be warmer than Oslo")
	})

	t.Run("rainy day comparison and overall pick", func(t *testing.T) {
		dry := series("Seville", []float64{30, 30, 30}, []float64{0, 0, 0})
		wet := series("Bergen", []float64{14, 14, 14}, []float64{4.0, 6.5, 1.0})

		recs := Recommendations(dry, wet, 3)
		require.Len(t, recs, 3)
		assert.Contains(t, recs[0], "Seville will be warmer")
		assert.Contains(t, recs[1], "Seville has fewer rainy days expected (0 vs 3)")
		assert.Contains(t, recs[2], "Seville looks like the better pick")
	})

	t.Run("equal rain falls back to temperature for the pick", func(t *testing.T) {
		warm := series("Rome", []float64{28, 28}, []float64{1.0, 0})
		cool := series("Reykjavik", []float64{10, 10}, []float64{1.0, 0})

		recs := Recommendations(cool, warm, 2)
		require.Len(t, recs, 2) // no rainy-day rec when counts match
		assert.Contains(t, recs[1], "Rome looks like the better pick")
	})
}

func TestCompare(t *testing.T) {
	paris := series("Paris", []float64{20, 21}, make([]float64, 2))
	london := series("London", []float64{19, 20}, make([]float64, 2))
	now := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)

	report := Compare(paris, london, 2, now)
	assert.Equal(t, "multi_day", report.ComparisonType)
	assert.Equal(t, 2, report.NumDays)
	assert.Equal(t, "Paris", report.Location1.Name)
	assert.Equal(t, "London", report.Location2.Name)
	assert.NotEmpty(t, report.Recommendations)
	assert.Equal(t, "2026-08-25T10:00:00Z", report.GeneratedAt)
}
