package activity

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycast-cli/skycast/pkg/weather"
)

// idealDay builds a day at the midpoint of every ideal range of a profile.
func idealDay(p Profile, date string) weather.Day {
	return weather.Day{
		Date:          date,
		DateFormatted: date,
		TempHighC:     p.TempC.Mid(),
		WindKPH:       p.WindKPH.Mid(),
		PrecipMM:      p.PrecipMM.Mid(),
	}
}

func TestScore(t *testing.T) {
	t.Run("midpoint of every range scores 100", func(t *testing.T) {
		for _, p := range Profiles() {
			score, concerns := Score(idealDay(p, "2026-08-25"), p)
			assert.Equal(t, 100.0, score, "profile %s", p.Key)
			assert.Empty(t, concerns, "profile %s", p.Key)
		}
	})

	t.Run("anywhere inside the ranges scores 100", func(t *testing.T) {
		p, _ := Resolve("hiking")
		day := weather.Day{TempHighC: 24, WindKPH: 30, PrecipMM: 2.5}
		score, _ := Score(day, p)
		assert.Equal(t, 100.0, score)
	})

	t.Run("far outside all ranges scores near zero with concerns", func(t *testing.T) {
		p, _ := Resolve("picnic")
		day := weather.Day{TempHighC: -20, WindKPH: 90, PrecipMM: 25}

		score, concerns := Score(day, p)
		assert.Less(t, score, 5.0)
		require.NotEmpty(t, concerns)
		assert.Contains(t, concerns[0], "too cold for picnic")
		assert.Contains(t, concerns[1], "wind exceeds the comfortable picnic range")
		assert.Contains(t, concerns[2], "heavy precipitation expected")
	})

	t.Run("linear penalty outside the range", func(t *testing.T) {
		p, _ := Resolve("cycling") // temp ideal [8,25], slope 8, weight 0.3
		day := idealDay(p, "2026-08-25")
		day.TempHighC = 30 // 5 over: temp fit 60, others 100

		score, _ := Score(day, p)
		assert.InDelta(t, 60*0.3+100*0.3+100*0.4, score, 0.001)
	})

	t.Run("hot side concern names the activity", func(t *testing.T) {
		p, _ := Resolve("skiing") // ideal up to 5°C, slope 10
		day := idealDay(p, "2026-08-25")
		day.TempHighC = 14 // temp fit 10, well under the threshold

		_, concerns := Score(day, p)
		require.NotEmpty(t, concerns)
		assert.Contains(t, concerns[0], "too hot for skiing (14.0°C)")
	})
}

func TestAssess(t *testing.T) {
	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)

	t.Run("best day and period summary", func(t *testing.T) {
		p, _ := Resolve("hiking")
		days := []weather.Day{
			idealDay(p, "2026-08-25"),
			{Date: "2026-08-26", TempHighC: 33, WindKPH: 50, PrecipMM: 9}, // bad day
			idealDay(p, "2026-08-27"),
		}

		result := Assess("hiking", days, now)
		assert.Equal(t, "Hiking", result.Activity)
		assert.Equal(t, "hiking", result.ProfileUsed)
		assert.Equal(t, "activity_recommendation", result.AnalysisType)
		assert.Equal(t, 3, result.NumDays)
		require.NotNil(t, result.BestDay)
		assert.Equal(t, "2026-08-25", result.BestDay.Date, "ties break to the earliest date")
		assert.Equal(t, 100.0, result.BestDay.Score)
		assert.Equal(t, "mostly favorable", result.PeriodAssessment)
		assert.Len(t, result.Daily, 3)
		assert.Equal(t, "2026-08-25T09:00:00Z", result.GeneratedAt)
	})

	t.Run("unknown activity is not fatal and reports the generic profile", func(t *testing.T) {
		days := []weather.Day{{Date: "2026-08-25", TempHighC: 17, WindKPH: 10, PrecipMM: 0}}

		result := Assess("kite-surfing", days, now)
		assert.Equal(t, GenericKey, result.ProfileUsed)
		assert.Equal(t, "Outdoor Activity", result.Activity)
		assert.Equal(t, "kite-surfing", result.Query)
		assert.Equal(t, 100.0, result.OverallScore)
	})

	t.Run("uniformly bad period is unfavorable", func(t *testing.T) {
		var days []weather.Day
		for i := 0; i < 3; i++ {
			days = append(days, weather.Day{
				Date:      fmt.Sprintf("2026-08-%02d", 25+i),
				TempHighC: -25, WindKPH: 80, PrecipMM: 30,
			})
		}

		result := Assess("picnic", days, now)
		assert.Equal(t, "unfavorable", result.PeriodAssessment)
		assert.Less(t, result.OverallScore, 20.0)
		assert.Contains(t, result.OverallRecommendation, "Poor period for picnic")
		for _, day := range result.Daily {
			assert.NotEmpty(t, day.Concerns)
		}
	})

	t.Run("empty series", func(t *testing.T) {
		result := Assess("hiking", nil, now)
		assert.Nil(t, result.BestDay)
		assert.Zero(t, result.OverallScore)
		assert.Equal(t, "unfavorable", result.PeriodAssessment)
	})
}

func TestRating(t *testing.T) {
	assert.Equal(t, "Excellent", Rating(95))
	assert.Equal(t, "Excellent", Rating(80))
	assert.Equal(t, "Good", Rating(60))
	assert.Equal(t, "Fair", Rating(40))
	assert.Equal(t, "Poor", Rating(20))
	assert.Equal(t, "Not Recommended", Rating(5))
}
