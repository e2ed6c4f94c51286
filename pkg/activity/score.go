package activity

import (
	"fmt"
	"strings"
	"time"

	"github.com/skycast-cli/skycast/pkg/weather"
)

// DayScore is one day's suitability result.
type DayScore struct {
	Date          string   `json:"date"`
	DateFormatted string   `json:"date_formatted"`
	Score         float64  `json:"score"`
	Rating        string   `json:"rating"`
	Concerns      []string `json:"concerns,omitempty"`
}

// BestDay is the highest-scoring day of the assessed period.
type BestDay struct {
	Date          string  `json:"date"`
	DateFormatted string  `json:"date_formatted"`
	Score         float64 `json:"score"`
	Rating        string  `json:"rating"`
}

// Assessment is the activity mode's output document. Location and NumDays
// are filled in by the caller once the query context is known.
type Assessment struct {
	Activity              string     `json:"activity"`
	Query                 string     `json:"query"`
	ProfileUsed           string     `json:"profile"`
	Location              string     `json:"location,omitempty"`
	AnalysisType          string     `json:"analysis_type"`
	NumDays               int        `json:"num_days"`
	OverallScore          float64    `json:"overall_score"`
	OverallRating         string     `json:"overall_rating"`
	PeriodAssessment      string     `json:"period_assessment"`
	BestDay               *BestDay   `json:"best_day"`
	Daily                 []DayScore `json:"daily_analysis"`
	OverallRecommendation string     `json:"overall_recommendation"`
	GeneratedAt           string     `json:"generated_at"`
}

// fit scores one attribute in [0,100]: full marks inside the ideal range,
// linear decline at the profile's slope outside it.
func fit(value float64, ideal Range, slope float64) float64 {
	switch {
	case value < ideal.Min:
		return clampScore(100 - slope*(ideal.Min-value))
	case value > ideal.Max:
		return clampScore(100 - slope*(value-ideal.Max))
	default:
		return 100
	}
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	return s
}

// Score computes a day's 0-100 suitability for a profile along with any
// concern strings for sub-scores below the profile's threshold.
func Score(day weather.Day, p Profile) (float64, []string) {
	tempFit := fit(day.TempHighC, p.TempC, p.TempSlope)
	windFit := fit(day.WindKPH, p.WindKPH, p.WindSlope)
	precipFit := fit(day.PrecipMM, p.PrecipMM, p.PrecipSlope)

	var concerns []string
	if tempFit < p.ConcernBelow {
		if day.TempHighC < p.TempC.Min {
			concerns = append(concerns, fmt.Sprintf("too cold for %s (%.1f°C)", lowerName(p), day.TempHighC))
		} else {
			concerns = append(concerns, fmt.Sprintf("too hot for %s (%.1f°C)", lowerName(p), day.TempHighC))
		}
	}
	if windFit < p.ConcernBelow {
		concerns = append(concerns, fmt.Sprintf("wind exceeds the comfortable %s range (%.1f km/h)", lowerName(p), day.WindKPH))
	}
	if precipFit < p.ConcernBelow {
		concerns = append(concerns, fmt.Sprintf("heavy precipitation expected (%.1f mm)", day.PrecipMM))
	}

	total := tempFit*p.Weights.Temperature + windFit*p.Weights.Wind + precipFit*p.Weights.Precipitation
	return weather.Round2(total), concerns
}

// Assess scores a multi-day forecast for the named activity. Unknown
// activity names use the generic profile; ProfileUsed reports which rule
// set applied either way.
func Assess(query string, days []weather.Day, now time.Time) Assessment {
	profile, _ := Resolve(query)

	daily := make([]DayScore, 0, len(days))
	var best *BestDay
	sum := 0.0
	favorable := 0

	for _, day := range days {
		score, concerns := Score(day, profile)
		sum += score
		if score >= 60 {
			favorable++
		}

		daily = append(daily, DayScore{
			Date:          day.Date,
			DateFormatted: day.DateFormatted,
			Score:         score,
			Rating:        Rating(score),
			Concerns:      concerns,
		})

		// Strict greater-than keeps the earliest date on ties.
		if best == nil || score > best.Score {
			best = &BestDay{
				Date:          day.Date,
				DateFormatted: day.DateFormatted,
				Score:         score,
				Rating:        Rating(score),
			}
		}
	}

	avg := 0.0
	if len(days) > 0 {
		avg = weather.Round2(sum / float64(len(days)))
	}

	return Assessment{
		Activity:              profile.Name,
		Query:                 query,
		ProfileUsed:           profile.Key,
		AnalysisType:          "activity_recommendation",
		NumDays:               len(days),
		OverallScore:          avg,
		OverallRating:         Rating(avg),
		PeriodAssessment:      periodAssessment(favorable, len(days)),
		BestDay:               best,
		Daily:                 daily,
		OverallRecommendation: overallRecommendation(profile, avg),
		GeneratedAt:           now.UTC().Format(time.RFC3339),
	}
}

// Rating converts a numeric score to its text band.
func Rating(score float64) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	case score >= 20:
		return "Poor"
	default:
		return "Not Recommended"
	}
}

// periodAssessment summarizes the score distribution by the share of days
// rated Good or better.
func periodAssessment(favorable, total int) string {
	if total == 0 {
		return "unfavorable"
	}
	share := float64(favorable) / float64(total)
	switch {
	case share >= 2.0/3.0:
		return "mostly favorable"
	case share >= 1.0/3.0:
		return "mixed"
	default:
		return "unfavorable"
	}
}

func overallRecommendation(p Profile, avg float64) string {
	name := lowerName(p)
	switch {
	case avg >= 75:
		return fmt.Sprintf("Great period for %s! Most days have excellent conditions.", name)
	case avg >= 60:
		return fmt.Sprintf("Good period for %s. Choose the better days from the forecast.", name)
	case avg >= 40:
		return fmt.Sprintf("Mixed conditions for %s. Plan around the weather.", name)
	default:
		return fmt.Sprintf("Poor period for %s. Consider postponing or indoor alternatives.", name)
	}
}

// lowerName renders the display name the way it reads mid-sentence.
func lowerName(p Profile) string {
	return strings.ToLower(p.Name)
}
