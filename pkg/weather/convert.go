package weather

import (
	"math"
	"time"

	"github.com/skycast-cli/skycast/pkg/openweather"
)

// Round2 rounds to two decimal places, the precision all reported
// temperatures use.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place, used for wind and precipitation.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// CelsiusToFahrenheit converts and rounds to output precision.
// Invariant: temp_f == temp_c*9/5 + 32 at two decimal places.
func CelsiusToFahrenheit(c float64) float64 {
	return Round2(c*9/5 + 32)
}

// MetersPerSecondToKPH converts the provider's metric wind speed.
func MetersPerSecondToKPH(ms float64) float64 {
	return Round1(ms * 3.6)
}

// EpochToUTC renders a unix timestamp as an ISO-8601 UTC string.
func EpochToUTC(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(time.RFC3339)
}

// NormalizeCurrent builds the current-conditions record from a raw payload.
// Missing optional fields (precipitation, visibility) stay zero.
func NormalizeCurrent(payload openweather.CurrentPayload, location string, now time.Time) Current {
	condition, group := primaryCondition(payload.Weather)

	return Current{
		Location:       location,
		AnalysisType:   "current_weather",
		Date:           now.UTC().Format("2006-01-02"),
		TempC:          Round2(payload.Main.Temp),
		TempF:          CelsiusToFahrenheit(payload.Main.Temp),
		Humidity:       payload.Main.Humidity,
		WindKPH:        MetersPerSecondToKPH(payload.Wind.Speed),
		Condition:      condition,
		ConditionGroup: group,
		PressureHPA:    payload.Main.Pressure,
		VisibilityKM:   Round1(float64(payload.Visibility) / 1000),
		SunriseUTC:     EpochToUTC(payload.Sys.Sunrise),
		SunsetUTC:      EpochToUTC(payload.Sys.Sunset),
		GeneratedAt:    now.UTC().Format(time.RFC3339),
	}
}

func primaryCondition(conditions []openweather.Condition) (description, group string) {
	if len(conditions) == 0 {
		return "", ""
	}
	return conditions[0].Description, conditions[0].Main
}
