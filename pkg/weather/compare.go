package weather

import (
	"fmt"
	"math"
	"time"
)

const (
	// RainyDayThresholdMM: a day counts as rainy above this total volume.
	RainyDayThresholdMM = 0.2
	// ComparableDeltaC: mean highs closer than this read as "comparable".
	ComparableDeltaC = 1.0
)

// MeanHigh returns the mean daily high over a series.
func MeanHigh(days []Day) float64 {
	if len(days) == 0 {
		return 0
	}
	sum := 0.0
	for _, d := range days {
		sum += d.TempHighC
	}
	return sum / float64(len(days))
}

// RainyDays counts days whose precipitation exceeds the rainy threshold.
func RainyDays(days []Day) int {
	count := 0
	for _, d := range days {
		if d.PrecipMM > RainyDayThresholdMM {
			count++
		}
	}
	return count
}

// Compare builds the two-location comparison document. Recommendations
// follow a fixed rule order: temperature, rainy days, then a closing
// overall suggestion combining both.
func Compare(loc1, loc2 LocationForecast, numDays int, now time.Time) ComparisonReport {
	return ComparisonReport{
		ComparisonType:  "multi_day",
		NumDays:         numDays,
		Location1:       loc1,
		Location2:       loc2,
		Recommendations: Recommendations(loc1, loc2, numDays),
		GeneratedAt:     now.UTC().Format(time.RFC3339),
	}
}

// Recommendations produces 1-3 ranked recommendation strings.
func Recommendations(loc1, loc2 LocationForecast, numDays int) []string {
	mean1, mean2 := MeanHigh(loc1.Forecasts), MeanHigh(loc2.Forecasts)
	rainy1, rainy2 := RainyDays(loc1.Forecasts), RainyDays(loc2.Forecasts)
	delta := mean1 - mean2

	var recs []string

	// 1. Temperature.
	if math.Abs(delta) < ComparableDeltaC {
		recs = append(recs, fmt.Sprintf("%s and %s are comparable on temperature (within 1°C on average)",
			loc1.Name, loc2.Name))
	} else if delta > 0 {
		recs = append(recs, fmt.Sprintf("%s will be warmer than %s by about %.1f°C on average",
			loc1.Name, loc2.Name, delta))
	} else {
		recs = append(recs, fmt.Sprintf("%s will be warmer than %s by about %.1f°C on average",
			loc2.Name, loc1.Name, -delta))
	}

	// 2. Rainy days, only when the counts differ.
	if rainy1 < rainy2 {
		recs = append(recs, fmt.Sprintf("%s has fewer rainy days expected (%d vs %d)",
			loc1.Name, rainy1, rainy2))
	} else if rainy2 < rainy1 {
		recs = append(recs, fmt.Sprintf("%s has fewer rainy days expected (%d vs %d)",
			loc2.Name, rainy2, rainy1))
	}

	// 3. Closing suggestion combining both signals. Dryness outranks warmth;
	// a rainy day spoils more plans than a cooler one.
	recs = append(recs, closingSuggestion(loc1, loc2, delta, rainy1, rainy2, numDays))

	return recs
}

func closingSuggestion(loc1, loc2 LocationForecast, delta float64, rainy1, rainy2, numDays int) string {
	switch {
	case rainy1 < rainy2:
		return fmt.Sprintf("Overall, %s looks like the better pick for the next %d days", loc1.Name, numDays)
	case rainy2 < rainy1:
		return fmt.Sprintf("Overall, %s looks like the better pick for the next %d days", loc2.Name, numDays)
	case delta >= ComparableDeltaC:
		return fmt.Sprintf("Overall, %s looks like the better pick for the next %d days", loc1.Name, numDays)
	case delta <= -ComparableDeltaC:
		return fmt.Sprintf("Overall, %s looks like the better pick for the next %d days", loc2.Name, numDays)
	default:
		return fmt.Sprintf("Both locations have similar weather patterns over the next %d days", numDays)
	}
}
