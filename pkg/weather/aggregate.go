package weather

import (
	"math"
	"sort"
	"time"

	"github.com/skycast-cli/skycast/pkg/openweather"
)

// Forecast day-count bounds. Out-of-range requests are clamped, not
// rejected; the free 3-hour feed covers about five days, so days beyond
// the window simply yield fewer records.
const (
	MinForecastDays = 1
	MaxForecastDays = 7
)

// ClampDays forces a requested day count into the supported range.
func ClampDays(n int) int {
	if n < MinForecastDays {
		return MinForecastDays
	}
	if n > MaxForecastDays {
		return MaxForecastDays
	}
	return n
}

type dayBucket struct {
	date       time.Time
	temps      []float64
	groups     []string
	descByGrp  map[string]string
	humidities []int
	windSpeeds []float64
	precipSum  float64
	popMax     float64
}

// DailySummaries reduces the 3-hour forecast entries to one record per
// calendar day (in the city's local zone) and returns the first `days`
// distinct dates in ascending order.
func DailySummaries(payload openweather.ForecastPayload, days int) []Day {
	days = ClampDays(days)
	zone := time.FixedZone("local", payload.City.Timezone)

	buckets := make(map[string]*dayBucket)
	for _, entry := range payload.List {
		local := time.Unix(entry.Dt, 0).In(zone)
		key := local.Format("2006-01-02")

		b, ok := buckets[key]
		if !ok {
			b = &dayBucket{date: local, descByGrp: make(map[string]string)}
			buckets[key] = b
		}

		b.temps = append(b.temps, entry.Main.Temp)
		b.humidities = append(b.humidities, entry.Main.Humidity)
		b.windSpeeds = append(b.windSpeeds, entry.Wind.Speed)
		b.precipSum += entry.Rain.ThreeHour + entry.Snow.ThreeHour
		if entry.Pop > b.popMax {
			b.popMax = entry.Pop
		}
		if len(entry.Weather) > 0 {
			group := entry.Weather[0].Main
			b.groups = append(b.groups, group)
			if _, seen := b.descByGrp[group]; !seen {
				b.descByGrp[group] = entry.Weather[0].Description
			}
		}
	}

	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	if len(keys) > days {
		keys = keys[:days]
	}

	result := make([]Day, 0, len(keys))
	for _, key := range keys {
		result = append(result, buckets[key].summarize(key))
	}
	return result
}

func (b *dayBucket) summarize(date string) Day {
	high, low := b.temps[0], b.temps[0]
	for _, t := range b.temps[1:] {
		high = math.Max(high, t)
		low = math.Min(low, t)
	}

	group := modalGroup(b.groups)

	return Day{
		Date:           date,
		DateFormatted:  b.date.Format("Monday, January 02"),
		TempHighC:      Round2(high),
		TempHighF:      CelsiusToFahrenheit(high),
		TempLowC:       Round2(low),
		TempLowF:       CelsiusToFahrenheit(low),
		Condition:      b.descByGrp[group],
		ConditionGroup: group,
		Humidity:       int(math.Round(meanInt(b.humidities))),
		WindKPH:        MetersPerSecondToKPH(mean(b.windSpeeds)),
		PrecipMM:       Round1(b.precipSum),
		PrecipProb:     int(math.Round(b.popMax * 100)),
	}
}

// modalGroup picks the most frequent condition group; ties go to the one
// seen first so the result is deterministic.
func modalGroup(groups []string) string {
	counts := make(map[string]int)
	best, bestCount := "", 0
	for _, g := range groups {
		counts[g]++
		if counts[g] > bestCount {
			best, bestCount = g, counts[g]
		}
	}
	return best
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func meanInt(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// PickEntry finds the forecast entry on the target date closest to noon
// local time. Returns false when the date is outside the forecast window.
func PickEntry(payload openweather.ForecastPayload, target time.Time) (openweather.ForecastEntry, bool) {
	zone := time.FixedZone("local", payload.City.Timezone)
	targetDate := target.Format("2006-01-02")

	var best openweather.ForecastEntry
	bestDistance := math.MaxFloat64
	found := false

	for _, entry := range payload.List {
		local := time.Unix(entry.Dt, 0).In(zone)
		if local.Format("2006-01-02") != targetDate {
			continue
		}
		noon := time.Date(local.Year(), local.Month(), local.Day(), 12, 0, 0, 0, zone)
		distance := math.Abs(local.Sub(noon).Minutes())
		if distance < bestDistance {
			best, bestDistance, found = entry, distance, true
		}
	}
	return best, found
}

// NormalizeEntry builds the legacy single-day record from one forecast
// entry. Sunrise/sunset are unknown for forecast entries and stay nil.
func NormalizeEntry(entry openweather.ForecastEntry, location, date string) DayDetail {
	condition, _ := primaryCondition(entry.Weather)
	return DayDetail{
		Location:  location,
		Date:      date,
		TempC:     Round2(entry.Main.Temp),
		TempF:     CelsiusToFahrenheit(entry.Main.Temp),
		Humidity:  entry.Main.Humidity,
		WindKPH:   MetersPerSecondToKPH(entry.Wind.Speed),
		Condition: condition,
		PrecipMM:  Round1(entry.Rain.ThreeHour + entry.Snow.ThreeHour),
	}
}
