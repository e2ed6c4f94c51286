package main

import (
	"context"
	"time"

	"github.com/skycast-cli/skycast/pkg/errkind"
	"github.com/skycast-cli/skycast/pkg/weather"
)

const dateLayout = "2006-01-02"

// looksLikeDate checks the YYYY-MM-DD shape only; calendar validity is
// decided later so that an impossible date still yields an invalid_date
// document rather than falling through to usage help.
func looksLikeDate(s string) bool {
	if len(s) != len(dateLayout) || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, r := range s {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// legacyQueryCmd handles the original `<location> <YYYY-MM-DD>` invocation
// shape. It maps onto the same operations as the mode-based commands:
// current conditions for today, a single forecast day otherwise.
func legacyQueryCmd(ctx context.Context, location, dateStr string) {
	client, err := newProvider()
	if err != nil {
		fail(err)
	}
	result, err := runLegacy(ctx, client, location, dateStr, time.Now())
	if err != nil {
		fail(err)
	}
	emit(result)
}

func runLegacy(ctx context.Context, p provider, location, dateStr string, now time.Time) (weather.DayDetail, error) {
	target, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return weather.DayDetail{}, errkind.Newf(errkind.InvalidDate, "cannot parse date %q, expected YYYY-MM-DD", dateStr)
	}

	today := now.UTC().Format(dateLayout)
	if dateStr == today {
		return legacyToday(ctx, p, location, dateStr, now)
	}
	if dateStr < today {
		return weather.DayDetail{}, errkind.Newf(errkind.InvalidDate, "date %s is in the past", dateStr)
	}

	place, err := p.Geocode(ctx, location)
	if err != nil {
		return weather.DayDetail{}, err
	}
	payload, err := p.Forecast(ctx, place.Lat, place.Lon)
	if err != nil {
		return weather.DayDetail{}, err
	}

	entry, ok := weather.PickEntry(payload, target)
	if !ok {
		return weather.DayDetail{}, errkind.Newf(errkind.InvalidDate,
			"Forecast not available for %s; the forecast window covers about five days.", dateStr)
	}
	return weather.NormalizeEntry(entry, place.Name, dateStr), nil
}

func legacyToday(ctx context.Context, p provider, location, dateStr string, now time.Time) (weather.DayDetail, error) {
	current, err := runCurrent(ctx, p, location, now)
	if err != nil {
		return weather.DayDetail{}, err
	}
	return weather.DayDetail{
		Location:   current.Location,
		Date:       dateStr,
		TempC:      current.TempC,
		TempF:      current.TempF,
		Humidity:   current.Humidity,
		WindKPH:    current.WindKPH,
		Condition:  current.Condition,
		PrecipMM:   0,
		SunriseUTC: &current.SunriseUTC,
		SunsetUTC:  &current.SunsetUTC,
	}, nil
}
