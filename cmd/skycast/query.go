package main

import (
	"context"
	"time"

	"github.com/skycast-cli/skycast/pkg/activity"
	"github.com/skycast-cli/skycast/pkg/openweather"
	"github.com/skycast-cli/skycast/pkg/weather"
)

// provider is the slice of the OpenWeatherMap client the query modes use;
// tests substitute a stub.
type provider interface {
	Geocode(ctx context.Context, query string) (openweather.Place, error)
	Current(ctx context.Context, lat, lon float64) (openweather.CurrentPayload, error)
	Forecast(ctx context.Context, lat, lon float64) (openweather.ForecastPayload, error)
}

func runCurrent(ctx context.Context, p provider, location string, now time.Time) (weather.Current, error) {
	place, err := p.Geocode(ctx, location)
	if err != nil {
		return weather.Current{}, err
	}
	payload, err := p.Current(ctx, place.Lat, place.Lon)
	if err != nil {
		return weather.Current{}, err
	}
	return weather.NormalizeCurrent(payload, place.Name, now), nil
}

func runForecast(ctx context.Context, p provider, location string, days int, now time.Time) (weather.ForecastReport, error) {
	place, daily, err := fetchDaily(ctx, p, location, days)
	if err != nil {
		return weather.ForecastReport{}, err
	}
	return weather.ForecastReport{
		Location:     place.Name,
		AnalysisType: "weather_forecast",
		NumDays:      len(daily),
		Daily:        daily,
		GeneratedAt:  now.UTC().Format(time.RFC3339),
	}, nil
}

func runCompare(ctx context.Context, p provider, location1, location2 string, days int, now time.Time) (weather.ComparisonReport, error) {
	place1, daily1, err := fetchDaily(ctx, p, location1, days)
	if err != nil {
		return weather.ComparisonReport{}, err
	}
	place2, daily2, err := fetchDaily(ctx, p, location2, days)
	if err != nil {
		return weather.ComparisonReport{}, err
	}

	// Comparisons only make sense over equal windows; trim to the shorter
	// series when the provider covers the two cities unevenly.
	window := min(len(daily1), len(daily2))
	daily1, daily2 = daily1[:window], daily2[:window]

	loc1 := weather.LocationForecast{Name: place1.Name, Forecasts: daily1}
	loc2 := weather.LocationForecast{Name: place2.Name, Forecasts: daily2}
	return weather.Compare(loc1, loc2, window, now), nil
}

func runActivity(ctx context.Context, p provider, activityName, location string, days int, now time.Time) (activity.Assessment, error) {
	place, daily, err := fetchDaily(ctx, p, location, days)
	if err != nil {
		return activity.Assessment{}, err
	}
	result := activity.Assess(activityName, daily, now)
	result.Location = place.Name
	return result, nil
}

func fetchDaily(ctx context.Context, p provider, location string, days int) (openweather.Place, []weather.Day, error) {
	place, err := p.Geocode(ctx, location)
	if err != nil {
		return openweather.Place{}, nil, err
	}
	payload, err := p.Forecast(ctx, place.Lat, place.Lon)
	if err != nil {
		return openweather.Place{}, nil, err
	}
	return place, weather.DailySummaries(payload, days), nil
}
