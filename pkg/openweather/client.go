// Package openweather is a minimal OpenWeatherMap client covering the three
// calls the skill makes: direct geocoding, current conditions, and the
// 5-day/3-hour forecast. Failures are mapped onto the skill's error
// taxonomy at the HTTP boundary; callers never interpret status codes.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"

	"github.com/skycast-cli/skycast/pkg/errkind"
	"github.com/skycast-cli/skycast/pkg/logger"
)

const defaultBaseURL = "https://api.openweathermap.org"

// Client issues authenticated requests against one OpenWeatherMap host.
// A single invocation makes at most a handful of sequential calls; the
// limiter keeps bursts inside the free-tier 60 calls/minute allowance.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the provider host, used by tests to point the
// client at an httptest server.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTimeout bounds each HTTP call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRateLimit replaces the default request limiter.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// New creates a client for the given API key.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(1), 5),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Geocode resolves a free-text place name to its best match. Multiple
// candidates collapse to the provider's first (highest-confidence) match;
// zero candidates is a location_not_found.
func (c *Client) Geocode(ctx context.Context, query string) (Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", "1")

	var matches []Place
	if err := c.get(ctx, "/geo/1.0/direct", params, &matches); err != nil {
		if errkind.Is(err, errkind.ProviderError) && isStatus(err, http.StatusNotFound) {
			return Place{}, notFound(query)
		}
		return Place{}, err
	}
	if len(matches) == 0 {
		return Place{}, notFound(query)
	}
	if matches[0].Name == "" {
		matches[0].Name = query
	}
	return matches[0], nil
}

// Current fetches current conditions for the given coordinates.
func (c *Client) Current(ctx context.Context, lat, lon float64) (CurrentPayload, error) {
	var payload CurrentPayload
	err := c.get(ctx, "/data/2.5/weather", coordParams(lat, lon), &payload)
	return payload, err
}

// Forecast fetches the 5-day/3-hour forecast for the given coordinates.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (ForecastPayload, error) {
	var payload ForecastPayload
	err := c.get(ctx, "/data/2.5/forecast", coordParams(lat, lon), &payload)
	return payload, err
}

func coordParams(lat, lon float64) url.Values {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%.4f", lat))
	params.Set("lon", fmt.Sprintf("%.4f", lon))
	params.Set("units", "metric")
	return params
}

// statusError preserves the HTTP status underneath the tagged error so
// Geocode can distinguish a 404 from other provider failures.
type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.status)
}

func isStatus(err error, status int) bool {
	var se *statusError
	return errors.As(err, &se) && se.status == status
}

func notFound(query string) error {
	return errkind.Newf(errkind.LocationNotFound,
		"Location %q not found. Try being more specific (e.g., \"Paris, France\" instead of \"Paris\").", query)
}

// get performs one authenticated GET and decodes the JSON body into v.
// No retries: a single failed call surfaces immediately.
func (c *Client) get(ctx context.Context, path string, params url.Values, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errkind.Wrap(err, errkind.NetworkError, "request canceled while rate limited")
	}

	params.Set("appid", c.apiKey)
	fullURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return errkind.Wrap(err, errkind.ProviderError, "failed to build request")
	}

	logger.G(ctx).WithField("path", path).Debug("calling weather provider")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errkind.Wrap(err, errkind.NetworkError, "weather service unreachable")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errkind.Wrap(err, errkind.NetworkError, "failed to read provider response")
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return errkind.New(errkind.InvalidAPIKey, "Invalid OpenWeatherMap API key.")
	case resp.StatusCode == http.StatusTooManyRequests:
		return errkind.New(errkind.QuotaExceeded, "API quota exceeded. Please try again later.")
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return errkind.Wrap(&statusError{status: resp.StatusCode}, errkind.ProviderError,
			fmt.Sprintf("API returned status %d", resp.StatusCode))
	}

	if err := json.Unmarshal(body, v); err != nil {
		return errkind.Wrap(err, errkind.ProviderError, "malformed provider response")
	}
	return nil
}
