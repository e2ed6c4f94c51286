package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skycast-cli/skycast/pkg/errkind"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New("test-key", WithBaseURL(srv.URL), WithRateLimit(1000, 1000))
}

func TestGeocode(t *testing.T) {
	t.Run("first match wins", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/geo/1.0/direct", r.URL.Path)
			assert.Equal(t, "Paris", r.URL.Query().Get("q"))
			assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
			w.Write([]byte(`[{"name":"Paris","country":"FR","lat":48.8589,"lon":2.32}]`))
		})

		place, err := client.Geocode(context.Background(), "Paris")
		require.NoError(t, err)
		assert.Equal(t, "Paris", place.Name)
		assert.Equal(t, "FR", place.Country)
		assert.InDelta(t, 48.8589, place.Lat, 0.0001)
	})

	t.Run("empty result is location_not_found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`[]`))
		})

		_, err := client.Geocode(context.Background(), "Nowhereville")
		require.Error(t, err)
		assert.Equal(t, errkind.LocationNotFound, errkind.KindOf(err))
		assert.Contains(t, err.Error(), "Nowhereville")
	})

	t.Run("http 404 is location_not_found", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.Geocode(context.Background(), "Atlantis")
		require.Error(t, err)
		assert.Equal(t, errkind.LocationNotFound, errkind.KindOf(err))
	})
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   errkind.Kind
	}{
		{"401 invalid key", http.StatusUnauthorized, errkind.InvalidAPIKey},
		{"403 invalid key", http.StatusForbidden, errkind.InvalidAPIKey},
		{"429 quota exceeded", http.StatusTooManyRequests, errkind.QuotaExceeded},
		{"500 provider error", http.StatusInternalServerError, errkind.ProviderError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			})

			_, err := client.Current(context.Background(), 51.5, -0.12)
			require.Error(t, err)
			assert.Equal(t, tt.kind, errkind.KindOf(err))
		})
	}
}

func TestCurrent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/data/2.5/weather", r.URL.Path)
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		w.Write([]byte(`{
			"main": {"temp": 18.5, "humidity": 60, "pressure": 1015},
			"wind": {"speed": 3.2},
			"weather": [{"main": "Clouds", "description": "scattered clouds"}],
			"visibility": 10000,
			"sys": {"sunrise": 1756098000, "sunset": 1756148400},
			"dt": 1756120000,
			"name": "London"
		}`))
	})

	payload, err := client.Current(context.Background(), 51.5074, -0.1278)
	require.NoError(t, err)
	assert.InDelta(t, 18.5, payload.Main.Temp, 0.001)
	assert.Equal(t, 60, payload.Main.Humidity)
	assert.Equal(t, "Clouds", payload.Weather[0].Main)
	assert.Equal(t, int64(1756098000), payload.Sys.Sunrise)
}

func TestForecast(t *testing.T) {
	t.Run("decodes optional rain and snow", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/data/2.5/forecast", r.URL.Path)
			w.Write([]byte(`{
				"list": [
					{"dt": 1756100000, "main": {"temp": 12.0, "humidity": 70}, "wind": {"speed": 4.0},
					 "weather": [{"main": "Rain", "description": "light rain"}], "pop": 0.6, "rain": {"3h": 1.2}},
					{"dt": 1756110800, "main": {"temp": 14.0, "humidity": 65}, "wind": {"speed": 3.0},
					 "weather": [{"main": "Clear", "description": "clear sky"}], "pop": 0}
				],
				"city": {"name": "London", "country": "GB", "timezone": 3600}
			}`))
		})

		payload, err := client.Forecast(context.Background(), 51.5074, -0.1278)
		require.NoError(t, err)
		require.Len(t, payload.List, 2)
		assert.InDelta(t, 1.2, payload.List[0].Rain.ThreeHour, 0.001)
		assert.Zero(t, payload.List[1].Rain.ThreeHour)
		assert.Equal(t, 3600, payload.City.Timezone)
	})

	t.Run("malformed body is provider_error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{"list": not-json`))
		})

		_, err := client.Forecast(context.Background(), 0, 0)
		require.Error(t, err)
		assert.Equal(t, errkind.ProviderError, errkind.KindOf(err))
	})
}

func TestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	client := New("test-key", WithBaseURL(srv.URL), WithRateLimit(1000, 1000))
	_, err := client.Current(context.Background(), 0, 0)
	require.Error(t, err)
	assert.Equal(t, errkind.NetworkError, errkind.KindOf(err))
}

func TestTimeoutIsNetworkError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	})
	WithTimeout(20 * time.Millisecond)(client)

	_, err := client.Current(context.Background(), 0, 0)
	require.Error(t, err)
	assert.Equal(t, errkind.NetworkError, errkind.KindOf(err))
}
