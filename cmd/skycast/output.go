package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/skycast-cli/skycast/pkg/config"
	"github.com/skycast-cli/skycast/pkg/errkind"
	"github.com/skycast-cli/skycast/pkg/logger"
	"github.com/skycast-cli/skycast/pkg/openweather"
	"github.com/skycast-cli/skycast/pkg/weather"
)

const defaultDays = 5

// errorPayload is the failure document: a taxonomy kind plus human text.
type errorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// emit writes the result document to stdout.
func emit(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		fail(errkind.Wrap(err, errkind.ProviderError, "failed to encode result"))
	}
	fmt.Println(string(data))
}

// fail renders the error document and exits non-zero. All failures are
// terminal for the invocation; there is no partial output.
func fail(err error) {
	payload := errorPayload{
		Error:   string(errkind.KindOf(err)),
		Message: errkind.MessageOf(err),
	}
	data, _ := json.Marshal(payload)
	fmt.Println(string(data))
	logger.L.WithError(err).Debug("invocation failed")
	os.Exit(1)
}

// newProvider resolves the credential and builds the provider client.
// Credential resolution happens before any network call.
func newProvider() (*openweather.Client, error) {
	key, err := config.ResolveAPIKey()
	if err != nil {
		return nil, err
	}
	return openweather.New(key, openweather.WithTimeout(config.Timeout())), nil
}

// parseDays interprets an optional day-count argument. Non-numeric input
// is a usage error; out-of-range values are clamped, not rejected.
func parseDays(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errkind.Newf(errkind.InvalidUsage, "days must be a number, got %q", arg)
	}
	return weather.ClampDays(n), nil
}
