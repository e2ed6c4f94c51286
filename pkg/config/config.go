// Package config resolves the skill's runtime settings and the
// OpenWeatherMap credential. Resolution is viper-backed: explicit flag,
// environment, then the config file shipped with the skill bundle.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/skycast-cli/skycast/pkg/errkind"
)

// PlaceholderKey is the sentinel shipped in the bundle's config.json. It is
// never a real credential; finding it means the key is absent.
const PlaceholderKey = "PASTE_YOUR_API_KEY_HERE"

// DefaultTimeout bounds each HTTP call to the provider.
const DefaultTimeout = 10 * time.Second

// Init wires viper to the skill's configuration sources. Missing config
// files are not an error; the environment alone is a valid setup.
func Init() {
	viper.SetEnvPrefix("SKYCAST")
	viper.AutomaticEnv()
	// The credential answers from the flag binding first, then the two
	// env names in order, then the config file's api_key field.
	viper.BindEnv("api_key", "SKYCAST_API_KEY", "OPENWEATHER_API_KEY")

	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home + "/.skycast")
	}
	_ = viper.ReadInConfig()

	viper.SetDefault("timeout", DefaultTimeout)
}

// ResolveAPIKey returns the configured credential. Sources, highest
// precedence first: the --api-key flag (bound into viper), SKYCAST_API_KEY,
// OPENWEATHER_API_KEY, then the config file's api_key field. The
// placeholder sentinel counts as absent. Runs before any network call is
// attempted.
func ResolveAPIKey() (string, error) {
	key := strings.TrimSpace(viper.GetString("api_key"))
	if key == "" || key == PlaceholderKey {
		return "", errkind.New(errkind.MissingAPIKey,
			"API key not configured. Set SKYCAST_API_KEY or add api_key to the skill's config file.")
	}
	return key, nil
}

// Timeout returns the per-request timeout.
func Timeout() time.Duration {
	d := viper.GetDuration("timeout")
	if d <= 0 {
		return DefaultTimeout
	}
	return d
}

// IsWellFormedKey soft-checks the usual OpenWeatherMap key shape: exactly
// 32 hex digits. A malformed key is only a warning at packaging time; the
// provider is the authority on validity.
func IsWellFormedKey(key string) bool {
	if len(key) != 32 {
		return false
	}
	for _, r := range key {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
