package skillpkg

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/skycast-cli/skycast/pkg/config"
)

// Check is one validation step's outcome.
type Check struct {
	Name   string `json:"name"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

// ProbeFunc performs a live provider call with the resolved key, used to
// confirm the credential actually works before the bundle ships.
type ProbeFunc func(ctx context.Context, apiKey string) error

// Validate runs the pre-upload checks on a skill directory: manifest
// present, bundle config parseable, credential configured (and optionally
// accepted by the provider). A nil probe skips the live check.
func Validate(ctx context.Context, dir string, probe ProbeFunc) ([]Check, bool) {
	var checks []Check
	ok := true

	fail := func(name, detail string) {
		checks = append(checks, Check{Name: name, OK: false, Detail: detail})
		ok = false
	}
	pass := func(name, detail string) {
		checks = append(checks, Check{Name: name, OK: true, Detail: detail})
	}

	if skill, err := ParseSkillFile(filepath.Join(dir, SkillFileName)); err != nil {
		fail("skill manifest", err.Error())
	} else {
		pass("skill manifest", fmt.Sprintf("skill %q", skill.Name))
	}

	key, keyOK := checkBundleConfig(dir, fail, pass)
	if !keyOK {
		return checks, false
	}

	if !config.IsWellFormedKey(key) {
		// Shape is a soft check; the provider is the authority.
		pass("key shape", "key is not a 32-character hex string (warning only)")
	} else {
		pass("key shape", "32-character hex key")
	}

	if probe != nil {
		if err := probe(ctx, key); err != nil {
			fail("provider probe", err.Error())
		} else {
			pass("provider probe", "API key accepted by the provider")
		}
	}

	return checks, ok
}

func checkBundleConfig(dir string, fail, pass func(name, detail string)) (string, bool) {
	raw, err := os.ReadFile(filepath.Join(dir, configFileName))
	if err != nil {
		fail("bundle config", fmt.Sprintf("%s not found", configFileName))
		return "", false
	}

	var cfg struct {
		APIKey string `json:"api_key"`
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		fail("bundle config", "config.json is not valid JSON")
		return "", false
	}
	pass("bundle config", "config.json parsed")

	if cfg.APIKey == "" {
		fail("api key", "no api_key field in config.json")
		return "", false
	}
	if cfg.APIKey == config.PlaceholderKey {
		fail("api key", "api_key is still the placeholder; edit config.json")
		return "", false
	}
	pass("api key", fmt.Sprintf("configured (%s...)", cfg.APIKey[:min(8, len(cfg.APIKey))]))
	return cfg.APIKey, true
}
