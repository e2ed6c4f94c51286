// Package activity scores forecast days against static activity profiles.
// Profiles are an explicit enumeration loaded once at process start and
// never mutated; unrecognized activity names resolve to the generic
// outdoor profile rather than failing.
package activity

import "strings"

// Range is an inclusive ideal band for one weather attribute.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Mid returns the midpoint of the range.
func (r Range) Mid() float64 {
	return (r.Min + r.Max) / 2
}

// Weights blends the three sub-scores; they sum to 1 so a day inside every
// ideal range scores exactly 100.
type Weights struct {
	Temperature   float64 `json:"temperature"`
	Wind          float64 `json:"wind"`
	Precipitation float64 `json:"precipitation"`
}

// Profile is one activity's static rule set: ideal ranges, penalty slopes
// (points lost per unit outside the range), and sub-score weights.
type Profile struct {
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	TempC       Range   `json:"ideal_temp_c"`
	WindKPH     Range   `json:"ideal_wind_kph"`
	PrecipMM    Range   `json:"ideal_precip_mm"`
	TempSlope   float64 `json:"-"`
	WindSlope   float64 `json:"-"`
	PrecipSlope float64 `json:"-"`
	Weights     Weights `json:"weights"`

	// ConcernBelow is the sub-score threshold under which a concern
	// string is attached to the day.
	ConcernBelow float64 `json:"-"`

	aliases []string
}

// GenericKey is the fallback profile for unrecognized activities.
const GenericKey = "outdoor"

var profiles = []Profile{
	{
		Key: "skiing", Name: "Skiing",
		TempC:     Range{-10, 5},
		WindKPH:   Range{0, 30},
		PrecipMM:  Range{0, 2},
		TempSlope: 10, WindSlope: 4, PrecipSlope: 15,
		Weights:      Weights{Temperature: 0.4, Wind: 0.25, Precipitation: 0.35},
		ConcernBelow: 60,
		aliases:      []string{"ski", "snowboard", "snowboarding", "slopes", "powder"},
	},
	{
		Key: "picnic", Name: "Picnic",
		TempC:     Range{15, 28},
		WindKPH:   Range{0, 20},
		PrecipMM:  Range{0, 0.5},
		TempSlope: 8, WindSlope: 5, PrecipSlope: 30,
		Weights:      Weights{Temperature: 0.3, Wind: 0.2, Precipitation: 0.5},
		ConcernBelow: 60,
		aliases:      []string{"picnics", "picnicking"},
	},
	{
		Key: "hiking", Name: "Hiking",
		TempC:     Range{10, 25},
		WindKPH:   Range{0, 35},
		PrecipMM:  Range{0, 3},
		TempSlope: 8, WindSlope: 4, PrecipSlope: 15,
		Weights:      Weights{Temperature: 0.4, Wind: 0.25, Precipitation: 0.35},
		ConcernBelow: 60,
		aliases:      []string{"hike", "trek", "trekking", "trail", "walk", "walking"},
	},
	{
		Key: "gardening", Name: "Gardening",
		TempC:     Range{5, 30},
		WindKPH:   Range{0, 25},
		PrecipMM:  Range{0, 5},
		TempSlope: 8, WindSlope: 4, PrecipSlope: 10,
		Weights:      Weights{Temperature: 0.25, Wind: 0.2, Precipitation: 0.55},
		ConcernBelow: 60,
		aliases:      []string{"garden", "planting", "yardwork"},
	},
	{
		Key: "beach", Name: "Beach Day",
		TempC:     Range{22, 35},
		WindKPH:   Range{0, 25},
		PrecipMM:  Range{0, 0.2},
		TempSlope: 8, WindSlope: 4, PrecipSlope: 40,
		Weights:      Weights{Temperature: 0.45, Wind: 0.2, Precipitation: 0.35},
		ConcernBelow: 60,
		aliases:      []string{"swim", "swimming", "sunbathing", "seaside"},
	},
	{
		Key: "cycling", Name: "Cycling",
		TempC:     Range{8, 25},
		WindKPH:   Range{0, 30},
		PrecipMM:  Range{0, 1},
		TempSlope: 8, WindSlope: 5, PrecipSlope: 25,
		Weights:      Weights{Temperature: 0.3, Wind: 0.3, Precipitation: 0.4},
		ConcernBelow: 60,
		aliases:      []string{"bike", "biking", "bicycle", "cycle"},
	},
	{
		Key: GenericKey, Name: "Outdoor Activity",
		TempC:     Range{10, 24},
		WindKPH:   Range{0, 30},
		PrecipMM:  Range{0, 1},
		TempSlope: 8, WindSlope: 4, PrecipSlope: 20,
		Weights:      Weights{Temperature: 0.35, Wind: 0.25, Precipitation: 0.4},
		ConcernBelow: 60,
	},
}

// Profiles returns every profile, generic last.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// Resolve maps an activity name onto a profile by exact normalized-name
// lookup (key, display name, or alias). Unknown names fall back to the
// generic profile; the second return reports whether the match was exact
// so callers can surface which rule set applied.
func Resolve(name string) (Profile, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	for _, p := range profiles {
		if normalized == p.Key || normalized == strings.ToLower(p.Name) {
			return p, true
		}
		for _, alias := range p.aliases {
			if normalized == alias {
				return p, true
			}
		}
	}
	return Generic(), false
}

// Generic returns the fallback outdoor profile.
func Generic() Profile {
	return profiles[len(profiles)-1]
}
