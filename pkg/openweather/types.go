package openweather

// Place is one geocoding match: a canonical name with coordinates.
type Place struct {
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Condition is one entry of the provider's weather array: a coarse group
// ("Rain", "Clear") plus a human-readable description.
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// CurrentPayload is the data/2.5/weather response, reduced to the fields
// the skill consumes. Metric units are requested, so Temp is Celsius and
// wind speed is m/s.
type CurrentPayload struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
		Pressure int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather    []Condition `json:"weather"`
	Visibility int         `json:"visibility"`
	Sys        struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
	Dt   int64  `json:"dt"`
	Name string `json:"name"`
}

// ForecastEntry is one 3-hour step of the data/2.5/forecast response.
// Rain and snow volumes are optional; absent means zero.
type ForecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []Condition `json:"weather"`
	Pop     float64     `json:"pop"`
	Rain    struct {
		ThreeHour float64 `json:"3h"`
	} `json:"rain"`
	Snow struct {
		ThreeHour float64 `json:"3h"`
	} `json:"snow"`
}

// ForecastPayload is the data/2.5/forecast response: 3-hour entries
// covering roughly five days, plus city metadata.
type ForecastPayload struct {
	List []ForecastEntry `json:"list"`
	City struct {
		Name     string `json:"name"`
		Country  string `json:"country"`
		Timezone int    `json:"timezone"`
	} `json:"city"`
}
