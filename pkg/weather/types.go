// Package weather turns raw provider payloads into the daily records the
// skill reports: unit conversion, per-day reduction of 3-hour forecast
// entries, and two-location comparison.
package weather

// Day is one calendar day reduced from the provider's 3-hour entries.
// Daily extremes/averages policy: high/low from min/max over the day's
// entries, mean humidity and wind, summed precipitation, modal condition.
type Day struct {
	Date           string  `json:"date"`
	DateFormatted  string  `json:"date_formatted"`
	TempHighC      float64 `json:"temp_high_c"`
	TempHighF      float64 `json:"temp_high_f"`
	TempLowC       float64 `json:"temp_low_c"`
	TempLowF       float64 `json:"temp_low_f"`
	Condition      string  `json:"condition"`
	ConditionGroup string  `json:"condition_main"`
	Humidity       int     `json:"humidity"`
	WindKPH        float64 `json:"wind_kph"`
	PrecipMM       float64 `json:"precip_mm"`
	PrecipProb     int     `json:"precip_probability"`
}

// Current is the single-moment record for the current-conditions mode.
type Current struct {
	Location       string  `json:"location"`
	AnalysisType   string  `json:"analysis_type"`
	Date           string  `json:"date"`
	TempC          float64 `json:"temp_c"`
	TempF          float64 `json:"temp_f"`
	Humidity       int     `json:"humidity"`
	WindKPH        float64 `json:"wind_kph"`
	Condition      string  `json:"condition"`
	ConditionGroup string  `json:"condition_main"`
	PressureHPA    int     `json:"pressure_hpa"`
	VisibilityKM   float64 `json:"visibility_km"`
	SunriseUTC     string  `json:"sunrise_utc"`
	SunsetUTC      string  `json:"sunset_utc"`
	GeneratedAt    string  `json:"generated_at"`
}

// DayDetail is the legacy two-argument form's single-day record. Sunrise
// and sunset are only known for the current day, hence the pointers.
type DayDetail struct {
	Location   string  `json:"location"`
	Date       string  `json:"date"`
	TempC      float64 `json:"temp_c"`
	TempF      float64 `json:"temp_f"`
	Humidity   int     `json:"humidity"`
	WindKPH    float64 `json:"wind_kph"`
	Condition  string  `json:"condition"`
	PrecipMM   float64 `json:"precip_mm"`
	SunriseUTC *string `json:"sunrise_utc"`
	SunsetUTC  *string `json:"sunset_utc"`
}

// ForecastReport is the multi-day forecast output document.
type ForecastReport struct {
	Location     string `json:"location"`
	AnalysisType string `json:"analysis_type"`
	NumDays      int    `json:"num_days"`
	Daily        []Day  `json:"daily_forecast"`
	GeneratedAt  string `json:"generated_at"`
}

// LocationForecast pairs a resolved location name with its daily series.
type LocationForecast struct {
	Name      string `json:"name"`
	Forecasts []Day  `json:"forecasts"`
}

// ComparisonReport is the two-location comparison output document.
type ComparisonReport struct {
	ComparisonType  string           `json:"comparison_type"`
	NumDays         int              `json:"num_days"`
	Location1       LocationForecast `json:"location1"`
	Location2       LocationForecast `json:"location2"`
	Recommendations []string         `json:"recommendations"`
	GeneratedAt     string           `json:"generated_at"`
}
