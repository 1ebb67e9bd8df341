package metoffice

import "encoding/json"

// WeatherCode is the significant weather code the API attaches to a forecast
// entry. The defined codes run from -1 (trace rain) to 30 (thunder).
type WeatherCode int

// CodeNotAvailable marks a weather code that was absent from the response.
// The API never sends this value itself.
const CodeNotAvailable WeatherCode = -99

const (
	CodeTraceRain             WeatherCode = -1
	CodeClearNight            WeatherCode = 0
	CodeSunnyDay              WeatherCode = 1
	CodePartlyCloudyNight     WeatherCode = 2
	CodePartlyCloudyDay       WeatherCode = 3
	CodeNotUsed               WeatherCode = 4
	CodeMist                  WeatherCode = 5
	CodeFog                   WeatherCode = 6
	CodeCloudy                WeatherCode = 7
	CodeOvercast              WeatherCode = 8
	CodeLightRainShowerNight  WeatherCode = 9
	CodeLightRainShowerDay    WeatherCode = 10
	CodeDrizzle               WeatherCode = 11
	CodeLightRain             WeatherCode = 12
	CodeHeavyRainShowerNight  WeatherCode = 13
	CodeHeavyRainShowerDay    WeatherCode = 14
	CodeHeavyRain             WeatherCode = 15
	CodeSleetShowerNight      WeatherCode = 16
	CodeSleetShowerDay        WeatherCode = 17
	CodeSleet                 WeatherCode = 18
	CodeHailShowerNight       WeatherCode = 19
	CodeHailShowerDay         WeatherCode = 20
	CodeHail                  WeatherCode = 21
	CodeLightSnowShowerNight  WeatherCode = 22
	CodeLightSnowShowerDay    WeatherCode = 23
	CodeLightSnow             WeatherCode = 24
	CodeHeavySnowShowerNight  WeatherCode = 25
	CodeHeavySnowShowerDay    WeatherCode = 26
	CodeHeavySnow             WeatherCode = 27
	CodeThunderShowerNight    WeatherCode = 28
	CodeThunderShowerDay      WeatherCode = 29
	CodeThunder               WeatherCode = 30
)

var weatherCodeDescriptions = map[WeatherCode]string{
	CodeNotAvailable:         "Not available",
	CodeTraceRain:            "Trace rain",
	CodeClearNight:           "Clear night",
	CodeSunnyDay:             "Sunny day",
	CodePartlyCloudyNight:    "Partly cloudy (night)",
	CodePartlyCloudyDay:      "Partly cloudy (day)",
	CodeNotUsed:              "Not used",
	CodeMist:                 "Mist",
	CodeFog:                  "Fog",
	CodeCloudy:               "Cloudy",
	CodeOvercast:             "Overcast",
	CodeLightRainShowerNight: "Light rain shower (night)",
	CodeLightRainShowerDay:   "Light rain shower (day)",
	CodeDrizzle:              "Drizzle",
	CodeLightRain:            "Light rain",
	CodeHeavyRainShowerNight: "Heavy rain shower (night)",
	CodeHeavyRainShowerDay:   "Heavy rain shower (day)",
	CodeHeavyRain:            "Heavy rain",
	CodeSleetShowerNight:     "Sleet shower (night)",
	CodeSleetShowerDay:       "Sleet shower (day)",
	CodeSleet:                "Sleet",
	CodeHailShowerNight:      "Hail shower (night)",
	CodeHailShowerDay:        "Hail shower (day)",
	CodeHail:                 "Hail",
	CodeLightSnowShowerNight: "Light snow shower (night)",
	CodeLightSnowShowerDay:   "Light snow shower (day)",
	CodeLightSnow:            "Light snow",
	CodeHeavySnowShowerNight: "Heavy snow shower (night)",
	CodeHeavySnowShowerDay:   "Heavy snow shower (day)",
	CodeHeavySnow:            "Heavy snow",
	CodeThunderShowerNight:   "Thunder shower (night)",
	CodeThunderShowerDay:     "Thunder shower (day)",
	CodeThunder:              "Thunder",
}

// String returns the human readable description of the weather code.
func (w WeatherCode) String() string {
	if description, ok := weatherCodeDescriptions[w]; ok {
		return description
	}
	return "Unknown"
}

func (w *WeatherCode) UnmarshalJSON(data []byte) error {
	var raw int
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	code := WeatherCode(raw)
	if _, ok := weatherCodeDescriptions[code]; !ok || code == CodeNotAvailable {
		return &UnknownWeatherCodeError{Code: raw}
	}
	*w = code
	return nil
}

func (w WeatherCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(w))
}
