package metoffice

// HourlyForecast is the response of the hourly forecast endpoint.
type HourlyForecast = FeatureCollection[HourlyTimeSeries]

// HourlyTimeSeries is one hourly forecast entry.
type HourlyTimeSeries struct {
	Time                      APITime               `json:"time"`
	ScreenTemperature         Optional[float64]     `json:"screenTemperature"`
	ScreenDewPointTemperature Optional[float64]     `json:"screenDewPointTemperature"`
	FeelsLikeTemperature      Optional[float64]     `json:"feelsLikeTemperature"`
	WindSpeed10m              Optional[float64]     `json:"windSpeed10m"`
	WindDirectionFrom10m      Optional[int]         `json:"windDirectionFrom10m"`
	WindGustSpeed10m          Optional[float64]     `json:"windGustSpeed10m"`
	Visibility                Optional[int]         `json:"visibility"`
	ScreenRelativeHumidity    Optional[float64]     `json:"screenRelativeHumidity"`
	Mslp                      Optional[int]         `json:"mslp"`
	UvIndex                   Optional[int]         `json:"uvIndex"`
	SignificantWeatherCode    Optional[WeatherCode] `json:"significantWeatherCode"`
	PrecipitationRate         Optional[float64]     `json:"precipitationRate"`
	ProbOfPrecipitation       Optional[int]         `json:"probOfPrecipitation"`
	MaxScreenAirTemp          Optional[float64]     `json:"maxScreenAirTemp"`
	MinScreenAirTemp          Optional[float64]     `json:"minScreenAirTemp"`
	TotalPrecipAmount         Optional[float64]     `json:"totalPrecipAmount"`
	TotalSnowAmount           Optional[float64]     `json:"totalSnowAmount"`
	Max10mWindGust            Optional[float64]     `json:"max10mWindGust"`
}

// WeatherCode returns the significant weather code, or CodeNotAvailable when
// the response omitted it.
func (ts HourlyTimeSeries) WeatherCode() WeatherCode {
	if code, ok := ts.SignificantWeatherCode.Get(); ok {
		return code
	}
	return CodeNotAvailable
}

func (ts HourlyTimeSeries) when() APITime {
	return ts.Time
}

func (ts HourlyTimeSeries) missingRequired() []string {
	return missingFields(&ts, hourlyFields)
}

// The hourly field set. The last five are only present in some model runs.
var hourlyFields = []field[HourlyTimeSeries]{
	{"screenTemperature", true, func(ts *HourlyTimeSeries) bool { return ts.ScreenTemperature.IsSet() }},
	{"screenDewPointTemperature", true, func(ts *HourlyTimeSeries) bool { return ts.ScreenDewPointTemperature.IsSet() }},
	{"feelsLikeTemperature", true, func(ts *HourlyTimeSeries) bool { return ts.FeelsLikeTemperature.IsSet() }},
	{"windSpeed10m", true, func(ts *HourlyTimeSeries) bool { return ts.WindSpeed10m.IsSet() }},
	{"windDirectionFrom10m", true, func(ts *HourlyTimeSeries) bool { return ts.WindDirectionFrom10m.IsSet() }},
	{"windGustSpeed10m", true, func(ts *HourlyTimeSeries) bool { return ts.WindGustSpeed10m.IsSet() }},
	{"visibility", true, func(ts *HourlyTimeSeries) bool { return ts.Visibility.IsSet() }},
	{"screenRelativeHumidity", true, func(ts *HourlyTimeSeries) bool { return ts.ScreenRelativeHumidity.IsSet() }},
	{"mslp", true, func(ts *HourlyTimeSeries) bool { return ts.Mslp.IsSet() }},
	{"uvIndex", true, func(ts *HourlyTimeSeries) bool { return ts.UvIndex.IsSet() }},
	{"significantWeatherCode", true, func(ts *HourlyTimeSeries) bool { return ts.SignificantWeatherCode.IsSet() }},
	{"precipitationRate", true, func(ts *HourlyTimeSeries) bool { return ts.PrecipitationRate.IsSet() }},
	{"probOfPrecipitation", true, func(ts *HourlyTimeSeries) bool { return ts.ProbOfPrecipitation.IsSet() }},
	{"maxScreenAirTemp", false, func(ts *HourlyTimeSeries) bool { return ts.MaxScreenAirTemp.IsSet() }},
	{"minScreenAirTemp", false, func(ts *HourlyTimeSeries) bool { return ts.MinScreenAirTemp.IsSet() }},
	{"totalPrecipAmount", false, func(ts *HourlyTimeSeries) bool { return ts.TotalPrecipAmount.IsSet() }},
	{"totalSnowAmount", false, func(ts *HourlyTimeSeries) bool { return ts.TotalSnowAmount.IsSet() }},
	{"max10mWindGust", false, func(ts *HourlyTimeSeries) bool { return ts.Max10mWindGust.IsSet() }},
}

var hourlyFieldNames = fieldNameSet(hourlyFields)
