package metoffice

// ThreeHourlyForecast is the response of the three-hourly forecast endpoint.
type ThreeHourlyForecast = FeatureCollection[ThreeHourlyTimeSeries]

// ThreeHourlyTimeSeries is one three-hourly forecast entry.
type ThreeHourlyTimeSeries struct {
	Time                   APITime               `json:"time"`
	MaxScreenAirTemp       Optional[float64]     `json:"maxScreenAirTemp"`
	MinScreenAirTemp       Optional[float64]     `json:"minScreenAirTemp"`
	Max10mWindGust         Optional[float64]     `json:"max10mWindGust"`
	SignificantWeatherCode Optional[WeatherCode] `json:"significantWeatherCode"`
	TotalPrecipAmount      Optional[float64]     `json:"totalPrecipAmount"`
	TotalSnowAmount        Optional[float64]     `json:"totalSnowAmount"`
	WindSpeed10m           Optional[float64]     `json:"windSpeed10m"`
	WindDirectionFrom10m   Optional[int]         `json:"windDirectionFrom10m"`
	WindGustSpeed10m       Optional[float64]     `json:"windGustSpeed10m"`
	Visibility             Optional[int]         `json:"visibility"`
	Mslp                   Optional[int]         `json:"mslp"`
	ScreenRelativeHumidity Optional[float64]     `json:"screenRelativeHumidity"`
	FeelsLikeTemp          Optional[float64]     `json:"feelsLikeTemp"`
	UvIndex                Optional[int]         `json:"uvIndex"`
	ProbOfPrecipitation    Optional[int]         `json:"probOfPrecipitation"`
	ProbOfSnow             Optional[int]         `json:"probOfSnow"`
	ProbOfHeavySnow        Optional[int]         `json:"probOfHeavySnow"`
	ProbOfRain             Optional[int]         `json:"probOfRain"`
	ProbOfHeavyRain        Optional[int]         `json:"probOfHeavyRain"`
	ProbOfHail             Optional[int]         `json:"probOfHail"`
	ProbOfSferics          Optional[int]         `json:"probOfSferics"`
}

// WeatherCode returns the significant weather code, or CodeNotAvailable when
// the response omitted it.
func (ts ThreeHourlyTimeSeries) WeatherCode() WeatherCode {
	if code, ok := ts.SignificantWeatherCode.Get(); ok {
		return code
	}
	return CodeNotAvailable
}

func (ts ThreeHourlyTimeSeries) when() APITime {
	return ts.Time
}

func (ts ThreeHourlyTimeSeries) missingRequired() []string {
	return missingFields(&ts, threeHourlyFields)
}

// The three-hourly field set. Every measurement is part of every entry.
var threeHourlyFields = []field[ThreeHourlyTimeSeries]{
	{"maxScreenAirTemp", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.MaxScreenAirTemp.IsSet() }},
	{"minScreenAirTemp", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.MinScreenAirTemp.IsSet() }},
	{"max10mWindGust", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.Max10mWindGust.IsSet() }},
	{"significantWeatherCode", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.SignificantWeatherCode.IsSet() }},
	{"totalPrecipAmount", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.TotalPrecipAmount.IsSet() }},
	{"totalSnowAmount", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.TotalSnowAmount.IsSet() }},
	{"windSpeed10m", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.WindSpeed10m.IsSet() }},
	{"windDirectionFrom10m", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.WindDirectionFrom10m.IsSet() }},
	{"windGustSpeed10m", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.WindGustSpeed10m.IsSet() }},
	{"visibility", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.Visibility.IsSet() }},
	{"mslp", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.Mslp.IsSet() }},
	{"screenRelativeHumidity", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.ScreenRelativeHumidity.IsSet() }},
	{"feelsLikeTemp", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.FeelsLikeTemp.IsSet() }},
	{"uvIndex", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.UvIndex.IsSet() }},
	{"probOfPrecipitation", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.ProbOfPrecipitation.IsSet() }},
	{"probOfSnow", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.ProbOfSnow.IsSet() }},
	{"probOfHeavySnow", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.ProbOfHeavySnow.IsSet() }},
	{"probOfRain", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.ProbOfRain.IsSet() }},
	{"probOfHeavyRain", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.ProbOfHeavyRain.IsSet() }},
	{"probOfHail", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.ProbOfHail.IsSet() }},
	{"probOfSferics", true, func(ts *ThreeHourlyTimeSeries) bool { return ts.ProbOfSferics.IsSet() }},
}

var threeHourlyFieldNames = fieldNameSet(threeHourlyFields)
