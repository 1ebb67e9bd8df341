package metoffice

// DailyForecast is the response of the daily forecast endpoint.
type DailyForecast = FeatureCollection[DailyTimeSeries]

// DailyTimeSeries is one daily forecast entry. Day measurements cover the
// daylight period of the entry's date, night measurements the following
// night, so entries at the edges of the forecast window carry only one of
// the two halves. Every measurement is therefore optional.
type DailyTimeSeries struct {
	Time                            APITime               `json:"time"`
	Midday10MWindSpeed              Optional[float64]     `json:"midday10MWindSpeed"`
	Midnight10MWindSpeed            Optional[float64]     `json:"midnight10MWindSpeed"`
	Midday10MWindDirection          Optional[int]         `json:"midday10MWindDirection"`
	Midnight10MWindDirection        Optional[int]         `json:"midnight10MWindDirection"`
	Midday10MWindGust               Optional[float64]     `json:"midday10MWindGust"`
	Midnight10MWindGust             Optional[float64]     `json:"midnight10MWindGust"`
	MiddayVisibility                Optional[int]         `json:"middayVisibility"`
	MidnightVisibility              Optional[int]         `json:"midnightVisibility"`
	MiddayRelativeHumidity          Optional[float64]     `json:"middayRelativeHumidity"`
	MidnightRelativeHumidity        Optional[float64]     `json:"midnightRelativeHumidity"`
	MiddayMslp                      Optional[int]         `json:"middayMslp"`
	MidnightMslp                    Optional[int]         `json:"midnightMslp"`
	DaySignificantWeatherCode       Optional[WeatherCode] `json:"daySignificantWeatherCode"`
	NightSignificantWeatherCode     Optional[WeatherCode] `json:"nightSignificantWeatherCode"`
	DayMaxScreenTemperature         Optional[float64]     `json:"dayMaxScreenTemperature"`
	NightMinScreenTemperature       Optional[float64]     `json:"nightMinScreenTemperature"`
	DayUpperBoundMaxTemp            Optional[float64]     `json:"dayUpperBoundMaxTemp"`
	NightUpperBoundMinTemp          Optional[float64]     `json:"nightUpperBoundMinTemp"`
	DayLowerBoundMaxTemp            Optional[float64]     `json:"dayLowerBoundMaxTemp"`
	NightLowerBoundMinTemp          Optional[float64]     `json:"nightLowerBoundMinTemp"`
	DayMaxFeelsLikeTemp             Optional[float64]     `json:"dayMaxFeelsLikeTemp"`
	NightMinFeelsLikeTemp           Optional[float64]     `json:"nightMinFeelsLikeTemp"`
	DayUpperBoundMaxFeelsLikeTemp   Optional[float64]     `json:"dayUpperBoundMaxFeelsLikeTemp"`
	NightUpperBoundMinFeelsLikeTemp Optional[float64]     `json:"nightUpperBoundMinFeelsLikeTemp"`
	DayLowerBoundMaxFeelsLikeTemp   Optional[float64]     `json:"dayLowerBoundMaxFeelsLikeTemp"`
	NightLowerBoundMinFeelsLikeTemp Optional[float64]     `json:"nightLowerBoundMinFeelsLikeTemp"`
	MaxUvIndex                      Optional[int]         `json:"maxUvIndex"`
	DayProbabilityOfPrecipitation   Optional[int]         `json:"dayProbabilityOfPrecipitation"`
	NightProbabilityOfPrecipitation Optional[int]         `json:"nightProbabilityOfPrecipitation"`
	DayProbabilityOfSnow            Optional[int]         `json:"dayProbabilityOfSnow"`
	NightProbabilityOfSnow          Optional[int]         `json:"nightProbabilityOfSnow"`
	DayProbabilityOfHeavySnow       Optional[int]         `json:"dayProbabilityOfHeavySnow"`
	NightProbabilityOfHeavySnow     Optional[int]         `json:"nightProbabilityOfHeavySnow"`
	DayProbabilityOfRain            Optional[int]         `json:"dayProbabilityOfRain"`
	NightProbabilityOfRain          Optional[int]         `json:"nightProbabilityOfRain"`
	DayProbabilityOfHeavyRain       Optional[int]         `json:"dayProbabilityOfHeavyRain"`
	NightProbabilityOfHeavyRain     Optional[int]         `json:"nightProbabilityOfHeavyRain"`
	DayProbabilityOfHail            Optional[int]         `json:"dayProbabilityOfHail"`
	NightProbabilityOfHail          Optional[int]         `json:"nightProbabilityOfHail"`
	DayProbabilityOfSferics         Optional[int]         `json:"dayProbabilityOfSferics"`
	NightProbabilityOfSferics       Optional[int]         `json:"nightProbabilityOfSferics"`
}

// DayWeatherCode returns the daytime weather code, or CodeNotAvailable when
// the response omitted it.
func (ts DailyTimeSeries) DayWeatherCode() WeatherCode {
	if code, ok := ts.DaySignificantWeatherCode.Get(); ok {
		return code
	}
	return CodeNotAvailable
}

// NightWeatherCode returns the nighttime weather code, or CodeNotAvailable
// when the response omitted it.
func (ts DailyTimeSeries) NightWeatherCode() WeatherCode {
	if code, ok := ts.NightSignificantWeatherCode.Get(); ok {
		return code
	}
	return CodeNotAvailable
}

func (ts DailyTimeSeries) when() APITime {
	return ts.Time
}

func (ts DailyTimeSeries) missingRequired() []string {
	return missingFields(&ts, dailyFields)
}

// The daily field set. Only the timestamp itself is required.
var dailyFields = []field[DailyTimeSeries]{
	{"midday10MWindSpeed", false, func(ts *DailyTimeSeries) bool { return ts.Midday10MWindSpeed.IsSet() }},
	{"midnight10MWindSpeed", false, func(ts *DailyTimeSeries) bool { return ts.Midnight10MWindSpeed.IsSet() }},
	{"midday10MWindDirection", false, func(ts *DailyTimeSeries) bool { return ts.Midday10MWindDirection.IsSet() }},
	{"midnight10MWindDirection", false, func(ts *DailyTimeSeries) bool { return ts.Midnight10MWindDirection.IsSet() }},
	{"midday10MWindGust", false, func(ts *DailyTimeSeries) bool { return ts.Midday10MWindGust.IsSet() }},
	{"midnight10MWindGust", false, func(ts *DailyTimeSeries) bool { return ts.Midnight10MWindGust.IsSet() }},
	{"middayVisibility", false, func(ts *DailyTimeSeries) bool { return ts.MiddayVisibility.IsSet() }},
	{"midnightVisibility", false, func(ts *DailyTimeSeries) bool { return ts.MidnightVisibility.IsSet() }},
	{"middayRelativeHumidity", false, func(ts *DailyTimeSeries) bool { return ts.MiddayRelativeHumidity.IsSet() }},
	{"midnightRelativeHumidity", false, func(ts *DailyTimeSeries) bool { return ts.MidnightRelativeHumidity.IsSet() }},
	{"middayMslp", false, func(ts *DailyTimeSeries) bool { return ts.MiddayMslp.IsSet() }},
	{"midnightMslp", false, func(ts *DailyTimeSeries) bool { return ts.MidnightMslp.IsSet() }},
	{"daySignificantWeatherCode", false, func(ts *DailyTimeSeries) bool { return ts.DaySignificantWeatherCode.IsSet() }},
	{"nightSignificantWeatherCode", false, func(ts *DailyTimeSeries) bool { return ts.NightSignificantWeatherCode.IsSet() }},
	{"dayMaxScreenTemperature", false, func(ts *DailyTimeSeries) bool { return ts.DayMaxScreenTemperature.IsSet() }},
	{"nightMinScreenTemperature", false, func(ts *DailyTimeSeries) bool { return ts.NightMinScreenTemperature.IsSet() }},
	{"dayUpperBoundMaxTemp", false, func(ts *DailyTimeSeries) bool { return ts.DayUpperBoundMaxTemp.IsSet() }},
	{"nightUpperBoundMinTemp", false, func(ts *DailyTimeSeries) bool { return ts.NightUpperBoundMinTemp.IsSet() }},
	{"dayLowerBoundMaxTemp", false, func(ts *DailyTimeSeries) bool { return ts.DayLowerBoundMaxTemp.IsSet() }},
	{"nightLowerBoundMinTemp", false, func(ts *DailyTimeSeries) bool { return ts.NightLowerBoundMinTemp.IsSet() }},
	{"dayMaxFeelsLikeTemp", false, func(ts *DailyTimeSeries) bool { return ts.DayMaxFeelsLikeTemp.IsSet() }},
	{"nightMinFeelsLikeTemp", false, func(ts *DailyTimeSeries) bool { return ts.NightMinFeelsLikeTemp.IsSet() }},
	{"dayUpperBoundMaxFeelsLikeTemp", false, func(ts *DailyTimeSeries) bool { return ts.DayUpperBoundMaxFeelsLikeTemp.IsSet() }},
	{"nightUpperBoundMinFeelsLikeTemp", false, func(ts *DailyTimeSeries) bool { return ts.NightUpperBoundMinFeelsLikeTemp.IsSet() }},
	{"dayLowerBoundMaxFeelsLikeTemp", false, func(ts *DailyTimeSeries) bool { return ts.DayLowerBoundMaxFeelsLikeTemp.IsSet() }},
	{"nightLowerBoundMinFeelsLikeTemp", false, func(ts *DailyTimeSeries) bool { return ts.NightLowerBoundMinFeelsLikeTemp.IsSet() }},
	{"maxUvIndex", false, func(ts *DailyTimeSeries) bool { return ts.MaxUvIndex.IsSet() }},
	{"dayProbabilityOfPrecipitation", false, func(ts *DailyTimeSeries) bool { return ts.DayProbabilityOfPrecipitation.IsSet() }},
	{"nightProbabilityOfPrecipitation", false, func(ts *DailyTimeSeries) bool { return ts.NightProbabilityOfPrecipitation.IsSet() }},
	{"dayProbabilityOfSnow", false, func(ts *DailyTimeSeries) bool { return ts.DayProbabilityOfSnow.IsSet() }},
	{"nightProbabilityOfSnow", false, func(ts *DailyTimeSeries) bool { return ts.NightProbabilityOfSnow.IsSet() }},
	{"dayProbabilityOfHeavySnow", false, func(ts *DailyTimeSeries) bool { return ts.DayProbabilityOfHeavySnow.IsSet() }},
	{"nightProbabilityOfHeavySnow", false, func(ts *DailyTimeSeries) bool { return ts.NightProbabilityOfHeavySnow.IsSet() }},
	{"dayProbabilityOfRain", false, func(ts *DailyTimeSeries) bool { return ts.DayProbabilityOfRain.IsSet() }},
	{"nightProbabilityOfRain", false, func(ts *DailyTimeSeries) bool { return ts.NightProbabilityOfRain.IsSet() }},
	{"dayProbabilityOfHeavyRain", false, func(ts *DailyTimeSeries) bool { return ts.DayProbabilityOfHeavyRain.IsSet() }},
	{"nightProbabilityOfHeavyRain", false, func(ts *DailyTimeSeries) bool { return ts.NightProbabilityOfHeavyRain.IsSet() }},
	{"dayProbabilityOfHail", false, func(ts *DailyTimeSeries) bool { return ts.DayProbabilityOfHail.IsSet() }},
	{"nightProbabilityOfHail", false, func(ts *DailyTimeSeries) bool { return ts.NightProbabilityOfHail.IsSet() }},
	{"dayProbabilityOfSferics", false, func(ts *DailyTimeSeries) bool { return ts.DayProbabilityOfSferics.IsSet() }},
	{"nightProbabilityOfSferics", false, func(ts *DailyTimeSeries) bool { return ts.NightProbabilityOfSferics.IsSet() }},
}

var dailyFieldNames = fieldNameSet(dailyFields)
