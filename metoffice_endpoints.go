package metoffice

import (
	"net/url"
	"strconv"
	"sync"
)

// BaseURL is the host all forecast endpoints live under.
const BaseURL = "https://data.hub.api.metoffice.gov.uk"

// Forecast identifies one of the supported forecast endpoints.
type Forecast int

const (
	ForecastHourly Forecast = iota
	ForecastThreeHourly
	ForecastDaily
)

// String returns the display name of the forecast kind.
func (f Forecast) String() string {
	return f.descriptor().name
}

// paramKey is a query parameter name accepted by the API.
type paramKey string

const (
	paramDataSource               paramKey = "dataSource"
	paramExcludeParameterMetadata paramKey = "excludeParameterMetadata"
	paramIncludeLocationName      paramKey = "includeLocationName"
	paramLatitude                 paramKey = "latitude"
	paramLongitude                paramKey = "longitude"
)

// endpoint describes one forecast endpoint: its path under the base URL, the
// query parameters it accepts and the measurement vocabulary of its time
// series entries. The descriptors are fixed at startup and never change.
type endpoint struct {
	path   string
	name   string
	parms  []paramKey
	fields map[string]bool
}

var endpoints = [...]endpoint{
	ForecastHourly: {
		path:   "sitespecific/v0/point/hourly",
		name:   "Hourly Forecast",
		parms:  sharedParms,
		fields: hourlyFieldNames,
	},
	ForecastThreeHourly: {
		path:   "sitespecific/v0/point/three-hourly",
		name:   "Three Hourly Forecast",
		parms:  sharedParms,
		fields: threeHourlyFieldNames,
	},
	ForecastDaily: {
		path:   "sitespecific/v0/point/daily",
		name:   "Daily Forecast",
		parms:  sharedParms,
		fields: dailyFieldNames,
	},
}

// All three endpoints currently accept the same parameter set.
var sharedParms = []paramKey{
	paramDataSource,
	paramExcludeParameterMetadata,
	paramIncludeLocationName,
	paramLatitude,
	paramLongitude,
}

func (f Forecast) descriptor() endpoint {
	return endpoints[f]
}

// apiParameters holds the current query parameter values. Coordinates start
// unset and every endpoint requires them, so snapshots fail until
// setCoordinates has been called.
type apiParameters struct {
	mu                       sync.Mutex
	latitude                 Optional[float64]
	longitude                Optional[float64]
	dataSource               string
	excludeParameterMetadata bool
	includeLocationName      bool
}

func defaultParameters() apiParameters {
	return apiParameters{
		dataSource:          "BD1",
		includeLocationName: true,
	}
}

// setCoordinates validates both values before either is stored, so an
// invalid pair never results in a partial update.
func (p *apiParameters) setCoordinates(latitude, longitude float64) error {
	if latitude < -85 || latitude > 85 {
		return &InvalidCoordinateError{Coordinate: "latitude", Value: latitude, Min: -85, Max: 85}
	}
	if longitude < -180 || longitude > 180 {
		return &InvalidCoordinateError{Coordinate: "longitude", Value: longitude, Min: -180, Max: 180}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.latitude = Some(latitude)
	p.longitude = Some(longitude)
	return nil
}

func (p *apiParameters) setDataSource(source string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dataSource = source
}

func (p *apiParameters) setExcludeParameterMetadata(exclude bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.excludeParameterMetadata = exclude
}

func (p *apiParameters) setIncludeLocationName(include bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.includeLocationName = include
}

// snapshot returns the query values for the parameters the endpoint accepts,
// leaving out anything unset. The values are copied under the lock so a
// concurrent setter cannot produce a half-updated query.
func (p *apiParameters) snapshot(parms []paramKey) (url.Values, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	values := url.Values{}
	for _, key := range parms {
		switch key {
		case paramDataSource:
			if p.dataSource != "" {
				values.Set(string(key), p.dataSource)
			}
		case paramExcludeParameterMetadata:
			values.Set(string(key), strconv.FormatBool(p.excludeParameterMetadata))
		case paramIncludeLocationName:
			values.Set(string(key), strconv.FormatBool(p.includeLocationName))
		case paramLatitude:
			latitude, ok := p.latitude.Get()
			if !ok {
				return nil, ErrNoCoordinates
			}
			values.Set(string(key), strconv.FormatFloat(latitude, 'f', -1, 64))
		case paramLongitude:
			longitude, ok := p.longitude.Get()
			if !ok {
				return nil, ErrNoCoordinates
			}
			values.Set(string(key), strconv.FormatFloat(longitude, 'f', -1, 64))
		}
	}
	return values, nil
}

// buildRequestURL combines the base URL, the endpoint path and the query
// built from a parameter snapshot. Pure string work, no I/O.
func buildRequestURL(baseURL string, descriptor endpoint, query url.Values) string {
	return baseURL + "/" + descriptor.path + "?" + query.Encode()
}
