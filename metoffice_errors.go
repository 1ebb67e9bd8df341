package metoffice

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCoordinates is returned when a forecast is requested before
	// SetCoordinates has been called.
	ErrNoCoordinates = errors.New("latitude and longitude must be set before requesting a forecast")

	// ErrNoData is returned by accessors when no forecast data is available
	// and none could be fetched.
	ErrNoData = errors.New("no forecast data available")
)

// InvalidCoordinateError is returned by SetCoordinates when a value is outside
// the range accepted by the API. Neither coordinate is changed.
type InvalidCoordinateError struct {
	Coordinate string
	Value      float64
	Min        float64
	Max        float64
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("%s must be between %g and %g, got %g", e.Coordinate, e.Min, e.Max, e.Value)
}

// StatusError is returned when the API answers with a non-2xx status code.
// The request is never retried.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s request failed with status %d", e.Endpoint, e.StatusCode)
}

// MalformedResponseError is returned when the response body does not match
// the expected shape for the requested endpoint. Path points at the offending
// field, for example "features[0].properties.timeSeries[2].screenTemperature".
type MalformedResponseError struct {
	Path string
	Err  error
}

func (e *MalformedResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed response at %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("malformed response: required field %s is missing", e.Path)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}

// UnknownWeatherCodeError is returned when the API sends a significant
// weather code with no defined meaning. An unrecognised code is a parse
// failure, not an absent value.
type UnknownWeatherCodeError struct {
	Code int
}

func (e *UnknownWeatherCodeError) Error() string {
	return fmt.Sprintf("unknown significant weather code %d", e.Code)
}

// UnknownParameterError is returned when parameter metadata is requested for
// a field name that does not exist for the forecast kind, or when the
// response carried no metadata at all.
type UnknownParameterError struct {
	Forecast Forecast
	Name     string
}

func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("no parameter %q in the %s response", e.Name, e.Forecast)
}
