package metoffice

import (
	"encoding/json"
	"errors"
	"fmt"
)

// parseForecast decodes a response body into the forecast tree for the
// endpoint and validates its shape. Unknown keys in the body are ignored so
// new API fields do not break existing clients; missing required fields are
// reported with their full path.
func parseForecast[TS timeSeriesEntry](data []byte) (*FeatureCollection[TS], error) {
	var collection FeatureCollection[TS]
	if err := json.Unmarshal(data, &collection); err != nil {
		var unknownCode *UnknownWeatherCodeError
		if errors.As(err, &unknownCode) {
			return nil, unknownCode
		}
		return nil, &MalformedResponseError{Path: jsonErrorPath(err), Err: err}
	}
	if err := validateForecast(&collection); err != nil {
		return nil, err
	}
	return &collection, nil
}

func validateForecast[TS timeSeriesEntry](collection *FeatureCollection[TS]) error {
	if collection.Type == "" {
		return &MalformedResponseError{Path: "type"}
	}
	if len(collection.Features) == 0 {
		return &MalformedResponseError{Path: "features"}
	}
	for i := range collection.Features {
		feature := &collection.Features[i]
		prefix := fmt.Sprintf("features[%d]", i)
		if len(feature.Geometry.Coordinates) < 2 {
			return &MalformedResponseError{Path: prefix + ".geometry.coordinates"}
		}
		if feature.Properties.ModelRunDate.IsZero() {
			return &MalformedResponseError{Path: prefix + ".properties.modelRunDate"}
		}
		if feature.Properties.TimeSeries == nil {
			return &MalformedResponseError{Path: prefix + ".properties.timeSeries"}
		}
		for j, entry := range feature.Properties.TimeSeries {
			entryPrefix := fmt.Sprintf("%s.properties.timeSeries[%d]", prefix, j)
			if entry.when().IsZero() {
				return &MalformedResponseError{Path: entryPrefix + ".time"}
			}
			if missing := entry.missingRequired(); len(missing) > 0 {
				return &MalformedResponseError{Path: entryPrefix + "." + missing[0]}
			}
		}
	}
	return nil
}

// jsonErrorPath extracts a field path from a decode error where the standard
// library provides one.
func jsonErrorPath(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return typeErr.Field
	}
	return "body"
}

// lookupParameter finds the metadata for a named measurement in a forecast
// response. Names outside the endpoint's vocabulary and responses without
// metadata both yield an UnknownParameterError.
func lookupParameter[TS timeSeriesEntry](kind Forecast, collection *FeatureCollection[TS], name string) (Parameter, error) {
	if !kind.descriptor().fields[name] {
		return Parameter{}, &UnknownParameterError{Forecast: kind, Name: name}
	}
	for _, block := range collection.Parameters {
		if parameter, ok := block[name]; ok {
			return parameter, nil
		}
	}
	return Parameter{}, &UnknownParameterError{Forecast: kind, Name: name}
}
