package metoffice

import (
	"encoding/json"
	"fmt"
	"time"
)

// Optional holds a value that may be absent from a response. The zero value
// is unset, so fields the API omits stay distinguishable from fields that are
// legitimately zero.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding the given value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

// Get returns the value and whether it was present in the response.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// Value returns the value, or the zero value when unset.
func (o Optional[T]) Value() T {
	return o.value
}

// IsSet reports whether the value was present in the response.
func (o Optional[T]) IsSet() bool {
	return o.set
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*o = Optional[T]{}
		return nil
	}
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*o = Optional[T]{value: value, set: true}
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.set {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// APITime is a zoned timestamp as returned by the API. Model run and time
// series timestamps come back with minute precision ("2024-03-01T09:00Z"),
// which time.RFC3339 does not accept.
type APITime struct {
	time.Time
}

var apiTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
}

func (t *APITime) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var lastErr error
	for _, layout := range apiTimeLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("failed parsing timestamp %q: %w", raw, lastErr)
}

func (t APITime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(time.RFC3339))
}

// SameDate reports whether the timestamp falls on the same calendar date as
// the given time, each evaluated in its own location.
func (t APITime) SameDate(other time.Time) bool {
	y1, m1, d1 := t.Date()
	y2, m2, d2 := other.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Symbol describes how a unit is written.
type Symbol struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

// Unit is the measurement unit of a forecast parameter.
type Unit struct {
	Label  string `json:"label"`
	Symbol Symbol `json:"symbol"`
}

// Parameter is the metadata the API returns for one measured variable.
type Parameter struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Unit        Unit   `json:"unit"`
}

// Location is the named place closest to the requested point. It is only
// present when includeLocationName was requested.
type Location struct {
	Name string `json:"name"`
}

// Geometry is the grid point the forecast applies to.
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Longitude returns the grid point longitude.
func (g Geometry) Longitude() float64 {
	if len(g.Coordinates) > 0 {
		return g.Coordinates[0]
	}
	return 0
}

// Latitude returns the grid point latitude.
func (g Geometry) Latitude() float64 {
	if len(g.Coordinates) > 1 {
		return g.Coordinates[1]
	}
	return 0
}

// Elevation returns the grid point height in metres.
func (g Geometry) Elevation() float64 {
	if len(g.Coordinates) > 2 {
		return g.Coordinates[2]
	}
	return 0
}

// timeSeriesEntry is implemented by the per-kind time series types so the
// parser and cache can work over any forecast kind.
type timeSeriesEntry interface {
	when() APITime
	missingRequired() []string
}

// FeatureCollection is the top level of every forecast response. The API
// returns exactly one feature for point forecasts, but more are tolerated.
type FeatureCollection[TS timeSeriesEntry] struct {
	Type       string                 `json:"type"`
	Features   []Feature[TS]          `json:"features"`
	Parameters []map[string]Parameter `json:"parameters,omitempty"`
}

// Feature wraps the forecast for one grid point.
type Feature[TS timeSeriesEntry] struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties Properties[TS] `json:"properties"`
}

// Properties carries the forecast itself plus the location it applies to.
type Properties[TS timeSeriesEntry] struct {
	Location             *Location `json:"location,omitempty"`
	RequestPointDistance float64   `json:"requestPointDistance"`
	ModelRunDate         APITime   `json:"modelRunDate"`
	TimeSeries           []TS      `json:"timeSeries"`
}

// ModelRun returns the model run timestamp the forecast was produced by.
func (fc *FeatureCollection[TS]) ModelRun() (time.Time, bool) {
	if len(fc.Features) == 0 {
		return time.Time{}, false
	}
	run := fc.Features[0].Properties.ModelRunDate
	if run.IsZero() {
		return time.Time{}, false
	}
	return run.Time, true
}

// TimeSeries returns the first feature's time series entries.
func (fc *FeatureCollection[TS]) TimeSeries() []TS {
	if len(fc.Features) == 0 {
		return nil
	}
	return fc.Features[0].Properties.TimeSeries
}

// LocationName returns the location name of the first feature, if the
// response carried one.
func (fc *FeatureCollection[TS]) LocationName() (string, bool) {
	if len(fc.Features) == 0 || fc.Features[0].Properties.Location == nil {
		return "", false
	}
	return fc.Features[0].Properties.Location.Name, true
}

// field describes one measurement of a time series entry. The per-kind field
// tables drive required-field validation and parameter metadata lookup.
type field[TS any] struct {
	name     string
	required bool
	present  func(*TS) bool
}

func missingFields[TS any](entry *TS, fields []field[TS]) []string {
	var missing []string
	for _, f := range fields {
		if f.required && !f.present(entry) {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func fieldNameSet[TS any](fields []field[TS]) map[string]bool {
	names := make(map[string]bool, len(fields))
	for _, f := range fields {
		names[f.name] = true
	}
	return names
}
