package metoffice

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOptionalDistinguishesUnsetFromZero(t *testing.T) {
	assert := assert.New(t)

	var payload struct {
		Present Optional[float64] `json:"present"`
		Zero    Optional[float64] `json:"zero"`
		Null    Optional[float64] `json:"null"`
		Absent  Optional[float64] `json:"absent"`
	}
	err := json.Unmarshal([]byte(`{"present": 1.5, "zero": 0, "null": null}`), &payload)
	assert.NoError(err)

	value, ok := payload.Present.Get()
	assert.True(ok)
	assert.Equal(1.5, value)

	value, ok = payload.Zero.Get()
	assert.True(ok)
	assert.Equal(0.0, value)

	assert.False(payload.Null.IsSet())
	assert.False(payload.Absent.IsSet())
	assert.Equal(0.0, payload.Absent.Value())
}

func TestOptionalMarshalRoundTrip(t *testing.T) {
	assert := assert.New(t)

	data, err := json.Marshal(Some(3.25))
	assert.NoError(err)
	assert.Equal("3.25", string(data))

	data, err = json.Marshal(Optional[float64]{})
	assert.NoError(err)
	assert.Equal("null", string(data))

	var decoded Optional[float64]
	assert.NoError(json.Unmarshal([]byte("null"), &decoded))
	assert.False(decoded.IsSet())
}

func TestAPITimeLayouts(t *testing.T) {
	assert := assert.New(t)

	// Minute precision with a Z zone, as the API sends it.
	var parsed APITime
	assert.NoError(json.Unmarshal([]byte(`"2026-08-29T09:00Z"`), &parsed))
	assert.Equal(time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC), parsed.Time)

	// Full RFC 3339 with an offset.
	assert.NoError(json.Unmarshal([]byte(`"2026-08-29T09:00:00+01:00"`), &parsed))
	_, offset := parsed.Zone()
	assert.Equal(3600, offset)
	assert.True(parsed.Equal(time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC)))

	assert.Error(json.Unmarshal([]byte(`"not a timestamp"`), &parsed))
}

func TestGeometryAccessors(t *testing.T) {
	assert := assert.New(t)

	geometry := Geometry{Type: "Point", Coordinates: []float64{-0.1, 51.5, 11.0}}
	assert.Equal(-0.1, geometry.Longitude())
	assert.Equal(51.5, geometry.Latitude())
	assert.Equal(11.0, geometry.Elevation())

	assert.Equal(0.0, Geometry{}.Elevation())
}

func TestParseMinimalDailyBody(t *testing.T) {
	assert := assert.New(t)

	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	forecast, err := parseForecast[DailyTimeSeries]([]byte(dailyBody(now.Add(-time.Hour), now)))
	assert.NoError(err)
	assert.Len(forecast.Features, 1)
	assert.Len(forecast.Features[0].Properties.TimeSeries, 1)

	entry := forecast.Features[0].Properties.TimeSeries[0]
	assert.True(entry.DayMaxScreenTemperature.IsSet())
	assert.False(entry.Midday10MWindSpeed.IsSet())
	assert.False(entry.NightSignificantWeatherCode.IsSet())
	assert.Equal(CodeNotAvailable, entry.NightWeatherCode())
}

func TestParseIgnoresUnknownKeys(t *testing.T) {
	assert := assert.New(t)

	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	body := `{
		"type": "FeatureCollection",
		"someFutureField": {"nested": true},
		"features": [{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [-0.1, 51.5, 11.0]},
			"properties": {
				"requestPointDistance": 1081.5,
				"modelRunDate": "` + now.UTC().Format(apiTimeLayout) + `",
				"timeSeries": [{"time": "` + now.UTC().Format(apiTimeLayout) + `", "newMeasurement": 7}]
			}
		}]
	}`
	forecast, err := parseForecast[DailyTimeSeries]([]byte(body))
	assert.NoError(err)
	assert.Len(forecast.TimeSeries(), 1)
}

func TestParseMissingModelRunDate(t *testing.T) {
	assert := assert.New(t)

	body := `{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [-0.1, 51.5, 11.0]},
			"properties": {"requestPointDistance": 1081.5, "timeSeries": []}
		}]
	}`
	_, err := parseForecast[DailyTimeSeries]([]byte(body))
	var malformed *MalformedResponseError
	assert.ErrorAs(err, &malformed)
	assert.Equal("features[0].properties.modelRunDate", malformed.Path)
}

func TestParseEmptyFeatures(t *testing.T) {
	assert := assert.New(t)

	_, err := parseForecast[DailyTimeSeries]([]byte(`{"type": "FeatureCollection", "features": []}`))
	var malformed *MalformedResponseError
	assert.ErrorAs(err, &malformed)
	assert.Equal("features", malformed.Path)
}
