package metoffice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const apiTimeLayout = "2006-01-02T15:04Z07:00"

func dailyBody(modelRun, entryTime time.Time) string {
	return fmt.Sprintf(`{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [-0.1, 51.5, 11.0]},
			"properties": {
				"location": {"name": "London"},
				"requestPointDistance": 1081.5,
				"modelRunDate": %q,
				"timeSeries": [{
					"time": %q,
					"dayMaxScreenTemperature": 14.2,
					"dayProbabilityOfPrecipitation": 0,
					"daySignificantWeatherCode": 1
				}]
			}
		}],
		"parameters": [{
			"dayMaxScreenTemperature": {
				"type": "Parameter",
				"description": "Day Maximum Screen Air Temperature",
				"unit": {
					"label": "degrees Celsius",
					"symbol": {"value": "http://www.opengis.net/def/uom/UCUM/degC", "type": "unitOfMeasure"}
				}
			}
		}]
	}`, modelRun.UTC().Format(apiTimeLayout), entryTime.UTC().Format(apiTimeLayout))
}

func hourlyEntry(entryTime time.Time, weatherCode int) string {
	return fmt.Sprintf(`{
		"time": %q,
		"screenTemperature": 16.5,
		"screenDewPointTemperature": 9.1,
		"feelsLikeTemperature": 15.2,
		"windSpeed10m": 4.3,
		"windDirectionFrom10m": 250,
		"windGustSpeed10m": 8.1,
		"visibility": 24000,
		"screenRelativeHumidity": 62.5,
		"mslp": 101870,
		"uvIndex": 3,
		"significantWeatherCode": %d,
		"precipitationRate": 0,
		"probOfPrecipitation": 5
	}`, entryTime.UTC().Format(apiTimeLayout), weatherCode)
}

func hourlyBody(modelRun, entryTime time.Time) string {
	return fmt.Sprintf(`{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [-0.1, 51.5, 11.0]},
			"properties": {
				"requestPointDistance": 1081.5,
				"modelRunDate": %q,
				"timeSeries": [%s]
			}
		}]
	}`, modelRun.UTC().Format(apiTimeLayout), hourlyEntry(entryTime, 1))
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	logger := slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client, err := NewClient("test-key", WithBaseURL(server.URL), WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	return client, server
}

type testWriter struct {
	t *testing.T
}

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestDailyForecastEndToEnd(t *testing.T) {
	assert := assert.New(t)

	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	var calls atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal("/sitespecific/v0/point/daily", r.URL.Path)
		assert.Equal("test-key", r.Header.Get("apikey"))
		assert.Equal("BD1", r.URL.Query().Get("dataSource"))
		assert.Equal("51.5", r.URL.Query().Get("latitude"))
		assert.Equal("-0.1", r.URL.Query().Get("longitude"))
		assert.Equal("true", r.URL.Query().Get("includeLocationName"))
		assert.Equal("false", r.URL.Query().Get("excludeParameterMetadata"))
		fmt.Fprint(w, dailyBody(now.Add(-time.Hour), now.Truncate(24*time.Hour)))
	}))
	client.now = func() time.Time { return now }

	assert.NoError(client.SetCoordinates(51.5, -0.1))

	name, err := client.LocationName(context.Background(), ForecastDaily)
	assert.NoError(err)
	assert.Equal("London", name)

	entry, found, err := client.Today(context.Background())
	assert.NoError(err)
	assert.True(found)
	assert.Equal(1, int(entry.DayWeatherCode()))

	temperature, ok := entry.DayMaxScreenTemperature.Get()
	assert.True(ok)
	assert.Equal(14.2, temperature)

	// Unset optional fields stay distinguishable from zero ...
	assert.False(entry.NightMinScreenTemperature.IsSet())
	// ... while a genuine zero is reported as present.
	probability, ok := entry.DayProbabilityOfPrecipitation.Get()
	assert.True(ok)
	assert.Equal(0, probability)
	assert.Equal(CodeNotAvailable, entry.NightWeatherCode())

	// Everything above is served by a single API call.
	_, _, err = client.Today(context.Background())
	assert.NoError(err)
	assert.EqualValues(1, calls.Load())
}

func TestCurrentHour(t *testing.T) {
	assert := assert.New(t)

	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/sitespecific/v0/point/hourly", r.URL.Path)
		fmt.Fprint(w, hourlyBody(now.Add(-time.Hour), now.Truncate(time.Hour)))
	}))
	client.now = func() time.Time { return now }
	assert.NoError(client.SetCoordinates(51.5, -0.1))

	entry, found, err := client.CurrentHour(context.Background())
	assert.NoError(err)
	assert.True(found)
	temperature, ok := entry.ScreenTemperature.Get()
	assert.True(ok)
	assert.Equal(16.5, temperature)
	assert.Equal(CodeSunnyDay, entry.WeatherCode())
}

func TestCurrentHourNotCovered(t *testing.T) {
	assert := assert.New(t)

	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, hourlyBody(now.Add(-time.Hour), now.Add(48*time.Hour)))
	}))
	client.now = func() time.Time { return now }
	assert.NoError(client.SetCoordinates(51.5, -0.1))

	_, found, err := client.CurrentHour(context.Background())
	assert.NoError(err)
	assert.False(found)
}

func TestForecastWithoutCoordinates(t *testing.T) {
	assert := assert.New(t)

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))

	_, err := client.Daily(context.Background())
	assert.ErrorIs(err, ErrNoCoordinates)
}

func TestStatusErrorSurfacesWithoutRetry(t *testing.T) {
	assert := assert.New(t)

	var calls atomic.Int64
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	assert.NoError(client.SetCoordinates(51.5, -0.1))

	_, err := client.Daily(context.Background())
	var statusErr *StatusError
	assert.ErrorAs(err, &statusErr)
	assert.Equal(http.StatusForbidden, statusErr.StatusCode)
	assert.EqualValues(1, calls.Load())
}

func TestFailedFetchKeepsPreviousForecast(t *testing.T) {
	assert := assert.New(t)

	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	var fail atomic.Bool
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, dailyBody(now.Add(-time.Hour), now.Truncate(24*time.Hour)))
	}))
	client.now = func() time.Time { return now }
	assert.NoError(client.SetCoordinates(51.5, -0.1))

	_, err := client.Daily(context.Background())
	assert.NoError(err)

	// Expire the cache, then fail the refresh: the stale forecast stays in
	// the slot and the error surfaces.
	client.now = func() time.Time { return now.Add(7 * time.Hour) }
	fail.Store(true)
	_, err = client.Daily(context.Background())
	assert.Error(err)
	assert.NotNil(client.daily.data)

	// A later successful refresh replaces it again.
	fail.Store(false)
	forecast, err := client.Daily(context.Background())
	assert.NoError(err)
	assert.NotNil(forecast)
}

func TestParameterMetadata(t *testing.T) {
	assert := assert.New(t)

	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, dailyBody(now.Add(-time.Hour), now.Truncate(24*time.Hour)))
	}))
	client.now = func() time.Time { return now }
	assert.NoError(client.SetCoordinates(51.5, -0.1))

	description, err := client.ParameterDescription(context.Background(), ForecastDaily, "dayMaxScreenTemperature")
	assert.NoError(err)
	assert.Equal("Day Maximum Screen Air Temperature", description)

	unit, err := client.ParameterUnit(context.Background(), ForecastDaily, "dayMaxScreenTemperature")
	assert.NoError(err)
	assert.Equal("degrees Celsius", unit.Label)
	assert.Equal("unitOfMeasure", unit.Symbol.Type)

	// A name from another kind's vocabulary is unknown here.
	var unknown *UnknownParameterError
	_, err = client.ParameterDescription(context.Background(), ForecastDaily, "screenTemperature")
	assert.ErrorAs(err, &unknown)
	assert.Equal("screenTemperature", unknown.Name)

	// Known name, but this response carried no metadata block for it.
	_, err = client.ParameterDescription(context.Background(), ForecastDaily, "maxUvIndex")
	assert.ErrorAs(err, &unknown)
}

func TestUnknownWeatherCodeIsAParseError(t *testing.T) {
	assert := assert.New(t)

	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	body := fmt.Sprintf(`{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [-0.1, 51.5, 11.0]},
			"properties": {
				"requestPointDistance": 1081.5,
				"modelRunDate": %q,
				"timeSeries": [%s]
			}
		}]
	}`, now.UTC().Format(apiTimeLayout), hourlyEntry(now, 99))

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	assert.NoError(client.SetCoordinates(51.5, -0.1))

	_, err := client.Hourly(context.Background())
	var unknownCode *UnknownWeatherCodeError
	assert.ErrorAs(err, &unknownCode)
	assert.Equal(99, unknownCode.Code)
}

func TestMissingRequiredFieldIsMalformed(t *testing.T) {
	assert := assert.New(t)

	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	// An hourly entry with only a timestamp is missing its whole required set.
	body := fmt.Sprintf(`{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"geometry": {"type": "Point", "coordinates": [-0.1, 51.5, 11.0]},
			"properties": {
				"requestPointDistance": 1081.5,
				"modelRunDate": %q,
				"timeSeries": [{"time": %q}]
			}
		}]
	}`, now.UTC().Format(apiTimeLayout), now.UTC().Format(apiTimeLayout))

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	assert.NoError(client.SetCoordinates(51.5, -0.1))

	_, err := client.Hourly(context.Background())
	var malformed *MalformedResponseError
	assert.ErrorAs(err, &malformed)
	assert.Equal("features[0].properties.timeSeries[0].screenTemperature", malformed.Path)
}

func TestLocationNameAbsent(t *testing.T) {
	assert := assert.New(t)

	now := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, hourlyBody(now.Add(-time.Hour), now))
	}))
	client.now = func() time.Time { return now }
	assert.NoError(client.SetCoordinates(51.5, -0.1))
	client.SetIncludeLocationName(false)

	_, err := client.LocationName(context.Background(), ForecastHourly)
	assert.True(errors.Is(err, ErrNoData))
}
