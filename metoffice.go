// Package metoffice is a client for the Met Office Site Specific weather
// forecast API (DataHub). It fetches hourly, three-hourly and daily point
// forecasts, parses them into typed forecast trees and reuses a fetched
// forecast while its model run is still fresh.
package metoffice

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const defaultCacheTTL = 6 * time.Hour

// Client talks to the Met Office API. Create one with NewClient, set the
// coordinates and request forecasts; a forecast fetched less than the cache
// TTL ago is served from memory.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	limiter *rate.Limiter
	ttl     time.Duration
	now     func() time.Time

	parameters  apiParameters
	hourly      forecastSlot[HourlyTimeSeries]
	threeHourly forecastSlot[ThreeHourlyTimeSeries]
	daily       forecastSlot[DailyTimeSeries]
}

// Option configures a Client.
type Option func(c *Client)

// WithHTTPClient replaces the HTTP client used for API calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// WithBaseURL points the client at a different host, mainly for tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger for request and cache events.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithCacheTTL overrides how long a fetched forecast is considered fresh.
// The default of six hours roughly matches how often the upstream model
// reruns.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.ttl = ttl
	}
}

// WithCacheDirectory persists the last forecast of each kind to the given
// directory so a restarted process can reuse a still-fresh model run.
func WithCacheDirectory(directory string) Option {
	return func(c *Client) {
		c.hourly.disk = &diskCache[HourlyTimeSeries]{directory: directory, name: "hourly"}
		c.threeHourly.disk = &diskCache[ThreeHourlyTimeSeries]{directory: directory, name: "three-hourly"}
		c.daily.disk = &diskCache[DailyTimeSeries]{directory: directory, name: "daily"}
	}
}

// WithRateLimit caps outgoing API calls at rps requests per second with the
// given burst, to protect the account's request quota.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates a client for the Met Office API. The API key is attached
// to every request as the apikey header; it is never logged.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("apiKey must be defined")
	}
	c := &Client{
		apiKey:     apiKey,
		baseURL:    BaseURL,
		http:       &http.Client{Timeout: 60 * time.Second},
		logger:     slog.Default(),
		ttl:        defaultCacheTTL,
		now:        time.Now,
		parameters: defaultParameters(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetCoordinates sets the point the forecasts are requested for. Latitude
// must be within [-85, 85] and longitude within [-180, 180]; if either is
// out of range neither is changed.
func (c *Client) SetCoordinates(latitude, longitude float64) error {
	return c.parameters.setCoordinates(latitude, longitude)
}

// SetDataSource selects the upstream data source, "BD1" by default.
func (c *Client) SetDataSource(source string) {
	c.parameters.setDataSource(source)
}

// SetExcludeParameterMetadata controls whether responses include parameter
// metadata. Excluding it makes responses smaller but disables
// ParameterDescription and ParameterUnit.
func (c *Client) SetExcludeParameterMetadata(exclude bool) {
	c.parameters.setExcludeParameterMetadata(exclude)
}

// SetIncludeLocationName controls whether responses carry the location name.
func (c *Client) SetIncludeLocationName(include bool) {
	c.parameters.setIncludeLocationName(include)
}

// Hourly returns the hourly forecast for the configured coordinates.
func (c *Client) Hourly(ctx context.Context) (*HourlyForecast, error) {
	return getForecast(ctx, c, ForecastHourly, &c.hourly)
}

// ThreeHourly returns the three-hourly forecast for the configured
// coordinates.
func (c *Client) ThreeHourly(ctx context.Context) (*ThreeHourlyForecast, error) {
	return getForecast(ctx, c, ForecastThreeHourly, &c.threeHourly)
}

// Daily returns the daily forecast for the configured coordinates.
func (c *Client) Daily(ctx context.Context) (*DailyForecast, error) {
	return getForecast(ctx, c, ForecastDaily, &c.daily)
}

// LocationName returns the name of the location the given forecast kind was
// produced for, fetching the forecast if necessary.
func (c *Client) LocationName(ctx context.Context, kind Forecast) (string, error) {
	var name string
	var ok bool
	switch kind {
	case ForecastHourly:
		forecast, err := c.Hourly(ctx)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNoData, err)
		}
		name, ok = forecast.LocationName()
	case ForecastThreeHourly:
		forecast, err := c.ThreeHourly(ctx)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNoData, err)
		}
		name, ok = forecast.LocationName()
	default:
		forecast, err := c.Daily(ctx)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrNoData, err)
		}
		name, ok = forecast.LocationName()
	}
	if !ok {
		return "", fmt.Errorf("%w: response carries no location name", ErrNoData)
	}
	return name, nil
}

// Today returns the daily forecast entry for the current local date. The
// second return value is false when the forecast window does not cover
// today; that is not an error.
func (c *Client) Today(ctx context.Context) (DailyTimeSeries, bool, error) {
	forecast, err := c.Daily(ctx)
	if err != nil {
		return DailyTimeSeries{}, false, err
	}
	now := c.now()
	for _, entry := range forecast.TimeSeries() {
		if entry.Time.SameDate(now) {
			return entry, true, nil
		}
	}
	return DailyTimeSeries{}, false, nil
}

// CurrentHour returns the hourly forecast entry for the current hour. The
// second return value is false when the forecast window does not cover the
// current hour; that is not an error.
func (c *Client) CurrentHour(ctx context.Context) (HourlyTimeSeries, bool, error) {
	forecast, err := c.Hourly(ctx)
	if err != nil {
		return HourlyTimeSeries{}, false, err
	}
	hour := c.now().Truncate(time.Hour)
	for _, entry := range forecast.TimeSeries() {
		if entry.Time.Equal(hour) {
			return entry, true, nil
		}
	}
	return HourlyTimeSeries{}, false, nil
}

// ParameterDescription returns the human readable description of a named
// measurement in the given forecast kind.
func (c *Client) ParameterDescription(ctx context.Context, kind Forecast, name string) (string, error) {
	parameter, err := c.parameter(ctx, kind, name)
	if err != nil {
		return "", err
	}
	return parameter.Description, nil
}

// ParameterUnit returns the unit of a named measurement in the given
// forecast kind.
func (c *Client) ParameterUnit(ctx context.Context, kind Forecast, name string) (Unit, error) {
	parameter, err := c.parameter(ctx, kind, name)
	if err != nil {
		return Unit{}, err
	}
	return parameter.Unit, nil
}

func (c *Client) parameter(ctx context.Context, kind Forecast, name string) (Parameter, error) {
	switch kind {
	case ForecastHourly:
		forecast, err := c.Hourly(ctx)
		if err != nil {
			return Parameter{}, err
		}
		return lookupParameter(kind, forecast, name)
	case ForecastThreeHourly:
		forecast, err := c.ThreeHourly(ctx)
		if err != nil {
			return Parameter{}, err
		}
		return lookupParameter(kind, forecast, name)
	default:
		forecast, err := c.Daily(ctx)
		if err != nil {
			return Parameter{}, err
		}
		return lookupParameter(kind, forecast, name)
	}
}

// getForecast runs the per-kind cache check and, on a miss, the actual API
// call followed by parsing.
func getForecast[TS timeSeriesEntry](ctx context.Context, c *Client, kind Forecast, slot *forecastSlot[TS]) (*FeatureCollection[TS], error) {
	forecast, hit, err := slot.getOrFetch(c.ttl, c.now(), func() (*FeatureCollection[TS], error) {
		body, err := c.callAPI(ctx, kind)
		if err != nil {
			return nil, err
		}
		return parseForecast[TS](body)
	})
	if err != nil {
		return nil, err
	}
	if hit {
		c.logger.Debug("forecast served from cache", "endpoint", kind.String())
		forecastCacheTotal.WithLabelValues(kind.descriptor().path, "hit").Inc()
	} else {
		c.logger.Debug("forecast fetched from api", "endpoint", kind.String())
		forecastCacheTotal.WithLabelValues(kind.descriptor().path, "miss").Inc()
	}
	return forecast, nil
}

// callAPI performs one GET against the endpoint for the given kind and
// returns the raw body. Transport failures and non-2xx statuses surface
// immediately; nothing is retried.
func (c *Client) callAPI(ctx context.Context, kind Forecast) ([]byte, error) {
	descriptor := kind.descriptor()
	query, err := c.parameters.snapshot(descriptor.parms)
	if err != nil {
		return nil, err
	}
	requestURL := buildRequestURL(c.baseURL, descriptor, query)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait canceled: %w", err)
		}
	}

	c.logger.Info("calling api endpoint", "endpoint", kind.String(), "url", requestURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("apikey", c.apiKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	apiLatency.WithLabelValues(descriptor.path).Observe(time.Since(start).Seconds())
	if err != nil {
		c.logger.Error("api request failed", "endpoint", kind.String(), "error", err)
		apiCallsTotal.WithLabelValues(descriptor.path, "error").Inc()
		return nil, fmt.Errorf("%s request failed: %w", descriptor.name, err)
	}
	defer resp.Body.Close()
	apiCallsTotal.WithLabelValues(descriptor.path, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("api request failed", "endpoint", kind.String(), "status", resp.StatusCode)
		return nil, &StatusError{Endpoint: descriptor.name, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading the response body: %w", err)
	}
	return body, nil
}
