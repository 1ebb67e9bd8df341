package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	metoffice "github.com/claytonn73/metoffice-api"
)

var cli struct {
	APIKey    string  `env:"MET_OFFICE_API_KEY" required:"" help:"Met Office DataHub API key."`
	Latitude  float64 `required:"" help:"Latitude of the forecast point."`
	Longitude float64 `required:"" help:"Longitude of the forecast point."`
	Forecast  string  `enum:"hourly,three-hourly,daily" default:"daily" help:"Forecast kind to fetch."`
	CacheDir  string  `env:"MET_OFFICE_CACHE_DIR" help:"Directory for the forecast disk cache."`
	Debug     bool    `help:"Enable debug logging."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("metoffice"),
		kong.Description("Fetch a Met Office site-specific point forecast."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []metoffice.Option{metoffice.WithLogger(logger)}
	if cli.CacheDir != "" {
		opts = append(opts, metoffice.WithCacheDirectory(cli.CacheDir))
	}
	client, err := metoffice.NewClient(cli.APIKey, opts...)
	if err != nil {
		return err
	}
	if err := client.SetCoordinates(cli.Latitude, cli.Longitude); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	switch cli.Forecast {
	case "hourly":
		return printHourly(ctx, client)
	case "three-hourly":
		return printThreeHourly(ctx, client)
	default:
		return printDaily(ctx, client)
	}
}

func printHourly(ctx context.Context, client *metoffice.Client) error {
	forecast, err := client.Hourly(ctx)
	if err != nil {
		return err
	}
	printHeader(ctx, client, metoffice.ForecastHourly)
	for _, entry := range forecast.TimeSeries() {
		fmt.Printf("%s  %5.1f°C  %s\n",
			entry.Time.Format("Mon 15:04"),
			entry.ScreenTemperature.Value(),
			entry.WeatherCode())
	}
	return nil
}

func printThreeHourly(ctx context.Context, client *metoffice.Client) error {
	forecast, err := client.ThreeHourly(ctx)
	if err != nil {
		return err
	}
	printHeader(ctx, client, metoffice.ForecastThreeHourly)
	for _, entry := range forecast.TimeSeries() {
		fmt.Printf("%s  %5.1f°C to %5.1f°C  %s\n",
			entry.Time.Format("Mon 15:04"),
			entry.MinScreenAirTemp.Value(),
			entry.MaxScreenAirTemp.Value(),
			entry.WeatherCode())
	}
	return nil
}

func printDaily(ctx context.Context, client *metoffice.Client) error {
	forecast, err := client.Daily(ctx)
	if err != nil {
		return err
	}
	printHeader(ctx, client, metoffice.ForecastDaily)
	for _, entry := range forecast.TimeSeries() {
		day := "-"
		if maxTemp, ok := entry.DayMaxScreenTemperature.Get(); ok {
			day = fmt.Sprintf("%.1f°C", maxTemp)
		}
		night := "-"
		if minTemp, ok := entry.NightMinScreenTemperature.Get(); ok {
			night = fmt.Sprintf("%.1f°C", minTemp)
		}
		fmt.Printf("%s  day max %s  night min %s  %s\n",
			entry.Time.Format("Mon 02 Jan"),
			day, night,
			entry.DayWeatherCode())
	}
	return nil
}

func printHeader(ctx context.Context, client *metoffice.Client, kind metoffice.Forecast) {
	if name, err := client.LocationName(ctx, kind); err == nil {
		fmt.Printf("%s for %s\n", kind, name)
	}
}
