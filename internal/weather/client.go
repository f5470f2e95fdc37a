package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/dashtab/dashtab/internal/model"
)

const (
	defaultGeocodeBaseURL  = "https://nominatim.openstreetmap.org"
	defaultForecastBaseURL = "https://api.open-meteo.com"

	// Coordinates used when no location is configured and none can be
	// resolved (São Paulo).
	DefaultLatitude  = -23.5505
	DefaultLongitude = -46.6333

	// DefaultHumidity stands in when the hourly humidity request fails
	DefaultHumidity = 65

	// FallbackLocationLabel is shown when reverse geocoding yields nothing
	FallbackLocationLabel = "Your location"

	requestTimeout = 10 * time.Second
	userAgent      = "DashTab/1.0"
)

// ErrLocationResolution means the configured location could not be resolved
// to coordinates; conditions for the default location are shown instead.
var ErrLocationResolution = errors.New("could not resolve location")

// Client fetches current weather conditions. Base URLs are overridable so
// tests can point it at a local server.
type Client struct {
	httpClient      *http.Client
	geocodeBaseURL  string
	forecastBaseURL string
}

// NewClient creates a weather client against the public endpoints
func NewClient() *Client {
	return &Client{
		httpClient:      &http.Client{Timeout: requestTimeout},
		geocodeBaseURL:  defaultGeocodeBaseURL,
		forecastBaseURL: defaultForecastBaseURL,
	}
}

// SetBaseURLs overrides the geocoding and forecast endpoints
func (c *Client) SetBaseURLs(geocode, forecast string) {
	c.geocodeBaseURL = geocode
	c.forecastBaseURL = forecast
}

// Fetch returns current conditions for the given location hint. A blank hint
// or an unresolvable one falls back to the default coordinates with a
// reverse-geocoded label; the fetch itself still proceeds.
func (c *Client) Fetch(ctx context.Context, locationHint string) (model.WeatherData, error) {
	latitude, longitude := DefaultLatitude, DefaultLongitude
	label := ""

	if locationHint != "" {
		lat, lon, err := c.geocode(ctx, locationHint)
		if err != nil {
			log.Printf("Geocoding %q failed, using default coordinates: %v", locationHint, err)
		} else {
			latitude, longitude = lat, lon
			label = locationHint
		}
	}
	if label == "" {
		label = c.reverseGeocode(ctx, latitude, longitude)
	}

	data, err := c.fetchConditions(ctx, latitude, longitude)
	if err != nil {
		return model.WeatherData{}, err
	}
	data.Location = label
	data.Humidity = c.fetchHumidity(ctx, latitude, longitude)
	return data, nil
}

// geocode resolves a city name to coordinates via nominatim
func (c *Client) geocode(ctx context.Context, city string) (latitude, longitude float64, err error) {
	query := url.Values{}
	query.Set("city", city)
	query.Set("format", "json")
	query.Set("limit", "1")

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := c.getJSON(ctx, c.geocodeBaseURL+"/search?"+query.Encode(), &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, ErrLocationResolution
	}

	if _, err := fmt.Sscanf(results[0].Lat, "%f", &latitude); err != nil {
		return 0, 0, ErrLocationResolution
	}
	if _, err := fmt.Sscanf(results[0].Lon, "%f", &longitude); err != nil {
		return 0, 0, ErrLocationResolution
	}
	return latitude, longitude, nil
}

// reverseGeocode turns coordinates into a human-readable place label
func (c *Client) reverseGeocode(ctx context.Context, latitude, longitude float64) string {
	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%f", latitude))
	query.Set("lon", fmt.Sprintf("%f", longitude))
	query.Set("format", "json")

	var result struct {
		Address struct {
			City    string `json:"city"`
			Town    string `json:"town"`
			Village string `json:"village"`
			State   string `json:"state"`
		} `json:"address"`
	}
	if err := c.getJSON(ctx, c.geocodeBaseURL+"/reverse?"+query.Encode(), &result); err != nil {
		log.Printf("Reverse geocoding failed: %v", err)
		return FallbackLocationLabel
	}

	for _, candidate := range []string{
		result.Address.City,
		result.Address.Town,
		result.Address.Village,
		result.Address.State,
	} {
		if candidate != "" {
			return candidate
		}
	}
	return FallbackLocationLabel
}

// fetchConditions retrieves the current weather block from open-meteo
func (c *Client) fetchConditions(ctx context.Context, latitude, longitude float64) (model.WeatherData, error) {
	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%f", latitude))
	query.Set("longitude", fmt.Sprintf("%f", longitude))
	query.Set("current_weather", "true")

	var result struct {
		CurrentWeather struct {
			Temperature float64 `json:"temperature"`
			WindSpeed   float64 `json:"windspeed"`
			WeatherCode int     `json:"weathercode"`
		} `json:"current_weather"`
	}
	if err := c.getJSON(ctx, c.forecastBaseURL+"/v1/forecast?"+query.Encode(), &result); err != nil {
		return model.WeatherData{}, fmt.Errorf("fetching current weather: %w", err)
	}

	return model.WeatherData{
		Temperature: int(math.Round(result.CurrentWeather.Temperature)),
		WindSpeed:   int(math.Round(result.CurrentWeather.WindSpeed)),
		Condition:   model.ConditionFromCode(result.CurrentWeather.WeatherCode),
	}, nil
}

// fetchHumidity reads the hourly relative humidity for the current hour.
// Any failure degrades to DefaultHumidity rather than failing the fetch.
func (c *Client) fetchHumidity(ctx context.Context, latitude, longitude float64) int {
	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%f", latitude))
	query.Set("longitude", fmt.Sprintf("%f", longitude))
	query.Set("hourly", "relative_humidity_2m")
	query.Set("forecast_days", "1")

	var result struct {
		Hourly struct {
			Time             []string  `json:"time"`
			RelativeHumidity []float64 `json:"relative_humidity_2m"`
		} `json:"hourly"`
	}
	if err := c.getJSON(ctx, c.forecastBaseURL+"/v1/forecast?"+query.Encode(), &result); err != nil {
		log.Printf("Humidity request failed, using default: %v", err)
		return DefaultHumidity
	}
	if len(result.Hourly.RelativeHumidity) == 0 {
		return DefaultHumidity
	}

	index := time.Now().Hour()
	if index >= len(result.Hourly.RelativeHumidity) {
		index = len(result.Hourly.RelativeHumidity) - 1
	}
	return int(math.Round(result.Hourly.RelativeHumidity[index]))
}

// getJSON performs a GET request and decodes the JSON response into out
func (c *Client) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
