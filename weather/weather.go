package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"roamio/models"
	"roamio/rdx"
)

const cacheTTL = 30 * time.Minute

// Client fetches a coarse current-weather condition for a city.
// Every failure path yields the neutral condition, never an abort.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

func New() *Client {
	return &Client{
		apiKey:  os.Getenv("OPENWEATHER_API_KEY"),
		baseURL: "https://api.openweathermap.org/data/2.5/weather",
		httpc:   &http.Client{Timeout: 4 * time.Second},
	}
}

type openWeatherResponse struct {
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
}

// Current returns one of the models.Weather* condition classes. On any
// provider failure the neutral class comes back along with the error so
// the caller can log and carry on.
func (c *Client) Current(ctx context.Context, city string) (string, error) {
	if c.apiKey == "" {
		return models.WeatherNeutral, fmt.Errorf("no weather API key configured")
	}

	cacheKey := "weather:" + city
	if cached := rdx.GetCached(ctx, cacheKey); cached != "" {
		return cached, nil
	}

	reqURL := fmt.Sprintf("%s?q=%s&appid=%s", c.baseURL, url.QueryEscape(city), c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.WeatherNeutral, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return models.WeatherNeutral, fmt.Errorf("weather lookup for %q: %w", city, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.WeatherNeutral, fmt.Errorf("weather lookup for %q: status %d", city, resp.StatusCode)
	}

	var data openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.WeatherNeutral, fmt.Errorf("weather decode for %q: %w", city, err)
	}
	if len(data.Weather) == 0 {
		return models.WeatherNeutral, fmt.Errorf("weather lookup for %q: empty response", city)
	}

	condition := Classify(data.Weather[0].Main)
	rdx.SetCached(ctx, cacheKey, condition, cacheTTL)
	return condition, nil
}

// Classify maps a provider condition string to a coarse class.
func Classify(main string) string {
	switch main {
	case "Clear":
		return models.WeatherSunny
	case "Rain", "Drizzle", "Thunderstorm", "Snow":
		return models.WeatherRainy
	case "Clouds", "Mist", "Fog", "Haze":
		return models.WeatherCloudy
	default:
		return models.WeatherNeutral
	}
}
