package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pasanw/skycast/internal/models"
)

// API defines the provider surface the fetch pipeline consumes.
type API interface {
	// Current retrieves current conditions for a query.
	Current(ctx context.Context, q models.Query) (*models.CurrentConditions, error)

	// Forecast retrieves the 5-day/3-hour forecast feed for a query.
	Forecast(ctx context.Context, q models.Query) (*models.ForecastFeed, error)
}

// Client talks to the OpenWeatherMap data API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	userAgent  string
}

// Ensure Client implements API
var _ API = (*Client)(nil)

// NewClient creates an OpenWeatherMap client for the given credential.
func NewClient(apiKey string) *Client {
	return &Client{
		baseURL: "https://api.openweathermap.org/data/2.5",
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		userAgent: "skycast/1.0 (github.com/pasanw/skycast)",
	}
}

// Current retrieves current conditions from the /weather endpoint.
func (c *Client) Current(ctx context.Context, q models.Query) (*models.CurrentConditions, error) {
	reqURL := fmt.Sprintf("%s/weather?%s", c.baseURL, c.queryParams(q).Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching current conditions: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	var cur currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&cur); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(cur.Weather) == 0 {
		return nil, fmt.Errorf("response carries no weather entry")
	}

	return &models.CurrentConditions{
		Place:       cur.Name,
		Temp:        cur.Main.Temp,
		FeelsLike:   cur.Main.FeelsLike,
		Humidity:    cur.Main.Humidity,
		Pressure:    cur.Main.Pressure,
		WindSpeed:   cur.Wind.Speed,
		Visibility:  cur.Visibility,
		Sunrise:     cur.Sys.Sunrise,
		Sunset:      cur.Sys.Sunset,
		TZOffset:    cur.Timezone,
		Condition:   models.ParseCondition(cur.Weather[0].Main),
		Description: cur.Weather[0].Description,
		Icon:        cur.Weather[0].Icon,
		FetchedAt:   time.Now(),
	}, nil
}

// Forecast retrieves the 3-hour-interval feed from the /forecast endpoint.
// Samples are returned in provider order; reduction to daily entries is the
// caller's concern.
func (c *Client) Forecast(ctx context.Context, q models.Query) (*models.ForecastFeed, error) {
	reqURL := fmt.Sprintf("%s/forecast?%s", c.baseURL, c.queryParams(q).Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching forecast: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var fc forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	feed := &models.ForecastFeed{
		City:    fc.City.Name,
		Samples: make([]models.ForecastSample, 0, len(fc.List)),
	}

	for _, item := range fc.List {
		sample := models.ForecastSample{
			TimeText: item.DtTxt,
			Temp:     item.Main.Temp,
		}
		if len(item.Weather) > 0 {
			sample.Condition = models.ParseCondition(item.Weather[0].Main)
			sample.Description = item.Weather[0].Description
			sample.Icon = item.Weather[0].Icon
		} else {
			sample.Condition = models.ConditionOther
		}
		feed.Samples = append(feed.Samples, sample)
	}

	return feed, nil
}

// queryParams builds the shared parameter set for both endpoints: the
// location variant, the credential, and the metric unit system.
func (c *Client) queryParams(q models.Query) url.Values {
	params := url.Values{}

	switch q.Kind {
	case models.QueryByCoords:
		params.Set("lat", strconv.FormatFloat(q.Lat, 'f', 4, 64))
		params.Set("lon", strconv.FormatFloat(q.Lon, 'f', 4, 64))
	default:
		params.Set("q", q.Place)
	}

	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	return params
}

// Internal types for OpenWeatherMap API responses

type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Visibility int `json:"visibility"`
	Sys        struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
	Timezone int64 `json:"timezone"`
	Dt       int64 `json:"dt"`
}

type forecastResponse struct {
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		DtTxt string `json:"dt_txt"`
	} `json:"list"`
}
