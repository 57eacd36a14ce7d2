package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	defaultIPAPIBaseURL = "http://ip-api.com"
	userAgent           = "skycast/1.0 (github.com/pasanw/skycast)"
)

// IPLocator estimates the device position from its public IP address
// using the ip-api.com endpoint. City-level accuracy is enough for a
// weather query.
type IPLocator struct {
	baseURL    string
	httpClient *http.Client
}

var _ PositionProvider = (*IPLocator)(nil)

// NewIPLocator creates a locator against the public ip-api.com service.
func NewIPLocator() *IPLocator {
	return &IPLocator{
		baseURL: defaultIPAPIBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// ipapiResponse represents the ip-api.com JSON response
type ipapiResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Position looks up the caller's position. A reply with status "fail"
// is an error even though the HTTP exchange succeeded.
func (l *IPLocator) Position(ctx context.Context) (*Position, error) {
	reqURL := fmt.Sprintf("%s/json/", l.baseURL)

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("locating by IP: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ip-api returned status %d", resp.StatusCode)
	}

	var result ipapiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if result.Status != "success" {
		return nil, fmt.Errorf("ip-api lookup failed: %s", result.Message)
	}

	return &Position{Lat: result.Lat, Lon: result.Lon}, nil
}
