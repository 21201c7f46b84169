package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/roadassist/dispatch/pkg/logger"
)

var ErrUnknownLocation = errors.New("geocoder could not resolve location")

// NominatimGeocoder resolves coordinates against a Nominatim-compatible
// reverse endpoint. The breaker keeps a dead geocoder from adding latency
// to every submission.
type NominatimGeocoder struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  logger.Logger
}

func NewNominatimGeocoder(baseURL string, log logger.Logger) *NominatimGeocoder {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "geocoder",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
	return &NominatimGeocoder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 3 * time.Second},
		breaker: cb,
		logger:  log,
	}
}

func (g *NominatimGeocoder) ReverseGeocode(ctx context.Context, latitude, longitude float64) (string, error) {
	result, err := g.breaker.Execute(func() (interface{}, error) {
		return g.reverse(ctx, latitude, longitude)
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

func (g *NominatimGeocoder) reverse(ctx context.Context, latitude, longitude float64) (string, error) {
	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(longitude, 'f', -1, 64))

	endpoint := fmt.Sprintf("%s/reverse?%s", g.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocode call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocode status %d", resp.StatusCode)
	}

	var payload struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode geocode response: %w", err)
	}
	if payload.DisplayName == "" {
		return "", ErrUnknownLocation
	}
	return payload.DisplayName, nil
}
