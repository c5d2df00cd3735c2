package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nickjlamb/HushMap-sub001/internal/resolver"
	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Reverse/
// Sample request: https://nominatim.openstreetmap.org/reverse?lat=51.51&lon=-0.17&format=jsonv2
const (
	baseURL = "https://nominatim.openstreetmap.org/reverse"

	// streetZoom asks for street-level detail; areaZoom for suburb-level.
	streetZoom = 17
	areaZoom   = 14

	// streetConfidence is the fixed confidence attached to street labels;
	// reverse geocoding does not produce a usable per-result score.
	streetConfidence = 0.8
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient builds a Nominatim client. baseOverride is the server origin,
// e.g. "https://nominatim.openstreetmap.org" or a self-hosted instance. The
// usage policy requires a descriptive User-Agent, so userAgent must not be
// empty in production.
func NewClient(baseOverride, userAgent string) *Client {
	base := baseURL
	if baseOverride != "" {
		base = strings.TrimRight(baseOverride, "/") + "/reverse"
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    base,
		userAgent:  userAgent,
	}
}

// Reverse performs a raw reverse lookup at the given zoom level.
func (c *Client) Reverse(ctx context.Context, latitude, longitude float64, zoom int) (*ReverseAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("format", "jsonv2")
	q.Set("zoom", fmt.Sprintf("%d", zoom))
	q.Set("addressdetails", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp ReverseAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// ReverseGeocode returns a compact street address, or nil when the point has
// no street-level data. "Unable to geocode" responses are not errors.
func (c *Client) ReverseGeocode(ctx context.Context, coords types.Coords) (*resolver.StreetAddress, error) {
	apiResp, err := c.Reverse(ctx, coords.Latitude, coords.Longitude, streetZoom)
	if err != nil {
		return nil, err
	}
	if apiResp.Error != "" {
		return nil, nil
	}

	street := apiResp.Address.Street()
	if street == "" {
		return nil, nil
	}

	parts := []string{street}
	if locality := apiResp.Address.Locality(); locality != "" && locality != street {
		parts = append(parts, locality)
	}
	return &resolver.StreetAddress{
		Short:      strings.Join(parts, ", "),
		Confidence: streetConfidence,
	}, nil
}

// AreaName returns the neighborhood or locality name for the point, empty
// when the provider has no data there.
func (c *Client) AreaName(ctx context.Context, coords types.Coords) (string, error) {
	apiResp, err := c.Reverse(ctx, coords.Latitude, coords.Longitude, areaZoom)
	if err != nil {
		return "", err
	}
	if apiResp.Error != "" {
		return "", nil
	}
	return apiResp.Address.Area(), nil
}
