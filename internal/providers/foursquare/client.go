package foursquare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

// API Docs: https://docs.foursquare.com/developer/reference/place-search
// Sample request: https://api.foursquare.com/v3/places/search?ll=51.51,-0.17&sort=DISTANCE
const (
	baseURL = "https://api.foursquare.com/v3/places/search"

	searchRadiusMeters = 150
	searchLimit        = 10
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}
}

// Search performs a raw distance-sorted place search around the coordinate.
func (c *Client) Search(ctx context.Context, latitude, longitude float64, sessionToken string) (*SearchAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("ll", fmt.Sprintf("%f,%f", latitude, longitude))
	q.Set("radius", fmt.Sprintf("%d", searchRadiusMeters))
	q.Set("limit", fmt.Sprintf("%d", searchLimit))
	q.Set("sort", "DISTANCE")
	q.Set("fields", "fsq_id,name,distance,categories,geocodes,rating,stats,hours")
	if sessionToken != "" {
		q.Set("session_token", sessionToken)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")

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

	var apiResp SearchAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}

// NearbyCandidates searches for venues near the coordinate and maps them to
// scoring candidates. Foursquare rates on a 0-10 scale; candidates use 0-5.
func (c *Client) NearbyCandidates(ctx context.Context, coords types.Coords, sessionToken string) ([]types.PlacesCandidate, error) {
	apiResp, err := c.Search(ctx, coords.Latitude, coords.Longitude, sessionToken)
	if err != nil {
		return nil, err
	}

	candidates := make([]types.PlacesCandidate, 0, len(apiResp.Results))
	for _, p := range apiResp.Results {
		categories := make([]string, 0, len(p.Categories))
		for _, cat := range p.Categories {
			categories = append(categories, strings.ToLower(cat.Name))
		}
		candidates = append(candidates, types.PlacesCandidate{
			Name:           p.Name,
			PlaceID:        p.FsqId,
			Coordinates:    types.NewCoords(p.Geocodes.Main.Latitude, p.Geocodes.Main.Longitude),
			Categories:     categories,
			Rating:         p.Rating / 2,
			ReviewCount:    p.Stats.TotalRatings,
			OpenNow:        p.Hours.OpenNow,
			DistanceMeters: p.Distance,
			IsComplex:      types.DeriveComplex(categories),
		})
	}
	return candidates, nil
}
