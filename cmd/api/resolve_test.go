package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/nickjlamb/HushMap-sub001/internal/cache"
	"github.com/nickjlamb/HushMap-sub001/internal/config"
	"github.com/nickjlamb/HushMap-sub001/internal/locale"
	"github.com/nickjlamb/HushMap-sub001/internal/ratelimit"
	"github.com/nickjlamb/HushMap-sub001/internal/resolver"
	"github.com/nickjlamb/HushMap-sub001/internal/sensitivity"
	"github.com/nickjlamb/HushMap-sub001/internal/telemetry"
	"github.com/nickjlamb/HushMap-sub001/internal/types"
)

type stubPlaces struct{}

func (stubPlaces) NearbyCandidates(context.Context, types.Coords, string) ([]types.PlacesCandidate, error) {
	return nil, nil
}

type stubGeocode struct{}

func (stubGeocode) ReverseGeocode(context.Context, types.Coords) (*resolver.StreetAddress, error) {
	return nil, nil
}

type stubArea struct{}

func (stubArea) AreaName(context.Context, types.Coords) (string, error) {
	return "Greenwich", nil
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	tel := telemetry.New()
	tuning := config.NewTuningStore(config.ResolverConfig{})
	res := resolver.New(resolver.Deps{
		Places:    stubPlaces{},
		Geocode:   stubGeocode{},
		Area:      stubArea{},
		Cache:     cache.NewMemory(64),
		Limiter:   ratelimit.New(ratelimit.WithCapacity(1000)),
		Tuning:    tuning,
		Filter:    sensitivity.New(),
		Telemetry: tel,
		Locales:   locale.Static("default"),
		Logger:    logger,
	})
	app := &App{
		router:    gin.New(),
		logger:    logger,
		cfg:       &config.Config{},
		resolver:  res,
		tuning:    tuning,
		telemetry: tel,
	}
	app.registerRoutes()
	return app
}

func getLabel(t *testing.T, app *App, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/v1/location/label"+query, nil)
	rec := httptest.NewRecorder()
	app.router.ServeHTTP(rec, req)
	return rec
}

func TestHandleResolveLabel_ZeroCoordinatesAreValid(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name  string
		query string
	}{
		{"prime meridian", "?latitude=51.4779&longitude=0"},
		{"equator", "?latitude=0&longitude=6.73"},
		{"null island", "?latitude=0&longitude=0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := getLabel(t, app, tt.query)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), "Greenwich area") {
				t.Errorf("body = %s, want an area-tier label", rec.Body.String())
			}
		})
	}
}

func TestHandleResolveLabel_MissingParametersRejected(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name  string
		query string
	}{
		{"no longitude", "?latitude=51.4779"},
		{"no latitude", "?longitude=-0.17"},
		{"no coordinates", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := getLabel(t, app, tt.query); rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestHandleResolveLabel_OutOfRangeRejected(t *testing.T) {
	app := newTestApp(t)

	if rec := getLabel(t, app, "?latitude=95&longitude=0"); rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for an out-of-range latitude", rec.Code)
	}
}
