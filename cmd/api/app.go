package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/nickjlamb/HushMap-sub001/internal/cache"
	"github.com/nickjlamb/HushMap-sub001/internal/config"
	"github.com/nickjlamb/HushMap-sub001/internal/locale"
	"github.com/nickjlamb/HushMap-sub001/internal/migrate"
	"github.com/nickjlamb/HushMap-sub001/internal/providers/foursquare"
	"github.com/nickjlamb/HushMap-sub001/internal/providers/nominatim"
	"github.com/nickjlamb/HushMap-sub001/internal/providers/staticpoi"
	"github.com/nickjlamb/HushMap-sub001/internal/ratelimit"
	"github.com/nickjlamb/HushMap-sub001/internal/resolver"
	"github.com/nickjlamb/HushMap-sub001/internal/sensitivity"
	"github.com/nickjlamb/HushMap-sub001/internal/store"
	"github.com/nickjlamb/HushMap-sub001/internal/telemetry"

	_ "github.com/nickjlamb/HushMap-sub001/docs" // Ensure docs are imported
)

const telemetryReportInterval = 5 * time.Minute

// App encapsulates application dependencies
type App struct {
	router    *gin.Engine
	logger    *slog.Logger
	cfg       *config.Config
	resolver  *resolver.Resolver
	tuning    *config.TuningStore
	telemetry *telemetry.Telemetry
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Background goroutines live for the process lifetime.
	ctx := context.Background()

	// Label cache: memory in front of file, optionally backed by Redis.
	fileCache, err := cache.NewFile(cfg.Cache.Dir, cfg.Cache.FileCeiling, logger)
	if err != nil {
		return nil, err
	}
	fileCache.StartSweeper(ctx, time.Duration(cfg.Cache.SweepMinutes)*time.Minute)

	tiers := []cache.Store{cache.NewMemory(cfg.Cache.MemoryCapacity), fileCache}
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		tiers = append(tiers, cache.NewRedis(client, logger))
	}
	labelCache := cache.NewChain(tiers...)

	tel := telemetry.New()
	tel.StartReporter(ctx, telemetryReportInterval, logger)

	tuning := config.NewTuningStore(cfg.Resolver)

	res := resolver.New(resolver.Deps{
		Places:    newPlacesProvider(cfg, logger),
		Geocode:   newGeocodeProvider(cfg),
		Area:      newAreaProvider(cfg),
		Cache:     labelCache,
		Limiter:   ratelimit.New(),
		Tuning:    tuning,
		Filter:    sensitivity.New(),
		Telemetry: tel,
		Locales:   newLocaleService(cfg, logger),
		Logger:    logger,
	})

	recordStore, err := newRecordStore(cfg, logger)
	if err != nil {
		return nil, err
	}
	if cfg.Migrate.Enabled {
		migrator := migrate.New(recordStore, res, labelCache, logger,
			cfg.Migrate.BatchSize, cfg.Migrate.MaxBatches,
			time.Duration(cfg.Migrate.StartDelaySecs)*time.Second)
		migrator.Start(ctx)
	}

	app := &App{
		router:    router,
		logger:    logger,
		cfg:       cfg,
		resolver:  res,
		tuning:    tuning,
		telemetry: tel,
	}

	logger.Info("application initialized",
		"offline", cfg.Providers.Offline,
		"cache_tiers", len(tiers),
		"migrate_enabled", cfg.Migrate.Enabled,
	)

	// Register routes
	app.registerRoutes()

	return app, nil
}

func newPlacesProvider(cfg *config.Config, logger *slog.Logger) resolver.PlacesProvider {
	if !cfg.Providers.Offline {
		return foursquare.NewClient(cfg.Providers.FoursquareAPIKey)
	}
	idx, err := staticpoi.LoadIndex(cfg.Providers.DatasetPath)
	if err != nil {
		logger.Warn("failed to load static POI dataset, running with empty index",
			"path", cfg.Providers.DatasetPath, "error", err)
		return staticpoi.NewIndex(nil)
	}
	return idx
}

func newGeocodeProvider(cfg *config.Config) resolver.GeocodeProvider {
	if cfg.Providers.Offline {
		return staticpoi.NoData{}
	}
	return nominatim.NewClient(cfg.Providers.NominatimBaseURL, cfg.Providers.UserAgent)
}

func newAreaProvider(cfg *config.Config) resolver.AreaProvider {
	if cfg.Providers.Offline {
		return staticpoi.NoData{}
	}
	return nominatim.NewClient(cfg.Providers.NominatimBaseURL, cfg.Providers.UserAgent)
}

func newLocaleService(cfg *config.Config, logger *slog.Logger) locale.Service {
	if cfg.Providers.Offline {
		return locale.Static(locale.DefaultPartition)
	}
	svc, err := locale.NewService()
	if err != nil {
		logger.Warn("failed to initialize locale service, using default partition", "error", err)
		return locale.Static(locale.DefaultPartition)
	}
	return svc
}

func newRecordStore(cfg *config.Config, logger *slog.Logger) (store.RecordStore, error) {
	if cfg.Database.DSN == "" {
		logger.Info("no database configured, using in-memory record store")
		return store.NewMemoryStore(), nil
	}
	return store.NewGormStore(cfg.Database.DSN, logger)
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
