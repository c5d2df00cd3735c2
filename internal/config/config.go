package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Log       LogConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Providers ProvidersConfig
	Resolver  ResolverConfig
	Migrate   MigrateConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// DatabaseConfig holds the record store connection. An empty DSN selects the
// in-memory record store.
type DatabaseConfig struct {
	DSN string
}

// RedisConfig holds the optional shared cache tier. An empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CacheConfig holds the label cache layout.
type CacheConfig struct {
	Dir            string
	MemoryCapacity int
	FileCeiling    int
	SweepMinutes   int
}

// ProvidersConfig holds external provider settings.
type ProvidersConfig struct {
	FoursquareAPIKey string
	NominatimBaseURL string
	UserAgent        string
	// Offline swaps the Foursquare provider for the bundled static index.
	Offline bool
	// DatasetPath locates the static POI dataset used in offline mode.
	DatasetPath string
}

// ResolverConfig seeds the runtime tuning store.
type ResolverConfig struct {
	MaxRadiusMeters        float64
	SnapWindowMeters       float64
	DenseCompetitionMeters float64
	MinConfidenceDirect    float64
	MinConfidenceHedged    float64
	PreferredCategories    []string
	AreaOnlyOverride       bool
}

// MigrateConfig holds backfill migrator knobs.
type MigrateConfig struct {
	Enabled        bool
	StartDelaySecs int
	BatchSize      int
	MaxBatches     int
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.hushmap")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("database.dsn", "")
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("cache.dir", "./data/labelcache")
	viper.SetDefault("cache.memoryCapacity", 512)
	viper.SetDefault("cache.fileCeiling", 4096)
	viper.SetDefault("cache.sweepMinutes", 30)
	viper.SetDefault("providers.foursquareAPIKey", "")
	viper.SetDefault("providers.nominatimBaseURL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("providers.userAgent", "hushmap-label-engine/1.0")
	viper.SetDefault("providers.offline", false)
	viper.SetDefault("providers.datasetPath", "./data/pois.json")
	viper.SetDefault("resolver.maxRadiusMeters", 120.0)
	viper.SetDefault("resolver.snapWindowMeters", 12.0)
	viper.SetDefault("resolver.denseCompetitionMeters", 35.0)
	viper.SetDefault("resolver.minConfidenceDirect", 0.62)
	viper.SetDefault("resolver.minConfidenceHedged", 0.45)
	viper.SetDefault("resolver.preferredCategories", []string{
		"park", "cafe", "restaurant", "pub", "bar", "hotel", "museum", "library",
		"theatre", "cinema", "gym", "supermarket",
	})
	viper.SetDefault("resolver.areaOnlyOverride", false)
	viper.SetDefault("migrate.enabled", true)
	viper.SetDefault("migrate.startDelaySecs", 20)
	viper.SetDefault("migrate.batchSize", 50)
	viper.SetDefault("migrate.maxBatches", 4)

	// Read from environment variables
	viper.SetEnvPrefix("HUSHMAP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
