package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (thresholds, intervals), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Jobs    JobsConfig
	Quality QualityConfig
	Clients ClientsConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"America/Detroit"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Detroit"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-14400"` // -4*60*60 (EDT)
}

// JobsConfig drives the trigger endpoints and the zone/ingestion schedulers.
type JobsConfig struct {
	TriggerSecret    string        `envconfig:"JOB_TRIGGER_SECRET" required:"true"`
	ClaimBatchSize   int           `envconfig:"ZONE_CLAIM_BATCH_SIZE" default:"10"`
	ClaimBatchMax    int           `envconfig:"ZONE_CLAIM_BATCH_MAX" default:"50"`
	LeaseDuration    time.Duration `envconfig:"ZONE_LEASE_DURATION" default:"10m"`
	RefreshInterval  time.Duration `envconfig:"ZONE_REFRESH_INTERVAL" default:"6h"`
	DiscoveryRadiusM int           `envconfig:"DISCOVERY_RADIUS_METERS" default:"8047"` // ~5 miles
	DiscoveryMax     int           `envconfig:"DISCOVERY_MAX_RESULTS" default:"20"`
	IngestWindowSize int           `envconfig:"INGEST_WINDOW_SIZE" default:"5"`
	SchedulerEnabled bool          `envconfig:"SCHEDULER_ENABLED" default:"false"`
	ZoneCronSpec     string        `envconfig:"ZONE_CRON_SPEC" default:"0 */6 * * *"`
	IngestCronSpec   string        `envconfig:"INGEST_CRON_SPEC" default:"30 */4 * * *"`
}

// QualityConfig holds the admission pipeline thresholds. The exact values are
// policy knobs, not correctness guarantees.
type QualityConfig struct {
	LowConfidenceFloor  float64       `envconfig:"QUALITY_LOW_CONFIDENCE_FLOOR" default:"0.5"`
	HighConfidenceFloor float64       `envconfig:"QUALITY_HIGH_CONFIDENCE_FLOOR" default:"0.7"`
	DedupWindow         time.Duration `envconfig:"QUALITY_DEDUP_WINDOW" default:"168h"` // 7 days
	FreshnessWindow     time.Duration `envconfig:"DEALS_FRESHNESS_WINDOW" default:"48h"`
	PriceHighCeiling    float64       `envconfig:"QUALITY_PRICE_HIGH_CEILING" default:"200"`
	PriceLowFloor       float64       `envconfig:"QUALITY_PRICE_LOW_FLOOR" default:"1"`
}

// ClientsConfig configures the external collaborator HTTP clients.
type ClientsConfig struct {
	GeocoderBaseURL    string        `envconfig:"GEOCODER_BASE_URL" required:"true"`
	GeocoderAPIKey     string        `envconfig:"GEOCODER_API_KEY" default:""`
	DiscoveryBaseURL   string        `envconfig:"DISCOVERY_BASE_URL" required:"true"`
	DiscoveryAPIKey    string        `envconfig:"DISCOVERY_API_KEY" default:""`
	ExtractorBaseURL   string        `envconfig:"EXTRACTOR_BASE_URL" required:"true"`
	ExtractorAPIKey    string        `envconfig:"EXTRACTOR_API_KEY" default:""`
	HTTPTimeout        time.Duration `envconfig:"CLIENT_HTTP_TIMEOUT" default:"30s"`
	MenuFetchTimeout   time.Duration `envconfig:"MENU_FETCH_TIMEOUT" default:"20s"`
	MenuFetchUserAgent string        `envconfig:"MENU_FETCH_USER_AGENT" default:"leafdeals-ingest/1.0"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "America/Detroit",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Detroit",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -14400,
		},
		Jobs: JobsConfig{
			TriggerSecret:    "test-trigger-secret",
			ClaimBatchSize:   10,
			ClaimBatchMax:    50,
			LeaseDuration:    10 * time.Minute,
			RefreshInterval:  6 * time.Hour,
			DiscoveryRadiusM: 8047,
			DiscoveryMax:     20,
			IngestWindowSize: 5,
		},
		Quality: QualityConfig{
			LowConfidenceFloor:  0.5,
			HighConfidenceFloor: 0.7,
			DedupWindow:         168 * time.Hour,
			FreshnessWindow:     48 * time.Hour,
			PriceHighCeiling:    200,
			PriceLowFloor:       1,
		},
	}
}
