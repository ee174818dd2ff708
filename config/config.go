package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all client configuration.
type Config struct {
	Environment EnvironmentConfig
	Logger      LoggerConfig

	Backend         BackendConfig
	Storage         StorageConfig
	Image           ImageConfig
	Planner         PlannerConfig
	GoogleCalendar  GoogleCalendarConfig
	RequestTracking RequestTrackingConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type BackendConfig struct {
	BaseURL         string
	Timeout         time.Duration
	RateLimitPerSec float64
	RateLimitBurst  int
	LoginForm       bool // send /login credentials as an OAuth2 password form
}

// Storage drivers.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

type StorageConfig struct {
	Driver        string
	Path          string // directory for "file", database file for "sqlite"
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisPrefix   string
}

type ImageConfig struct {
	MaxDimension int
	JPEGQuality  int
}

type PlannerConfig struct {
	Timezone string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string // saved OAuth token for desktop credentials
	CalendarID      string
}

// Enabled reports whether calendar export is configured.
func (c GoogleCalendarConfig) Enabled() bool {
	return c.CredentialsPath != ""
}

type RequestTrackingConfig struct {
	Size int
	TTL  time.Duration
}

// Load reads configuration. When configFile is empty, config.yaml is searched
// in ./config, . and $HOME/.config/wardrobe. Environment variables override
// file values with "." replaced by "_" (BACKEND_BASE_URL, STORAGE_DRIVER, ...).
func Load(configFile string) (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "wardrobe"))
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Backend.BaseURL = strings.TrimRight(v.GetString("backend.base_url"), "/")
	cfg.Backend.Timeout = v.GetDuration("backend.timeout")
	cfg.Backend.RateLimitPerSec = v.GetFloat64("backend.rate_limit_per_sec")
	cfg.Backend.RateLimitBurst = v.GetInt("backend.rate_limit_burst")
	cfg.Backend.LoginForm = v.GetBool("backend.login_form")
	// Same variable the web client reads.
	if baseURL := v.GetString("vite_base_url"); baseURL != "" {
		cfg.Backend.BaseURL = strings.TrimRight(baseURL, "/")
	}

	cfg.Storage.Driver = strings.ToLower(v.GetString("storage.driver"))
	cfg.Storage.Path = expandHome(v.GetString("storage.path"))
	cfg.Storage.RedisAddr = v.GetString("storage.redis_addr")
	cfg.Storage.RedisPassword = expandEnvVar(v, v.GetString("storage.redis_password"))
	cfg.Storage.RedisDB = v.GetInt("storage.redis_db")
	cfg.Storage.RedisPrefix = v.GetString("storage.redis_prefix")

	cfg.Image.MaxDimension = v.GetInt("image.max_dimension")
	cfg.Image.JPEGQuality = v.GetInt("image.jpeg_quality")

	cfg.Planner.Timezone = v.GetString("planner.timezone")

	cfg.GoogleCalendar.CredentialsPath = expandHome(expandEnvVar(v, v.GetString("google_calendar.credentials_path")))
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.TokenPath = expandHome(v.GetString("google_calendar.token_path"))
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}
	if cfg.GoogleCalendar.TokenPath == "" && cfg.GoogleCalendar.CredentialsPath != "" {
		cfg.GoogleCalendar.TokenPath = filepath.Join(filepath.Dir(cfg.GoogleCalendar.CredentialsPath), "token.json")
	}

	cfg.RequestTracking.Size = v.GetInt("request_tracking.size")
	cfg.RequestTracking.TTL = v.GetDuration("request_tracking.ttl")

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("backend.base_url", "https://wardrobe-system-backend.onrender.com")
	v.SetDefault("backend.timeout", "30s")
	v.SetDefault("backend.rate_limit_per_sec", 0)
	v.SetDefault("backend.rate_limit_burst", 5)
	v.SetDefault("backend.login_form", false)

	v.SetDefault("storage.driver", StorageFile)
	v.SetDefault("storage.path", "~/.config/wardrobe/store")
	v.SetDefault("storage.redis_prefix", "wardrobe:")

	v.SetDefault("image.max_dimension", 1600)
	v.SetDefault("image.jpeg_quality", 85)

	v.SetDefault("planner.timezone", "Local")

	v.SetDefault("google_calendar.calendar_id", "primary")

	v.SetDefault("request_tracking.size", 1024)
	v.SetDefault("request_tracking.ttl", "10m")
}

func validate(cfg *Config) error {
	if cfg.Backend.BaseURL == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	switch cfg.Storage.Driver {
	case StorageFile, StorageSQLite:
		if cfg.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for driver %q", cfg.Storage.Driver)
		}
	case StorageMemory:
	case StorageRedis:
		if cfg.Storage.RedisAddr == "" {
			return fmt.Errorf("storage.redis_addr is required for driver %q", cfg.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage.driver %q", cfg.Storage.Driver)
	}
	if cfg.Image.JPEGQuality < 1 || cfg.Image.JPEGQuality > 100 {
		return fmt.Errorf("image.jpeg_quality must be between 1 and 100, got %d", cfg.Image.JPEGQuality)
	}
	if cfg.Planner.Timezone != "" {
		if _, err := time.LoadLocation(cfg.Planner.Timezone); err != nil {
			return fmt.Errorf("planner.timezone: %w", err)
		}
	}
	return nil
}

// Location returns the planner time zone, defaulting to time.Local.
func (c PlannerConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}
	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
