package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Functions FunctionsConfig `yaml:"functions" mapstructure:"functions"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Search    SearchConfig    `yaml:"search" mapstructure:"search"`
	Haul      HaulConfig      `yaml:"haul" mapstructure:"haul"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the Supabase Postgres backend.
type StoreConfig struct {
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// FunctionsConfig configures the Supabase edge-function client.
type FunctionsConfig struct {
	BaseURL     string  `yaml:"base_url" mapstructure:"base_url"`
	AnonKey     string  `yaml:"anon_key" mapstructure:"anon_key"`
	TimeoutSecs int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	RatePerSec  float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
}

// ServerConfig configures the dashboard API server.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// SearchConfig configures the spec-search component.
type SearchConfig struct {
	RecentDBPath string `yaml:"recent_db_path" mapstructure:"recent_db_path"`
	CatalogPath  string `yaml:"catalog_path" mapstructure:"catalog_path"`
}

// HaulConfig holds default haul economics rates. LoadMinutes is the total
// fixed load-and-unload time per round trip.
type HaulConfig struct {
	CostPerMile float64 `yaml:"cost_per_mile" mapstructure:"cost_per_mile"`
	LoadMinutes float64 `yaml:"load_minutes" mapstructure:"load_minutes"`
	TonsPerLoad float64 `yaml:"tons_per_load" mapstructure:"tons_per_load"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("BACKOFFICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("functions.timeout_secs", 30)
	v.SetDefault("functions.rate_per_sec", 5)
	v.SetDefault("search.recent_db_path", "spec-oracle.db")
	v.SetDefault("haul.cost_per_mile", 4.50)
	v.SetDefault("haul.load_minutes", 15)
	v.SetDefault("haul.tons_per_load", 22)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
