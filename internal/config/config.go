package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config holds all configuration for the service
type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Analysis AnalysisConfig
	Factor   FactorConfig
	Logging  LoggingConfig
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	Port         string `validate:"required"`
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// ProviderConfig holds configuration for the upstream market-data provider
type ProviderConfig struct {
	SpotURL   string `validate:"required,url"`
	KlineURL  string `validate:"required,url"`
	Timeout   time.Duration
	StartDate string `validate:"required,len=8,numeric"`
	Adjust    string `validate:"required,oneof=none qfq hfq"`
}

// AnalysisConfig holds configuration for the per-code analysis endpoint
type AnalysisConfig struct {
	DefaultSymbol string `validate:"required"`
}

// FactorConfig holds configuration for the fixed-instrument factor endpoint
type FactorConfig struct {
	Symbol string `validate:"required"`
}

// LoggingConfig holds logging specific configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// LoadConfig loads the configuration from file and environment variables
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read config file
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Environment variables override
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", "10s")
	v.SetDefault("server.writeTimeout", "10s")
	v.SetDefault("server.idleTimeout", "120s")

	// Provider defaults
	v.SetDefault("provider.spotUrl", "https://push2.eastmoney.com/api/qt/clist/get")
	v.SetDefault("provider.klineUrl", "https://push2his.eastmoney.com/api/qt/stock/kline/get")
	v.SetDefault("provider.timeout", "30s")
	v.SetDefault("provider.startDate", "20240101")
	v.SetDefault("provider.adjust", "qfq")

	// Endpoint defaults
	v.SetDefault("analysis.defaultSymbol", "02556")
	v.SetDefault("factor.symbol", "02556")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}
