package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	sharedConfig "jstore/internal/shared/config"
)

type Config struct {
	Server      sharedConfig.ServerConfig      `mapstructure:"server"`
	Database    sharedConfig.DatabaseConfig    `mapstructure:"database"`
	Logger      sharedConfig.LoggerConfig      `mapstructure:"logger"`
	Redis       sharedConfig.RedisConfig       `mapstructure:"redis"`
	MercadoPago sharedConfig.MercadoPagoConfig `mapstructure:"mercadopago"`
	Product     sharedConfig.ProductConfig     `mapstructure:"product"`
	Download    sharedConfig.DownloadConfig    `mapstructure:"download"`
	Payment     sharedConfig.PaymentConfig     `mapstructure:"payment"`
	RateLimit   sharedConfig.RateLimitConfig   `mapstructure:"ratelimit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load loads configuration from file and environment variables
func Load(env string) (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../configs")
	viper.AddConfigPath("../../configs")

	viper.SetEnvPrefix("JSTORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		viper.Set("server.mode", env)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("server.base_url", "http://localhost:8080")
	viper.SetDefault("server.frontend_base_url", "http://localhost:3000")
	viper.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Database defaults
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 3306)
	viper.SetDefault("database.username", "jstore")
	viper.SetDefault("database.database", "jstore")
	viper.SetDefault("database.max_idle_conns", 10)
	viper.SetDefault("database.max_open_conns", 100)
	viper.SetDefault("database.conn_max_lifetime", 3600)

	// Logger defaults
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")
	viper.SetDefault("logger.output_path", "stdout")

	// Redis defaults
	viper.SetDefault("redis.enabled", false)
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)

	// MercadoPago defaults
	viper.SetDefault("mercadopago.base_url", "https://api.mercadopago.com")
	viper.SetDefault("mercadopago.timeout_seconds", 10)

	// Product defaults
	viper.SetDefault("product.name", "JStore License")
	viper.SetDefault("product.price_cents", 4990)
	viper.SetDefault("product.currency", "BRL")

	// Download defaults
	viper.SetDefault("download.tutorial_path", "./content/tutorial.md")

	// Payment defaults
	viper.SetDefault("payment.allow_status_regression", false)

	// Rate limit defaults
	viper.SetDefault("ratelimit.enabled", false)
	viper.SetDefault("ratelimit.requests", 60)
	viper.SetDefault("ratelimit.window_seconds", 60)
}
