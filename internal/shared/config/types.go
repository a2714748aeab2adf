package config

import "fmt"

type ServerConfig struct {
	Host            string   `mapstructure:"host"`
	Port            int      `mapstructure:"port"`
	Mode            string   `mapstructure:"mode"`
	BaseURL         string   `mapstructure:"base_url"`
	FrontendBaseURL string   `mapstructure:"frontend_base_url"`
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// MercadoPagoConfig configures the hosted-checkout provider client.
// BaseURL is overridable so tests can point the client at a local server.
type MercadoPagoConfig struct {
	AccessToken    string `mapstructure:"access_token"`
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// ProductConfig is the single-product catalog: the name and price are
// snapshotted onto every order at creation time.
type ProductConfig struct {
	Name       string `mapstructure:"name"`
	PriceCents int64  `mapstructure:"price_cents"`
	Currency   string `mapstructure:"currency"`
}

type DownloadConfig struct {
	InstallerURL string `mapstructure:"installer_url"`
	TutorialPath string `mapstructure:"tutorial_path"`
}

// PaymentConfig holds the reconciliation policy. With AllowStatusRegression
// off (the default), orders in a final status ignore stale notifications that
// would move them backwards.
type PaymentConfig struct {
	AllowStatusRegression bool `mapstructure:"allow_status_regression"`
}

type RateLimitConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	Requests      int  `mapstructure:"requests"`
	WindowSeconds int  `mapstructure:"window_seconds"`
}
