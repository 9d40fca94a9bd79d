package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Order    OrderConfig    `yaml:"order"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`

	// RateLimitPerMinute caps requests per client IP. 0 disables limiting.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// OrderConfig holds order pricing and numbering settings.
// TaxRatePercent is applied to the subtotal; shipping is waived at or
// above FreeShippingThreshold.
type OrderConfig struct {
	TaxRatePercent        float64 `yaml:"tax_rate_percent"        env:"ORDER_TAX_RATE_PERCENT"        env-default:"16"`
	FreeShippingThreshold float64 `yaml:"free_shipping_threshold" env:"ORDER_FREE_SHIPPING_THRESHOLD" env-default:"50000"`
	FlatShippingFee       float64 `yaml:"flat_shipping_fee"       env:"ORDER_FLAT_SHIPPING_FEE"       env-default:"1500"`
	Currency              string  `yaml:"currency"                env:"ORDER_CURRENCY"                env-default:"KES"`
	NumberPrefix          string  `yaml:"number_prefix"           env:"ORDER_NUMBER_PREFIX"           env-default:"KDT"`
	QuoteNumberPrefix     string  `yaml:"quote_number_prefix"     env:"ORDER_QUOTE_NUMBER_PREFIX"     env-default:"QT"`
	NumberMaxAttempts     int     `yaml:"number_max_attempts"     env:"ORDER_NUMBER_MAX_ATTEMPTS"     env-default:"10"`
}

// CatalogConfig holds listing and lookup limits for the public catalog.
type CatalogConfig struct {
	DefaultPageSize int `yaml:"default_page_size" env:"CATALOG_DEFAULT_PAGE_SIZE" env-default:"20"`
	MaxPageSize     int `yaml:"max_page_size"     env:"CATALOG_MAX_PAGE_SIZE"     env-default:"100"`
	RelatedLimit    int `yaml:"related_limit"     env:"CATALOG_RELATED_LIMIT"     env-default:"4"`
	SearchLimit     int `yaml:"search_limit"      env:"CATALOG_SEARCH_LIMIT"      env-default:"20"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,Accept"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
