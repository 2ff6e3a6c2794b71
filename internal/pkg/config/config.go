package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cache   CacheConfig
	Pricing PricingConfig
	Catalog CatalogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" required:"true"`
	Password    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName      string `envconfig:"DB_NAME" required:"true"`
	SSLMode     string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone    string `envconfig:"DB_TIMEZONE" default:"Asia/Shanghai"`
	MaxConns    int32  `envconfig:"DB_MAX_CONNS" default:"20"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Shanghai"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"28800"` // 8*60*60
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"720h"`
}

// Empty RedisURL selects the in-process cache.
type CacheConfig struct {
	RedisURL          string        `envconfig:"CACHE_REDIS_URL"`
	ActiveCouponTTL   time.Duration `envconfig:"CACHE_ACTIVE_COUPON_TTL" default:"5m"`
	RedisReadTimeout  time.Duration `envconfig:"CACHE_REDIS_READ_TIMEOUT" default:"3s"`
	RedisWriteTimeout time.Duration `envconfig:"CACHE_REDIS_WRITE_TIMEOUT" default:"3s"`
	RedisDialTimeout  time.Duration `envconfig:"CACHE_REDIS_DIAL_TIMEOUT" default:"5s"`
}

// "Today" for coupon date windows is evaluated in BusinessTimeZone.
type PricingConfig struct {
	BusinessTimeZone  string `envconfig:"PRICING_TIMEZONE" default:"Asia/Shanghai"`
	ShippingThreshold string `envconfig:"PRICING_SHIPPING_THRESHOLD" default:"150"`
	ShippingFeeHigh   string `envconfig:"PRICING_SHIPPING_FEE_HIGH" default:"30"`
	ShippingFeeLow    string `envconfig:"PRICING_SHIPPING_FEE_LOW" default:"2"`
	AfterSalesRate    string `envconfig:"PRICING_AFTER_SALES_RATE" default:"0.02"`
	ManagementRate    string `envconfig:"PRICING_MANAGEMENT_RATE" default:"0.07"`
	PlatformRate      string `envconfig:"PRICING_PLATFORM_RATE" default:"0.01"`
}

type CatalogConfig struct {
	PageSize     int `envconfig:"CATALOG_PAGE_SIZE" default:"50"`
	MaxPageSize  int `envconfig:"CATALOG_MAX_PAGE_SIZE" default:"500"`
	MaxBatchSize int `envconfig:"CATALOG_MAX_BATCH_SIZE" default:"5000"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *PricingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.BusinessTimeZone)
	if err != nil {
		slog.Warn("unknown pricing timezone, falling back to UTC", "timezone", c.BusinessTimeZone, "error", err)
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return Config{}, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

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
			TimeZone: "Asia/Shanghai",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Shanghai",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 28800,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Cache: CacheConfig{
			ActiveCouponTTL: time.Minute,
		},
		Pricing: PricingConfig{
			BusinessTimeZone:  "Asia/Shanghai",
			ShippingThreshold: "150",
			ShippingFeeHigh:   "30",
			ShippingFeeLow:    "2",
			AfterSalesRate:    "0.02",
			ManagementRate:    "0.07",
			PlatformRate:      "0.01",
		},
		Catalog: CatalogConfig{
			PageSize:     50,
			MaxPageSize:  500,
			MaxBatchSize: 5000,
		},
	}
}
