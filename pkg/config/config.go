package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Cart    CartConfig
	Catalog CatalogConfig
	Session SessionConfig
	Redis   RedisConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string        `envconfig:"BOOKLIB_APP_ENV" required:"true"`
	Port         string        `envconfig:"BOOKLIB_APP_PORT" default:"8080"`
	LogLevel     string        `envconfig:"BOOKLIB_LOG_LEVEL" default:"info"`
	LogWarnStack bool          `envconfig:"BOOKLIB_LOG_WARN_STACK" default:"false"`
	CORSOrigins  []string      `envconfig:"BOOKLIB_CORS_ORIGINS" default:"http://localhost:3000"`
	ShutdownWait time.Duration `envconfig:"BOOKLIB_SHUTDOWN_TIMEOUT" default:"10s"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// CartConfig controls where carts live and how long they survive.
type CartConfig struct {
	Driver         string        `envconfig:"BOOKLIB_CART_DRIVER" default:"memory"`
	AbsoluteTTL    time.Duration `envconfig:"BOOKLIB_CART_ABSOLUTE_TTL" default:"24h"`
	SlidingTTL     time.Duration `envconfig:"BOOKLIB_CART_SLIDING_TTL" default:"30m"`
	SweepInterval  time.Duration `envconfig:"BOOKLIB_CART_SWEEP_INTERVAL" default:"5m"`
	SharedFallback bool          `envconfig:"BOOKLIB_CART_SHARED_FALLBACK" default:"false"`
}

// UsesRedis reports whether carts are kept in redis instead of process memory.
func (c CartConfig) UsesRedis() bool {
	return strings.EqualFold(strings.TrimSpace(c.Driver), CartDriverRedis)
}

type CatalogConfig struct {
	PageSize        int `envconfig:"BOOKLIB_CATALOG_PAGE_SIZE" default:"10"`
	SearchCacheSize int `envconfig:"BOOKLIB_CATALOG_SEARCH_CACHE_SIZE" default:"256"`
}

type SessionConfig struct {
	Secret     string        `envconfig:"BOOKLIB_SESSION_SECRET" required:"true"`
	Issuer     string        `envconfig:"BOOKLIB_SESSION_ISSUER" default:"booklibrary"`
	TTL        time.Duration `envconfig:"BOOKLIB_SESSION_TTL" default:"24h"`
	CookieName string        `envconfig:"BOOKLIB_SESSION_COOKIE" default:"booklib_session"`
	Secure     bool          `envconfig:"BOOKLIB_SESSION_SECURE" default:"false"`
}

type RedisConfig struct {
	URL          string        `envconfig:"BOOKLIB_REDIS_URL"`
	Address      string        `envconfig:"BOOKLIB_REDIS_ADDR"`
	Password     string        `envconfig:"BOOKLIB_REDIS_PASSWORD"`
	DB           int           `envconfig:"BOOKLIB_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BOOKLIB_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BOOKLIB_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BOOKLIB_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BOOKLIB_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BOOKLIB_REDIS_WRITE_TIMEOUT" default:"5s"`
}

func (c *Config) validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Cart.Driver)) {
	case CartDriverMemory, CartDriverRedis:
	default:
		return fmt.Errorf("%s must be %q or %q, got %q", EnvCartDriver, CartDriverMemory, CartDriverRedis, c.Cart.Driver)
	}
	if c.Cart.AbsoluteTTL <= 0 || c.Cart.SlidingTTL <= 0 {
		return fmt.Errorf("cart ttls must be positive")
	}
	if c.Cart.UsesRedis() && c.Redis.URL == "" && c.Redis.Address == "" {
		return fmt.Errorf("either %s or %s is required for the redis cart driver", EnvRedisURL, EnvRedisAddr)
	}
	if c.Catalog.PageSize <= 0 {
		return fmt.Errorf("%s must be positive", EnvCatalogPageSize)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("%s must be positive", EnvSessionTTL)
	}
	return nil
}
