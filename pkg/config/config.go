package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every Bestools environment variable.
const EnvPrefix = "BESTOOLS"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Stripe        StripeConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BESTOOLS_APP_ENV" required:"true"`
	Port         string `envconfig:"BESTOOLS_APP_PORT" default:"8000"`
	LogLevel     string `envconfig:"BESTOOLS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BESTOOLS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"BESTOOLS_DB_DSN"`

	Host     string `envconfig:"BESTOOLS_DB_HOST"`
	Port     int    `envconfig:"BESTOOLS_DB_PORT" default:"5432"`
	User     string `envconfig:"BESTOOLS_DB_USER"`
	Password string `envconfig:"BESTOOLS_DB_PASSWORD"`
	Name     string `envconfig:"BESTOOLS_DB_NAME"`
	SSLMode  string `envconfig:"BESTOOLS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BESTOOLS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BESTOOLS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BESTOOLS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BESTOOLS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"BESTOOLS_REDIS_URL"`
	Address      string        `envconfig:"BESTOOLS_REDIS_ADDR"`
	Password     string        `envconfig:"BESTOOLS_REDIS_PASSWORD"`
	DB           int           `envconfig:"BESTOOLS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BESTOOLS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BESTOOLS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BESTOOLS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BESTOOLS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BESTOOLS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret          string `envconfig:"BESTOOLS_JWT_SECRET" required:"true"`
	Issuer          string `envconfig:"BESTOOLS_JWT_ISSUER" default:"bestools"`
	ExpirationHours int    `envconfig:"BESTOOLS_JWT_EXPIRATION_HOURS" default:"24"`
}

// AccessTokenTTL returns the configured token validity window.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationHours <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationHours) * time.Hour
}

type AuthRateLimitConfig struct {
	TokenWindow     time.Duration `envconfig:"BESTOOLS_AUTH_RATE_LIMIT_TOKEN_WINDOW" default:"1m"`
	TokenEmailLimit int           `envconfig:"BESTOOLS_AUTH_RATE_LIMIT_TOKEN_EMAIL_LIMIT" default:"10"`
	TokenIPLimit    int           `envconfig:"BESTOOLS_AUTH_RATE_LIMIT_TOKEN_IP_LIMIT" default:"30"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"BESTOOLS_AUTO_MIGRATE" default:"false"`
}

type StripeConfig struct {
	APIKey string `envconfig:"BESTOOLS_STRIPE_API_KEY"`
	Env    string `envconfig:"BESTOOLS_STRIPE_ENV" default:"test"`
}

// Environment returns the normalized Stripe environment (test/live).
func (s StripeConfig) Environment() string {
	env := strings.TrimSpace(strings.ToLower(s.Env))
	if env == "" {
		return "test"
	}
	return env
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	parts := map[string]string{
		"BESTOOLS_DB_HOST": db.Host,
		"BESTOOLS_DB_USER": db.User,
		"BESTOOLS_DB_NAME": db.Name,
	}
	for _, key := range []string{"BESTOOLS_DB_HOST", "BESTOOLS_DB_USER", "BESTOOLS_DB_NAME"} {
		if parts[key] == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either BESTOOLS_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
