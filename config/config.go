package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	// JoinPolicyIgnore makes a repeated join a no-op that still answers 200.
	JoinPolicyIgnore = "ignore"
	// JoinPolicyReject answers a repeated join with 409.
	JoinPolicyReject = "reject"
)

type Config struct {
	Port    string
	GinMode string
	BaseURL string

	// ✅ Database
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBPath     string // sqlite file, used when DBDriver == sqlite
	DBLogLevel string

	// ✅ Bearer tokens handed out by /api/v1/token
	JWTAccessSecret   string
	JWTAccessTTLHours int
	BcryptCost        int

	// ✅ Redis Config (rate limiter store)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// ✅ Kafka Config (domain notifications)
	KafkaBrokers []string
	KafkaTopic   string

	RateLimitPerMinute int
	CORSOrigins        []string

	// TrustedProxies lists proxy IPs/CIDRs whose X-Forwarded-For is believed
	TrustedProxies []string

	// Timezone decides what "today" means when listing events.
	Timezone            string
	JoinDuplicatePolicy string

	// AuthzStrict answers failed admin checks with 403 instead of 400.
	AuthzStrict bool

	LogLevel  string
	LogFormat string
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file, using environment variables")
	}

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		BaseURL: strings.TrimRight(os.Getenv("BASE_URL"), "/"),

		DBDriver:   strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     getEnv("DB_NAME", "events"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBPath:     getEnv("DB_PATH", "db.sqlite3"),
		DBLogLevel: getEnv("DB_LOG_LEVEL", "warn"),

		JWTAccessSecret:   os.Getenv("JWT_ACCESS_SECRET"),
		JWTAccessTTLHours: getEnvInt("JWT_ACCESS_TTL_HOURS", 24),
		BcryptCost:        getEnvInt("BCRYPT_COST", 10),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "event-management.domain"),

		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 100),
		CORSOrigins:        splitList(getEnv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
		TrustedProxies:     splitList(os.Getenv("TRUSTED_PROXIES")),

		Timezone:            getEnv("TIMEZONE", "UTC"),
		JoinDuplicatePolicy: strings.ToLower(getEnv("JOIN_DUPLICATE_POLICY", JoinPolicyIgnore)),
		AuthzStrict:         getEnvBool("AUTHZ_STRICT", false),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	var errs []error

	switch c.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver))
	}

	switch c.JoinDuplicatePolicy {
	case JoinPolicyIgnore, JoinPolicyReject:
	default:
		errs = append(errs, fmt.Errorf("unsupported JOIN_DUPLICATE_POLICY %q", c.JoinDuplicatePolicy))
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err))
	}

	if c.JWTAccessSecret == "" && c.GinMode == "release" {
		errs = append(errs, errors.New("JWT_ACCESS_SECRET is required in release mode"))
	}

	if c.JWTAccessTTLHours <= 0 {
		errs = append(errs, errors.New("JWT_ACCESS_TTL_HOURS must be positive"))
	}

	for _, proxy := range c.TrustedProxies {
		if net.ParseIP(proxy) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(proxy); err != nil {
			errs = append(errs, fmt.Errorf("invalid TRUSTED_PROXIES entry %q", proxy))
		}
	}

	// bcrypt accepts 4..31
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		errs = append(errs, fmt.Errorf("BCRYPT_COST must be between 4 and 31, got %d", c.BcryptCost))
	}

	return errors.Join(errs...)
}

// Location returns the configured time zone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// TokenSecret returns the JWT signing secret. Debug setups without a secret get a fixed one.
func (c *Config) TokenSecret() string {
	if c.JWTAccessSecret == "" {
		return "dev-only-insecure-secret"
	}
	return c.JWTAccessSecret
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
