package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/usecase/thread"
)

const (
	defaultAddress        = ":9090"
	defaultTimeout        = 30
	defaultCacheDB        = 0
	defaultBloomBitSize   = 10000000
	defaultDBMaxRetry     = 10
	defaultLikeCountTTL   = 300
	defaultThreadCacheTTL = 600
	defaultFanOutLimit    = thread.DefaultFanOutLimit
)

type Config struct {
	ServerAddress  string        `validate:"required"`
	ContextTimeout time.Duration `validate:"gt=0"`

	DatabaseHost        string `validate:"required"`
	DatabasePort        string `validate:"required,numeric"`
	DatabaseUser        string `validate:"required"`
	DatabasePass        string
	DatabaseName        string `validate:"required"`
	DatabaseAutoMigrate bool
	DBMaxRetry          int `validate:"gte=1"`

	CacheHost string `validate:"required"`
	CachePort string `validate:"required,numeric"`
	CachePass string
	CacheDB   int `validate:"gte=0,lte=15"`

	LikeCountTTL   time.Duration `validate:"gt=0"`
	ThreadCacheTTL time.Duration `validate:"gt=0"`
	BloomBitSize   uint64        `validate:"gt=0"`

	JWTSecret string `validate:"required"`

	LogLevel  string `validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat string `validate:"oneof=text json"`

	DetailFanOutLimit int `validate:"gte=1"`
}

// Load reads an optional .env file, then the environment. Unparsable numbers
// fall back to their defaults; the result is validated before it is returned.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Debugf("no .env file loaded: %v", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds the config from the given lookup function.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		ServerAddress:       stringOr(getenv("SERVER_ADDRESS"), defaultAddress),
		ContextTimeout:      seconds(getenv, "CONTEXT_TIMEOUT", defaultTimeout),
		DatabaseHost:        getenv("DATABASE_HOST"),
		DatabasePort:        getenv("DATABASE_PORT"),
		DatabaseUser:        getenv("DATABASE_USER"),
		DatabasePass:        getenv("DATABASE_PASS"),
		DatabaseName:        getenv("DATABASE_NAME"),
		DatabaseAutoMigrate: boolean(getenv, "DATABASE_AUTO_MIGRATE"),
		DBMaxRetry:          integer(getenv, "DB_MAX_RETRY", defaultDBMaxRetry),
		CacheHost:           getenv("CACHE_HOST"),
		CachePort:           getenv("CACHE_PORT"),
		CachePass:           getenv("CACHE_PASS"),
		CacheDB:             integer(getenv, "CACHE_DB", defaultCacheDB),
		LikeCountTTL:        seconds(getenv, "LIKE_COUNT_TTL", defaultLikeCountTTL),
		ThreadCacheTTL:      seconds(getenv, "THREAD_CACHE_TTL", defaultThreadCacheTTL),
		BloomBitSize:        defaultBloomBitSize,
		JWTSecret:           getenv("JWT_SECRET"),
		LogLevel:            stringOr(getenv("LOG_LEVEL"), "info"),
		LogFormat:           stringOr(getenv("LOG_FORMAT"), "text"),
		DetailFanOutLimit:   integer(getenv, "DETAIL_FANOUT_LIMIT", defaultFanOutLimit),
	}

	if s := getenv("BLOOM_FILTER_SIZE"); s != "" {
		size, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			logrus.Warnf("failed to parse BLOOM_FILTER_SIZE, using default size")
		} else {
			cfg.BloomBitSize = size
		}
	}

	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// DSN is the go-sql-driver/mysql data source name.
func (c *Config) DSN() string {
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", c.DatabaseUser, c.DatabasePass, c.DatabaseHost, c.DatabasePort, c.DatabaseName, val.Encode())
}

func (c *Config) CacheAddr() string {
	return c.CacheHost + ":" + c.CachePort
}

// SetupLogger applies level and format to the standard logrus logger.
func (c *Config) SetupLogger() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

func stringOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func integer(getenv func(string) string, key string, def int) int {
	s := getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		logrus.Warnf("failed to parse %s, using default %d", key, def)
		return def
	}
	return v
}

func seconds(getenv func(string) string, key string, def int) time.Duration {
	return time.Duration(integer(getenv, key, def)) * time.Second
}

func boolean(getenv func(string) string, key string) bool {
	v, err := strconv.ParseBool(getenv(key))
	return err == nil && v
}
