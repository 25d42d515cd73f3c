package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout    = 30
	defaultAddress    = ":9090"
	defaultRedisDB    = 0
	defaultJWTHours   = 24
	defaultDBDriver   = "mysql"
	defaultLikeStore  = "mysql"
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"
	defaultDBMaxRetry = 10
)

type Database struct {
	Driver   string `validate:"oneof=mysql postgres"`
	Host     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	User     string `validate:"required"`
	Pass     string
	Name     string `validate:"required"`
	MaxRetry int    `validate:"min=1"`
	Migrate  bool
}

// DSN renders the connection string for the configured driver.
func (d Database) DSN() string {
	if d.Driver == "postgres" {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			d.Host, d.Port, d.User, d.Pass, d.Name)
	}
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", d.User, d.Pass, d.Host, d.Port, d.Name)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", "UTC")
	return fmt.Sprintf("%s?%s", connection, val.Encode())
}

// Redis holds the like store connection, used only when LIKE_STORE=redis.
type Redis struct {
	Host    string `validate:"required_if=Enabled true"`
	Port    string `validate:"required_if=Enabled true"`
	Pass    string
	DB      int `validate:"min=0"`
	Enabled bool
}

func (c Redis) Addr() string {
	return c.Host + ":" + c.Port
}

type Config struct {
	Address        string        `validate:"required"`
	ContextTimeout time.Duration `validate:"gt=0"`
	JWTSecret      string        `validate:"required"`
	JWTTTL         time.Duration `validate:"gt=0"`
	LikeStore      string        `validate:"oneof=mysql redis"`
	LogLevel       logrus.Level
	LogFormat      string `validate:"oneof=text json"`
	Database       Database
	Redis          Redis
}

// Load reads .env (if any) and the environment. Unparsable numbers fall back to defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, reading the environment only")
	}

	cfg := &Config{
		Address:        getString("SERVER_ADDRESS", defaultAddress),
		ContextTimeout: time.Duration(getInt("CONTEXT_TIMEOUT", defaultTimeout)) * time.Second,
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTTTL:         time.Duration(getInt("JWT_EXPIRE_HOURS", defaultJWTHours)) * time.Hour,
		LikeStore:      strings.ToLower(getString("LIKE_STORE", defaultLikeStore)),
		LogFormat:      strings.ToLower(getString("LOG_FORMAT", defaultLogFormat)),
		Database: Database{
			Driver:   strings.ToLower(getString("DATABASE_DRIVER", defaultDBDriver)),
			Host:     os.Getenv("DATABASE_HOST"),
			Port:     os.Getenv("DATABASE_PORT"),
			User:     os.Getenv("DATABASE_USER"),
			Pass:     os.Getenv("DATABASE_PASS"),
			Name:     os.Getenv("DATABASE_NAME"),
			MaxRetry: getInt("DATABASE_MAX_RETRY", defaultDBMaxRetry),
			Migrate:  getBool("AUTO_MIGRATE", false),
		},
		Redis: Redis{
			Host: os.Getenv("REDIS_HOST"),
			Port: os.Getenv("REDIS_PORT"),
			Pass: os.Getenv("REDIS_PASS"),
			DB:   getInt("REDIS_DB", defaultRedisDB),
		},
	}
	cfg.Redis.Enabled = cfg.LikeStore == "redis"

	level, err := logrus.ParseLevel(getString("LOG_LEVEL", defaultLogLevel))
	if err != nil {
		logrus.Warnf("failed to parse log level, using default %s", defaultLogLevel)
		level = logrus.InfoLevel
	}
	cfg.LogLevel = level

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// ConfigureLogger applies the level and format to the package-level logrus logger.
func (c *Config) ConfigureLogger() {
	logrus.SetLevel(c.LogLevel)
	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	s := os.Getenv(key)
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

func getBool(key string, def bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		logrus.Warnf("failed to parse %s, using default %t", key, def)
		return def
	}
	return v
}
