package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/muhammadheryan/inventory-service/constant"
)

type Config struct {
	Environment string
	StaticDir   string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Backend string

	// local file backend
	Path string

	// remote libsql backend
	URL       string
	AuthToken string

	// network backends (mysql, postgres)
	Host     string
	Port     int
	User     string
	Password string
	Name     string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int

	// ValidatePerMinute caps POST /users/validate attempts per client address.
	ValidatePerMinute int
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Load reads configuration from the environment. A .env file in the working directory,
// when present, seeds variables that are not already set.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("APP_ENV", constant.EnvProduction),
		StaticDir:   getEnv("STATIC_DIR", "public"),
		Server: ServerConfig{
			Port:            getEnv("PORT", "3000"),
			ReadTimeout:     getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:     getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Backend:         strings.ToLower(getEnv("DB_BACKEND", constant.BackendSQLite)),
			Path:            getEnv("DB_PATH", "local.db"),
			URL:             getEnv("TURSO_URL", ""),
			AuthToken:       getEnv("DB_TOKEN", ""),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 0),
			User:            getEnv("DB_USER", ""),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "inventory"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:              getEnv("REDIS_HOST", ""),
			Port:              getInt("REDIS_PORT", 6379),
			Password:          getEnv("REDIS_PASSWORD", ""),
			DB:                getInt("REDIS_DB", 0),
			ValidatePerMinute: getInt("VALIDATE_RATE_PER_MINUTE", 10),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", ""),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

// IsDevelopment gates verbose error bodies and the /debug endpoint.
func (c *Config) IsDevelopment() bool {
	return c.Environment == constant.EnvDevelopment
}

// GetDSN builds the data source name for the configured storage backend.
func (c *Config) GetDSN() (string, error) {
	db := c.Database
	switch db.Backend {
	case constant.BackendSQLite:
		return "file:" + db.Path + "?_pragma=busy_timeout(5000)", nil
	case constant.BackendLibSQL:
		if db.URL == "" {
			return "", fmt.Errorf("TURSO_URL is required for the %s backend", db.Backend)
		}
		u, err := url.Parse(db.URL)
		if err != nil {
			return "", fmt.Errorf("parse TURSO_URL: %w", err)
		}
		if db.AuthToken != "" {
			q := u.Query()
			q.Set("authToken", db.AuthToken)
			u.RawQuery = q.Encode()
		}
		return u.String(), nil
	case constant.BackendMySQL:
		port := db.Port
		if port == 0 {
			port = 3306
		}
		// clientFoundRows makes an UPDATE to an unchanged value still count the matched row
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&clientFoundRows=true",
			db.User, db.Password, db.Host, port, db.Name), nil
	case constant.BackendPostgres:
		port := db.Port
		if port == 0 {
			port = 5432
		}
		u := url.URL{
			Scheme:   "postgres",
			User:     url.UserPassword(db.User, db.Password),
			Host:     fmt.Sprintf("%s:%d", db.Host, port),
			Path:     "/" + db.Name,
			RawQuery: "sslmode=disable",
		}
		return u.String(), nil
	default:
		return "", fmt.Errorf("unsupported storage backend %q", db.Backend)
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
