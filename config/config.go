package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds everything read from the environment at startup.
type Config struct {
	Port            string
	DBDriver        string
	DBDSN           string
	OrderServiceURL string
	AllowedOrigin   string
	PollInterval    time.Duration
}

// Load reads the configuration from environment variables, applying
// development defaults. Call godotenv.Load before this when a .env file is
// in play.
func Load() Config {
	return Config{
		Port:            getenv("PORT", "8080"),
		DBDriver:        getenv("DB_DRIVER", "sqlite"),
		DBDSN:           getenv("DB_DSN", "tastetrack.db"),
		OrderServiceURL: getenv("ORDER_SERVICE_URL", "http://localhost:8081/api"),
		AllowedOrigin:   getenv("ALLOWED_ORIGIN", "http://localhost:5173"),
		PollInterval:    getenvSeconds("POLL_INTERVAL_SECONDS", 15),
	}
}

// InitDB opens the local mirror database. SQLite is the default; MySQL is
// available for deployments that already run one.
func InitDB(cfg Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBDSN), &gorm.Config{})
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvSeconds(key string, def int) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Second
		}
	}
	return time.Duration(def) * time.Second
}
