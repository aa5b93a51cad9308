package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "ORDER_SERVICE_URL", "POLL_INTERVAL_SECONDS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "http://localhost:8081/api", cfg.OrderServiceURL)
	assert.Equal(t, 15*time.Second, cfg.PollInterval)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ORDER_SERVICE_URL", "https://orders.example.com/api")
	t.Setenv("POLL_INTERVAL_SECONDS", "5")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://orders.example.com/api", cfg.OrderServiceURL)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
}

func TestLoadIgnoresInvalidPollInterval(t *testing.T) {
	t.Setenv("POLL_INTERVAL_SECONDS", "not-a-number")

	assert.Equal(t, 15*time.Second, Load().PollInterval)
}

func TestInitDBRejectsUnknownDriver(t *testing.T) {
	_, err := InitDB(Config{DBDriver: "postgres"})
	assert.Error(t, err)
}

func TestInitDBSQLiteMemory(t *testing.T) {
	db, err := InitDB(Config{DBDriver: "sqlite", DBDSN: ":memory:"})
	assert.NoError(t, err)
	assert.NotNil(t, db)
}
