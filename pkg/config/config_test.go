package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Viper ignora las variables vacías: equivalen a no definidas.
	for _, key := range []string{"APP_NAME", "STORAGE_DRIVER", "WRITE_MODE", "HTTP_PORT", "DB_MAX_CONNS", "CORS_ALLOW_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "restaurant-menu-api", cfg.App.Name)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "atomic", cfg.Storage.WriteMode)
	assert.Equal(t, 8000, cfg.HTTP.Port)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, "*", cfg.HTTP.CORSAllowOrigins)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("APP_NAME", "menu-test")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("WRITE_MODE", "compensate")
	t.Setenv("HTTP_PORT", "9001")
	t.Setenv("DB_MAX_CONNS", "4")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "menu-test", cfg.App.Name)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "compensate", cfg.Storage.WriteMode)
	assert.Equal(t, 9001, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:9001", cfg.HTTP.Addr())
	assert.Equal(t, 4, cfg.DB.MaxConns)
}

func TestLoad_InvalidWriteMode(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("WRITE_MODE", "eventual")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WRITE_MODE")
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mysql")
	t.Setenv("WRITE_MODE", "atomic")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_DRIVER")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "menu", Password: "p@ss:word", DBName: "menu", SSLMode: "disable"}
	assert.Equal(t, "postgres://menu:p%40ss%3Aword@db:5432/menu?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://other/db"
	assert.Equal(t, "postgres://other/db", c.ConnectionString())
}
