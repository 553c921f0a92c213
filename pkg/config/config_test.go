package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, SourceERP, cfg.App.Source)
	assert.Equal(t, "http://localhost:8080", cfg.ERP.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.ERP.Timeout)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("ERP_BASE_URL", "http://erp.local:9090/")
	v.Set("ERP_TIMEOUT_SECONDS", "3")
	v.Set("KARDEX_SOURCE", "Postgres")
	v.Set("HTTP_PORT", "abc")

	cfg, err := fromViper(v)
	require.NoError(t, err)

	assert.Equal(t, "http://erp.local:9090", cfg.ERP.BaseURL, "sin barra final")
	assert.Equal(t, 3*time.Second, cfg.ERP.Timeout)
	assert.Equal(t, SourcePostgres, cfg.App.Source)
	assert.Equal(t, 3000, cfg.HTTP.Port, "valor no numérico usa el default")
}

func TestFromViper_SourceInvalida(t *testing.T) {
	v := viper.New()
	v.Set("KARDEX_SOURCE", "mysql")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "estoque", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/estoque?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
