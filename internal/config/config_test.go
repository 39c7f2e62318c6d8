package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
dbname = "clinic"

[auth]
jwt_secret = "file-secret"

[admin]
emails = ["owner@clinic.ph"]

[clinic]
timezone = "Asia/Manila"
branches = ["Villasis", "Carmen", "Dagupan"]
slot_grid = ["1:00 PM", "9:00 AM", "9:30 AM"]

[dashboard]
page_size = 10
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 10, cfg.Dashboard.PageSize)
	assert.Equal(t, []string{"owner@clinic.ph"}, cfg.Admin.Emails)
	assert.Contains(t, cfg.Database.DSN(), "dbname=clinic")

	clinic, err := cfg.Clinic.Build()
	require.NoError(t, err)
	assert.Equal(t, []string{"villasis", "carmen", "dagupan"}, clinic.Branches)
	assert.Equal(t, []string{"9:00 AM", "9:30 AM", "1:00 PM"}, clinic.SlotGrid.Labels())
	assert.Equal(t, "Asia/Manila", clinic.Location.String())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("ADMIN_EMAILS", "a@clinic.ph, b@clinic.ph ,")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$hash")

	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, []string{"a@clinic.ph", "b@clinic.ph"}, cfg.Admin.Emails)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Equal(t, "$2a$10$hash", cfg.Admin.PasswordHash)
}

func TestLoad_DefaultGrid(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[auth]\njwt_secret = \"x\"\n"))
	require.NoError(t, err)

	clinic, err := cfg.Clinic.Build()
	require.NoError(t, err)
	assert.Len(t, clinic.SlotGrid, 17)
	assert.Equal(t, []string{"villasis", "carmen"}, clinic.Branches)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load(writeConfig(t, "[server]\nhttp_port = 8080\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeConfig(t, "[auth]\njwt_secret = \"x\"\n[clinic]\nslot_grid = [\"noon\"]\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(writeConfig(t, "[auth]\njwt_secret = \"x\"\n[clinic]\ntimezone = \"Mars/Olympus\"\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
