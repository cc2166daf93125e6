package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromVarsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "depot.tfvars")
	content := `
postgresql_server_name = "db.example.com"
postgresql_db_name     = "depot"
postgresql_admin_username = "admin"
postgresql_admin_password = "secret"
storage_account_name   = "depotaccount"
storage_account_key    = "depotkey"
storage_container_name = "depotfiles"
presign_expiry_sec     = 1800
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("VARS_FILE", path)

	cfg := Load()

	assert.Equal(t, "db.example.com", cfg.Database.Host)
	assert.Equal(t, "depot", cfg.Database.Name)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "depotaccount", cfg.Storage.AccessKey)
	assert.Equal(t, "depotkey", cfg.Storage.SecretKey)
	assert.Equal(t, "depotfiles", cfg.Storage.Bucket)
	assert.Equal(t, 1800, cfg.Storage.PresignExpirySec)
	// Unset settings fall back to defaults.
	assert.Equal(t, ":5000", cfg.ListenAddr)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.False(t, cfg.StrictStartup)
}

func TestLoadMissingVarsFile(t *testing.T) {
	t.Setenv("VARS_FILE", filepath.Join(t.TempDir(), "absent.tfvars"))

	cfg := Load()

	// Every setting resolves to its hard-coded default.
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "filedepot", cfg.Database.Name)
	assert.Equal(t, "filedepot", cfg.Storage.Bucket)
	assert.Equal(t, 3600, cfg.Storage.PresignExpirySec)
}

func TestEnvOverridesVarsFile(t *testing.T) {
	vars := Vars{
		"postgresql_server_name": "from-file",
		"storage_container_name": "file-bucket",
	}

	t.Setenv("DB_HOST", "from-env")
	t.Setenv("STRICT_STARTUP", "true")

	cfg := FromVars(vars)

	assert.Equal(t, "from-env", cfg.Database.Host)
	assert.Equal(t, "file-bucket", cfg.Storage.Bucket)
	assert.True(t, cfg.StrictStartup)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
