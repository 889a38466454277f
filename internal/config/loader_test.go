package config

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFromFile_Defaults(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: postgres
  name: records
jwt:
  secret_key: s3cret
admin:
  password: admin123
`)
	for _, env := range pgEnvBindings {
		t.Setenv(env, "")
	}

	cfg, err := loadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 18080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, 60, cfg.ClearConfirm.TTLSeconds)
	assert.False(t, cfg.Redis.Enabled())
	assert.Contains(t, cfg.Database.GetDSN(), "dbname=records")
	assert.Contains(t, cfg.Database.GetDSN(), "client_encoding=UTF8")
}

func TestLoadConfigFromFile_PGEnv(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: postgres
  name: from_file
jwt:
  secret_key: s3cret
admin:
  password: admin123
`)
	t.Setenv("PGHOST", "db.internal")
	t.Setenv("PGPORT", "6543")
	t.Setenv("PGDATABASE", "from_env")
	t.Setenv("PGUSER", "records")

	cfg, err := loadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6543, cfg.Database.Port)
	assert.Equal(t, "from_env", cfg.Database.Name)
	assert.Equal(t, "records", cfg.Database.User)
}

func TestLoadConfigFromFile_SectionEnv(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: sqlite
admin:
  password: admin123
`)
	dbPath := filepath.Join(t.TempDir(), "data", "records.db")
	t.Setenv("JWT_SECRET_KEY", "from-env")
	t.Setenv("DATABASE_PATH", dbPath)
	t.Setenv("REDIS_SERVICE_HOST", "cache")

	cfg, err := loadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.SecretKey)
	assert.Equal(t, dbPath, cfg.Database.Path)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "cache:6379", cfg.Redis.GetAddress())

	// sqlite 的目录会被创建
	_, err = os.Stat(filepath.Dir(dbPath))
	assert.NoError(t, err)
}

func TestLoadConfigFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing jwt secret",
			content: `
database: {driver: postgres, name: r}
admin: {password: x}
`,
		},
		{
			name: "missing admin password",
			content: `
database: {driver: postgres, name: r}
jwt: {secret_key: s}
`,
		},
		{
			name: "unknown driver",
			content: `
database: {driver: mysql}
jwt: {secret_key: s}
admin: {password: x}
`,
		},
		{
			name: "bad port",
			content: `
server: {port: 70000}
database: {driver: postgres, name: r}
jwt: {secret_key: s}
admin: {password: x}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfigFromFile(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigFromFile_MissingExplicitFile(t *testing.T) {
	_, err := loadConfigFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func resetGlobalConfig(t *testing.T) {
	t.Helper()
	reset := func() {
		once = sync.Once{}
		globalConfig = nil
		loadErr = nil
	}
	reset()
	t.Cleanup(reset)
}

func TestLoadConfig_FailureIsSticky(t *testing.T) {
	resetGlobalConfig(t)
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := LoadConfig(missing)
	require.Error(t, err)
	assert.Nil(t, cfg)

	cfg, again := LoadConfig(missing)
	assert.Nil(t, cfg)
	assert.Equal(t, err, again)
}

func TestLoadConfig_LoadsOnce(t *testing.T) {
	resetGlobalConfig(t)
	for _, env := range pgEnvBindings {
		t.Setenv(env, "")
	}
	path := writeConfig(t, `
database:
  name: records
jwt:
  secret_key: s3cret
admin:
  password: admin123
`)

	first, err := LoadConfig(path)
	require.NoError(t, err)
	second, err := LoadConfig(filepath.Join(t.TempDir(), "ignored.yaml"))
	require.NoError(t, err)
	assert.Same(t, first, second)
}
