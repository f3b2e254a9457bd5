package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile_YAML(t *testing.T) {
	path := writeTempConfig(t, "guardian.yaml", `
monthly_budget: 250.5
notification_email: finops@example.com
profiles:
  - default
regions:
  - us-east-1
  - eu-west-1
skip_shutdown: true
`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, 250.5, cfg.MonthlyBudget)
	assert.Equal(t, "finops@example.com", cfg.NotificationEmail)
	assert.Equal(t, []string{"default"}, cfg.Profiles)
	assert.Equal(t, []string{"us-east-1", "eu-west-1"}, cfg.Regions)
	assert.True(t, cfg.SkipShutdown)
}

func TestLoadConfigFile_TOML(t *testing.T) {
	path := writeTempConfig(t, "guardian.toml", `
monthly_budget = 100.0
notification_email = "ops@example.com"
regions = ["us-east-1"]
`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, 100.0, cfg.MonthlyBudget)
	assert.Equal(t, "ops@example.com", cfg.NotificationEmail)
	assert.Equal(t, []string{"us-east-1"}, cfg.Regions)
}

func TestLoadConfigFile_JSON(t *testing.T) {
	path := writeTempConfig(t, "guardian.json", `{"monthly_budget": 75, "notification_email": "a@b.c"}`)

	cfg, err := NewConfigRepository().LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, 75.0, cfg.MonthlyBudget)
	assert.Equal(t, "a@b.c", cfg.NotificationEmail)
}

func TestLoadConfigFile_UnsupportedFormat(t *testing.T) {
	path := writeTempConfig(t, "guardian.ini", "monthly_budget = 1")

	_, err := NewConfigRepository().LoadConfigFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported config file format")
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := NewConfigRepository().LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadConfigFile_Directory(t *testing.T) {
	_, err := NewConfigRepository().LoadConfigFile(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}
