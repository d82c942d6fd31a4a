package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DISASTEROPS_DB", "DISASTEROPS_FILE", "DISASTEROPS_WEEK_OF",
		"DISASTEROPS_LOG_USECASES", "NO_COLOR",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".disasterops", "disasterops.db"), cfg.DBPath)
	assert.Empty(t, cfg.File)
	assert.Nil(t, cfg.WeekOf.Ptr())
	assert.False(t, cfg.LogUseCases)
	assert.False(t, bool(cfg.NoColor))
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISASTEROPS_DB", "/tmp/ops.db")
	t.Setenv("DISASTEROPS_FILE", "week.yaml")
	t.Setenv("DISASTEROPS_WEEK_OF", "2025-11-10")
	t.Setenv("DISASTEROPS_LOG_USECASES", "true")
	t.Setenv("NO_COLOR", "yes please")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/ops.db", cfg.DBPath)
	assert.Equal(t, "week.yaml", cfg.File)
	require.NotNil(t, cfg.WeekOf.Ptr())
	assert.Equal(t, time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC), *cfg.WeekOf.Ptr())
	assert.True(t, cfg.LogUseCases)
	assert.True(t, bool(cfg.NoColor))
}

func TestLoad_InvalidWeekOf(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISASTEROPS_DB", "/tmp/ops.db")
	t.Setenv("DISASTEROPS_WEEK_OF", "next monday")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
}

func TestLoad_InvalidBool(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISASTEROPS_DB", "/tmp/ops.db")
	t.Setenv("DISASTEROPS_LOG_USECASES", "yes")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-11-12")
	require.NoError(t, err)
	assert.Equal(t, time.Wednesday, d.Weekday())

	_, err = ParseDate("11/12/2025")
	assert.Error(t, err)

	assert.Nil(t, Date{}.Ptr())
}
