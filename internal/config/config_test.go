package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "pt.db", cfg.Storage.Filename)
	assert.Equal(t, "projects", cfg.Storage.Key)
	assert.Equal(t, 5*time.Second, cfg.Storage.WriteTimeout)
	assert.Equal(t, time.Second, cfg.Tick.Interval)
	assert.Equal(t, 1, cfg.Validation.ProjectNameMinLength)
	assert.Equal(t, 255, cfg.Validation.ProjectNameMaxLength)
	assert.Equal(t, 500, cfg.Validation.TaskTextMaxLength)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_LoadFromEnvironment(t *testing.T) {
	t.Setenv("PT_STORAGE_DIR", "/tmp/pt-test")
	t.Setenv("PT_STORAGE_FILENAME", "tracker.db")
	t.Setenv("PT_STORAGE_KEY", "tree")
	t.Setenv("PT_TICK_INTERVAL", "250ms")
	t.Setenv("PT_VALIDATION_TASK_TEXT_MAX", "120")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/pt-test", cfg.Storage.Dir)
	assert.Equal(t, "tracker.db", cfg.Storage.Filename)
	assert.Equal(t, "tree", cfg.Storage.Key)
	assert.Equal(t, 250*time.Millisecond, cfg.Tick.Interval)
	assert.Equal(t, 120, cfg.Validation.TaskTextMaxLength)
	assert.Equal(t, filepath.Join("/tmp/pt-test", "tracker.db"), cfg.GetStoragePath())
}

func TestConfig_LoadFromEnvironment_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("PT_TICK_INTERVAL", "not-a-duration")
	t.Setenv("PT_VALIDATION_PROJECT_NAME_MAX", "not-a-number")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, time.Second, cfg.Tick.Interval)
	assert.Equal(t, 255, cfg.Validation.ProjectNameMaxLength)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(cfg *Config)
		expectedField string
	}{
		{
			name:          "should reject empty storage key",
			mutate:        func(cfg *Config) { cfg.Storage.Key = "" },
			expectedField: "storage.key",
		},
		{
			name:          "should reject non-positive tick interval",
			mutate:        func(cfg *Config) { cfg.Tick.Interval = 0 },
			expectedField: "tick.interval",
		},
		{
			name:          "should reject max name length below min",
			mutate:        func(cfg *Config) { cfg.Validation.ProjectNameMaxLength = 0 },
			expectedField: "validation.project_name_max_length",
		},
		{
			name:          "should reject empty date format",
			mutate:        func(cfg *Config) { cfg.Display.DateFormat = "" },
			expectedField: "display.date_format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.expectedField, cfgErr.Field)
		})
	}
}
