package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the project tracker application
type Config struct {
	Storage    StorageConfig
	Tick       TickConfig
	Validation ValidationConfig
	Display    DisplayConfig
}

// StorageConfig holds persistence-related configuration
type StorageConfig struct {
	Dir            string        `env:"PT_STORAGE_DIR"`
	Filename       string        `env:"PT_STORAGE_FILENAME"`
	Key            string        `env:"PT_STORAGE_KEY"`
	WriteTimeout   time.Duration `env:"PT_STORAGE_WRITE_TIMEOUT"`
	DirPermissions uint32        `env:"PT_STORAGE_DIR_PERMISSIONS"`
}

// TickConfig holds tick scheduler configuration
type TickConfig struct {
	Interval time.Duration `env:"PT_TICK_INTERVAL"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	ProjectNameMinLength int `env:"PT_VALIDATION_PROJECT_NAME_MIN"`
	ProjectNameMaxLength int `env:"PT_VALIDATION_PROJECT_NAME_MAX"`
	TaskTextMaxLength    int `env:"PT_VALIDATION_TASK_TEXT_MAX"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat string `env:"PT_DISPLAY_DATE_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultStorageDir := filepath.Join(homeDir, ".pt")

	return &Config{
		Storage: StorageConfig{
			Dir:            defaultStorageDir,
			Filename:       "pt.db",
			Key:            "projects",
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Tick: TickConfig{
			Interval: time.Second,
		},
		Validation: ValidationConfig{
			ProjectNameMinLength: 1,
			ProjectNameMaxLength: 255,
			TaskTextMaxLength:    500,
		},
		Display: DisplayConfig{
			DateFormat: "2006-01-02",
		},
	}
}

// GetStoragePath returns the full path to the storage database file
func (c *Config) GetStoragePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("PT_STORAGE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("PT_STORAGE_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if key := os.Getenv("PT_STORAGE_KEY"); key != "" {
		c.Storage.Key = key
	}
	if timeout := os.Getenv("PT_STORAGE_WRITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Storage.WriteTimeout = d
		}
	}
	if perms := os.Getenv("PT_STORAGE_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}

	// Tick configuration
	if interval := os.Getenv("PT_TICK_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Tick.Interval = d
		}
	}

	// Validation configuration
	if minLen := os.Getenv("PT_VALIDATION_PROJECT_NAME_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.ProjectNameMinLength = n
		}
	}
	if maxLen := os.Getenv("PT_VALIDATION_PROJECT_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.ProjectNameMaxLength = n
		}
	}
	if maxLen := os.Getenv("PT_VALIDATION_TASK_TEXT_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TaskTextMaxLength = n
		}
	}

	// Display configuration
	if format := os.Getenv("PT_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "storage filename cannot be empty"}
	}
	if c.Storage.Key == "" {
		return &ConfigError{Field: "storage.key", Message: "storage key cannot be empty"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Tick.Interval <= 0 {
		return &ConfigError{Field: "tick.interval", Message: "tick interval must be positive"}
	}

	if c.Validation.ProjectNameMinLength < 1 {
		return &ConfigError{Field: "validation.project_name_min_length", Message: "project name minimum length must be at least 1"}
	}
	if c.Validation.ProjectNameMaxLength < c.Validation.ProjectNameMinLength {
		return &ConfigError{Field: "validation.project_name_max_length", Message: "project name maximum length must be greater than minimum length"}
	}
	if c.Validation.TaskTextMaxLength < 1 {
		return &ConfigError{Field: "validation.task_text_max_length", Message: "task text maximum length must be at least 1"}
	}

	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
