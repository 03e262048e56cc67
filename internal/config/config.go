package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/brk3/quit/internal/tracker"
)

const DefaultPath = "config.yaml"

type NudgeConfig struct {
	ResendAPIKey string `yaml:"resend_api_key"`
	Email        string `yaml:"email"`
	From         string `yaml:"from"`
}

type Config struct {
	DBPath          string        `yaml:"db_path"`
	DBTimeout       time.Duration `yaml:"db_timeout"`
	StorageKey      string        `yaml:"storage_key"`
	ListenAddr      string        `yaml:"listen_addr"`
	APIBaseURL      string        `yaml:"api_base_url"`
	LogLevel        string        `yaml:"log_level"`
	LogFormat       string        `yaml:"log_format"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	Nudge           NudgeConfig   `yaml:"nudge"`
}

func Default() *Config {
	return &Config{
		DBPath:          "quit.db",
		DBTimeout:       time.Second,
		StorageKey:      tracker.DefaultKey,
		ListenAddr:      ":8080",
		LogLevel:        "info",
		LogFormat:       "text",
		RefreshInterval: time.Second,
		Nudge: NudgeConfig{
			From: "onboarding@resend.dev",
		},
	}
}

// Load reads the file named by QUIT_CONFIG, or config.yaml when that exists,
// then applies environment overrides.
func Load() (*Config, error) {
	path := os.Getenv("QUIT_CONFIG")
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	return load(path, explicit)
}

// LoadFile is Load with an explicit path; a missing file is an error.
func LoadFile(path string) (*Config, error) {
	return load(path, true)
}

func load(path string, mustExist bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !mustExist:
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.DBPath = getenv("QUIT_DB_PATH", cfg.DBPath)
	cfg.ListenAddr = getenv("QUIT_LISTEN_ADDR", cfg.ListenAddr)
	cfg.APIBaseURL = getenv("QUIT_API_BASE", cfg.APIBaseURL)
	cfg.LogLevel = getenv("QUIT_LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getenv("QUIT_LOG_FORMAT", cfg.LogFormat)
	cfg.Nudge.ResendAPIKey = getenv("QUIT_RESEND_API_KEY", cfg.Nudge.ResendAPIKey)
	cfg.Nudge.Email = getenv("QUIT_NOTIFY_EMAIL", cfg.Nudge.Email)
}

func (c *Config) Validate() error {
	if c.DBPath == "" {
		return errors.New("db_path must be set")
	}
	if c.DBTimeout <= 0 {
		return fmt.Errorf("db_timeout must be positive, got %s", c.DBTimeout)
	}
	if c.StorageKey == "" {
		return errors.New("storage_key must be set")
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval must be positive, got %s", c.RefreshInterval)
	}
	return nil
}

// ValidateNudge checks the settings the nudge command needs.
func (c *Config) ValidateNudge() error {
	if c.Nudge.ResendAPIKey == "" {
		return errors.New("nudge.resend_api_key (QUIT_RESEND_API_KEY) is not set")
	}
	if c.Nudge.Email == "" {
		return errors.New("nudge.email (QUIT_NOTIFY_EMAIL) is not set")
	}
	return nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
