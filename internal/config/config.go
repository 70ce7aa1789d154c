package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the client configuration. Priority: ENV > YAML > defaults.
type Config struct {
	ServerURL   string `yaml:"server_url"   env:"CHOREBOARD_SERVER_URL"   env-default:"http://localhost:8080"`
	Timezone    string `yaml:"timezone"     env:"CHOREBOARD_TIMEZONE"     env-default:"Local"`
	PollSeconds int    `yaml:"poll_seconds" env:"CHOREBOARD_POLL_SECONDS" env-default:"30"`
	Debug       bool   `yaml:"debug"        env:"CHOREBOARD_DEBUG"        env-default:"false"`
}

func (c Config) Validate() error {
	if c.ServerURL == "" {
		return fmt.Errorf("server_url is required")
	}
	if c.PollSeconds <= 0 {
		return fmt.Errorf("poll_seconds must be positive")
	}
	return nil
}

// Dir returns the per-user configuration directory, creating it if needed.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve config dir: %w", err)
	}
	dir := filepath.Join(base, "choreboard")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("config: create %s: %w", dir, err)
	}
	return dir, nil
}

// Load reads configuration from a YAML file and environment variables. An
// explicitly passed path must exist; the default path may be absent, in
// which case configuration comes from ENV + defaults only.
func Load(path string) (*Config, error) {
	var cfg Config

	explicitPath := path != ""
	if !explicitPath {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, "config.yaml")
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}
