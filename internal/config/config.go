// Package config loads application configuration from a YAML file and
// environment variables via cleanenv. Priority: ENV > YAML > defaults.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the full application configuration.
type Config struct {
	// DataDir is the directory holding <topic>/<level>.json exercise files.
	DataDir string `yaml:"data_dir" env:"UBUNGEN_DATA_DIR" env-default:"data"`

	// DataURL, when set, fetches exercise files over HTTP instead of DataDir.
	DataURL string `yaml:"data_url" env:"UBUNGEN_DATA_URL"`

	// DBPath overrides the default SQLite high-score database location.
	DBPath string `yaml:"db_path" env:"UBUNGEN_DB"`

	// Topic and Level select the default exercise set.
	Topic string `yaml:"topic" env:"UBUNGEN_TOPIC" env-default:"wortschatz"`
	Level string `yaml:"level" env:"UBUNGEN_LEVEL" env-default:"a1"`

	// Distractors is the number of wrong options generated per translation
	// question.
	Distractors int `yaml:"distractors" env:"UBUNGEN_DISTRACTORS" env-default:"2"`

	// HTTP configures the serve command.
	HTTP HTTPConfig `yaml:"http"`

	// Log configures the slog handler.
	Log LogConfig `yaml:"log"`
}

// HTTPConfig configures the HTTP API server.
type HTTPConfig struct {
	Addr           string   `yaml:"addr" env:"UBUNGEN_HTTP_ADDR" env-default:":8080"`
	AllowedOrigins []string `yaml:"allowed_origins" env:"UBUNGEN_ALLOWED_ORIGINS" env-default:"*"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level  string `yaml:"level" env:"UBUNGEN_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"UBUNGEN_LOG_FORMAT" env-default:"text"`
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Distractors < 1 {
		return fmt.Errorf("distractors must be >= 1, got %d", c.Distractors)
	}
	if c.DataDir == "" && c.DataURL == "" {
		return fmt.Errorf("one of data_dir or data_url must be set")
	}
	return nil
}

// Load reads configuration from a YAML file and environment variables.
// The file path comes from CONFIG_PATH (fallback "./config.yaml"); when the
// fallback file does not exist, configuration comes from ENV + defaults.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
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
