package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel        string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	PlayerName      string `yaml:"player-name" env:"PLAYER_NAME" env-default:"You"`
	StrictFinish    bool   `yaml:"strict-finish" env:"STRICT_FINISH" env-default:"false"`
	MetricsTextfile string `yaml:"metrics-textfile" env:"METRICS_TEXTFILE" env-default:""`
}

// Load - reads the config file at path, falling back to environment variables when it does not exist.
// Variables from a .env file in the working directory are loaded first if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	default:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	}

	return config, nil
}

// MustLoad - same as Load but panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}
