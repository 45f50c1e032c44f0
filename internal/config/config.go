package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel          string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile           string `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	SQLiteStoragePath string `yaml:"sqlite-storage-path" env:"SQLITE_STORAGE_PATH" env-default:"tictactoe-events.db"`
	Bot               Bot    `yaml:"bot"`
}

type Bot struct {
	DefaultDifficulty string `yaml:"default-difficulty" env:"BOT_DEFAULT_DIFFICULTY" env-default:"easy"`
}

// MustLoad - loads all configurations from the config.yml file.
// The file is optional for a local game, so a missing file falls back
// to environment variables and defaults.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to read environment config: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
