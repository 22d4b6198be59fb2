package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"error"`
	Color    bool   `yaml:"color" env:"COLOR" env-default:"true"`
	Events   Events `yaml:"events"`
}

// Events - optional redis pub/sub channel that observers can subscribe to.
type Events struct {
	Enabled bool   `yaml:"enabled" env:"EVENTS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"EVENTS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"EVENTS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"EVENTS_CHANNEL" env-default:"tictactoe:events"`
}

// MustLoad - load configuration from the yml file at path, or from the environment when there is no file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Events) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
