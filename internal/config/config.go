package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Match    Match  `yaml:"match"`
	Redis    Redis  `yaml:"redis"`
}

type Match struct {
	Mode                 string        `yaml:"mode" env:"MATCH_MODE" env-default:"human"`
	PlayerName           string        `yaml:"player-name" env:"MATCH_PLAYER_NAME" env-default:"Player"`
	OpponentName         string        `yaml:"opponent-name" env:"MATCH_OPPONENT_NAME" env-default:"Computer"`
	Seed                 int64         `yaml:"seed" env:"MATCH_SEED" env-default:"0"`
	ComputerDelay        time.Duration `yaml:"computer-delay" env:"MATCH_COMPUTER_DELAY" env-default:"500ms"`
	Rounds               int           `yaml:"rounds" env:"MATCH_ROUNDS" env-default:"1"`
	MaxPlacementAttempts int           `yaml:"max-placement-attempts" env:"MATCH_MAX_PLACEMENT_ATTEMPTS" env-default:"1000"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads the yml file at path, environment variables take precedence.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
