package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is everything the server needs at boot. Values come from
// spanteq.yaml when present, overridden by SPANTEQ_-prefixed environment
// variables (SPANTEQ_SERVER_PORT, SPANTEQ_AUTH_SECRET_KEY, ...).
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	SecretKey string `mapstructure:"secret_key"`
	TokenTTL  string `mapstructure:"token_ttl"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

func Load() (Config, error) {
	loader := viper.New()
	loader.SetConfigName("spanteq")
	loader.SetConfigType("yaml")
	loader.AddConfigPath(".")
	loader.AddConfigPath("/etc/spanteq")

	loader.SetEnvPrefix("SPANTEQ")
	loader.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	loader.AutomaticEnv()

	loader.SetDefault("server.port", "8080")
	loader.SetDefault("db.path", "data/spanteq.db")
	loader.SetDefault("auth.secret_key", "change_me_in_production")
	loader.SetDefault("auth.token_ttl", "168h")
	loader.SetDefault("log.level", "info")
	loader.SetDefault("log.pretty", false)

	if err := loader.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := loader.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
