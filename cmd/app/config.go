package main

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"ENVIRONMENT"`
	Version     string `mapstructure:"VERSION"`

	APIBaseURL string        `mapstructure:"API_BASE_URL"`
	APITimeout time.Duration `mapstructure:"API_TIMEOUT"`
	CacheTTL   time.Duration `mapstructure:"CACHE_TTL"`
}

func loadConfig(path string) (*Config, error) {
	viper.SetConfigFile(path)
	viper.SetConfigType("env")

	viper.SetDefault("PORT", ":4000")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("VERSION", "dev")
	viper.SetDefault("API_TIMEOUT", 15*time.Second)
	viper.SetDefault("CACHE_TTL", 5*time.Minute)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
