package config

import (
	"errors"

	"github.com/FraserParlane/road-names/pkg/fetcher"

	"github.com/spf13/viper"
)

type Config struct{}

// New reads the optional config.yaml in the working directory and seeds
// defaults for everything the other providers pull out of viper.
func New() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("CACHE_DB_PATH", "roadnames.db")
	viper.SetDefault("OSM_API_URL", fetcher.DefaultBaseURL)
	viper.SetDefault("OSM_RATE_LIMIT", 0.5)
	viper.SetDefault("CANVAS_WIDTH", 1000)

	if err := viper.ReadInConfig(); err != nil {
		var typeErr viper.ConfigFileNotFoundError
		if !errors.As(err, &typeErr) {
			return nil, err
		}
		// no config file is fine, defaults and env cover everything.
	}

	config := &Config{}
	return config, nil
}
