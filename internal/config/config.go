package config

import (
	"errors"
	"log"

	"github.com/spf13/viper"
)

var GConfig *Config

func New() *Config {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("feed.base_url", DefaultFeedBaseURL)
	v.SetDefault("feed.culture_code", DefaultCultureCode)
	v.SetDefault("feed.user_agent", DefaultFeedUserAgent)
	v.SetDefault("feed.timeout", DefaultFeedTimeout)
	v.SetDefault("feed.products", DefaultProducts)
	v.SetDefault("cache.ttl", DefaultCacheTTL)

	v.SetConfigName(DefaultConfigName)
	v.SetConfigType(DefaultConfigType)
	v.AddConfigPath(".")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		// every key has a usable default, so a missing file is fine
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("Failed to read config file, %v", err)
		}
	}

	var c = new(Config)
	if err := v.Unmarshal(c); err != nil {
		log.Fatalf("Failed to unmarshal config file, %v", err)
	}
	return c
}
