package config

import "time"

type (
	Config struct {
		Server ServerConfig `mapstructure:"server"`
		Log    LogConfig    `mapstructure:"log"`
		Feed   FeedConfig   `mapstructure:"feed"`
		Cache  CacheConfig  `mapstructure:"cache"`
		Redis  RedisConfig  `mapstructure:"redis"`
		Warmup WarmupConfig `mapstructure:"warmup"`
	}

	ServerConfig struct {
		Port int `mapstructure:"port"`
	}

	LogConfig struct {
		Level      string `mapstructure:"level"`
		MaxSize    int    `mapstructure:"max_size"`
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAge     int    `mapstructure:"max_age"`
		Compress   bool   `mapstructure:"compress"`
	}

	// FeedConfig describes the vendor metadata feed: the URL template is
	// <base_url>/<culture_code><product_code>15.xml per product.
	FeedConfig struct {
		BaseURL     string            `mapstructure:"base_url"`
		CultureCode string            `mapstructure:"culture_code"`
		UserAgent   string            `mapstructure:"user_agent"`
		Timeout     time.Duration     `mapstructure:"timeout"`
		Products    map[string]string `mapstructure:"products"`
	}

	CacheConfig struct {
		TTL time.Duration `mapstructure:"ttl"`
	}

	RedisConfig struct {
		Addr     string `mapstructure:"addr"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	}

	WarmupConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}
)
