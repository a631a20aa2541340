package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"gowebshop/config/values"
)

type ServerConfig struct {
	Port         int     `yaml:"port"`
	TemplatesDir string  `yaml:"templates-dir"`
	RateLimit    float64 `yaml:"rate-limit"`
	RateBurst    int     `yaml:"rate-burst"`
}

type SqliteConfig struct {
	Path string `yaml:"path"`
}

type AppConfig struct {
	// Driver selects the store: "postgres" or "sqlite".
	Driver   string            `yaml:"driver"`
	Server   ServerConfig      `yaml:"server"`
	Postgres PostgresConfig    `yaml:"postgres"`
	Sqlite   SqliteConfig      `yaml:"sqlite"`
	Shop     values.ShopValues `yaml:"shop"`
}

func LoadConfig(filename string) (*AppConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	config := DefaultConfig()
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultConfig returns a runnable local setup: embedded sqlite, port 8081.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Driver: "sqlite",
		Server: ServerConfig{
			Port:         8081,
			TemplatesDir: "templates",
			RateLimit:    50,
			RateBurst:    100,
		},
		Postgres: GetPostgresConfig(),
		Sqlite:   SqliteConfig{Path: "shop.db"},
		Shop:     values.Defaults(),
	}
}
