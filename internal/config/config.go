package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port int `yaml:"port"`
}

type APIConfig struct {
	BaseURL string `yaml:"base_url"`
}

type AuthConfig struct {
	LoginPath    string   `yaml:"login_path"`
	GuardedPaths []string `yaml:"guarded_paths"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	API     APIConfig     `yaml:"api"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
}

// Load — yaml-конфиг + .env + переопределения из окружения
// (API_URL, PORT). .env опционален.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if v := os.Getenv("API_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		cfg.Server.Port = p
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:8000"
	}
	if c.Auth.LoginPath == "" {
		c.Auth.LoginPath = "/auth/login"
	}
	if len(c.Auth.GuardedPaths) == 0 {
		c.Auth.GuardedPaths = []string{"/", "/dashboard", "/agreements", "/profile"}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
