package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr        string `yaml:"addr"`
	PublicURL   string `yaml:"public_url"`
	LocalURL    string `yaml:"local_url"`
	Environment string `yaml:"environment"`
}

// FromEnv builds a Server config from environment variables so main stays lean.
// If ORD_CONFIG_FILE points at a YAML file, its values are loaded first and
// individual environment variables override them.
func FromEnv() (Server, error) {
	cfg := Server{
		Addr:        ":8080",
		PublicURL:   "https://ord-reference-application.example.com",
		LocalURL:    "http://localhost:8080",
		Environment: "development",
	}

	if path := os.Getenv("ORD_CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Server{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Server{}, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	if addr := os.Getenv("ORD_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if publicURL := os.Getenv("ORD_PUBLIC_URL"); publicURL != "" {
		cfg.PublicURL = publicURL
	}
	if localURL := os.Getenv("ORD_LOCAL_URL"); localURL != "" {
		cfg.LocalURL = localURL
	}
	if env := os.Getenv("ORD_ENVIRONMENT"); env != "" {
		cfg.Environment = env
	}

	return cfg, nil
}
