package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Fetch    FetchConfig    `yaml:"fetch"`
	Discover DiscoverConfig `yaml:"discover"`
}

type FetchConfig struct {
	UserAgent           string `yaml:"user_agent"`
	ProbeTimeoutSecs    int    `yaml:"probe_timeout_seconds"`
	HubProbeTimeoutSecs int    `yaml:"hub_probe_timeout_seconds"`
	PageTimeoutSecs     int    `yaml:"page_timeout_seconds"`
	HubPageTimeoutSecs  int    `yaml:"hub_page_timeout_seconds"`
}

type DiscoverConfig struct {
	SiteConcurrency     int `yaml:"site_concurrency"`
	ValidateConcurrency int `yaml:"validate_concurrency"`
	MaxAnchorCandidates int `yaml:"max_anchor_candidates"`
}

func Default() *Config {
	return &Config{
		Fetch: FetchConfig{
			UserAgent:           "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			ProbeTimeoutSecs:    5,
			HubProbeTimeoutSecs: 8,
			PageTimeoutSecs:     10,
			HubPageTimeoutSecs:  15,
		},
		Discover: DiscoverConfig{
			SiteConcurrency:     20,
			ValidateConcurrency: 10,
			MaxAnchorCandidates: 30,
		},
	}
}

func Dir() string {
	if dir := os.Getenv("RSS_EXTRACTOR_HOME"); dir != "" {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".rss-extractor")
}

func DBPath() string {
	return filepath.Join(Dir(), "rss-extractor.db")
}

func configPath() string {
	return filepath.Join(Dir(), "config.yaml")
}

func Load() (*Config, error) {
	data, err := os.ReadFile(configPath())
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(cfg *Config) error {
	if err := os.MkdirAll(Dir(), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath(), data, 0644)
}
