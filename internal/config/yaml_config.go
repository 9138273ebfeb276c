package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file.
// Hierarchical tuning that's easier to manage in YAML than env vars.
type YAMLConfig struct {
	Providers ProvidersConfig `yaml:"providers"`
	Analyzer  AnalyzerConfig  `yaml:"analyzer"`
	Reports   ReportsConfig   `yaml:"reports"`
}

// ProvidersConfig overrides provider endpoints, e.g. for a sandbox account.
type ProvidersConfig struct {
	SEODataBaseURL string `yaml:"seodata_base_url,omitempty"`
}

// AnalyzerConfig tunes page fetching and content scoring.
type AnalyzerConfig struct {
	MinWords       int `yaml:"min_words"`        // content-length threshold, default 300
	MaxBodyKB      int `yaml:"max_body_kb"`      // fetch size cap, default 2048
	TimeoutSeconds int `yaml:"timeout_seconds"`  // fetch timeout, default 15
}

// ReportsConfig controls the background re-analysis reports.
type ReportsConfig struct {
	IntervalMinutes int `yaml:"interval_minutes"` // 0 disables the scheduler
	MinScoreDelta   int `yaml:"min_score_delta"`  // email only when |delta| >= this
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns defaults without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	cfg := &YAMLConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *YAMLConfig) applyDefaults() {
	if c.Analyzer.MinWords <= 0 {
		c.Analyzer.MinWords = 300
	}
	if c.Analyzer.MaxBodyKB <= 0 {
		c.Analyzer.MaxBodyKB = 2048
	}
	if c.Analyzer.TimeoutSeconds <= 0 {
		c.Analyzer.TimeoutSeconds = 15
	}
	if c.Reports.MinScoreDelta <= 0 {
		c.Reports.MinScoreDelta = 5
	}
}

// ReportInterval returns the scheduler interval; zero means disabled.
func (c *YAMLConfig) ReportInterval() time.Duration {
	if c == nil || c.Reports.IntervalMinutes <= 0 {
		return 0
	}
	return time.Duration(c.Reports.IntervalMinutes) * time.Minute
}

// FetchTimeout returns the analyzer's per-request timeout.
func (c *YAMLConfig) FetchTimeout() time.Duration {
	if c == nil {
		return 15 * time.Second
	}
	return time.Duration(c.Analyzer.TimeoutSeconds) * time.Second
}

// MaxBodyBytes returns the analyzer's fetch size cap.
func (c *YAMLConfig) MaxBodyBytes() int64 {
	if c == nil {
		return 2 << 20
	}
	return int64(c.Analyzer.MaxBodyKB) * 1024
}
