package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone = "Asia/Kolkata"
	configPathEnv   = "EDITORIAL_GATE_CONFIG"
	openAIKeyEnv    = "OPENAI_API_KEY"
	openAIModelEnv  = "OPENAI_MODEL"
	outputDirEnv    = "GATE_OUTPUT_DIR"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Timezone   string           `yaml:"timezone"`
	Validation ValidationConfig `yaml:"validation"`
	Archive    ArchiveConfig    `yaml:"archive"`
	Gate       GateConfig       `yaml:"gate"`
	Discovery  DiscoveryConfig  `yaml:"discovery"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Output     OutputConfig     `yaml:"output"`

	location *time.Location `yaml:"-"`
}

// LoggingConfig controls the console log handler.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// ValidationConfig parameterizes the per-URL stage sequence.
type ValidationConfig struct {
	AllowedDomains []string `yaml:"allowedDomains"`
	DatePolicy     string   `yaml:"datePolicy"`
	MinWords       int      `yaml:"minWords"`
}

// ArchiveConfig describes the snapshot-index lookup used for freshness.
type ArchiveConfig struct {
	CDXEndpoint string `yaml:"cdxEndpoint"`
	MaxAgeHours int    `yaml:"maxAgeHours"`
}

// GateConfig carries the corroboration thresholds for the final verdict.
type GateConfig struct {
	MinValidated    int `yaml:"minValidated"`
	MinFingerprints int `yaml:"minFingerprints"`
}

// DiscoveryConfig lists the RSS feeds mined for today's candidate links.
type DiscoveryConfig struct {
	Feeds    []string `yaml:"feeds"`
	MaxLinks int      `yaml:"maxLinks"`
}

// OpenAIConfig defines how to contact the chat-completions API.
type OpenAIConfig struct {
	APIKey  string `yaml:"apiKey"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"baseUrl"`
}

// OutputConfig locates the run artifacts (links.json, run-summary.json, editorial.txt).
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// Location resolves the configured reference timezone.
func (c Config) Location() *time.Location {
	if c.location != nil {
		return c.location
	}
	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(openAIKeyEnv); v != "" {
		c.OpenAI.APIKey = v
	}

	if v := os.Getenv(openAIModelEnv); v != "" {
		c.OpenAI.Model = v
	}

	if v := os.Getenv(outputDirEnv); v != "" {
		c.Output.Dir = v
	}
}

func (c *Config) bindTimezone() {
	tz := c.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, defaultTimezone)
		loc, _ = time.LoadLocation(defaultTimezone)
	}
	c.location = loc
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging = override.Logging
	}

	if override.Timezone != "" {
		base.Timezone = override.Timezone
	}

	if len(override.Validation.AllowedDomains) > 0 {
		base.Validation.AllowedDomains = override.Validation.AllowedDomains
	}
	if override.Validation.DatePolicy != "" {
		base.Validation.DatePolicy = override.Validation.DatePolicy
	}
	if override.Validation.MinWords > 0 {
		base.Validation.MinWords = override.Validation.MinWords
	}

	if override.Archive.CDXEndpoint != "" {
		base.Archive.CDXEndpoint = override.Archive.CDXEndpoint
	}
	if override.Archive.MaxAgeHours > 0 {
		base.Archive.MaxAgeHours = override.Archive.MaxAgeHours
	}

	if override.Gate.MinValidated > 0 {
		base.Gate.MinValidated = override.Gate.MinValidated
	}
	if override.Gate.MinFingerprints > 0 {
		base.Gate.MinFingerprints = override.Gate.MinFingerprints
	}

	if len(override.Discovery.Feeds) > 0 {
		base.Discovery.Feeds = override.Discovery.Feeds
	}
	if override.Discovery.MaxLinks > 0 {
		base.Discovery.MaxLinks = override.Discovery.MaxLinks
	}

	if override.OpenAI.APIKey != "" {
		base.OpenAI.APIKey = override.OpenAI.APIKey
	}
	if override.OpenAI.Model != "" {
		base.OpenAI.Model = override.OpenAI.Model
	}
	if override.OpenAI.BaseURL != "" {
		base.OpenAI.BaseURL = override.OpenAI.BaseURL
	}

	if override.Output.Dir != "" {
		base.Output.Dir = override.Output.Dir
	}

	return base
}

func defaultConfig() Config {
	tz, _ := time.LoadLocation(defaultTimezone)
	return Config{
		Logging:  LoggingConfig{Level: "info"},
		Timezone: defaultTimezone,
		Validation: ValidationConfig{
			AllowedDomains: []string{
				"thehindu.com",
				"timesofindia.indiatimes.com",
				"indianexpress.com",
				"hindustantimes.com",
				"ndtv.com",
				"indiatoday.in",
			},
			DatePolicy: "metaAndVisible",
			MinWords:   250,
		},
		Archive: ArchiveConfig{
			CDXEndpoint: "https://web.archive.org/cdx/search/cdx",
			MaxAgeHours: 48,
		},
		Gate: GateConfig{MinValidated: 3, MinFingerprints: 2},
		Discovery: DiscoveryConfig{
			Feeds: []string{
				"https://www.thehindu.com/news/national/?service=rss",
				"https://feeds.feedburner.com/NDTV-News",
				"https://timesofindia.indiatimes.com/rssfeedstopstories.cms",
				"https://indianexpress.com/section/india/feed/",
				"https://www.hindustantimes.com/rss/india/rssfeed.xml",
			},
			MaxLinks: 10,
		},
		OpenAI:   OpenAIConfig{Model: "gpt-4o-mini"},
		Output:   OutputConfig{Dir: "."},
		location: tz,
	}
}
