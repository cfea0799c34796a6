// Package bot runs the fetch → format → dispatch sequence unattended,
// configured by the manifest the app generates for download.
package bot

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/curatednews/digest/internal/domain"
)

// Config is the newsbot manifest; kept in sync with the scriptgen bundle.
type Config struct {
	WebhookURL         string   `yaml:"webhook_url"`
	Keywords           []string `yaml:"keywords"`
	LikedCategories    []string `yaml:"liked_categories"`
	DislikedCategories []string `yaml:"disliked_categories"`
	Model              string   `yaml:"model"`
	Schedule           string   `yaml:"schedule"`
	Timezone           string   `yaml:"timezone"`
}

var scheduleRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// LoadConfig reads a YAML manifest, applies defaults, and validates it.
// NEWSBOT_WEBHOOK_URL overrides the baked-in webhook for testing a bundle
// against a different channel.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config yaml: %w", err)
	}

	if override := os.Getenv("NEWSBOT_WEBHOOK_URL"); override != "" {
		cfg.WebhookURL = override
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.Schedule == "" {
		cfg.Schedule = "07:00"
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "Local"
	}

	if cfg.WebhookURL == "" {
		return nil, fmt.Errorf("%w: set webhook_url in the config", domain.ErrMissingWebhook)
	}
	if !scheduleRegex.MatchString(cfg.Schedule) {
		return nil, fmt.Errorf("invalid schedule %q, expected HH:MM", cfg.Schedule)
	}

	return cfg, nil
}

// Profile reconstructs the preference profile baked into the manifest.
func (c *Config) Profile() domain.UserPreferences {
	return domain.UserPreferences{
		Keywords:           c.Keywords,
		LikedCategories:    c.LikedCategories,
		DislikedCategories: c.DislikedCategories,
		WebhookURL:         c.WebhookURL,
	}
}
