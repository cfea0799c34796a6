// Package scriptgen produces the downloadable automation bundle: a config
// manifest with the user's current preferences baked in, a scheduled-trigger
// definition, and run instructions for the unattended newsbot binary. The
// Gemini API key is never embedded; the runner reads it from the environment.
package scriptgen

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/yaml.v3"

	"github.com/curatednews/digest/internal/domain"
)

// Options controls the non-preference parts of the bundle.
type Options struct {
	Model    string
	Schedule string // HH:MM local time
	Timezone string
}

// Bundle is the generated artifact set, keyed by file name.
type Bundle struct {
	ConfigYAML string `json:"config.yaml"`
	Crontab    string `json:"crontab"`
	Readme     string `json:"README.md"`
}

// manifest is the newsbot config shape; kept in sync with bot.Config.
type manifest struct {
	WebhookURL         string   `yaml:"webhook_url"`
	Keywords           []string `yaml:"keywords"`
	LikedCategories    []string `yaml:"liked_categories"`
	DislikedCategories []string `yaml:"disliked_categories"`
	Model              string   `yaml:"model"`
	Schedule           string   `yaml:"schedule"`
	Timezone           string   `yaml:"timezone"`
}

const crontabTemplate = `# Run the daily news digest at {{.Schedule}} ({{.Timezone}}).
# Install with: crontab -e
{{.CronMinute}} {{.CronHour}} * * * GEMINI_API_KEY="$GEMINI_API_KEY" newsbot -config config.yaml -once
`

const readmeTemplate = `# Daily News Digest - Unattended Runner

This bundle reproduces the fetch → format → dispatch flow on a schedule,
using the preferences saved in the app at download time.

## Setup

1. Place config.yaml next to the newsbot binary (or pass -config).
2. Export your Gemini API key; it is read at run time and is NOT stored
   in this bundle:

       export GEMINI_API_KEY="your-key"

3. Dry run:

       newsbot -config config.yaml -once

4. Schedule it: either install the provided crontab entry, or let newsbot
   schedule itself (daily at {{.Schedule}} {{.Timezone}}):

       newsbot -config config.yaml
`

// Generate renders the bundle for the given profile. It is deterministic for
// a given profile and options.
func Generate(profile domain.UserPreferences, opts Options) (Bundle, error) {
	if opts.Model == "" {
		opts.Model = "gemini-2.5-flash"
	}
	if opts.Schedule == "" {
		opts.Schedule = "07:00"
	}
	if opts.Timezone == "" {
		opts.Timezone = "Local"
	}

	config, err := yaml.Marshal(manifest{
		WebhookURL:         profile.WebhookURL,
		Keywords:           profile.Keywords,
		LikedCategories:    profile.LikedCategories,
		DislikedCategories: profile.DislikedCategories,
		Model:              opts.Model,
		Schedule:           opts.Schedule,
		Timezone:           opts.Timezone,
	})
	if err != nil {
		return Bundle{}, fmt.Errorf("encoding config manifest: %w", err)
	}

	var hour, minute int
	if _, err := fmt.Sscanf(opts.Schedule, "%d:%d", &hour, &minute); err != nil {
		return Bundle{}, fmt.Errorf("invalid schedule %q: %w", opts.Schedule, err)
	}

	crontab, err := render(crontabTemplate, map[string]any{
		"Schedule":   opts.Schedule,
		"Timezone":   opts.Timezone,
		"CronMinute": minute,
		"CronHour":   hour,
	})
	if err != nil {
		return Bundle{}, err
	}

	readme, err := render(readmeTemplate, map[string]any{
		"Schedule": opts.Schedule,
		"Timezone": opts.Timezone,
	})
	if err != nil {
		return Bundle{}, err
	}

	return Bundle{
		ConfigYAML: string(config),
		Crontab:    crontab,
		Readme:     readme,
	}, nil
}

func render(text string, data any) (string, error) {
	tmpl, err := template.New("artifact").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering template: %w", err)
	}
	return buf.String(), nil
}
