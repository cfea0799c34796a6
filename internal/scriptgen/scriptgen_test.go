package scriptgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/curatednews/digest/internal/domain"
)

func TestGenerate_BakesProfileIntoManifest(t *testing.T) {
	profile := domain.UserPreferences{
		Keywords:           []string{"Fusion", "Chips"},
		LikedCategories:    []string{"Science"},
		DislikedCategories: []string{"Celebrity"},
		WebhookURL:         "https://hooks.example.com/T1/B2",
	}

	bundle, err := Generate(profile, Options{Schedule: "07:30", Timezone: "Asia/Tokyo"})
	require.NoError(t, err)

	var m manifest
	require.NoError(t, yaml.Unmarshal([]byte(bundle.ConfigYAML), &m))

	assert.Equal(t, profile.WebhookURL, m.WebhookURL)
	assert.Equal(t, profile.Keywords, m.Keywords)
	assert.Equal(t, profile.LikedCategories, m.LikedCategories)
	assert.Equal(t, profile.DislikedCategories, m.DislikedCategories)
	assert.Equal(t, "gemini-2.5-flash", m.Model)
	assert.Equal(t, "07:30", m.Schedule)
	assert.Equal(t, "Asia/Tokyo", m.Timezone)
}

func TestGenerate_NeverEmbedsAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "super-secret-value")

	bundle, err := Generate(domain.DefaultPreferences(), Options{})
	require.NoError(t, err)

	for _, artifact := range []string{bundle.ConfigYAML, bundle.Crontab, bundle.Readme} {
		assert.NotContains(t, artifact, "super-secret-value")
	}
	assert.Contains(t, bundle.Readme, "GEMINI_API_KEY")
}

func TestGenerate_CrontabUsesSchedule(t *testing.T) {
	bundle, err := Generate(domain.DefaultPreferences(), Options{Schedule: "06:15"})
	require.NoError(t, err)

	assert.Contains(t, bundle.Crontab, "15 6 * * *")
	assert.Contains(t, bundle.Crontab, "-once")
}

func TestGenerate_RejectsMalformedSchedule(t *testing.T) {
	_, err := Generate(domain.DefaultPreferences(), Options{Schedule: "soon"})
	assert.Error(t, err)
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(domain.DefaultPreferences(), Options{})
	require.NoError(t, err)
	b, err := Generate(domain.DefaultPreferences(), Options{})
	require.NoError(t, err)

	assert.Equal(t, a, b)
}
