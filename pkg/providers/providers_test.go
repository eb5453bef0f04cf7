package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beaconscope/pkg/providers"
)

func TestAll_KeysAreUniqueAndComplete(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, p := range providers.All() {
		require.NotEmpty(t, p.Key())
		require.NotEmpty(t, p.Name())
		require.NotNil(t, p.Pattern(), p.Key())
		require.NotEmpty(t, p.Groups(), p.Key())
		assert.False(t, seen[p.Key()], "duplicate key %s", p.Key())
		seen[p.Key()] = true
	}
}

func TestRegistry_Detection(t *testing.T) {
	t.Parallel()

	r := providers.NewRegistry()

	tests := []struct {
		url  string
		want string
	}{
		{"https://www.google-analytics.com/collect?v=1&tid=UA-12345-1", "GOOGLEANALYTICS"},
		{"https://www.google-analytics.com/r/collect?v=1", "GOOGLEANALYTICS"},
		{"https://stats.g.doubleclick.net/j/collect?v=1", "GOOGLEANALYTICS"},
		{"https://www.google-analytics.com/g/collect?v=2&tid=G-ABC", "GOOGLEANALYTICS4"},
		{"https://region1.analytics.google.com/g/collect?v=2", "GOOGLEANALYTICS4"},
		{"https://www.googletagmanager.com/gtm.js?id=GTM-ABC123", "GOOGLETAGMANAGER"},
		{"https://www.facebook.com/tr?id=123456&ev=PageView", "FACEBOOKPIXEL"},
		{"https://edge.adobedc.net/ee/v2/interact?configId=abc", "ADOBEWEBSDK"},
		{"https://api-js.mixpanel.com/track/?verbose=1", "MIXPANEL"},
	}
	for _, tt := range tests {
		require.True(t, r.Matches(tt.url), tt.url)
		res := r.Parse(tt.url, "")
		assert.Equal(t, tt.want, res.Provider.Key, tt.url)
	}
}

func TestRegistry_ParseIsIdempotent(t *testing.T) {
	t.Parallel()

	r := providers.NewRegistry()
	url := "https://www.facebook.com/tr/?id=999&ev=Purchase&cd%5Bvalue%5D=49.99"

	first := r.Parse(url, "")
	second := r.Parse(url, "")
	assert.Equal(t, first, second)
}

func TestRegistry_NoMatchYieldsNeutralResult(t *testing.T) {
	t.Parallel()

	r := providers.NewRegistry()
	url := "https://example.com/assets/app.js?v=3"

	assert.False(t, r.Matches(url))

	res := r.Parse(url, "")
	assert.Empty(t, res.Provider.Key)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
	assert.Empty(t, res.Error)

	assert.Empty(t, r.ParseAll(url, ""))
}
