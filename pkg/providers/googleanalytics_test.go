package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
	"beaconscope/pkg/providers"
)

func TestGoogleAnalytics_EventHit(t *testing.T) {
	t.Parallel()

	p := providers.NewGoogleAnalytics()
	res := provider.Parse(p, "https://www.google-analytics.com/collect?v=1&tid=UA-12345-1&t=event&ec=video&ea=play&cd5=member", "")
	require.Empty(t, res.Error)

	byKey := map[string]model.ParsedField{}
	for _, f := range res.Data {
		byKey[f.Key] = f
	}

	assert.Equal(t, "Tracking ID", byKey["tid"].Field)
	assert.Equal(t, "Event Category", byKey["ec"].Field)
	assert.Equal(t, "Event Action", byKey["ea"].Field)

	cd := byKey["cd5"]
	assert.Equal(t, "Custom Dimension 5", cd.Field)
	assert.Equal(t, "custom", cd.Group)

	ht := byKey["t"]
	assert.True(t, ht.Hidden)

	rt := byKey["requestType"]
	assert.Equal(t, "Event", rt.Value)
	assert.True(t, rt.Hidden)
}

func TestGoogleAnalytics_ProductFamilies(t *testing.T) {
	t.Parallel()

	p := providers.NewGoogleAnalytics()

	tests := []struct {
		key  string
		want string
	}{
		{"pr1nm", "Product 1 Name"},
		{"pr2pr", "Product 2 Price"},
		{"pr3cd12", "Product 3 Custom Dimension 12"},
		{"il1nm", "Impression List 1"},
		{"il1pi2nm", "Impression List 1 Product 2 Name"},
		{"promo4ps", "Promotion 4 Position"},
		{"cg2", "Content Group 2"},
		{"cm9", "Custom Metric 9"},
	}
	for _, tt := range tests {
		f, ok := p.HandleParam(tt.key, "x")
		require.True(t, ok, tt.key)
		assert.Equal(t, tt.want, f.Field, tt.key)
	}
}

func TestGoogleAnalytics_PageViewDefault(t *testing.T) {
	t.Parallel()

	p := providers.NewGoogleAnalytics()
	res := provider.Parse(p, "https://www.google-analytics.com/collect?v=1&tid=UA-12345-1", "")

	var rt model.ParsedField
	for _, f := range res.Data {
		if f.Key == "requestType" {
			rt = f
		}
	}
	assert.Equal(t, "Page View", rt.Value)
}
