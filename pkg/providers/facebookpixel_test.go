package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
	"beaconscope/pkg/providers"
)

func TestFacebookPixel_PurchaseEvent(t *testing.T) {
	t.Parallel()

	p := providers.NewFacebookPixel()
	res := provider.Parse(p, "https://www.facebook.com/tr/?id=999&ev=Purchase&cd%5Bvalue%5D=49.99&cd%5Bcurrency%5D=USD", "")
	require.Empty(t, res.Error)

	byKey := map[string]model.ParsedField{}
	for _, f := range res.Data {
		byKey[f.Key] = f
	}

	assert.Equal(t, "Pixel ID", byKey["id"].Field)
	assert.Equal(t, "999", byKey["id"].Value)

	assert.Equal(t, "Event Name", byKey["ev"].Field)
	assert.Equal(t, "Purchase", byKey["ev"].Value)

	cd := byKey["cd[value]"]
	assert.Equal(t, "Custom Data: value", cd.Field)
	assert.Equal(t, "49.99", cd.Value)
	assert.Equal(t, "customdata", cd.Group)
	assert.Equal(t, "Custom Data: currency", byKey["cd[currency]"].Field)

	rt := byKey["requestType"]
	assert.Equal(t, "Purchase", rt.Value)
	assert.True(t, rt.Hidden)
}

func TestFacebookPixel_DefaultsToPageView(t *testing.T) {
	t.Parallel()

	p := providers.NewFacebookPixel()
	res := provider.Parse(p, "https://www.facebook.com/tr?id=999", "")
	require.Empty(t, res.Error)

	var rt model.ParsedField
	for _, f := range res.Data {
		if f.Key == "requestType" {
			rt = f
		}
	}
	assert.Equal(t, "Page View", rt.Value)
}
