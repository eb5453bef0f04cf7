package providers_test

import (
	"encoding/base64"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
	"beaconscope/pkg/providers"
)

func TestMixpanel_Base64DataPayload(t *testing.T) {
	t.Parallel()

	payload := `{"event":"Signed Up","properties":{"token":"tok-1","plan":"pro"}}`
	data := base64.StdEncoding.EncodeToString([]byte(payload))

	p := providers.NewMixpanel()
	res := provider.Parse(p, "https://api-js.mixpanel.com/track/?data="+url.QueryEscape(data), "")
	require.Empty(t, res.Error)

	byKey := map[string]model.ParsedField{}
	for _, f := range res.Data {
		byKey[f.Key] = f
	}

	assert.Equal(t, "Signed Up", byKey["event"].Value)
	assert.Equal(t, "pro", byKey["properties.plan"].Value)

	tok := byKey["token"]
	assert.Equal(t, "Project Token", tok.Field)
	assert.Equal(t, "tok-1", tok.Value)
	assert.Equal(t, "general", tok.Group)

	rt := byKey["requestType"]
	assert.Equal(t, "Track", rt.Value)
	assert.True(t, rt.Hidden)
}

func TestMixpanel_UnparseableDataKeptOpaque(t *testing.T) {
	t.Parallel()

	p := providers.NewMixpanel()
	res := provider.Parse(p, "https://api.mixpanel.com/engage/?data=%7B%7B%7Bnope", "")
	require.Empty(t, res.Error)

	var opaque, rt model.ParsedField
	for _, f := range res.Data {
		switch f.Field {
		case "Data Payload (unparseable)":
			opaque = f
		case "Request Type":
			rt = f
		}
	}
	assert.Equal(t, "{{{nope", opaque.Value)
	assert.Equal(t, "other", opaque.Group)
	assert.Equal(t, "Engage", rt.Value)
}
