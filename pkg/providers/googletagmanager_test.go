package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
	"beaconscope/pkg/providers"
)

func TestGoogleTagManager_LibraryLoad(t *testing.T) {
	t.Parallel()

	p := providers.NewGoogleTagManager()
	res := provider.Parse(p, "https://www.googletagmanager.com/gtm.js?id=GTM-ABC123", "")
	require.Empty(t, res.Error)

	byKey := map[string]model.ParsedField{}
	for _, f := range res.Data {
		byKey[f.Key] = f
	}

	id := byKey["id"]
	assert.Equal(t, "Container ID", id.Field)
	assert.Equal(t, "GTM-ABC123", id.Value)
	assert.False(t, id.Hidden)

	rt := byKey["requestType"]
	assert.Equal(t, "Library Load", rt.Value)
	assert.True(t, rt.Hidden, "request type feeds the summary column only")

	st := byKey["scriptType"]
	assert.Equal(t, "gtm.js", st.Value)
	assert.False(t, st.Hidden)
}
