package provider_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beaconscope/pkg/provider"
)

func TestDecodeBody_FlattensNestedJSON(t *testing.T) {
	t.Parallel()

	pairs := provider.DecodeBody(`{"user":{"id":"u1","tags":["a","b"]},"count":3}`)
	require.Len(t, pairs, 4)
	assert.Equal(t, provider.Pair{Key: "user.id", Value: "u1"}, pairs[0])
	assert.Equal(t, provider.Pair{Key: "user.tags[0]", Value: "a"}, pairs[1])
	assert.Equal(t, provider.Pair{Key: "user.tags[1]", Value: "b"}, pairs[2])
	assert.Equal(t, provider.Pair{Key: "count", Value: "3"}, pairs[3])
}

func TestDecodeBody_ArrayOfObjects(t *testing.T) {
	t.Parallel()

	pairs := provider.DecodeBody(`{"events":[{"type":"click"},{"type":"view"}]}`)
	require.Len(t, pairs, 2)
	assert.Equal(t, "events[0].type", pairs[0].Key)
	assert.Equal(t, "click", pairs[0].Value)
	assert.Equal(t, "events[1].type", pairs[1].Key)
	assert.Equal(t, "view", pairs[1].Value)
}

func TestDecodeBody_EmptyComposites(t *testing.T) {
	t.Parallel()

	pairs := provider.DecodeBody(`{"a":{},"b":[]}`)
	require.Len(t, pairs, 2)
	assert.Equal(t, provider.Pair{Key: "a", Value: ""}, pairs[0])
	assert.Equal(t, provider.Pair{Key: "b", Value: ""}, pairs[1])
}

func TestDecodeBody_DepthTruncation(t *testing.T) {
	t.Parallel()

	body := `"deep"`
	for i := 11; i >= 1; i-- {
		body = fmt.Sprintf(`{"l%d":%s}`, i, body)
	}

	pairs := provider.DecodeBody(body)
	require.Len(t, pairs, 1)
	assert.Equal(t, "l1.l2.l3.l4.l5.l6.l7.l8.l9.l10", pairs[0].Key)
	assert.Equal(t, provider.TruncatedValue, pairs[0].Value)
}

func TestDecodeBody_FormFallback(t *testing.T) {
	t.Parallel()

	pairs := provider.DecodeBody("a=1&b=two%20words&junk&=orphan")
	require.Len(t, pairs, 2)
	assert.Equal(t, provider.Pair{Key: "a", Value: "1"}, pairs[0])
	assert.Equal(t, provider.Pair{Key: "b", Value: "two words"}, pairs[1])
}

func TestDecodeBody_UnparseableYieldsNothing(t *testing.T) {
	t.Parallel()

	assert.Empty(t, provider.DecodeBody("{{{not valid"))
	assert.Empty(t, provider.DecodeBody(""))
	assert.Empty(t, provider.DecodeBody("   "))
}

func TestGroupForPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"xdm.identityMap.ECID[0].id", "identity"},
		{"events[0].xdm.commerce.order.purchaseID", "commerce"},
		{"xdm.web.webPageDetails.name", "web"},
		{"xdm.environment.browserDetails.viewportWidth", "context"},
		{"meta.target.clientCode", "target"},
		{"xdm.eventType", "general"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, provider.GroupForPath(tt.path), tt.path)
	}
}
