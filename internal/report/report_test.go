package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"beaconscope/internal/report"
	"beaconscope/pkg/model"
)

func TestWriter_EmitsJSONLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := report.NewWriter(&buf)

	res := model.ParseResult{
		Provider: model.ProviderInfo{Name: "Stub", Key: "STUB"},
		Data: []model.ParsedField{
			{Key: "a", Field: "A", Value: "1", Group: "general"},
		},
	}
	require.NoError(t, w.Write(res))
	require.NoError(t, w.Write(res))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		var got model.ParseResult
		require.NoError(t, json.Unmarshal([]byte(line), &got))
		assert.Equal(t, "STUB", got.Provider.Key)
		require.Len(t, got.Data, 1)
		assert.Equal(t, "1", got.Data[0].Value)
	}
}

func TestNest_RebuildsStructure(t *testing.T) {
	t.Parallel()

	fields := []model.ParsedField{
		{Key: "user.id", Value: "u1"},
		{Key: "events[0].type", Value: "click"},
		{Key: "events[1].type", Value: "view"},
		{Key: "requestType", Value: "Track", Hidden: true},
	}

	out := report.Nest(fields)
	require.True(t, gjson.Valid(out))
	assert.Equal(t, "u1", gjson.Get(out, "user.id").String())
	assert.Equal(t, "click", gjson.Get(out, "events.0.type").String())
	assert.Equal(t, "view", gjson.Get(out, "events.1.type").String())
	assert.False(t, gjson.Get(out, "requestType").Exists(), "hidden fields stay out of the export")
}

func TestNest_EmptyInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "{}", report.Nest(nil))
}
