package provider_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

func TestParse_PreservesWireOrder(t *testing.T) {
	t.Parallel()

	p := newStubProvider("STUB", `(?i)stub\.test/collect`)
	res := provider.Parse(p, "https://stub.test/collect?b=2&acct=A-1&b=3", "")

	require.Empty(t, res.Error)
	require.Len(t, res.Data, 3)
	assert.Equal(t, []string{"b", "acct", "b"}, []string{res.Data[0].Key, res.Data[1].Key, res.Data[2].Key})
	assert.Equal(t, "2", res.Data[0].Value)
	assert.Equal(t, "3", res.Data[2].Value)
}

func TestParse_AppendsBodyAfterQuery(t *testing.T) {
	t.Parallel()

	p := newStubProvider("STUB", `(?i)stub\.test/collect`)
	res := provider.Parse(p, "https://stub.test/collect?acct=A-1", `{"dim7":"blue"}`)

	require.Empty(t, res.Error)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "Account", res.Data[0].Field)
	assert.Equal(t, "Dimension 7", res.Data[1].Field)
}

func TestParse_UnescapesQueryValues(t *testing.T) {
	t.Parallel()

	p := newStubProvider("STUB", `(?i)stub\.test/collect`)
	res := provider.Parse(p, "https://stub.test/collect?acct=hello%20world", "")

	require.Len(t, res.Data, 1)
	assert.Equal(t, "hello world", res.Data[0].Value)
}

func TestParse_MalformedURLBecomesError(t *testing.T) {
	t.Parallel()

	p := newStubProvider("STUB", `(?i)stub\.test/collect`)
	res := provider.Parse(p, "https://example.com/%zz", "")

	assert.NotEmpty(t, res.Error)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
	assert.Equal(t, "STUB", res.Provider.Key, "provider identity survives the failure")
}

type panickyProvider struct {
	provider.Base
}

func (p *panickyProvider) HandleCustom(_ *url.URL, _ url.Values) []model.ParsedField {
	panic("boom")
}

func TestParse_RecoversHookPanic(t *testing.T) {
	t.Parallel()

	p := &panickyProvider{Base: *newStubProvider("PANICKY", `(?i)stub\.test/collect`)}
	p.ProviderKey = "PANICKY"

	res := provider.Parse(p, "https://stub.test/collect?acct=A-1", "")
	assert.Contains(t, res.Error, "PANICKY")
	assert.Contains(t, res.Error, "boom")
	assert.Empty(t, res.Data)
}
