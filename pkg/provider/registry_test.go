package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beaconscope/pkg/provider"
)

func TestRegistry_Matches(t *testing.T) {
	t.Parallel()

	r := provider.NewRegistry()
	assert.False(t, r.Matches("https://stub.test/collect"), "empty registry matches nothing")

	r.AddProvider(newStubProvider("ALPHA", `alpha\.test/px`))
	r.AddProvider(newStubProvider("BETA", `beta\.test/px`))

	assert.True(t, r.Matches("https://alpha.test/px?a=1"))
	assert.True(t, r.Matches("https://BETA.TEST/px"), "combined pattern is case-insensitive")
	assert.False(t, r.Matches("https://example.com/page"))
}

func TestRegistry_MatchingProviders_RegistrationOrder(t *testing.T) {
	t.Parallel()

	r := provider.NewRegistry()
	r.AddProvider(newStubProvider("FIRST", `(?i)shared\.test/px`))
	r.AddProvider(newStubProvider("SECOND", `(?i)shared\.test/`))

	matched := r.MatchingProviders("https://shared.test/px")
	require.Len(t, matched, 2)
	assert.Equal(t, "FIRST", matched[0].Key())
	assert.Equal(t, "SECOND", matched[1].Key())
}

func TestRegistry_Parse_FirstMatchWins(t *testing.T) {
	t.Parallel()

	r := provider.NewRegistry()
	r.AddProvider(newStubProvider("FIRST", `(?i)shared\.test/px`))
	r.AddProvider(newStubProvider("SECOND", `(?i)shared\.test/`))

	res := r.Parse("https://shared.test/px?acct=A-1", "")
	assert.Equal(t, "FIRST", res.Provider.Key)

	all := r.ParseAll("https://shared.test/px?acct=A-1", "")
	require.Len(t, all, 2)
	assert.Equal(t, "SECOND", all[1].Provider.Key)
}

func TestRegistry_Parse_NoMatchIsNeutral(t *testing.T) {
	t.Parallel()

	r := provider.NewRegistry()
	r.AddProvider(newStubProvider("ALPHA", `alpha\.test/px`))

	res := r.Parse("https://example.com/page", "ignored=1")
	assert.Empty(t, res.Provider.Key)
	assert.Empty(t, res.Provider.Name)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
	assert.Empty(t, res.Error)
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	r := provider.NewRegistry()
	r.AddProvider(newStubProvider("ALPHA", `alpha\.test/px`))

	p, ok := r.Get("ALPHA")
	require.True(t, ok)
	assert.Equal(t, "ALPHA", p.Key())

	_, ok = r.Get("MISSING")
	assert.False(t, ok)
}
