package provider_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

func newStubProvider(key, pattern string) *provider.Base {
	return &provider.Base{
		ProviderKey:      key,
		ProviderName:     key + " Tracker",
		ProviderCategory: model.CategoryAnalytics,
		URLPattern:       regexp.MustCompile(pattern),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "acct", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"acct":  {Name: "Account", Group: "general"},
			"debug": {Name: "Debug Flag", Group: "other", Hidden: true},
		},
		Families: []provider.FamilyRule{
			{
				Pattern: regexp.MustCompile(`^dim(\d+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Dimension " + m[1], Value: value, Group: "general"}
				},
			},
		},
	}
}

func TestBase_HandleParam_FamilyBeforeCatalog(t *testing.T) {
	t.Parallel()

	p := newStubProvider("STUB", `(?i)stub\.test/collect`)

	f, ok := p.HandleParam("dim42", "red")
	require.True(t, ok)
	assert.Equal(t, "Dimension 42", f.Field)
	assert.Equal(t, "red", f.Value)
	assert.Equal(t, "general", f.Group)

	_, ok = p.HandleParam("acct", "A-1")
	assert.False(t, ok, "catalog keys are not the family path")
}

func TestLookupField(t *testing.T) {
	t.Parallel()

	p := newStubProvider("STUB", `(?i)stub\.test/collect`)

	f := provider.LookupField(p, "acct", "A-1")
	assert.Equal(t, model.ParsedField{Key: "acct", Field: "Account", Value: "A-1", Group: "general"}, f)

	f = provider.LookupField(p, "debug", "1")
	assert.True(t, f.Hidden)

	// 未知键保留原样并归入 other
	f = provider.LookupField(p, "mystery", "x")
	assert.Equal(t, model.ParsedField{Key: "mystery", Field: "mystery", Value: "x", Group: "other"}, f)
}

func TestNeutral(t *testing.T) {
	t.Parallel()

	n := provider.Neutral()
	assert.Empty(t, n.Key())
	assert.Empty(t, n.Name())
	assert.Equal(t, model.CategoryUnknown, n.Category())
	assert.False(t, n.Pattern().MatchString("https://example.com/page?a=1"))
	assert.Empty(t, n.Groups())
}

func TestInfo(t *testing.T) {
	t.Parallel()

	p := newStubProvider("STUB", `(?i)stub\.test/collect`)
	info := provider.Info(p)
	assert.Equal(t, "STUB", info.Key)
	assert.Equal(t, "STUB Tracker", info.Name)
	assert.Equal(t, model.CategoryAnalytics, info.Category)
	assert.Equal(t, "acct", info.Columns.Account)
	require.Len(t, info.Groups, 2)
}
