package providers

import (
	"net/url"
	"regexp"
	"strings"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type quantcast struct {
	provider.Base
}

// NewQuantcast Quantcast Measure 供应商。
// 与 Floodlight 类似，参数以分号分隔内嵌在路径中。
func NewQuantcast() provider.Provider {
	return &quantcast{Base: provider.Base{
		ProviderKey:      "QUANTCAST",
		ProviderName:     "Quantcast Measure",
		ProviderCategory: model.CategoryAnalytics,
		URLPattern:       regexp.MustCompile(`(?i)pixel\.quantserve\.com/pixel`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "a", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"a":      {Name: "P-Code", Group: "general"},
			"r":      {Name: "Cache Buster", Group: "other", Hidden: true},
			"labels": {Name: "Labels", Group: "general"},
			"fpan":   {Name: "First Party Cookie Status", Group: "other"},
			"fpa":    {Name: "First Party Cookie", Group: "other"},
			"ns":     {Name: "Navigation Start", Group: "other"},
			"ce":     {Name: "Cookies Enabled?", Group: "other"},
			"cm":     {Name: "Cache Mode", Group: "other"},
			"je":     {Name: "Java Enabled?", Group: "other"},
			"sr":     {Name: "Screen Resolution", Group: "other"},
			"enc":    {Name: "Encoding", Group: "other"},
			"dst":    {Name: "DST Offset", Group: "other"},
			"et":     {Name: "Event Timestamp", Group: "other"},
			"tzo":    {Name: "Timezone Offset", Group: "other"},
			"ref":    {Name: "Referrer URL", Group: "general"},
			"url":    {Name: "Page URL", Group: "general"},
			"ogl":    {Name: "Open Graph Labels", Group: "general"},
			"uh":     {Name: "User Hash", Group: "other", Hidden: true},
		},
	}}
}

// HandleCustom 解析路径中以分号分隔的参数对
func (p *quantcast) HandleCustom(u *url.URL, _ url.Values) []model.ParsedField {
	fields := []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: "Pixel", Group: "general", Hidden: true},
	}
	raw := u.Path
	i := strings.Index(raw, ";")
	if i < 0 {
		return fields
	}
	for _, part := range strings.Split(raw[i+1:], ";") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			continue
		}
		val := kv[1]
		if d, err := url.QueryUnescape(val); err == nil {
			val = d
		}
		fields = append(fields, provider.LookupField(p, kv[0], val))
	}
	return fields
}
