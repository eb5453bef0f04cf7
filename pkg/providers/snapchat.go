package providers

import (
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type snapchat struct {
	provider.Base
}

// NewSnapchat Snap Pixel 供应商
func NewSnapchat() provider.Provider {
	return &snapchat{Base: provider.Base{
		ProviderKey:      "SNAPCHAT",
		ProviderName:     "Snap Pixel",
		ProviderCategory: model.CategoryMarketing,
		URLPattern:       regexp.MustCompile(`(?i)tr\.snapchat\.com/(p|v2)`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "events", Name: "Events"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "pid", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"pid": {Name: "Pixel ID", Group: "general"},
			"ev":  {Name: "Event Type", Group: "events"},
			"pl":  {Name: "Page URL", Group: "general"},
			"rf":  {Name: "Referrer URL", Group: "general"},
			"ts":  {Name: "Timestamp", Group: "other", Hidden: true},
			"v":   {Name: "Pixel Version", Group: "other"},
			"if":  {Name: "In an iFrame", Group: "other"},
			"u_c1": {Name: "Cookie1 ID", Group: "other", Hidden: true},
		},
	}}
}

// HandleCustom 请求类型取事件类型，缺省 PAGE_VIEW
func (p *snapchat) HandleCustom(_ *url.URL, params url.Values) []model.ParsedField {
	label := params.Get("ev")
	if label == "" {
		label = "PAGE_VIEW"
	}
	return []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true},
	}
}
