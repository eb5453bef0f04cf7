package providers

import (
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type pinterest struct {
	provider.Base
}

// NewPinterest Pinterest Tag 供应商
func NewPinterest() provider.Provider {
	return &pinterest{Base: provider.Base{
		ProviderKey:      "PINTEREST",
		ProviderName:     "Pinterest Tag",
		ProviderCategory: model.CategoryMarketing,
		URLPattern:       regexp.MustCompile(`(?i)ct\.pinterest\.com/(v\d+|user)/`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "events", Name: "Event Data"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "tid", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"tid":      {Name: "Tag ID", Group: "general"},
			"event":    {Name: "Event Type", Group: "events"},
			"noscript": {Name: "Noscript Tag", Group: "other"},
			"cb":       {Name: "Cache Buster", Group: "other", Hidden: true},
		},
		Families: []provider.FamilyRule{
			{
				Pattern: regexp.MustCompile(`^ed\[(.+)\]$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Event Data: " + m[1], Value: value, Group: "events"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^pd\[(.+)\]$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Pin Data: " + m[1], Value: value, Group: "events"}
				},
			},
		},
	}}
}

// HandleCustom 请求类型取事件类型，缺省 Page Visit
func (p *pinterest) HandleCustom(_ *url.URL, params url.Values) []model.ParsedField {
	label := params.Get("event")
	if label == "" {
		label = "Page Visit"
	}
	return []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true},
	}
}
