package providers

import (
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type tikTok struct {
	provider.Base
}

// NewTikTok TikTok Pixel 供应商，事件数据走 JSON 载荷
func NewTikTok() provider.Provider {
	return &tikTok{Base: provider.Base{
		ProviderKey:      "TIKTOK",
		ProviderName:     "TikTok Pixel",
		ProviderCategory: model.CategoryMarketing,
		URLPattern:       regexp.MustCompile(`(?i)analytics\.tiktok\.com/api/v\d+/(pixel|track)`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "events", Name: "Events"},
			{Key: "context", Name: "Context"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "sdkid", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"sdkid":             {Name: "Pixel ID", Group: "general"},
			"analytics_uniq_id": {Name: "Analytics Unique ID", Group: "general"},
			"event":             {Name: "Event Name", Group: "events"},
			"event_id":          {Name: "Event ID", Group: "events"},
			"timestamp":         {Name: "Timestamp", Group: "other"},
		},
		Families: []provider.FamilyRule{
			{
				Pattern: regexp.MustCompile(`^context\.(.+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Context: " + m[1], Value: value, Group: "context"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^properties\.(.+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Property: " + m[1], Value: value, Group: "events"}
				},
			},
			{
				Pattern: regexp.MustCompile(`[.\[]`),
				Format: func(key, value string, _ []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: key, Value: value, Group: "other"}
				},
			},
		},
	}}
}

// HandleCustom 请求类型取事件名（查询串或载荷均可）
func (p *tikTok) HandleCustom(_ *url.URL, params url.Values) []model.ParsedField {
	label := params.Get("event")
	if label == "" {
		label = "Page View"
	}
	return []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true},
	}
}
