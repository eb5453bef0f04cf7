package providers

import (
	"net/url"
	"path"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

// segmentCallTypes 端点路径到调用类型的映射
var segmentCallTypes = map[string]string{
	"t":        "Track",
	"track":    "Track",
	"p":        "Page",
	"page":     "Page",
	"i":        "Identify",
	"identify": "Identify",
	"g":        "Group",
	"group":    "Group",
	"a":        "Alias",
	"alias":    "Alias",
	"s":        "Screen",
	"screen":   "Screen",
	"batch":    "Batch",
}

type segment struct {
	provider.Base
}

// NewSegment Segment 供应商，调用数据走 JSON 载荷
func NewSegment() provider.Provider {
	return &segment{Base: provider.Base{
		ProviderKey:      "SEGMENT",
		ProviderName:     "Segment",
		ProviderCategory: model.CategoryAnalytics,
		URLPattern:       regexp.MustCompile(`(?i)api\.segment\.io/v\d+/`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "events", Name: "Properties"},
			{Key: "user", Name: "Traits"},
			{Key: "context", Name: "Context"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "writeKey", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"writeKey":    {Name: "Write Key", Group: "general"},
			"userId":      {Name: "User ID", Group: "general"},
			"anonymousId": {Name: "Anonymous ID", Group: "general"},
			"event":       {Name: "Event Name", Group: "events"},
			"name":        {Name: "Page Name", Group: "general"},
			"type":        {Name: "Call Type", Group: "general", Hidden: true},
			"messageId":   {Name: "Message ID", Group: "other"},
			"timestamp":   {Name: "Timestamp", Group: "other"},
			"sentAt":      {Name: "Sent At", Group: "other", Hidden: true},
			"channel":     {Name: "Channel", Group: "other"},
			"version":     {Name: "Version", Group: "other"},
		},
		Families: []provider.FamilyRule{
			{
				Pattern: regexp.MustCompile(`^properties\.(.+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Property: " + m[1], Value: value, Group: "events"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^traits\.(.+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Trait: " + m[1], Value: value, Group: "user"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^context\.(.+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Context: " + m[1], Value: value, Group: "context"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^integrations\.(.+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Integration: " + m[1], Value: value, Group: "other"}
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

// HandleCustom 调用类型优先取载荷 type 字段，否则按端点路径推断
func (p *segment) HandleCustom(u *url.URL, params url.Values) []model.ParsedField {
	label := segmentCallTypes[params.Get("type")]
	if label == "" {
		label = segmentCallTypes[path.Base(u.Path)]
	}
	if label == "" {
		label = "Track"
	}
	return []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true},
	}
}
