package providers

import (
	"net/url"
	"path"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type rudderStack struct {
	provider.Base
}

// NewRudderStack RudderStack 供应商，载荷结构与 Segment 同源
func NewRudderStack() provider.Provider {
	return &rudderStack{Base: provider.Base{
		ProviderKey:      "RUDDERSTACK",
		ProviderName:     "RudderStack",
		ProviderCategory: model.CategoryAnalytics,
		URLPattern:       regexp.MustCompile(`(?i)[\w.-]*dataplane\.rudderstack\.com/v\d+/(track|page|identify|group|alias|screen|batch)`),
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
			"channel":     {Name: "Channel", Group: "other"},
			"messageId":   {Name: "Message ID", Group: "other"},
			"originalTimestamp": {Name: "Original Timestamp", Group: "other", Hidden: true},
			"sentAt":      {Name: "Sent At", Group: "other", Hidden: true},
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
				Pattern: regexp.MustCompile(`[.\[]`),
				Format: func(key, value string, _ []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: key, Value: value, Group: "other"}
				},
			},
		},
	}}
}

// HandleCustom 调用类型按端点路径推断
func (p *rudderStack) HandleCustom(u *url.URL, params url.Values) []model.ParsedField {
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
