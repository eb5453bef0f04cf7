package providers

import (
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type amplitude struct {
	provider.Base
}

// NewAmplitude Amplitude 供应商，事件批次走 JSON 载荷
func NewAmplitude() provider.Provider {
	return &amplitude{Base: provider.Base{
		ProviderKey:      "AMPLITUDE",
		ProviderName:     "Amplitude",
		ProviderCategory: model.CategoryAnalytics,
		URLPattern:       regexp.MustCompile(`(?i)api2?\.amplitude\.com/(2/httpapi|httpapi|batch)`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "events", Name: "Events"},
			{Key: "user", Name: "User Properties"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "api_key", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"api_key": {Name: "API Key", Group: "general"},
			"v":       {Name: "API Version", Group: "other"},
			"client":  {Name: "Client Key", Group: "general"},
		},
		Families: []provider.FamilyRule{
			{
				Pattern: regexp.MustCompile(`^events\[(\d+)\]\.event_type$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Event " + m[1] + " Type", Value: value, Group: "events"}
				},
			},
			{
				Pattern: regexp.MustCompile(`user_properties\.(.+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "User Property: " + m[1], Value: value, Group: "user"}
				},
			},
			{
				Pattern: regexp.MustCompile(`[.\[]`),
				Format: func(key, value string, _ []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: key, Value: value, Group: "events"}
				},
			},
		},
	}}
}

// HandleCustom 事件批次统一标记
func (p *amplitude) HandleCustom(_ *url.URL, _ url.Values) []model.ParsedField {
	return []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: "Event Batch", Group: "general", Hidden: true},
	}
}
