package providers

import (
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type optimizely struct {
	provider.Base
}

// NewOptimizely Optimizely 供应商，事件批次走 JSON 载荷
func NewOptimizely() provider.Provider {
	return &optimizely{Base: provider.Base{
		ProviderKey:      "OPTIMIZELY",
		ProviderName:     "Optimizely",
		ProviderCategory: model.CategoryTesting,
		URLPattern:       regexp.MustCompile(`(?i)logx\.optimizely\.com/v\d+/events|\.optimizely\.com/log/event`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "visitors", Name: "Visitors"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "account_id", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"account_id":      {Name: "Account ID", Group: "general"},
			"project_id":      {Name: "Project ID", Group: "general"},
			"client_name":     {Name: "Client Name", Group: "other"},
			"client_version":  {Name: "Client Version", Group: "other"},
			"anonymize_ip":    {Name: "Anonymize IP", Group: "other"},
			"enrich_decisions": {Name: "Enrich Decisions", Group: "other"},
		},
		Families: []provider.FamilyRule{
			{
				Pattern: regexp.MustCompile(`^visitors\[(\d+)\]\.(.+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Visitor " + m[1] + ": " + m[2], Value: value, Group: "visitors"}
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

// HandleCustom 事件日志统一标记
func (p *optimizely) HandleCustom(_ *url.URL, _ url.Values) []model.ParsedField {
	return []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: "Event Log", Group: "general", Hidden: true},
	}
}
