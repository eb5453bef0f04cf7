package providers

import (
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type criteo struct {
	provider.Base
}

// NewCriteo Criteo OneTag 供应商
func NewCriteo() provider.Provider {
	return &criteo{Base: provider.Base{
		ProviderKey:      "CRITEO",
		ProviderName:     "Criteo OneTag",
		ProviderCategory: model.CategoryMarketing,
		URLPattern:       regexp.MustCompile(`(?i)(widget|sslwidget|dis)\.criteo\.com/(event|dis)`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "events", Name: "Events"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "a", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"a":        {Name: "Partner ID", Group: "general"},
			"v":        {Name: "Tag Version", Group: "other"},
			"siteType": {Name: "Site Type", Group: "general"},
			"dtycbr":   {Name: "Cache Buster", Group: "other", Hidden: true},
		},
		Families: []provider.FamilyRule{
			{
				Pattern: regexp.MustCompile(`^p(\d+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Event Parameter " + m[1], Value: value, Group: "events"}
				},
			},
		},
	}}
}

// HandleCustom 事件统一标记
func (p *criteo) HandleCustom(_ *url.URL, _ url.Values) []model.ParsedField {
	return []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: "Event", Group: "general", Hidden: true},
	}
}
