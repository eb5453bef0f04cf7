package providers

import (
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type linkedInInsight struct {
	provider.Base
}

// NewLinkedInInsight LinkedIn Insight Tag 供应商
func NewLinkedInInsight() provider.Provider {
	return &linkedInInsight{Base: provider.Base{
		ProviderKey:      "LINKEDININSIGHT",
		ProviderName:     "LinkedIn Insight Tag",
		ProviderCategory: model.CategoryMarketing,
		URLPattern:       regexp.MustCompile(`(?i)px\.ads\.linkedin\.com/collect`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "conversion", Name: "Conversion"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "pid", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"pid":          {Name: "Partner ID", Group: "general"},
			"conversionId": {Name: "Conversion ID", Group: "conversion"},
			"fmt":          {Name: "Format", Group: "other"},
			"url":          {Name: "Page URL", Group: "general"},
			"v":            {Name: "Version", Group: "other"},
			"time":         {Name: "Timestamp", Group: "other", Hidden: true},
			"cookiesTest":  {Name: "Cookies Test", Group: "other"},
			"ea":           {Name: "Event Action", Group: "conversion"},
		},
	}}
}

// HandleCustom 带转化 ID 视为转化，否则视为页面加载
func (p *linkedInInsight) HandleCustom(_ *url.URL, params url.Values) []model.ParsedField {
	label := "Page Load"
	if params.Get("conversionId") != "" {
		label = "Conversion"
	}
	return []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true},
	}
}
