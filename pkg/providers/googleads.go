package providers

import (
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

var googleAdsConversionPath = regexp.MustCompile(`/pagead/(?:1p-)?conversion/(\d+)`)

type googleAds struct {
	provider.Base
}

// NewGoogleAds Google Ads 转化跟踪供应商
func NewGoogleAds() provider.Provider {
	return &googleAds{Base: provider.Base{
		ProviderKey:      "GOOGLEADS",
		ProviderName:     "Google Ads",
		ProviderCategory: model.CategoryMarketing,
		URLPattern:       regexp.MustCompile(`(?i)googleadservices\.com/pagead/conversion|google\.com/pagead/1p-conversion`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "conversion", Name: "Conversion"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "conversionId", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"label":         {Name: "Conversion Label", Group: "conversion"},
			"value":         {Name: "Conversion Value", Group: "conversion"},
			"currency_code": {Name: "Currency Code", Group: "conversion"},
			"guid":          {Name: "GUID", Group: "other", Hidden: true},
			"script":        {Name: "Script Source", Group: "other"},
			"url":           {Name: "Page URL", Group: "general"},
			"tiba":          {Name: "Page Title", Group: "general"},
			"rnd":           {Name: "Cache Buster", Group: "other", Hidden: true},
			"fmt":           {Name: "Format", Group: "other"},
			"gclaw":         {Name: "Click ID (aw)", Group: "other", Hidden: true},
		},
	}}
}

// HandleCustom 转化 ID 内嵌在路径而非查询串中
func (p *googleAds) HandleCustom(u *url.URL, _ url.Values) []model.ParsedField {
	fields := []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: "Conversion", Group: "general", Hidden: true},
	}
	if m := googleAdsConversionPath.FindStringSubmatch(u.Path); m != nil {
		fields = append(fields, model.ParsedField{
			Key: "conversionId", Field: "Conversion ID", Value: m[1], Group: "general",
		})
	}
	return fields
}
