package providers

import (
	"net/url"
	"regexp"
	"strings"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type adobeAudienceManager struct {
	provider.Base
}

// NewAdobeAudienceManager Adobe Audience Manager 供应商
func NewAdobeAudienceManager() provider.Provider {
	return &adobeAudienceManager{Base: provider.Base{
		ProviderKey:      "ADOBEAUDIENCEMANAGER",
		ProviderName:     "Adobe Audience Manager",
		ProviderCategory: model.CategoryVisitorID,
		URLPattern:       regexp.MustCompile(`(?i)\.demdex\.net/(event|ibs|id\b|dest5)`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "customer", Name: "Customer Attributes"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "d_orgid", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"d_orgid":  {Name: "Organization ID", Group: "general"},
			"d_uuid":   {Name: "Unique User ID", Group: "general"},
			"d_mid":    {Name: "Experience Cloud ID", Group: "general"},
			"d_sid":    {Name: "Data Source ID", Group: "general"},
			"d_cid":    {Name: "Customer ID", Group: "general"},
			"d_cid_ic": {Name: "Customer ID (integration code)", Group: "general"},
			"d_cb":     {Name: "Callback", Group: "other"},
			"d_rtbd":   {Name: "Return Method", Group: "other"},
			"d_cts":    {Name: "Traits Return Type", Group: "other"},
			"d_dst":    {Name: "Return Destinations", Group: "other"},
			"d_coop_safe": {Name: "Device Co-op Safe", Group: "other"},
			"dst":      {Name: "Destination URL", Group: "other"},
		},
		Families: []provider.FamilyRule{
			{
				Pattern: regexp.MustCompile(`^c_(.+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Customer Attribute: " + m[1], Value: value, Group: "customer"}
				},
			},
		},
	}}
}

// HandleCustom 请求类型按端点区分事件上报与 ID 同步
func (p *adobeAudienceManager) HandleCustom(u *url.URL, _ url.Values) []model.ParsedField {
	label := "Event Call"
	if strings.Contains(u.Path, "/ibs") || strings.Contains(u.Path, "/id") {
		label = "ID Sync"
	}
	return []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true},
	}
}
