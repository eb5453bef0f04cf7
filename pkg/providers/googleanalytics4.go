package providers

import (
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type googleAnalytics4 struct {
	provider.Base
}

// NewGoogleAnalytics4 Google Analytics 4 供应商
func NewGoogleAnalytics4() provider.Provider {
	return &googleAnalytics4{Base: provider.Base{
		ProviderKey:      "GOOGLEANALYTICS4",
		ProviderName:     "Google Analytics 4",
		ProviderCategory: model.CategoryAnalytics,
		URLPattern:       regexp.MustCompile(`(?i)(region\d+\.)?(analytics\.google\.com|\.google-analytics\.com)/g/collect`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "events", Name: "Events"},
			{Key: "user", Name: "User Properties"},
			{Key: "campaign", Name: "Campaign"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "tid", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"v":     {Name: "Protocol Version", Group: "other"},
			"tid":   {Name: "Measurement ID", Group: "general"},
			"cid":   {Name: "Client ID", Group: "general"},
			"uid":   {Name: "User ID", Group: "general"},
			"sid":   {Name: "Session ID", Group: "general"},
			"sct":   {Name: "Session Count", Group: "general"},
			"seg":   {Name: "Session Engaged", Group: "general"},
			"en":    {Name: "Event Name", Group: "events"},
			"_et":   {Name: "Engagement Time (ms)", Group: "events"},
			"dl":    {Name: "Document Location", Group: "general"},
			"dt":    {Name: "Document Title", Group: "general"},
			"dr":    {Name: "Document Referrer", Group: "general"},
			"ul":    {Name: "User Language", Group: "other"},
			"sr":    {Name: "Screen Resolution", Group: "other"},
			"cs":    {Name: "Campaign Source", Group: "campaign"},
			"cm":    {Name: "Campaign Medium", Group: "campaign"},
			"cn":    {Name: "Campaign Name", Group: "campaign"},
			"cc":    {Name: "Campaign Content", Group: "campaign"},
			"ck":    {Name: "Campaign Term", Group: "campaign"},
			"gclid": {Name: "Google Ads Click ID", Group: "campaign"},
			"ir":    {Name: "Ignore Referrer", Group: "other"},
			"tt":    {Name: "Traffic Type", Group: "other"},
			"gtm":   {Name: "Tag Manager Hash", Group: "other", Hidden: true},
			"_p":    {Name: "Page Load Hash", Group: "other", Hidden: true},
			"_s":    {Name: "Hit Counter", Group: "other"},
			"_fv":   {Name: "First Visit", Group: "general"},
			"_ss":   {Name: "Session Start", Group: "general"},
			"_nsi":  {Name: "New Session ID", Group: "general", Hidden: true},
			"_dbg":  {Name: "Debug Mode", Group: "other"},
		},
		Families: []provider.FamilyRule{
			{
				Pattern: regexp.MustCompile(`^epn?\.(.+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Event Parameter: " + m[1], Value: value, Group: "events"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^upn?\.(.+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "User Property: " + m[1], Value: value, Group: "user"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^pr(\d+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Product " + m[1], Value: value, Group: "events"}
				},
			},
		},
	}}
}

// HandleCustom 请求类型取事件名，库加载除外
func (p *googleAnalytics4) HandleCustom(_ *url.URL, params url.Values) []model.ParsedField {
	label := params.Get("en")
	if label == "" {
		label = "Page View"
	}
	return []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true},
	}
}
