package providers

import (
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type facebookPixel struct {
	provider.Base
}

// NewFacebookPixel Facebook (Meta) Pixel 供应商
func NewFacebookPixel() provider.Provider {
	return &facebookPixel{Base: provider.Base{
		ProviderKey:      "FACEBOOKPIXEL",
		ProviderName:     "Facebook Pixel",
		ProviderCategory: model.CategoryMarketing,
		URLPattern:       regexp.MustCompile(`(?i)facebook\.com/tr[/?]`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "events", Name: "Events"},
			{Key: "customdata", Name: "Custom Data"},
			{Key: "userdata", Name: "User Data"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "id", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"id":  {Name: "Pixel ID", Group: "general"},
			"ev":  {Name: "Event Name", Group: "events"},
			"dl":  {Name: "Page URL", Group: "general"},
			"rl":  {Name: "Referring URL", Group: "general"},
			"if":  {Name: "In an iFrame", Group: "other"},
			"ts":  {Name: "Timestamp", Group: "other"},
			"sw":  {Name: "Screen Width", Group: "other"},
			"sh":  {Name: "Screen Height", Group: "other"},
			"v":   {Name: "Pixel Version", Group: "other"},
			"r":   {Name: "Pixel Release", Group: "other"},
			"ec":  {Name: "Event Count", Group: "other"},
			"o":   {Name: "Pixel Options", Group: "other"},
			"it":  {Name: "Initialization Time", Group: "other", Hidden: true},
			"coo": {Name: "Cookies Allowed", Group: "other"},
			"eid": {Name: "Event ID", Group: "events"},
			"dpo": {Name: "Data Processing Options", Group: "other"},
		},
		Families: []provider.FamilyRule{
			{
				Pattern: regexp.MustCompile(`^cd\[(.+)\]$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Custom Data: " + m[1], Value: value, Group: "customdata"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^ud\[(.+)\]$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "User Data: " + m[1], Value: value, Group: "userdata"}
				},
			},
		},
	}}
}

// HandleCustom 请求类型取事件名，缺省视为 Page View
func (p *facebookPixel) HandleCustom(_ *url.URL, params url.Values) []model.ParsedField {
	label := params.Get("ev")
	if label == "" {
		label = "Page View"
	}
	return []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true},
	}
}
