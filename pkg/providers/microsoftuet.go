package providers

import (
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type microsoftUET struct {
	provider.Base
}

// NewMicrosoftUET Microsoft Advertising UET 供应商
func NewMicrosoftUET() provider.Provider {
	return &microsoftUET{Base: provider.Base{
		ProviderKey:      "MICROSOFTUET",
		ProviderName:     "Microsoft UET",
		ProviderCategory: model.CategoryMarketing,
		URLPattern:       regexp.MustCompile(`(?i)bat\.bing\.com/action/`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "events", Name: "Events"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "ti", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"ti":  {Name: "Tag ID", Group: "general"},
			"Ver": {Name: "Library Version", Group: "other"},
			"mid": {Name: "Message ID", Group: "other", Hidden: true},
			"evt": {Name: "Event Type", Group: "general", Hidden: true},
			"sv":  {Name: "Script Version", Group: "other"},
			"pi":  {Name: "Page ID", Group: "other"},
			"lg":  {Name: "Language", Group: "other"},
			"sw":  {Name: "Screen Width", Group: "other"},
			"sh":  {Name: "Screen Height", Group: "other"},
			"sc":  {Name: "Screen Color Depth", Group: "other"},
			"tl":  {Name: "Page Title", Group: "general"},
			"p":   {Name: "Page URL", Group: "general"},
			"r":   {Name: "Referrer URL", Group: "general"},
			"ec":  {Name: "Event Category", Group: "events"},
			"ea":  {Name: "Event Action", Group: "events"},
			"el":  {Name: "Event Label", Group: "events"},
			"ev":  {Name: "Event Value", Group: "events"},
			"gv":  {Name: "Goal Value", Group: "events"},
			"gc":  {Name: "Goal Currency", Group: "events"},
			"en":  {Name: "Event Name", Group: "events"},
		},
	}}
}

// HandleCustom 请求类型取 evt 参数，缺省 pageLoad
func (p *microsoftUET) HandleCustom(_ *url.URL, params url.Values) []model.ParsedField {
	label := params.Get("evt")
	if label == "" {
		label = "pageLoad"
	}
	return []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true},
	}
}
