package providers

import (
	"net/url"
	"path"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type googleTagManager struct {
	provider.Base
}

// NewGoogleTagManager Google Tag Manager 供应商
func NewGoogleTagManager() provider.Provider {
	return &googleTagManager{Base: provider.Base{
		ProviderKey:      "GOOGLETAGMANAGER",
		ProviderName:     "Google Tag Manager",
		ProviderCategory: model.CategoryTagManager,
		URLPattern:       regexp.MustCompile(`(?i)googletagmanager\.com/(gtm\.js|gtag/js|ns\.html|a\?)`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "id", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"id":  {Name: "Container ID", Group: "general"},
			"l":   {Name: "Data Layer Name", Group: "general"},
			"gtm": {Name: "Environment", Group: "general"},
			"cx":  {Name: "Context", Group: "other"},
		},
	}}
}

// HandleCustom 从路径提取脚本类型，并派生请求类型
func (p *googleTagManager) HandleCustom(u *url.URL, _ url.Values) []model.ParsedField {
	fields := []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: "Library Load", Group: "general", Hidden: true},
	}
	if base := path.Base(u.Path); base != "." && base != "/" {
		fields = append(fields, model.ParsedField{
			Key: "scriptType", Field: "Script Type", Value: base, Group: "general",
		})
	}
	return fields
}
