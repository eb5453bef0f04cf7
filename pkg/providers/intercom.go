package providers

import (
	"net/url"
	"path"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type intercom struct {
	provider.Base
}

// NewIntercom Intercom Messenger 供应商
func NewIntercom() provider.Provider {
	return &intercom{Base: provider.Base{
		ProviderKey:      "INTERCOM",
		ProviderName:     "Intercom",
		ProviderCategory: model.CategoryCustomerEngagement,
		URLPattern:       regexp.MustCompile(`(?i)api-iam\.intercom\.io/messenger/web/(ping|events|metrics)|widget\.intercom\.io/widget/`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "user", Name: "User"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "app_id", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"app_id":            {Name: "App ID", Group: "general"},
			"v":                 {Name: "API Version", Group: "other"},
			"g":                 {Name: "Page URL", Group: "general"},
			"r":                 {Name: "Referrer URL", Group: "general"},
			"platform":          {Name: "Platform", Group: "other"},
			"user_data":         {Name: "User Data", Group: "user"},
			"device_identifier": {Name: "Device Identifier", Group: "user"},
			"internal":          {Name: "Internal Flags", Group: "other", Hidden: true},
		},
		Families: []provider.FamilyRule{
			{
				Pattern: regexp.MustCompile(`^user_data\.(.+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "User: " + m[1], Value: value, Group: "user"}
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

// HandleCustom 请求类型取 messenger 端点动作；widget 路径视为库加载，
// 且 App ID 内嵌在路径末段。
func (p *intercom) HandleCustom(u *url.URL, _ url.Values) []model.ParsedField {
	if u.Host == "widget.intercom.io" {
		fields := []model.ParsedField{
			{Key: "requestType", Field: "Request Type", Value: "Library Load", Group: "general", Hidden: true},
		}
		if base := path.Base(u.Path); base != "widget" && base != "." && base != "/" {
			fields = append(fields, model.ParsedField{
				Key: "app_id", Field: "App ID", Value: base, Group: "general",
			})
		}
		return fields
	}
	label := path.Base(u.Path)
	if label == "" || label == "." {
		label = "ping"
	}
	return []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true},
	}
}
