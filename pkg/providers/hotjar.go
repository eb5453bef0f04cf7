package providers

import (
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

var hotjarSitePath = regexp.MustCompile(`hotjar-(\d+)\.js`)

type hotjar struct {
	provider.Base
}

// NewHotjar Hotjar 供应商，站点 ID 内嵌在脚本文件名中
func NewHotjar() provider.Provider {
	return &hotjar{Base: provider.Base{
		ProviderKey:      "HOTJAR",
		ProviderName:     "Hotjar",
		ProviderCategory: model.CategorySessionReplay,
		URLPattern:       regexp.MustCompile(`(?i)static\.hotjar\.com/c/hotjar-|script\.hotjar\.com/|vars\.hotjar\.com/`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "siteId", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"sv": {Name: "Script Version", Group: "other"},
		},
	}}
}

// HandleCustom 从脚本路径提取站点 ID
func (p *hotjar) HandleCustom(u *url.URL, _ url.Values) []model.ParsedField {
	fields := []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: "Library Load", Group: "general", Hidden: true},
	}
	if m := hotjarSitePath.FindStringSubmatch(u.Path); m != nil {
		fields = append(fields, model.ParsedField{
			Key: "siteId", Field: "Site ID", Value: m[1], Group: "general",
		})
	}
	return fields
}
