package providers

import (
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

var crazyEggScriptPath = regexp.MustCompile(`/pages/scripts/(\d+)/(\d+)\.js`)

type crazyEgg struct {
	provider.Base
}

// NewCrazyEgg Crazy Egg 供应商，账号编号拆分内嵌在脚本路径中
func NewCrazyEgg() provider.Provider {
	return &crazyEgg{Base: provider.Base{
		ProviderKey:      "CRAZYEGG",
		ProviderName:     "Crazy Egg",
		ProviderCategory: model.CategorySessionReplay,
		URLPattern:       regexp.MustCompile(`(?i)script\.crazyegg\.com/pages/scripts/|dnn506yrbagrg\.cloudfront\.net/pages/scripts/`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "accountId", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"t": {Name: "Timestamp", Group: "other", Hidden: true},
		},
	}}
}

// HandleCustom 账号编号由路径两段数字拼接而成
func (p *crazyEgg) HandleCustom(u *url.URL, _ url.Values) []model.ParsedField {
	fields := []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: "Library Load", Group: "general", Hidden: true},
	}
	if m := crazyEggScriptPath.FindStringSubmatch(u.Path); m != nil {
		fields = append(fields, model.ParsedField{
			Key: "accountId", Field: "Account Number", Value: m[1] + m[2], Group: "general",
		})
	}
	return fields
}
