package providers

import (
	"encoding/base64"
	"net/url"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type mixpanel struct {
	provider.Base
}

// NewMixpanel Mixpanel 供应商。
// 事件内容打包在 data 参数里，可能是裸 JSON 也可能是 base64。
func NewMixpanel() provider.Provider {
	return &mixpanel{Base: provider.Base{
		ProviderKey:      "MIXPANEL",
		ProviderName:     "Mixpanel",
		ProviderCategory: model.CategoryAnalytics,
		URLPattern:       regexp.MustCompile(`(?i)api(-js)?\.mixpanel\.com/(track|engage|decide)`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "data", Name: "Event Data"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "token", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"data":    {Name: "Data Payload", Group: "data", Hidden: true},
			"verbose": {Name: "Verbose Response", Group: "other"},
			"ip":      {Name: "Track Client IP", Group: "other"},
			"img":     {Name: "Image Response", Group: "other"},
			"_":       {Name: "Cache Buster", Group: "other", Hidden: true},
		},
	}}
}

// HandleCustom 展开 data 参数；解不开时保留原始值并标注不可解析
func (p *mixpanel) HandleCustom(u *url.URL, params url.Values) []model.ParsedField {
	label := "Track"
	if strings.Contains(u.Path, "/engage") {
		label = "Engage"
	} else if strings.Contains(u.Path, "/decide") {
		label = "Decide"
	}
	fields := []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true},
	}

	raw := params.Get("data")
	if raw == "" {
		return fields
	}
	decoded := raw
	if !gjson.Valid(decoded) {
		if b, err := base64.StdEncoding.DecodeString(raw); err == nil {
			decoded = string(b)
		}
	}
	if !gjson.Valid(decoded) {
		fields = append(fields, model.ParsedField{
			Key: "data", Field: "Data Payload (unparseable)", Value: raw, Group: "other",
		})
		return fields
	}
	for _, pr := range provider.DecodeBody(decoded) {
		f := model.ParsedField{Key: pr.Key, Field: pr.Key, Value: pr.Value, Group: "data"}
		if strings.HasSuffix(pr.Key, "properties.token") || pr.Key == "$token" {
			f = model.ParsedField{Key: "token", Field: "Project Token", Value: pr.Value, Group: "general"}
		}
		fields = append(fields, f)
	}
	return fields
}
