package providers

import (
	"net/url"
	"regexp"
	"strings"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type adobeWebSDK struct {
	provider.Base
}

// NewAdobeWebSDK Adobe Experience Platform Web SDK (Alloy) 供应商。
// 载荷是嵌套的 XDM JSON，由通用载荷展开产生路径键，
// 再按路径启发式归入语义分组。
func NewAdobeWebSDK() provider.Provider {
	return &adobeWebSDK{Base: provider.Base{
		ProviderKey:      "ADOBEWEBSDK",
		ProviderName:     "Adobe Experience Platform Web SDK",
		ProviderCategory: model.CategoryAnalytics,
		URLPattern:       regexp.MustCompile(`(?i)edge\.adobedc\.net/ee/|adobedc\.demdex\.net/ee/`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "identity", Name: "Identity"},
			{Key: "web", Name: "Web Details"},
			{Key: "target", Name: "Target"},
			{Key: "analytics", Name: "Analytics"},
			{Key: "commerce", Name: "Commerce"},
			{Key: "media", Name: "Media"},
			{Key: "context", Name: "Context"},
			{Key: "privacy", Name: "Privacy"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "configId", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"configId":  {Name: "Datastream ID", Group: "general"},
			"requestId": {Name: "Request ID", Group: "general"},
		},
		Families: []provider.FamilyRule{
			// 所有载荷展开产生的路径键（含点或下标）
			{
				Pattern: regexp.MustCompile(`[.\[]`),
				Format: func(key, value string, _ []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: key, Value: value, Group: provider.GroupForPath(key)}
				},
			},
		},
	}}
}

// HandleCustom 请求类型取端点动作（interact / collect）
func (p *adobeWebSDK) HandleCustom(u *url.URL, _ url.Values) []model.ParsedField {
	label := "Interact"
	if strings.Contains(u.Path, "/collect") {
		label = "Collect"
	}
	return []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true},
	}
}
