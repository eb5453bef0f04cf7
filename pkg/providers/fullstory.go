package providers

import (
	"net/url"
	"regexp"
	"strings"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type fullStory struct {
	provider.Base
}

// NewFullStory FullStory 供应商
func NewFullStory() provider.Provider {
	return &fullStory{Base: provider.Base{
		ProviderKey:      "FULLSTORY",
		ProviderName:     "FullStory",
		ProviderCategory: model.CategorySessionReplay,
		URLPattern:       regexp.MustCompile(`(?i)(rs|edge)\.fullstory\.com/rec/|fullstory\.com/s/fs\.js`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "OrgId", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"OrgId":     {Name: "Org ID", Group: "general"},
			"UserId":    {Name: "User ID", Group: "general"},
			"SessionId": {Name: "Session ID", Group: "general"},
			"PageId":    {Name: "Page ID", Group: "general"},
			"Seq":       {Name: "Sequence Number", Group: "other"},
			"PrevBundleTime": {Name: "Previous Bundle Time", Group: "other", Hidden: true},
		},
	}}
}

// HandleCustom 请求类型取 /rec/ 之后的动作段
func (p *fullStory) HandleCustom(u *url.URL, _ url.Values) []model.ParsedField {
	label := "Library Load"
	if i := strings.Index(u.Path, "/rec/"); i >= 0 {
		action := strings.Trim(u.Path[i+len("/rec/"):], "/")
		if action != "" {
			label = strings.ToUpper(action[:1]) + action[1:]
		}
	}
	return []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true},
	}
}
