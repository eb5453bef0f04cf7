package providers

import (
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

var heapScriptPath = regexp.MustCompile(`heap-(\d+)\.js`)

type heap struct {
	provider.Base
}

// NewHeap Heap 供应商
func NewHeap() provider.Provider {
	return &heap{Base: provider.Base{
		ProviderKey:      "HEAP",
		ProviderName:     "Heap",
		ProviderCategory: model.CategoryAnalytics,
		URLPattern:       regexp.MustCompile(`(?i)heapanalytics\.com/(h\b|api/|js/heap-)`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "events", Name: "Events"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "a", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"a":  {Name: "App ID", Group: "general"},
			"u":  {Name: "User ID", Group: "general"},
			"s":  {Name: "Session ID", Group: "general"},
			"v":  {Name: "View ID", Group: "general"},
			"b":  {Name: "Browser", Group: "other"},
			"z":  {Name: "Library Version", Group: "other"},
			"pr": {Name: "Protocol", Group: "other"},
			"t":  {Name: "Event Name", Group: "events"},
			"ts": {Name: "Timestamp", Group: "other", Hidden: true},
			"d":  {Name: "Domain", Group: "general"},
			"h":  {Name: "Page Path", Group: "general"},
			"q":  {Name: "Query String", Group: "general"},
			"ti": {Name: "Page Title", Group: "general"},
			"r":  {Name: "Referrer URL", Group: "general"},
		},
	}}
}

// HandleCustom 脚本加载时从文件名提取 App ID
func (p *heap) HandleCustom(u *url.URL, params url.Values) []model.ParsedField {
	label := "Track"
	if params.Get("t") == "" {
		label = "Page View"
	}
	fields := []model.ParsedField{}
	if m := heapScriptPath.FindStringSubmatch(u.Path); m != nil {
		label = "Library Load"
		fields = append(fields, model.ParsedField{
			Key: "a", Field: "App ID", Value: m[1], Group: "general",
		})
	}
	fields = append(fields, model.ParsedField{
		Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true,
	})
	return fields
}
