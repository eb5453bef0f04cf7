package providers

import (
	"net/url"
	"regexp"
	"strings"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

var floodlightCustomField = regexp.MustCompile(`^u(\d+)$`)

type doubleClick struct {
	provider.Base
}

// NewDoubleClick DoubleClick Floodlight 供应商。
// 参数以分号分隔内嵌在路径中，而非常规查询串。
func NewDoubleClick() provider.Provider {
	return &doubleClick{Base: provider.Base{
		ProviderKey:      "DOUBLECLICKFLOODLIGHT",
		ProviderName:     "DoubleClick Floodlight",
		ProviderCategory: model.CategoryMarketing,
		URLPattern:       regexp.MustCompile(`(?i)fls\.doubleclick\.net/activity[ij]?;`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "custom", Name: "Custom Fields"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "src", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"src":  {Name: "Advertiser ID", Group: "general"},
			"type": {Name: "Activity Group", Group: "general"},
			"cat":  {Name: "Activity Tag", Group: "general"},
			"ord":  {Name: "Transaction ID / Random", Group: "general"},
			"qty":  {Name: "Quantity", Group: "general"},
			"cost": {Name: "Revenue", Group: "general"},
			"num":  {Name: "Counter", Group: "other"},
			"dc_lat": {Name: "Limit Ad Tracking", Group: "other"},
			"tag_for_child_directed_treatment": {Name: "COPPA Flag", Group: "other"},
		},
	}}
}

// HandleCustom 解析路径中以分号分隔的参数对
func (p *doubleClick) HandleCustom(u *url.URL, _ url.Values) []model.ParsedField {
	fields := []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: "Activity", Group: "general", Hidden: true},
	}
	raw := u.Path
	if i := strings.Index(raw, ";"); i >= 0 {
		raw = raw[i+1:]
	} else {
		return fields
	}
	for _, part := range strings.Split(raw, ";") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			continue
		}
		key, val := kv[0], kv[1]
		if d, err := url.QueryUnescape(val); err == nil {
			val = d
		}
		if m := floodlightCustomField.FindStringSubmatch(key); m != nil {
			fields = append(fields, model.ParsedField{
				Key: key, Field: "Custom Field " + m[1], Value: val, Group: "custom",
			})
			continue
		}
		fields = append(fields, provider.LookupField(p, key, val))
	}
	return fields
}
