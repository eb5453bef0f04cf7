package providers

import (
	"net/url"
	"regexp"
	"strings"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

var targetClientHost = regexp.MustCompile(`(?i)^([^.]+)\.tt\.omtrdc\.net$`)

type adobeTarget struct {
	provider.Base
}

// NewAdobeTarget Adobe Target 供应商
func NewAdobeTarget() provider.Provider {
	return &adobeTarget{Base: provider.Base{
		ProviderKey:      "ADOBETARGET",
		ProviderName:     "Adobe Target",
		ProviderCategory: model.CategoryTesting,
		URLPattern:       regexp.MustCompile(`(?i)\.tt\.omtrdc\.net/(rest/v\d+/delivery|m2/)`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "mbox", Name: "Mbox"},
			{Key: "profile", Name: "Profile Attributes"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "clientCode", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"client":       {Name: "Client Code", Group: "general"},
			"sessionId":    {Name: "Session ID", Group: "general"},
			"mbox":         {Name: "Mbox Name", Group: "mbox"},
			"mboxSession":  {Name: "Mbox Session", Group: "mbox"},
			"mboxPC":       {Name: "Mbox PC ID", Group: "mbox"},
			"mboxPage":     {Name: "Mbox Page ID", Group: "mbox"},
			"mboxRid":      {Name: "Mbox Request ID", Group: "mbox"},
			"mboxVersion":  {Name: "Mbox Version", Group: "mbox"},
			"mboxCount":    {Name: "Mbox Count", Group: "mbox"},
			"mboxTime":     {Name: "Mbox Time", Group: "mbox", Hidden: true},
			"mboxURL":      {Name: "Page URL", Group: "general"},
			"mboxReferrer": {Name: "Referrer URL", Group: "general"},
			"mboxXDomain":  {Name: "Cross-Domain Setting", Group: "other"},
			"mboxMCGVID":   {Name: "Experience Cloud ID", Group: "general"},
			"version":      {Name: "Library Version", Group: "other"},
		},
		Families: []provider.FamilyRule{
			{
				Pattern: regexp.MustCompile(`^profile\.(.+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Profile: " + m[1], Value: value, Group: "profile"}
				},
			},
			{
				Pattern: regexp.MustCompile(`[.\[]`),
				Format: func(key, value string, _ []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: key, Value: value, Group: provider.GroupForPath(key)}
				},
			},
		},
	}}
}

// HandleCustom 客户代码内嵌在主机名子域中
func (p *adobeTarget) HandleCustom(u *url.URL, params url.Values) []model.ParsedField {
	var fields []model.ParsedField
	clientCode := params.Get("client")
	if m := targetClientHost.FindStringSubmatch(u.Host); m != nil {
		clientCode = m[1]
	}
	if clientCode != "" {
		fields = append(fields, model.ParsedField{
			Key: "clientCode", Field: "Client Code", Value: clientCode, Group: "general",
		})
	}
	label := "Delivery"
	if strings.Contains(u.Path, "/m2/") {
		label = "Mbox"
	}
	fields = append(fields, model.ParsedField{
		Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true,
	})
	return fields
}
