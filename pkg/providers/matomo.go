package providers

import (
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

type matomo struct {
	provider.Base
}

// NewMatomo Matomo (Piwik) 供应商
func NewMatomo() provider.Provider {
	return &matomo{Base: provider.Base{
		ProviderKey:      "MATOMO",
		ProviderName:     "Matomo",
		ProviderCategory: model.CategoryAnalytics,
		URLPattern:       regexp.MustCompile(`(?i)/(matomo|piwik)\.php\?`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "events", Name: "Events"},
			{Key: "goals", Name: "Goals & Ecommerce"},
			{Key: "custom", Name: "Custom Dimensions"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "idsite", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"idsite":       {Name: "Site ID", Group: "general"},
			"rec":          {Name: "Recording Enabled", Group: "other", Hidden: true},
			"action_name":  {Name: "Action Name", Group: "general"},
			"url":          {Name: "Page URL", Group: "general"},
			"urlref":       {Name: "Referrer URL", Group: "general"},
			"_id":          {Name: "Visitor ID", Group: "general"},
			"uid":          {Name: "User ID", Group: "general"},
			"rand":         {Name: "Cache Buster", Group: "other", Hidden: true},
			"apiv":         {Name: "API Version", Group: "other"},
			"res":          {Name: "Screen Resolution", Group: "other"},
			"cookie":       {Name: "Cookies Enabled?", Group: "other"},
			"ua":           {Name: "User Agent", Group: "other"},
			"lang":         {Name: "Browser Language", Group: "other"},
			"pv_id":        {Name: "Page View ID", Group: "general"},
			"e_c":          {Name: "Event Category", Group: "events"},
			"e_a":          {Name: "Event Action", Group: "events"},
			"e_n":          {Name: "Event Name", Group: "events"},
			"e_v":          {Name: "Event Value", Group: "events"},
			"search":       {Name: "Site Search Keyword", Group: "events"},
			"search_cat":   {Name: "Site Search Category", Group: "events"},
			"search_count": {Name: "Site Search Results Count", Group: "events"},
			"idgoal":       {Name: "Goal ID", Group: "goals"},
			"revenue":      {Name: "Revenue", Group: "goals"},
			"ec_id":        {Name: "Order ID", Group: "goals"},
			"ec_items":     {Name: "Ecommerce Items", Group: "goals"},
			"ec_st":        {Name: "Subtotal", Group: "goals"},
			"ec_tx":        {Name: "Tax", Group: "goals"},
			"ec_sh":        {Name: "Shipping", Group: "goals"},
			"ec_dt":        {Name: "Discount", Group: "goals"},
			"link":         {Name: "Outlink URL", Group: "events"},
			"download":     {Name: "Download URL", Group: "events"},
			"gt_ms":        {Name: "Generation Time (ms)", Group: "other"},
			"h":            {Name: "Local Hour", Group: "other", Hidden: true},
			"m":            {Name: "Local Minute", Group: "other", Hidden: true},
			"s":            {Name: "Local Second", Group: "other", Hidden: true},
			"send_image":   {Name: "Send Image Response", Group: "other", Hidden: true},
		},
		Families: []provider.FamilyRule{
			{
				Pattern: regexp.MustCompile(`^dimension(\d+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Custom Dimension " + m[1], Value: value, Group: "custom"}
				},
			},
		},
	}}
}

// HandleCustom 依据参数组合推断请求类型
func (p *matomo) HandleCustom(_ *url.URL, params url.Values) []model.ParsedField {
	label := "Page View"
	switch {
	case params.Get("e_c") != "":
		label = "Event"
	case params.Get("search") != "":
		label = "Site Search"
	case params.Get("idgoal") == "0":
		label = "Ecommerce"
	case params.Get("idgoal") != "":
		label = "Goal"
	case params.Get("link") != "":
		label = "Outlink"
	case params.Get("download") != "":
		label = "Download"
	}
	return []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true},
	}
}
