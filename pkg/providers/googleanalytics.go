package providers

import (
	"fmt"
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

// uaHitTypes t 参数到请求类型的映射
var uaHitTypes = map[string]string{
	"pageview":    "Page View",
	"screenview":  "Screen View",
	"event":       "Event",
	"transaction": "Transaction",
	"item":        "Item",
	"social":      "Social",
	"exception":   "Exception",
	"timing":      "User Timing",
}

// uaProductSuffixes pr 字段族后缀到名称的映射
var uaProductSuffixes = map[string]string{
	"id": "ID",
	"nm": "Name",
	"br": "Brand",
	"ca": "Category",
	"va": "Variant",
	"pr": "Price",
	"qt": "Quantity",
	"cc": "Coupon Code",
	"ps": "Position",
}

type googleAnalytics struct {
	provider.Base
}

// NewGoogleAnalytics Google Analytics (Universal Analytics) 供应商
func NewGoogleAnalytics() provider.Provider {
	return &googleAnalytics{Base: provider.Base{
		ProviderKey:      "GOOGLEANALYTICS",
		ProviderName:     "Google Analytics",
		ProviderCategory: model.CategoryAnalytics,
		URLPattern:       regexp.MustCompile(`(?i)\.google-analytics\.com/([rj]/)?collect|__utm\.gif|stats\.g\.doubleclick\.net/([rj]/)?collect`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "campaign", Name: "Campaign"},
			{Key: "events", Name: "Events"},
			{Key: "ecommerce", Name: "Ecommerce"},
			{Key: "timing", Name: "Timing"},
			{Key: "custom", Name: "Custom Dimensions & Metrics"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "tid", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"v":     {Name: "Protocol Version", Group: "other"},
			"tid":   {Name: "Tracking ID", Group: "general"},
			"cid":   {Name: "Client ID", Group: "general"},
			"uid":   {Name: "User ID", Group: "general"},
			"aip":   {Name: "Anonymize IP", Group: "other"},
			"ds":    {Name: "Data Source", Group: "general"},
			"qt":    {Name: "Queue Time", Group: "other"},
			"z":     {Name: "Cache Buster", Group: "other", Hidden: true},
			"sc":    {Name: "Session Control", Group: "general"},
			"t":     {Name: "Hit Type", Group: "general", Hidden: true},
			"ni":    {Name: "Non-Interaction Hit", Group: "events"},
			"dl":    {Name: "Document Location URL", Group: "general"},
			"dh":    {Name: "Document Host Name", Group: "general"},
			"dp":    {Name: "Document Path", Group: "general"},
			"dt":    {Name: "Document Title", Group: "general"},
			"dr":    {Name: "Document Referrer", Group: "general"},
			"cn":    {Name: "Campaign Name", Group: "campaign"},
			"cs":    {Name: "Campaign Source", Group: "campaign"},
			"cm":    {Name: "Campaign Medium", Group: "campaign"},
			"ck":    {Name: "Campaign Keyword", Group: "campaign"},
			"cc":    {Name: "Campaign Content", Group: "campaign"},
			"ci":    {Name: "Campaign ID", Group: "campaign"},
			"gclid": {Name: "Google Ads Click ID", Group: "campaign"},
			"dclid": {Name: "Display Ads Click ID", Group: "campaign"},
			"sr":    {Name: "Screen Resolution", Group: "other"},
			"vp":    {Name: "Viewport Size", Group: "other"},
			"de":    {Name: "Document Encoding", Group: "other"},
			"sd":    {Name: "Screen Colors", Group: "other"},
			"ul":    {Name: "User Language", Group: "other"},
			"je":    {Name: "Java Enabled", Group: "other"},
			"fl":    {Name: "Flash Version", Group: "other"},
			"ec":    {Name: "Event Category", Group: "events"},
			"ea":    {Name: "Event Action", Group: "events"},
			"el":    {Name: "Event Label", Group: "events"},
			"ev":    {Name: "Event Value", Group: "events"},
			"ti":    {Name: "Transaction ID", Group: "ecommerce"},
			"ta":    {Name: "Transaction Affiliation", Group: "ecommerce"},
			"tr":    {Name: "Transaction Revenue", Group: "ecommerce"},
			"ts":    {Name: "Transaction Shipping", Group: "ecommerce"},
			"tt":    {Name: "Transaction Tax", Group: "ecommerce"},
			"in":    {Name: "Item Name", Group: "ecommerce"},
			"ip":    {Name: "Item Price", Group: "ecommerce"},
			"iq":    {Name: "Item Quantity", Group: "ecommerce"},
			"ic":    {Name: "Item Code", Group: "ecommerce"},
			"iv":    {Name: "Item Category", Group: "ecommerce"},
			"cu":    {Name: "Currency Code", Group: "ecommerce"},
			"pa":    {Name: "Product Action", Group: "ecommerce"},
			"pal":   {Name: "Product Action List", Group: "ecommerce"},
			"cos":   {Name: "Checkout Step", Group: "ecommerce"},
			"col":   {Name: "Checkout Step Option", Group: "ecommerce"},
			"promoa": {Name: "Promotion Action", Group: "ecommerce"},
			"plt":   {Name: "Page Load Time", Group: "timing"},
			"dns":   {Name: "DNS Time", Group: "timing"},
			"pdt":   {Name: "Page Download Time", Group: "timing"},
			"rrt":   {Name: "Redirect Response Time", Group: "timing"},
			"tcp":   {Name: "TCP Connect Time", Group: "timing"},
			"srt":   {Name: "Server Response Time", Group: "timing"},
			"utc":   {Name: "User Timing Category", Group: "timing"},
			"utv":   {Name: "User Timing Variable", Group: "timing"},
			"utt":   {Name: "User Timing Time", Group: "timing"},
			"utl":   {Name: "User Timing Label", Group: "timing"},
			"sn":    {Name: "Social Network", Group: "events"},
			"sa":    {Name: "Social Action", Group: "events"},
			"st":    {Name: "Social Action Target", Group: "events"},
			"exd":   {Name: "Exception Description", Group: "events"},
			"exf":   {Name: "Is Exception Fatal?", Group: "events"},
			"an":    {Name: "Application Name", Group: "general"},
			"av":    {Name: "Application Version", Group: "general"},
			"aid":   {Name: "Application ID", Group: "general"},
			"ua":    {Name: "User Agent Override", Group: "other"},
			"jid":   {Name: "Join ID", Group: "other", Hidden: true},
			"gjid":  {Name: "gJoin ID", Group: "other", Hidden: true},
			"_v":    {Name: "SDK Version", Group: "other"},
			"_s":    {Name: "Hit Sequence", Group: "other"},
			"_u":    {Name: "Usage Flags", Group: "other", Hidden: true},
		},
		Families: []provider.FamilyRule{
			{
				Pattern: regexp.MustCompile(`^cd(\d+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Custom Dimension " + m[1], Value: value, Group: "custom"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^cm(\d+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Custom Metric " + m[1], Value: value, Group: "custom"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^cg(\d+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Content Group " + m[1], Value: value, Group: "general"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^pr(\d+)cd(\d+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: fmt.Sprintf("Product %s Custom Dimension %s", m[1], m[2]), Value: value, Group: "ecommerce"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^pr(\d+)cm(\d+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: fmt.Sprintf("Product %s Custom Metric %s", m[1], m[2]), Value: value, Group: "ecommerce"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^pr(\d+)([a-z]{2})$`),
				Format: func(key, value string, m []string) model.ParsedField {
					name := uaProductSuffixes[m[2]]
					if name == "" {
						name = m[2]
					}
					return model.ParsedField{Key: key, Field: fmt.Sprintf("Product %s %s", m[1], name), Value: value, Group: "ecommerce"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^il(\d+)nm$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Impression List " + m[1], Value: value, Group: "ecommerce"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^il(\d+)pi(\d+)([a-z]{2})$`),
				Format: func(key, value string, m []string) model.ParsedField {
					name := uaProductSuffixes[m[3]]
					if name == "" {
						name = m[3]
					}
					return model.ParsedField{Key: key, Field: fmt.Sprintf("Impression List %s Product %s %s", m[1], m[2], name), Value: value, Group: "ecommerce"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^promo(\d+)(id|nm|cr|ps)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					names := map[string]string{"id": "ID", "nm": "Name", "cr": "Creative", "ps": "Position"}
					return model.ParsedField{Key: key, Field: fmt.Sprintf("Promotion %s %s", m[1], names[m[2]]), Value: value, Group: "ecommerce"}
				},
			},
		},
	}}
}

// HandleCustom 依据 t 参数派生请求类型（仅用于摘要列，隐藏）
func (p *googleAnalytics) HandleCustom(_ *url.URL, params url.Values) []model.ParsedField {
	t := params.Get("t")
	label, ok := uaHitTypes[t]
	if !ok {
		if t == "" {
			label = "Page View"
		} else {
			label = t
		}
	}
	return []model.ParsedField{
		{Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true},
	}
}
