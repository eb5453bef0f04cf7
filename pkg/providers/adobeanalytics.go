package providers

import (
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

var aaReportSuitePath = regexp.MustCompile(`/b/ss/([^/]+)/`)

// aaLinkTypes pe 参数到链接类型的映射
var aaLinkTypes = map[string]string{
	"lnk_o": "Custom Link",
	"lnk_d": "Download Link",
	"lnk_e": "Exit Link",
	"m_m":   "Media Milestone",
	"m_s":   "Media Start",
	"m_o":   "Media Offset",
	"m_c":   "Media Complete",
}

type adobeAnalytics struct {
	provider.Base
}

// NewAdobeAnalytics Adobe Analytics (AppMeasurement) 供应商
func NewAdobeAnalytics() provider.Provider {
	return &adobeAnalytics{Base: provider.Base{
		ProviderKey:      "ADOBEANALYTICS",
		ProviderName:     "Adobe Analytics",
		ProviderCategory: model.CategoryAnalytics,
		URLPattern:       regexp.MustCompile(`(?i)/b/ss/|\.2o7\.net/|\.sc\.omtrdc\.net/`),
		GroupList: []model.Group{
			{Key: "general", Name: "General"},
			{Key: "props", Name: "Custom Traffic Variables (props)"},
			{Key: "evars", Name: "Custom Conversion Variables (eVars)"},
			{Key: "events", Name: "Events"},
			{Key: "ecommerce", Name: "Ecommerce"},
			{Key: "media", Name: "Media"},
			{Key: "other", Name: "Other"},
		},
		ColumnMap: model.ColumnMapping{Account: "rsid", RequestType: "requestType"},
		FieldCatalog: map[string]model.FieldInfo{
			"ndh":        {Name: "Image Sent From JS?", Group: "other", Hidden: true},
			"ce":         {Name: "Character Set", Group: "other"},
			"cl":         {Name: "Cookie Lifetime", Group: "other"},
			"ns":         {Name: "Visitor Namespace", Group: "general"},
			"pageName":   {Name: "Page Name", Group: "general"},
			"g":          {Name: "Page URL", Group: "general"},
			"gn":         {Name: "Page Name (gn)", Group: "general"},
			"r":          {Name: "Referrer URL", Group: "general"},
			"cc":         {Name: "Currency Code", Group: "ecommerce"},
			"ch":         {Name: "Site Section", Group: "general"},
			"server":     {Name: "Server", Group: "general"},
			"events":     {Name: "Events", Group: "events"},
			"products":   {Name: "Products", Group: "ecommerce"},
			"purchaseID": {Name: "Purchase ID", Group: "ecommerce"},
			"state":      {Name: "Visitor State", Group: "general"},
			"zip":        {Name: "ZIP/Postal Code", Group: "general"},
			"vid":        {Name: "Visitor ID", Group: "general"},
			"aid":        {Name: "Legacy Visitor ID", Group: "general"},
			"mid":        {Name: "Experience Cloud ID", Group: "general"},
			"fid":        {Name: "Fallback Visitor ID", Group: "general"},
			"aamlh":      {Name: "AAM Location Hint", Group: "other"},
			"mcorgid":    {Name: "Experience Cloud Org ID", Group: "general"},
			"t":          {Name: "Browser Time", Group: "other"},
			"pe":         {Name: "Link Type", Group: "general", Hidden: true},
			"pev1":       {Name: "Link URL", Group: "general"},
			"pev2":       {Name: "Link Name", Group: "general"},
			"pev3":       {Name: "Video Milestone", Group: "media"},
			"pccr":       {Name: "Prevent Infinite Redirects", Group: "other", Hidden: true},
			"vvp":        {Name: "Variable Provider", Group: "other", Hidden: true},
			"j":          {Name: "JavaScript Version", Group: "other"},
			"v":          {Name: "JavaScript Enabled?", Group: "other"},
			"k":          {Name: "Cookies Enabled?", Group: "other"},
			"bw":         {Name: "Browser Width", Group: "other"},
			"bh":         {Name: "Browser Height", Group: "other"},
			"s":          {Name: "Screen Resolution", Group: "other"},
			"c":          {Name: "Screen Color Depth", Group: "other"},
			"ct":         {Name: "Connection Type", Group: "other"},
			"hp":         {Name: "Home Page?", Group: "other"},
			"lrt":        {Name: "Last Request Time", Group: "other", Hidden: true},
			"AQB":        {Name: "Request Start", Group: "other", Hidden: true},
			"AQE":        {Name: "Request End", Group: "other", Hidden: true},
		},
		Families: []provider.FamilyRule{
			{
				Pattern: regexp.MustCompile(`^c(\d+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "prop" + m[1], Value: value, Group: "props"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^v(\d+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "eVar" + m[1], Value: value, Group: "evars"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^h(\d+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Hierarchy " + m[1], Value: value, Group: "props"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^l(\d+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "List Var " + m[1], Value: value, Group: "evars"}
				},
			},
			{
				Pattern: regexp.MustCompile(`^cpg(\d+)$`),
				Format: func(key, value string, m []string) model.ParsedField {
					return model.ParsedField{Key: key, Field: "Content Page Group " + m[1], Value: value, Group: "props"}
				},
			},
		},
	}}
}

// HandleCustom 报表套件 ID 内嵌在 /b/ss/<rsid>/ 路径段中；
// 请求类型依据 pe 参数区分页面浏览与链接追踪。
func (p *adobeAnalytics) HandleCustom(u *url.URL, params url.Values) []model.ParsedField {
	var fields []model.ParsedField
	if m := aaReportSuitePath.FindStringSubmatch(u.Path); m != nil {
		fields = append(fields, model.ParsedField{
			Key: "rsid", Field: "Report Suites", Value: m[1], Group: "general",
		})
	}
	label := "Page View"
	if pe := params.Get("pe"); pe != "" {
		if l, ok := aaLinkTypes[pe]; ok {
			label = l
		} else {
			label = pe
		}
	}
	fields = append(fields, model.ParsedField{
		Key: "requestType", Field: "Request Type", Value: label, Group: "general", Hidden: true,
	})
	return fields
}
