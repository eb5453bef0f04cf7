package provider

import (
	"net/url"
	"regexp"

	"beaconscope/pkg/model"
)

// Provider 单个供应商的检测与解码单元。
// 实现方通常内嵌 Base，只覆写需要的扩展点。
type Provider interface {
	// Key 全局唯一的稳定标识，如 "GOOGLEANALYTICS"
	Key() string

	// Name 展示名称
	Name() string

	// Category 技术类别
	Category() model.Category

	// Pattern 用于检测的 URL 匹配规则（对完整 URL 匹配）
	Pattern() *regexp.Regexp

	// Groups 展示分组（有序）
	Groups() []model.Group

	// Columns 摘要列映射
	Columns() model.ColumnMapping

	// Fields 静态字段目录
	Fields() map[string]model.FieldInfo

	// HandleParam 拦截单个参数；返回 false 时回落到静态目录查找
	HandleParam(key, value string) (model.ParsedField, bool)

	// HandleCustom 整请求级自定义解码，返回追加字段
	HandleCustom(u *url.URL, params url.Values) []model.ParsedField
}

// FamilyRule 动态字段族规则：按命名模式匹配无法静态枚举的键
// （如 cd[xxx]、pr12nm），在静态目录之前按序求值。
type FamilyRule struct {
	Pattern *regexp.Regexp
	Format  func(key, value string, matches []string) model.ParsedField
}

// Base 供应商通用实现：静态目录查找 + 字段族规则，扩展点默认空操作
type Base struct {
	ProviderKey      string
	ProviderName     string
	ProviderCategory model.Category
	URLPattern       *regexp.Regexp
	FieldCatalog     map[string]model.FieldInfo
	GroupList        []model.Group
	ColumnMap        model.ColumnMapping
	Families         []FamilyRule
}

func (b *Base) Key() string                   { return b.ProviderKey }
func (b *Base) Name() string                  { return b.ProviderName }
func (b *Base) Category() model.Category      { return b.ProviderCategory }
func (b *Base) Pattern() *regexp.Regexp       { return b.URLPattern }
func (b *Base) Groups() []model.Group         { return b.GroupList }
func (b *Base) Columns() model.ColumnMapping  { return b.ColumnMap }
func (b *Base) Fields() map[string]model.FieldInfo { return b.FieldCatalog }

// HandleParam 按序尝试字段族规则，第一条命中即生效
func (b *Base) HandleParam(key, value string) (model.ParsedField, bool) {
	for i := range b.Families {
		if m := b.Families[i].Pattern.FindStringSubmatch(key); m != nil {
			return b.Families[i].Format(key, value, m), true
		}
	}
	return model.ParsedField{}, false
}

// HandleCustom 默认无自定义字段
func (b *Base) HandleCustom(_ *url.URL, _ url.Values) []model.ParsedField { return nil }

// LookupField 静态目录查找；未知键回落到原始键本身，归入 other 分组。
// 永不失败：任意参数都恰好产出一个字段。
func LookupField(p Provider, key, value string) model.ParsedField {
	if info, ok := p.Fields()[key]; ok {
		return model.ParsedField{Key: key, Field: info.Name, Value: value, Group: info.Group, Hidden: info.Hidden}
	}
	return model.ParsedField{Key: key, Field: key, Value: value, Group: "other"}
}

// Info 提取供应商身份信息
func Info(p Provider) model.ProviderInfo {
	return model.ProviderInfo{
		Name:     p.Name(),
		Key:      p.Key(),
		Category: p.Category(),
		Columns:  p.Columns(),
		Groups:   p.Groups(),
	}
}

// neutralPattern 永不匹配任何实际 URL
var neutralPattern = regexp.MustCompile(`\x00`)

// Neutral 中立供应商：空目录、空分组，用于表达"未检出任何技术"
func Neutral() Provider {
	return &Base{
		ProviderCategory: model.CategoryUnknown,
		URLPattern:       neutralPattern,
		FieldCatalog:     map[string]model.FieldInfo{},
	}
}
