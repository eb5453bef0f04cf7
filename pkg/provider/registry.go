package provider

import (
	"regexp"
	"strings"

	"beaconscope/pkg/model"
)

// Registry 供应商注册表。初始化阶段通过 AddProvider 填充，
// 此后只读，可被任意多个调用方并发使用，无需加锁。
type Registry struct {
	providers []Provider
	byKey     map[string]Provider
	combined  *regexp.Regexp
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]Provider)}
}

// AddProvider 追加供应商并重建联合检测模式。
// n 很小且仅在启动期增长，O(n) 重建可以接受。
func (r *Registry) AddProvider(p Provider) {
	r.providers = append(r.providers, p)
	r.byKey[p.Key()] = p
	r.rebuild()
}

// rebuild 联合所有供应商模式为单个大小写不敏感的 OR 模式
func (r *Registry) rebuild() {
	parts := make([]string, 0, len(r.providers))
	for _, p := range r.providers {
		parts = append(parts, "(?:"+p.Pattern().String()+")")
	}
	if len(parts) == 0 {
		r.combined = nil
		return
	}
	r.combined = regexp.MustCompile("(?i)" + strings.Join(parts, "|"))
}

// Providers 返回注册顺序的供应商列表
func (r *Registry) Providers() []Provider { return r.providers }

// Get 按 key 查找供应商
func (r *Registry) Get(key string) (Provider, bool) {
	p, ok := r.byKey[key]
	return p, ok
}

// Matches 快速预筛：任一供应商模式命中即为真
func (r *Registry) Matches(rawURL string) bool {
	return r.combined != nil && r.combined.MatchString(rawURL)
}

// MatchingProviders 返回所有模式命中的供应商。
// 顺序即注册顺序；多个供应商命中同一 URL 时不做优先级裁决，
// 这是已知且有意保留的限制，取首个还是全部由调用方决定。
func (r *Registry) MatchingProviders(rawURL string) []Provider {
	var out []Provider
	for _, p := range r.providers {
		if p.Pattern().MatchString(rawURL) {
			out = append(out, p)
		}
	}
	return out
}

// Parse 便捷入口：按注册顺序取首个命中的供应商解码；
// 无命中时返回中立供应商身份与空数据。
func (r *Registry) Parse(rawURL, postData string) model.ParseResult {
	for _, p := range r.providers {
		if p.Pattern().MatchString(rawURL) {
			return Parse(p, rawURL, postData)
		}
	}
	return model.ParseResult{Provider: Info(Neutral()), Data: []model.ParsedField{}}
}

// ParseAll 每个命中的供应商各产出一份结果
func (r *Registry) ParseAll(rawURL, postData string) []model.ParseResult {
	var out []model.ParseResult
	for _, p := range r.MatchingProviders(rawURL) {
		out = append(out, Parse(p, rawURL, postData))
	}
	return out
}
