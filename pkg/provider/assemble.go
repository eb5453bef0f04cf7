package provider

import (
	"fmt"
	"net/url"
	"strings"

	"beaconscope/pkg/model"
)

// Parse 将一次请求观测按指定供应商解码为结构化结果。
// 字段顺序：查询参数按线序在前，载荷展开字段随后，自定义字段最后追加。
// 任何失败都落入结果的 error 字段，绝不越过本边界抛出。
func Parse(p Provider, rawURL, postData string) (res model.ParseResult) {
	res = model.ParseResult{Provider: Info(p), Data: []model.ParsedField{}}
	defer func() {
		if r := recover(); r != nil {
			res.Data = []model.ParsedField{}
			res.Error = fmt.Sprintf("provider %s: %v", p.Key(), r)
		}
	}()

	u, err := url.Parse(rawURL)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	pairs := parseQuery(u.RawQuery)
	pairs = append(pairs, DecodeBody(postData)...)

	merged := url.Values{}
	for _, pr := range pairs {
		merged.Add(pr.Key, pr.Value)
	}

	for _, pr := range pairs {
		if f, ok := p.HandleParam(pr.Key, pr.Value); ok {
			res.Data = append(res.Data, f)
			continue
		}
		res.Data = append(res.Data, LookupField(p, pr.Key, pr.Value))
	}

	res.Data = append(res.Data, p.HandleCustom(u, merged)...)
	return res
}

// parseQuery 按线序解析查询串，保留重复键的出现顺序
func parseQuery(raw string) []Pair {
	if raw == "" {
		return nil
	}
	var out []Pair
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		key := kv[0]
		if key == "" {
			continue
		}
		if d, err := url.QueryUnescape(key); err == nil {
			key = d
		}
		val := ""
		if len(kv) == 2 {
			val = kv[1]
			if d, err := url.QueryUnescape(val); err == nil {
				val = d
			}
		}
		out = append(out, Pair{Key: key, Value: val})
	}
	return out
}
