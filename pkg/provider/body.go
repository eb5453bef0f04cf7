package provider

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// MaxFlattenDepth 递归展开嵌套载荷的最大深度，超出后不再下钻
const MaxFlattenDepth = 10

// TruncatedValue 深度截断哨兵值
const TruncatedValue = "(truncated)"

// Pair 有序键值对，与查询参数同构
type Pair struct {
	Key   string
	Value string
}

// DecodeBody 将 POST 载荷展开为键值对序列。
// 优先按 JSON 解析并递归展平（对象用点路径、数组用下标路径）；
// 非 JSON 时回落为表单编码解析。两者都失败时返回零个键值对。
func DecodeBody(body string) []Pair {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return nil
	}
	if gjson.Valid(trimmed) {
		v := gjson.Parse(trimmed)
		if v.IsObject() || v.IsArray() {
			var out []Pair
			flatten(v, "", 0, &out)
			return out
		}
	}
	return decodeForm(trimmed)
}

// flatten 递归展平：标量落为 (路径, 值)，空对象/数组落为 (路径, "")，
// 超过最大深度的子树落为单个截断哨兵字段。
func flatten(v gjson.Result, path string, depth int, out *[]Pair) {
	switch {
	case v.IsObject():
		if depth >= MaxFlattenDepth {
			*out = append(*out, Pair{Key: path, Value: TruncatedValue})
			return
		}
		n := 0
		v.ForEach(func(k, cv gjson.Result) bool {
			n++
			child := k.String()
			if path != "" {
				child = path + "." + child
			}
			flatten(cv, child, depth+1, out)
			return true
		})
		if n == 0 {
			*out = append(*out, Pair{Key: path, Value: ""})
		}
	case v.IsArray():
		if depth >= MaxFlattenDepth {
			*out = append(*out, Pair{Key: path, Value: TruncatedValue})
			return
		}
		arr := v.Array()
		if len(arr) == 0 {
			*out = append(*out, Pair{Key: path, Value: ""})
			return
		}
		for i := range arr {
			flatten(arr[i], path+"["+strconv.Itoa(i)+"]", depth+1, out)
		}
	default:
		*out = append(*out, Pair{Key: path, Value: v.String()})
	}
}

// decodeForm 表单编码解析：按 & 切分、= 切分，值做 URL 解码。
// 没有 = 的片段视为噪声丢弃。
func decodeForm(body string) []Pair {
	var out []Pair
	for _, part := range strings.Split(body, "&") {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 || kv[0] == "" {
			continue
		}
		val := kv[1]
		if d, err := url.QueryUnescape(val); err == nil {
			val = d
		}
		out = append(out, Pair{Key: kv[0], Value: val})
	}
	return out
}

// pathGroups 路径子串到语义分组的启发式映射，按序命中第一条
var pathGroups = []struct {
	substr string
	group  string
}{
	{"identity", "identity"},
	{"identitymap", "identity"},
	{"ecid", "identity"},
	{"target", "target"},
	{"analytics", "analytics"},
	{"commerce", "commerce"},
	{"productlistitems", "commerce"},
	{"media", "media"},
	{"web.", "web"},
	{"webpagedetails", "web"},
	{"webreferrer", "web"},
	{"placecontext", "context"},
	{"environment", "context"},
	{"device", "context"},
	{"consent", "privacy"},
}

// GroupForPath 依据展平路径推断语义分组；尽力而为，默认 general
func GroupForPath(path string) string {
	lp := strings.ToLower(path)
	for i := range pathGroups {
		if strings.Contains(lp, pathGroups[i].substr) {
			return pathGroups[i].group
		}
	}
	return "general"
}
