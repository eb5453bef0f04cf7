package model

// Category 供应商技术类别
type Category string

const (
	CategoryAnalytics          Category = "analytics"
	CategoryTagManager         Category = "tagmanager"
	CategoryMarketing          Category = "marketing"
	CategoryCustomerEngagement Category = "customer-engagement"
	CategoryTesting            Category = "testing"
	CategoryVisitorID          Category = "visitor-id"
	CategorySessionReplay      Category = "session-replay"
	CategoryUnknown            Category = "unknown"
)

// SessionID 采集会话ID
type SessionID string

// FieldInfo 字段目录条目：原始键到展示信息的映射
type FieldInfo struct {
	Name   string `json:"name"`
	Group  string `json:"group"`
	Hidden bool   `json:"hidden,omitempty"`
}

// Group 展示分组
type Group struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// ColumnMapping 摘要列映射：哪个字段是账号标识、哪个是请求类型
type ColumnMapping struct {
	Account     string `json:"account"`
	RequestType string `json:"requestType"`
}

// ParsedField 解码后的单个字段
type ParsedField struct {
	Key    string `json:"key"`
	Field  string `json:"field"`
	Value  string `json:"value"`
	Group  string `json:"group"`
	Hidden bool   `json:"hidden,omitempty"`
}

// ProviderInfo 解析结果中携带的供应商身份信息
type ProviderInfo struct {
	Name     string        `json:"name"`
	Key      string        `json:"key"`
	Category Category      `json:"type"`
	Columns  ColumnMapping `json:"columns"`
	Groups   []Group       `json:"groups"`
}

// ParseResult 单次解码结果，一次调用创建、交给调用方后即弃
type ParseResult struct {
	Provider ProviderInfo  `json:"provider"`
	Data     []ParsedField `json:"data"`
	Error    string        `json:"error,omitempty"`
}

// RequestInput 外部采集层送入的一次请求观测
type RequestInput struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Method    string `json:"method"`
	PostData  string `json:"postData,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// CaptureStats 采集统计
type CaptureStats struct {
	Total      int64            `json:"total"`
	Matched    int64            `json:"matched"`
	ByProvider map[string]int64 `json:"byProvider"`
}
