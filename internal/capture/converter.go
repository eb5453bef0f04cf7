package capture

import (
	"encoding/base64"

	"github.com/mafredri/cdp/protocol/network"

	"beaconscope/pkg/model"
)

// ToRequestInput 将 CDP 网络事件转换为中立请求观测模型
func ToRequestInput(ev *network.RequestWillBeSentReply) model.RequestInput {
	in := model.RequestInput{
		ID:     string(ev.RequestID),
		URL:    ev.Request.URL,
		Method: ev.Request.Method,
	}

	// 请求体：优先取内联字段，否则拼接 base64 编码的分段
	if ev.Request.PostData != nil {
		in.PostData = *ev.Request.PostData
	} else {
		for _, e := range ev.Request.PostDataEntries {
			if e.Bytes == nil {
				continue
			}
			if b, err := base64.StdEncoding.DecodeString(*e.Bytes); err == nil {
				in.PostData += string(b)
			}
		}
	}

	if float64(ev.WallTime) > 0 {
		in.Timestamp = ev.WallTime.Time().UTC().Format("2006-01-02T15:04:05.000Z07:00")
	}
	return in
}
