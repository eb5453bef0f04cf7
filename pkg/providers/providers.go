// Package providers 内置供应商目录：每个文件一个供应商的检测与解码规则。
package providers

import (
	"beaconscope/pkg/provider"
)

// All 返回全部内置供应商，切片顺序即注册顺序。
// 多个供应商命中同一 URL 时按此顺序裁决首个命中。
func All() []provider.Provider {
	return []provider.Provider{
		NewGoogleAnalytics(),
		NewGoogleAnalytics4(),
		NewGoogleTagManager(),
		NewGoogleAds(),
		NewDoubleClick(),
		NewFacebookPixel(),
		NewAdobeAnalytics(),
		NewAdobeWebSDK(),
		NewAdobeTarget(),
		NewAdobeAudienceManager(),
		NewTikTok(),
		NewPinterest(),
		NewLinkedInInsight(),
		NewMicrosoftUET(),
		NewMatomo(),
		NewHotjar(),
		NewSegment(),
		NewMixpanel(),
		NewAmplitude(),
		NewSnapchat(),
		NewCriteo(),
		NewOptimizely(),
		NewQuantcast(),
		NewFullStory(),
		NewHeap(),
		NewCrazyEgg(),
		NewIntercom(),
		NewRudderStack(),
	}
}

// NewRegistry 构建装入全部内置供应商的注册表
func NewRegistry() *provider.Registry {
	r := provider.NewRegistry()
	for _, p := range All() {
		r.AddProvider(p)
	}
	return r
}
