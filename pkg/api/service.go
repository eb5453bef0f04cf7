package api

import (
	"fmt"

	"beaconscope/internal/capture"
	"beaconscope/internal/logger"
	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
	"beaconscope/pkg/providers"
)

// Service 服务接口
type Service interface {
	// Parse 解码单个请求观测（取首个命中的供应商）
	Parse(in model.RequestInput) model.ParseResult

	// ParseAll 所有命中供应商各产出一份结果
	ParseAll(in model.RequestInput) []model.ParseResult

	// Matches 判断 URL 是否命中任一供应商
	Matches(url string) bool

	// StartCapture 启动实时采集会话
	StartCapture(cfg capture.Config) (model.SessionID, error)

	// StopCapture 停止采集会话
	StopCapture(id model.SessionID) error

	// Results 订阅采集会话的解码结果
	Results(id model.SessionID) (<-chan model.ParseResult, error)

	// Stats 获取采集统计信息
	Stats(id model.SessionID) (model.CaptureStats, error)
}

// NewService 创建并返回服务接口实现
func NewService(l logger.Logger) Service {
	reg := providers.NewRegistry()
	return &service{
		registry: reg,
		manager:  capture.NewManager(reg, l),
	}
}

type service struct {
	registry *provider.Registry
	manager  *capture.Manager
}

func (s *service) Parse(in model.RequestInput) model.ParseResult {
	return s.registry.Parse(in.URL, in.PostData)
}

func (s *service) ParseAll(in model.RequestInput) []model.ParseResult {
	return s.registry.ParseAll(in.URL, in.PostData)
}

func (s *service) Matches(url string) bool {
	return s.registry.Matches(url)
}

func (s *service) StartCapture(cfg capture.Config) (model.SessionID, error) {
	return s.manager.Start(cfg)
}

func (s *service) StopCapture(id model.SessionID) error {
	return s.manager.Stop(id)
}

func (s *service) Results(id model.SessionID) (<-chan model.ParseResult, error) {
	sess, ok := s.manager.Get(id)
	if !ok {
		return nil, errSessionNotFound(id)
	}
	return sess.Results(), nil
}

func (s *service) Stats(id model.SessionID) (model.CaptureStats, error) {
	sess, ok := s.manager.Get(id)
	if !ok {
		return model.CaptureStats{}, errSessionNotFound(id)
	}
	return sess.Stats(), nil
}

func errSessionNotFound(id model.SessionID) error {
	return fmt.Errorf("session %s not found", id)
}
