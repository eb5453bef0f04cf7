package capture

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"beaconscope/internal/logger"
	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

// Manager 全局采集会话管理器
type Manager struct {
	mu       sync.RWMutex
	sessions map[model.SessionID]*Session
	registry *provider.Registry
	log      logger.Logger
}

// NewManager 创建采集会话管理器
func NewManager(reg *provider.Registry, l logger.Logger) *Manager {
	if l == nil {
		l = logger.NewNop()
	}
	return &Manager{
		sessions: make(map[model.SessionID]*Session),
		registry: reg,
		log:      l,
	}
}

// Start 创建并启动采集会话：附加目标、开启网络观测、注册
func (m *Manager) Start(cfg Config) (model.SessionID, error) {
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = 256
	}
	id := model.SessionID(uuid.NewString())
	s := newSession(id, m.registry, cfg.EventBuffer, m.log.With("sessionID", string(id)))
	if err := s.attach(cfg); err != nil {
		return "", err
	}
	if err := s.enable(); err != nil {
		_ = s.close()
		return "", err
	}

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	m.log.Info("创建采集会话", "sessionID", string(id), "devToolsURL", cfg.DevToolsURL)
	return id, nil
}

// Stop 停止并销毁采集会话
func (m *Manager) Stop(id model.SessionID) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("session %s not found", id)
	}
	m.log.Info("销毁采集会话", "sessionID", string(id))
	return s.close()
}

// Get 获取会话
func (m *Manager) Get(id model.SessionID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}

// List 返回所有活动会话
func (m *Manager) List() []*Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	list := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		list = append(list, s)
	}
	return list
}
