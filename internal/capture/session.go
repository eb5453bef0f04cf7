package capture

import (
	"context"
	"fmt"
	"sync"

	"github.com/mafredri/cdp"
	"github.com/mafredri/cdp/devtool"
	"github.com/mafredri/cdp/rpcc"

	"beaconscope/internal/logger"
	"beaconscope/pkg/model"
	"beaconscope/pkg/provider"
)

// Config 采集会话配置
type Config struct {
	DevToolsURL string
	Target      string
	EventBuffer int
}

// Session 单目标采集会话：附加到页面目标，订阅网络事件流，
// 将每个观测交给注册表解码。只观测，不拦截、不改写。
type Session struct {
	id       model.SessionID
	conn     *rpcc.Conn
	client   *cdp.Client
	ctx      context.Context
	cancel   context.CancelFunc
	registry *provider.Registry
	results  chan model.ParseResult
	log      logger.Logger

	mu    sync.Mutex
	stats model.CaptureStats
}

func newSession(id model.SessionID, reg *provider.Registry, buffer int, l logger.Logger) *Session {
	return &Session{
		id:       id,
		registry: reg,
		results:  make(chan model.ParseResult, buffer),
		log:      l,
		stats:    model.CaptureStats{ByProvider: make(map[string]int64)},
	}
}

// attach 选择目标并建立 DevTools 连接
func (s *Session) attach(cfg Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	s.ctx = ctx
	s.cancel = cancel

	dt := devtool.New(cfg.DevToolsURL)
	targets, err := dt.List(ctx)
	if err != nil {
		cancel()
		return fmt.Errorf("list targets: %w", err)
	}
	var sel *devtool.Target
	for i := range targets {
		if cfg.Target != "" && string(targets[i].ID) == cfg.Target {
			sel = targets[i]
			break
		}
		if cfg.Target == "" && targets[i].Type == devtool.Page {
			sel = targets[i]
			break
		}
	}
	if sel == nil {
		cancel()
		return fmt.Errorf("no matching target")
	}

	conn, err := rpcc.DialContext(ctx, sel.WebSocketDebuggerURL)
	if err != nil {
		cancel()
		return fmt.Errorf("dial devtools: %w", err)
	}
	s.conn = conn
	s.client = cdp.NewClient(conn)
	return nil
}

// enable 开启网络域并启动消费循环
func (s *Session) enable() error {
	if s.client == nil {
		return fmt.Errorf("not attached")
	}
	if err := s.client.Network.Enable(s.ctx, nil); err != nil {
		return err
	}
	go s.consume()
	return nil
}

func (s *Session) consume() {
	rws, err := s.client.Network.RequestWillBeSent(s.ctx)
	if err != nil {
		s.log.Error("订阅网络事件失败", "error", err)
		return
	}
	defer rws.Close()
	for {
		ev, err := rws.Recv()
		if err != nil {
			return
		}
		s.handle(ToRequestInput(ev))
	}
}

// handle 预筛后逐供应商解码；结果通道满时丢弃而不阻塞事件流
func (s *Session) handle(in model.RequestInput) {
	s.mu.Lock()
	s.stats.Total++
	s.mu.Unlock()

	if !s.registry.Matches(in.URL) {
		return
	}
	for _, res := range s.registry.ParseAll(in.URL, in.PostData) {
		s.mu.Lock()
		s.stats.Matched++
		s.stats.ByProvider[res.Provider.Key]++
		s.mu.Unlock()

		select {
		case s.results <- res:
		default:
		}
	}
	s.log.Debug("解码信标", "requestID", in.ID, "url", in.URL)
}

func (s *Session) close() error {
	if s.cancel != nil {
		s.cancel()
	}
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

// Results 解码结果通道
func (s *Session) Results() <-chan model.ParseResult { return s.results }

// Stats 返回当前统计快照
func (s *Session) Stats() model.CaptureStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := model.CaptureStats{
		Total:      s.stats.Total,
		Matched:    s.stats.Matched,
		ByProvider: make(map[string]int64, len(s.stats.ByProvider)),
	}
	for k, v := range s.stats.ByProvider {
		out.ByProvider[k] = v
	}
	return out
}
