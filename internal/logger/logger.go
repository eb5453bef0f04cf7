package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger 统一的键值日志接口
type Logger interface {
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)

	// With 派生携带固定键值对的子日志器
	With(kv ...any) Logger
}

// Options 日志初始化选项
type Options struct {
	Level   string
	Writers []string
	File    string
}

type zeroLogger struct {
	l zerolog.Logger
}

// New 创建 zerolog 实现，支持 console 与 file（滚动切割）双写
func New(opts Options) Logger {
	var ws []io.Writer
	for _, w := range opts.Writers {
		switch w {
		case "console":
			ws = append(ws, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
		case "file":
			file := opts.File
			if file == "" {
				file = "beaconscope.log"
			}
			ws = append(ws, &lumberjack.Logger{
				Filename:   file,
				MaxSize:    50,
				MaxBackups: 3,
				MaxAge:     28,
			})
		}
	}
	if len(ws) == 0 {
		ws = append(ws, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		lvl = zerolog.InfoLevel
	}
	zl := zerolog.New(zerolog.MultiLevelWriter(ws...)).Level(lvl).With().Timestamp().Logger()
	return &zeroLogger{l: zl}
}

// NewNop 创建丢弃所有输出的日志实现
func NewNop() Logger {
	return &zeroLogger{l: zerolog.Nop()}
}

func (z *zeroLogger) Debug(msg string, kv ...any) { emit(z.l.Debug(), msg, kv) }
func (z *zeroLogger) Info(msg string, kv ...any)  { emit(z.l.Info(), msg, kv) }
func (z *zeroLogger) Warn(msg string, kv ...any)  { emit(z.l.Warn(), msg, kv) }
func (z *zeroLogger) Error(msg string, kv ...any) { emit(z.l.Error(), msg, kv) }

func (z *zeroLogger) With(kv ...any) Logger {
	c := z.l.With()
	for i := 0; i+1 < len(kv); i += 2 {
		c = c.Interface(key(kv[i]), kv[i+1])
	}
	return &zeroLogger{l: c.Logger()}
}

// emit 将交替的键值对写入单条日志事件
func emit(e *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		e = e.Interface(key(kv[i]), kv[i+1])
	}
	e.Msg(msg)
}

func key(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
