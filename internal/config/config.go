package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置文件结构体
type Config struct {
	Version string `yaml:"version"`

	Log struct {
		Level  string   `yaml:"level"`
		Writer []string `yaml:"writer"`
		File   string   `yaml:"file"`
	} `yaml:"log"`

	Capture struct {
		DevToolsURL string `yaml:"devToolsURL"`
		Target      string `yaml:"target"`
		EventBuffer int    `yaml:"eventBuffer"`
	} `yaml:"capture"`
}

// NewConfig 创建默认配置
func NewConfig() *Config {
	c := &Config{Version: "1.0.0"}
	c.Log.Level = "info"
	c.Log.Writer = []string{"console"}
	c.Capture.DevToolsURL = "http://127.0.0.1:9222"
	c.Capture.EventBuffer = 256
	return c
}

// Load 从文件加载配置；路径为空或文件不存在时返回默认配置
func Load(path string) (*Config, error) {
	c := NewConfig()
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if c.Capture.EventBuffer <= 0 {
		c.Capture.EventBuffer = 256
	}
	return c, nil
}
