package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"beaconscope/internal/config"
	"beaconscope/internal/logger"
	"beaconscope/pkg/model"
)

var (
	cfgPath string
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:          "beaconscope",
	Short:        "Detect and decode marketing/analytics beacons",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit results as JSON lines")
	rootCmd.AddCommand(parseCmd, watchCmd)
}

// newLogger 依据配置构建日志器
func newLogger(cfg *config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:   cfg.Log.Level,
		Writers: cfg.Log.Writer,
		File:    cfg.Log.File,
	})
}

// printResult 按分组输出可读结果，隐藏字段不展示
func printResult(w io.Writer, res model.ParseResult) {
	if res.Provider.Name == "" {
		fmt.Fprintln(w, "no technology detected")
		return
	}
	fmt.Fprintf(w, "%s (%s)\n", res.Provider.Name, res.Provider.Key)
	if res.Error != "" {
		fmt.Fprintf(w, "  error: %s\n", res.Error)
	}
	groups := make(map[string]string, len(res.Provider.Groups))
	for _, g := range res.Provider.Groups {
		groups[g.Key] = g.Name
	}
	for _, f := range res.Data {
		if f.Hidden {
			continue
		}
		group := groups[f.Group]
		if group == "" {
			group = f.Group
		}
		fmt.Fprintf(w, "  [%s] %s: %s\n", group, f.Field, f.Value)
	}
}
