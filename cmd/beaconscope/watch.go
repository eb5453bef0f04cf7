package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"beaconscope/internal/capture"
	"beaconscope/internal/config"
	"beaconscope/internal/report"
	"beaconscope/pkg/api"
)

var (
	devtoolsFlag string
	targetFlag   string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Attach to a running browser and decode beacons live",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if devtoolsFlag != "" {
			cfg.Capture.DevToolsURL = devtoolsFlag
		}
		if targetFlag != "" {
			cfg.Capture.Target = targetFlag
		}

		log := newLogger(cfg)
		svc := api.NewService(log)
		id, err := svc.StartCapture(capture.Config{
			DevToolsURL: cfg.Capture.DevToolsURL,
			Target:      cfg.Capture.Target,
			EventBuffer: cfg.Capture.EventBuffer,
		})
		if err != nil {
			return err
		}
		defer func() { _ = svc.StopCapture(id) }()

		ch, err := svc.Results(id)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		log.Info("开始实时采集", "devToolsURL", cfg.Capture.DevToolsURL)

		w := report.NewWriter(cmd.OutOrStdout())
		for {
			select {
			case <-ctx.Done():
				stats, _ := svc.Stats(id)
				log.Info("采集结束", "total", stats.Total, "matched", stats.Matched)
				return nil
			case res := <-ch:
				if jsonOut {
					if err := w.Write(res); err != nil {
						return err
					}
				} else {
					printResult(cmd.OutOrStdout(), res)
				}
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVar(&devtoolsFlag, "devtools-url", "", "DevTools endpoint, e.g. http://127.0.0.1:9222")
	watchCmd.Flags().StringVar(&targetFlag, "target", "", "attach to a specific target ID")
}
