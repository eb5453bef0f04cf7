package main

import (
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"beaconscope/internal/logger"
	"beaconscope/internal/report"
	"beaconscope/pkg/api"
	"beaconscope/pkg/model"
)

var (
	bodyFlag string
	bodyFile string
	allFlag  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <url>",
	Short: "Decode a single beacon URL, optionally with a POST body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := bodyFlag
		if bodyFile != "" {
			b, err := os.ReadFile(bodyFile)
			if err != nil {
				return err
			}
			body = string(b)
		}

		method := http.MethodGet
		if body != "" {
			method = http.MethodPost
		}
		svc := api.NewService(logger.NewNop())
		in := model.RequestInput{URL: args[0], Method: method, PostData: body}

		var results []model.ParseResult
		if allFlag {
			results = svc.ParseAll(in)
		} else {
			results = []model.ParseResult{svc.Parse(in)}
		}

		if jsonOut {
			w := report.NewWriter(cmd.OutOrStdout())
			for _, r := range results {
				if err := w.Write(r); err != nil {
					return err
				}
			}
			return nil
		}
		for _, r := range results {
			printResult(cmd.OutOrStdout(), r)
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().StringVar(&bodyFlag, "body", "", "raw POST body")
	parseCmd.Flags().StringVar(&bodyFile, "body-file", "", "file containing the POST body")
	parseCmd.Flags().BoolVar(&allFlag, "all", false, "decode with every matching provider")
}
