package main

import "os"

// main CLI 入口
func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
