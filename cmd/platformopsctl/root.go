package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"platformops/internal/platformlog"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "platformopsctl",
	Short: "Drive the platformops scheduler, file I/O, mapping, and process subsystems from the command line",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, or error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "text or json")

	rootCmd.AddCommand(runTaskCmd)
	rootCmd.AddCommand(spawnCmd)
	rootCmd.AddCommand(mapFileCmd)
}

func newLogger() *platformlog.Logger {
	log, err := platformlog.New(platformlog.Config{Level: logLevel, Format: logFormat, Output: "stderr"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "platformopsctl: %v\n", err)
		os.Exit(1)
	}
	return log
}
