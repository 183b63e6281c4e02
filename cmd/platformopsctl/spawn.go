package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"platformops/internal/metrics"
	"platformops/internal/platformlog"
	"platformops/pkg/process"
)

var spawnArgs string

var spawnCmd = &cobra.Command{
	Use:   "spawn <command>",
	Short: "Spawn a child process synchronously, streaming its combined output",
	Args:  cobra.ExactArgs(1),
	Run:   runSpawn,
}

func init() {
	spawnCmd.Flags().StringVar(&spawnArgs, "args", "", "argument string, tokenized the same way a shell would")
}

func runSpawn(cmd *cobra.Command, args []string) {
	log := newLogger()
	collector := metrics.New("platformopsctl", nil)

	collector.ProcessSpawned()
	exitCode, err := process.SpawnSync(cmd.Context(), args[0], spawnArgs, func(line string) {
		fmt.Println(line)
	})
	collector.ProcessReaped()

	if err != nil {
		log.Error("spawn failed", err)
		return
	}
	log.Info("spawn finished", platformlog.Field{Key: "exit_code", Value: exitCode})
}
