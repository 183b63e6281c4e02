package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"platformops/internal/metrics"
	"platformops/internal/platformlog"
	"platformops/pkg/mapping"
)

var mapFileCmd = &cobra.Command{
	Use:   "mapfile <path>",
	Short: "Memory-map a file read-only and print its size",
	Args:  cobra.ExactArgs(1),
	Run:   runMapFile,
}

func runMapFile(cmd *cobra.Command, args []string) {
	log := newLogger()

	data, err := mapping.MapFile(args[0])
	if err != nil {
		log.Error("map_file failed", err)
		return
	}
	defer mapping.UnmapFile(data)

	collector := metrics.New("platformopsctl", nil)
	collector.SetMappingRegistrySize(mapping.Default().Len())

	fmt.Printf("mapped %d bytes, registry has %d live entries\n", len(data), mapping.Default().Len())
	log.Debug("mapped file", platformlog.Field{Key: "path", Value: args[0]}, platformlog.Field{Key: "size", Value: len(data)})
}
