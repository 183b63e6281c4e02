// Package schedulerconfig loads worker pool tuning from YAML, falling
// back to defaults on a missing or corrupt file.
package schedulerconfig

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config is the YAML document Load reads.
type Config struct {
	WorkerCount       int  `yaml:"worker_count"`        // 0 (by default) = scheduler.DefaultWorkerCount()
	QueueCapacityHint int  `yaml:"queue_capacity_hint"` // 64 (by default)
	LogDrainPolls     bool `yaml:"log_drain_polls"`     // false (by default)
}

func defaultConfig() Config {
	return Config{
		WorkerCount:       0,
		QueueCapacityHint: 64,
		LogDrainPolls:     false,
	}
}

// Load reads YAML from path and overrides defaults; an empty path, a
// missing file, or invalid YAML all silently fall back to defaults
// rather than returning an error.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.WorkerCount < 0 || cfg.WorkerCount > 255 {
		cfg.WorkerCount = 0
	}
	if cfg.QueueCapacityHint <= 0 {
		cfg.QueueCapacityHint = 64
	}

	return cfg
}
