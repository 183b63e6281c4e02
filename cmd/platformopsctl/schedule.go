package main

import (
	"fmt"
	"sync/atomic"

	"github.com/spf13/cobra"

	"platformops/internal/metrics"
	"platformops/internal/schedulerconfig"
	"platformops/pkg/scheduler"
)

var (
	scheduleWorkers int
	scheduleTasks   int
	scheduleConfig  string
)

var runTaskCmd = &cobra.Command{
	Use:   "run-task",
	Short: "Submit N no-op tasks to a worker pool and wait for them to drain",
	Run:   runScheduleDemo,
}

func init() {
	runTaskCmd.Flags().IntVar(&scheduleWorkers, "workers", 0, "worker count (0 = the config file's worker_count, or scheduler.DefaultWorkerCount() when that is also 0)")
	runTaskCmd.Flags().IntVar(&scheduleTasks, "tasks", 10, "number of tasks to submit")
	runTaskCmd.Flags().StringVar(&scheduleConfig, "config", "", "path to a scheduler tuning YAML file")
}

func runScheduleDemo(cmd *cobra.Command, args []string) {
	log := newLogger()
	cfg := schedulerconfig.Load(scheduleConfig)

	workerCount := scheduleWorkers
	if workerCount == 0 {
		workerCount = cfg.WorkerCount
	}

	collector := metrics.New("platformopsctl", nil)
	pool := scheduler.NewPool(scheduler.Config{Logger: log, Metrics: collector})
	if err := pool.Initialize(uint8(workerCount)); err != nil {
		log.Error("failed to initialize pool", err)
		return
	}
	defer pool.Terminate()

	var completed atomic.Int64
	sched := scheduler.NewSchedule()
	for i := 0; i < scheduleTasks; i++ {
		pool.Submit(func(id scheduler.WorkerID) {
			completed.Add(1)
		}, 0, sched, scheduler.Normal)
	}

	sched.Wait(pool)
	fmt.Printf("completed %d/%d tasks on %d workers\n", completed.Load(), scheduleTasks, pool.WorkerCount())
}
