// Package metrics exposes the Prometheus collectors instrumenting the
// worker pool, the mapping registry, and the process supervisor.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector groups every collector this module registers. A nil
// *Collector is valid everywhere it's accepted — every Record/Set/Inc
// method is a no-op on a nil receiver, so instrumentation is always
// optional at the call site.
type Collector struct {
	registry prometheus.Registerer

	workersActive       prometheus.Gauge
	tasksSubmitted      *prometheus.CounterVec
	tasksCompleted      prometheus.Counter
	tasksCancelled      prometheus.Counter
	mappingRegistrySize prometheus.Gauge
	processesInFlight   prometheus.Gauge
}

// New registers and returns a Collector under namespace using reg, or
// prometheus.DefaultRegisterer if reg is nil.
func New(namespace string, reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		registry: reg,
		workersActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "scheduler_workers_active",
			Help:      "Number of worker goroutines currently running a task.",
		}),
		tasksSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduler_tasks_submitted_total",
			Help:      "Total number of tasks submitted to the pool, by priority.",
		}, []string{"priority"}),
		tasksCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduler_tasks_completed_total",
			Help:      "Total number of tasks that ran to completion.",
		}),
		tasksCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scheduler_tasks_cancelled_total",
			Help:      "Total number of queued tasks removed by tag cancellation.",
		}),
		mappingRegistrySize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mapping_registry_live_entries",
			Help:      "Number of live entries in the mapping registry.",
		}),
		processesInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "process_spawns_in_flight",
			Help:      "Number of child processes currently supervised.",
		}),
	}

	reg.MustRegister(
		c.workersActive,
		c.tasksSubmitted,
		c.tasksCompleted,
		c.tasksCancelled,
		c.mappingRegistrySize,
		c.processesInFlight,
	)

	return c
}

func (c *Collector) WorkerStarted() {
	if c == nil {
		return
	}
	c.workersActive.Inc()
}

func (c *Collector) WorkerIdled() {
	if c == nil {
		return
	}
	c.workersActive.Dec()
}

func (c *Collector) TaskSubmitted(priority string) {
	if c == nil {
		return
	}
	c.tasksSubmitted.WithLabelValues(priority).Inc()
}

func (c *Collector) TaskCompleted() {
	if c == nil {
		return
	}
	c.tasksCompleted.Inc()
}

func (c *Collector) TasksCancelled(n int) {
	if c == nil || n <= 0 {
		return
	}
	c.tasksCancelled.Add(float64(n))
}

func (c *Collector) SetMappingRegistrySize(n int) {
	if c == nil {
		return
	}
	c.mappingRegistrySize.Set(float64(n))
}

func (c *Collector) ProcessSpawned() {
	if c == nil {
		return
	}
	c.processesInFlight.Inc()
}

func (c *Collector) ProcessReaped() {
	if c == nil {
		return
	}
	c.processesInFlight.Dec()
}
