// Package metrics exposes the Prometheus collectors updated by the shared
// and asynchronous parts of the library.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ShareExecutions counts how many times a shared source started its
	// upstream, labelled by the share name.
	ShareExecutions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fpsource_share_executions_total",
		Help: "The number of upstream executions started by shared sources",
	}, []string{"name"})

	// DeferFactoryCalls counts factory invocations of deferred sources.
	DeferFactoryCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fpsource_defer_factory_calls_total",
		Help: "The number of times a deferred source invoked its factory",
	}, []string{"name"})

	// InnerSubscriptions tracks the inner sources currently open in merge maps.
	InnerSubscriptions = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fpsource_merge_map_inner_subscriptions",
		Help: "The number of inner sources currently subscribed by merge maps",
	}, []string{"name"})

	// SchedulerQueueDepth is the number of tasks waiting in a loop.
	SchedulerQueueDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "fpsource_scheduler_queue_depth",
		Help: "The number of tasks waiting to run on a scheduler loop",
	}, []string{"name"})

	// SchedulerTasks counts tasks executed by a loop.
	SchedulerTasks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fpsource_scheduler_tasks_total",
		Help: "The number of tasks executed by a scheduler loop",
	}, []string{"name"})
)
