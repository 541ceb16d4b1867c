package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64
	Cutoffs   int64
	Depth     int // Deepest fully searched depth
	TimedOut  bool
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddCutoff()
	CompleteDepth(depth int)
	TimedOut()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime time.Time
	nodes     atomic.Int64
	cutoffs   atomic.Int64
	depth     atomic.Int64
	timedOut  atomic.Bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

// Start resets the counters for a new decision.
func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.cutoffs.Store(0)
	m.depth.Store(0)
	m.timedOut.Store(false)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) CompleteDepth(depth int) {
	m.depth.Store(int64(depth))
}

func (m *metricsCollector) TimedOut() {
	m.timedOut.Store(true)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes.Load(),
		Cutoffs:   m.cutoffs.Load(),
		Depth:     int(m.depth.Load()),
		TimedOut:  m.timedOut.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddNode()                {}
func (m *noMetricsCollector) AddCutoff()              {}
func (m *noMetricsCollector) CompleteDepth(depth int) {}
func (m *noMetricsCollector) TimedOut()               {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
