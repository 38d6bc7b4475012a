package searcher

import (
	"time"
)

// SearchMetrics summarizes one Search call.
type SearchMetrics struct {
	StartTime  time.Time
	Duration   time.Duration
	Playouts   int64
	Expansions int64
	TreeReused bool
	TreeDepth  int
}

// MetricsCollector gathers per-search diagnostics. The search runs
// single-threaded, so plain counters suffice.
type MetricsCollector interface {
	Start()
	AddPlayout()
	AddExpansion()
	ReusedTree()
	SetTreeDepth(depth int)
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime  time.Time
	playouts   int64
	expansions int64
	treeReused bool
	treeDepth  int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.playouts = 0
	m.expansions = 0
	m.treeReused = false
	m.treeDepth = 0
}

func (m *metricsCollector) AddPlayout() {
	m.playouts++
}

func (m *metricsCollector) AddExpansion() {
	m.expansions++
}

func (m *metricsCollector) ReusedTree() {
	m.treeReused = true
}

func (m *metricsCollector) SetTreeDepth(depth int) {
	m.treeDepth = depth
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:  m.startTime,
		Duration:   time.Since(m.startTime),
		Playouts:   m.playouts,
		Expansions: m.expansions,
		TreeReused: m.treeReused,
		TreeDepth:  m.treeDepth,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                  {}
func (m *noMetricsCollector) AddPlayout()             {}
func (m *noMetricsCollector) AddExpansion()           {}
func (m *noMetricsCollector) ReusedTree()             {}
func (m *noMetricsCollector) SetTreeDepth(depth int)  {}
func (m *noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
