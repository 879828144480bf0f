package observability

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

const maxRecent = 20

// RecentPrediction is one line of the rolling activity list.
type RecentPrediction struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Timestamp  string  `json:"timestamp"`
}

// Stats is the snapshot served by the health endpoint.
type Stats struct {
	Predictions     uint64 `json:"predictions"`
	AILabels        uint64 `json:"ai_labels"`
	HumanLabels     uint64 `json:"human_labels"`
	Undecided       uint64 `json:"undecided"`
	Documents       uint64 `json:"documents"`
	Errors          uint64 `json:"errors"`
	OpinionFailures uint64 `json:"opinion_failures"`

	RSSBytes   uint64  `json:"rss_bytes"`
	CPUPercent float64 `json:"cpu_percent"`
	AllocMemMb uint64  `json:"alloc_mem_mb"`
	NumGC      uint32  `json:"num_gc"`
	Goroutines int     `json:"goroutines"`

	StartedAt time.Time          `json:"started_at"`
	Recent    []RecentPrediction `json:"recent"`
}

// Monitor counts what the prediction service does and samples the process.
type Monitor struct {
	log       *slog.Logger
	mu        sync.RWMutex
	latest    Stats
	recent    []RecentPrediction
	proc      *process.Process
	startedAt time.Time

	predictions     uint64
	aiLabels        uint64
	humanLabels     uint64
	undecided       uint64
	documents       uint64
	errors          uint64
	opinionFailures uint64
}

func NewMonitor(log *slog.Logger) *Monitor {
	m := &Monitor{log: log, startedAt: time.Now().UTC()}
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Process stats unavailable", "error", err)
	} else {
		m.proc = p
	}
	m.Sample()
	return m
}

// RecordPrediction counts one classified submission under its label.
func (m *Monitor) RecordPrediction(id, label string, confidence float64) {
	atomic.AddUint64(&m.predictions, 1)
	switch label {
	case "ai":
		atomic.AddUint64(&m.aiLabels, 1)
	case "human":
		atomic.AddUint64(&m.humanLabels, 1)
	case "undecided":
		atomic.AddUint64(&m.undecided, 1)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	entry := RecentPrediction{ID: id, Label: label, Confidence: confidence, Timestamp: time.Now().Format("15:04:05")}
	m.recent = append([]RecentPrediction{entry}, m.recent...)
	if len(m.recent) > maxRecent {
		m.recent = m.recent[:maxRecent]
	}
}

func (m *Monitor) IncrDocuments() { atomic.AddUint64(&m.documents, 1) }

func (m *Monitor) IncrErrors() { atomic.AddUint64(&m.errors, 1) }

func (m *Monitor) IncrOpinionFailures() { atomic.AddUint64(&m.opinionFailures, 1) }

// Run samples process stats every interval until ctx is done.
func (m *Monitor) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			m.log.Info("Monitor stopped")
			return
		case <-ticker.C:
			m.Sample()
		}
	}
}

// Sample refreshes the process part of the snapshot.
func (m *Monitor) Sample() {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	var rss uint64
	var cpu float64
	if m.proc != nil {
		if info, err := m.proc.MemoryInfo(); err == nil {
			rss = info.RSS
		}
		if c, err := m.proc.CPUPercent(); err == nil {
			cpu = c
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.latest.RSSBytes = rss
	m.latest.CPUPercent = cpu
	m.latest.AllocMemMb = mem.Alloc / 1024 / 1024
	m.latest.NumGC = mem.NumGC
	m.latest.Goroutines = runtime.NumGoroutine()
	m.log.Debug("Stats sampled", "rss_bytes", rss, "cpu_percent", cpu, "goroutines", m.latest.Goroutines)
}

// GetLatest combines the live counters with the last process sample.
func (m *Monitor) GetLatest() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := m.latest
	stats.Predictions = atomic.LoadUint64(&m.predictions)
	stats.AILabels = atomic.LoadUint64(&m.aiLabels)
	stats.HumanLabels = atomic.LoadUint64(&m.humanLabels)
	stats.Undecided = atomic.LoadUint64(&m.undecided)
	stats.Documents = atomic.LoadUint64(&m.documents)
	stats.Errors = atomic.LoadUint64(&m.errors)
	stats.OpinionFailures = atomic.LoadUint64(&m.opinionFailures)
	stats.StartedAt = m.startedAt
	stats.Recent = append([]RecentPrediction(nil), m.recent...)
	return stats
}
