// Package perf records how long calendar renders take and how many picker
// events were dispatched, and reports both through slog.
package perf

import (
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Stats is a snapshot of a Recorder.
type Stats struct {
	Name    string
	Count   int64
	Total   time.Duration
	Max     time.Duration
	SlowOps int64
}

// Avg returns the mean duration, or 0 when nothing was recorded.
func (s Stats) Avg() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// Recorder accumulates durations of one kind of operation. Operations at or
// over the threshold are logged at warn level.
type Recorder struct {
	name      string
	logger    *slog.Logger
	threshold time.Duration

	count   atomic.Int64
	total   atomic.Int64
	max     atomic.Int64
	slowOps atomic.Int64
}

func NewRecorder(name string, logger *slog.Logger, threshold time.Duration) *Recorder {
	return &Recorder{name: name, logger: logger, threshold: threshold}
}

// Start returns a func that records the time elapsed since Start was called.
//
//	defer rec.Start()()
func (r *Recorder) Start() func() {
	start := time.Now()
	return func() { r.Record(time.Since(start)) }
}

func (r *Recorder) Record(elapsed time.Duration) {
	ns := elapsed.Nanoseconds()
	r.count.Add(1)
	r.total.Add(ns)

	for {
		cur := r.max.Load()
		if ns <= cur || r.max.CompareAndSwap(cur, ns) {
			break
		}
	}

	if r.threshold > 0 && elapsed >= r.threshold {
		r.slowOps.Add(1)
		if r.logger != nil {
			r.logger.Warn(r.name+"_slow", "duration_ms", elapsed.Milliseconds(), "threshold_ms", r.threshold.Milliseconds())
		}
	}
}

func (r *Recorder) Stats() Stats {
	return Stats{
		Name:    r.name,
		Count:   r.count.Load(),
		Total:   time.Duration(r.total.Load()),
		Max:     time.Duration(r.max.Load()),
		SlowOps: r.slowOps.Load(),
	}
}

// LogStats writes the current stats at debug level.
func (r *Recorder) LogStats() {
	s := r.Stats()
	if s.Count == 0 || r.logger == nil {
		return
	}
	r.logger.Debug(r.name+"_stats",
		"count", s.Count,
		"avg_us", s.Avg().Microseconds(),
		"max_us", s.Max.Microseconds(),
		"slow_ops", s.SlowOps,
	)
}

// Counters counts named events.
type Counters struct {
	mu     sync.Mutex
	counts map[string]*atomic.Int64
}

func NewCounters() *Counters {
	return &Counters{counts: make(map[string]*atomic.Int64)}
}

func (c *Counters) Inc(name string) {
	c.mu.Lock()
	v, ok := c.counts[name]
	if !ok {
		v = new(atomic.Int64)
		c.counts[name] = v
	}
	c.mu.Unlock()
	v.Add(1)
}

func (c *Counters) Value(name string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.counts[name]; ok {
		return v.Load()
	}
	return 0
}

// Snapshot returns all counts keyed by name.
func (c *Counters) Snapshot() map[string]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]int64, len(c.counts))
	for k, v := range c.counts {
		out[k] = v.Load()
	}
	return out
}

// Names returns the counter names in sorted order.
func (c *Counters) Names() []string {
	snap := c.Snapshot()
	names := make([]string, 0, len(snap))
	for k := range snap {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
