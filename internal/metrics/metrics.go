package metrics

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

type actionStats struct {
	requests Counter
	failures Counter
	totalMs  Counter
}

// Actions counts gateway calls per action. Status >= 400 is a failure.
type Actions struct {
	mu    sync.RWMutex
	stats map[string]*actionStats
}

func NewActions() *Actions {
	return &Actions{stats: make(map[string]*actionStats)}
}

func (a *Actions) get(action string) *actionStats {
	a.mu.RLock()
	s, ok := a.stats[action]
	a.mu.RUnlock()
	if ok {
		return s
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if s, ok = a.stats[action]; !ok {
		s = &actionStats{}
		a.stats[action] = s
	}
	return s
}

func (a *Actions) Observe(action string, status int, d time.Duration) {
	s := a.get(action)
	s.requests.Inc()
	if status >= 400 {
		s.failures.Inc()
	}
	s.totalMs.Add(uint64(d.Milliseconds()))
}

type ActionSnapshot struct {
	Action   string  `json:"action"`
	Requests uint64  `json:"requests"`
	Failures uint64  `json:"failures"`
	AvgMs    float64 `json:"avg_ms"`
}

// Snapshot returns the counters sorted by action name.
func (a *Actions) Snapshot() []ActionSnapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]ActionSnapshot, 0, len(a.stats))
	for name, s := range a.stats {
		snap := ActionSnapshot{
			Action:   name,
			Requests: s.requests.Load(),
			Failures: s.failures.Load(),
		}
		if snap.Requests > 0 {
			snap.AvgMs = float64(s.totalMs.Load()) / float64(snap.Requests)
		}
		out = append(out, snap)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Action < out[j].Action })
	return out
}
