package profiling

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"
)

// Tracker accumulates named durations between resets. A nil *Tracker is
// valid and records nothing.
type Tracker struct {
	mu     sync.Mutex
	totals map[string]Entry
}

// Entry is the accumulated time and call count for one name.
type Entry struct {
	Name  string
	Total time.Duration
	Calls int
}

// New returns an empty tracker.
func New() *Tracker {
	return &Tracker{totals: make(map[string]Entry)}
}

// Track returns a stop function that records the elapsed time under name.
// Usage: defer tracker.Track("world.Update")()
func (t *Tracker) Track(name string) func() {
	if t == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		d := time.Since(start)
		t.mu.Lock()
		e := t.totals[name]
		e.Name = name
		e.Total += d
		e.Calls++
		t.totals[name] = e
		t.mu.Unlock()
	}
}

// Reset clears all totals.
func (t *Tracker) Reset() {
	if t == nil {
		return
	}
	t.mu.Lock()
	clear(t.totals)
	t.mu.Unlock()
}

// Top returns up to n entries ordered by total time, longest first.
func (t *Tracker) Top(n int) []Entry {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	list := make([]Entry, 0, len(t.totals))
	for _, e := range t.totals {
		list = append(list, e)
	}
	t.mu.Unlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Total != list[j].Total {
			return list[i].Total > list[j].Total
		}
		return list[i].Name < list[j].Name
	})
	if n < len(list) {
		list = list[:n]
	}
	return list
}

// TopN formats the n longest entries.
// Example: "world.Update:4.2ms/60, world.RenderWorld:2.1ms/60"
func (t *Tracker) TopN(n int) string {
	top := t.Top(n)
	parts := make([]string, 0, len(top))
	for _, e := range top {
		parts = append(parts, fmt.Sprintf("%s:%.1fms/%d", e.Name, float64(e.Total.Microseconds())/1000, e.Calls))
	}
	return strings.Join(parts, ", ")
}

// LogValue renders the five longest entries as a group.
func (t *Tracker) LogValue() slog.Value {
	top := t.Top(5)
	attrs := make([]slog.Attr, 0, len(top))
	for _, e := range top {
		attrs = append(attrs, slog.Duration(e.Name, e.Total))
	}
	return slog.GroupValue(attrs...)
}
