// Package prof collects wall-clock timings of labelled sections.
package prof

import (
	"sort"
	"sync"
	"time"
)

// Entry is one timed section.
type Entry struct {
	Label string
	Dur   time.Duration
}

// Summary aggregates the entries sharing a label.
type Summary struct {
	Label string
	Count int
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
}

// Mean returns Total / Count.
func (s Summary) Mean() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

// Recorder is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	record []Entry
}

// Track records the time since start under name. Intended for defer.
func (r *Recorder) Track(start time.Time, name string) {
	elapsed := time.Since(start)
	r.mu.Lock()
	r.record = append(r.record, Entry{Label: name, Dur: elapsed})
	r.mu.Unlock()
}

// Snapshot returns a copy of the entries recorded so far.
func (r *Recorder) Snapshot() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.record))
	copy(out, r.record)
	return out
}

// SnapshotAndReset returns the entries and clears the recorder.
func (r *Recorder) SnapshotAndReset() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.record
	r.record = nil
	return out
}

// Summarize groups entries by label, in order of first appearance.
func Summarize(entries []Entry) []Summary {
	idx := make(map[string]int)
	var out []Summary
	for _, e := range entries {
		i, ok := idx[e.Label]
		if !ok {
			i = len(out)
			idx[e.Label] = i
			out = append(out, Summary{Label: e.Label, Min: e.Dur, Max: e.Dur})
		}
		s := &out[i]
		s.Count++
		s.Total += e.Dur
		if e.Dur < s.Min {
			s.Min = e.Dur
		}
		if e.Dur > s.Max {
			s.Max = e.Dur
		}
	}
	return out
}

// Slowest returns the n summaries with the largest total, largest first.
func Slowest(sums []Summary, n int) []Summary {
	out := append([]Summary(nil), sums...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

var std Recorder

// Track records into the process-wide recorder.
func Track(start time.Time, name string) { std.Track(start, name) }

// SnapshotAndReset drains the process-wide recorder.
func SnapshotAndReset() []Entry { return std.SnapshotAndReset() }
