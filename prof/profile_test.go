package prof

import (
	"sync"
	"testing"
	"time"
)

func TestRecorderConcurrent(t *testing.T) {
	var r Recorder
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Track(time.Now(), "work")
		}()
	}
	wg.Wait()
	if got := len(r.Snapshot()); got != 8 {
		t.Fatalf("%d entries want 8", got)
	}
	if got := len(r.SnapshotAndReset()); got != 8 {
		t.Fatalf("%d entries want 8", got)
	}
	if got := len(r.Snapshot()); got != 0 {
		t.Fatalf("%d entries after reset", got)
	}
}

func TestSummarize(t *testing.T) {
	entries := []Entry{
		{"a", 3 * time.Millisecond},
		{"b", 10 * time.Millisecond},
		{"a", 1 * time.Millisecond},
		{"a", 2 * time.Millisecond},
	}
	sums := Summarize(entries)
	if len(sums) != 2 || sums[0].Label != "a" || sums[1].Label != "b" {
		t.Fatalf("Summarize order: %+v", sums)
	}
	a := sums[0]
	if a.Count != 3 || a.Total != 6*time.Millisecond || a.Min != time.Millisecond || a.Max != 3*time.Millisecond {
		t.Fatalf("summary of a: %+v", a)
	}
	if a.Mean() != 2*time.Millisecond {
		t.Fatalf("mean %v", a.Mean())
	}
	if top := Slowest(sums, 1); len(top) != 1 || top[0].Label != "b" {
		t.Fatalf("Slowest: %+v", top)
	}
}

func TestProcessRecorder(t *testing.T) {
	SnapshotAndReset()
	Track(time.Now(), "x")
	if e := SnapshotAndReset(); len(e) != 1 || e[0].Label != "x" {
		t.Fatalf("process recorder: %+v", e)
	}
}
