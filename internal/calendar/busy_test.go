package calendar

import (
	"testing"
	"time"

	"github.com/plopez206/Voice-Assitant/pkg/logging"
)

func TestIntervalsParsesWellFormedEntries(t *testing.T) {
	entries := []BusyInterval{
		{Start: "2025-06-20T09:00:00+02:00", End: "2025-06-20T10:00:00+02:00"},
		{Start: "2025-06-20T15:00:00Z", End: "2025-06-20T15:30:00Z"},
	}
	got := Intervals(entries, logging.Default())
	if len(got) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(got))
	}
	if !got[0].Valid() || !got[1].Valid() {
		t.Fatal("expected valid intervals")
	}
	want, _ := time.Parse(time.RFC3339, "2025-06-20T09:00:00+02:00")
	if !got[0].Start.Equal(want) {
		t.Fatalf("unexpected start %v", got[0].Start)
	}
}

func TestIntervalsDropsMalformedEntries(t *testing.T) {
	entries := []BusyInterval{
		{Start: "", End: "2025-06-20T10:00:00Z"},
		{Start: "2025-06-20T09:00:00Z", End: ""},
		{Start: "not-a-time", End: "2025-06-20T10:00:00Z"},
		{Start: "2025-06-20T09:00:00Z", End: "later"},
		{Start: "2025-06-20T10:00:00Z", End: "2025-06-20T09:00:00Z"},
		{Start: "2025-06-20T09:00:00Z", End: "2025-06-20T10:00:00Z"},
	}
	got := Intervals(entries, logging.Default())
	if len(got) != 1 {
		t.Fatalf("expected only the well-formed entry to survive, got %d", len(got))
	}
}

func TestIntervalsEmptyInput(t *testing.T) {
	if got := Intervals(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}
