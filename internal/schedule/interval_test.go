package schedule

import (
	"testing"
	"time"
)

func iv(t *testing.T, start, end string) Interval {
	t.Helper()
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		t.Fatalf("parse start: %v", err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		t.Fatalf("parse end: %v", err)
	}
	return Interval{Start: s, End: e}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{
			"partial overlap",
			iv(t, "2025-06-20T09:00:00Z", "2025-06-20T10:00:00Z"),
			iv(t, "2025-06-20T09:30:00Z", "2025-06-20T10:30:00Z"),
			true,
		},
		{
			"containment",
			iv(t, "2025-06-20T09:00:00Z", "2025-06-20T12:00:00Z"),
			iv(t, "2025-06-20T10:00:00Z", "2025-06-20T10:30:00Z"),
			true,
		},
		{
			"touching endpoints do not overlap",
			iv(t, "2025-06-20T09:00:00Z", "2025-06-20T09:30:00Z"),
			iv(t, "2025-06-20T09:30:00Z", "2025-06-20T10:00:00Z"),
			false,
		},
		{
			"disjoint",
			iv(t, "2025-06-20T09:00:00Z", "2025-06-20T09:30:00Z"),
			iv(t, "2025-06-20T11:00:00Z", "2025-06-20T11:30:00Z"),
			false,
		},
		{
			"identical",
			iv(t, "2025-06-20T09:00:00Z", "2025-06-20T09:30:00Z"),
			iv(t, "2025-06-20T09:00:00Z", "2025-06-20T09:30:00Z"),
			true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.a, tc.b); got != tc.want {
				t.Fatalf("Overlaps = %v, want %v", got, tc.want)
			}
			// The predicate is symmetric.
			if got := Overlaps(tc.b, tc.a); got != tc.want {
				t.Fatalf("Overlaps reversed = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIntervalValid(t *testing.T) {
	if !iv(t, "2025-06-20T09:00:00Z", "2025-06-20T09:30:00Z").Valid() {
		t.Fatal("expected positive-length interval to be valid")
	}
	if iv(t, "2025-06-20T09:30:00Z", "2025-06-20T09:30:00Z").Valid() {
		t.Fatal("expected zero-length interval to be invalid")
	}
	if iv(t, "2025-06-20T10:00:00Z", "2025-06-20T09:00:00Z").Valid() {
		t.Fatal("expected reversed interval to be invalid")
	}
}
