package check

import "testing"

func TestReport_StatusPriority(t *testing.T) {
	cases := []struct {
		name     string
		statuses []Status
		want     Status
	}{
		{"all pass", []Status{StatusPass, StatusPass}, StatusPass},
		{"fail dominates unknown", []Status{StatusPass, StatusUnknown, StatusFail}, StatusFail},
		{"single fail among passes", []Status{StatusPass, StatusFail, StatusPass}, StatusFail},
		{"unknown dominates pass", []Status{StatusPass, StatusUnknown}, StatusUnknown},
		{"only unknown", []Status{StatusUnknown}, StatusUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewReport(Control{ID: "0.0"})
			for i, s := range tc.statuses {
				r.record(Result{Target: string(rune('a' + i)), Status: s})
			}
			if got := r.Status(); got != tc.want {
				t.Fatalf("Status() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestRunReport_Overall(t *testing.T) {
	mk := func(statuses ...Status) *RunReport {
		run := &RunReport{}
		for i, s := range statuses {
			rep := NewReport(Control{ID: string(rune('1' + i))})
			rep.record(Result{Target: "t", Status: s})
			run.Add(rep)
		}
		run.Finalize(run.StartedAt)
		return run
	}

	if got := mk(StatusPass, StatusPass).Overall; got != StatusPass {
		t.Fatalf("Overall = %s, want %s", got, StatusPass)
	}
	if got := mk(StatusPass, StatusUnknown, StatusFail).Overall; got != StatusFail {
		t.Fatalf("Overall = %s, want %s", got, StatusFail)
	}
	if got := mk(StatusPass, StatusUnknown).Overall; got != StatusUnknown {
		t.Fatalf("Overall = %s, want %s", got, StatusUnknown)
	}
}
