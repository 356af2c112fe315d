package check

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestConsoleEmitter_ReportShape(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var buf bytes.Buffer
	e := NewConsoleEmitter(&buf)

	e.Section(2, "Communication")
	e.BeginControl(Control{ID: "2.1", Title: "Ensure NTP time synchronization is configured properly", Severity: SeverityL1})
	e.Result(Result{Target: "esx1", Status: StatusPass})
	e.Result(Result{Target: "esx2", Status: StatusFail, Details: []string{"no NTP servers configured"}})
	e.EndControl(Tally{Passed: 1, Failed: 1})

	out := buf.String()
	for _, want := range []string{
		"=== Section 2: Communication ===",
		"2.1 Ensure NTP time synchronization is configured properly (L1)",
		"- esx1: Pass",
		"- esx2: Failed",
		"    no NTP servers configured",
		"Passed: 1",
		"Failed: 1",
		"Unknown: 0",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	// Per-target lines appear in evaluation order.
	if strings.Index(out, "esx1") > strings.Index(out, "esx2") {
		t.Fatalf("output reordered targets:\n%s", out)
	}
}

func TestBlockEmitter_FlushIsAtomic(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	b := NewBlockEmitter()
	b.BeginControl(Control{ID: "5.3", Title: "Ensure SSH is disabled", Severity: SeverityL1})
	b.Result(Result{Target: "esx1", Status: StatusPass})
	b.EndControl(Tally{Passed: 1})

	var out bytes.Buffer
	if err := b.FlushTo(&out); err != nil {
		t.Fatalf("FlushTo() error = %v", err)
	}
	if !strings.Contains(out.String(), "5.3 Ensure SSH is disabled (L1)") {
		t.Fatalf("flushed block missing banner:\n%s", out.String())
	}
	if !strings.HasSuffix(out.String(), "Unknown: 0\n") {
		t.Fatalf("flushed block truncated:\n%s", out.String())
	}
}
