package check

import (
	"context"
	"fmt"
)

// Fetch queries the inventory layer for the objects a control applies
// to. Every invocation re-queries: infrastructure state may have
// changed since the last run, so no caching is permitted. A fetch
// error means the inventory layer could not be reached and is never a
// control failure.
type Fetch func(ctx context.Context) ([]Target, error)

// Classify maps one target to an outcome. It must be total: any
// inability to determine compliance is expressed as Unknown, never as
// a propagated error.
type Classify func(Target) Outcome

const (
	syntheticNone   = "(no applicable objects)"
	syntheticManual = "(manual verification)"
)

// Runner executes controls and emits their reports.
type Runner struct {
	emitter Emitter
}

// NewRunner builds a runner that reports through the given emitter.
func NewRunner(e Emitter) *Runner {
	if e == nil {
		e = NopEmitter{}
	}
	return &Runner{emitter: e}
}

// Evaluate runs one control: fetch once, classify each target in yield
// order, record and emit each outcome immediately, then emit the tally.
// A fetch error aborts without finalizing a report, so missing data is
// never misread as compliance.
func (r *Runner) Evaluate(ctx context.Context, control Control, fetch Fetch, classify Classify) (*Report, Status, error) {
	targets, err := fetch(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("control %s: fetch: %w", control.ID, err)
	}

	report := NewReport(control)
	r.emitter.BeginControl(control)

	if len(targets) == 0 {
		res := Result{Target: syntheticNone}
		switch control.OnEmpty {
		case EmptyInconclusive:
			res.Status = StatusUnknown
			res.Details = []string{"nothing to evaluate; absence is inconclusive"}
		default:
			res.Status = StatusPass
			res.Details = []string{"nothing found; absence satisfies the control"}
		}
		report.record(res)
		r.emitter.Result(res)
	} else {
		for _, t := range targets {
			outcome := classify(t)
			res := Result{Target: t.Name(), Status: outcome.Status, Details: outcome.Details}
			report.record(res)
			r.emitter.Result(res)
		}
	}

	r.emitter.EndControl(report.Tally())
	return report, report.Status(), nil
}

// Manual records the uniform report for a control that cannot be
// mechanically evaluated: exactly one synthetic Unknown outcome
// carrying the control's rationale.
func (r *Runner) Manual(control Control) (*Report, Status) {
	report := NewReport(control)
	r.emitter.BeginControl(control)

	res := Result{Target: syntheticManual, Status: StatusUnknown}
	if control.Rationale != "" {
		res.Details = []string{control.Rationale}
	}
	report.record(res)
	r.emitter.Result(res)

	r.emitter.EndControl(report.Tally())
	return report, report.Status()
}
