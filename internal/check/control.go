// Package check implements the compliance-check evaluation core: the
// control and target model, the per-control report with its tallies,
// and the runner that turns a fetch + classify pair into a printed,
// statused report.
package check

// Severity is the CIS profile level a control belongs to.
type Severity string

const (
	SeverityL1 Severity = "L1"
	SeverityL2 Severity = "L2"
)

// EmptyPolicy decides what a control's report looks like when its fetch
// yields no target objects. A report is never left with zero outcomes.
type EmptyPolicy int

const (
	// EmptyCompliant records one synthetic Pass when nothing is found
	// (e.g. "no insecure devices exist" is satisfied by absence).
	EmptyCompliant EmptyPolicy = iota
	// EmptyInconclusive records one synthetic Unknown when nothing is
	// found and absence proves nothing.
	EmptyInconclusive
)

// Control identifies one numbered benchmark requirement. It is fixed at
// definition time and never mutated.
type Control struct {
	ID       string
	Title    string
	Severity Severity
	OnEmpty  EmptyPolicy

	// Rationale is set on manual-only controls and explains why the
	// check cannot be automated.
	Rationale string
}

// Manual reports whether the control requires human verification.
func (c Control) Manual() bool {
	return c.Rationale != ""
}
