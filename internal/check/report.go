package check

// Status is the tri-state result of evaluating one target, and, by
// reduction, of a whole control.
type Status string

const (
	StatusPass    Status = "Pass"
	StatusFail    Status = "Failed"
	StatusUnknown Status = "Unknown"
)

// Outcome is what a classify function returns for one target.
type Outcome struct {
	Status  Status
	Details []string
}

// Pass builds a passing outcome with optional detail lines.
func Pass(details ...string) Outcome {
	return Outcome{Status: StatusPass, Details: details}
}

// Fail builds a failing outcome with optional detail lines.
func Fail(details ...string) Outcome {
	return Outcome{Status: StatusFail, Details: details}
}

// Unknown builds an indeterminate outcome. Unknown is a first-class
// evaluation result, not an error: it means the benchmark requires
// human judgment or no automatable signal was available.
func Unknown(details ...string) Outcome {
	return Outcome{Status: StatusUnknown, Details: details}
}

// Result is one recorded (target, outcome) pair inside a report.
type Result struct {
	Target  string   `json:"target"`
	Status  Status   `json:"status"`
	Details []string `json:"details,omitempty"`
}

// Tally is the pass/fail/unknown count triple for one control.
type Tally struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Unknown int `json:"unknown"`
}

// Report aggregates the ordered outcomes of one control execution.
// The tally is only ever advanced together with an append, so
// Passed+Failed+Unknown always equals len(Results()).
type Report struct {
	control Control
	results []Result
	tally   Tally
}

// NewReport builds an empty report for the given control.
func NewReport(control Control) *Report {
	return &Report{control: control}
}

// Control returns the control this report belongs to.
func (r *Report) Control() Control {
	return r.control
}

func (r *Report) record(res Result) {
	r.results = append(r.results, res)
	switch res.Status {
	case StatusPass:
		r.tally.Passed++
	case StatusFail:
		r.tally.Failed++
	default:
		r.tally.Unknown++
	}
}

// Results returns the recorded outcomes in evaluation order.
func (r *Report) Results() []Result {
	return r.results
}

// Tally returns the derived count triple.
func (r *Report) Tally() Tally {
	return r.tally
}

// Status reduces the tally to a single control status. Priority is
// strict: any failure dominates any unknown, which dominates a clean
// pass. A confirmed violation is more actionable than an indeterminate
// result, and both are more actionable than silence.
func (r *Report) Status() Status {
	switch {
	case r.tally.Failed > 0:
		return StatusFail
	case r.tally.Unknown > 0:
		return StatusUnknown
	default:
		return StatusPass
	}
}
