package check

import (
	"encoding/json"
	"io"
	"time"
)

// ControlSummary is the retained projection of one finished report.
type ControlSummary struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Severity Severity `json:"severity"`
	Status   Status   `json:"status"`
	Tally    Tally    `json:"tally"`
	Results  []Result `json:"results"`
}

// RunReport collects every control summary of one audit run, in
// declaration order.
type RunReport struct {
	RunID      string           `json:"run_id"`
	Endpoint   string           `json:"endpoint"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Controls   []ControlSummary `json:"controls"`
	Overall    Status           `json:"overall"`
}

// Add appends one finished report.
func (r *RunReport) Add(rep *Report) {
	c := rep.Control()
	r.Controls = append(r.Controls, ControlSummary{
		ID:       c.ID,
		Title:    c.Title,
		Severity: c.Severity,
		Status:   rep.Status(),
		Tally:    rep.Tally(),
		Results:  rep.Results(),
	})
}

// Finalize stamps the finish time and derives the overall status with
// the same fail > unknown > pass priority used per control.
func (r *RunReport) Finalize(now time.Time) {
	r.FinishedAt = now
	overall := StatusPass
	for _, c := range r.Controls {
		switch c.Status {
		case StatusFail:
			r.Overall = StatusFail
			return
		case StatusUnknown:
			overall = StatusUnknown
		}
	}
	r.Overall = overall
}

// WriteJSON renders the run report as indented JSON.
func (r *RunReport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
