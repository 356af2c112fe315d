// Package benchmark defines the CIS VMware ESXi controls: eight
// sections, each a fixed-order list of control definitions binding a
// fetch query against the inventory session to a named predicate.
package benchmark

import (
	"strings"

	"github.com/karimhabush/cis-vsphere/internal/check"
	"github.com/karimhabush/cis-vsphere/internal/manifest"
	"github.com/karimhabush/cis-vsphere/internal/vsphere"
)

// Definition binds one control to its fetch query and predicate.
// Manual controls have no fetch; the runner records their uniform
// single-Unknown report.
type Definition struct {
	Control  check.Control
	Fetch    func(*vsphere.Session) check.Fetch
	Classify check.Classify
}

// Section is one numbered benchmark chapter.
type Section struct {
	ID       int
	Name     string
	Controls []Definition
}

// Sections returns every section in benchmark order. The patch
// manifest feeds control 1.1 and may be nil, in which case that
// control evaluates Unknown.
func Sections(m *manifest.Manifest) []Section {
	return []Section{
		installSection(m),
		communicationSection(),
		loggingSection(),
		accessSection(),
		consoleSection(),
		storageSection(),
		networkSection(),
		vmSection(),
	}
}

func manual(id, title string, sev check.Severity, rationale string) Definition {
	return Definition{
		Control: check.Control{
			ID:        id,
			Title:     title,
			Severity:  sev,
			Rationale: rationale,
		},
	}
}

// Filter keeps only the controls selected by section numbers and/or
// control IDs, preserving order. Empty selectors keep everything.
func Filter(sections []Section, sectionIDs []int, controlIDs []string) []Section {
	if len(sectionIDs) == 0 && len(controlIDs) == 0 {
		return sections
	}

	wantSection := make(map[int]bool, len(sectionIDs))
	for _, id := range sectionIDs {
		wantSection[id] = true
	}
	wantControl := make(map[string]bool, len(controlIDs))
	for _, id := range controlIDs {
		wantControl[strings.TrimSpace(id)] = true
	}

	var out []Section
	for _, sec := range sections {
		keep := sec
		keep.Controls = nil
		for _, def := range sec.Controls {
			if wantSection[sec.ID] || wantControl[def.Control.ID] {
				keep.Controls = append(keep.Controls, def)
			}
		}
		if len(keep.Controls) > 0 {
			out = append(out, keep)
		}
	}
	return out
}
