package benchmark

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/karimhabush/cis-vsphere/internal/check"
	"github.com/karimhabush/cis-vsphere/internal/vsphere"
)

// RunOptions control one audit run.
type RunOptions struct {
	// Output is the console report destination; nil silences the
	// console report (used with structured output formats).
	Output io.Writer
	// Parallel > 1 evaluates controls concurrently with that many
	// workers. Each control's console block is buffered and flushed
	// in declaration order, so output is identical to a sequential
	// run.
	Parallel int
	// Sections/Controls select a subset; empty means everything.
	Sections []int
	Controls []string
	Endpoint string
}

// Run executes the selected controls in benchmark order against the
// session and returns the collected run report. A fetch failure
// aborts the run with no partial summary.
func Run(ctx context.Context, s *vsphere.Session, sections []Section, opts RunOptions) (*check.RunReport, error) {
	selected := Filter(sections, opts.Sections, opts.Controls)

	run := &check.RunReport{
		RunID:     uuid.NewString(),
		Endpoint:  opts.Endpoint,
		StartedAt: time.Now().UTC(),
	}

	var err error
	if opts.Parallel > 1 {
		err = runParallel(ctx, s, selected, opts, run)
	} else {
		err = runSequential(ctx, s, selected, opts, run)
	}
	if err != nil {
		return nil, err
	}

	run.Finalize(time.Now().UTC())
	return run, nil
}

func runSequential(ctx context.Context, s *vsphere.Session, sections []Section, opts RunOptions, run *check.RunReport) error {
	var emitter check.Emitter = check.NopEmitter{}
	if opts.Output != nil {
		emitter = check.NewConsoleEmitter(opts.Output)
	}
	runner := check.NewRunner(emitter)

	for _, sec := range sections {
		emitter.Section(sec.ID, sec.Name)
		for _, def := range sec.Controls {
			report, err := evaluateOne(ctx, s, runner, def)
			if err != nil {
				return err
			}
			run.Add(report)
		}
	}
	return nil
}

func runParallel(ctx context.Context, s *vsphere.Session, sections []Section, opts RunOptions, run *check.RunReport) error {
	type slot struct {
		def    Definition
		report *check.Report
		block  *check.BlockEmitter
	}

	var slots []*slot
	for _, sec := range sections {
		for _, def := range sec.Controls {
			slots = append(slots, &slot{def: def})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallel)
	for _, sl := range slots {
		g.Go(func() error {
			sl.block = check.NewBlockEmitter()
			runner := check.NewRunner(sl.block)
			report, err := evaluateOne(gctx, s, runner, sl.def)
			if err != nil {
				return err
			}
			sl.report = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Flush blocks in declaration order, re-inserting section banners.
	i := 0
	var console *check.ConsoleEmitter
	if opts.Output != nil {
		console = check.NewConsoleEmitter(opts.Output)
	}
	for _, sec := range sections {
		if console != nil {
			console.Section(sec.ID, sec.Name)
		}
		for range sec.Controls {
			sl := slots[i]
			i++
			if opts.Output != nil {
				if err := sl.block.FlushTo(opts.Output); err != nil {
					return err
				}
			}
			run.Add(sl.report)
		}
	}
	return nil
}

func evaluateOne(ctx context.Context, s *vsphere.Session, runner *check.Runner, def Definition) (*check.Report, error) {
	if def.Fetch == nil {
		report, _ := runner.Manual(def.Control)
		return report, nil
	}
	report, _, err := runner.Evaluate(ctx, def.Control, def.Fetch(s), def.Classify)
	return report, err
}
