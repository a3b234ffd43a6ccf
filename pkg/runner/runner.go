package runner

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	"github.com/yaklabco/apidirlint/internal/logging"
	"github.com/yaklabco/apidirlint/pkg/config"
	"github.com/yaklabco/apidirlint/pkg/lint"
)

// Runner reads files and validates them with a lint.Engine.
type Runner struct {
	// Engine runs the rules over each parsed document.
	Engine *lint.Engine

	// ReadFile loads a file's content. Defaults to os.ReadFile.
	ReadFile func(path string) ([]byte, error)
}

// New creates a new Runner with the given engine.
func New(engine *lint.Engine) *Runner {
	return &Runner{
		Engine:   engine,
		ReadFile: os.ReadFile,
	}
}

// LintFile reads and validates a single file.
// Read failures are returned as errors; violations are carried by the report.
func (r *Runner) LintFile(ctx context.Context, path string, cfg *config.Config) (*lint.Report, error) {
	content, err := r.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	report, err := r.Engine.Lint(ctx, path, content, cfg)
	if err != nil {
		return report, fmt.Errorf("validate %s: %w", path, err)
	}

	logging.FromContext(ctx).Debug("validated",
		logging.FieldPath, path,
		logging.FieldSections, report.Sections,
		logging.FieldRows, report.Rows,
		logging.FieldIssues, report.IssueCount(),
	)
	return report, nil
}

// Run validates opts.Paths concurrently.
// Outcomes are returned in the order of opts.Paths.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	result := &Result{
		Files: make([]FileOutcome, 0, len(opts.Paths)),
		Stats: newStats(),
	}
	if len(opts.Paths) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(opts.Paths))

	workCh := make(chan int)
	outcomes := make([]FileOutcome, len(opts.Paths))
	done := make([]bool, len(opts.Paths))

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range workCh {
				path := opts.Paths[idx]
				report, err := r.LintFile(ctx, path, opts.Config)
				outcomes[idx] = FileOutcome{Path: path, Report: report, Error: err}
				done[idx] = true
			}
		}()
	}

	go func() {
		defer close(workCh)
		for idx := range opts.Paths {
			select {
			case <-ctx.Done():
				return
			case workCh <- idx:
			}
		}
	}()

	wg.Wait()

	for idx, outcome := range outcomes {
		if done[idx] {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}
