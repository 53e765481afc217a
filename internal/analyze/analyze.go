// Package analyze runs the ten metric passes over one source buffer
// and assembles the aggregate report. Each pass is a pure function
// of the immutable buffer, the shared method index, and the
// thresholds; no pass mutates shared state, so the passes fan out
// across goroutines and join before scoring.
package analyze

import (
	"io"
	"sync"

	"github.com/jflowers/scrutiny/internal/config"
	"github.com/jflowers/scrutiny/internal/metrics"
	"github.com/jflowers/scrutiny/internal/source"
)

// Options configures an analysis run.
type Options struct {
	// Config supplies the thresholds. If nil, config.DefaultConfig()
	// is used.
	Config *config.Config

	// Sequential disables the concurrent fan-out and runs the
	// passes in order. Results are identical either way.
	Sequential bool

	// Stderr receives warnings about heuristic misses (e.g. no
	// methods located). If nil, warnings are suppressed.
	Stderr io.Writer
}

// File loads the file at path and analyzes it. A missing or
// unreadable file is the only fatal error; any file content
// degrades to zero-value metrics rather than failing.
func File(path string, opts Options) (*metrics.Report, error) {
	buf, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return Run(buf, opts), nil
}

// Run analyzes an in-memory buffer. The method index is built once
// and shared read-only by every pass.
func Run(buf *source.Buffer, opts Options) *metrics.Report {
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	t := opts.Config.Thresholds

	idx := source.NewIndex(buf)
	if len(idx.Methods) == 0 && opts.Stderr != nil && buf.Text != "" {
		io.WriteString(opts.Stderr, "warning: no methods located; method-level metrics default to zero\n")
	}

	r := metrics.NewReport(buf.Name)

	passes := []func(){
		func() { r.Size = analyzeSize(buf) },
		func() { r.Complexity = analyzeComplexity(buf, idx) },
		func() { r.Test = analyzeTests(buf, idx, t) },
		func() { r.Duplication = analyzeDuplication(buf, t) },
		func() { r.CodeSmells = analyzeSmells(buf, idx, t) },
		func() { r.Conventions = analyzeConventions(buf, t) },
		func() { r.Framework = analyzeFramework(buf, idx) },
		func() { r.Types = analyzeTypes(buf) },
		func() { r.Syntax = analyzeSyntax(buf) },
	}

	if opts.Sequential {
		for _, pass := range passes {
			pass()
		}
	} else {
		var wg sync.WaitGroup
		for _, pass := range passes {
			wg.Add(1)
			go func(p func()) {
				defer wg.Done()
				p()
			}(pass)
		}
		wg.Wait()
	}

	// The design-pattern pass reads the test pass's aggregate AAA
	// percentage, so it runs after the join.
	r.DesignPatterns = analyzeDesignPatterns(buf, idx, r.Test, t)

	return r
}
