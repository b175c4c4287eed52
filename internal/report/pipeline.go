package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Pipeline coordinates the report generation steps. Zero-value writers
// default to os.Stdout/os.Stderr so commands can construct it directly and
// tests can capture output.
type Pipeline struct {
	Input        string // input WAV file to analyze
	OutputDir    string // directory receiving artifacts and report.md
	ScriptsDir   string // directory holding *.gp plotting scripts
	GnuplotBin   string // gnuplot binary name or path
	SkipAnalysis bool

	Analyzer Analyzer
	Renderer GraphRenderer

	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the pipeline. Dependency and input checks abort before any
// file is touched; later steps are best-effort and report failures without
// changing the exit status.
func (p *Pipeline) Run(ctx context.Context) error {
	stdout := p.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := p.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	analyzer := p.Analyzer
	if analyzer == nil {
		analyzer = NoopAnalyzer{}
	}
	renderer := p.Renderer
	if renderer == nil {
		renderer = &GnuplotRenderer{Bin: p.GnuplotBin, Stdout: stdout, Stderr: stderr}
	}

	// Step 1: all required external tools must resolve before anything runs.
	required := []string{p.GnuplotBin}
	if !p.SkipAnalysis {
		required = append(required, analyzer.Tool())
	}
	if missing := MissingTools(required); len(missing) > 0 {
		return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
	}

	// Step 2: the input must be an existing regular file.
	info, err := os.Stat(p.Input)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("input file not found: %s", p.Input)
	}

	// Step 3: analysis.
	if !p.SkipAnalysis {
		fmt.Fprintf(stdout, "Analyzing %s...\n", p.Input)
		if err := os.MkdirAll(p.OutputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", p.OutputDir, err)
		}
		if err := analyzer.Analyze(ctx, p.Input, p.OutputDir); err != nil {
			fmt.Fprintf(stderr, "Warning: analysis failed: %v\n", err)
		} else {
			fmt.Fprintf(stdout, "Analysis complete. Results in %s\n", p.OutputDir)
		}
	}

	// Step 4: graph generation, in stable order.
	fmt.Fprintln(stdout, "Generating graphs...")
	scripts, err := collectScripts(p.ScriptsDir)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	}
	for _, script := range scripts {
		fmt.Fprintf(stdout, "  Processing %s...\n", filepath.Base(script))
		if err := renderer.Render(ctx, script, p.OutputDir); err != nil {
			fmt.Fprintf(stderr, "Warning: %v\n", err)
		}
	}
	fmt.Fprintln(stdout, "Graphs generated.")

	// Step 5: report assembly.
	fmt.Fprintln(stdout, "Creating final report...")
	reportPath, err := WriteSummary(p.OutputDir)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: %v\n", err)
	} else {
		fmt.Fprintf(stdout, "Report created: %s\n", reportPath)
	}

	fmt.Fprintf(stdout, "\nReport generation complete! Check %s/\n", p.OutputDir)
	return nil
}
