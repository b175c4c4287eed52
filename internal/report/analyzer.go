package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
)

// AnalysisDataFile is the artifact name analysis binaries are asked to emit.
const AnalysisDataFile = "analysis.dat"

// Analyzer runs the analysis step of the pipeline. Implementations write
// their artifacts into outputDir; the artifact format is owned by the
// analysis binary, not the orchestrator.
type Analyzer interface {
	// Tool returns the external binary the analyzer needs on the search
	// path, or "" if it needs none.
	Tool() string
	Analyze(ctx context.Context, inputFile, outputDir string) error
}

// NoopAnalyzer is the default analyzer. The audio-bench C analysis programs
// are not integrated yet; this keeps the pipeline shape in place until an
// external binary is configured.
type NoopAnalyzer struct{}

// Tool returns "" — the no-op analyzer needs no external binary.
func (NoopAnalyzer) Tool() string { return "" }

// Analyze does nothing.
func (NoopAnalyzer) Analyze(_ context.Context, _, _ string) error { return nil }

// ExternalAnalyzer invokes a configured analysis binary as
// `<bin> <input> -o <outputDir>/analysis.dat`.
type ExternalAnalyzer struct {
	Bin string

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Tool returns the configured binary name.
func (a *ExternalAnalyzer) Tool() string { return a.Bin }

// Analyze executes the analysis binary against the input file.
func (a *ExternalAnalyzer) Analyze(ctx context.Context, inputFile, outputDir string) error {
	bin, err := exec.LookPath(a.Bin)
	if err != nil {
		return fmt.Errorf("resolving analyzer %q: %w", a.Bin, err)
	}

	artifact := filepath.Join(outputDir, AnalysisDataFile)
	cmd := exec.CommandContext(ctx, bin, inputFile, "-o", artifact)
	cmd.Stdout = a.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = a.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running analyzer %s on %s: %w", a.Bin, inputFile, err)
	}
	return nil
}
