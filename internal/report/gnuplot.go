package report

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
)

// ScriptExtension is the plotting-script file extension the pipeline looks for.
const ScriptExtension = ".gp"

// GraphRenderer renders one plotting script into the output directory.
type GraphRenderer interface {
	Render(ctx context.Context, script, outputDir string) error
}

// GnuplotRenderer runs gnuplot with the output directory as working
// directory, so image files referenced relatively in scripts land there.
type GnuplotRenderer struct {
	Bin string

	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Render invokes `gnuplot <script>` for a single script.
func (r *GnuplotRenderer) Render(ctx context.Context, script, outputDir string) error {
	bin, err := exec.LookPath(r.Bin)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", r.Bin, err)
	}

	abs, err := filepath.Abs(script)
	if err != nil {
		return fmt.Errorf("resolving script path %s: %w", script, err)
	}

	cmd := exec.CommandContext(ctx, bin, abs)
	cmd.Dir = outputDir
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running gnuplot on %s: %w", filepath.Base(script), err)
	}
	return nil
}

// collectScripts returns the plotting scripts under dir in sorted order.
// Directory listing order is not guaranteed by the OS; sorting keeps graph
// generation reproducible.
func collectScripts(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+ScriptExtension))
	if err != nil {
		return nil, fmt.Errorf("globbing %s: %w", dir, err)
	}
	sort.Strings(matches)
	return matches, nil
}
