package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReportFile is the name of the assembled markdown report.
const ReportFile = "report.md"

const summaryTemplate = `# Audio Performance Report

## Summary

Analysis results and graphs will appear here.

`

// WriteSummary writes the skeletal markdown report into outputDir, creating
// the directory if the analysis step was skipped and never made it.
func WriteSummary(outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	path := filepath.Join(outputDir, ReportFile)
	if err := os.WriteFile(path, []byte(summaryTemplate), 0644); err != nil {
		return "", fmt.Errorf("writing report %s: %w", path, err)
	}
	return path, nil
}
