package project

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/audio-bench/abench/internal/branding"
)

// Result holds the outcome of a project scaffold.
type Result struct {
	ProjectDir string
	Created    []string // paths created, in creation order
}

// readmeData holds template variables for the generated README.md.
type readmeData struct {
	DisplayName string
	ProjectType string
	Created     string
	Subdirs     []subdirDoc
	Usage       string
}

type subdirDoc struct {
	Name  string
	Blurb string
}

// Blurbs for the well-known subdirectories; unknown names get a generic line.
var subdirBlurbs = map[string]string{
	"data":    "Raw data files (WAV files, measurements, etc.)",
	"scripts": "Scripts for report generation and analysis",
	"reports": "Generated output reports and visualizations",
}

const readmeTemplate = `# {{.DisplayName}} Project Directory

This is an {{.DisplayName}} project directory.

**Project Type:** {{.ProjectType}}
**Created:** {{.Created}}

## Directory Structure
{{range .Subdirs}}
- **{{.Name}}/**: {{.Blurb}}{{end}}

## Usage

This project was created for {{.Usage}}.

Use {{.DisplayName}} tools to populate the data directory, then run analysis
scripts to generate reports in the reports directory.

For more information, see the {{.DisplayName}} documentation.
`

// Create scaffolds a project of the given type at projectDir. The target must
// not exist. Progress is printed to stdout; failures go to stderr. On a
// creation error, any partially created tree is removed best-effort before
// the error is returned.
func Create(typeTag, projectDir string, stdout, stderr io.Writer) (*Result, error) {
	reg, err := LoadRegistry()
	if err != nil {
		return nil, err
	}

	t, ok := reg.Lookup(typeTag)
	if !ok {
		return nil, fmt.Errorf("unknown project type %q (available: %s)", typeTag, strings.Join(reg.Tags(), ", "))
	}

	// Never touch an existing path, file or directory.
	if _, statErr := os.Lstat(projectDir); statErr == nil {
		return nil, fmt.Errorf("directory %q already exists", projectDir)
	}

	result, err := materialize(t, typeTag, projectDir, stdout)
	if err != nil {
		// Best-effort cleanup of the partial tree; a cleanup failure must
		// not mask the original error.
		if _, statErr := os.Lstat(projectDir); statErr == nil {
			if rmErr := os.RemoveAll(projectDir); rmErr == nil {
				fmt.Fprintln(stderr, "Cleaned up partial project creation")
			}
		}
		return nil, fmt.Errorf("creating project structure: %w", err)
	}

	fmt.Fprintf(stdout, "\nProject '%s' created successfully!\n", projectDir)
	fmt.Fprintf(stdout, "Project type: %s\n", typeTag)

	return result, nil
}

// materialize creates the directory tree and README. It reports progress but
// performs no cleanup; Create owns the rollback.
func materialize(t Type, typeTag, projectDir string, stdout io.Writer) (*Result, error) {
	result := &Result{ProjectDir: projectDir}

	fmt.Fprintf(stdout, "Creating project directory: %s\n", projectDir)
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", projectDir, err)
	}
	result.Created = append(result.Created, projectDir)

	for _, subdir := range t.Subdirs {
		fmt.Fprintf(stdout, "  Creating subdirectory: %s/\n", subdir)
		path := filepath.Join(projectDir, subdir)
		if err := os.Mkdir(path, 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", path, err)
		}
		result.Created = append(result.Created, path)
	}

	fmt.Fprintln(stdout, "  Creating README.md")
	readmePath := filepath.Join(projectDir, "README.md")
	content, err := renderReadme(t, typeTag, time.Now())
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(readmePath, content, 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", readmePath, err)
	}
	result.Created = append(result.Created, readmePath)

	return result, nil
}

// renderReadme executes the README template for a project type.
func renderReadme(t Type, typeTag string, created time.Time) ([]byte, error) {
	docs := make([]subdirDoc, 0, len(t.Subdirs))
	for _, name := range t.Subdirs {
		blurb, ok := subdirBlurbs[name]
		if !ok {
			blurb = "Project files"
		}
		docs = append(docs, subdirDoc{Name: name, Blurb: blurb})
	}

	data := readmeData{
		DisplayName: branding.DisplayName(),
		ProjectType: typeTag,
		Created:     created.Format("2006-01-02 15:04:05"),
		Subdirs:     docs,
		Usage:       strings.ToLower(t.Description),
	}

	tmpl, err := template.New("readme").Parse(readmeTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing README template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing README template: %w", err)
	}
	return buf.Bytes(), nil
}
