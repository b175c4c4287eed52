package project

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

var timestampPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`)

func TestCreateDeviceReport(t *testing.T) {
	dir := t.TempDir()
	projectDir := filepath.Join(dir, "my_test")

	var stdout, stderr bytes.Buffer
	result, err := Create("device_report", projectDir, &stdout, &stderr)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	// Root + three subdirs + README.
	if len(result.Created) != 5 {
		t.Errorf("len(Created) = %d, want 5", len(result.Created))
	}

	for _, subdir := range []string{"data", "scripts", "reports"} {
		info, err := os.Stat(filepath.Join(projectDir, subdir))
		if err != nil {
			t.Fatalf("subdir %s: %v", subdir, err)
		}
		if !info.IsDir() {
			t.Errorf("%s is not a directory", subdir)
		}
	}

	readme, err := os.ReadFile(filepath.Join(projectDir, "README.md"))
	if err != nil {
		t.Fatalf("reading README.md: %v", err)
	}
	if !strings.Contains(string(readme), "device_report") {
		t.Error("README.md does not mention the project type")
	}
	if !timestampPattern.Match(readme) {
		t.Error("README.md does not contain a creation timestamp")
	}
	if !strings.Contains(string(readme), "device testing and reporting project") {
		t.Error("README.md does not contain the lower-cased type description")
	}

	if !strings.Contains(stdout.String(), "Creating project directory") {
		t.Error("stdout missing progress output")
	}
	if stderr.Len() != 0 {
		t.Errorf("unexpected stderr output: %q", stderr.String())
	}
}

func TestCreateFailsOnExistingDirectory(t *testing.T) {
	dir := t.TempDir()
	projectDir := filepath.Join(dir, "existing")
	if err := os.Mkdir(projectDir, 0755); err != nil {
		t.Fatal(err)
	}
	marker := filepath.Join(projectDir, "keep.txt")
	if err := os.WriteFile(marker, []byte("precious"), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	_, createErr := Create("device_report", projectDir, &stdout, &stderr)
	if createErr == nil {
		t.Fatal("Create() on existing directory should fail")
	}
	if !strings.Contains(createErr.Error(), "already exists") {
		t.Errorf("error = %q, want mention of existing path", createErr)
	}

	// Existing contents must be untouched.
	data, err := os.ReadFile(marker)
	if err != nil || string(data) != "precious" {
		t.Errorf("existing contents modified: %v %q", err, data)
	}
	if entries, _ := os.ReadDir(projectDir); len(entries) != 1 {
		t.Errorf("existing directory gained entries: %d", len(entries))
	}
}

func TestCreateFailsOnExistingFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "occupied")
	if err := os.WriteFile(target, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if _, err := Create("device_report", target, &stdout, &stderr); err == nil {
		t.Fatal("Create() on existing file should fail")
	}
	if _, err := os.Stat(target); err != nil {
		t.Errorf("existing file removed: %v", err)
	}
}

func TestCreateUnknownType(t *testing.T) {
	dir := t.TempDir()
	projectDir := filepath.Join(dir, "nope")

	var stdout, stderr bytes.Buffer
	_, err := Create("bogus_type", projectDir, &stdout, &stderr)
	if err == nil {
		t.Fatal("Create() with unknown type should fail")
	}
	if !strings.Contains(err.Error(), "device_report") {
		t.Errorf("error = %q, want list of valid types", err)
	}

	// Rejection happens before any filesystem mutation.
	if _, statErr := os.Stat(projectDir); !os.IsNotExist(statErr) {
		t.Error("unknown type must not create the project directory")
	}
}

func TestCreateReportsOSError(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission-based failure injection does not work as root")
	}

	dir := t.TempDir()
	parent := filepath.Join(dir, "ro")
	if err := os.Mkdir(parent, 0555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chmod(parent, 0755) })

	projectDir := filepath.Join(parent, "proj")
	var stdout, stderr bytes.Buffer
	_, err := Create("device_report", projectDir, &stdout, &stderr)
	if err == nil {
		t.Fatal("Create() under a read-only parent should fail")
	}
	if !strings.Contains(err.Error(), "creating project structure") {
		t.Errorf("error = %q, want creation error", err)
	}
	if _, err := os.Stat(projectDir); !os.IsNotExist(err) {
		t.Error("failed creation left a partial tree behind")
	}
}

func TestCreateCommitsTreeOnSuccess(t *testing.T) {
	dir := t.TempDir()
	projectDir := filepath.Join(dir, "committed")

	var stdout, stderr bytes.Buffer
	result, err := Create("device_report", projectDir, &stdout, &stderr)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	for _, p := range result.Created {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("created path missing after success: %s", p)
		}
	}
}

func TestRenderReadme(t *testing.T) {
	reg, err := LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry() error: %v", err)
	}
	dr, _ := reg.Lookup("device_report")

	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	out, err := renderReadme(dr, "device_report", created)
	if err != nil {
		t.Fatalf("renderReadme() error: %v", err)
	}

	content := string(out)
	for _, want := range []string{
		"**Project Type:** device_report",
		"**Created:** 2026-01-02 03:04:05",
		"- **data/**:",
		"- **scripts/**:",
		"- **reports/**:",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("README missing %q\n%s", want, content)
		}
	}
}
