package project

import (
	"reflect"
	"testing"
)

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry() error: %v", err)
	}

	dr, ok := reg.Lookup("device_report")
	if !ok {
		t.Fatal("device_report type not registered")
	}
	if dr.Description != "Device testing and reporting project" {
		t.Errorf("Description = %q, want %q", dr.Description, "Device testing and reporting project")
	}
	want := []string{"data", "scripts", "reports"}
	if !reflect.DeepEqual(dr.Subdirs, want) {
		t.Errorf("Subdirs = %v, want %v", dr.Subdirs, want)
	}
}

func TestRegistryTags(t *testing.T) {
	reg, err := LoadRegistry()
	if err != nil {
		t.Fatalf("LoadRegistry() error: %v", err)
	}

	tags := reg.Tags()
	if len(tags) == 0 {
		t.Fatal("Tags() returned no entries")
	}
	for i := 1; i < len(tags); i++ {
		if tags[i-1] >= tags[i] {
			t.Errorf("Tags() not sorted: %v", tags)
		}
	}

	if _, ok := reg.Lookup("no_such_type"); ok {
		t.Error("Lookup(no_such_type) = ok, want miss")
	}
}

func TestValidateRegistry(t *testing.T) {
	t.Run("embedded registry is valid", func(t *testing.T) {
		result, err := ValidateRegistry(rawRegistry)
		if err != nil {
			t.Fatalf("ValidateRegistry() error: %v", err)
		}
		if !result.Valid {
			t.Fatalf("embedded registry invalid: %+v", result.Issues)
		}
	})

	t.Run("missing description", func(t *testing.T) {
		data := []byte("version: \"1.0.0\"\ntypes:\n  device_report:\n    subdirs: [data]\n")
		result, err := ValidateRegistry(data)
		if err != nil {
			t.Fatalf("ValidateRegistry() error: %v", err)
		}
		if result.Valid {
			t.Error("registry missing description should be invalid")
		}
	})

	t.Run("empty subdirs", func(t *testing.T) {
		data := []byte("version: \"1.0.0\"\ntypes:\n  device_report:\n    description: x\n    subdirs: []\n")
		result, err := ValidateRegistry(data)
		if err != nil {
			t.Fatalf("ValidateRegistry() error: %v", err)
		}
		if result.Valid {
			t.Error("registry with empty subdirs should be invalid")
		}
	})

	t.Run("bad version string", func(t *testing.T) {
		data := []byte("version: next\ntypes:\n  device_report:\n    description: x\n    subdirs: [data]\n")
		result, err := ValidateRegistry(data)
		if err != nil {
			t.Fatalf("ValidateRegistry() error: %v", err)
		}
		if result.Valid {
			t.Error("registry with non-semver version should be invalid")
		}
	})
}

func TestCheckFormatVersion(t *testing.T) {
	if err := checkFormatVersion("1.0.0"); err != nil {
		t.Errorf("checkFormatVersion(1.0.0) error: %v", err)
	}
	if err := checkFormatVersion("1.4.2"); err != nil {
		t.Errorf("checkFormatVersion(1.4.2) error: %v", err)
	}
	if err := checkFormatVersion("2.0.0"); err == nil {
		t.Error("checkFormatVersion(2.0.0) should fail")
	}
	if err := checkFormatVersion("garbage"); err == nil {
		t.Error("checkFormatVersion(garbage) should fail")
	}
}

func TestParseRegistryRejectsUnsupportedFormat(t *testing.T) {
	data := []byte("version: \"2.0.0\"\ntypes:\n  device_report:\n    description: x\n    subdirs: [data]\n")
	if _, err := parseRegistry(data); err == nil {
		t.Error("parseRegistry should reject format version 2.0.0")
	}
}
