package project

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

//go:embed registry.yaml
var rawRegistry []byte

// registryFormatConstraint gates the registry file format. Bumping the major
// version in registry.yaml without updating the loader is a build-time mistake
// this check turns into a loud runtime error.
const registryFormatConstraint = "^1"

// Type describes one registered project type.
type Type struct {
	Description string   `yaml:"description"`
	Subdirs     []string `yaml:"subdirs"`
}

// Registry holds the immutable set of project types known to this build.
type Registry struct {
	Version string          `yaml:"version"`
	Types   map[string]Type `yaml:"types"`
}

var (
	loadOnce sync.Once
	registry *Registry
	loadErr  error
)

// LoadRegistry parses and validates the embedded registry once and returns it.
func LoadRegistry() (*Registry, error) {
	loadOnce.Do(func() {
		registry, loadErr = parseRegistry(rawRegistry)
	})
	return registry, loadErr
}

// parseRegistry validates raw registry YAML and decodes it.
func parseRegistry(data []byte) (*Registry, error) {
	result, err := ValidateRegistry(data)
	if err != nil {
		return nil, fmt.Errorf("validating registry: %w", err)
	}
	if !result.Valid {
		msgs := make([]string, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Path != "" {
				msgs = append(msgs, issue.Path+": "+issue.Message)
			} else {
				msgs = append(msgs, issue.Message)
			}
		}
		return nil, fmt.Errorf("registry is invalid: %s", strings.Join(msgs, "; "))
	}

	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parsing registry: %w", err)
	}

	if err := checkFormatVersion(reg.Version); err != nil {
		return nil, err
	}

	return &reg, nil
}

// checkFormatVersion verifies the registry format version is one this
// loader understands.
func checkFormatVersion(version string) error {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing registry version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(registryFormatConstraint)
	if err != nil {
		return fmt.Errorf("parsing registry version constraint: %w", err)
	}
	if !c.Check(v) {
		return fmt.Errorf("registry format version %s is not supported (want %s)", version, registryFormatConstraint)
	}
	return nil
}

// Lookup returns the descriptor for a project type tag.
func (r *Registry) Lookup(tag string) (Type, bool) {
	t, ok := r.Types[tag]
	return t, ok
}

// Tags returns all registered type tags in sorted order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.Types))
	for tag := range r.Types {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
