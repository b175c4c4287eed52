package report

import "os/exec"

// MissingTools returns the subset of tools that cannot be resolved on the
// execution search path, preserving input order.
func MissingTools(tools []string) []string {
	var missing []string
	for _, tool := range tools {
		if tool == "" {
			continue
		}
		if _, err := exec.LookPath(tool); err != nil {
			missing = append(missing, tool)
		}
	}
	return missing
}
