// Package cli defines the abench command tree. Each command lives in its
// own file and wires flags to the domain packages; no business logic
// belongs here.
package cli
