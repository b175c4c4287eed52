// Package project creates audio-bench project directory structures.
//
// Project types are defined in an embedded registry (registry.yaml) that is
// schema-validated at load time. Each type carries a description and an
// ordered list of subdirectories; Create materializes that layout on disk
// together with a generated README.md.
package project
