// Package report orchestrates external analysis and plotting tools into a
// markdown performance report.
//
// A Pipeline runs four steps in order: dependency check, input validation,
// analysis, graph generation, and report assembly. The first two are hard
// aborts; the rest are best-effort. Analysis and graph rendering are
// pluggable so real analysis binaries can be integrated without touching
// the orchestration.
package report
