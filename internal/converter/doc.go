// Package converter runs the full capture-to-irplus pipeline: decode the
// capture text, scan it, transform each triple, and assemble the
// document. It is the single entry point the CLI and the workflow manager
// share.
package converter
