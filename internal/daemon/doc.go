// Package daemon coordinates background conversion and enforces
// single-instance execution.
//
// The daemon owns a file lock, a pid file, the inbox scanner that feeds
// the queue, and the workflow manager that drains it.
package daemon
