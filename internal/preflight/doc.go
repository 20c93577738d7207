// Package preflight provides readiness checks for the filesystem paths
// irweave depends on.
//
// The daemon runs CheckAll before accepting work so a misconfigured inbox
// or output directory fails fast instead of surfacing as per-item
// conversion errors. The CLI "daemon status" command reuses the same
// checks to display directory health.
package preflight
