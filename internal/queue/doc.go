// Package queue persists the conversion backlog in SQLite.
//
// Each item is one capture file awaiting conversion to an irplus
// document. The store serializes all writes through database/sql with WAL
// enabled, so the daemon and CLI can share one database file.
package queue
