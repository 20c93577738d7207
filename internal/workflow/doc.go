// Package workflow drains the conversion queue in the background.
//
// The manager claims pending items one at a time, runs the converter,
// and records the outcome. Failures return the item to pending until its
// attempt budget runs out.
package workflow
