// Package orchestrator wires the loader → converter → encoder → writer
// pipeline, providing dependency injection friendly helpers for consumers that
// prefer a single entry point.
package orchestrator
