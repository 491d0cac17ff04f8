// Package environ captures the ambient inputs of a resolution pass (host OS,
// environment variables, interpreter configuration) into an immutable
// Snapshot. Resolution code reads only the snapshot, never the process
// environment, so every pass is deterministic and can be driven by synthetic
// inputs in tests.
package environ
