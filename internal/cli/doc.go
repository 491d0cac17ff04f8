// Package cli defines the Cobra command tree for ktnumpy-build. Each file
// registers one top-level command with the root command. Commands delegate to
// internal packages for resolution and only handle flags, settings
// precedence, and output.
package cli
