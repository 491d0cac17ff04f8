// Package manifest handles the project build manifest (ktnumpy-build.yaml):
// parsing, defaults, and validation against the embedded JSON schema.
package manifest
