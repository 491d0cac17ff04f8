// Package config manages user-level settings stored at
// ~/.ktnumpy-build/config.yaml. Values can be overridden with
// KTNUMPY_BUILD_* environment variables.
package config
