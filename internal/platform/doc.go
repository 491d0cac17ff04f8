// Package platform classifies the host operating system into the closed set
// of platforms the ktnumpy bridge supports and owns every table keyed by that
// set: shared-library file naming and artifact installation. Unknown
// operating systems are reported with UnsupportedPlatformError rather than
// mapped to a default.
package platform
