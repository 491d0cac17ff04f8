// Package interp queries a Python interpreter for the build configuration
// values needed to link against it: ABI version tags, library and include
// directories, installation prefix, extension suffix, and the location of the
// importable NumPy package.
package interp
