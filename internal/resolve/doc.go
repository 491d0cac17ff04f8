// Package resolve turns an environ.Snapshot into a BuildConfig: the include
// directories, library directories, library names, linker flags, and artifact
// file name needed to build the ktnumpy native bridge against a Python
// interpreter, NumPy, and a JDK.
//
// Each component is a plain function over an afero.Fs so that existence
// checks can run against an in-memory filesystem:
//
//	ProbePython        interpreter library name, version tag, library directory
//	LocateNumpyHeaders NumPy's bundled C headers
//	LocateJNIHeaders   <JAVA_HOME>/include and its platform subdirectory
//	BuildLinkSpec      library directories, names, and extra linker flags
//
// Resolver.Resolve runs them in dependency order and stops at the first
// failure. Failures are one of EnvironmentProbeError, MissingEnvironmentError,
// MissingHeaderError, or platform.UnsupportedPlatformError; a partially
// resolved BuildConfig is never returned.
package resolve
