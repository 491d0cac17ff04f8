package resolve

import (
	"errors"
	"fmt"
)

var (
	// ErrEnvironmentProbe is the sentinel error wrapped by EnvironmentProbeError.
	ErrEnvironmentProbe = errors.New("environment probe failed")
	// ErrMissingEnvironment is the sentinel error wrapped by MissingEnvironmentError.
	ErrMissingEnvironment = errors.New("missing environment variable")
	// ErrMissingHeader is the sentinel error wrapped by MissingHeaderError.
	ErrMissingHeader = errors.New("missing headers")
)

// EnvironmentProbeError reports interpreter configuration that cannot be
// linked against.
type EnvironmentProbeError struct {
	// Field names the interpreter configuration value at fault (e.g. "LIBDIR").
	Field string
	// Path is the resolved directory, when one was computed.
	Path   string
	Reason string
}

func (e *EnvironmentProbeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%v: %s %s %s", ErrEnvironmentProbe, e.Field, e.Path, e.Reason)
	}
	return fmt.Sprintf("%v: %s %s", ErrEnvironmentProbe, e.Field, e.Reason)
}

func (e *EnvironmentProbeError) Unwrap() error { return ErrEnvironmentProbe }

// MissingEnvironmentError reports a required environment variable that is
// unset or empty.
type MissingEnvironmentError struct {
	Variable string
}

func (e *MissingEnvironmentError) Error() string {
	return fmt.Sprintf("%v: %s is not set", ErrMissingEnvironment, e.Variable)
}

func (e *MissingEnvironmentError) Unwrap() error { return ErrMissingEnvironment }

// HeaderKind identifies which header location a MissingHeaderError is about.
type HeaderKind string

const (
	KindJNIInclude         HeaderKind = "jni-include"
	KindJNIPlatformInclude HeaderKind = "jni-platform-include"
	KindJNIHeader          HeaderKind = "jni-header"
	KindNumpyInclude       HeaderKind = "numpy-include"
	KindPythonInclude      HeaderKind = "python-include"
	KindProjectInclude     HeaderKind = "project-include"
)

// MissingHeaderError reports a required include directory or header file that
// does not exist.
type MissingHeaderError struct {
	Kind HeaderKind
	Path string
	// Hint tells the user how to fix the problem.
	Hint string
}

func (e *MissingHeaderError) Error() string {
	msg := fmt.Sprintf("%v: %s not found", ErrMissingHeader, e.Kind)
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Hint != "" {
		msg += " (" + e.Hint + ")"
	}
	return msg
}

func (e *MissingHeaderError) Unwrap() error { return ErrMissingHeader }
