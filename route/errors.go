package route

import "fmt"

// ValidationError reports malformed input for a route field.
type ValidationError struct {
	Field string
	Value string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %q", e.Msg, e.Value)
}

// StorageError reports a data file that could not be read, written or decoded.
type StorageError struct {
	Path string
	Op   string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// ConfigurationError reports a missing or unusable setting, such as an
// unresolved data file path.
type ConfigurationError struct{ Msg string }

func (e *ConfigurationError) Error() string { return e.Msg }
