package models

import "fmt"

// FileAccessError reports a log file or directory that could not be opened.
// It is fatal: commands surface it to the operator and exit non-zero.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot access %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// RenderError reports a failure in the charting backend.
type RenderError struct {
	Mode string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to render %s chart: %v", e.Mode, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
