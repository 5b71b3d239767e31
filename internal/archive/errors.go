package archive

import "fmt"

// FileError is returned when the archive file cannot be read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("read archive %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// ParseError is returned when the archive content does not match the
// expected export format.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse archive %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
