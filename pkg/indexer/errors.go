package indexer

import (
	"errors"
	"fmt"
)

var (
	ErrIO     = errors.New("io error")
	ErrFormat = errors.New("invalid index format")
	ErrConfig = errors.New("invalid configuration")
)

// Error carries the operation and path that failed. It matches its Kind
// and its underlying cause with errors.Is.
type Error struct {
	Kind error
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	msg += ": " + e.Kind.Error()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func ioError(op, path string, err error) error {
	return &Error{Kind: ErrIO, Op: op, Path: path, Err: err}
}

func formatError(op, path string, err error) error {
	return &Error{Kind: ErrFormat, Op: op, Path: path, Err: err}
}

func configError(format string, args ...any) error {
	return &Error{Kind: ErrConfig, Op: "validate", Err: fmt.Errorf(format, args...)}
}
