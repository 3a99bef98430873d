// Package checkpoint decorates errors with the file and line of the call site,
// building up something similar to a stack trace while the error travels up.
// Errors attached to a checkpoint stay visible to errors.Is and errors.As.
package checkpoint

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
)

// From wraps err in a new checkpoint carrying the caller's file and line.
// It returns nil if err is nil.
func From(err error) error {
	// io.EOF and io.ErrUnexpectedEOF have to stay comparable by ==.
	// https://github.com/golang/go/issues/39155
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return err
	}
	if err == nil {
		return nil
	}

	return newCheckpoint(err, nil)
}

// Wrap attaches err as an additional description to prev and records the
// caller's file and line. It returns nil if prev is nil, so call sites can
// wrap unconditionally:
//  return checkpoint.Wrap(doSomething(), ErrSomethingFailed)
// Both prev and err remain matchable by errors.Is.
func Wrap(prev, err error) error {
	if prev == io.EOF {
		return io.EOF
	}
	if prev == nil {
		return nil
	}

	return newCheckpoint(err, prev)
}

func newCheckpoint(err, prev error) error {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "unknown"
		line = 0
	}

	return &checkpoint{
		err:  err,
		prev: prev,
		file: filepath.Base(file),
		line: line,
	}
}

type checkpoint struct {
	err  error
	prev error
	file string
	line int
}

func (c *checkpoint) Error() string {
	switch {
	case c.prev == nil:
		return fmt.Sprintf("%s:%d: %v", c.file, c.line, c.err)
	case c.err == nil:
		return fmt.Sprintf("%s:%d: %v", c.file, c.line, c.prev)
	default:
		return fmt.Sprintf("%s:%d: %v: %v", c.file, c.line, c.err, c.prev)
	}
}

func (c *checkpoint) Unwrap() error {
	return c.prev
}

func (c *checkpoint) Is(target error) bool {
	return errors.Is(c.err, target)
}

func (c *checkpoint) As(target interface{}) bool {
	if c.err == nil {
		return false
	}
	return errors.As(c.err, target)
}
