package eslint

import (
	"fmt"
)

// NotFoundError is returned when a config file path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("config not found: %s", e.Path)
}

// ParseError is returned when a config file cannot be parsed into the
// expected shape, including invalid severity tokens inside rule blocks.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
