package scaffold

import (
	"fmt"

	"github.com/youwol/tsscaffold/internal/metadata"
)

// ParseError reports a missing or malformed metadata file.
type ParseError = metadata.ParseError

// GenerationError reports a failure raised by the generator.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generating template: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// CopyError reports a template file that could not be copied into the
// package.
type CopyError struct {
	Src string
	Dst string
	Err error
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copying %s to %s: %v", e.Src, e.Dst, e.Err)
}

func (e *CopyError) Unwrap() error { return e.Err }
