package lineup

import "errors"

var (
	ErrUnsupportedSource = errors.New("unsupported lineup source")
	ErrEmptyLineup       = errors.New("lineup source contains no text")
)
