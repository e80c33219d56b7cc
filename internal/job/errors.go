package job

import "errors"

var (
	ErrNotFound      = errors.New("lineup result not found")
	ErrInvalidResult = errors.New("invalid lineup result")
)
