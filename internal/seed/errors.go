package seed

import "errors"

var (
	ErrUnsupportedSource = errors.New("unsupported seed source")
	ErrUnsupportedFormat = errors.New("unsupported seed format")
)
