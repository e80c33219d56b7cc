package artist

import "errors"

var ErrInvalidSeed = errors.New("invalid seed artist")
