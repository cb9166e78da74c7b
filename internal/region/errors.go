package region

import "errors"

// ErrInvalidDimensions is returned by Plan when any dimension is not positive.
var ErrInvalidDimensions = errors.New("invalid dimensions")
