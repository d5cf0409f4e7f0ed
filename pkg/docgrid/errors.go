package docgrid

import "errors"

// ErrUnsupportedFormat indicates a table file path whose extension maps to no
// known codec.
var ErrUnsupportedFormat = errors.New("unsupported table file format")
