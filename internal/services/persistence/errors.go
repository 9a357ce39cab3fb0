package persistence

import "errors"

// ErrInvalidImport is returned when an imported file is not a readable game.
// The underlying schema error is wrapped alongside it.
var ErrInvalidImport = errors.New("invalid game file")
