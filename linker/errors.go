package linker

import "errors"

// ErrNilLinker is returned when an operation needs a Linker and none was given.
var ErrNilLinker = errors.New("linker cannot be nil")
