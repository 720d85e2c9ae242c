package eggshell

import "errors"

var (
	// ErrImportUnset indicates that an import slot was used before the host supplied it.
	ErrImportUnset = errors.New("import slot is unset")

	// ErrExportUnset indicates that an export slot was invoked but never populated.
	ErrExportUnset = errors.New("export slot is unset")
)
