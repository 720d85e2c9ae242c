package linker

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	nopLogger     = zap.NewNop()
	packageLogger atomic.Pointer[zap.Logger]
)

// Logger returns the logger used by Linkers that were created without
// Config.Logger. It is a no-op logger until SetLogger installs another one.
func Logger() *zap.Logger {
	if l := packageLogger.Load(); l != nil {
		return l
	}
	return nopLogger
}

// SetLogger replaces the package logger. Every Linker without its own
// Config.Logger picks it up on its next diagnostic, including Linkers created
// before the call. A nil l restores the no-op logger.
func SetLogger(l *zap.Logger) {
	packageLogger.Store(l)
}
