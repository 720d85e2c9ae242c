package linker

import (
	"fmt"

	"github.com/eggshell-project/eggshell"
	"github.com/eggshell-project/eggshell/log"
	"go.uber.org/zap"
)

// Config provides configuration options for Linker creation.
type Config struct {
	// Exports seeds the export table handed to the host on every Link.
	// Slots left nil stay unset.
	Exports eggshell.Exports

	// Greeting overrides the line emitted through the host's log slot on Link.
	// If empty, eggshell.Greeting is used.
	Greeting string

	// Logger receives internal diagnostics. If nil, the package Logger is used.
	Logger *zap.Logger
}

// Linker holds the import table received from the host and the export table
// handed back to it.
type Linker struct {
	imported eggshell.Imports
	exports  eggshell.Exports
	linked   bool

	greeting string
	logger   *zap.Logger
	log      log.Client
}

// New creates a Linker with an empty import table.
func New(cfg Config) (*Linker, error) {
	l := &Linker{
		exports:  cfg.Exports,
		greeting: eggshell.Greeting,
		logger:   cfg.Logger,
	}

	if cfg.Greeting != "" {
		l.greeting = cfg.Greeting
	}

	client, err := log.New(log.Config{Source: l})
	if err != nil {
		return nil, fmt.Errorf("linker: %w", err)
	}
	l.log = client

	return l, nil
}

// Link stores imports, overwriting any previous table, greets the host through
// the just-stored log slot and returns the current export table.
//
// The imports are stored even when the greeting cannot be delivered; in that
// case the returned error wraps eggshell.ErrImportUnset.
func (l *Linker) Link(imports eggshell.Imports) (eggshell.Exports, error) {
	relinked := l.linked
	l.imported = imports
	l.linked = true

	l.diag().Debug("host linked",
		zap.Bool("relink", relinked),
		zap.Bool("import_log", imports.Log != nil),
		zap.Bool("export_onframe", l.exports.OnFrame != nil),
		zap.Bool("export_onshutdown", l.exports.OnShutdown != nil),
	)

	if err := l.log.Info(l.greeting); err != nil {
		l.diag().Warn("greeting not delivered", zap.Error(err))
		return l.exports, fmt.Errorf("linker: greeting: %w", err)
	}

	return l.exports, nil
}

// Imported returns a copy of the import table stored by the last Link.
// Before any Link every slot is nil.
func (l *Linker) Imported() eggshell.Imports { return l.imported }

// Exported returns a copy of the current export table.
func (l *Linker) Exported() eggshell.Exports { return l.exports }

// SetExports replaces the export table. The host sees it on the next Link.
func (l *Linker) SetExports(exports eggshell.Exports) { l.exports = exports }

// Linked reports whether Link has been called at least once.
func (l *Linker) Linked() bool { return l.linked }

// Log returns a client writing to the host's log slot.
func (l *Linker) Log() log.Client { return l.log }

// diag returns Config.Logger, or the package logger as it is right now.
func (l *Linker) diag() *zap.Logger {
	if l.logger != nil {
		return l.logger
	}
	return Logger()
}

// Frame invokes the OnFrame export.
func (l *Linker) Frame(delta float32) error {
	fn := l.exports.OnFrame
	if fn == nil {
		return fmt.Errorf("%w: onframe", eggshell.ErrExportUnset)
	}

	fn(delta)
	return nil
}

// Shutdown invokes the OnShutdown export.
func (l *Linker) Shutdown() error {
	fn := l.exports.OnShutdown
	if fn == nil {
		return fmt.Errorf("%w: onshutdown", eggshell.ErrExportUnset)
	}

	l.diag().Debug("host shutdown")
	fn()
	return nil
}
