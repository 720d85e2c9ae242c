package log

import (
	"errors"
	"fmt"

	"github.com/eggshell-project/eggshell"
)

// ErrSourceNil is returned when no import table source is configured.
var ErrSourceNil = errors.New("log source cannot be nil")

// Source reports the import table currently supplied by the host.
// *linker.Linker satisfies it.
type Source interface {
	Imported() eggshell.Imports
}

// Client exposes convenience helpers for sending log lines to the host.
type Client interface {
	Info(text string) error
	Warning(text string) error
	Error(text string) error
	Log(level eggshell.Level, text string) error
}

// Config controls how a Client instance reaches the host.
type Config struct {
	// Source provides the import table whose log slot receives every line.
	Source Source
}

// client implements Client on top of the source's log slot.
type client struct {
	source Source
}

// New creates a Client that emits log lines through the host's imported log slot.
func New(cfg Config) (Client, error) {
	if cfg.Source == nil {
		return nil, ErrSourceNil
	}

	return &client{source: cfg.Source}, nil
}

func (c *client) Info(text string) error    { return c.Log(eggshell.LevelInfo, text) }
func (c *client) Warning(text string) error { return c.Log(eggshell.LevelWarning, text) }
func (c *client) Error(text string) error   { return c.Log(eggshell.LevelError, text) }

// Log reads the import table at call time, so a later handshake takes effect
// for existing clients.
func (c *client) Log(level eggshell.Level, text string) error {
	fn := c.source.Imported().Log
	if fn == nil {
		return fmt.Errorf("%w: log (level %s)", eggshell.ErrImportUnset, level)
	}

	fn(text, level)
	return nil
}
