/*
Package log offers a client for sending log lines from the native side to the
host through the imported log slot.

The client exposes Info, Warning and Error helpers, each passing the text
through unchanged with a fixed severity (0, 1 and 2 on the wire). There is no
buffering, formatting or filtering. Calling any helper before the host has
supplied a log slot returns an error wrapping eggshell.ErrImportUnset instead
of crashing.
*/
package log
