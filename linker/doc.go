// Package linker holds the two function tables exchanged with the host.
//
// # Main Types
//
//   - Linker: stores the host's Imports and the native side's Exports
//
// # Handshake
//
// The host calls Link once with its import table. Link stores the table
// (the last call wins), greets the host through the just-stored log slot and
// returns the export table. Exports are populated by the embedding code,
// through Config.Exports or SetExports; nothing fills them implicitly.
//
// # Thread Safety
//
// Linker is NOT safe for concurrent use. The host must not call Link
// concurrently with any other operation.
//
// # Example
//
//	l, _ := linker.New(linker.Config{Exports: eggshell.Exports{OnFrame: tick}})
//	exports, err := l.Link(imports)
//	_ = l.Log().Warning("low on memory")
package linker
