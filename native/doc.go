// Package native exposes the Eggshell handshake through a C ABI.
//
// Built with -buildmode=c-shared (see cmd/eggshell), the library exports
//
//	Exports Link(Imports imports);
//
// with the struct layouts declared in eggshell.h. The host's function
// pointers are wrapped into an eggshell.Imports, handed to the process-wide
// Linker, and the Linker's export table is published back as C trampolines.
// Export slots that were never registered are published as NULL.
//
// Log lines cross the boundary as NUL-terminated C strings, so the host sees
// a message only up to its first NUL byte.
//
// Embedding code registers its exports before the host links, typically from
// an init function:
//
//	func init() {
//		native.Register(eggshell.Exports{OnFrame: tick, OnShutdown: stop})
//	}
package native
