/*
Package wasm exposes the Eggshell handshake to WebAssembly hosts over waPC.

The host drives the guest through three functions: link performs the
handshake and replies with a Manifest of live exports, frame carries a
protobuf FloatValue delta for the OnFrame export, and shutdown invokes the
OnShutdown export. In the other direction, the import table's log slot is a
waPC host call to the logging capability, with the level name (Info,
Warning, Error) as the function and the raw message as the payload.

	l, _ := linker.New(linker.Config{Exports: exports})
	_ = wasm.Register(l, wasm.Config{})
*/
package wasm
