/*
Package eggshell provides the shared types of the Eggshell native bridge.

A host process loads the native side and performs a single handshake: it hands
over an Imports table (function slots the native side may call) and receives
an Exports table (function slots the host may call). The linker package holds
both tables, the log package forwards leveled log lines to the host, and the
native and wasm packages expose the handshake across a C ABI and a waPC
boundary respectively.
*/
package eggshell
