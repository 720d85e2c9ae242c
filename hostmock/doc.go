/*
Package hostmock provides a pretend Eggshell host for tests.

A Mock plays both sides of the handshake: Imports returns a table whose log
slot records every line into Calls, and Exports returns a table whose slots
record frame deltas and shutdowns. For the waPC boundary, HostCall validates
namespace, capability and function the way a host would.

Quick start

	m, _ := hostmock.New(hostmock.Config{
	  ExpectedNamespace:  "eggshell",
	  ExpectedCapability: "logging",
	  ExpectedFunction:   "Info",
	})

	l, _ := linker.New(linker.Config{})
	_, _ = l.Link(m.Imports())
	// m.Calls[0] is {Message: "Hello World from Eggshell!", Level: eggshell.LevelInfo}

Behavior

  - If Fail is true and Error is set, HostCall returns that error.
  - If Fail is true and Error is nil, HostCall returns ErrOperationFailed.
  - Otherwise HostCall enforces the expectations that are set and runs
    PayloadValidator when provided. Response (when set) provides the return
    bytes; otherwise it returns nil.
  - Every HostCall is recorded in HostCalls, rejected or not.
*/
package hostmock
