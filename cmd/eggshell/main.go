// Command eggshell builds the native side of the Eggshell bridge as a shared
// library:
//
//	go build -buildmode=c-shared -o libeggshell.so ./cmd/eggshell
//
// The host loads the library and calls Link with its import table.
package main

import (
	_ "github.com/eggshell-project/eggshell/native"
)

// Required for c-shared build mode
func main() {}
