package native

// #include "eggshell.h"
import "C"

import (
	"fmt"
	"sync"

	"github.com/eggshell-project/eggshell"
	"github.com/eggshell-project/eggshell/linker"
	"go.uber.org/zap"
)

var (
	// instance is the process-wide Linker behind the C entry points.
	instance     *linker.Linker
	instanceOnce sync.Once
)

// Linker returns the process-wide Linker driven by the exported C functions.
func Linker() *linker.Linker {
	instanceOnce.Do(func() {
		l, err := linker.New(linker.Config{})
		if err != nil {
			panic(fmt.Sprintf("native: creating linker: %v", err))
		}
		instance = l
	})
	return instance
}

// Register populates the export table handed to the host on the next Link.
// Slots left nil are published to the host as NULL.
func Register(exports eggshell.Exports) {
	Linker().SetExports(exports)
}

//export Link
func Link(imports C.Imports) C.Exports {
	return exportsToC(link(importsFromC(imports)))
}

//export eggshellOnFrame
func eggshellOnFrame(delta C.float) {
	dispatchFrame(float32(delta))
}

//export eggshellOnShutdown
func eggshellOnShutdown() {
	dispatchShutdown()
}

// link performs the handshake on the process-wide Linker. A greeting that
// cannot be delivered is already reported by the Linker; the host still gets
// the export table.
func link(imports eggshell.Imports) eggshell.Exports {
	exports, _ := Linker().Link(imports)
	return exports
}

func dispatchFrame(delta float32) {
	if err := Linker().Frame(delta); err != nil {
		linker.Logger().Debug("frame dropped", zap.Error(err))
	}
}

func dispatchShutdown() {
	if err := Linker().Shutdown(); err != nil {
		linker.Logger().Debug("shutdown dropped", zap.Error(err))
	}
}

// importsFromC wraps the host's C function pointers. A NULL pointer becomes
// an unset slot.
func importsFromC(ci C.Imports) eggshell.Imports {
	var imports eggshell.Imports

	if fn := ci.func_log; fn != nil {
		imports.Log = func(message string, level eggshell.Level) {
			callLog(fn, message, level)
		}
	}

	return imports
}

// exportsToC publishes a trampoline for every set slot and NULL for the rest.
func exportsToC(e eggshell.Exports) C.Exports {
	var out C.Exports

	if e.OnFrame != nil {
		out.func_onframe = frameTrampoline()
	}
	if e.OnShutdown != nil {
		out.func_onshutdown = shutdownTrampoline()
	}

	return out
}
