package native

/*
#include <stdlib.h>
#include "eggshell.h"

static inline void eggshell_call_log(eggshell_log_fn fn, const char* message, int level)
{
	fn(message, level);
}

static inline eggshell_frame_fn eggshell_frame_trampoline(void)
{
	return eggshellOnFrame;
}

static inline eggshell_shutdown_fn eggshell_shutdown_trampoline(void)
{
	return eggshellOnShutdown;
}
*/
import "C"

import (
	"unsafe"

	"github.com/eggshell-project/eggshell"
)

// Definitions live here because a file with //export may only declare C symbols.

// callLog hands message to the host as a NUL-terminated C string. A message
// containing a NUL byte reaches the host cut off at that byte.
func callLog(fn C.eggshell_log_fn, message string, level eggshell.Level) {
	cs := C.CString(message)
	defer C.free(unsafe.Pointer(cs))
	C.eggshell_call_log(fn, cs, C.int(level))
}

func frameTrampoline() C.eggshell_frame_fn {
	return C.eggshell_frame_trampoline()
}

func shutdownTrampoline() C.eggshell_shutdown_fn {
	return C.eggshell_shutdown_trampoline()
}
