package native

/*
#include <string.h>
#include "eggshell.h"

static char eggshell_loopback_message[512];
static int eggshell_loopback_level = -1;
static int eggshell_loopback_count = 0;

static void eggshell_loopback_log(const char* message, int level)
{
	strncpy(eggshell_loopback_message, message, sizeof(eggshell_loopback_message) - 1);
	eggshell_loopback_message[sizeof(eggshell_loopback_message) - 1] = '\0';
	eggshell_loopback_level = level;
	eggshell_loopback_count++;
}

static inline void eggshell_loopback_reset(void)
{
	eggshell_loopback_message[0] = '\0';
	eggshell_loopback_level = -1;
	eggshell_loopback_count = 0;
}

static inline const char* eggshell_loopback_last_message(void) { return eggshell_loopback_message; }
static inline int eggshell_loopback_last_level(void) { return eggshell_loopback_level; }
static inline int eggshell_loopback_calls(void) { return eggshell_loopback_count; }

static inline Imports eggshell_loopback_imports(int with_log)
{
	Imports imports;
	imports.func_log = with_log ? eggshell_loopback_log : NULL;
	return imports;
}

static inline void eggshell_loopback_frame(Exports exports, float delta) { exports.func_onframe(delta); }
static inline void eggshell_loopback_shutdown(Exports exports) { exports.func_onshutdown(); }
*/
import "C"

import "github.com/eggshell-project/eggshell"

// The loopback host is a C caller inside the library. It links through the
// exported Link with its own C log callback, or a NULL one, and invokes
// exports through the published function pointers.

type loopbackLog struct {
	Message string
	Level   eggshell.Level
	Calls   int
}

// loopbackLink clears the recorded log state and links as a C host would.
func loopbackLink(withLog bool) C.Exports {
	C.eggshell_loopback_reset()

	var flag C.int
	if withLog {
		flag = 1
	}
	return Link(C.eggshell_loopback_imports(flag))
}

// loopbackRecorded returns the last line the C log callback received.
func loopbackRecorded() loopbackLog {
	return loopbackLog{
		Message: C.GoString(C.eggshell_loopback_last_message()),
		Level:   eggshell.Level(C.eggshell_loopback_last_level()),
		Calls:   int(C.eggshell_loopback_calls()),
	}
}

func loopbackFrame(exports C.Exports, delta float32) {
	C.eggshell_loopback_frame(exports, C.float(delta))
}

func loopbackShutdown(exports C.Exports) {
	C.eggshell_loopback_shutdown(exports)
}
