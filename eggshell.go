package eggshell

// DefaultNamespace is used for host interactions when no explicit namespace is provided.
const DefaultNamespace = "eggshell"

// Greeting is the informational line emitted through the host's log slot on every handshake.
const Greeting = "Hello World from Eggshell!"

// LogFunc is the host's logging callback. It receives the message and its severity.
type LogFunc func(message string, level Level)

// FrameFunc is called by the host once per frame with the elapsed time in seconds.
type FrameFunc func(delta float32)

// ShutdownFunc is called by the host when it is about to unload the native side.
type ShutdownFunc func()

// Imports holds the function slots supplied by the host for the native side to call.
// A nil slot is unset.
type Imports struct {
	// Log forwards a message and severity to the host.
	Log LogFunc
}

// Exports holds the function slots the native side offers back to the host.
// A nil slot is unset and the host must not expect it to fire.
type Exports struct {
	// OnFrame is invoked by the host every frame.
	OnFrame FrameFunc

	// OnShutdown is invoked by the host before unloading.
	OnShutdown ShutdownFunc
}

// Empty reports whether no import slot is set.
func (i Imports) Empty() bool { return i.Log == nil }

// Empty reports whether no export slot is set.
func (e Exports) Empty() bool { return e.OnFrame == nil && e.OnShutdown == nil }
