/*
Package metrics reports bridge activity to the host's metrics capability.

HostMetrics creates Counter, Gauge and Histogram handles backed by protobuf
payloads sent over waPC host calls. Bridge bundles the handles the wasm
boundary updates on every handshake, frame and shutdown.

Emission is best-effort: Inc, Dec and Observe never return errors, and
marshal or host-call failures are swallowed so they cannot disturb the frame
loop.
*/
package metrics
