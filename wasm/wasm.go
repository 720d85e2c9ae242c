package wasm

import (
	"errors"
	"fmt"

	"github.com/eggshell-project/eggshell"
	"github.com/eggshell-project/eggshell/linker"
	"github.com/eggshell-project/eggshell/metrics"
	wapc "github.com/wapc/wapc-guest-tinygo"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	capabilityLogging = "logging"
	fnLink            = "link"
	fnFrame           = "frame"
	fnShutdown        = "shutdown"
	fieldOnFrame      = "onframe"
	fieldOnShutdown   = "onshutdown"
)

var (
	// ErrPayloadInvalid indicates a guest function payload that could not be decoded.
	ErrPayloadInvalid = errors.New("payload is invalid")
)

// HostCall defines the waPC host function signature used to reach the host.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Config controls how the waPC boundary talks to the host runtime.
type Config struct {
	// Namespace scopes host calls. If empty, eggshell.DefaultNamespace is used.
	Namespace string

	// HostCall overrides the waPC host function. If nil, wapc.HostCall is used.
	HostCall HostCall

	// Logger receives internal diagnostics. If nil, linker.Logger() is used.
	Logger *zap.Logger

	// Metrics reports handshake and frame activity. If nil, nothing is reported.
	Metrics *metrics.Bridge
}

func (c Config) withDefaults() Config {
	if c.Namespace == "" {
		c.Namespace = eggshell.DefaultNamespace
	}
	if c.HostCall == nil {
		c.HostCall = wapc.HostCall
	}
	if c.Logger == nil {
		c.Logger = linker.Logger()
	}
	return c
}

// Manifest tells the host which export slots are live after a handshake.
type Manifest struct {
	OnFrame    bool
	OnShutdown bool
}

// Imports returns an import table whose log slot forwards each line to the
// host's logging capability, using the level name as the function name.
// Delivery is best-effort: host-call failures are logged and dropped.
func Imports(cfg Config) eggshell.Imports {
	cfg = cfg.withDefaults()

	return eggshell.Imports{
		Log: func(message string, level eggshell.Level) {
			_, err := cfg.HostCall(cfg.Namespace, capabilityLogging, level.String(), []byte(message))
			if err != nil {
				cfg.Logger.Debug("log host call failed", zap.Stringer("level", level), zap.Error(err))
			}
		},
	}
}

// Handlers returns the guest functions a waPC host calls to drive l.
//
//   - link performs the handshake and replies with an encoded Manifest.
//   - frame decodes a FloatValue delta and invokes the OnFrame export.
//   - shutdown invokes the OnShutdown export.
func Handlers(l *linker.Linker, cfg Config) (wapc.Functions, error) {
	if l == nil {
		return nil, linker.ErrNilLinker
	}

	cfg = cfg.withDefaults()
	imports := Imports(cfg)

	return wapc.Functions{
		fnLink: func(_ []byte) ([]byte, error) {
			exports, err := l.Link(imports)
			cfg.Metrics.ObserveLink()
			if err != nil {
				return nil, err
			}
			return EncodeManifest(Manifest{
				OnFrame:    exports.OnFrame != nil,
				OnShutdown: exports.OnShutdown != nil,
			})
		},
		fnFrame: func(payload []byte) ([]byte, error) {
			delta, err := DecodeFrame(payload)
			if err != nil {
				return nil, err
			}
			if err := l.Frame(delta); err != nil {
				return nil, err
			}
			cfg.Metrics.ObserveFrame(delta)
			return nil, nil
		},
		fnShutdown: func(_ []byte) ([]byte, error) {
			if err := l.Shutdown(); err != nil {
				return nil, err
			}
			cfg.Metrics.ObserveShutdown()
			return nil, nil
		},
	}, nil
}

// Register registers the guest functions for l with waPC.
func Register(l *linker.Linker, cfg Config) error {
	fns, err := Handlers(l, cfg)
	if err != nil {
		return err
	}

	wapc.RegisterFunctions(fns)
	return nil
}

// EncodeFrame encodes a frame delta as a protobuf FloatValue.
func EncodeFrame(delta float32) ([]byte, error) {
	return proto.Marshal(wrapperspb.Float(delta))
}

// DecodeFrame decodes a frame delta encoded by EncodeFrame. An empty payload
// decodes to zero.
func DecodeFrame(payload []byte) (float32, error) {
	var v wrapperspb.FloatValue
	if err := proto.Unmarshal(payload, &v); err != nil {
		return 0, errors.Join(ErrPayloadInvalid, err)
	}
	return v.GetValue(), nil
}

// EncodeManifest encodes m as a protobuf Struct with one bool field per export.
func EncodeManifest(m Manifest) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		fieldOnFrame:    m.OnFrame,
		fieldOnShutdown: m.OnShutdown,
	})
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	return proto.Marshal(s)
}

// DecodeManifest decodes a payload produced by EncodeManifest. Missing fields
// decode as false.
func DecodeManifest(payload []byte) (Manifest, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(payload, &s); err != nil {
		return Manifest{}, errors.Join(ErrPayloadInvalid, err)
	}

	fields := s.GetFields()
	return Manifest{
		OnFrame:    fields[fieldOnFrame].GetBoolValue(),
		OnShutdown: fields[fieldOnShutdown].GetBoolValue(),
	}, nil
}
