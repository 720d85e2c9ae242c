package hostmock

import (
	"bytes"
	"errors"
	"testing"

	"github.com/eggshell-project/eggshell"
)

type TestCase struct {
	name       string
	cfg        Config
	payload    []byte
	namespace  string
	capability string
	function   string
	want       []byte
	wantErr    error
}

var ErrMockError = errors.New("Mock error")

func TestHostMock(t *testing.T) {
	tt := []TestCase{
		{
			name: "Matching Call",
			cfg: Config{
				ExpectedNamespace:  "eggshell",
				ExpectedCapability: "logging",
				ExpectedFunction:   "Info",
				Response: func() []byte {
					return []byte("ok")
				},
			},
			namespace:  "eggshell",
			capability: "logging",
			function:   "Info",
			payload:    []byte("hello"),
			want:       []byte("ok"),
		},
		{
			name: "Custom Fail Error",
			cfg: Config{
				ExpectedNamespace:  "eggshell",
				ExpectedCapability: "logging",
				ExpectedFunction:   "Info",
				Error:              ErrMockError,
				Fail:               true,
			},
			namespace:  "eggshell",
			capability: "logging",
			function:   "Info",
			payload:    []byte("hello"),
			wantErr:    ErrMockError,
		},
		{
			name: "Default Fail Error",
			cfg: Config{
				Fail: true,
			},
			namespace:  "eggshell",
			capability: "logging",
			function:   "Info",
			payload:    []byte("whatever"),
			wantErr:    ErrOperationFailed,
		},
		{
			name: "Nil Response Returns Nil",
			cfg: Config{
				ExpectedNamespace:  "eggshell",
				ExpectedCapability: "logging",
				ExpectedFunction:   "Error",
			},
			namespace:  "eggshell",
			capability: "logging",
			function:   "Error",
			payload:    []byte("ok"),
		},
		{
			name: "Wildcard Expectations",
			cfg: Config{
				Response: func() []byte {
					return []byte("any")
				},
			},
			namespace:  "other",
			capability: "thing",
			function:   "call",
			want:       []byte("any"),
		},
		{
			name: "Invalid Payload",
			cfg: Config{
				PayloadValidator: func(payload []byte) error {
					if string(payload) != "valid" {
						return ErrMockError
					}
					return nil
				},
			},
			namespace:  "eggshell",
			capability: "logging",
			function:   "Info",
			payload:    []byte("invalid"),
			wantErr:    ErrMockError,
		},
		{
			name: "Unexpected Namespace",
			cfg: Config{
				ExpectedNamespace: "expected",
			},
			namespace:  "eggshell",
			capability: "logging",
			function:   "Info",
			wantErr:    ErrUnexpectedNamespace,
		},
		{
			name: "Unexpected Capability",
			cfg: Config{
				ExpectedNamespace:  "eggshell",
				ExpectedCapability: "expected",
			},
			namespace:  "eggshell",
			capability: "logging",
			function:   "Info",
			wantErr:    ErrUnexpectedCapability,
		},
		{
			name: "Unexpected Function",
			cfg: Config{
				ExpectedNamespace:  "eggshell",
				ExpectedCapability: "logging",
				ExpectedFunction:   "Warning",
			},
			namespace:  "eggshell",
			capability: "logging",
			function:   "Info",
			wantErr:    ErrUnexpectedFunction,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			m, err := New(tc.cfg)
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			got, err := m.HostCall(tc.namespace, tc.capability, tc.function, tc.payload)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected error %v, got %v", tc.wantErr, err)
			}
			if err == nil && !bytes.Equal(got, tc.want) {
				t.Fatalf("expected response %q, got %q", tc.want, got)
			}

			if len(m.HostCalls) != 1 {
				t.Fatalf("expected 1 recorded host call, got %d", len(m.HostCalls))
			}
			rec := m.HostCalls[0]
			if rec.Namespace != tc.namespace || rec.Capability != tc.capability || rec.Function != tc.function {
				t.Fatalf("recorded call mismatch: %+v", rec)
			}
		})
	}
}

func TestHostMock_Tables(t *testing.T) {
	m, err := New(Config{})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	t.Run("Imports Record Log Calls", func(t *testing.T) {
		imports := m.Imports()
		imports.Log("first", eggshell.LevelInfo)
		imports.Log("second", eggshell.LevelError)

		want := []Call{
			{Message: "first", Level: eggshell.LevelInfo},
			{Message: "second", Level: eggshell.LevelError},
		}
		if len(m.Calls) != len(want) {
			t.Fatalf("expected %d calls, got %d", len(want), len(m.Calls))
		}
		for i := range want {
			if m.Calls[i] != want[i] {
				t.Errorf("call %d: expected %+v, got %+v", i, want[i], m.Calls[i])
			}
		}
	})

	t.Run("Exports Record Invocations", func(t *testing.T) {
		exports := m.Exports()
		exports.OnFrame(0.016)
		exports.OnFrame(0.033)
		exports.OnShutdown()

		if len(m.Frames) != 2 || m.Frames[0] != 0.016 || m.Frames[1] != 0.033 {
			t.Fatalf("unexpected frames %v", m.Frames)
		}
		if m.Shutdowns != 1 {
			t.Fatalf("expected 1 shutdown, got %d", m.Shutdowns)
		}
	})

	t.Run("Reset", func(t *testing.T) {
		_, _ = m.HostCall("eggshell", "logging", "Info", nil)
		m.Reset()

		if len(m.Calls) != 0 || len(m.HostCalls) != 0 || len(m.Frames) != 0 || m.Shutdowns != 0 {
			t.Fatalf("expected empty recordings after Reset, got %+v", m)
		}
	})
}
