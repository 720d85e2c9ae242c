package hostmock

import (
	"errors"
	"fmt"

	"github.com/eggshell-project/eggshell"
)

var (
	// ErrUnexpectedNamespace is returned when the namespace is not as expected.
	ErrUnexpectedNamespace = errors.New("unexpected namespace")

	// ErrUnexpectedCapability is returned when the capability is not as expected.
	ErrUnexpectedCapability = errors.New("unexpected capability")

	// ErrUnexpectedFunction is returned when the function is not as expected.
	ErrUnexpectedFunction = errors.New("unexpected function")

	// ErrOperationFailed is returned when Fail is set without a custom error.
	ErrOperationFailed = errors.New("operation failed")
)

// Call captures a single invocation of the host's log slot.
type Call struct {
	// Message is the text passed to the log slot.
	Message string

	// Level is the severity passed to the log slot.
	Level eggshell.Level
}

// HostCall captures a single waPC host call observed by the mock.
type HostCall struct {
	Namespace  string
	Capability string
	Function   string
	Payload    []byte
}

// Mock simulates the host side of the bridge. It hands out import and export
// tables that record every invocation, and validates waPC host calls.
//
// A Mock is not safe for concurrent use.
type Mock struct {
	// ExpectedNamespace defines the namespace expected in the host call.
	ExpectedNamespace string

	// ExpectedCapability defines the capability expected in the host call.
	ExpectedCapability string

	// ExpectedFunction defines the function name expected in the host call.
	ExpectedFunction string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// PayloadValidator validates the payload passed to the host call.
	PayloadValidator func([]byte) error

	// Response defines the response to return for the host call.
	Response func() []byte

	// Fail indicates whether the mock should return an error.
	Fail bool

	// Calls records every message delivered to the log slot, in order.
	Calls []Call

	// HostCalls records every waPC host call, including rejected ones.
	HostCalls []HostCall

	// Frames records the delta of every OnFrame invocation.
	Frames []float32

	// Shutdowns counts OnShutdown invocations.
	Shutdowns int
}

// Config represents the configuration for creating a Mock instance.
type Config struct {
	// ExpectedNamespace defines the namespace expected in the host call.
	ExpectedNamespace string

	// ExpectedCapability defines the capability expected in the host call.
	ExpectedCapability string

	// ExpectedFunction defines the function name expected in the host call.
	ExpectedFunction string

	// Error is the error to return if the mock is configured to fail.
	Error error

	// PayloadValidator validates the payload passed to the host call.
	PayloadValidator func([]byte) error

	// Response defines the response to return for the host call.
	Response func() []byte

	// Fail indicates whether the mock should return an error.
	Fail bool
}

// New creates a new instance of the Mock based on the provided Config.
func New(config Config) (*Mock, error) {
	return &Mock{
		ExpectedNamespace:  config.ExpectedNamespace,
		ExpectedCapability: config.ExpectedCapability,
		ExpectedFunction:   config.ExpectedFunction,
		Error:              config.Error,
		Fail:               config.Fail,
		PayloadValidator:   config.PayloadValidator,
		Response:           config.Response,
	}, nil
}

// Imports returns an import table whose log slot records into m.Calls.
func (m *Mock) Imports() eggshell.Imports {
	return eggshell.Imports{Log: m.Log}
}

// Exports returns an export table whose slots record into m.Frames and m.Shutdowns.
func (m *Mock) Exports() eggshell.Exports {
	return eggshell.Exports{OnFrame: m.OnFrame, OnShutdown: m.OnShutdown}
}

// Log records a log slot invocation.
func (m *Mock) Log(message string, level eggshell.Level) {
	m.Calls = append(m.Calls, Call{Message: message, Level: level})
}

// OnFrame records a frame export invocation.
func (m *Mock) OnFrame(delta float32) {
	m.Frames = append(m.Frames, delta)
}

// OnShutdown records a shutdown export invocation.
func (m *Mock) OnShutdown() {
	m.Shutdowns++
}

// Reset clears every recorded invocation, keeping the expectations.
func (m *Mock) Reset() {
	m.Calls = nil
	m.HostCalls = nil
	m.Frames = nil
	m.Shutdowns = 0
}

// HostCall simulates a waPC host call, validating inputs and returning a response or error.
// Expectations left empty match anything.
func (m *Mock) HostCall(namespace, capability, function string, payload []byte) ([]byte, error) {
	m.HostCalls = append(m.HostCalls, HostCall{
		Namespace:  namespace,
		Capability: capability,
		Function:   function,
		Payload:    append([]byte(nil), payload...),
	})

	// Return user-defined error if Fail is set
	if m.Fail && m.Error != nil {
		return nil, m.Error
	}

	// Return default error if Fail is set but no custom error is provided
	if m.Fail {
		return nil, ErrOperationFailed
	}

	if m.ExpectedNamespace != "" && m.ExpectedNamespace != namespace {
		return nil, fmt.Errorf(
			"%w: expected namespace %s, got %s",
			ErrUnexpectedNamespace,
			m.ExpectedNamespace,
			namespace,
		)
	}

	if m.ExpectedCapability != "" && m.ExpectedCapability != capability {
		return nil, fmt.Errorf(
			"%w: expected capability %s, got %s",
			ErrUnexpectedCapability,
			m.ExpectedCapability,
			capability,
		)
	}

	if m.ExpectedFunction != "" && m.ExpectedFunction != function {
		return nil, fmt.Errorf("%w: expected function %s, got %s", ErrUnexpectedFunction, m.ExpectedFunction, function)
	}

	// Validate payload using user-defined validator, if provided
	if m.PayloadValidator != nil {
		if err := m.PayloadValidator(payload); err != nil {
			return nil, err
		}
	}

	if m.Response != nil {
		return m.Response(), nil
	}

	return nil, nil
}
