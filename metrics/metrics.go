package metrics

import (
	"errors"
	"regexp"

	"github.com/eggshell-project/eggshell"
	proto "github.com/tarmac-project/protobuf-go/sdk/metrics"
	wapc "github.com/wapc/wapc-guest-tinygo"
)

const (
	capabilityName = "metrics"
	fnCounter      = "counter"
	fnGauge        = "gauge"
	fnHistogram    = "histogram"
	actionInc      = "inc"
	actionDec      = "dec"
)

var (
	// ErrInvalidMetricName indicates a metric name that does not match the supported format.
	ErrInvalidMetricName = errors.New("metric name is invalid")

	isMetricNameValid = regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)
)

// HostCall defines the waPC host function signature used by metrics operations.
type HostCall func(string, string, string, []byte) ([]byte, error)

// Client creates metric handles reported to the host's metrics capability.
type Client interface {
	NewCounter(name string) (*Counter, error)
	NewGauge(name string) (*Gauge, error)
	NewHistogram(name string) (*Histogram, error)
}

// Config controls how a Client instance reaches the host.
type Config struct {
	// Namespace scopes host calls. If empty, eggshell.DefaultNamespace is used.
	Namespace string

	// HostCall overrides the waPC host function. If nil, wapc.HostCall is used.
	HostCall HostCall
}

// HostMetrics is the metrics capability client implementation.
type HostMetrics struct {
	namespace string
	hostCall  HostCall
}

var _ Client = (*HostMetrics)(nil)

// New creates a metrics client with namespace defaults and optional host-call override.
func New(cfg Config) (*HostMetrics, error) {
	c := &HostMetrics{namespace: cfg.Namespace, hostCall: cfg.HostCall}

	if c.namespace == "" {
		c.namespace = eggshell.DefaultNamespace
	}
	if c.hostCall == nil {
		c.hostCall = wapc.HostCall
	}

	return c, nil
}

// instrument carries what every metric handle needs to reach the host.
type instrument struct {
	name      string
	namespace string
	hostCall  HostCall
}

func (c *HostMetrics) newInstrument(name string) (instrument, error) {
	if !isMetricNameValid.MatchString(name) {
		return instrument{}, ErrInvalidMetricName
	}
	return instrument{name: name, namespace: c.namespace, hostCall: c.hostCall}, nil
}

// send is best-effort; marshal and host failures never reach the caller.
func (i instrument) send(fn string, payload []byte, err error) {
	if err != nil {
		return
	}
	_, _ = i.hostCall(i.namespace, capabilityName, fn, payload)
}

// Counter is a named counter metric handle.
type Counter struct{ instrument }

// Gauge is a named gauge metric handle.
type Gauge struct{ instrument }

// Histogram is a named histogram metric handle.
type Histogram struct{ instrument }

// NewCounter creates a named counter metric handle.
func (c *HostMetrics) NewCounter(name string) (*Counter, error) {
	i, err := c.newInstrument(name)
	if err != nil {
		return nil, err
	}
	return &Counter{i}, nil
}

// NewGauge creates a named gauge metric handle.
func (c *HostMetrics) NewGauge(name string) (*Gauge, error) {
	i, err := c.newInstrument(name)
	if err != nil {
		return nil, err
	}
	return &Gauge{i}, nil
}

// NewHistogram creates a named histogram metric handle.
func (c *HostMetrics) NewHistogram(name string) (*Histogram, error) {
	i, err := c.newInstrument(name)
	if err != nil {
		return nil, err
	}
	return &Histogram{i}, nil
}

// Inc increments the counter by one.
func (c *Counter) Inc() {
	payload, err := (&proto.MetricsCounter{Name: c.name}).MarshalVT()
	c.send(fnCounter, payload, err)
}

// Inc increments the gauge by one.
func (g *Gauge) Inc() { g.emit(actionInc) }

// Dec decrements the gauge by one.
func (g *Gauge) Dec() { g.emit(actionDec) }

func (g *Gauge) emit(action string) {
	payload, err := (&proto.MetricsGauge{Name: g.name, Action: action}).MarshalVT()
	g.send(fnGauge, payload, err)
}

// Observe records a value for the histogram.
func (h *Histogram) Observe(value float64) {
	payload, err := (&proto.MetricsHistogram{Name: h.name, Value: value}).MarshalVT()
	h.send(fnHistogram, payload, err)
}
