package metrics

// Metric names reported by the bridge.
const (
	NameLinks      = "eggshell_links_total"
	NameLinked     = "eggshell_linked"
	NameFrames     = "eggshell_frames_total"
	NameFrameDelta = "eggshell_frame_delta_seconds"
)

// Bridge bundles the instruments describing handshake and frame activity.
// A nil *Bridge records nothing.
//
// The eggshell_linked gauge only moves on transitions, so it stays at 0 or 1
// whatever order the host calls link and shutdown in.
type Bridge struct {
	live bool

	links      *Counter
	linked     *Gauge
	frames     *Counter
	frameDelta *Histogram
}

// NewBridge creates the bridge instruments on c.
func NewBridge(c Client) (*Bridge, error) {
	links, err := c.NewCounter(NameLinks)
	if err != nil {
		return nil, err
	}

	linked, err := c.NewGauge(NameLinked)
	if err != nil {
		return nil, err
	}

	frames, err := c.NewCounter(NameFrames)
	if err != nil {
		return nil, err
	}

	frameDelta, err := c.NewHistogram(NameFrameDelta)
	if err != nil {
		return nil, err
	}

	return &Bridge{links: links, linked: linked, frames: frames, frameDelta: frameDelta}, nil
}

// ObserveLink records a handshake. The linked gauge is raised only when the
// bridge was not already linked.
func (b *Bridge) ObserveLink() {
	if b == nil {
		return
	}
	b.links.Inc()
	if !b.live {
		b.live = true
		b.linked.Inc()
	}
}

// ObserveFrame records a dispatched frame and its delta in seconds.
func (b *Bridge) ObserveFrame(delta float32) {
	if b == nil {
		return
	}
	b.frames.Inc()
	b.frameDelta.Observe(float64(delta))
}

// ObserveShutdown records that the host shut the native side down. Without a
// live link it records nothing.
func (b *Bridge) ObserveShutdown() {
	if b == nil || !b.live {
		return
	}
	b.live = false
	b.linked.Dec()
}

// Linked reports whether the bridge currently counts a live link.
func (b *Bridge) Linked() bool {
	return b != nil && b.live
}
