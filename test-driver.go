// Package test-driver.go implements an in-memory Driver used by the test
// suites and headless tooling. Events are scripted through Feed; frames
// accumulate by applying the emitted diffs, exactly the way a terminal
// would.

package schirmwerk

import "sync"

// TestDriver is a driver without a terminal: it records frames and plays
// back scripted events.
type TestDriver struct {
	mu      sync.Mutex
	size    Size
	events  chan Event
	current *Frame
	frames  int
	started bool
	bells   int
	title   string
	cursor  *Offset
}

// NewTestDriver creates a test driver with the given screen size.
func NewTestDriver(size Size) *TestDriver {
	return &TestDriver{
		size:   size,
		events: make(chan Event, 64),
	}
}

func (d *TestDriver) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.started = true
	return nil
}

func (d *TestDriver) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started {
		d.started = false
		close(d.events)
	}
	return nil
}

func (d *TestDriver) Size() Size {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.size
}

func (d *TestDriver) SetTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.title = title
}

func (d *TestDriver) Events() <-chan Event {
	return d.events
}

func (d *TestDriver) WriteFrame(diff FrameDiff) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if diff.Full {
		frame := *diff.Frame
		d.current = &frame
	} else if d.current != nil {
		next := ApplyDiff(*d.current, diff)
		d.current = &next
	}
	d.frames++
	return nil
}

func (d *TestDriver) SetCursor(position *Offset) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cursor = position
}

func (d *TestDriver) Bell() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bells++
}

func (d *TestDriver) InlineMode(height int) error {
	return nil
}

// Feed queues a scripted event.
func (d *TestDriver) Feed(event Event) {
	d.events <- event
}

// Resize changes the reported size and emits a resize event.
func (d *TestDriver) Resize(size Size) {
	d.mu.Lock()
	d.size = size
	d.mu.Unlock()
	d.events <- ResizeEvent{Size: size}
}

// Frame returns the current accumulated frame.
func (d *TestDriver) Frame() *Frame {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// FrameCount returns the number of frame writes.
func (d *TestDriver) FrameCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.frames
}

// Bells returns the number of bell rings.
func (d *TestDriver) Bells() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.bells
}

// Title returns the last title set.
func (d *TestDriver) Title() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title
}

// Text returns the plain text of the current frame, one string per line.
func (d *TestDriver) Text() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == nil {
		return nil
	}
	lines := make([]string, len(d.current.Lines))
	for i, strip := range d.current.Lines {
		lines[i] = strip.Text()
	}
	return lines
}
