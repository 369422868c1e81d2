// Package driver.go declares the Driver contract: the platform adapter
// between the rendering core and the terminal. The core never writes
// escape sequences; it hands the driver frame diffs and consumes the
// driver's parsed event stream.

package schirmwerk

// Event is a platform input event produced by a driver.
type Event interface {
	isEvent()
}

// KeyEvent is one key press with its canonical name ("a", "enter",
// "ctrl+shift+left") and the printable character when there is one.
type KeyEvent struct {
	Name string
	Rune rune
	Mods Modifiers
}

// MouseEvent is one mouse interaction in cell coordinates relative to the
// terminal origin.
type MouseEvent struct {
	Kind     MouseKind
	Position Offset
	Button   MouseButton
	Mods     Modifiers
	Chain    int
}

// PasteEvent is a bracketed paste.
type PasteEvent struct {
	Text string
}

// FocusEvent reports the terminal gaining or losing focus.
type FocusEvent struct {
	Gained bool
}

// ResizeEvent reports a new terminal size.
type ResizeEvent struct {
	Size Size
}

// QuitEvent asks the application to terminate (e.g. the terminal closed).
type QuitEvent struct{}

func (KeyEvent) isEvent()    {}
func (MouseEvent) isEvent()  {}
func (PasteEvent) isEvent()  {}
func (FocusEvent) isEvent()  {}
func (ResizeEvent) isEvent() {}
func (QuitEvent) isEvent()   {}

// Driver abstracts the terminal platform. Implementations must deliver
// mouse coordinates in cells relative to the terminal origin, produce
// stable canonical key names, and reflect new sizes in resize events.
type Driver interface {
	// Start initializes the terminal. Failures are fatal (ErrDriver).
	Start() error

	// Stop restores the terminal. Safe to call after a failed Start.
	Stop() error

	// Size returns the current terminal size in cells.
	Size() Size

	// SetTitle sets the terminal window title, when supported.
	SetTitle(title string)

	// Events returns the stream of parsed input events. The channel
	// closes when the driver stops.
	Events() <-chan Event

	// WriteFrame applies a frame diff to the terminal.
	WriteFrame(diff FrameDiff) error

	// SetCursor shows the text cursor at the given cell, or hides it
	// when nil.
	SetCursor(position *Offset)

	// Bell rings the terminal bell.
	Bell()

	// InlineMode restricts output to a band of the given height at the
	// current cursor position instead of the full alternate screen.
	// Must be called before Start; zero height selects full-screen.
	InlineMode(height int) error
}
