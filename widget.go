// Package widget.go declares the Widget contract: the interface every node
// of the tree implements to take part in styling, layout, compositing and
// message dispatch. BaseWidget in base-widget.go provides the standard
// implementation; concrete widgets embed it and override the rendering and
// composition methods.

package schirmwerk

// Widget is a node of the tree. All UI elements must implement this
// interface to participate in the rendering pipeline and event handling.
// Most implementations embed BaseWidget and override only Compose,
// DefaultCSS and the three rendering methods.
type Widget interface {
	// ID returns the widget's identifier, unique among its siblings.
	// May be empty for anonymous widgets.
	ID() string

	// TypeName returns the widget's type tag, set at construction. Type
	// selectors in stylesheets match against this name.
	TypeName() string

	// Classes returns the widget's style classes in insertion order.
	Classes() []string

	// HasClass reports whether the widget carries the given class.
	HasClass(string) bool

	// Parent returns the containing widget, or nil for a root.
	Parent() Widget

	// Children returns the widget's direct children in layout order.
	Children() []Widget

	// Base exposes the embedded BaseWidget holding the common node state.
	Base() *BaseWidget

	// Styles returns the widget's computed styles. The pointer stays
	// valid between style passes; the cascade overwrites it in place.
	Styles() *Styles

	// PseudoState reports whether the named pseudo-class state (hover,
	// focus, focus-within, disabled, light, dark, inline) holds.
	PseudoState(string) bool

	// Focusable reports whether the widget takes part in focus
	// traversal.
	Focusable() bool

	// Compose returns the widget's initial children. Called once when
	// the widget mounts; the returned widgets are mounted below it.
	Compose() []Widget

	// DefaultCSS returns the widget type's built-in stylesheet source.
	DefaultCSS() string

	// ScopedCSS reports whether the default CSS is compiled with an
	// implicit type-scope prefix so it cannot leak to other widgets.
	ScopedCSS() bool

	// ContentWidth returns the widget's preferred content width given
	// the container's content width, used for auto sizing.
	ContentWidth(container int) int

	// ContentHeight returns the widget's preferred content height when
	// its content is laid out at the given width.
	ContentHeight(width int) int

	// RenderLine produces content line y at the given content width.
	// Line numbers are in virtual (scrollable) coordinates. The strip
	// must be exactly width cells.
	RenderLine(y, width int) Strip

	// Handle dispatches a message through the widget's handler table
	// and reports whether it was consumed.
	Handle(Message) bool

	// Bindings returns the widget's key bindings.
	Bindings() []Binding
}

// MessageHandler processes one message and reports whether it consumed it.
type MessageHandler func(Message) bool

// WidgetType returns the type name of a widget, or "<nil>".
func WidgetType(w Widget) string {
	if w == nil {
		return "<nil>"
	}
	return w.TypeName()
}

// Traverse visits the widget and all of its descendants depth-first in
// layout order.
func Traverse(w Widget, fn func(Widget)) {
	fn(w)
	for _, child := range w.Children() {
		Traverse(child, fn)
	}
}

// FindWidget searches the subtree for a widget with the given id.
func FindWidget(root Widget, id string) Widget {
	var found Widget
	Traverse(root, func(w Widget) {
		if found == nil && w.ID() == id {
			found = w
		}
	})
	return found
}
