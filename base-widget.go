// Package base-widget.go provides the standard implementation of the
// Widget contract. Concrete widgets embed BaseWidget, call Init with their
// type name in the constructor, and override the composition and rendering
// methods they need.

package schirmwerk

import (
	"sync"
)

// dirty flags track which pipeline stages a change invalidates.
type dirtyFlags uint8

const (
	dirtyStyle dirtyFlags = 1 << iota
	dirtyLayout
	dirtyPaint
	dirtyBindings
	dirtyCompose
)

// BaseWidget holds the state every tree node shares: identity, hierarchy,
// computed styles, geometry, scroll state, the message queue and the
// handler tables. It implements the full Widget interface with neutral
// defaults.
type BaseWidget struct {
	self     Widget
	app      *App
	id       string
	typeName string
	classes  []string
	parent   Widget
	children []Widget

	styles        Styles
	inlineStyles  map[string]string
	styleRevision int

	region             Region // in the parent's content coordinate space
	virtualSize        Size
	scrollOffset       Offset
	reservedScrollbars Size // bands reserved for scrollbars by the layout

	focusable bool
	focused   bool
	hovered   bool
	disabled  bool
	mounted   bool

	handlers map[string]MessageHandler
	actions  map[string]ActionHandler
	bindings []Binding
	workers  []*Worker

	queueMu sync.Mutex
	queue   []Message
	busy    bool

	dirty dirtyFlags

	// Rendered line cache for the current width, cleared on repaint.
	cacheWidth int
	cacheLines map[int]Strip
}

// Init wires the embedded base to its outer widget. Every widget
// constructor must call it before the widget is used:
//
//	func NewStatic(id, markup string) *Static {
//		s := &Static{content: MustContent(markup)}
//		s.Init(s, "Static", id)
//		return s
//	}
func (b *BaseWidget) Init(self Widget, typeName, id string) {
	b.self = self
	b.typeName = typeName
	b.id = id
	b.styles = DefaultStyles()
}

// Self returns the outer widget the base belongs to.
func (b *BaseWidget) Self() Widget {
	if b.self != nil {
		return b.self
	}
	return b
}

// ---- Identity -------------------------------------------------------------

func (b *BaseWidget) ID() string {
	return b.id
}

func (b *BaseWidget) TypeName() string {
	return b.typeName
}

func (b *BaseWidget) Classes() []string {
	return b.classes
}

func (b *BaseWidget) HasClass(class string) bool {
	for _, c := range b.classes {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass adds style classes and invalidates styling.
func (b *BaseWidget) AddClass(classes ...string) {
	changed := false
	for _, class := range classes {
		if !b.HasClass(class) {
			b.classes = append(b.classes, class)
			changed = true
		}
	}
	if changed {
		b.Invalidate(dirtyStyle | dirtyLayout | dirtyPaint)
	}
}

// RemoveClass removes style classes and invalidates styling.
func (b *BaseWidget) RemoveClass(classes ...string) {
	kept := b.classes[:0]
	changed := false
	for _, c := range b.classes {
		removed := false
		for _, class := range classes {
			if c == class {
				removed = true
				break
			}
		}
		if removed {
			changed = true
		} else {
			kept = append(kept, c)
		}
	}
	b.classes = kept
	if changed {
		b.Invalidate(dirtyStyle | dirtyLayout | dirtyPaint)
	}
}

// ToggleClass adds the class if absent, removes it otherwise.
func (b *BaseWidget) ToggleClass(class string) {
	if b.HasClass(class) {
		b.RemoveClass(class)
	} else {
		b.AddClass(class)
	}
}

// ---- Hierarchy ------------------------------------------------------------

func (b *BaseWidget) Parent() Widget {
	return b.parent
}

func (b *BaseWidget) Children() []Widget {
	return b.children
}

func (b *BaseWidget) Base() *BaseWidget {
	return b
}

// SetParent records the containing widget.
func (b *BaseWidget) SetParent(parent Widget) {
	b.parent = parent
}

// AddChildren appends children and records this widget as their parent.
// Mounting, if the widget is live, is handled by the app.
func (b *BaseWidget) AddChildren(children ...Widget) {
	for _, child := range children {
		child.Base().SetParent(b.Self())
		b.children = append(b.children, child)
	}
	b.Invalidate(dirtyStyle | dirtyLayout | dirtyPaint)
}

// RemoveChild detaches a direct child from the tree.
func (b *BaseWidget) RemoveChild(child Widget) {
	for i, c := range b.children {
		if c == child {
			b.children = append(b.children[:i], b.children[i+1:]...)
			child.Base().SetParent(nil)
			b.Invalidate(dirtyLayout | dirtyPaint)
			return
		}
	}
}

// Mounted reports whether the widget is currently part of a live tree.
func (b *BaseWidget) Mounted() bool {
	return b.mounted
}

// App returns the application the widget is mounted under, or nil.
func (b *BaseWidget) App() *App {
	return b.app
}

// ---- Styling --------------------------------------------------------------

func (b *BaseWidget) Styles() *Styles {
	return &b.styles
}

// SetComputedStyles replaces the computed styles after a cascade pass.
func (b *BaseWidget) SetComputedStyles(styles Styles) {
	b.styles = styles
}

// SetInlineStyle sets a per-widget declaration applied after the cascade.
func (b *BaseWidget) SetInlineStyle(property, value string) {
	if b.inlineStyles == nil {
		b.inlineStyles = map[string]string{}
	}
	b.inlineStyles[property] = value
	b.Invalidate(dirtyStyle | dirtyLayout | dirtyPaint)
}

// InlineStyles returns the widget's inline declarations.
func (b *BaseWidget) InlineStyles() map[string]string {
	return b.inlineStyles
}

// StyleRevision returns the counter that invalidates style-derived caches.
func (b *BaseWidget) StyleRevision() int {
	return b.styleRevision
}

func (b *BaseWidget) PseudoState(name string) bool {
	switch name {
	case "hover":
		return b.hovered
	case "focus":
		return b.focused
	case "focus-within":
		if b.focused {
			return true
		}
		for _, child := range b.children {
			if child.PseudoState("focus-within") {
				return true
			}
		}
		return false
	case "disabled":
		return b.disabled
	case "light":
		return b.app != nil && !b.app.Dark.Get()
	case "dark":
		return b.app != nil && b.app.Dark.Get()
	case "inline":
		return b.app != nil && b.app.inline
	default:
		return false
	}
}

// SetHovered updates the hover pseudo-state.
func (b *BaseWidget) SetHovered(hovered bool) {
	if b.hovered != hovered {
		b.hovered = hovered
		b.Invalidate(dirtyStyle | dirtyPaint)
	}
}

// Focused reports whether the widget has keyboard focus.
func (b *BaseWidget) Focused() bool {
	return b.focused
}

// SetFocused updates the focus pseudo-state. Focus transitions are driven
// by the app, which also delivers the Focus and Blur messages.
func (b *BaseWidget) SetFocused(focused bool) {
	if b.focused != focused {
		b.focused = focused
		b.Invalidate(dirtyStyle | dirtyPaint)
	}
}

// Disabled reports whether the widget is disabled.
func (b *BaseWidget) Disabled() bool {
	return b.disabled
}

// SetDisabled updates the disabled pseudo-state.
func (b *BaseWidget) SetDisabled(disabled bool) {
	if b.disabled != disabled {
		b.disabled = disabled
		b.Invalidate(dirtyStyle | dirtyPaint)
	}
}

func (b *BaseWidget) Focusable() bool {
	return b.focusable && !b.disabled
}

// SetFocusable controls participation in focus traversal.
func (b *BaseWidget) SetFocusable(focusable bool) {
	b.focusable = focusable
}

// Visible reports whether the widget's own display and visibility styles
// let it paint. Ancestors are not consulted.
func (b *BaseWidget) Visible() bool {
	return b.styles.Display == DisplayBlock && b.styles.Visibility == VisibilityVisible
}

// ---- Geometry and scrolling -----------------------------------------------

// Region returns the widget's region in its parent's content coordinates.
func (b *BaseWidget) Region() Region {
	return b.region
}

// SetRegion places the widget; called by the layout engine. A size change
// queues a resize message.
func (b *BaseWidget) SetRegion(region Region) {
	resized := b.region.Size() != region.Size()
	b.region = region
	if resized {
		b.invalidateCache()
		if b.mounted && b.app != nil {
			b.app.Post(b.Self(), &ResizeMessage{Size: region.Size()})
		}
	}
}

// ContentRegion returns the region available to content: the widget's
// region shrunk by border and padding, in parent content coordinates.
func (b *BaseWidget) ContentRegion() Region {
	return b.region.Shrink(b.styles.Gutter())
}

// ContentSize returns the size of the content region.
func (b *BaseWidget) ContentSize() Size {
	return b.ContentRegion().Size()
}

// ScrollbarSizes returns the bands the layout reserved for scrollbars:
// Width is the vertical bar's width, Height the horizontal bar's height.
func (b *BaseWidget) ScrollbarSizes() Size {
	return b.reservedScrollbars
}

// VirtualSize returns the size of the widget's scrollable content.
func (b *BaseWidget) VirtualSize() Size {
	return b.virtualSize
}

// SetVirtualSize records the scrollable content size.
func (b *BaseWidget) SetVirtualSize(size Size) {
	if b.virtualSize != size {
		b.virtualSize = size
		b.clampScroll()
		b.Invalidate(dirtyPaint)
	}
}

// ScrollOffset returns the current scroll position.
func (b *BaseWidget) ScrollOffset() Offset {
	return b.scrollOffset
}

// ScrollTo scrolls to the given offset, clamped to the scrollable range.
func (b *BaseWidget) ScrollTo(offset Offset) {
	b.scrollOffset = offset
	b.clampScroll()
	b.Invalidate(dirtyPaint)
	if b.app != nil {
		b.app.invalidateSpatialMap()
	}
}

// ScrollBy scrolls relative to the current position.
func (b *BaseWidget) ScrollBy(dx, dy int) {
	b.ScrollTo(Offset{b.scrollOffset.X + dx, b.scrollOffset.Y + dy})
}

func (b *BaseWidget) clampScroll() {
	content := b.ContentSize()
	maxX := max(b.virtualSize.Width-content.Width, 0)
	maxY := max(b.virtualSize.Height-content.Height, 0)
	b.scrollOffset = b.scrollOffset.Clamp(0, maxX, 0, maxY)
}

// ---- Composition and rendering defaults -------------------------------------

func (b *BaseWidget) Compose() []Widget {
	return nil
}

func (b *BaseWidget) DefaultCSS() string {
	return ""
}

func (b *BaseWidget) ScopedCSS() bool {
	return true
}

func (b *BaseWidget) ContentWidth(container int) int {
	return 0
}

func (b *BaseWidget) ContentHeight(width int) int {
	return 0
}

func (b *BaseWidget) RenderLine(y, width int) Strip {
	return BlankStrip(width, Style{})
}

// ---- Messaging ------------------------------------------------------------

// OnMessage registers the handler for a message name. Registering twice
// replaces the previous handler: dispatch is a plain table lookup.
func (b *BaseWidget) OnMessage(name string, handler MessageHandler) {
	if b.handlers == nil {
		b.handlers = map[string]MessageHandler{}
	}
	b.handlers[name] = handler
}

// Handle dispatches the message through the handler table.
func (b *BaseWidget) Handle(msg Message) bool {
	if callback, ok := msg.(*CallbackMessage); ok {
		callback.Fn()
		return true
	}
	if b.handlers == nil {
		return false
	}
	handler, ok := b.handlers[msg.MessageName()]
	if !ok {
		return false
	}
	return handler(msg)
}

// Post queues a message for this widget through the app's executor. It is
// safe to call from any goroutine and never blocks.
func (b *BaseWidget) Post(msg Message) {
	if b.app != nil {
		b.app.Post(b.Self(), msg)
		return
	}
	// Without an app the message is delivered synchronously; this keeps
	// unmounted widgets usable in isolation.
	b.Self().Handle(msg)
}

// enqueue appends a message to the widget's FIFO queue.
func (b *BaseWidget) enqueue(msg Message) {
	b.queueMu.Lock()
	b.queue = append(b.queue, msg)
	b.queueMu.Unlock()
}

// dequeue pops the next message if the widget is not busy handling one.
func (b *BaseWidget) dequeue() (Message, bool) {
	b.queueMu.Lock()
	defer b.queueMu.Unlock()
	if b.busy || len(b.queue) == 0 {
		return nil, false
	}
	msg := b.queue[0]
	b.queue = b.queue[1:]
	b.busy = true
	return msg, true
}

// release marks the current handler as finished.
func (b *BaseWidget) release() {
	b.queueMu.Lock()
	b.busy = false
	b.queueMu.Unlock()
}

// pending reports whether messages wait in the queue.
func (b *BaseWidget) pending() bool {
	b.queueMu.Lock()
	defer b.queueMu.Unlock()
	return len(b.queue) > 0 && !b.busy
}

// drainQueue discards all queued messages; used on unmount.
func (b *BaseWidget) drainQueue() {
	b.queueMu.Lock()
	b.queue = nil
	b.queueMu.Unlock()
}

// ---- Bindings and actions ---------------------------------------------------

// Bind registers a key binding on the widget. A later binding for the same
// key replaces the earlier one; the conflict is recorded as a diagnostic.
func (b *BaseWidget) Bind(binding Binding) {
	for i, existing := range b.bindings {
		if existing.Key == binding.Key {
			b.bindings[i] = binding
			if b.app != nil {
				b.app.Console().Add(DiagWarning, b.typeName,
					"binding conflict for %q, last registration wins", binding.Key)
			}
			return
		}
	}
	b.bindings = append(b.bindings, binding)
	b.Invalidate(dirtyBindings)
}

func (b *BaseWidget) Bindings() []Binding {
	return b.bindings
}

// RegisterAction makes a named action invocable on this widget.
func (b *BaseWidget) RegisterAction(name string, handler ActionHandler) {
	if b.actions == nil {
		b.actions = map[string]ActionHandler{}
	}
	b.actions[name] = handler
}

// InvokeAction runs a registered action. Returns ErrActionNotFound when
// the widget does not provide the action.
func (b *BaseWidget) InvokeAction(name string, args []any) error {
	if b.actions != nil {
		if handler, ok := b.actions[name]; ok {
			return handler(args...)
		}
	}
	return ErrActionNotFound
}

// HasAction reports whether the widget provides the named action.
func (b *BaseWidget) HasAction(name string) bool {
	_, ok := b.actions[name]
	return ok
}

// ---- Workers ----------------------------------------------------------------

// adoptWorker records a worker owned by this widget so unmount can cancel
// it.
func (b *BaseWidget) adoptWorker(worker *Worker) {
	b.workers = append(b.workers, worker)
}

// cancelWorkers cancels all workers owned by the widget.
func (b *BaseWidget) cancelWorkers() {
	for _, worker := range b.workers {
		worker.Cancel()
	}
	b.workers = nil
}

// ---- Invalidation -----------------------------------------------------------

// Invalidate marks pipeline stages dirty and wakes the app loop.
func (b *BaseWidget) Invalidate(flags dirtyFlags) {
	b.dirty |= flags
	if flags&dirtyStyle != 0 {
		b.styleRevision++
	}
	if flags&(dirtyPaint|dirtyLayout|dirtyStyle) != 0 {
		b.invalidateCache()
	}
	if b.app != nil {
		b.app.invalidate(flags)
	}
}

// Refresh requests a repaint of this widget.
func (b *BaseWidget) Refresh() {
	b.Invalidate(dirtyPaint)
}

func (b *BaseWidget) invalidateCache() {
	b.cacheLines = nil
}

// cachedLine returns the cached rendered line for the current content
// width, or renders and caches it.
func (b *BaseWidget) cachedLine(y, width int) Strip {
	if b.cacheLines == nil || b.cacheWidth != width {
		b.cacheLines = map[int]Strip{}
		b.cacheWidth = width
	}
	if strip, ok := b.cacheLines[y]; ok {
		return strip
	}
	strip := b.Self().RenderLine(y, width)
	b.cacheLines[y] = strip
	return strip
}
