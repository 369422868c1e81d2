// Package containers.go provides the thin layout containers the core
// ships: plain vertical/horizontal stacks, their scrollable variants and
// the centering helpers. Their layout comes from their default CSS; the
// scrollable variants also handle scroll keys (and VerticalScroll the
// mouse wheel).

package schirmwerk

// Vertical stacks its children top to bottom.
type Vertical struct {
	BaseWidget
}

// NewVertical creates a vertical stack container.
func NewVertical(id string, children ...Widget) *Vertical {
	c := &Vertical{}
	c.Init(c, "Vertical", id)
	c.AddChildren(children...)
	return c
}

func (*Vertical) DefaultCSS() string {
	return `Vertical {
		layout: vertical;
		width: 1fr;
		height: 1fr;
	}`
}

// Horizontal stacks its children left to right.
type Horizontal struct {
	BaseWidget
}

// NewHorizontal creates a horizontal stack container.
func NewHorizontal(id string, children ...Widget) *Horizontal {
	c := &Horizontal{}
	c.Init(c, "Horizontal", id)
	c.AddChildren(children...)
	return c
}

func (*Horizontal) DefaultCSS() string {
	return `Horizontal {
		layout: horizontal;
		width: 1fr;
		height: 1fr;
	}`
}

// VerticalScroll is a vertical stack that scrolls overflowing content.
type VerticalScroll struct {
	BaseWidget
}

// NewVerticalScroll creates a scrollable vertical container.
func NewVerticalScroll(id string, children ...Widget) *VerticalScroll {
	c := &VerticalScroll{}
	c.Init(c, "VerticalScroll", id)
	c.AddChildren(children...)
	c.SetFocusable(true)
	c.OnMessage("key", c.onKey)
	c.OnMessage("mouse", c.onMouse)
	return c
}

func (*VerticalScroll) DefaultCSS() string {
	return `VerticalScroll {
		layout: vertical;
		width: 1fr;
		height: 1fr;
		overflow-y: auto;
	}`
}

func (c *VerticalScroll) onKey(msg Message) bool {
	key := msg.(*KeyMessage)
	switch key.Key {
	case "up":
		c.ScrollBy(0, -1)
	case "down":
		c.ScrollBy(0, 1)
	case "pageup":
		c.ScrollBy(0, -c.ContentSize().Height)
	case "pagedown":
		c.ScrollBy(0, c.ContentSize().Height)
	case "home":
		c.ScrollTo(Offset{})
	case "end":
		c.ScrollTo(Offset{Y: c.VirtualSize().Height})
	default:
		return false
	}
	return true
}

func (c *VerticalScroll) onMouse(msg Message) bool {
	mouse := msg.(*MouseMessage)
	switch mouse.Kind {
	case MouseScrollUp:
		c.ScrollBy(0, -3)
	case MouseScrollDown:
		c.ScrollBy(0, 3)
	default:
		return false
	}
	return true
}

// HorizontalScroll is a horizontal stack that scrolls overflowing
// content.
type HorizontalScroll struct {
	BaseWidget
}

// NewHorizontalScroll creates a scrollable horizontal container.
func NewHorizontalScroll(id string, children ...Widget) *HorizontalScroll {
	c := &HorizontalScroll{}
	c.Init(c, "HorizontalScroll", id)
	c.AddChildren(children...)
	c.SetFocusable(true)
	c.OnMessage("key", c.onKey)
	return c
}

func (*HorizontalScroll) DefaultCSS() string {
	return `HorizontalScroll {
		layout: horizontal;
		width: 1fr;
		height: 1fr;
		overflow-x: auto;
	}`
}

func (c *HorizontalScroll) onKey(msg Message) bool {
	key := msg.(*KeyMessage)
	switch key.Key {
	case "left":
		c.ScrollBy(-1, 0)
	case "right":
		c.ScrollBy(1, 0)
	default:
		return false
	}
	return true
}

// Center centers its children horizontally.
type Center struct {
	BaseWidget
}

// NewCenter creates a horizontally centering container.
func NewCenter(id string, children ...Widget) *Center {
	c := &Center{}
	c.Init(c, "Center", id)
	c.AddChildren(children...)
	return c
}

func (*Center) DefaultCSS() string {
	return `Center {
		layout: vertical;
		width: 1fr;
		height: auto;
		align-horizontal: center;
	}`
}

// Middle centers its children vertically.
type Middle struct {
	BaseWidget
}

// NewMiddle creates a vertically centering container.
func NewMiddle(id string, children ...Widget) *Middle {
	c := &Middle{}
	c.Init(c, "Middle", id)
	c.AddChildren(children...)
	return c
}

func (*Middle) DefaultCSS() string {
	return `Middle {
		layout: vertical;
		width: 1fr;
		height: 1fr;
		align-vertical: middle;
	}`
}
