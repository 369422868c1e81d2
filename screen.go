// Package screen.go implements the Screen: a top-level container in the
// app's screen stack. The top screen is active and receives input; lower
// screens are frozen but still composited as background when the top
// screen's background is translucent.

package schirmwerk

// Screen is the root widget of one layer in the screen stack.
type Screen struct {
	BaseWidget
	compositor *Compositor
	focused    Widget
	requester  Widget // receives the DismissMessage
}

// NewScreen creates a screen with the given children.
func NewScreen(id string, children ...Widget) *Screen {
	s := &Screen{compositor: NewCompositor()}
	s.Init(s, "Screen", id)
	s.AddChildren(children...)
	return s
}

// DefaultCSS styles the screen as an opaque vertical container filling
// the viewport.
func (s *Screen) DefaultCSS() string {
	return `Screen {
		layout: vertical;
		width: 100%;
		height: 100%;
		background: #1e1e1e;
		color: #e0e0e0;
	}`
}

// Compositor returns the screen's compositor.
func (s *Screen) Compositor() *Compositor {
	return s.compositor
}

// Focused returns the widget holding keyboard focus on this screen.
func (s *Screen) Focused() Widget {
	return s.focused
}

// SetFocus moves focus to the widget, firing Blur on the old widget and
// Focus on the new one. Passing nil clears focus.
func (s *Screen) SetFocus(w Widget) {
	if s.focused == w {
		return
	}
	if s.focused != nil {
		s.focused.Base().SetFocused(false)
		s.focused.Base().Post(&BlurMessage{})
	}
	s.focused = w
	if w != nil {
		w.Base().SetFocused(true)
		w.Base().Post(&FocusMessage{})
	}
}

// focusables returns the screen's focusable widgets in tree order.
func (s *Screen) focusables() []Widget {
	var result []Widget
	Traverse(s, func(w Widget) {
		if w != Widget(s) && w.Focusable() && w.Styles().Display == DisplayBlock {
			result = append(result, w)
		}
	})
	return result
}

// FocusNext moves focus to the next focusable widget in tree order,
// wrapping at the end.
func (s *Screen) FocusNext() {
	s.moveFocus(1)
}

// FocusPrevious moves focus to the previous focusable widget in tree
// order, wrapping at the start.
func (s *Screen) FocusPrevious() {
	s.moveFocus(-1)
}

func (s *Screen) moveFocus(direction int) {
	candidates := s.focusables()
	if len(candidates) == 0 {
		s.SetFocus(nil)
		return
	}
	index := -1
	for i, w := range candidates {
		if w == s.focused {
			index = i
			break
		}
	}
	if index < 0 {
		if direction > 0 {
			s.SetFocus(candidates[0])
		} else {
			s.SetFocus(candidates[len(candidates)-1])
		}
		return
	}
	next := (index + direction + len(candidates)) % len(candidates)
	s.SetFocus(candidates[next])
}

// Dismiss pops this screen from the stack and delivers the value to the
// widget that pushed it.
func (s *Screen) Dismiss(value any) {
	if app := s.App(); app != nil {
		app.dismissScreen(s, value)
	}
}
