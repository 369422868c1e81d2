// Package static.go provides the Static widget: a leaf that renders a
// Content value. It is the smallest useful widget and the workhorse of the
// test suites; richer widgets build on the same contract.

package schirmwerk

// Static displays styled content.
type Static struct {
	BaseWidget
	content   Content
	strips    []Strip
	stripsW   int
	stripsRev int
}

// NewStatic creates a static widget rendering the given markup. Malformed
// markup degrades to the raw text in a warning style.
func NewStatic(id, markup string) *Static {
	s := &Static{content: MustContent(markup)}
	s.Init(s, "Static", id)
	return s
}

// NewStaticContent creates a static widget from a prepared content value.
func NewStaticContent(id string, content Content) *Static {
	s := &Static{content: content}
	s.Init(s, "Static", id)
	return s
}

// DefaultCSS makes a static fill its container's width and sizes its height
// to its content.
func (s *Static) DefaultCSS() string {
	return `Static {
		width: 1fr;
		height: auto;
	}`
}

// Update replaces the content and repaints.
func (s *Static) Update(markup string) {
	s.content = MustContent(markup)
	s.strips = nil
	s.Invalidate(dirtyLayout | dirtyPaint)
}

// UpdateContent replaces the content with a prepared value.
func (s *Static) UpdateContent(content Content) {
	s.content = content
	s.strips = nil
	s.Invalidate(dirtyLayout | dirtyPaint)
}

// Content returns the widget's content value.
func (s *Static) Content() Content {
	return s.content
}

func (s *Static) ContentWidth(container int) int {
	return s.content.Width()
}

func (s *Static) ContentHeight(width int) int {
	return len(s.layoutContent(width))
}

func (s *Static) RenderLine(y, width int) Strip {
	lines := s.layoutContent(width)
	if y < 0 || y >= len(lines) {
		return BlankStrip(width, Style{})
	}
	return lines[y]
}

// layoutContent wraps the content at the given width, caching the result
// until the content or width changes.
func (s *Static) layoutContent(width int) []Strip {
	if s.strips == nil || s.stripsW != width || s.stripsRev != s.StyleRevision() {
		s.strips = s.content.Render(width, s.Styles().RenderOptions())
		s.stripsW = width
		s.stripsRev = s.StyleRevision()
	}
	return s.strips
}
