// Package compositor.go combines per-widget renders into the final screen
// content. For every visible line it collects candidate widgets from the
// spatial map, computes the x-cuts where coverage changes, takes the
// topmost widget's strip for each span, blends translucent backgrounds
// bottom-up and joins the spans into one strip per line.
//
// The compositor is pure with respect to tree state: composing twice
// without intervening mutation yields identical frames. It also keeps the
// previously emitted frame to derive minimal per-line diffs.

package schirmwerk

import "sort"

// overlayLayer stacks overlay widgets above every named layer.
const overlayLayer = 1 << 20

// placement is one widget prepared for compositing: its absolute region,
// the clip window inherited from its ancestors, and its stacking position.
type placement struct {
	widget Widget
	region Region // absolute outer region on screen
	clip   Region // visible window (ancestor content intersections)
	layer  int
	order  int // paint order (pre-order traversal index)
}

func (p *placement) less(other *placement) bool {
	if p.layer != other.layer {
		return p.layer < other.layer
	}
	return p.order < other.order
}

// Frame is a fully composited screen: one strip per line, every strip
// exactly the frame width.
type Frame struct {
	Size  Size
	Lines []Strip
}

// LineChange lists the changed cell spans of one line.
type LineChange struct {
	Y     int
	Spans []Change
}

// FrameDiff is the minimal update from one frame to the next. When Full
// is set the whole frame is replaced.
type FrameDiff struct {
	Size  Size
	Lines []LineChange
	Full  bool
	Frame *Frame // the complete new frame, for full updates and appliers
}

// Compositor renders one screen's widget tree.
type Compositor struct {
	placements []*placement
	spatial    *SpatialMap
	previous   *Frame
	size       Size
}

// NewCompositor creates an empty compositor.
func NewCompositor() *Compositor {
	return &Compositor{}
}

// Reflow lays out the tree for the given screen size and rebuilds the
// spatial map. Must be called after any layout-affecting change.
func (c *Compositor) Reflow(root Widget, size Size) {
	LayoutTree(root, size)
	c.size = size
	c.placements = c.placements[:0]
	screen := Region{X: 0, Y: 0, Width: size.Width, Height: size.Height}
	order := 0
	c.arrange(root, Offset{}, screen, 0, &order)

	c.spatial = NewSpatialMap(0, 0)
	for _, p := range c.placements {
		c.spatial.Insert(p)
	}
}

// arrange records a widget's absolute placement and recurses into its
// children in stacking order.
func (c *Compositor) arrange(w Widget, origin Offset, clip Region, layer int, order *int) {
	base := w.Base()
	st := w.Styles()
	if st.Display == DisplayNone {
		return
	}

	region := base.Region().Translate(origin)
	region = constrainRegion(region, st, c.size)

	if st.Visibility == VisibilityVisible {
		c.placements = append(c.placements, &placement{
			widget: w,
			region: region,
			clip:   clip,
			layer:  layer,
			order:  *order,
		})
	}
	*order++

	children := w.Children()
	if len(children) == 0 {
		return
	}

	// Children render inside the content region, shifted by the scroll
	// offset, and are clipped to it.
	content := region.Shrink(st.Gutter())
	bars := base.ScrollbarSizes()
	content.Width = max(content.Width-bars.Width, 0)
	content.Height = max(content.Height-bars.Height, 0)
	childClip := clip.Intersection(content)
	childOrigin := content.Origin().Sub(base.ScrollOffset())

	// Stacking: children sort by their layer's index in this container's
	// layer list (unnamed layers first), overlay children above all.
	type stacked struct {
		child Widget
		layer int
	}
	ordered := make([]stacked, 0, len(children))
	for _, child := range children {
		ordered = append(ordered, stacked{child, c.childLayer(child, st, layer)})
	}
	sort.SliceStable(ordered, func(a, b int) bool {
		return ordered[a].layer < ordered[b].layer
	})
	for _, entry := range ordered {
		childClipped := childClip
		if entry.child.Styles().Overlay {
			// Overlay widgets escape the container clip.
			childClipped = Region{X: 0, Y: 0, Width: c.size.Width, Height: c.size.Height}
		}
		c.arrange(entry.child, childOrigin, childClipped, entry.layer, order)
	}
}

// childLayer resolves a child's stacking index from the container's layer
// list.
func (c *Compositor) childLayer(child Widget, containerStyles *Styles, inherited int) int {
	st := child.Styles()
	if st.Overlay {
		return overlayLayer
	}
	if st.Layer == "" {
		return inherited
	}
	for i, name := range containerStyles.Layers {
		if name == st.Layer {
			return inherited + i + 1
		}
	}
	return inherited
}

// constrainRegion nudges an overlay region back inside the screen along
// the constrained axes.
func constrainRegion(region Region, st *Styles, size Size) Region {
	if st.ConstrainX {
		if region.Right() > size.Width {
			region.X -= region.Right() - size.Width
		}
		if region.X < 0 {
			region.X = 0
		}
	}
	if st.ConstrainY {
		if region.Bottom() > size.Height {
			region.Y -= region.Bottom() - size.Height
		}
		if region.Y < 0 {
			region.Y = 0
		}
	}
	return region
}

// Render composites the frame for the current layout. The optional below
// frame shows through translucent screen backgrounds (screen stack
// opacity).
func (c *Compositor) Render(below *Frame) Frame {
	frame := Frame{Size: c.size, Lines: make([]Strip, c.size.Height)}
	for y := 0; y < c.size.Height; y++ {
		frame.Lines[y] = c.renderLine(y, below)
	}
	return frame
}

// renderLine composites one screen line.
func (c *Compositor) renderLine(y int, below *Frame) Strip {
	lineRegion := Region{X: 0, Y: y, Width: c.size.Width, Height: 1}
	var covering []*placement
	if c.spatial != nil {
		for _, p := range c.spatial.PlacementsIn(lineRegion) {
			if p.region.Intersection(p.clip).Overlaps(lineRegion) {
				covering = append(covering, p)
			}
		}
	}

	var belowLine *Strip
	if below != nil && y < len(below.Lines) {
		line := below.Lines[y]
		belowLine = &line
	}

	if len(covering) == 0 {
		if belowLine != nil {
			return belowLine.AdjustLength(c.size.Width, Style{})
		}
		return BlankStrip(c.size.Width, Style{})
	}

	// Cuts: every visible edge of a covering widget.
	cutSet := map[int]struct{}{0: {}, c.size.Width: {}}
	for _, p := range covering {
		visible := p.region.Intersection(p.clip)
		cutSet[clamp(visible.X, 0, c.size.Width)] = struct{}{}
		cutSet[clamp(visible.Right(), 0, c.size.Width)] = struct{}{}
	}
	cuts := make([]int, 0, len(cutSet))
	for cut := range cutSet {
		cuts = append(cuts, cut)
	}
	sort.Ints(cuts)

	var spans []Strip
	for i := 0; i+1 < len(cuts); i++ {
		x1, x2 := cuts[i], cuts[i+1]
		if x1 == x2 {
			continue
		}
		spans = append(spans, c.renderSpan(y, x1, x2, covering, belowLine))
	}
	return JoinStrips(spans).AdjustLength(c.size.Width, Style{})
}

// renderSpan renders the cells [x1, x2) of line y: the topmost covering
// widget's strip slice over the blended background of the widgets below.
func (c *Compositor) renderSpan(y, x1, x2 int, covering []*placement, below *Strip) Strip {
	span := Region{X: x1, Y: y, Width: x2 - x1, Height: 1}

	// Widgets covering this span, bottom to top.
	var stack []*placement
	for _, p := range covering {
		if p.region.Intersection(p.clip).ContainsRegion(span) {
			stack = append(stack, p)
		}
	}
	if len(stack) == 0 {
		if below != nil {
			return below.Crop(x1, x2)
		}
		return BlankStrip(x2-x1, Style{})
	}

	top := stack[len(stack)-1]

	// Background accumulation per the painter's algorithm: opaque
	// backgrounds reset the running color, translucent ones blend over
	// it.
	running := Transparent
	for _, p := range stack[:len(stack)-1] {
		bg := p.widget.Styles().Background
		if bg.IsOpaque() {
			running = bg
		} else if !bg.IsTransparent() {
			running = running.Blend(bg)
		}
	}

	strip := renderWidgetLine(top.widget, y-top.region.Y)
	strip = strip.Crop(x1-top.region.X, x2-top.region.X)
	strip = strip.AdjustLength(x2-x1, Style{})

	topBG := top.widget.Styles().Background
	switch {
	case !topBG.IsOpaque() && below != nil && running.IsTransparent():
		// A translucent screen: the frame below shows through, tinted
		// by the screen background; the top strip's glyphs win.
		strip = blendStripOver(below.Crop(x1, x2), strip, topBG)
	case !running.IsTransparent():
		// The strip's own (possibly translucent) backgrounds blend
		// over the accumulated background of the widgets beneath.
		strip = fillBackground(strip, running)
	}
	return strip
}

// fillBackground sets the background of segments without one and resolves
// auto foregrounds against the effective background.
func fillBackground(strip Strip, background Color) Strip {
	if background.IsTransparent() {
		return strip
	}
	segments := strip.Segments()
	filled := make([]Segment, len(segments))
	for i, segment := range segments {
		style := segment.Style
		if style.BG == nil {
			bg := background
			style.BG = &bg
		} else if !style.BG.IsOpaque() {
			bg := background.Blend(*style.BG)
			style.BG = &bg
		}
		style = style.ResolveAuto(*style.BG)
		filled[i] = Segment{Text: segment.Text, Style: style}
	}
	return NewStrip(filled...)
}

// blendStripOver renders a translucent screen over the frame below it:
// the below strip shows through, tinted by the overlay color; the top
// strip's own glyphs replace the cells where it has visible content.
func blendStripOver(base Strip, top Strip, tint Color) Strip {
	tinted := tintStrip(base, tint)
	// Where the top strip has non-space content, its cells win.
	topCells := top.cells()
	baseCells := tinted.cells()
	if len(topCells) != len(baseCells) {
		return tinted
	}
	var segments []Segment
	for i := range topCells {
		chosen := baseCells[i]
		if topCells[i].grapheme != "" && topCells[i].grapheme != " " {
			chosen = topCells[i]
		}
		if chosen.grapheme == "" {
			continue // trailing half of a wide character
		}
		segments = append(segments, Segment{Text: chosen.grapheme, Style: chosen.style})
	}
	return NewStrip(segments...).Simplify()
}

// tintStrip blends a color over every cell of a strip, foreground and
// background alike.
func tintStrip(strip Strip, tint Color) Strip {
	if tint.IsTransparent() {
		return strip
	}
	segments := strip.Segments()
	result := make([]Segment, len(segments))
	for i, segment := range segments {
		style := segment.Style
		if style.FG != nil {
			fg := style.FG.Blend(tint)
			style.FG = &fg
		}
		if style.BG != nil {
			bg := style.BG.Blend(tint)
			style.BG = &bg
		} else {
			bg := tint
			style.BG = &bg
		}
		result[i] = Segment{Text: segment.Text, Style: style}
	}
	return NewStrip(result...)
}

// WidgetAt returns the topmost visible widget at the given screen
// position, used for mouse dispatch.
func (c *Compositor) WidgetAt(position Offset) (Widget, bool) {
	if c.spatial == nil {
		return nil, false
	}
	point := Region{X: position.X, Y: position.Y, Width: 1, Height: 1}
	candidates := c.spatial.PlacementsIn(point)
	for i := len(candidates) - 1; i >= 0; i-- {
		p := candidates[i]
		if p.region.Intersection(p.clip).Contains(position) {
			return p.widget, true
		}
	}
	return nil, false
}

// PlacementOf returns the absolute region of a widget in the current
// arrangement.
func (c *Compositor) PlacementOf(w Widget) (Region, bool) {
	for _, p := range c.placements {
		if p.widget == w {
			return p.region, true
		}
	}
	return Region{}, false
}

// Update renders the current state and produces the minimal diff against
// the previously emitted frame.
func (c *Compositor) Update(below *Frame) FrameDiff {
	frame := c.Render(below)
	diff := DiffFrames(c.previous, &frame)
	c.previous = &frame
	return diff
}

// Previous returns the last emitted frame.
func (c *Compositor) Previous() *Frame {
	return c.previous
}

// DiffFrames computes the minimal per-line update between two frames. A
// nil previous frame or a size change produces a full update.
func DiffFrames(previous, next *Frame) FrameDiff {
	if previous == nil || previous.Size != next.Size {
		return FrameDiff{Size: next.Size, Full: true, Frame: next}
	}
	diff := FrameDiff{Size: next.Size, Frame: next}
	for y := 0; y < next.Size.Height; y++ {
		changes := previous.Lines[y].Changes(next.Lines[y])
		if len(changes) > 0 {
			diff.Lines = append(diff.Lines, LineChange{Y: y, Spans: changes})
		}
	}
	return diff
}

// ApplyDiff reconstructs the next frame from the previous frame and a
// diff. Drivers may use it to maintain a shadow buffer; the tests use it
// to verify diff soundness.
func ApplyDiff(previous Frame, diff FrameDiff) Frame {
	if diff.Full {
		return *diff.Frame
	}
	next := Frame{Size: previous.Size, Lines: make([]Strip, len(previous.Lines))}
	copy(next.Lines, previous.Lines)
	for _, line := range diff.Lines {
		strip := next.Lines[line.Y]
		for _, change := range line.Spans {
			head := strip.Crop(0, change.Start)
			tail := strip.Crop(change.End, strip.CellLength())
			middle := NewStrip(change.Segments...)
			strip = head.Join(middle, tail)
		}
		next.Lines[line.Y] = strip
	}
	return next
}

// FrameEqual reports whether two frames render identically.
func FrameEqual(a, b Frame) bool {
	if a.Size != b.Size || len(a.Lines) != len(b.Lines) {
		return false
	}
	for i := range a.Lines {
		if !a.Lines[i].Equal(b.Lines[i]) {
			return false
		}
	}
	return true
}
