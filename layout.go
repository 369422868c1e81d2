// Package layout.go implements the layout engine: computing every widget's
// region from its computed styles and the container's available space.
//
// Layout proceeds per container in a fixed order: docked children first,
// each removed from the available space; then the flow pass (vertical,
// horizontal or grid) over the remaining children; then clamping,
// alignment and relative offsets. Contradictory constraints clip; laying
// out a tree is never an error.
//
// Child regions are expressed in the parent's content coordinate space
// (0,0 is the top-left cell of the parent's content region). Absolute
// screen positions are accumulated by the compositor.

package schirmwerk

import "math"

// LayoutTree computes regions for a whole tree rooted in a screen-sized
// widget. The viewport is used for vw/vh scalar resolution.
func LayoutTree(root Widget, viewport Size) {
	root.Base().SetRegion(Region{X: 0, Y: 0, Width: viewport.Width, Height: viewport.Height})
	layoutBelow(root, viewport)
}

func layoutBelow(w Widget, viewport Size) {
	arrangeChildren(w, viewport)
	for _, child := range w.Children() {
		if child.Styles().Display == DisplayNone {
			continue
		}
		layoutBelow(child, viewport)
	}
}

// arrangeChildren lays out the direct children of a container within its
// content region.
func arrangeChildren(container Widget, viewport Size) {
	base := container.Base()
	content := base.ContentSize()
	styles := container.Styles()

	var docked, flow, detached []Widget
	for _, child := range container.Children() {
		st := child.Styles()
		switch {
		case st.Display == DisplayNone:
		case st.Dock != DockNone:
			docked = append(docked, child)
		case st.Position == PositionAbsolute || st.Overlay:
			detached = append(detached, child)
		default:
			flow = append(flow, child)
		}
	}

	available := Region{X: 0, Y: 0, Width: content.Width, Height: content.Height}
	available = dockPass(docked, available, viewport)

	// Scrollbar reservation is a fixed point reached in at most two
	// passes: lay out, check which scrollbars are needed, reserve their
	// bands and lay out once more.
	reservedV, reservedH := 0, 0
	if styles.OverflowY == OverflowScrollMode || styles.ScrollbarGutter {
		reservedV = styles.ScrollbarSizeVertical
	}
	if styles.OverflowX == OverflowScrollMode {
		reservedH = styles.ScrollbarSizeHorizontal
	}
	var virtual Size
	for range 2 {
		flowRegion := NewRegion(available.X, available.Y,
			available.Width-reservedV, available.Height-reservedH)
		virtual = flowPass(container, flow, flowRegion, viewport)

		needV := reservedV
		if styles.OverflowY == OverflowAutoMode && virtual.Height > flowRegion.Height {
			needV = styles.ScrollbarSizeVertical
		}
		needH := reservedH
		if styles.OverflowX == OverflowAutoMode && virtual.Width > flowRegion.Width {
			needH = styles.ScrollbarSizeHorizontal
		}
		if needV == reservedV && needH == reservedH {
			break
		}
		reservedV, reservedH = needV, needH
	}
	base.reservedScrollbars = Size{Width: reservedV, Height: reservedH}
	base.SetVirtualSize(Size{
		Width:  max(virtual.Width, available.Width-reservedV),
		Height: max(virtual.Height, available.Height-reservedH),
	})

	for _, child := range detached {
		placeDetached(child, content, viewport)
	}
}

// dockPass pins docked children to the container edges in declaration
// order, shrinking the available region by each reserved band.
func dockPass(docked []Widget, available Region, viewport Size) Region {
	for _, child := range docked {
		st := child.Styles()
		margin := st.Margin
		space := available.Size()

		switch st.Dock {
		case DockTop, DockBottom:
			width := resolveWidth(child, space.Width-margin.Horizontal(), space, viewport)
			height := resolveHeight(child, width, space, viewport)
			band := height + margin.Vertical()
			y := available.Y + margin.Top
			if st.Dock == DockBottom {
				y = available.Bottom() - band + margin.Top
				available.Height = max(available.Height-band, 0)
			} else {
				available.Y += band
				available.Height = max(available.Height-band, 0)
			}
			child.Base().SetRegion(Region{
				X: available.X + margin.Left, Y: y,
				Width: width, Height: height,
			})
		case DockLeft, DockRight:
			height := resolveHeight(child, 0, space, viewport)
			if st.Height.IsFraction() || st.Height.IsAuto() {
				height = space.Height - margin.Vertical()
			}
			width := resolveWidth(child, space.Width-margin.Horizontal(), space, viewport)
			if st.Width.IsFraction() {
				width = autoWidth(child, space.Width, viewport)
			}
			band := width + margin.Horizontal()
			x := available.X + margin.Left
			if st.Dock == DockRight {
				x = available.Right() - band + margin.Left
				available.Width = max(available.Width-band, 0)
			} else {
				available.X += band
				available.Width = max(available.Width-band, 0)
			}
			child.Base().SetRegion(Region{
				X: x, Y: available.Y + margin.Top,
				Width: width, Height: height,
			})
		}
	}
	return available
}

// flowPass arranges the in-flow children and returns the virtual size of
// the arranged content.
func flowPass(container Widget, flow []Widget, region Region, viewport Size) Size {
	if len(flow) == 0 {
		return region.Size()
	}
	switch container.Styles().Layout {
	case LayoutHorizontal:
		return flowHorizontal(container, flow, region, viewport)
	case LayoutGrid:
		return flowGrid(container, flow, region, viewport)
	default:
		return flowVertical(container, flow, region, viewport)
	}
}

// flowVertical stacks children top to bottom. Fraction heights share the
// space left by fixed and auto children; the rounding remainder goes to
// the last fraction child so the space is exactly accounted for.
func flowVertical(container Widget, flow []Widget, region Region, viewport Size) Size {
	space := region.Size()
	styles := container.Styles()

	widths := make([]int, len(flow))
	heights := make([]int, len(flow))

	// First pass: widths, fixed heights and the fraction total.
	fixed := 0
	fracSum := 0.0
	lastFrac := -1
	for i, child := range flow {
		st := child.Styles()
		widths[i] = resolveWidth(child, space.Width-st.Margin.Horizontal(), space, viewport)
		if st.Height.IsFraction() {
			fracSum += st.Height.Value
			lastFrac = i
			fixed += st.Margin.Vertical()
			continue
		}
		heights[i] = resolveHeight(child, widths[i], space, viewport)
		fixed += heights[i] + st.Margin.Vertical()
	}

	// Second pass: distribute the remaining space over fractions.
	remaining := max(space.Height-fixed, 0)
	distributed := 0
	for i, child := range flow {
		st := child.Styles()
		if !st.Height.IsFraction() {
			continue
		}
		var share int
		if i == lastFrac {
			share = remaining - distributed
		} else {
			share = int(math.Round(st.Height.Value / fracSum * float64(remaining)))
			distributed += share
		}
		heights[i] = clampAxis(share, st.MinHeight, st.MaxHeight, space, viewport, false)
	}

	// Placement.
	contentHeight := 0
	for i, child := range flow {
		st := child.Styles()
		contentHeight += heights[i] + st.Margin.Vertical()
	}
	y := region.Y + alignShift(space.Height-contentHeight, alignVFactor(styles.AlignVertical))
	maxRight := 0
	for i, child := range flow {
		st := child.Styles()
		x := region.X + st.Margin.Left +
			alignShift(space.Width-widths[i]-st.Margin.Horizontal(), alignHFactor(styles.AlignHorizontal))
		placed := Region{X: x, Y: y + st.Margin.Top, Width: widths[i], Height: heights[i]}
		placed = applyRelativeOffset(child, placed, space, viewport)
		child.Base().SetRegion(placed)
		y += heights[i] + st.Margin.Vertical()
		maxRight = max(maxRight, placed.Right())
	}
	return Size{Width: max(maxRight-region.X, 0), Height: max(y-region.Y, 0)}
}

// flowHorizontal stacks children left to right, mirroring flowVertical.
func flowHorizontal(container Widget, flow []Widget, region Region, viewport Size) Size {
	space := region.Size()
	styles := container.Styles()

	widths := make([]int, len(flow))
	heights := make([]int, len(flow))

	fixed := 0
	fracSum := 0.0
	lastFrac := -1
	for i, child := range flow {
		st := child.Styles()
		if st.Width.IsFraction() {
			fracSum += st.Width.Value
			lastFrac = i
			fixed += st.Margin.Horizontal()
			continue
		}
		widths[i] = resolveWidth(child, space.Width-st.Margin.Horizontal(), space, viewport)
		fixed += widths[i] + st.Margin.Horizontal()
	}

	remaining := max(space.Width-fixed, 0)
	distributed := 0
	for i, child := range flow {
		st := child.Styles()
		if !st.Width.IsFraction() {
			continue
		}
		var share int
		if i == lastFrac {
			share = remaining - distributed
		} else {
			share = int(math.Round(st.Width.Value / fracSum * float64(remaining)))
			distributed += share
		}
		widths[i] = clampAxis(share, st.MinWidth, st.MaxWidth, space, viewport, true)
	}

	for i, child := range flow {
		st := child.Styles()
		if st.Height.IsFraction() {
			heights[i] = clampAxis(space.Height-st.Margin.Vertical(),
				st.MinHeight, st.MaxHeight, space, viewport, false)
		} else {
			heights[i] = resolveHeight(child, widths[i], space, viewport)
		}
	}

	contentWidth := 0
	for i, child := range flow {
		contentWidth += widths[i] + child.Styles().Margin.Horizontal()
	}
	x := region.X + alignShift(space.Width-contentWidth, alignHFactor(styles.AlignHorizontal))
	maxBottom := 0
	for i, child := range flow {
		st := child.Styles()
		y := region.Y + st.Margin.Top +
			alignShift(space.Height-heights[i]-st.Margin.Vertical(), alignVFactor(styles.AlignVertical))
		placed := Region{X: x + st.Margin.Left, Y: y, Width: widths[i], Height: heights[i]}
		placed = applyRelativeOffset(child, placed, space, viewport)
		child.Base().SetRegion(placed)
		x += widths[i] + st.Margin.Horizontal()
		maxBottom = max(maxBottom, placed.Bottom())
	}
	return Size{Width: max(x-region.X, 0), Height: max(maxBottom-region.Y, 0)}
}

// placeDetached positions an absolutely positioned or overlay child. The
// child takes its preferred size and sits at its offset within the
// container's content region.
func placeDetached(child Widget, content Size, viewport Size) {
	st := child.Styles()
	width := resolveWidth(child, content.Width-st.Margin.Horizontal(), content, viewport)
	if st.Width.IsFraction() {
		width = autoWidth(child, content.Width, viewport)
	}
	height := resolveHeight(child, width, content, viewport)
	if st.Height.IsFraction() {
		height = autoHeight(child, width, viewport)
	}
	x, _ := st.OffsetX.Resolve(content, viewport, true)
	y, _ := st.OffsetY.Resolve(content, viewport, false)
	child.Base().SetRegion(Region{
		X: x + st.Margin.Left, Y: y + st.Margin.Top,
		Width: width, Height: height,
	})
}

// applyRelativeOffset shifts a placed region by the widget's offset
// property when positioned relatively.
func applyRelativeOffset(child Widget, placed Region, space Size, viewport Size) Region {
	st := child.Styles()
	if st.Position != PositionRelative {
		return placed
	}
	dx, _ := st.OffsetX.Resolve(space, viewport, true)
	dy, _ := st.OffsetY.Resolve(space, viewport, false)
	return placed.Translate(Offset{X: dx, Y: dy})
}

// ---- Axis resolution ------------------------------------------------------

// resolveWidth computes a child's width in cells. Fraction widths resolve
// to the full available width: on the cross axis each child has the
// remaining space to itself. The returned width is the widget's outer
// width (border-box).
func resolveWidth(child Widget, available int, container Size, viewport Size) int {
	st := child.Styles()
	var width int
	switch {
	case st.Width.IsAuto():
		width = autoWidth(child, available, viewport)
	case st.Width.IsFraction():
		width = available
	default:
		width, _ = st.Width.Resolve(container, viewport, true)
		if st.BoxSizing == ContentBox {
			width += st.Gutter().Horizontal()
		}
	}
	return clampAxis(width, st.MinWidth, st.MaxWidth, container, viewport, true)
}

// resolveHeight computes a child's height in cells given its width.
// Fraction heights are resolved by the flow pass; here they fall back to
// the content height.
func resolveHeight(child Widget, width int, container Size, viewport Size) int {
	st := child.Styles()
	var height int
	switch {
	case st.Height.IsAuto(), st.Height.IsFraction():
		height = autoHeight(child, width, viewport)
	default:
		height, _ = st.Height.Resolve(container, viewport, false)
		if st.BoxSizing == ContentBox {
			height += st.Gutter().Vertical()
		}
	}
	return clampAxis(height, st.MinHeight, st.MaxHeight, container, viewport, false)
}

// autoWidth returns the preferred outer width of a widget.
func autoWidth(child Widget, available int, viewport Size) int {
	st := child.Styles()
	gutter := st.Gutter()
	inner := available - gutter.Horizontal()

	children := displayedChildren(child)
	if len(children) == 0 {
		return child.ContentWidth(max(inner, 0)) + gutter.Horizontal()
	}

	width := 0
	switch st.Layout {
	case LayoutHorizontal:
		for _, c := range children {
			width += preferredOuterWidth(c, inner, viewport) + c.Styles().Margin.Horizontal()
		}
	default:
		for _, c := range children {
			width = max(width, preferredOuterWidth(c, inner, viewport)+c.Styles().Margin.Horizontal())
		}
	}
	return width + gutter.Horizontal()
}

// preferredOuterWidth is resolveWidth with fractions treated as auto, used
// for intrinsic sizing where no distributable space exists yet.
func preferredOuterWidth(child Widget, available int, viewport Size) int {
	st := child.Styles()
	if st.Width.IsFraction() {
		return clampAxis(autoWidth(child, available, viewport),
			st.MinWidth, st.MaxWidth, Size{Width: available}, viewport, true)
	}
	return resolveWidth(child, available, Size{Width: available}, viewport)
}

// autoHeight returns the preferred outer height of a widget laid out at
// the given outer width.
func autoHeight(child Widget, width int, viewport Size) int {
	st := child.Styles()
	gutter := st.Gutter()
	inner := max(width-gutter.Horizontal(), 0)

	children := displayedChildren(child)
	if len(children) == 0 {
		return child.ContentHeight(inner) + gutter.Vertical()
	}

	height := 0
	switch st.Layout {
	case LayoutHorizontal:
		for _, c := range children {
			height = max(height, preferredOuterHeight(c, inner, viewport)+c.Styles().Margin.Vertical())
		}
	default:
		for _, c := range children {
			height += preferredOuterHeight(c, inner, viewport) + c.Styles().Margin.Vertical()
		}
	}
	return height + gutter.Vertical()
}

func preferredOuterHeight(child Widget, width int, viewport Size) int {
	st := child.Styles()
	if st.Height.IsFraction() {
		return clampAxis(autoHeight(child, width, viewport),
			st.MinHeight, st.MaxHeight, Size{Width: width}, viewport, false)
	}
	outer := preferredOuterWidth(child, width, viewport)
	return resolveHeight(child, min(outer, width), Size{Width: width}, viewport)
}

// clampAxis applies min/max constraints to a computed dimension.
func clampAxis(value int, minimum, maximum *Scalar, container Size, viewport Size, horizontal bool) int {
	if minimum != nil {
		if bound, ok := minimum.Resolve(container, viewport, horizontal); ok {
			value = max(value, bound)
		}
	}
	if maximum != nil {
		if bound, ok := maximum.Resolve(container, viewport, horizontal); ok {
			value = min(value, bound)
		}
	}
	return max(value, 0)
}

// alignShift returns the leading gap for a remaining space and an
// alignment factor of 0 (start), 1 (center) or 2 (end).
func alignShift(space, factor int) int {
	if space <= 0 || factor == 0 {
		return 0
	}
	return space * factor / 2
}

func alignHFactor(a AlignH) int {
	switch a {
	case AlignCenterH:
		return 1
	case AlignRight:
		return 2
	}
	return 0
}

func alignVFactor(a AlignV) int {
	switch a {
	case AlignMiddle:
		return 1
	case AlignBottom:
		return 2
	}
	return 0
}

func displayedChildren(w Widget) []Widget {
	var result []Widget
	for _, child := range w.Children() {
		st := child.Styles()
		if st.Display == DisplayNone || st.Dock != DockNone ||
			st.Position == PositionAbsolute || st.Overlay {
			continue
		}
		result = append(result, child)
	}
	return result
}
