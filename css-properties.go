// Package css-properties.go maps stylesheet property names to the fields
// of the computed Styles record. Each applier validates its value grammar;
// a failed applier leaves the previous value in place and surfaces a
// warning. Unknown properties warn for forward compatibility.

package schirmwerk

import (
	"fmt"
	"strconv"
	"strings"
)

// applyProperty applies one declaration value to the computed styles.
func applyProperty(styles *Styles, property string, tokens []Token) error {
	fields := tokenFields(tokens)
	applier, ok := propertyAppliers[property]
	if !ok {
		return fmt.Errorf("unknown property %q", property)
	}
	if err := applier(styles, fields); err != nil {
		return fmt.Errorf("property %q: %w", property, err)
	}
	return nil
}

type propertyApplier func(*Styles, []string) error

var propertyAppliers map[string]propertyApplier

func init() {
	propertyAppliers = map[string]propertyApplier{
		// Sizing
		"width":      scalarProperty(func(s *Styles, v Scalar) { s.Width = v }),
		"height":     scalarProperty(func(s *Styles, v Scalar) { s.Height = v }),
		"min-width":  scalarPtrProperty(func(s *Styles, v *Scalar) { s.MinWidth = v }),
		"min-height": scalarPtrProperty(func(s *Styles, v *Scalar) { s.MinHeight = v }),
		"max-width":  scalarPtrProperty(func(s *Styles, v *Scalar) { s.MaxWidth = v }),
		"max-height": scalarPtrProperty(func(s *Styles, v *Scalar) { s.MaxHeight = v }),
		"box-sizing": applyBoxSizing,

		// Spacing
		"margin":         spacingProperty(func(s *Styles) *Spacing { return &s.Margin }),
		"padding":        spacingProperty(func(s *Styles) *Spacing { return &s.Padding }),
		"margin-top":     spacingEdge(func(s *Styles) *int { return &s.Margin.Top }),
		"margin-right":   spacingEdge(func(s *Styles) *int { return &s.Margin.Right }),
		"margin-bottom":  spacingEdge(func(s *Styles) *int { return &s.Margin.Bottom }),
		"margin-left":    spacingEdge(func(s *Styles) *int { return &s.Margin.Left }),
		"padding-top":    spacingEdge(func(s *Styles) *int { return &s.Padding.Top }),
		"padding-right":  spacingEdge(func(s *Styles) *int { return &s.Padding.Right }),
		"padding-bottom": spacingEdge(func(s *Styles) *int { return &s.Padding.Bottom }),
		"padding-left":   spacingEdge(func(s *Styles) *int { return &s.Padding.Left }),

		// Border
		"border":        applyBorderAll,
		"border-top":    borderEdgeProperty(EdgeTop),
		"border-right":  borderEdgeProperty(EdgeRight),
		"border-bottom": borderEdgeProperty(EdgeBottom),
		"border-left":   borderEdgeProperty(EdgeLeft),
		"border-title-align": textAlignProperty(func(s *Styles, v TextAlign) {
			s.BorderTitleAlign = v
		}),
		"border-subtitle-align": textAlignProperty(func(s *Styles, v TextAlign) {
			s.BorderSubtitleAlign = v
		}),

		// Color and fills
		"background":      colorProperty(func(s *Styles, c Color) { s.Background = c }),
		"background-tint": colorProperty(func(s *Styles, c Color) { s.BackgroundTint = c }),
		"color": colorProperty(func(s *Styles, c Color) {
			s.Color = c
			s.HasColor = true
		}),
		"tint":  colorProperty(func(s *Styles, c Color) { s.Tint = c }),
		"hatch": applyHatch,

		// Layout
		"layout":       applyLayout,
		"dock":         applyDock,
		"grid-size":    applyGridSize,
		"grid-columns": scalarListProperty(func(s *Styles, v []Scalar) { s.GridColumns = v }),
		"grid-rows":    scalarListProperty(func(s *Styles, v []Scalar) { s.GridRows = v }),
		"grid-gutter":  applyGridGutter,
		"column-span":  intProperty(1, func(s *Styles, v int) { s.ColumnSpan = v }),
		"row-span":     intProperty(1, func(s *Styles, v int) { s.RowSpan = v }),

		// Alignment
		"align":            applyAlign,
		"align-horizontal": alignHProperty(func(s *Styles, v AlignH) { s.AlignHorizontal = v }),
		"align-vertical":   alignVProperty(func(s *Styles, v AlignV) { s.AlignVertical = v }),
		"content-align":    applyContentAlign,
		"content-align-horizontal": alignHProperty(func(s *Styles, v AlignH) {
			s.ContentAlignHorizontal = v
		}),
		"content-align-vertical": alignVProperty(func(s *Styles, v AlignV) {
			s.ContentAlignVertical = v
		}),
		"text-align": textAlignProperty(func(s *Styles, v TextAlign) { s.TextAlign = v }),

		// Overflow and scrolling
		"overflow":                  applyOverflowBoth,
		"overflow-x":                overflowProperty(func(s *Styles, v OverflowMode) { s.OverflowX = v }),
		"overflow-y":                overflowProperty(func(s *Styles, v OverflowMode) { s.OverflowY = v }),
		"scrollbar-size":            applyScrollbarSize,
		"scrollbar-size-vertical":   intProperty(0, func(s *Styles, v int) { s.ScrollbarSizeVertical = v }),
		"scrollbar-size-horizontal": intProperty(0, func(s *Styles, v int) { s.ScrollbarSizeHorizontal = v }),
		"scrollbar-gutter":          applyScrollbarGutter,

		// Text
		"text-style":    applyTextStyle,
		"text-wrap":     applyTextWrap,
		"text-overflow": applyTextOverflow,
		"text-opacity":  opacityProperty(func(s *Styles, v float64) { s.TextOpacity = v }),

		// Visibility
		"display":    applyDisplay,
		"visibility": applyVisibility,
		"opacity":    opacityProperty(func(s *Styles, v float64) { s.Opacity = v }),

		// Position
		"position": applyPosition,
		"offset":   applyOffset,
		"offset-x": scalarProperty(func(s *Styles, v Scalar) { s.OffsetX = v }),
		"offset-y": scalarProperty(func(s *Styles, v Scalar) { s.OffsetY = v }),

		// Layering
		"layer":     applyLayer,
		"layers":    applyLayers,
		"overlay":   applyOverlay,
		"constrain": applyConstrain,

		// Links
		"link-color":            colorProperty(func(s *Styles, c Color) { s.LinkColor = c }),
		"link-background":       colorProperty(func(s *Styles, c Color) { s.LinkBackground = c }),
		"link-style":            styleAttrProperty(func(s *Styles, v Style) { s.LinkStyle = v }),
		"link-color-hover":      colorProperty(func(s *Styles, c Color) { s.LinkHoverColor = c }),
		"link-background-hover": colorProperty(func(s *Styles, c Color) { s.LinkHoverBackground = c }),
		"link-style-hover":      styleAttrProperty(func(s *Styles, v Style) { s.LinkHoverStyle = v }),
	}
}

// ---- Value helpers --------------------------------------------------------

func oneField(fields []string) (string, error) {
	if len(fields) != 1 {
		return "", fmt.Errorf("expected a single value, got %d", len(fields))
	}
	return fields[0], nil
}

func scalarProperty(set func(*Styles, Scalar)) propertyApplier {
	return func(styles *Styles, fields []string) error {
		field, err := oneField(fields)
		if err != nil {
			return err
		}
		scalar, err := ParseScalar(field)
		if err != nil {
			return err
		}
		set(styles, scalar)
		return nil
	}
}

func scalarPtrProperty(set func(*Styles, *Scalar)) propertyApplier {
	return func(styles *Styles, fields []string) error {
		field, err := oneField(fields)
		if err != nil {
			return err
		}
		if field == "none" {
			set(styles, nil)
			return nil
		}
		scalar, err := ParseScalar(field)
		if err != nil {
			return err
		}
		set(styles, &scalar)
		return nil
	}
}

func scalarListProperty(set func(*Styles, []Scalar)) propertyApplier {
	return func(styles *Styles, fields []string) error {
		if len(fields) == 0 {
			return fmt.Errorf("expected at least one value")
		}
		scalars := make([]Scalar, len(fields))
		for i, field := range fields {
			scalar, err := ParseScalar(field)
			if err != nil {
				return err
			}
			scalars[i] = scalar
		}
		set(styles, scalars)
		return nil
	}
}

func intProperty(minimum int, set func(*Styles, int)) propertyApplier {
	return func(styles *Styles, fields []string) error {
		field, err := oneField(fields)
		if err != nil {
			return err
		}
		value, err := strconv.Atoi(field)
		if err != nil || value < minimum {
			return fmt.Errorf("invalid integer %q", field)
		}
		set(styles, value)
		return nil
	}
}

func opacityProperty(set func(*Styles, float64)) propertyApplier {
	return func(styles *Styles, fields []string) error {
		field, err := oneField(fields)
		if err != nil {
			return err
		}
		var value float64
		if strings.HasSuffix(field, "%") {
			value, err = strconv.ParseFloat(strings.TrimSuffix(field, "%"), 64)
			value /= 100
		} else {
			value, err = strconv.ParseFloat(field, 64)
		}
		if err != nil || value < 0 || value > 1 {
			return fmt.Errorf("invalid opacity %q", field)
		}
		set(styles, value)
		return nil
	}
}

func colorProperty(set func(*Styles, Color)) propertyApplier {
	return func(styles *Styles, fields []string) error {
		field, err := oneField(fields)
		if err != nil {
			return err
		}
		color, err := ParseColor(field)
		if err != nil {
			return err
		}
		set(styles, color)
		return nil
	}
}

func spacingProperty(get func(*Styles) *Spacing) propertyApplier {
	return func(styles *Styles, fields []string) error {
		if len(fields) == 0 || len(fields) > 4 {
			return fmt.Errorf("expected 1 to 4 values")
		}
		values := make([]int, len(fields))
		for i, field := range fields {
			value, err := strconv.Atoi(field)
			if err != nil || value < 0 {
				return fmt.Errorf("invalid spacing %q", field)
			}
			values[i] = value
		}
		get(styles).Set(values...)
		return nil
	}
}

func spacingEdge(get func(*Styles) *int) propertyApplier {
	return func(styles *Styles, fields []string) error {
		field, err := oneField(fields)
		if err != nil {
			return err
		}
		value, err := strconv.Atoi(field)
		if err != nil || value < 0 {
			return fmt.Errorf("invalid spacing %q", field)
		}
		*get(styles) = value
		return nil
	}
}

func parseBorderEdge(fields []string) (BorderEdge, error) {
	if len(fields) == 0 || len(fields) > 2 {
		return BorderEdge{}, fmt.Errorf("expected '<border-style> <color>'")
	}
	edge := BorderEdge{Kind: fields[0]}
	if !validBorderKind(edge.Kind) {
		return BorderEdge{}, fmt.Errorf("unknown border style %q", edge.Kind)
	}
	if edge.Kind == "none" {
		edge.Kind = ""
	}
	if len(fields) == 2 {
		color, err := ParseColor(fields[1])
		if err != nil {
			return BorderEdge{}, err
		}
		edge.Color = color
	}
	return edge, nil
}

func applyBorderAll(styles *Styles, fields []string) error {
	edge, err := parseBorderEdge(fields)
	if err != nil {
		return err
	}
	for i := range styles.Border {
		styles.Border[i] = edge
	}
	return nil
}

func borderEdgeProperty(index int) propertyApplier {
	return func(styles *Styles, fields []string) error {
		edge, err := parseBorderEdge(fields)
		if err != nil {
			return err
		}
		styles.Border[index] = edge
		return nil
	}
}

func applyBoxSizing(styles *Styles, fields []string) error {
	field, err := oneField(fields)
	if err != nil {
		return err
	}
	switch field {
	case "border-box":
		styles.BoxSizing = BorderBox
	case "content-box":
		styles.BoxSizing = ContentBox
	default:
		return fmt.Errorf("invalid box-sizing %q", field)
	}
	return nil
}

func applyHatch(styles *Styles, fields []string) error {
	if len(fields) != 2 {
		return fmt.Errorf("expected '<character> <color>'")
	}
	glyph := fields[0]
	switch glyph {
	case "left":
		glyph = "╲"
	case "right":
		glyph = "╱"
	case "cross":
		glyph = "╳"
	case "horizontal":
		glyph = "─"
	case "vertical":
		glyph = "│"
	}
	runes := []rune(glyph)
	if len(runes) != 1 {
		return fmt.Errorf("invalid hatch character %q", fields[0])
	}
	color, err := ParseColor(fields[1])
	if err != nil {
		return err
	}
	styles.Hatch = HatchStyle{Rune: runes[0], Color: color}
	return nil
}

func applyLayout(styles *Styles, fields []string) error {
	field, err := oneField(fields)
	if err != nil {
		return err
	}
	switch field {
	case "vertical":
		styles.Layout = LayoutVertical
	case "horizontal":
		styles.Layout = LayoutHorizontal
	case "grid":
		styles.Layout = LayoutGrid
	default:
		return fmt.Errorf("invalid layout %q", field)
	}
	return nil
}

func applyDock(styles *Styles, fields []string) error {
	field, err := oneField(fields)
	if err != nil {
		return err
	}
	switch field {
	case "top":
		styles.Dock = DockTop
	case "right":
		styles.Dock = DockRight
	case "bottom":
		styles.Dock = DockBottom
	case "left":
		styles.Dock = DockLeft
	case "none":
		styles.Dock = DockNone
	default:
		return fmt.Errorf("invalid dock %q", field)
	}
	return nil
}

func applyGridSize(styles *Styles, fields []string) error {
	if len(fields) != 1 && len(fields) != 2 {
		return fmt.Errorf("expected '<columns> [rows]'")
	}
	columns, err := strconv.Atoi(fields[0])
	if err != nil || columns < 1 {
		return fmt.Errorf("invalid column count %q", fields[0])
	}
	rows := 0
	if len(fields) == 2 {
		rows, err = strconv.Atoi(fields[1])
		if err != nil || rows < 1 {
			return fmt.Errorf("invalid row count %q", fields[1])
		}
	}
	styles.GridSizeColumns = columns
	styles.GridSizeRows = rows
	return nil
}

func applyGridGutter(styles *Styles, fields []string) error {
	if len(fields) != 1 && len(fields) != 2 {
		return fmt.Errorf("expected '<vertical> [horizontal]'")
	}
	vertical, err := strconv.Atoi(fields[0])
	if err != nil || vertical < 0 {
		return fmt.Errorf("invalid gutter %q", fields[0])
	}
	horizontal := vertical
	if len(fields) == 2 {
		horizontal, err = strconv.Atoi(fields[1])
		if err != nil || horizontal < 0 {
			return fmt.Errorf("invalid gutter %q", fields[1])
		}
	}
	styles.GridGutterVertical = vertical
	styles.GridGutterHorizontal = horizontal
	return nil
}

func parseAlignH(field string) (AlignH, error) {
	switch field {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenterH, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("invalid horizontal alignment %q", field)
}

func parseAlignV(field string) (AlignV, error) {
	switch field {
	case "top":
		return AlignTop, nil
	case "middle":
		return AlignMiddle, nil
	case "bottom":
		return AlignBottom, nil
	}
	return AlignTop, fmt.Errorf("invalid vertical alignment %q", field)
}

func alignHProperty(set func(*Styles, AlignH)) propertyApplier {
	return func(styles *Styles, fields []string) error {
		field, err := oneField(fields)
		if err != nil {
			return err
		}
		value, err := parseAlignH(field)
		if err != nil {
			return err
		}
		set(styles, value)
		return nil
	}
}

func alignVProperty(set func(*Styles, AlignV)) propertyApplier {
	return func(styles *Styles, fields []string) error {
		field, err := oneField(fields)
		if err != nil {
			return err
		}
		value, err := parseAlignV(field)
		if err != nil {
			return err
		}
		set(styles, value)
		return nil
	}
}

func applyAlign(styles *Styles, fields []string) error {
	if len(fields) != 2 {
		return fmt.Errorf("expected '<horizontal> <vertical>'")
	}
	h, err := parseAlignH(fields[0])
	if err != nil {
		return err
	}
	v, err := parseAlignV(fields[1])
	if err != nil {
		return err
	}
	styles.AlignHorizontal = h
	styles.AlignVertical = v
	return nil
}

func applyContentAlign(styles *Styles, fields []string) error {
	if len(fields) != 2 {
		return fmt.Errorf("expected '<horizontal> <vertical>'")
	}
	h, err := parseAlignH(fields[0])
	if err != nil {
		return err
	}
	v, err := parseAlignV(fields[1])
	if err != nil {
		return err
	}
	styles.ContentAlignHorizontal = h
	styles.ContentAlignVertical = v
	return nil
}

func textAlignProperty(set func(*Styles, TextAlign)) propertyApplier {
	return func(styles *Styles, fields []string) error {
		field, err := oneField(fields)
		if err != nil {
			return err
		}
		switch field {
		case "left", "start", "justify":
			set(styles, AlignTextLeft)
		case "center":
			set(styles, AlignTextCenter)
		case "right", "end":
			set(styles, AlignTextRight)
		default:
			return fmt.Errorf("invalid text alignment %q", field)
		}
		return nil
	}
}

func parseOverflow(field string) (OverflowMode, error) {
	switch field {
	case "hidden":
		return OverflowHiddenMode, nil
	case "auto":
		return OverflowAutoMode, nil
	case "scroll":
		return OverflowScrollMode, nil
	}
	return OverflowHiddenMode, fmt.Errorf("invalid overflow %q", field)
}

func overflowProperty(set func(*Styles, OverflowMode)) propertyApplier {
	return func(styles *Styles, fields []string) error {
		field, err := oneField(fields)
		if err != nil {
			return err
		}
		mode, err := parseOverflow(field)
		if err != nil {
			return err
		}
		set(styles, mode)
		return nil
	}
}

func applyOverflowBoth(styles *Styles, fields []string) error {
	if len(fields) != 1 && len(fields) != 2 {
		return fmt.Errorf("expected '<overflow-x> [overflow-y]'")
	}
	x, err := parseOverflow(fields[0])
	if err != nil {
		return err
	}
	y := x
	if len(fields) == 2 {
		y, err = parseOverflow(fields[1])
		if err != nil {
			return err
		}
	}
	styles.OverflowX = x
	styles.OverflowY = y
	return nil
}

func applyScrollbarSize(styles *Styles, fields []string) error {
	if len(fields) != 2 {
		return fmt.Errorf("expected '<horizontal> <vertical>'")
	}
	horizontal, err := strconv.Atoi(fields[0])
	if err != nil || horizontal < 0 {
		return fmt.Errorf("invalid scrollbar size %q", fields[0])
	}
	vertical, err := strconv.Atoi(fields[1])
	if err != nil || vertical < 0 {
		return fmt.Errorf("invalid scrollbar size %q", fields[1])
	}
	styles.ScrollbarSizeHorizontal = horizontal
	styles.ScrollbarSizeVertical = vertical
	return nil
}

func applyScrollbarGutter(styles *Styles, fields []string) error {
	field, err := oneField(fields)
	if err != nil {
		return err
	}
	switch field {
	case "auto":
		styles.ScrollbarGutter = false
	case "stable":
		styles.ScrollbarGutter = true
	default:
		return fmt.Errorf("invalid scrollbar-gutter %q", field)
	}
	return nil
}

func parseStyleAttrs(fields []string) (Style, error) {
	var style Style
	for _, field := range fields {
		if field == "none" {
			return Style{}, nil
		}
		if err := applyStyleToken(&style, field); err != nil {
			return Style{}, err
		}
	}
	return style, nil
}

func applyTextStyle(styles *Styles, fields []string) error {
	style, err := parseStyleAttrs(fields)
	if err != nil {
		return err
	}
	styles.TextStyle = style
	return nil
}

func styleAttrProperty(set func(*Styles, Style)) propertyApplier {
	return func(styles *Styles, fields []string) error {
		style, err := parseStyleAttrs(fields)
		if err != nil {
			return err
		}
		set(styles, style)
		return nil
	}
}

func applyTextWrap(styles *Styles, fields []string) error {
	field, err := oneField(fields)
	if err != nil {
		return err
	}
	switch field {
	case "word", "wrap":
		styles.TextWrap = WrapWord
	case "char":
		styles.TextWrap = WrapChar
	case "nowrap":
		styles.TextWrap = WrapNone
	default:
		return fmt.Errorf("invalid text-wrap %q", field)
	}
	return nil
}

func applyTextOverflow(styles *Styles, fields []string) error {
	field, err := oneField(fields)
	if err != nil {
		return err
	}
	switch field {
	case "fold":
		styles.TextOverflow = OverflowFold
	case "clip":
		styles.TextOverflow = OverflowClip
	case "ellipsis":
		styles.TextOverflow = OverflowEllipsis
	default:
		return fmt.Errorf("invalid text-overflow %q", field)
	}
	return nil
}

func applyDisplay(styles *Styles, fields []string) error {
	field, err := oneField(fields)
	if err != nil {
		return err
	}
	switch field {
	case "block":
		styles.Display = DisplayBlock
	case "none":
		styles.Display = DisplayNone
	default:
		return fmt.Errorf("invalid display %q", field)
	}
	return nil
}

func applyVisibility(styles *Styles, fields []string) error {
	field, err := oneField(fields)
	if err != nil {
		return err
	}
	switch field {
	case "visible":
		styles.Visibility = VisibilityVisible
	case "hidden":
		styles.Visibility = VisibilityHidden
	default:
		return fmt.Errorf("invalid visibility %q", field)
	}
	return nil
}

func applyPosition(styles *Styles, fields []string) error {
	field, err := oneField(fields)
	if err != nil {
		return err
	}
	switch field {
	case "relative":
		styles.Position = PositionRelative
	case "absolute":
		styles.Position = PositionAbsolute
	default:
		return fmt.Errorf("invalid position %q", field)
	}
	return nil
}

func applyOffset(styles *Styles, fields []string) error {
	if len(fields) != 2 {
		return fmt.Errorf("expected '<x> <y>'")
	}
	x, err := ParseScalar(fields[0])
	if err != nil {
		return err
	}
	y, err := ParseScalar(fields[1])
	if err != nil {
		return err
	}
	styles.OffsetX = x
	styles.OffsetY = y
	return nil
}

func applyLayer(styles *Styles, fields []string) error {
	field, err := oneField(fields)
	if err != nil {
		return err
	}
	styles.Layer = field
	return nil
}

func applyLayers(styles *Styles, fields []string) error {
	if len(fields) == 0 {
		return fmt.Errorf("expected at least one layer name")
	}
	styles.Layers = append([]string{}, fields...)
	return nil
}

func applyOverlay(styles *Styles, fields []string) error {
	field, err := oneField(fields)
	if err != nil {
		return err
	}
	switch field {
	case "screen":
		styles.Overlay = true
	case "none":
		styles.Overlay = false
	default:
		return fmt.Errorf("invalid overlay %q", field)
	}
	return nil
}

func applyConstrain(styles *Styles, fields []string) error {
	if len(fields) == 0 || len(fields) > 2 {
		return fmt.Errorf("expected '<x> [y]'")
	}
	parse := func(field string) (bool, error) {
		switch field {
		case "none":
			return false, nil
		case "inside", "inflect":
			return true, nil
		}
		return false, fmt.Errorf("invalid constrain %q", field)
	}
	x, err := parse(fields[0])
	if err != nil {
		return err
	}
	y := x
	if len(fields) == 2 {
		y, err = parse(fields[1])
		if err != nil {
			return err
		}
	}
	styles.ConstrainX = x
	styles.ConstrainY = y
	return nil
}
