package schirmwerk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStylesheetParse(t *testing.T) {
	sheet := ParseStylesheet(`
		$accent: #ff0000;

		Static {
			color: $accent;
			width: 50%;
			padding: 1 2;
		}

		.primary, #main {
			background: blue;
		}
	`)
	require.Empty(t, sheet.Errors)
	require.Len(t, sheet.Rules, 2)
	assert.Len(t, sheet.Rules[0].Declarations, 3)
	assert.Len(t, sheet.Rules[1].Selectors, 2)
	assert.Contains(t, sheet.Variables, "accent")
}

func TestStylesheetParseRecovery(t *testing.T) {
	sheet := ParseStylesheet(`
		Broken { color:: red; }
		Static { color: lime; }
	`)
	assert.NotEmpty(t, sheet.Errors, "the malformed rule must be diagnosed")
	// The sheet still applies the good rule.
	w := NewStatic("x", "text")
	styles := sheet.ComputeStyles(w, nil)
	assert.True(t, styles.HasColor)
	assert.Equal(t, uint8(255), styles.Color.G)
}

func TestStylesheetUnknownProperty(t *testing.T) {
	sheet := ParseStylesheet(`Static { frobnicate: yes; color: red; }`)
	w := NewStatic("x", "text")
	styles := sheet.ComputeStyles(w, nil)
	assert.True(t, styles.HasColor, "known declarations in the rule still apply")
	assert.NotEmpty(t, sheet.Warnings, "unknown properties warn")
}

func TestCascadeSpecificity(t *testing.T) {
	sheet := ParseStylesheet(`
		Static { color: red; }
		.primary { color: blue; }
	`)
	w := NewStatic("x", "text")
	w.AddClass("primary")
	styles := sheet.ComputeStyles(w, nil)
	assert.Equal(t, uint8(255), styles.Color.B, "higher specificity wins")
	assert.Equal(t, uint8(0), styles.Color.R)
}

func TestCascadeSourceOrder(t *testing.T) {
	sheet := ParseStylesheet(`
		Static { color: red; }
		Static { color: blue; }
	`)
	w := NewStatic("x", "text")
	styles := sheet.ComputeStyles(w, nil)
	assert.Equal(t, uint8(255), styles.Color.B, "later rule wins at equal specificity")
}

func TestCascadeImportant(t *testing.T) {
	sheet := ParseStylesheet(`
		#x { color: red; }
		Static { color: blue !important; }
	`)
	w := NewStatic("x", "text")
	styles := sheet.ComputeStyles(w, nil)
	assert.Equal(t, uint8(255), styles.Color.B, "!important beats higher specificity")
}

// The style cascade end-to-end scenario: Button { color: red },
// .primary { color: blue }, Button.primary:hover { color: green
// !important } resolves to green on a hovered primary button.
func TestCascadeScenario(t *testing.T) {
	sheet := ParseStylesheet(`
		Button { color: red; }
		.primary { color: blue; }
		Button.primary:hover { color: green !important; }
	`)
	button := &struct{ BaseWidget }{}
	button.Init(button, "Button", "b1")
	button.AddClass("primary")
	button.SetHovered(true)

	styles := sheet.ComputeStyles(button, nil)
	assert.Equal(t, namedColors["green"], styles.Color)
}

func TestVariables(t *testing.T) {
	sheet := ParseStylesheet(`
		$base: #102030;
		Static { background: $base; }
	`)
	w := NewStatic("x", "text")
	styles := sheet.ComputeStyles(w, nil)
	assert.Equal(t, Color{R: 0x10, G: 0x20, B: 0x30, A: 1}, styles.Background)
}

func TestVariableChain(t *testing.T) {
	sheet := ParseStylesheet(`
		$one: #111111;
		$two: $one;
		Static { background: $two; }
	`)
	w := NewStatic("x", "text")
	styles := sheet.ComputeStyles(w, nil)
	assert.Equal(t, uint8(0x11), styles.Background.R)
}

func TestVariableCycle(t *testing.T) {
	sheet := ParseStylesheet(`
		$a: $b;
		$b: $a;
		Static { background: $a; }
	`)
	w := NewStatic("x", "text")
	styles := sheet.ComputeStyles(w, nil)
	assert.True(t, styles.Background.IsTransparent(), "cycles resolve to transparent")
	require.NotEmpty(t, sheet.Warnings)
}

func TestInheritance(t *testing.T) {
	sheet := ParseStylesheet(`Vertical { color: red; text-style: bold; }`)
	parent := NewVertical("p")
	child := NewStatic("c", "text")
	parent.AddChildren(child)

	parentStyles := sheet.ComputeStyles(parent, nil)
	childStyles := sheet.ComputeStyles(child, &parentStyles)
	assert.True(t, childStyles.HasColor, "color inherits")
	assert.Equal(t, uint8(255), childStyles.Color.R)
	assert.Equal(t, TriOn, childStyles.TextStyle.Bold, "text style inherits")

	// An authored value beats the inherited one.
	sheet.AddSource(`Static { color: blue; }`, "")
	childStyles = sheet.ComputeStyles(child, &parentStyles)
	assert.Equal(t, uint8(255), childStyles.Color.B)
}

func TestStyleRevisionBumps(t *testing.T) {
	w := NewStatic("x", "text")
	before := w.StyleRevision()
	w.AddClass("highlight")
	assert.Greater(t, w.StyleRevision(), before)
}

func TestPropertyParsing(t *testing.T) {
	sheet := ParseStylesheet(`
		Static {
			layout: horizontal;
			dock: top;
			margin: 1 2 3 4;
			border: round #ff0000;
			border-title-align: center;
			overflow: auto scroll;
			text-style: bold italic;
			text-wrap: nowrap;
			text-overflow: ellipsis;
			opacity: 50%;
			offset: 2 -3;
			layer: above;
			layers: below above;
			grid-size: 3 2;
			grid-columns: 1fr 2fr auto;
			grid-gutter: 1 2;
			column-span: 2;
			align: center middle;
			min-width: 10;
			max-width: 50%;
			box-sizing: content-box;
			scrollbar-size: 1 2;
			position: absolute;
			visibility: hidden;
			hatch: cross #00ff00;
		}
	`)
	require.Empty(t, sheet.Errors)
	w := NewStatic("x", "text")
	st := sheet.ComputeStyles(w, nil)

	assert.Equal(t, LayoutHorizontal, st.Layout)
	assert.Equal(t, DockTop, st.Dock)
	assert.Equal(t, Spacing{1, 2, 3, 4}, st.Margin)
	assert.Equal(t, "round", st.Border[EdgeTop].Kind)
	assert.Equal(t, uint8(255), st.Border[EdgeLeft].Color.R)
	assert.Equal(t, AlignTextCenter, st.BorderTitleAlign)
	assert.Equal(t, OverflowAutoMode, st.OverflowX)
	assert.Equal(t, OverflowScrollMode, st.OverflowY)
	assert.Equal(t, TriOn, st.TextStyle.Bold)
	assert.Equal(t, TriOn, st.TextStyle.Italic)
	assert.Equal(t, WrapNone, st.TextWrap)
	assert.Equal(t, OverflowEllipsis, st.TextOverflow)
	assert.InDelta(t, 0.5, st.Opacity, 0.001)
	assert.Equal(t, Cells(2), st.OffsetX)
	assert.Equal(t, Cells(-3), st.OffsetY)
	assert.Equal(t, "above", st.Layer)
	assert.Equal(t, []string{"below", "above"}, st.Layers)
	assert.Equal(t, 3, st.GridSizeColumns)
	assert.Equal(t, 2, st.GridSizeRows)
	assert.Len(t, st.GridColumns, 3)
	assert.Equal(t, 1, st.GridGutterVertical)
	assert.Equal(t, 2, st.GridGutterHorizontal)
	assert.Equal(t, 2, st.ColumnSpan)
	assert.Equal(t, AlignCenterH, st.AlignHorizontal)
	assert.Equal(t, AlignMiddle, st.AlignVertical)
	require.NotNil(t, st.MinWidth)
	assert.Equal(t, Cells(10), *st.MinWidth)
	require.NotNil(t, st.MaxWidth)
	assert.Equal(t, Percent(50), *st.MaxWidth)
	assert.Equal(t, ContentBox, st.BoxSizing)
	assert.Equal(t, 1, st.ScrollbarSizeHorizontal)
	assert.Equal(t, 2, st.ScrollbarSizeVertical)
	assert.Equal(t, PositionAbsolute, st.Position)
	assert.Equal(t, VisibilityHidden, st.Visibility)
	assert.Equal(t, '╳', st.Hatch.Rune)
}
