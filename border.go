package schirmwerk

// BorderRunes holds the eight characters used to draw one border style.
type BorderRunes struct {
	TopLeft, Top, TopRight          rune
	Left, Right                     rune
	BottomLeft, Bottom, BottomRight rune
}

// borderRunes is the registry of border styles recognized by the border
// properties. "hidden" and "blank" reserve the border band without drawing
// visible characters; "none" takes no space at all.
var borderRunes = map[string]BorderRunes{
	"solid": {
		TopLeft: '┌', Top: '─', TopRight: '┐',
		Left: '│', Right: '│',
		BottomLeft: '└', Bottom: '─', BottomRight: '┘',
	},
	"round": {
		TopLeft: '╭', Top: '─', TopRight: '╮',
		Left: '│', Right: '│',
		BottomLeft: '╰', Bottom: '─', BottomRight: '╯',
	},
	"heavy": {
		TopLeft: '┏', Top: '━', TopRight: '┓',
		Left: '┃', Right: '┃',
		BottomLeft: '┗', Bottom: '━', BottomRight: '┛',
	},
	"double": {
		TopLeft: '╔', Top: '═', TopRight: '╗',
		Left: '║', Right: '║',
		BottomLeft: '╚', Bottom: '═', BottomRight: '╝',
	},
	"dashed": {
		TopLeft: '┌', Top: '╌', TopRight: '┐',
		Left: '╎', Right: '╎',
		BottomLeft: '└', Bottom: '╌', BottomRight: '┘',
	},
	"ascii": {
		TopLeft: '+', Top: '-', TopRight: '+',
		Left: '|', Right: '|',
		BottomLeft: '+', Bottom: '-', BottomRight: '+',
	},
	"hidden": {
		TopLeft: ' ', Top: ' ', TopRight: ' ',
		Left: ' ', Right: ' ',
		BottomLeft: ' ', Bottom: ' ', BottomRight: ' ',
	},
	"blank": {
		TopLeft: ' ', Top: ' ', TopRight: ' ',
		Left: ' ', Right: ' ',
		BottomLeft: ' ', Bottom: ' ', BottomRight: ' ',
	},
}

// BorderEdge is the computed border for one side of a widget.
type BorderEdge struct {
	Kind  string // "" or "none" for no border
	Color Color
}

// TakesSpace reports whether the edge reserves a one-cell band.
func (e BorderEdge) TakesSpace() bool {
	return e.Kind != "" && e.Kind != "none"
}

// validBorderKind reports whether the kind names a known border style.
func validBorderKind(kind string) bool {
	if kind == "" || kind == "none" {
		return true
	}
	_, ok := borderRunes[kind]
	return ok
}
