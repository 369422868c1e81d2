// Command demo is a small showcase application for the schirmwerk
// rendering core: docked header and footer, a scrollable body, style
// classes and a few key bindings.
package main

import (
	"log"

	. "github.com/tekugo/schirmwerk"
)

const styles = `
$accent: #7aa2f7;
$surface: #24283b;

Screen {
	background: #1a1b26;
}

#header {
	dock: top;
	height: 3;
	background: $surface;
	color: $accent;
	border-bottom: heavy $accent;
	content-align: center middle;
	text-style: bold;
}

#footer {
	dock: bottom;
	height: 1;
	background: $surface;
	color: #565f89;
}

.panel {
	border: round $accent;
	padding: 1 2;
	margin: 1;
	height: auto;
}

.panel:hover {
	border: round #f7768e;
}
`

func main() {
	app := NewApp(NewTcellDriver())
	app.AddCSS(styles, "demo")
	app.Bind(NewBinding("d", "app.toggle_dark", "Toggle dark mode"))

	body := NewVerticalScroll("body",
		NewStatic("intro", "Welcome to the [b]schirmwerk[/b] demo.\n"+
			"Scroll with the arrow keys, quit with [b]ctrl+q[/b]."),
	)
	for _, markup := range []string{
		"Styled [i]content[/i] flows through [u]strips[/u].",
		"Layout is [b]CSS[/b]-driven: docks, grids and fractions.",
		"The compositor only repaints cells that changed.",
	} {
		panel := NewStatic("", markup)
		panel.AddClass("panel")
		body.AddChildren(panel)
	}

	screen := NewScreen("main",
		NewStatic("header", "schirmwerk"),
		body,
		NewStatic("footer", " ctrl+q quit · tab focus · d dark"),
	)

	if err := app.Run(screen); err != nil {
		log.Fatal(err)
	}
}
