// Command banner renders a figlet banner inside a schirmwerk screen.
// Pass the text to render as arguments; defaults to the project name.
package main

import (
	"log"
	"os"
	"strings"

	"github.com/mbndr/figlet4go"
	. "github.com/tekugo/schirmwerk"
)

const styles = `
#banner {
	width: auto;
	height: auto;
	color: #9ece6a;
	text-style: bold;
}

Center {
	height: 1fr;
	align-vertical: middle;
}
`

func main() {
	text := "schirmwerk"
	if len(os.Args) > 1 {
		text = strings.Join(os.Args[1:], " ")
	}

	ascii := figlet4go.NewAsciiRender()
	rendered, err := ascii.Render(text)
	if err != nil {
		log.Fatal(err)
	}

	app := NewApp(NewTcellDriver())
	app.AddCSS(styles, "banner")

	banner := NewStaticContent("banner", NewContent(strings.TrimRight(rendered, "\n")))
	screen := NewScreen("main", NewCenter("center", banner))

	if err := app.Run(screen); err != nil {
		log.Fatal(err)
	}
}
