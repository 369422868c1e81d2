// Package schirmwerk is a rendering and layout core for full-screen
// terminal user interfaces.
//
// Applications compose a tree of widgets styled with a CSS-like language;
// the core computes each widget's region, renders widgets into styled
// line strips, composites the strips into frames and hands minimal frame
// diffs to a terminal driver. Input events flow the other way: the driver
// parses terminal input into key, mouse and resize events, which the app
// loop dispatches through per-widget message queues.
//
// # Architecture
//
// The pipeline runs once per dirty frame:
//
//	driver events -> app loop -> widget message queues -> handlers
//	-> dirty flags -> cascade (stylesheet) -> layout -> spatial map
//	-> compositor -> frame diff -> driver
//
// The building blocks, leaves first:
//
//   - geometry.go, spacing.go: integer cell rectangles and box spacing
//   - color.go, style.go: the color model and the text style record
//   - segment.go, strip.go: styled runs and single-line strips
//   - markup.go, content.go: inline markup and content layout
//   - css-*.go, stylesheet.go, styles.go: the style engine
//   - widget.go, base-widget.go, reactive.go, query.go: the widget tree
//   - scalar.go, layout.go, grid-layout.go: the layout engine
//   - spatial-map.go, render.go, compositor.go: compositing
//   - screen.go, app.go, binding.go, action.go, animator.go: the app loop
//   - driver.go, tcell-driver.go, test-driver.go: the platform boundary
//
// # Concurrency
//
// All widget handlers, the style engine, the layout engine and the
// compositor run on the single executor goroutine inside App.Run.
// Background work runs in workers (worker.go) that post messages back to
// their owning widget; the per-widget queues are the only shared
// primitive between goroutines.
//
// # A minimal application
//
//	app := schirmwerk.NewApp(schirmwerk.NewTcellDriver())
//	screen := schirmwerk.NewScreen("main",
//		schirmwerk.NewStatic("hello", "Hello, [b]world[/b]!"),
//	)
//	if err := app.Run(screen); err != nil {
//		log.Fatal(err)
//	}
package schirmwerk
