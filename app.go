// Package app.go implements the application loop: the screen stack, the
// message executor, input dispatch, the style/layout/composite pipeline
// and frame scheduling. Everything that touches the widget tree runs on
// the single executor goroutine inside Run; other goroutines communicate
// through the thread-safe message queues only.

package schirmwerk

import (
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"
)

// frameInterval is the target frame cadence (~60 Hz).
const frameInterval = time.Second / 60

// messageBatch bounds how many messages one widget processes per tick so
// a chatty widget cannot starve the others.
const messageBatch = 8

// App owns the screen stack, drives the frame loop and dispatches input.
type App struct {
	driver     Driver
	console    *Console
	stylesheet *Stylesheet
	animator   *Animator
	screens    []*Screen

	// Dark switches the :dark/:light pseudo-classes and restyles.
	Dark Reactive[bool]

	inline bool
	size   Size
	title  string

	actions  map[string]ActionHandler
	bindings []Binding

	compiledCSS map[string]bool
	widgetCSS   []cssSource
	cssSources  []cssSource

	wake chan struct{}
	quit chan struct{}

	pendingMu sync.Mutex
	pending   []Widget
	queued    map[Widget]bool

	dirtyMu sync.Mutex
	dirty   dirtyFlags

	previous *Frame
	hovered  Widget
	running   bool
	errPolicy bool // abort on handler panics when true
}

// SetAbortOnPanic selects the root error policy: when enabled, a panic in
// a message handler terminates the app instead of degrading to a
// diagnostic.
func (app *App) SetAbortOnPanic(abort bool) {
	app.errPolicy = abort
}

// NewApp creates an application bound to a driver.
func NewApp(driver Driver) *App {
	app := &App{
		driver:      driver,
		console:     NewConsole(256),
		stylesheet:  NewStylesheet(),
		animator:    NewAnimator(nil),
		actions:     map[string]ActionHandler{},
		compiledCSS: map[string]bool{},
		wake:        make(chan struct{}, 1),
		quit:        make(chan struct{}),
		queued:      map[Widget]bool{},
		bindings:    defaultBindings(),
	}
	app.Dark = NewReactive[bool](nil, true, 0)
	app.Dark.Watch(func(_, _ bool) {
		app.invalidate(dirtyStyle | dirtyLayout | dirtyPaint)
	})
	app.registerBuiltinActions()
	return app
}

// Console returns the diagnostic console.
func (app *App) Console() *Console {
	return app.console
}

// Stylesheet returns the app's merged stylesheet.
func (app *App) Stylesheet() *Stylesheet {
	return app.stylesheet
}

// Animator returns the frame scheduler.
func (app *App) Animator() *Animator {
	return app.animator
}

// Driver returns the platform driver.
func (app *App) Driver() Driver {
	return app.driver
}

// SetInline switches the driver to inline mode with the given band
// height. Must be called before Run; enables the :inline pseudo-class.
func (app *App) SetInline(height int) error {
	if err := app.driver.InlineMode(height); err != nil {
		return err
	}
	app.inline = height > 0
	app.invalidate(dirtyStyle | dirtyLayout | dirtyPaint)
	return nil
}

// SetTitle sets the terminal title.
func (app *App) SetTitle(title string) {
	app.title = title
	app.driver.SetTitle(title)
}

// cssSource is one tracked stylesheet source, so file reloads can rebuild
// the merged sheet.
type cssSource struct {
	path   string // file path, or type name for widget default CSS
	source string
	scoped bool // scope selectors to the type named in path
}

// AddCSS parses stylesheet source into the app's sheet.
func (app *App) AddCSS(source, path string) {
	app.cssSources = append(app.cssSources, cssSource{path: path, source: source})
	sheet := NewStylesheet()
	sheet.AddSource(source, path)
	app.stylesheet.Merge(sheet)
	app.reportCSSIssues()
	app.invalidate(dirtyStyle | dirtyLayout | dirtyPaint)
}

// SetFileCSS replaces (or adds) the stylesheet loaded from a file and
// rebuilds the merged sheet. The loader calls this on hot reload.
func (app *App) SetFileCSS(path, source string) {
	replaced := false
	for i := range app.cssSources {
		if app.cssSources[i].path == path {
			app.cssSources[i].source = source
			replaced = true
			break
		}
	}
	if !replaced {
		app.cssSources = append(app.cssSources, cssSource{path: path, source: source})
	}
	app.rebuildStylesheet()
}

// rebuildStylesheet reconstructs the merged sheet from the widget default
// CSS and every tracked source, in registration order.
func (app *App) rebuildStylesheet() {
	sheet := NewStylesheet()
	for _, entry := range app.widgetCSS {
		parsed := ParseStylesheet(entry.source)
		if entry.scoped {
			scopeStylesheet(parsed, entry.path)
		}
		sheet.Merge(parsed)
	}
	for _, entry := range app.cssSources {
		parsed := NewStylesheet()
		parsed.AddSource(entry.source, entry.path)
		sheet.Merge(parsed)
	}
	app.stylesheet = sheet
	app.reportCSSIssues()
	app.invalidate(dirtyStyle | dirtyLayout | dirtyPaint)
}

func (app *App) reportCSSIssues() {
	for _, err := range app.stylesheet.Errors {
		app.console.Add(DiagError, "css", "%v", err)
	}
	app.stylesheet.Errors = nil
	for _, warning := range app.stylesheet.Warnings {
		app.console.Add(DiagWarning, "css", "%s", warning)
	}
	app.stylesheet.Warnings = nil
}

// Bind registers an app-level key binding.
func (app *App) Bind(binding Binding) {
	binding.Key = NormalizeKey(binding.Key)
	for i, existing := range app.bindings {
		if existing.Key == binding.Key {
			app.bindings[i] = binding
			app.console.Add(DiagWarning, "app",
				"binding conflict for %q, last registration wins", binding.Key)
			return
		}
	}
	app.bindings = append(app.bindings, binding)
}

// RegisterAction adds an app-namespace action.
func (app *App) RegisterAction(name string, handler ActionHandler) {
	app.actions[name] = handler
}

func (app *App) registerBuiltinActions() {
	app.RegisterAction("quit", func(...any) error {
		app.Quit()
		return nil
	})
	app.RegisterAction("focus_next", func(...any) error {
		if screen := app.TopScreen(); screen != nil {
			screen.FocusNext()
		}
		return nil
	})
	app.RegisterAction("focus_previous", func(...any) error {
		if screen := app.TopScreen(); screen != nil {
			screen.FocusPrevious()
		}
		return nil
	})
	app.RegisterAction("bell", func(...any) error {
		app.driver.Bell()
		return nil
	})
	app.RegisterAction("pop_screen", func(...any) error {
		app.PopScreen()
		return nil
	})
	app.RegisterAction("toggle_dark", func(...any) error {
		app.Dark.Set(!app.Dark.Get())
		return nil
	})
}

// ---- Screen stack -----------------------------------------------------------

// TopScreen returns the active screen, or nil with an empty stack.
func (app *App) TopScreen() *Screen {
	if len(app.screens) == 0 {
		return nil
	}
	return app.screens[len(app.screens)-1]
}

// PushScreen makes the screen the active top of the stack. The requester,
// if not nil, receives the DismissMessage when the screen is dismissed.
func (app *App) PushScreen(screen *Screen, requester Widget) {
	screen.requester = requester
	app.screens = append(app.screens, screen)
	if app.running {
		app.mountTree(screen, nil)
	}
	app.invalidate(dirtyStyle | dirtyLayout | dirtyPaint)
}

// PopScreen removes the top screen. The base screen cannot be popped.
func (app *App) PopScreen() {
	if len(app.screens) <= 1 {
		return
	}
	top := app.screens[len(app.screens)-1]
	app.screens = app.screens[:len(app.screens)-1]
	app.unmountTree(top)
	app.invalidate(dirtyLayout | dirtyPaint)
}

// SwitchScreen replaces the top screen.
func (app *App) SwitchScreen(screen *Screen) {
	if len(app.screens) > 0 {
		top := app.screens[len(app.screens)-1]
		app.screens = app.screens[:len(app.screens)-1]
		app.unmountTree(top)
	}
	app.PushScreen(screen, nil)
}

// dismissScreen pops the screen and delivers its result value.
func (app *App) dismissScreen(screen *Screen, value any) {
	requester := screen.requester
	for i, s := range app.screens {
		if s == screen {
			app.screens = append(app.screens[:i], app.screens[i+1:]...)
			app.unmountTree(screen)
			break
		}
	}
	if requester != nil {
		requester.Base().Post(&DismissMessage{Screen: screen, Value: value})
	}
	app.invalidate(dirtyLayout | dirtyPaint)
}

// ---- Mounting ---------------------------------------------------------------

// mountTree mounts a widget and its composed subtree, pre-order. A panic
// during composition records a MountError and drops the widget's children;
// the widget itself stays in the tree and is mounted without them. It is
// not replaced by a placeholder.
func (app *App) mountTree(w Widget, parent Widget) {
	base := w.Base()
	base.app = app
	if parent != nil {
		base.SetParent(parent)
	}
	app.compileWidgetCSS(w)

	composed := func() (children []Widget) {
		defer func() {
			if r := recover(); r != nil {
				err := &MountError{Widget: w.TypeName(), Err: fmt.Errorf("%v", r)}
				app.console.Add(DiagError, w.TypeName(), "%v", err)
				children = nil
				base.children = nil
			}
		}()
		return w.Compose()
	}()
	if len(composed) > 0 {
		base.AddChildren(composed...)
	}

	base.mounted = true
	base.Post(&MountMessage{})

	for _, child := range base.Children() {
		app.mountTree(child, w)
	}
}

// unmountTree unmounts a subtree post-order: children first, then the
// widget itself. Workers are cancelled and the queue drained.
func (app *App) unmountTree(w Widget) {
	for _, child := range w.Children() {
		app.unmountTree(child)
	}
	base := w.Base()
	if !base.mounted {
		return
	}
	base.mounted = false
	base.cancelWorkers()
	base.drainQueue()
	app.deliver(w, &UnmountMessage{})
	base.app = nil
}

// MountChildren mounts additional children under a live widget.
func (app *App) MountChildren(parent Widget, children ...Widget) {
	parent.Base().AddChildren(children...)
	if app.running {
		for _, child := range children {
			app.mountTree(child, parent)
		}
	}
	app.invalidate(dirtyStyle | dirtyLayout | dirtyPaint)
}

// RemoveWidget unmounts and detaches a subtree. The parent owns its
// children; removal destroys the subtree after unmount messages drain.
func (app *App) RemoveWidget(w Widget) {
	app.unmountTree(w)
	if parent := w.Parent(); parent != nil {
		parent.Base().RemoveChild(w)
	}
	app.invalidate(dirtyLayout | dirtyPaint)
}

// compileWidgetCSS merges a widget type's default CSS into the app sheet,
// scoping its selectors to the type unless the widget opts out.
func (app *App) compileWidgetCSS(w Widget) {
	typeName := w.TypeName()
	if app.compiledCSS[typeName] {
		return
	}
	app.compiledCSS[typeName] = true
	source := w.DefaultCSS()
	if source == "" {
		return
	}
	app.widgetCSS = append(app.widgetCSS, cssSource{
		path:   typeName,
		source: source,
		scoped: w.ScopedCSS(),
	})
	sheet := ParseStylesheet(source)
	if w.ScopedCSS() {
		scopeStylesheet(sheet, typeName)
	}
	app.stylesheet.Merge(sheet)
	app.reportCSSIssues()
}

// scopeStylesheet prefixes rule selectors with the widget type so default
// widget styles do not leak. Selectors already anchored at the type are
// kept as written.
func scopeStylesheet(sheet *Stylesheet, typeName string) {
	for r := range sheet.Rules {
		rule := &sheet.Rules[r]
		for s := range rule.Selectors {
			sel := &rule.Selectors[s]
			if len(sel.Compounds) > 0 && sel.Compounds[0].Type == typeName {
				continue
			}
			sel.Compounds = append([]CompoundSelector{{Type: typeName}}, sel.Compounds...)
			sel.Combinators = append([]Combinator{Descendant}, sel.Combinators...)
		}
	}
}

// ---- Message executor -------------------------------------------------------

// Post queues a message for a widget. Safe from any goroutine; never
// blocks.
func (app *App) Post(target Widget, msg Message) {
	target.Base().enqueue(msg)
	app.requeue(target)
	select {
	case app.wake <- struct{}{}:
	default:
	}
}

// requeue marks a widget as having pending messages.
func (app *App) requeue(w Widget) {
	app.pendingMu.Lock()
	if !app.queued[w] {
		app.queued[w] = true
		app.pending = append(app.pending, w)
	}
	app.pendingMu.Unlock()
}

// processMessages drains the pending widget queues, at most messageBatch
// messages per widget per round, until no messages remain.
func (app *App) processMessages() {
	for {
		app.pendingMu.Lock()
		if len(app.pending) == 0 {
			app.pendingMu.Unlock()
			return
		}
		widgets := app.pending
		app.pending = nil
		for _, w := range widgets {
			delete(app.queued, w)
		}
		app.pendingMu.Unlock()

		for _, w := range widgets {
			for i := 0; i < messageBatch; i++ {
				msg, ok := w.Base().dequeue()
				if !ok {
					break
				}
				app.deliver(w, msg)
				w.Base().release()
			}
			if w.Base().pending() {
				app.requeue(w)
			}
		}
	}
}

// deliver runs a widget's handler for a message, then bubbles it up the
// parent chain while it stays unhandled and unstopped. Handler panics are
// converted to diagnostics; the handler's effects are discarded as far as
// the message is concerned.
func (app *App) deliver(target Widget, msg Message) {
	if msg == nil {
		return
	}
	handled := app.safeHandle(target, msg)
	if !handled && msg.IsBubbling() {
		for current := target.Parent(); current != nil; current = current.Parent() {
			if msg.Stopped() {
				break
			}
			if app.safeHandle(current, msg) {
				handled = true
				break
			}
		}
	}
	if handled {
		return
	}
	switch msg := msg.(type) {
	case *KeyMessage:
		app.dispatchKeyBindings(msg.Key)
	case *ClickActionMessage:
		app.RunAction(msg.Action, target)
	}
}

func (app *App) safeHandle(w Widget, msg Message) (handled bool) {
	defer func() {
		if r := recover(); r != nil {
			app.console.Add(DiagError, WidgetType(w),
				"panic in %q handler: %v", msg.MessageName(), r)
			handled = false
			if app.errPolicy {
				app.Quit()
			}
		}
	}()
	return w.Handle(msg)
}

// ---- Input dispatch ---------------------------------------------------------

func (app *App) handleEvent(event Event) {
	switch event := event.(type) {
	case KeyEvent:
		app.handleKey(event)
	case MouseEvent:
		app.handleMouse(event)
	case PasteEvent:
		if focused := app.focusedWidget(); focused != nil {
			app.Post(focused, &PasteMessage{Text: event.Text})
		}
	case ResizeEvent:
		app.size = event.Size
		app.invalidate(dirtyLayout | dirtyPaint)
	case FocusEvent:
		// Terminal focus changes restyle :focus-within surfaces.
		app.invalidate(dirtyStyle | dirtyPaint)
	case QuitEvent:
		app.Quit()
	}
}

func (app *App) focusedWidget() Widget {
	screen := app.TopScreen()
	if screen == nil {
		return nil
	}
	if screen.Focused() != nil {
		return screen.Focused()
	}
	return screen
}

// handleKey dispatches a key event: priority bindings first, then the
// focused widget's handler chain; bindings run after unhandled messages
// in deliver.
func (app *App) handleKey(event KeyEvent) {
	for _, binding := range app.bindings {
		if binding.Priority && binding.Key == event.Name {
			app.RunAction(binding.Action, nil)
			return
		}
	}
	target := app.focusedWidget()
	if target == nil {
		app.dispatchKeyBindings(event.Name)
		return
	}
	app.Post(target, &KeyMessage{BaseMessage: BubblingMessage(), Key: event.Name, Rune: event.Rune})
}

// dispatchKeyBindings walks the focused widget's chain looking for a
// binding, then the app's non-priority bindings.
func (app *App) dispatchKeyBindings(key string) {
	for current := app.focusedWidget(); current != nil; current = current.Parent() {
		if binding, ok := matchBinding(current.Bindings(), key); ok {
			app.RunAction(binding.Action, current)
			return
		}
	}
	for _, binding := range app.bindings {
		if !binding.Priority && binding.Key == key {
			app.RunAction(binding.Action, nil)
			return
		}
	}
}

func (app *App) handleMouse(event MouseEvent) {
	screen := app.TopScreen()
	if screen == nil {
		return
	}
	target, ok := screen.Compositor().WidgetAt(event.Position)
	if !ok {
		target = screen
	}

	// Hover transition.
	if target != app.hovered {
		if app.hovered != nil {
			app.hovered.Base().SetHovered(false)
		}
		app.hovered = target
		target.Base().SetHovered(true)
		app.invalidate(dirtyStyle | dirtyPaint)
	}

	if event.Kind == MouseDown && target.Focusable() {
		screen.SetFocus(target)
	}

	// Inline "@click" action spans in rendered content dispatch through
	// the target's handler chain, with action execution as the
	// fallback.
	if event.Kind == MouseDown || event.Kind == MouseClick {
		if action, ok := app.actionAtCell(event.Position); ok {
			app.Post(target, &ClickActionMessage{
				BaseMessage: BubblingMessage(),
				Action:      action,
			})
		}
	}

	local := event.Position
	if region, ok := screen.Compositor().PlacementOf(target); ok {
		local = event.Position.Sub(region.Origin())
	}
	app.Post(target, &MouseMessage{
		BaseMessage: BubblingMessage(),
		Kind:        event.Kind,
		Screen:      event.Position,
		Local:       local,
		Button:      event.Button,
		Mods:        event.Mods,
		Chain:       event.Chain,
	})
}

// actionAtCell looks up an "@click" action in the emitted frame at the
// given screen cell.
func (app *App) actionAtCell(position Offset) (string, bool) {
	if app.previous == nil || position.Y < 0 || position.Y >= len(app.previous.Lines) {
		return "", false
	}
	strip := app.previous.Lines[position.Y]
	pos := 0
	for _, segment := range strip.Segments() {
		width := segment.Width()
		if position.X >= pos && position.X < pos+width {
			action, ok := segment.Style.Meta["@click"]
			return action, ok && action != ""
		}
		pos += width
	}
	return "", false
}

// ---- Actions ----------------------------------------------------------------

// RunAction parses and dispatches an action expression. Unknown actions
// are recorded and ring the bell; no error propagates to callers.
func (app *App) RunAction(expr string, origin Widget) {
	action, err := ParseAction(expr)
	if err != nil {
		app.console.Add(DiagError, "action", "%v", err)
		return
	}

	var target Widget
	switch action.Namespace {
	case "app", "":
		target = origin
	case "screen":
		if screen := app.TopScreen(); screen != nil {
			target = screen
		}
	case "focused":
		target = app.focusedWidget()
	default:
		if screen := app.TopScreen(); screen != nil {
			if found, ok, _ := QueryOne(screen, "#"+action.Namespace); ok {
				target = found
			}
		}
	}

	// Widget actions first, then the app's action table.
	if target != nil {
		if err := target.Base().InvokeAction(action.Name, action.Args); err == nil {
			return
		}
	}
	if action.Namespace == "" || action.Namespace == "app" {
		if handler, ok := app.actions[action.Name]; ok {
			if err := handler(action.Args...); err != nil {
				app.console.Add(DiagError, "action", "%s: %v", action.Name, err)
			}
			return
		}
	}
	app.console.Add(DiagWarning, "action", "%v: %s", ErrActionNotFound, expr)
	app.driver.Bell()
}

// ---- Clipboard and notifications --------------------------------------------

// CopyToClipboard places text on the system clipboard.
func (app *App) CopyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		app.console.Add(DiagWarning, "clipboard", "copy failed: %v", err)
		return err
	}
	return nil
}

// Notify surfaces a transient notification through the console. Error
// severity also rings the bell.
func (app *App) Notify(level DiagLevel, title, message string) {
	app.console.Add(level, "notify", "%s: %s", title, message)
	if level >= DiagError {
		app.driver.Bell()
	}
}

// ---- Dirty tracking and the pipeline ----------------------------------------

func (app *App) invalidate(flags dirtyFlags) {
	app.dirtyMu.Lock()
	app.dirty |= flags
	app.dirtyMu.Unlock()
	select {
	case app.wake <- struct{}{}:
	default:
	}
}

func (app *App) invalidateSpatialMap() {
	app.invalidate(dirtyLayout | dirtyPaint)
}

func (app *App) takeDirty() dirtyFlags {
	app.dirtyMu.Lock()
	defer app.dirtyMu.Unlock()
	flags := app.dirty
	app.dirty = 0
	return flags
}

// refresh runs the style, layout and composite passes as the dirty flags
// demand, and writes the resulting diff to the driver.
func (app *App) refresh() {
	flags := app.takeDirty()
	if flags == 0 {
		return
	}
	if flags&dirtyStyle != 0 {
		for _, screen := range app.screens {
			app.applyStyles(screen)
		}
	}
	if flags&(dirtyStyle|dirtyLayout) != 0 {
		for _, screen := range app.screens {
			screen.Compositor().Reflow(screen, app.size)
		}
	}

	// Composite the screen stack bottom-up so translucent screens blend
	// over the content below them.
	var below *Frame
	for _, screen := range app.screens {
		frame := screen.Compositor().Render(below)
		below = &frame
	}
	if below == nil {
		return
	}
	diff := DiffFrames(app.previous, below)
	app.previous = below
	if diff.Full || len(diff.Lines) > 0 {
		if err := app.driver.WriteFrame(diff); err != nil {
			app.console.Add(DiagError, "driver", "%v", err)
		}
	}
}

// applyStyles recomputes the cascade for a subtree, pre-order so parents
// provide inherited values.
func (app *App) applyStyles(root Widget) {
	var walk func(w Widget, parent *Styles)
	walk = func(w Widget, parent *Styles) {
		computed := app.stylesheet.ComputeStyles(w, parent)
		for property, value := range w.Base().InlineStyles() {
			tokens := trimEOF(tokenizeCSS(value))
			if err := applyProperty(&computed, property, tokens); err != nil {
				app.console.Add(DiagWarning, "css", "inline %s: %v", property, err)
			}
		}
		w.Base().SetComputedStyles(computed)
		for _, child := range w.Children() {
			walk(child, &computed)
		}
	}
	walk(root, nil)
	app.reportCSSIssues()
}

// ---- Run loop ---------------------------------------------------------------

// Quit asks the app loop to terminate gracefully.
func (app *App) Quit() {
	select {
	case <-app.quit:
	default:
		close(app.quit)
	}
}

// Run mounts the screen stack, starts the driver and enters the frame
// loop. It blocks until the app quits or the driver fails fatally.
func (app *App) Run(root *Screen) error {
	if err := app.driver.Start(); err != nil {
		return err
	}
	defer app.driver.Stop()

	if root != nil {
		app.screens = append([]*Screen{root}, app.screens...)
	}
	if len(app.screens) == 0 {
		return fmt.Errorf("%w: no screen to run", ErrDriver)
	}

	app.running = true
	app.size = app.driver.Size()
	for _, screen := range app.screens {
		app.mountTree(screen, nil)
	}
	if screen := app.TopScreen(); screen != nil && screen.Focused() == nil {
		screen.FocusNext()
	}
	app.invalidate(dirtyStyle | dirtyLayout | dirtyPaint)
	app.processMessages()
	app.refresh()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	events := app.driver.Events()
	for {
		select {
		case <-app.quit:
			for i := len(app.screens) - 1; i >= 0; i-- {
				app.unmountTree(app.screens[i])
			}
			app.processMessages()
			app.running = false
			return nil

		case event, ok := <-events:
			if !ok {
				app.Quit()
				continue
			}
			app.handleEvent(event)

		case <-app.wake:

		case <-ticker.C:
			if app.animator.Tick(app.Post) {
				app.invalidate(dirtyPaint)
			}
		}

		app.processMessages()
		app.refresh()
	}
}

// RunUntilIdle drives the pipeline without the frame loop: mounts the
// screens if needed, drains all messages and renders one frame. It is the
// entry point used by headless tests.
func (app *App) RunUntilIdle(root *Screen) {
	if !app.running {
		app.running = true
		if root != nil {
			app.screens = append([]*Screen{root}, app.screens...)
		}
		app.size = app.driver.Size()
		for _, screen := range app.screens {
			app.mountTree(screen, nil)
		}
		if screen := app.TopScreen(); screen != nil && screen.Focused() == nil {
			screen.FocusNext()
		}
		app.invalidate(dirtyStyle | dirtyLayout | dirtyPaint)
	}
	app.processMessages()
	app.refresh()
}

// FeedEvent injects a driver event synchronously; used with RunUntilIdle
// in headless tests.
func (app *App) FeedEvent(event Event) {
	app.handleEvent(event)
	app.processMessages()
	app.refresh()
}
