// Package tcell-driver.go implements the production Driver on tcell. It
// translates tcell events into core events and frame diffs into screen
// content updates; all byte-level terminal encoding stays inside tcell.

package schirmwerk

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
	"golang.org/x/term"
)

// TcellDriver is the terminal driver used by real applications.
type TcellDriver struct {
	screen tcell.Screen
	events chan Event
	quit   chan struct{}
	inline int
	shadow *Frame // last applied frame, used to honor partial diffs
}

// NewTcellDriver creates an unstarted tcell driver.
func NewTcellDriver() *TcellDriver {
	return &TcellDriver{
		events: make(chan Event, 16),
		quit:   make(chan struct{}),
	}
}

// Start initializes the terminal screen and begins event polling.
func (d *TcellDriver) Start() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("%w: stdout is not a terminal", ErrDriver)
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDriver, err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("%w: %v", ErrDriver, err)
	}
	screen.EnableMouse()
	screen.EnablePaste()
	screen.EnableFocus()
	d.screen = screen
	go d.poll()
	return nil
}

// Stop restores the terminal.
func (d *TcellDriver) Stop() error {
	if d.screen != nil {
		close(d.quit)
		d.screen.Fini()
		d.screen = nil
	}
	return nil
}

// Size returns the terminal size in cells.
func (d *TcellDriver) Size() Size {
	if d.screen == nil {
		if width, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			return Size{Width: width, Height: height}
		}
		return Size{Width: 80, Height: 24}
	}
	width, height := d.screen.Size()
	if d.inline > 0 {
		height = min(height, d.inline)
	}
	return Size{Width: width, Height: height}
}

// SetTitle sets the terminal title.
func (d *TcellDriver) SetTitle(title string) {
	if d.screen != nil {
		d.screen.SetTitle(title)
	}
}

// Events returns the parsed event stream.
func (d *TcellDriver) Events() <-chan Event {
	return d.events
}

// InlineMode restricts rendering to a band of the given height.
func (d *TcellDriver) InlineMode(height int) error {
	if d.screen != nil {
		return fmt.Errorf("%w: inline mode must be set before start", ErrDriver)
	}
	d.inline = height
	return nil
}

// Bell rings the terminal bell.
func (d *TcellDriver) Bell() {
	if d.screen != nil {
		d.screen.Beep()
	}
}

// SetCursor positions or hides the text cursor.
func (d *TcellDriver) SetCursor(position *Offset) {
	if d.screen == nil {
		return
	}
	if position == nil {
		d.screen.HideCursor()
	} else {
		d.screen.ShowCursor(position.X, position.Y)
	}
}

// WriteFrame applies a frame diff to the terminal screen.
func (d *TcellDriver) WriteFrame(diff FrameDiff) error {
	if d.screen == nil {
		return fmt.Errorf("%w: driver not started", ErrDriver)
	}
	if diff.Full {
		d.shadow = diff.Frame
		for y, strip := range diff.Frame.Lines {
			d.writeStrip(0, y, strip)
		}
		d.screen.Show()
		return nil
	}
	if d.shadow != nil {
		next := ApplyDiff(*d.shadow, diff)
		d.shadow = &next
	}
	for _, line := range diff.Lines {
		for _, change := range line.Spans {
			d.writeStrip(change.Start, line.Y, NewStrip(change.Segments...))
		}
	}
	d.screen.Show()
	return nil
}

// writeStrip emits one strip starting at the given cell.
func (d *TcellDriver) writeStrip(x, y int, strip Strip) {
	pos := x
	for _, segment := range strip.Segments() {
		style := toTcellStyle(segment.Style)
		for _, grapheme := range graphemes(segment.Text) {
			width := cellWidth(grapheme)
			runes := []rune(grapheme)
			if len(runes) == 0 {
				continue
			}
			d.screen.SetContent(pos, y, runes[0], runes[1:], style)
			pos += width
		}
	}
}

// poll forwards tcell events to the core until the driver stops.
func (d *TcellDriver) poll() {
	defer close(d.events)
	for {
		select {
		case <-d.quit:
			return
		default:
		}
		event := d.screen.PollEvent()
		if event == nil {
			return
		}
		if translated, ok := translateTcellEvent(event); ok {
			select {
			case d.events <- translated:
			case <-d.quit:
				return
			}
		}
	}
}

// translateTcellEvent converts a tcell event to a core event.
func translateTcellEvent(event tcell.Event) (Event, bool) {
	switch event := event.(type) {
	case *tcell.EventKey:
		return translateKey(event), true
	case *tcell.EventMouse:
		return translateMouse(event), true
	case *tcell.EventPaste:
		// Paste content arrives via subsequent key events in tcell;
		// the paste markers themselves carry no text.
		return nil, false
	case *tcell.EventFocus:
		return FocusEvent{Gained: event.Focused}, true
	case *tcell.EventResize:
		width, height := event.Size()
		return ResizeEvent{Size: Size{Width: width, Height: height}}, true
	case *tcell.EventInterrupt:
		return QuitEvent{}, true
	default:
		return nil, false
	}
}

// tcellKeyNames maps tcell named keys to canonical key names.
var tcellKeyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "escape",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "tab", // shift is carried by the modifier
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyDelete:     "delete",
	tcell.KeyInsert:     "insert",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyPgUp:       "pageup",
	tcell.KeyPgDn:       "pagedown",
}

func translateKey(event *tcell.EventKey) KeyEvent {
	var mods Modifiers
	tm := event.Modifiers()
	if tm&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}
	if tm&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if tm&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	if tm&tcell.ModMeta != 0 {
		mods |= ModMeta
	}

	key := event.Key()
	if key == tcell.KeyBacktab {
		mods |= ModShift
	}

	if name, ok := tcellKeyNames[key]; ok {
		return KeyEvent{Name: KeyName(name, mods), Mods: mods}
	}
	if key >= tcell.KeyF1 && key <= tcell.KeyF24 {
		return KeyEvent{Name: KeyName(fmt.Sprintf("f%d", int(key-tcell.KeyF1)+1), mods), Mods: mods}
	}
	if key == tcell.KeyRune {
		r := event.Rune()
		base := string(r)
		if r == ' ' {
			base = "space"
		}
		return KeyEvent{Name: KeyName(base, mods&^ModShift), Rune: r, Mods: mods}
	}
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		letter := rune('a' + int(key-tcell.KeyCtrlA))
		return KeyEvent{Name: KeyName(string(letter), mods|ModCtrl), Mods: mods | ModCtrl}
	}
	return KeyEvent{Name: KeyName(event.Name(), mods), Mods: mods}
}

func translateMouse(event *tcell.EventMouse) MouseEvent {
	x, y := event.Position()
	result := MouseEvent{
		Kind:     MouseMove,
		Position: Offset{X: x, Y: y},
	}
	buttons := event.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		result.Kind = MouseScrollUp
	case buttons&tcell.WheelDown != 0:
		result.Kind = MouseScrollDown
	case buttons&tcell.WheelLeft != 0:
		result.Kind = MouseScrollLeft
	case buttons&tcell.WheelRight != 0:
		result.Kind = MouseScrollRight
	case buttons&tcell.Button1 != 0:
		result.Kind = MouseDown
		result.Button = ButtonLeft
	case buttons&tcell.Button2 != 0:
		result.Kind = MouseDown
		result.Button = ButtonMiddle
	case buttons&tcell.Button3 != 0:
		result.Kind = MouseDown
		result.Button = ButtonRight
	}
	return result
}

// toTcellStyle converts a core style to a tcell style.
func toTcellStyle(style Style) tcell.Style {
	result := tcell.StyleDefault
	if style.FG != nil && !style.FG.IsTransparent() {
		fg := style.FG.ResolveAuto(ColorBlack)
		result = result.Foreground(tcell.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))
	}
	if style.BG != nil && !style.BG.IsTransparent() {
		result = result.Background(tcell.NewRGBColor(int32(style.BG.R), int32(style.BG.G), int32(style.BG.B)))
	}
	result = result.
		Bold(style.Bold.On()).
		Italic(style.Italic.On()).
		Underline(style.Underline.On()).
		StrikeThrough(style.Strike.On()).
		Reverse(style.Reverse.On()).
		Dim(style.Dim.On())
	if style.Link != "" {
		result = result.Url(style.Link)
	}
	return result
}

// graphemes splits text into grapheme clusters.
func graphemes(text string) []string {
	if isASCII(text) {
		result := make([]string, len(text))
		for i := 0; i < len(text); i++ {
			result[i] = text[i : i+1]
		}
		return result
	}
	var result []string
	iterator := uniseg.NewGraphemes(text)
	for iterator.Next() {
		result = append(result, iterator.Str())
	}
	return result
}
