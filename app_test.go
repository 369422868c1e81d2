package schirmwerk

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder is a test widget that logs the messages it handles.
type recorder struct {
	BaseWidget
	log     []string
	consume bool
}

func newRecorder(id string) *recorder {
	r := &recorder{}
	r.Init(r, "Recorder", id)
	r.OnMessage("timer", func(msg Message) bool {
		r.log = append(r.log, "timer")
		return r.consume
	})
	r.OnMessage("key", func(msg Message) bool {
		r.log = append(r.log, "key:"+msg.(*KeyMessage).Key)
		return r.consume
	})
	r.OnMessage("mount", func(Message) bool {
		r.log = append(r.log, "mount")
		return true
	})
	r.OnMessage("unmount", func(Message) bool {
		r.log = append(r.log, "unmount")
		return true
	})
	return r
}

func newTestApp(size Size, children ...Widget) (*App, *TestDriver, *Screen) {
	driver := NewTestDriver(size)
	app := NewApp(driver)
	screen := NewScreen("main", children...)
	app.RunUntilIdle(screen)
	return app, driver, screen
}

func TestAppRendersFrame(t *testing.T) {
	_, driver, _ := newTestApp(Size{Width: 20, Height: 4}, NewStatic("hello", "hello app"))
	require.NotNil(t, driver.Frame())
	lines := driver.Text()
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "hello app")
}

// Message ordering: messages sent to one widget are observed in send
// order.
func TestMessageOrdering(t *testing.T) {
	b := newRecorder("b")
	b.OnMessage("timer", func(msg Message) bool {
		b.log = append(b.log, string(rune('0'+msg.(*TimerMessage).ID)))
		return true
	})
	app, _, _ := newTestApp(Size{Width: 10, Height: 2}, b)
	b.log = nil

	for i := 1; i <= 5; i++ {
		app.Post(b, &TimerMessage{ID: i})
	}
	app.RunUntilIdle(nil)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, b.log)
}

func TestMessageBubbling(t *testing.T) {
	child := newRecorder("child")
	parent := newRecorder("parent")
	parent.AddChildren(child)
	app, _, _ := newTestApp(Size{Width: 10, Height: 2}, parent)
	child.log, parent.log = nil, nil

	app.Post(child, &KeyMessage{BaseMessage: BubblingMessage(), Key: "x"})
	app.RunUntilIdle(nil)
	assert.Equal(t, []string{"key:x"}, child.log, "target handles first")
	assert.Equal(t, []string{"key:x"}, parent.log, "unhandled bubbling message reaches the parent")
}

func TestMessageBubblingStops(t *testing.T) {
	child := newRecorder("child")
	child.OnMessage("key", func(msg Message) bool {
		child.log = append(child.log, "key")
		msg.StopPropagation()
		return false
	})
	parent := newRecorder("parent")
	parent.AddChildren(child)
	app, _, _ := newTestApp(Size{Width: 10, Height: 2}, parent)
	child.log, parent.log = nil, nil

	app.Post(child, &KeyMessage{BaseMessage: BubblingMessage(), Key: "x"})
	app.RunUntilIdle(nil)
	assert.Empty(t, parent.log, "stopped message must not bubble")
}

func TestMountLifecycle(t *testing.T) {
	r := newRecorder("r")
	app, _, _ := newTestApp(Size{Width: 10, Height: 2}, r)
	assert.Equal(t, []string{"mount"}, r.log)
	assert.True(t, r.Mounted())

	app.RemoveWidget(r)
	app.RunUntilIdle(nil)
	assert.Equal(t, []string{"mount", "unmount"}, r.log)
	assert.False(t, r.Mounted())
}

// Focus exclusivity: after any sequence of events at most one widget is
// focused.
func TestFocusExclusivity(t *testing.T) {
	a := NewVerticalScroll("a")
	b := NewVerticalScroll("b")
	c := NewVerticalScroll("c")
	app, _, screen := newTestApp(Size{Width: 10, Height: 6}, a, b, c)

	countFocused := func() int {
		count := 0
		Traverse(screen, func(w Widget) {
			if w.Base().Focused() {
				count++
			}
		})
		return count
	}

	require.Equal(t, 1, countFocused(), "initial focus")
	assert.Equal(t, Widget(a), screen.Focused())

	for i := 0; i < 5; i++ {
		app.FeedEvent(KeyEvent{Name: "tab"})
		assert.Equal(t, 1, countFocused(), "after tab %d", i)
	}
	assert.Equal(t, Widget(c), screen.Focused(), "tab wraps through the focus order")

	app.FeedEvent(KeyEvent{Name: "shift+tab"})
	assert.Equal(t, Widget(b), screen.Focused())
	assert.Equal(t, 1, countFocused())
}

func TestFocusMessages(t *testing.T) {
	a := newRecorder("a")
	a.SetFocusable(true)
	b := newRecorder("b")
	b.SetFocusable(true)
	focusLog := []string{}
	a.OnMessage("focus", func(Message) bool { focusLog = append(focusLog, "a:focus"); return true })
	a.OnMessage("blur", func(Message) bool { focusLog = append(focusLog, "a:blur"); return true })
	b.OnMessage("focus", func(Message) bool { focusLog = append(focusLog, "b:focus"); return true })

	app, _, screen := newTestApp(Size{Width: 10, Height: 4}, a, b)
	app.RunUntilIdle(nil)
	screen.SetFocus(b)
	app.RunUntilIdle(nil)

	assert.Equal(t, []string{"a:focus", "a:blur", "b:focus"}, focusLog)
}

func TestPriorityBindingRuns(t *testing.T) {
	ran := false
	app, _, _ := newTestApp(Size{Width: 10, Height: 2}, NewStatic("s", "x"))
	app.RegisterAction("boom", func(...any) error {
		ran = true
		return nil
	})
	binding := NewBinding("ctrl+b", "app.boom", "test")
	binding.Priority = true
	app.Bind(binding)

	app.FeedEvent(KeyEvent{Name: "ctrl+b"})
	assert.True(t, ran, "priority binding must run")
}

func TestWidgetBindingBeatsAppBinding(t *testing.T) {
	order := []string{}
	target := newRecorder("target")
	target.SetFocusable(true)
	target.RegisterAction("hit", func(...any) error {
		order = append(order, "widget")
		return nil
	})
	target.Bind(NewBinding("x", "hit", "widget-level"))

	app, _, screen := newTestApp(Size{Width: 10, Height: 2}, target)
	app.RegisterAction("apphit", func(...any) error {
		order = append(order, "app")
		return nil
	})
	app.Bind(NewBinding("x", "app.apphit", "app-level"))
	screen.SetFocus(target)
	app.RunUntilIdle(nil)

	app.FeedEvent(KeyEvent{Name: "x"})
	assert.Equal(t, []string{"widget"}, order, "the focused widget's binding wins")
}

func TestUnknownActionDiagnoses(t *testing.T) {
	app, driver, _ := newTestApp(Size{Width: 10, Height: 2}, NewStatic("s", "x"))
	app.RunAction("no_such_action_anywhere", nil)

	found := false
	for _, entry := range app.Console().Entries() {
		if entry.Level == DiagWarning && entry.Source == "action" {
			found = true
		}
	}
	assert.True(t, found, "unknown action must be diagnosed")
	assert.Equal(t, 1, driver.Bells())
}

func TestPanicInHandlerRecovered(t *testing.T) {
	r := newRecorder("r")
	r.OnMessage("timer", func(Message) bool {
		panic("deliberate")
	})
	app, _, _ := newTestApp(Size{Width: 10, Height: 2}, r)

	app.Post(r, &TimerMessage{ID: 1})
	app.RunUntilIdle(nil)

	found := false
	for _, entry := range app.Console().Entries() {
		if entry.Level == DiagError {
			found = true
		}
	}
	assert.True(t, found, "panic must be recorded")

	// The app keeps processing messages afterwards.
	r.OnMessage("timer", func(Message) bool {
		r.log = append(r.log, "recovered")
		return true
	})
	app.Post(r, &TimerMessage{ID: 2})
	app.RunUntilIdle(nil)
	assert.Contains(t, r.log, "recovered")
}

func TestScreenPushAndDismiss(t *testing.T) {
	requester := newRecorder("req")
	var dismissed any
	requester.OnMessage("dismiss", func(msg Message) bool {
		dismissed = msg.(*DismissMessage).Value
		return true
	})
	app, _, base := newTestApp(Size{Width: 10, Height: 4}, requester)

	dialog := NewScreen("dialog", NewStatic("msg", "sure?"))
	app.PushScreen(dialog, requester)
	app.RunUntilIdle(nil)
	assert.Equal(t, dialog, app.TopScreen())

	dialog.Dismiss(42)
	app.RunUntilIdle(nil)
	assert.Equal(t, base, app.TopScreen())
	assert.Equal(t, 42, dismissed)
	assert.False(t, dialog.Mounted())
}

func TestMouseHoverAndFocus(t *testing.T) {
	top := NewVerticalScroll("top")
	top.Styles().Height = Cells(2)
	bottom := NewVerticalScroll("bottom")
	app, _, screen := newTestApp(Size{Width: 10, Height: 6}, top, bottom)

	app.FeedEvent(MouseEvent{Kind: MouseMove, Position: Offset{X: 2, Y: 4}})
	assert.True(t, bottom.PseudoState("hover"))
	assert.False(t, top.PseudoState("hover"))

	app.FeedEvent(MouseEvent{Kind: MouseDown, Position: Offset{X: 2, Y: 4}, Button: ButtonLeft})
	assert.Equal(t, Widget(bottom), screen.Focused())

	app.FeedEvent(MouseEvent{Kind: MouseMove, Position: Offset{X: 2, Y: 0}})
	assert.False(t, bottom.PseudoState("hover"), "hover moves with the pointer")
	assert.True(t, top.PseudoState("hover"))
}

func TestResizeRelayouts(t *testing.T) {
	s := NewStatic("s", "resize me")
	app, driver, _ := newTestApp(Size{Width: 20, Height: 4}, s)
	require.Equal(t, 20, driver.Frame().Size.Width)

	driver.Resize(Size{Width: 30, Height: 5})
	// The test driver queues the event; deliver it synchronously.
	app.FeedEvent(ResizeEvent{Size: Size{Width: 30, Height: 5}})
	assert.Equal(t, 30, driver.Frame().Size.Width)
	assert.Equal(t, 5, len(driver.Frame().Lines))
}

func TestWorkerDeliversResult(t *testing.T) {
	r := newRecorder("r")
	var result any
	r.OnMessage("worker", func(msg Message) bool {
		result = msg.(*WorkerMessage).Result
		return true
	})
	app, _, _ := newTestApp(Size{Width: 10, Height: 2}, r)

	worker := RunWorker(r, func(ctx context.Context) (any, error) {
		return "done", nil
	})
	worker.Wait()
	app.RunUntilIdle(nil)
	assert.Equal(t, "done", result)
}

func TestUnmountCancelsWorkers(t *testing.T) {
	r := newRecorder("r")
	delivered := false
	r.OnMessage("worker", func(Message) bool {
		delivered = true
		return true
	})
	app, _, _ := newTestApp(Size{Width: 10, Height: 2}, r)

	started := make(chan struct{})
	worker := RunWorker(r, func(ctx context.Context) (any, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	})
	<-started
	app.RemoveWidget(r)
	worker.Wait()
	app.RunUntilIdle(nil)
	assert.False(t, delivered, "cancelled workers must not deliver results")
}

func TestAnimatorTimers(t *testing.T) {
	now := time.Unix(0, 0)
	animator := NewAnimator(func() time.Time { return now })

	var fired []int
	post := func(w Widget, msg Message) {
		fired = append(fired, msg.(*TimerMessage).ID)
	}

	owner := NewStatic("owner", "")
	one := animator.SetTimer(owner, 100*time.Millisecond)
	animator.SetInterval(owner, 250*time.Millisecond)

	animator.Tick(post)
	assert.Empty(t, fired)

	now = now.Add(150 * time.Millisecond)
	animator.Tick(post)
	assert.Equal(t, []int{one}, fired)

	now = now.Add(150 * time.Millisecond)
	animator.Tick(post)
	assert.Len(t, fired, 2, "interval fires once elapsed")

	now = now.Add(300 * time.Millisecond)
	animator.Tick(post)
	assert.Len(t, fired, 3, "interval repeats")
}

func TestAnimatorTween(t *testing.T) {
	now := time.Unix(0, 0)
	animator := NewAnimator(func() time.Time { return now })

	var values []float64
	finished := false
	animator.Animate(0, 10, time.Second, EaseLinear,
		func(v float64) { values = append(values, v) },
		func() { finished = true })

	now = now.Add(500 * time.Millisecond)
	animator.Tick(func(Widget, Message) {})
	require.Len(t, values, 1)
	assert.InDelta(t, 5, values[0], 0.01)
	assert.False(t, finished)

	now = now.Add(600 * time.Millisecond)
	animator.Tick(func(Widget, Message) {})
	assert.InDelta(t, 10, values[len(values)-1], 0.01)
	assert.True(t, finished)
	assert.True(t, animator.Idle())
}

func TestClickActionSpan(t *testing.T) {
	app, _, _ := newTestApp(Size{Width: 20, Height: 2},
		NewStatic("link", "[@click=app.fire]press[/] here"))
	ran := false
	app.RegisterAction("fire", func(...any) error {
		ran = true
		return nil
	})

	app.FeedEvent(MouseEvent{Kind: MouseDown, Position: Offset{X: 2, Y: 0}, Button: ButtonLeft})
	assert.True(t, ran, "clicking an @click span must run its action")

	ran = false
	app.FeedEvent(MouseEvent{Kind: MouseDown, Position: Offset{X: 10, Y: 0}, Button: ButtonLeft})
	assert.False(t, ran, "clicks outside the span must not run the action")
}
