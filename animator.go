// Package animator.go implements the monotonic frame scheduler: property
// tweens with easing, one-shot timers and repeating intervals. Everything
// runs on the executor; the scheduler only computes what is due at each
// tick.

package schirmwerk

import (
	"math"
	"sort"
	"time"
)

// EasingFunc maps normalized time [0,1] to normalized progress [0,1].
type EasingFunc func(float64) float64

// The easing functions used by property animations.
var (
	EaseLinear EasingFunc = func(t float64) float64 { return t }

	EaseOutCubic EasingFunc = func(t float64) float64 {
		u := 1 - t
		return 1 - u*u*u
	}

	EaseInOutCubic EasingFunc = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		u := -2*t + 2
		return 1 - u*u*u/2
	}
)

// tween interpolates a float property between two values over a duration.
type tween struct {
	start    time.Time
	duration time.Duration
	from, to float64
	easing   EasingFunc
	apply    func(float64)
	done     func()
}

// timer fires a TimerMessage at its deadline, optionally repeating.
type timer struct {
	id       int
	deadline time.Time
	interval time.Duration // zero for one-shot timers
	owner    Widget
}

// Animator advances tweens and timers against a monotonic clock.
type Animator struct {
	now    func() time.Time
	tweens []*tween
	timers []*timer
	nextID int
}

// NewAnimator creates an animator. A nil clock uses time.Now; tests
// inject a fake clock for deterministic stepping.
func NewAnimator(clock func() time.Time) *Animator {
	if clock == nil {
		clock = time.Now
	}
	return &Animator{now: clock}
}

// Animate starts a tween from the current value to the target. The apply
// callback receives interpolated values; done, if not nil, runs when the
// tween completes.
func (a *Animator) Animate(from, to float64, duration time.Duration, easing EasingFunc, apply func(float64), done func()) {
	if easing == nil {
		easing = EaseInOutCubic
	}
	if duration <= 0 {
		apply(to)
		if done != nil {
			done()
		}
		return
	}
	a.tweens = append(a.tweens, &tween{
		start:    a.now(),
		duration: duration,
		from:     from,
		to:       to,
		easing:   easing,
		apply:    apply,
		done:     done,
	})
}

// SetTimer schedules a one-shot TimerMessage for the owner and returns
// the timer id.
func (a *Animator) SetTimer(owner Widget, delay time.Duration) int {
	a.nextID++
	a.timers = append(a.timers, &timer{
		id:       a.nextID,
		deadline: a.now().Add(delay),
		owner:    owner,
	})
	return a.nextID
}

// SetInterval schedules a repeating TimerMessage and returns the timer
// id.
func (a *Animator) SetInterval(owner Widget, interval time.Duration) int {
	a.nextID++
	a.timers = append(a.timers, &timer{
		id:       a.nextID,
		deadline: a.now().Add(interval),
		interval: interval,
		owner:    owner,
	})
	return a.nextID
}

// StopTimer cancels a timer by id.
func (a *Animator) StopTimer(id int) {
	for i, t := range a.timers {
		if t.id == id {
			a.timers = append(a.timers[:i], a.timers[i+1:]...)
			return
		}
	}
}

// Idle reports whether no tweens or timers are pending.
func (a *Animator) Idle() bool {
	return len(a.tweens) == 0 && len(a.timers) == 0
}

// Tick advances all tweens and fires due timers. Returns true when
// anything changed and a repaint may be needed.
func (a *Animator) Tick(post func(Widget, Message)) bool {
	now := a.now()
	changed := false

	kept := a.tweens[:0]
	for _, tw := range a.tweens {
		elapsed := now.Sub(tw.start)
		t := math.Min(float64(elapsed)/float64(tw.duration), 1)
		value := tw.from + (tw.to-tw.from)*tw.easing(t)
		tw.apply(value)
		changed = true
		if t >= 1 {
			if tw.done != nil {
				tw.done()
			}
			continue
		}
		kept = append(kept, tw)
	}
	a.tweens = kept

	// Fire timers in deadline order.
	sort.SliceStable(a.timers, func(i, j int) bool {
		return a.timers[i].deadline.Before(a.timers[j].deadline)
	})
	keptTimers := a.timers[:0]
	for _, t := range a.timers {
		if t.deadline.After(now) {
			keptTimers = append(keptTimers, t)
			continue
		}
		post(t.owner, &TimerMessage{ID: t.id})
		changed = true
		if t.interval > 0 {
			t.deadline = now.Add(t.interval)
			keptTimers = append(keptTimers, t)
		}
	}
	a.timers = keptTimers

	return changed
}
