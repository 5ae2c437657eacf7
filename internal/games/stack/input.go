package stack

import (
	platformcore "github.com/pavelh/stackattack-tui/internal/core"
	"github.com/pavelh/stackattack-tui/internal/games/stack/core"
)

// holdDurationMs is how long a key counts as held after its last press.
// Terminals report no key releases, only presses and autorepeat, and
// autorepeat pauses for roughly half a second before kicking in. The
// hold window bridges that gap so a physically held key does not read
// as released.
const holdDurationMs = 550

// Arbiter turns the platform's press-only input frames into one
// simulation action per step. It tracks which movement keys are
// currently considered held and in what order they were pressed.
type Arbiter struct {
	holdTicks int

	// remaining maps a held action to the ticks left in its hold window.
	remaining map[platformcore.Action]int
	// order lists held actions oldest first.
	order []platformcore.Action
}

// NewArbiter creates an arbiter for the given platform tick rate.
func NewArbiter(tickRate int) *Arbiter {
	holdTicks := tickRate * holdDurationMs / 1000
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &Arbiter{
		holdTicks: holdTicks,
		remaining: make(map[platformcore.Action]int),
	}
}

// Reset clears all held state.
func (a *Arbiter) Reset() {
	a.remaining = make(map[platformcore.Action]int)
	a.order = a.order[:0]
}

// Observe records one input frame. A press of an already-held action
// only refreshes its hold window: terminal autorepeat must not let an
// old key steal priority from a newer press. A fresh press goes to the
// back of the press order.
func (a *Arbiter) Observe(in platformcore.InputFrame) {
	for _, action := range []platformcore.Action{
		platformcore.ActionLeft,
		platformcore.ActionRight,
		platformcore.ActionJump,
	} {
		if !in.Has(action) {
			continue
		}
		if _, held := a.remaining[action]; !held {
			a.order = append(a.order, action)
		}
		a.remaining[action] = a.holdTicks
	}
}

// Advance expires one tick of every hold window.
func (a *Arbiter) Advance() {
	for action, left := range a.remaining {
		left--
		if left <= 0 {
			delete(a.remaining, action)
			a.removeFromOrder(action)
		} else {
			a.remaining[action] = left
		}
	}
}

// Resolve picks the single action the simulation should see this step.
func (a *Arbiter) Resolve() core.InputAction {
	return resolve(a.remaining, a.order)
}

func (a *Arbiter) removeFromOrder(action platformcore.Action) {
	for i, o := range a.order {
		if o == action {
			a.order = append(a.order[:i], a.order[i+1:]...)
			return
		}
	}
}

// resolve arbitrates between simultaneously held keys. Jump always
// wins; among held directions the most recently pressed one wins;
// nothing held means no action.
func resolve(held map[platformcore.Action]int, order []platformcore.Action) core.InputAction {
	if _, ok := held[platformcore.ActionJump]; ok {
		return core.ActionUp
	}

	for i := len(order) - 1; i >= 0; i-- {
		switch order[i] {
		case platformcore.ActionLeft:
			return core.ActionLeft
		case platformcore.ActionRight:
			return core.ActionRight
		}
	}

	return core.ActionNone
}
