package stack

import (
	"testing"

	platformcore "github.com/pavelh/stackattack-tui/internal/core"
	"github.com/pavelh/stackattack-tui/internal/games/stack/core"
)

func frame(actions ...platformcore.Action) platformcore.InputFrame {
	f := platformcore.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestArbiterResolveEmpty(t *testing.T) {
	a := NewArbiter(60)
	if got := a.Resolve(); got != core.ActionNone {
		t.Errorf("Resolve() = %v with nothing held, expected ActionNone", got)
	}
}

func TestArbiterJumpBeatsDirections(t *testing.T) {
	a := NewArbiter(60)
	a.Observe(frame(platformcore.ActionLeft))
	a.Observe(frame(platformcore.ActionJump))

	if got := a.Resolve(); got != core.ActionUp {
		t.Errorf("Resolve() = %v, jump should win over directions", got)
	}

	// Order does not matter for jump priority.
	b := NewArbiter(60)
	b.Observe(frame(platformcore.ActionJump))
	b.Observe(frame(platformcore.ActionRight))
	if got := b.Resolve(); got != core.ActionUp {
		t.Errorf("Resolve() = %v, jump should win regardless of press order", got)
	}
}

func TestArbiterMostRecentDirectionWins(t *testing.T) {
	a := NewArbiter(60)
	a.Observe(frame(platformcore.ActionLeft))
	a.Observe(frame(platformcore.ActionRight))

	if got := a.Resolve(); got != core.ActionRight {
		t.Errorf("Resolve() = %v, most recent direction should win", got)
	}

	// An autorepeat of the older key must not steal priority.
	a.Observe(frame(platformcore.ActionLeft))
	if got := a.Resolve(); got != core.ActionRight {
		t.Errorf("Resolve() = %v, a repeat of a held key should not win", got)
	}
}

func TestArbiterHoldExpiry(t *testing.T) {
	a := NewArbiter(60) // 33-tick hold window at 60 ticks/sec
	a.Observe(frame(platformcore.ActionLeft))

	for i := 0; i < a.holdTicks-1; i++ {
		a.Advance()
		if got := a.Resolve(); got != core.ActionLeft {
			t.Fatalf("Resolve() = %v after %d ticks, hold expired too early", got, i+1)
		}
	}

	a.Advance()
	if got := a.Resolve(); got != core.ActionNone {
		t.Errorf("Resolve() = %v after the hold window, expected ActionNone", got)
	}
}

func TestArbiterObserveRefreshesHold(t *testing.T) {
	a := NewArbiter(60)
	a.Observe(frame(platformcore.ActionRight))

	// Burn most of the hold window, then re-press.
	for i := 0; i < a.holdTicks-2; i++ {
		a.Advance()
	}
	a.Observe(frame(platformcore.ActionRight))

	for i := 0; i < a.holdTicks-1; i++ {
		a.Advance()
	}
	if got := a.Resolve(); got != core.ActionRight {
		t.Error("re-press should restart the hold window")
	}
}

func TestArbiterExpiryRestoresOlderDirection(t *testing.T) {
	a := NewArbiter(60)
	a.Observe(frame(platformcore.ActionLeft))

	// Press right a few ticks later; it wins while held.
	for i := 0; i < 5; i++ {
		a.Advance()
		a.Observe(frame(platformcore.ActionLeft))
	}
	a.Observe(frame(platformcore.ActionRight))
	if got := a.Resolve(); got != core.ActionRight {
		t.Fatalf("Resolve() = %v, expected the newer direction", got)
	}

	// Keep refreshing left until right expires; left takes over again.
	for i := 0; i < a.holdTicks; i++ {
		a.Advance()
		a.Observe(frame(platformcore.ActionLeft))
	}
	if got := a.Resolve(); got != core.ActionLeft {
		t.Errorf("Resolve() = %v after the newer hold expired, expected left", got)
	}
}

func TestArbiterReset(t *testing.T) {
	a := NewArbiter(60)
	a.Observe(frame(platformcore.ActionLeft, platformcore.ActionJump))
	a.Reset()

	if got := a.Resolve(); got != core.ActionNone {
		t.Errorf("Resolve() = %v after Reset, expected ActionNone", got)
	}
}
