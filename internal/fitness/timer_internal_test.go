package fitness

import (
	"testing"

	"github.com/bersitedi/MyWorkoutPlanner/internal/testhelpers"
)

// newIdleEngine builds an engine without the background tick loop so tests
// can drive the clock deterministically through tick().
func newIdleEngine(t *testing.T, onComplete func(string, int)) *Engine {
	t.Helper()
	return &Engine{
		timers:   map[string]*countdown{},
		done:     make(chan struct{}),
		complete: onComplete,
		logger:   testhelpers.NewLogger(testhelpers.NewWriter(t)),
	}
}

func TestEngine_StartIsIdempotent(t *testing.T) {
	e := newIdleEngine(t, nil)

	e.Start("Push-up", 135)
	e.tick()
	e.tick()
	// A second Start must not reset the running countdown.
	e.Start("Push-up", 135)

	state, ok := e.Snapshot()["Push-up"]
	if !ok {
		t.Fatal("expected a running timer for Push-up")
	}
	if got, want := state.TimeLeft, 133; got != want {
		t.Errorf("got %d seconds left, want %d", got, want)
	}
	if got, want := state.TotalTime, 135; got != want {
		t.Errorf("got total %d, want %d", got, want)
	}
}

func TestEngine_StopReturnsElapsed(t *testing.T) {
	e := newIdleEngine(t, nil)

	e.Start("Jumping Jacks", 600)
	for range 30 {
		e.tick()
	}

	elapsed, ok := e.Stop("Jumping Jacks")
	if !ok {
		t.Fatal("expected Stop to find a running timer")
	}
	if got, want := elapsed, 30; got != want {
		t.Errorf("got %d elapsed seconds, want %d", got, want)
	}

	if _, ok := e.Stop("Jumping Jacks"); ok {
		t.Error("second Stop should report no running timer")
	}
}

func TestEngine_AutoCompletesAtZero(t *testing.T) {
	var completedName string
	var completedSeconds int
	e := newIdleEngine(t, func(name string, seconds int) {
		completedName = name
		completedSeconds = seconds
	})

	e.Start("Plank", 3)
	e.tick()
	e.tick()
	if completedName != "" {
		t.Fatalf("timer completed early after 2 ticks: %q", completedName)
	}
	e.tick()

	if got, want := completedName, "Plank"; got != want {
		t.Errorf("got completed exercise %q, want %q", got, want)
	}
	if got, want := completedSeconds, 3; got != want {
		t.Errorf("got completed seconds %d, want %d", got, want)
	}
	if _, ok := e.Snapshot()["Plank"]; ok {
		t.Error("completed timer should be removed")
	}

	// The slot is free again after completion.
	e.Start("Plank", 3)
	if state := e.Snapshot()["Plank"]; state.TimeLeft != 3 {
		t.Errorf("restarted timer has %d seconds left, want 3", state.TimeLeft)
	}
}

func TestEngine_IndependentTimers(t *testing.T) {
	e := newIdleEngine(t, nil)

	e.Start("Push-up", 135)
	e.Start("Squat", 180)
	e.tick()

	if _, ok := e.Stop("Push-up"); !ok {
		t.Fatal("expected Push-up timer to be running")
	}

	state, ok := e.Snapshot()["Squat"]
	if !ok {
		t.Fatal("stopping one timer must not stop another")
	}
	if got, want := state.TimeLeft, 179; got != want {
		t.Errorf("got %d seconds left for Squat, want %d", got, want)
	}
}

func TestEngine_NonPositiveDurationIgnored(t *testing.T) {
	e := newIdleEngine(t, nil)

	e.Start("Mystery", 0)
	if len(e.Snapshot()) != 0 {
		t.Error("zero-duration timer should not start")
	}
}

func TestEngine_CloseIsIdempotent(t *testing.T) {
	e := NewEngine(testhelpers.NewLogger(testhelpers.NewWriter(t)), nil)
	e.Start("Push-up", 135)

	e.Close()
	e.Close()

	if len(e.Snapshot()) != 0 {
		t.Error("expected no timers after close")
	}
}
