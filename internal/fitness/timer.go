package fitness

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// countdown is the internal state of one running timer.
type countdown struct {
	timeLeft  int
	totalTime int
}

// Engine runs all countdown timers for one user off a single one-second
// ticker. One clock drives every timer, so concurrent timers stay in step and
// stopping one cannot leak another's goroutine.
type Engine struct {
	mu        sync.Mutex
	timers    map[string]*countdown
	done      chan struct{}
	closeOnce sync.Once
	closedWg  sync.WaitGroup

	// complete is invoked outside the engine lock whenever a timer reaches
	// zero on its own.
	complete func(exerciseName string, elapsedSeconds int)

	logger *slog.Logger
}

// NewEngine starts the tick loop. Call Close to release it.
func NewEngine(logger *slog.Logger, onComplete func(exerciseName string, elapsedSeconds int)) *Engine {
	e := &Engine{
		timers:   map[string]*countdown{},
		done:     make(chan struct{}),
		complete: onComplete,
		logger:   logger,
	}
	e.closedWg.Add(1)
	go e.run()
	return e
}

func (e *Engine) run() {
	defer e.closedWg.Done()
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			e.tick()
		case <-e.done:
			return
		}
	}
}

// Start begins a countdown of totalSeconds for the named exercise. Starting
// an exercise whose timer is already running is a no-op; the original
// countdown keeps its remaining time.
func (e *Engine) Start(exerciseName string, totalSeconds int) {
	if totalSeconds <= 0 {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, running := e.timers[exerciseName]; running {
		return
	}
	e.timers[exerciseName] = &countdown{timeLeft: totalSeconds, totalTime: totalSeconds}
}

// Stop cancels the named timer and returns the elapsed seconds, or false when
// no timer was running for that exercise.
func (e *Engine) Stop(exerciseName string) (elapsedSeconds int, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	c, running := e.timers[exerciseName]
	if !running {
		return 0, false
	}
	delete(e.timers, exerciseName)
	return c.totalTime - c.timeLeft, true
}

// Snapshot returns the visible state of every running timer.
func (e *Engine) Snapshot() map[string]TimerState {
	e.mu.Lock()
	defer e.mu.Unlock()
	states := make(map[string]TimerState, len(e.timers))
	for name, c := range e.timers {
		states[name] = TimerState{TimeLeft: c.timeLeft, TotalTime: c.totalTime, Running: true}
	}
	return states
}

// tick advances every running timer by one second. Timers that reach zero are
// removed before their completion callback fires, so a completion can safely
// restart the same exercise.
func (e *Engine) tick() {
	type finished struct {
		name  string
		total int
	}

	e.mu.Lock()
	var completed []finished
	for name, c := range e.timers {
		c.timeLeft--
		if c.timeLeft <= 0 {
			delete(e.timers, name)
			completed = append(completed, finished{name: name, total: c.totalTime})
		}
	}
	e.mu.Unlock()

	for _, f := range completed {
		e.logger.LogAttrs(context.Background(), slog.LevelDebug, "timer completed",
			slog.String("exercise", f.name),
			slog.Int("seconds", f.total))
		if e.complete != nil {
			e.complete(f.name, f.total)
		}
	}
}

// Close stops the tick loop and discards all running timers. Idempotent;
// the engine must not be used afterwards.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		close(e.done)
	})
	e.closedWg.Wait()
	e.mu.Lock()
	e.timers = map[string]*countdown{}
	e.mu.Unlock()
}
