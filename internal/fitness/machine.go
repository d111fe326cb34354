package fitness

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/bersitedi/MyWorkoutPlanner/internal/errors"
)

// ErrExerciseNotScheduled is returned when a timer or completion targets an
// exercise that is not on the named day's schedule.
var ErrExerciseNotScheduled = errors.NewSentinel("exercise not scheduled")

// Machine owns one user's planner state. All writes funnel through Dispatch
// under a single mutex, so readers always observe a fully applied action and
// never a partial transition. The state value itself is immutable; Dispatch
// swaps the pointer.
type Machine struct {
	mu     sync.Mutex
	userID int64
	state  *State
	store  Store
	engine *Engine
	logger *slog.Logger

	lastSessionID int64
}

// NewMachine hydrates the user's snapshot from the store, falling back to the
// default state for first-time users or unreadable payloads.
func NewMachine(ctx context.Context, userID int64, store Store, logger *slog.Logger) *Machine {
	m := &Machine{
		userID: userID,
		store:  store,
		logger: logger,
	}
	m.state = m.hydrate(ctx)
	m.engine = NewEngine(logger, m.completeFromTimer)
	return m
}

func (m *Machine) hydrate(ctx context.Context) *State {
	state := m.loadState(ctx)
	if history := m.loadHistory(ctx); history != nil {
		state = Apply(state, SetWorkoutHistory{History: history})
		state = Apply(state, UpdateStats{Stats: ComputeStats(state.History, time.Now())})
	}
	return state
}

func (m *Machine) loadState(ctx context.Context) *State {
	payload, err := m.store.Load(ctx, StateKey(m.userID))
	if errors.Is(err, ErrSnapshotNotFound) {
		return DefaultState()
	}
	if err != nil {
		m.logger.LogAttrs(ctx, slog.LevelError, "load state snapshot", errors.SlogError(err))
		return DefaultState()
	}
	var state State
	if err := json.Unmarshal(payload, &state); err != nil {
		m.logger.LogAttrs(ctx, slog.LevelWarn, "discarding unreadable state snapshot",
			slog.Int64("userID", m.userID), errors.SlogError(err))
		return DefaultState()
	}
	if state.SchemaVersion != SchemaVersion {
		m.logger.LogAttrs(ctx, slog.LevelWarn, "discarding state snapshot with unknown schema version",
			slog.Int64("userID", m.userID), slog.Int("schemaVersion", state.SchemaVersion))
		return DefaultState()
	}
	if state.Stats.WorkoutsByType == nil {
		state.Stats.WorkoutsByType = map[ExerciseType]int{}
	}
	return &state
}

func (m *Machine) loadHistory(ctx context.Context) []CompletedSession {
	payload, err := m.store.Load(ctx, HistoryKey(m.userID))
	if errors.Is(err, ErrSnapshotNotFound) {
		return nil
	}
	if err != nil {
		m.logger.LogAttrs(ctx, slog.LevelError, "load history snapshot", errors.SlogError(err))
		return nil
	}
	var history []CompletedSession
	if err := json.Unmarshal(payload, &history); err != nil {
		m.logger.LogAttrs(ctx, slog.LevelWarn, "discarding unreadable history snapshot",
			slog.Int64("userID", m.userID), errors.SlogError(err))
		return nil
	}
	return history
}

// Dispatch applies the action, recomputes stats when the history changed, and
// persists the resulting snapshot. Persistence failures are logged but do not
// roll back the in-memory transition.
func (m *Machine) Dispatch(ctx context.Context, action Action) *State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dispatchLocked(ctx, action)
}

func (m *Machine) dispatchLocked(ctx context.Context, action Action) *State {
	next := Apply(m.state, action)
	if next == m.state {
		return m.state
	}
	if len(next.History) != len(m.state.History) || historyChanged(action) {
		next = Apply(next, UpdateStats{Stats: ComputeStats(next.History, time.Now())})
	}
	m.state = next
	m.persist(ctx)
	return m.state
}

func historyChanged(action Action) bool {
	switch action.(type) {
	case CompleteWorkout, UpdateWorkout, DeleteWorkout, SetWorkoutHistory:
		return true
	}
	return false
}

func (m *Machine) persist(ctx context.Context) {
	statePayload, err := json.Marshal(m.state)
	if err != nil {
		m.logger.LogAttrs(ctx, slog.LevelError, "marshal state snapshot", errors.SlogError(err))
		return
	}
	if err := m.store.Save(ctx, StateKey(m.userID), statePayload); err != nil {
		m.logger.LogAttrs(ctx, slog.LevelError, "save state snapshot", errors.SlogError(err))
	}
	historyPayload, err := json.Marshal(m.state.History)
	if err != nil {
		m.logger.LogAttrs(ctx, slog.LevelError, "marshal history snapshot", errors.SlogError(err))
		return
	}
	if err := m.store.Save(ctx, HistoryKey(m.userID), historyPayload); err != nil {
		m.logger.LogAttrs(ctx, slog.LevelError, "save history snapshot", errors.SlogError(err))
	}
}

// State returns the current state value. Callers must treat it as read-only.
func (m *Machine) State() *State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// StartTimer begins the countdown for a scheduled exercise. Starting an
// already running timer is a no-op.
func (m *Machine) StartTimer(day, exerciseName string) error {
	ex, ok := m.findScheduled(day, exerciseName)
	if !ok {
		return ErrExerciseNotScheduled
	}
	m.engine.Start(exerciseName, TimerSeconds(ex))
	return nil
}

// StopTimer cancels a running countdown without recording a session. It
// reports the elapsed seconds, or ok=false when no timer was running.
func (m *Machine) StopTimer(exerciseName string) (elapsedSeconds int, ok bool) {
	return m.engine.Stop(exerciseName)
}

// Timers returns the visible state of the user's running countdowns.
func (m *Machine) Timers() map[string]TimerState {
	return m.engine.Snapshot()
}

// CompleteExercise records a completed session for a scheduled exercise,
// stopping its timer if one is running. The session's duration is the timer's
// elapsed time when available, otherwise the exercise's full planned length.
func (m *Machine) CompleteExercise(ctx context.Context, day, exerciseName string) (*State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ex, ok := m.findScheduledLocked(day, exerciseName)
	if !ok {
		return nil, ErrExerciseNotScheduled
	}
	duration := TimerSeconds(ex)
	if elapsed, running := m.engine.Stop(exerciseName); running {
		duration = elapsed
	}
	return m.dispatchLocked(ctx, CompleteWorkout{Session: m.newSession(ex, day, duration)}), nil
}

// completeFromTimer is the engine's auto-complete callback: the countdown ran
// to zero, so the full planned duration was performed.
func (m *Machine) completeFromTimer(exerciseName string, elapsedSeconds int) {
	ctx := context.Background()
	m.mu.Lock()
	defer m.mu.Unlock()
	ex, day, ok := m.findScheduledAnyDayLocked(exerciseName)
	if !ok {
		m.logger.LogAttrs(ctx, slog.LevelWarn, "timer completed for unscheduled exercise",
			slog.String("exercise", exerciseName))
		return
	}
	m.dispatchLocked(ctx, CompleteWorkout{Session: m.newSession(ex, day, elapsedSeconds)})
}

func (m *Machine) newSession(ex PlannedExercise, day string, durationSeconds int) CompletedSession {
	now := time.Now()
	id := now.UnixMilli()
	if id <= m.lastSessionID {
		id = m.lastSessionID + 1
	}
	m.lastSessionID = id
	return CompletedSession{
		ID:        id,
		Name:      ex.Name,
		Type:      ex.Type,
		Sets:      ex.Sets,
		Reps:      ex.Reps,
		Duration:  durationSeconds,
		Intensity: ex.Intensity,
		Calories:  EstimateCalories(ex),
		Date:      now,
		Day:       day,
	}
}

func (m *Machine) findScheduled(day, exerciseName string) (PlannedExercise, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findScheduledLocked(day, exerciseName)
}

func (m *Machine) findScheduledLocked(day, exerciseName string) (PlannedExercise, bool) {
	for _, d := range m.state.Schedule {
		if d.Day != day {
			continue
		}
		for _, ex := range d.Exercises {
			if ex.Name == exerciseName {
				return ex, true
			}
		}
	}
	return PlannedExercise{}, false
}

func (m *Machine) findScheduledAnyDayLocked(exerciseName string) (PlannedExercise, string, bool) {
	for _, d := range m.state.Schedule {
		for _, ex := range d.Exercises {
			if ex.Name == exerciseName {
				return ex, d.Day, true
			}
		}
	}
	return PlannedExercise{}, "", false
}

// Close releases the timer engine. The machine must not be used afterwards.
func (m *Machine) Close() {
	m.engine.Close()
}
