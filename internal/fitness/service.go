package fitness

import (
	"context"
	"log/slog"
	"sync"
)

// Service routes operations to per-user Machines, creating each lazily on
// first use. Machines live for the lifetime of the process; their snapshots
// make restarts cheap.
type Service struct {
	mu       sync.Mutex
	machines map[int64]*Machine
	store    Store
	logger   *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{
		machines: map[int64]*Machine{},
		store:    store,
		logger:   logger,
	}
}

func (s *Service) machine(ctx context.Context, userID int64) *Machine {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.machines[userID]
	if !ok {
		m = NewMachine(ctx, userID, s.store, s.logger)
		s.machines[userID] = m
	}
	return m
}

// State returns the user's current planner state.
func (s *Service) State(ctx context.Context, userID int64) *State {
	return s.machine(ctx, userID).State()
}

func (s *Service) AddExerciseToDay(ctx context.Context, userID int64, day string, ex PlannedExercise) *State {
	return s.machine(ctx, userID).Dispatch(ctx, AddExerciseToDay{Day: day, Exercise: ex})
}

func (s *Service) RemoveExerciseFromDay(ctx context.Context, userID int64, day, exerciseName string) *State {
	return s.machine(ctx, userID).Dispatch(ctx, RemoveExerciseFromDay{Day: day, ExerciseName: exerciseName})
}

func (s *Service) ReplaceExerciseInDay(ctx context.Context, userID int64, day, exerciseName string, replacement PlannedExercise) *State {
	return s.machine(ctx, userID).Dispatch(ctx, ReplaceExerciseInDay{Day: day, ExerciseName: exerciseName, Replacement: replacement})
}

func (s *Service) ReorderDayExercises(ctx context.Context, userID int64, day string, exercises []PlannedExercise) *State {
	return s.machine(ctx, userID).Dispatch(ctx, ReorderDayExercises{Day: day, Exercises: exercises})
}

func (s *Service) CompleteExercise(ctx context.Context, userID int64, day, exerciseName string) (*State, error) {
	return s.machine(ctx, userID).CompleteExercise(ctx, day, exerciseName)
}

func (s *Service) UpdateWorkout(ctx context.Context, userID, sessionID int64, update SessionUpdate) *State {
	return s.machine(ctx, userID).Dispatch(ctx, UpdateWorkout{ID: sessionID, Update: update})
}

func (s *Service) DeleteWorkout(ctx context.Context, userID, sessionID int64) *State {
	return s.machine(ctx, userID).Dispatch(ctx, DeleteWorkout{ID: sessionID})
}

func (s *Service) StartTimer(ctx context.Context, userID int64, day, exerciseName string) error {
	return s.machine(ctx, userID).StartTimer(day, exerciseName)
}

func (s *Service) StopTimer(ctx context.Context, userID int64, exerciseName string) (elapsedSeconds int, ok bool) {
	return s.machine(ctx, userID).StopTimer(exerciseName)
}

func (s *Service) Timers(ctx context.Context, userID int64) map[string]TimerState {
	return s.machine(ctx, userID).Timers()
}

// Close releases every user's timer engine.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.machines {
		m.Close()
	}
	s.machines = map[int64]*Machine{}
}
