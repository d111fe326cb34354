package fitness

// Action is the closed set of state transitions understood by the reducer.
// Using a sealed interface instead of string tags makes an unrecognized
// action a compile-time impossibility.
type Action interface {
	isAction()
}

// AddExerciseToDay appends an exercise to the named day's list. Unknown
// weekdays are a no-op; callers validate upstream with IsWeekday.
type AddExerciseToDay struct {
	Day      string
	Exercise PlannedExercise
}

// RemoveExerciseFromDay removes every entry with the given exercise name from
// the named day. No-op when the day or exercise is absent.
type RemoveExerciseFromDay struct {
	Day          string
	ExerciseName string
}

// ReplaceExerciseInDay swaps one exercise for another in place, atomically.
// The replacement takes the slot of the removed exercise so a reader between
// dispatches can never observe a transiently missing entry.
type ReplaceExerciseInDay struct {
	Day          string
	ExerciseName string
	Replacement  PlannedExercise
}

// ReorderDayExercises replaces a day's exercise list wholesale with a
// caller-supplied permutation. The reducer trusts the caller to preserve the
// multiset of exercise identities.
type ReorderDayExercises struct {
	Day       string
	Exercises []PlannedExercise
}

// CompleteWorkout prepends a session to the history log, unconditionally and
// without deduplication.
type CompleteWorkout struct {
	Session CompletedSession
}

// UpdateWorkout merges the non-nil fields of Update into the history entry
// with the matching ID. No-op when the ID is absent.
type UpdateWorkout struct {
	ID     int64
	Update SessionUpdate
}

// DeleteWorkout removes the history entry with the matching ID.
type DeleteWorkout struct {
	ID int64
}

// SetWorkoutHistory bulk-replaces the history log, used when hydrating a
// user's history from storage.
type SetWorkoutHistory struct {
	History []CompletedSession
}

// UpdateStats bulk-replaces the derived statistics.
type UpdateStats struct {
	Stats Stats
}

// UpdateSchedule bulk-replaces the weekly schedule.
type UpdateSchedule struct {
	Schedule []ScheduleDay
}

func (AddExerciseToDay) isAction()      {}
func (RemoveExerciseFromDay) isAction() {}
func (ReplaceExerciseInDay) isAction()  {}
func (ReorderDayExercises) isAction()   {}
func (CompleteWorkout) isAction()       {}
func (UpdateWorkout) isAction()         {}
func (DeleteWorkout) isAction()         {}
func (SetWorkoutHistory) isAction()     {}
func (UpdateStats) isAction()           {}
func (UpdateSchedule) isAction()        {}
