package fitness

// Apply is the reducer: a pure, total transition function. Every action maps
// to a defined transition; operations on an unknown weekday or a missing
// entry return the state argument unchanged, so callers can detect "no
// change" by pointer identity. No transition ever panics or returns an error.
func Apply(state *State, action Action) *State {
	switch a := action.(type) {
	case AddExerciseToDay:
		return applyToDay(state, a.Day, func(day ScheduleDay) ScheduleDay {
			exercises := make([]PlannedExercise, 0, len(day.Exercises)+1)
			exercises = append(exercises, day.Exercises...)
			day.Exercises = append(exercises, a.Exercise)
			return day
		})

	case RemoveExerciseFromDay:
		if !dayContains(state, a.Day, a.ExerciseName) {
			return state
		}
		return applyToDay(state, a.Day, func(day ScheduleDay) ScheduleDay {
			exercises := make([]PlannedExercise, 0, len(day.Exercises))
			for _, ex := range day.Exercises {
				if ex.Name != a.ExerciseName {
					exercises = append(exercises, ex)
				}
			}
			day.Exercises = exercises
			return day
		})

	case ReplaceExerciseInDay:
		if !dayContains(state, a.Day, a.ExerciseName) {
			return state
		}
		return applyToDay(state, a.Day, func(day ScheduleDay) ScheduleDay {
			exercises := make([]PlannedExercise, len(day.Exercises))
			copy(exercises, day.Exercises)
			for i, ex := range exercises {
				if ex.Name == a.ExerciseName {
					exercises[i] = a.Replacement
				}
			}
			day.Exercises = exercises
			return day
		})

	case ReorderDayExercises:
		return applyToDay(state, a.Day, func(day ScheduleDay) ScheduleDay {
			day.Exercises = a.Exercises
			return day
		})

	case CompleteWorkout:
		// History is kept most-recent-first.
		history := make([]CompletedSession, 0, len(state.History)+1)
		history = append(history, a.Session)
		history = append(history, state.History...)
		next := *state
		next.History = history
		return &next

	case UpdateWorkout:
		updated := false
		history := make([]CompletedSession, len(state.History))
		copy(history, state.History)
		for i, session := range history {
			if session.ID != a.ID {
				continue
			}
			history[i] = mergeSessionUpdate(session, a.Update)
			updated = true
		}
		if !updated {
			return state
		}
		next := *state
		next.History = history
		return &next

	case DeleteWorkout:
		history := make([]CompletedSession, 0, len(state.History))
		for _, session := range state.History {
			if session.ID != a.ID {
				history = append(history, session)
			}
		}
		if len(history) == len(state.History) {
			return state
		}
		next := *state
		next.History = history
		return &next

	case SetWorkoutHistory:
		next := *state
		next.History = a.History
		return &next

	case UpdateStats:
		next := *state
		next.Stats = a.Stats
		return &next

	case UpdateSchedule:
		next := *state
		next.Schedule = a.Schedule
		return &next
	}

	return state
}

// dayContains reports whether the named exercise is scheduled on the day.
// Remove and replace use it to stay no-ops on a missing entry, keeping the
// same-pointer contract the history actions follow.
func dayContains(state *State, day, exerciseName string) bool {
	for _, d := range state.Schedule {
		if d.Day != day {
			continue
		}
		for _, ex := range d.Exercises {
			if ex.Name == exerciseName {
				return true
			}
		}
	}
	return false
}

// applyToDay rebuilds the schedule with transform applied to the named day.
// Returns state unchanged when the weekday is not part of the schedule.
func applyToDay(state *State, day string, transform func(ScheduleDay) ScheduleDay) *State {
	index := -1
	for i, d := range state.Schedule {
		if d.Day == day {
			index = i
			break
		}
	}
	if index == -1 {
		return state
	}

	schedule := make([]ScheduleDay, len(state.Schedule))
	copy(schedule, state.Schedule)
	schedule[index] = transform(schedule[index])

	next := *state
	next.Schedule = schedule
	return &next
}

func mergeSessionUpdate(session CompletedSession, update SessionUpdate) CompletedSession {
	if update.Sets != nil {
		session.Sets = *update.Sets
	}
	if update.Reps != nil {
		session.Reps = *update.Reps
	}
	if update.Duration != nil {
		session.Duration = *update.Duration
	}
	if update.Calories != nil {
		session.Calories = *update.Calories
	}
	return session
}
