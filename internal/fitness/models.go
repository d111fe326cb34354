// Package fitness implements the workout planner state machine: the weekly
// schedule, the append-only workout history, derived statistics, and the
// per-exercise countdown timers.
package fitness

import (
	"time"
)

// SchemaVersion is stored in every persisted snapshot so that future schema
// changes can migrate old payloads.
const SchemaVersion = 1

// ExerciseType distinguishes how an exercise is performed and how its
// calories and timer duration are estimated.
type ExerciseType string

const (
	TypeStrength ExerciseType = "strength"
	TypeCardio   ExerciseType = "cardio"
)

// Intensity is the effort tier for cardio exercises.
type Intensity string

const (
	IntensityLow      Intensity = "low"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

// Exercise is a catalog entry. It is immutable once fetched; the schedule
// references it but never mutates it.
type Exercise struct {
	ID                 string       `json:"id,omitempty"`
	Name               string       `json:"name"`
	Type               ExerciseType `json:"type,omitempty"`
	Level              string       `json:"level,omitempty"`
	Equipment          string       `json:"equipment,omitempty"`
	BodyPart           string       `json:"bodyPart,omitempty"`
	Target             string       `json:"target,omitempty"`
	PrimaryMuscles     []string     `json:"primaryMuscles,omitempty"`
	SecondaryMuscles   []string     `json:"secondaryMuscles,omitempty"`
	Instructions       []string     `json:"instructions,omitempty"`
	GifURL             string       `json:"gifUrl,omitempty"`
	CalorieBurnPerHour int          `json:"calorieBurnPerHour,omitempty"`
}

// PlannedExercise is an Exercise scheduled into a day with overrides for
// sets/reps (strength) or duration/intensity (cardio).
type PlannedExercise struct {
	Exercise
	Sets          int       `json:"sets,omitempty"`
	Reps          string    `json:"reps,omitempty"`
	Duration      string    `json:"duration,omitempty"`
	Intensity     Intensity `json:"intensity,omitempty"`
	Description   string    `json:"description,omitempty"`
	ScheduledDate string    `json:"scheduledDate,omitempty"`
}

// ScheduleDay is one weekday's ordered exercise list. Order is execution
// order and user-reorderable.
type ScheduleDay struct {
	Day       string            `json:"day"`
	Focus     string            `json:"focus,omitempty"`
	Exercises []PlannedExercise `json:"exercises"`
}

// CompletedSession records one finished exercise execution. Immutable once
// created; the history log is append-only apart from explicit user deletion.
type CompletedSession struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Type      ExerciseType `json:"type,omitempty"`
	Sets      int          `json:"sets,omitempty"`
	Reps      string       `json:"reps,omitempty"`
	Duration  int          `json:"duration,omitempty"` // seconds
	Intensity Intensity    `json:"intensity,omitempty"`
	Calories  float64      `json:"calories"`
	Date      time.Time    `json:"date"`
	Day       string       `json:"day,omitempty"`
}

// Stats are derived from the history log. They are recomputed from scratch on
// every change, never incrementally patched, to avoid drift.
type Stats struct {
	TotalWorkouts  int                  `json:"totalWorkouts"`
	WorkoutsByType map[ExerciseType]int `json:"workoutsByType"`
	LastWorkout    *CompletedSession    `json:"lastWorkout,omitempty"`
	StreakDays     int                  `json:"streakDays"`
}

// TimerState is the externally visible state of one exercise countdown.
// Ephemeral: timers are never persisted across sessions.
type TimerState struct {
	TimeLeft  int
	TotalTime int
	Running   bool
}

// State is the root fitness state value. All mutation goes through the
// reducer via Machine.Dispatch; treat reachable values as immutable.
type State struct {
	SchemaVersion int                `json:"schemaVersion"`
	Catalog       []Exercise         `json:"exercises"`
	Schedule      []ScheduleDay      `json:"workoutSchedule"`
	History       []CompletedSession `json:"workoutHistory"`
	Stats         Stats              `json:"stats"`
}

// SessionUpdate carries the mutable fields of an UpdateWorkout action. Nil
// fields are left unchanged.
type SessionUpdate struct {
	Sets     *int
	Reps     *string
	Duration *int
	Calories *float64
}
