package main

import (
	"net/http"

	"github.com/bersitedi/MyWorkoutPlanner/internal/errors"
	"github.com/bersitedi/MyWorkoutPlanner/internal/fitness"
)

// timerStartPOST starts the countdown for a scheduled exercise. Starting an
// already running timer leaves the countdown untouched.
func (app *application) timerStartPOST(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}
	exerciseName := r.PathValue("exercise")

	err := app.fitnessService.StartTimer(r.Context(), currentUserID(r), day, exerciseName)
	if errors.Is(err, fitness.ErrExerciseNotScheduled) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	redirect(w, r, "/planner/"+day)
}

// timerStopPOST cancels a running countdown without recording a session.
func (app *application) timerStopPOST(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}
	exerciseName := r.PathValue("exercise")

	// Stopping a timer that is not running is a no-op.
	app.fitnessService.StopTimer(r.Context(), currentUserID(r), exerciseName)
	redirect(w, r, "/planner/"+day)
}

// workoutCompletePOST records a completed session for a scheduled exercise,
// stopping its timer if one is running.
func (app *application) workoutCompletePOST(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}
	exerciseName := r.PathValue("exercise")

	_, err := app.fitnessService.CompleteExercise(r.Context(), currentUserID(r), day, exerciseName)
	if errors.Is(err, fitness.ErrExerciseNotScheduled) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	redirect(w, r, "/planner/"+day)
}
