package main

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bersitedi/MyWorkoutPlanner/internal/fitness"
)

type plannerTemplateData struct {
	BaseTemplateData
	Day       string
	Focus     string
	Exercises []plannedExerciseView
	Timers    map[string]fitness.TimerState
	// Suggestions lists catalog exercises that can be added to the day.
	Suggestions []fitness.Exercise
}

type plannedExerciseView struct {
	fitness.PlannedExercise
	// TimerSeconds is the full countdown length for the exercise.
	TimerSeconds int
	// Timer is the running countdown, if any.
	Timer *fitness.TimerState
}

// plannerDayGET renders one weekday's exercise list with its timers.
func (app *application) plannerDayGET(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}

	userID := currentUserID(r)
	state := app.fitnessService.State(r.Context(), userID)
	timers := app.fitnessService.Timers(r.Context(), userID)

	data := plannerTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Day:              day,
		Timers:           timers,
		Suggestions:      app.catalogService.List(r.Context()),
	}
	for _, d := range state.Schedule {
		if d.Day != day {
			continue
		}
		data.Focus = d.Focus
		for _, ex := range d.Exercises {
			view := plannedExerciseView{
				PlannedExercise: ex,
				TimerSeconds:    fitness.TimerSeconds(ex),
			}
			if timer, running := timers[ex.Name]; running {
				view.Timer = &timer
			}
			data.Exercises = append(data.Exercises, view)
		}
	}

	app.render(w, r, http.StatusOK, "planner", data)
}

// parseExerciseForm builds a planned exercise from the submitted form,
// resolving the exercise through the catalog.
func (app *application) parseExerciseForm(r *http.Request) (fitness.PlannedExercise, error) {
	name := strings.TrimSpace(r.PostFormValue("exercise"))
	exercise, err := app.catalogService.Get(r.Context(), name)
	if err != nil {
		return fitness.PlannedExercise{}, err
	}

	planned := fitness.PlannedExercise{Exercise: exercise}
	if exercise.Type == fitness.TypeCardio {
		planned.Duration = r.PostFormValue("duration")
		if planned.Duration == "" {
			planned.Duration = "10 minutes"
		}
		planned.Intensity = fitness.Intensity(r.PostFormValue("intensity"))
		if planned.Intensity == "" {
			planned.Intensity = fitness.IntensityModerate
		}
	} else {
		planned.Sets, _ = strconv.Atoi(r.PostFormValue("sets"))
		if planned.Sets == 0 {
			planned.Sets = 3
		}
		planned.Reps = r.PostFormValue("reps")
		if planned.Reps == "" {
			planned.Reps = "10-12"
		}
	}
	return planned, nil
}

// plannerAddExercisePOST appends an exercise to the day.
func (app *application) plannerAddExercisePOST(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}

	planned, err := app.parseExerciseForm(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.fitnessService.AddExerciseToDay(r.Context(), currentUserID(r), day, planned)
	redirect(w, r, "/planner/"+day)
}

// plannerRemoveExercisePOST removes the named exercise from the day.
func (app *application) plannerRemoveExercisePOST(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}
	exerciseName := r.PathValue("exercise")

	app.fitnessService.RemoveExerciseFromDay(r.Context(), currentUserID(r), day, exerciseName)
	redirect(w, r, "/planner/"+day)
}

// plannerReplaceExercisePOST swaps the named exercise for the one submitted in
// the form, keeping its position in the day.
func (app *application) plannerReplaceExercisePOST(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}
	exerciseName := r.PathValue("exercise")

	replacement, err := app.parseExerciseForm(r)
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	app.fitnessService.ReplaceExerciseInDay(r.Context(), currentUserID(r), day, exerciseName, replacement)
	redirect(w, r, "/planner/"+day)
}

// plannerReorderPOST applies a new exercise order submitted as a comma-separated
// list of exercise names. Names not currently on the day are ignored.
func (app *application) plannerReorderPOST(w http.ResponseWriter, r *http.Request) {
	day, ok := app.parseDayParam(w, r)
	if !ok {
		return
	}

	userID := currentUserID(r)
	state := app.fitnessService.State(r.Context(), userID)
	var current []fitness.PlannedExercise
	for _, d := range state.Schedule {
		if d.Day == day {
			current = d.Exercises
		}
	}

	byName := make(map[string]fitness.PlannedExercise, len(current))
	for _, ex := range current {
		byName[ex.Name] = ex
	}

	var reordered []fitness.PlannedExercise
	for _, name := range strings.Split(r.PostFormValue("order"), ",") {
		if ex, ok := byName[strings.TrimSpace(name)]; ok {
			reordered = append(reordered, ex)
			delete(byName, ex.Name)
		}
	}
	// Keep exercises missing from the submitted order instead of dropping them.
	for _, ex := range current {
		if _, left := byName[ex.Name]; left {
			reordered = append(reordered, ex)
		}
	}

	app.fitnessService.ReorderDayExercises(r.Context(), userID, day, reordered)
	redirect(w, r, "/planner/"+day)
}
