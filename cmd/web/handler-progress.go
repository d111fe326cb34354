package main

import (
	"net/http"
	"strconv"

	"github.com/bersitedi/MyWorkoutPlanner/internal/fitness"
	"github.com/bersitedi/MyWorkoutPlanner/internal/ptr"
)

type progressTemplateData struct {
	BaseTemplateData
	Stats   fitness.Stats
	History []fitness.CompletedSession
}

// progressGET renders the workout history with derived statistics.
func (app *application) progressGET(w http.ResponseWriter, r *http.Request) {
	state := app.fitnessService.State(r.Context(), currentUserID(r))

	data := progressTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Stats:            state.Stats,
		History:          state.History,
	}

	app.render(w, r, http.StatusOK, "progress", data)
}

// progressUpdatePOST corrects the recorded sets, reps or calories of one
// history entry. Blank fields are left unchanged.
func (app *application) progressUpdatePOST(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := app.parseSessionIDParam(w, r)
	if !ok {
		return
	}

	var update fitness.SessionUpdate
	if v := r.PostFormValue("sets"); v != "" {
		if sets, err := strconv.Atoi(v); err == nil {
			update.Sets = ptr.Ref(sets)
		}
	}
	if v := r.PostFormValue("reps"); v != "" {
		update.Reps = ptr.Ref(v)
	}
	if v := r.PostFormValue("calories"); v != "" {
		if calories, err := strconv.ParseFloat(v, 64); err == nil {
			update.Calories = ptr.Ref(calories)
		}
	}

	app.fitnessService.UpdateWorkout(r.Context(), currentUserID(r), sessionID, update)
	redirect(w, r, "/progress")
}

// progressDeletePOST removes one history entry. Deleting an unknown entry is
// a no-op.
func (app *application) progressDeletePOST(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := app.parseSessionIDParam(w, r)
	if !ok {
		return
	}

	app.fitnessService.DeleteWorkout(r.Context(), currentUserID(r), sessionID)
	redirect(w, r, "/progress")
}
