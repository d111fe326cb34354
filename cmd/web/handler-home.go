package main

import (
	"net/http"
	"time"

	"github.com/bersitedi/MyWorkoutPlanner/internal/fitness"
)

type homeTemplateData struct {
	BaseTemplateData
	// Days contains one entry per plannable weekday.
	Days []dayOverview
	// Stats summarizes the user's workout history.
	Stats fitness.Stats
}

// dayOverview is a single weekday's card on the home page.
type dayOverview struct {
	// Name is the weekday name (e.g. "Monday")
	Name string
	// Focus describes the day's training emphasis
	Focus string
	// IsToday indicates if this is the current day
	IsToday bool
	// ExerciseCount is the number of exercises planned for the day
	ExerciseCount int
	// CompletedToday is the number of sessions recorded today for this day's plan
	CompletedToday int
}

func toDayOverviews(state *fitness.State, now time.Time) []dayOverview {
	today := now.Format("Monday")
	completedToday := map[string]int{}
	for _, session := range state.History {
		if session.Date.Format("2006-01-02") == now.Format("2006-01-02") {
			completedToday[session.Day]++
		}
	}

	days := make([]dayOverview, len(state.Schedule))
	for i, day := range state.Schedule {
		days[i] = dayOverview{
			Name:           day.Day,
			Focus:          day.Focus,
			IsToday:        day.Day == today,
			ExerciseCount:  len(day.Exercises),
			CompletedToday: completedToday[day.Day],
		}
	}
	return days
}

func (app *application) home(w http.ResponseWriter, r *http.Request) {
	data := homeTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
	}

	// Only fetch planner data for authenticated users
	if data.Authenticated {
		state := app.fitnessService.State(r.Context(), currentUserID(r))
		data.Days = toDayOverviews(state, time.Now())
		data.Stats = state.Stats
	}

	app.render(w, r, http.StatusOK, "home", data)
}
