package main

import (
	"net/http"
	"strings"

	"github.com/bersitedi/MyWorkoutPlanner/internal/catalog"
	"github.com/bersitedi/MyWorkoutPlanner/internal/errors"
	"github.com/bersitedi/MyWorkoutPlanner/internal/fitness"
)

type exercisesTemplateData struct {
	BaseTemplateData
	Query     string
	Exercises []fitness.Exercise
}

// exercisesGET renders the exercise catalog, filtered by the q query
// parameter when present.
func (app *application) exercisesGET(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))

	var exercises []fitness.Exercise
	if query == "" {
		exercises = app.catalogService.List(r.Context())
	} else {
		exercises = app.catalogService.Search(r.Context(), query)
	}

	data := exercisesTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Query:            query,
		Exercises:        exercises,
	}

	app.render(w, r, http.StatusOK, "exercises", data)
}

type exerciseInfoTemplateData struct {
	BaseTemplateData
	Exercise fitness.Exercise
	// InstructionsMarkdown is the instruction list as a markdown document.
	InstructionsMarkdown string
}

// exerciseInfoGET renders one exercise's detail page. The path segment is
// resolved as a name first and as a catalog ID second, so both link forms
// work.
func (app *application) exerciseInfoGET(w http.ResponseWriter, r *http.Request) {
	exerciseName := r.PathValue("exercise")

	exercise, err := app.catalogService.Get(r.Context(), exerciseName)
	if errors.Is(err, catalog.ErrExerciseNotFound) {
		exercise, err = app.catalogService.GetByID(r.Context(), exerciseName)
	}
	if errors.Is(err, catalog.ErrExerciseNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}

	var markdown strings.Builder
	for i, instruction := range exercise.Instructions {
		markdown.WriteString("1. ")
		markdown.WriteString(instruction)
		if i < len(exercise.Instructions)-1 {
			markdown.WriteString("\n")
		}
	}

	data := exerciseInfoTemplateData{
		BaseTemplateData:     newBaseTemplateData(r),
		Exercise:             exercise,
		InstructionsMarkdown: markdown.String(),
	}

	app.render(w, r, http.StatusOK, "exercise-info", data)
}
