package main

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bersitedi/MyWorkoutPlanner/internal/contexthelpers"
	"github.com/bersitedi/MyWorkoutPlanner/internal/fitness"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", slog.Any("error", err))
	app.render(w, r, http.StatusInternalServerError, "error", newBaseTemplateData(r))
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusNotFound, "not-found", newBaseTemplateData(r))
}

// redirect detects if the request is originating from a fetch API call or a top-level navigation and points the user
// to the correct URL.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	if r.Header.Get("Sec-Fetch-Dest") == "empty" {
		w.Header().Set("Content-Location", path)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, path, http.StatusSeeOther)
}

// parseDayParam parses the "day" path parameter from the request URL.
// Returns the weekday name and true, or sends HTTP 404 and returns false when
// the parameter is not a plannable weekday.
func (app *application) parseDayParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	day := r.PathValue("day")
	if !fitness.IsWeekday(day) {
		http.NotFound(w, r)
		return "", false
	}
	return day, true
}

// parseSessionIDParam parses the "sessionID" path parameter from the request URL.
func (app *application) parseSessionIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	sessionID, err := strconv.ParseInt(r.PathValue("sessionID"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return 0, false
	}
	return sessionID, true
}

// currentUserID returns the authenticated user's ID from the request context.
func currentUserID(r *http.Request) int64 {
	return contexthelpers.AuthenticatedUserID(r.Context())
}
