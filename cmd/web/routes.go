package main

import (
	"fmt"
	"net/http"
)

func (app *application) routes() (*http.ServeMux, error) {
	mux := http.NewServeMux()

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
				commonContext(app.timeout(next)))))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.authService.Authenticate(shared(next)))))
		}
		mustSession = func(next http.Handler) http.Handler {
			return session(app.mustAuthenticate(next))
		}
	)

	mux.Handle("GET /planner/{day}", mustSession(http.HandlerFunc(app.plannerDayGET)))
	mux.Handle("POST /planner/{day}/exercises", mustSession(http.HandlerFunc(app.plannerAddExercisePOST)))
	mux.Handle("POST /planner/{day}/exercises/{exercise}/remove",
		mustSession(http.HandlerFunc(app.plannerRemoveExercisePOST)))
	mux.Handle("POST /planner/{day}/exercises/{exercise}/replace",
		mustSession(http.HandlerFunc(app.plannerReplaceExercisePOST)))
	mux.Handle("POST /planner/{day}/reorder", mustSession(http.HandlerFunc(app.plannerReorderPOST)))

	mux.Handle("POST /planner/{day}/exercises/{exercise}/timer/start",
		mustSession(http.HandlerFunc(app.timerStartPOST)))
	mux.Handle("POST /planner/{day}/exercises/{exercise}/timer/stop",
		mustSession(http.HandlerFunc(app.timerStopPOST)))
	mux.Handle("POST /planner/{day}/exercises/{exercise}/complete",
		mustSession(http.HandlerFunc(app.workoutCompletePOST)))

	mux.Handle("GET /progress", mustSession(http.HandlerFunc(app.progressGET)))
	mux.Handle("POST /progress/{sessionID}/update", mustSession(http.HandlerFunc(app.progressUpdatePOST)))
	mux.Handle("POST /progress/{sessionID}/delete", mustSession(http.HandlerFunc(app.progressDeletePOST)))

	mux.Handle("GET /exercises", mustSession(http.HandlerFunc(app.exercisesGET)))
	mux.Handle("GET /exercises/{exercise}", mustSession(http.HandlerFunc(app.exerciseInfoGET)))

	mux.Handle("POST /api/signup", session(http.HandlerFunc(app.signUpPOST)))
	mux.Handle("POST /api/login", session(http.HandlerFunc(app.logInPOST)))
	mux.Handle("POST /api/logout", session(http.HandlerFunc(app.logOutPOST)))
	mux.Handle("GET /api/healthy", session(http.HandlerFunc(app.healthy)))

	// Home route (most specific)
	mux.Handle("GET /{$}", session(http.HandlerFunc(app.home)))

	// File server with custom 404 handling
	fileServerHandler, err := app.fileServerHandler()
	if err != nil {
		return nil, fmt.Errorf("fileServerHandler: %w", err)
	}
	mux.Handle("/", fileServerHandler)

	return mux, nil
}
