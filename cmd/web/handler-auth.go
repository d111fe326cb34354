package main

import (
	"net/http"

	"github.com/bersitedi/MyWorkoutPlanner/internal/auth"
	"github.com/bersitedi/MyWorkoutPlanner/internal/errors"
)

// signUpPOST creates an account from the sign-up form and logs the user in.
func (app *application) signUpPOST(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	_, err := app.authService.SignUp(r.Context(), email, password)
	switch {
	case errors.Is(err, auth.ErrAccountExists):
		app.renderAuthError(w, r, "An account with that email already exists.")
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		app.renderAuthError(w, r, "Please provide a valid email and a password of at least 8 characters.")
		return
	case err != nil:
		app.serverError(w, r, err)
		return
	}

	redirect(w, r, "/")
}

// logInPOST authenticates the credentials from the log-in form.
func (app *application) logInPOST(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	_, err := app.authService.LogIn(r.Context(), email, password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		app.renderAuthError(w, r, "Incorrect email or password.")
		return
	case err != nil:
		app.serverError(w, r, err)
		return
	}

	redirect(w, r, "/")
}

// logOutPOST drops the session and returns to the home page.
func (app *application) logOutPOST(w http.ResponseWriter, r *http.Request) {
	if err := app.authService.LogOut(r.Context()); err != nil {
		app.serverError(w, r, err)
		return
	}
	redirect(w, r, "/")
}

type authErrorTemplateData struct {
	BaseTemplateData
	Message string
}

func (app *application) renderAuthError(w http.ResponseWriter, r *http.Request, message string) {
	data := authErrorTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Message:          message,
	}
	app.render(w, r, http.StatusUnprocessableEntity, "auth-error", data)
}
