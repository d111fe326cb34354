package main

import (
	"net/http"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/bersitedi/MyWorkoutPlanner/internal/e2etest"
	"github.com/bersitedi/MyWorkoutPlanner/internal/testhelpers"
)

func Test_application_planner(t *testing.T) {
	var (
		ctx = t.Context()
		doc *goquery.Document
	)
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()
	if _, err = client.Register(ctx, "planner@example.com", "correct horse battery"); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	t.Run("Default Monday schedule", func(t *testing.T) {
		doc, err = client.GetDoc(ctx, "/planner/Monday")
		if err != nil {
			t.Fatalf("Failed to get document: %v", err)
		}

		checkExercisePresence(t, doc, "Push-up", true)
		checkExercisePresence(t, doc, "Jumping Jacks", true)
		if got, want := doc.Find(".exercise-card").Length(), 2; got != want {
			t.Errorf("Expected %d exercise cards, found %d", want, got)
		}
	})

	t.Run("Unknown day is not found", func(t *testing.T) {
		var resp *http.Response
		resp, err = client.Get(ctx, "/planner/Someday")
		if err != nil {
			t.Fatalf("Failed to get response: %v", err)
		}
		defer func() {
			_ = resp.Body.Close()
		}()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status %d, got %d", http.StatusNotFound, resp.StatusCode)
		}
	})

	t.Run("Add exercise", func(t *testing.T) {
		doc, err = client.SubmitForm(ctx, doc, "/planner/Monday/exercises", map[string]string{
			"Exercise": "Squat",
			"Sets":     "4",
			"Reps":     "12-15",
		})
		if err != nil {
			t.Fatalf("Failed to submit form: %v", err)
		}

		checkExercisePresence(t, doc, "Squat", true)
		if got := doc.Find(".exercise-card:contains('4 sets of 12-15 reps')").Length(); got == 0 {
			t.Error("Expected the added exercise to carry the submitted sets and reps")
		}
	})

	t.Run("Replace exercise keeps the slot", func(t *testing.T) {
		doc, err = client.SubmitForm(ctx, doc, "/planner/Monday/exercises/Squat/replace", map[string]string{
			"Exercise": "Burpee",
		})
		if err != nil {
			t.Fatalf("Failed to submit form: %v", err)
		}

		checkExercisePresence(t, doc, "Squat", false)
		checkExercisePresence(t, doc, "Burpee", true)
		// The replacement takes over the last slot instead of reshuffling.
		if got, want := doc.Find(".exercise-card h2").Last().Text(), "Burpee"; got != want {
			t.Errorf("Expected last exercise %q, got %q", want, got)
		}
	})

	t.Run("Remove exercise", func(t *testing.T) {
		doc, err = client.SubmitForm(ctx, doc, "/planner/Monday/exercises/Burpee/remove", nil)
		if err != nil {
			t.Fatalf("Failed to submit form: %v", err)
		}

		checkExercisePresence(t, doc, "Burpee", false)
		if got, want := doc.Find(".exercise-card").Length(), 2; got != want {
			t.Errorf("Expected %d exercise cards, found %d", want, got)
		}
	})

	t.Run("Timer lifecycle", func(t *testing.T) {
		doc, err = client.SubmitForm(ctx, doc, "/planner/Monday/exercises/Push-up/timer/start", nil)
		if err != nil {
			t.Fatalf("Failed to submit form: %v", err)
		}
		if got := doc.Find(".timer.running").Length(); got != 1 {
			t.Errorf("Expected 1 running timer, found %d", got)
		}

		doc, err = client.SubmitForm(ctx, doc, "/planner/Monday/exercises/Push-up/timer/stop", nil)
		if err != nil {
			t.Fatalf("Failed to submit form: %v", err)
		}
		if got := doc.Find(".timer.running").Length(); got != 0 {
			t.Errorf("Expected no running timers, found %d", got)
		}
	})
}

func checkExercisePresence(t *testing.T, doc *goquery.Document, name string, expected bool) {
	t.Helper()
	found := doc.Find(".exercise-card h2:contains('" + name + "')").Length() > 0
	if found != expected {
		t.Errorf("Exercise %q presence: expected %v, got %v", name, expected, found)
	}
}
