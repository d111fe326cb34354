package main

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/bersitedi/MyWorkoutPlanner/internal/e2etest"
	"github.com/bersitedi/MyWorkoutPlanner/internal/testhelpers"
)

func Test_application_progress(t *testing.T) {
	var (
		ctx = t.Context()
		doc *goquery.Document
	)
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()
	if _, err = client.Register(ctx, "progress@example.com", "correct horse battery"); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	t.Run("Empty history", func(t *testing.T) {
		doc, err = client.GetDoc(ctx, "/progress")
		if err != nil {
			t.Fatalf("Failed to get document: %v", err)
		}

		if got := doc.Find("p.empty").Length(); got != 1 {
			t.Errorf("Expected the empty state message, found %d", got)
		}
		if got := doc.Find(".stats-summary:contains('Total workouts: 0')").Length(); got == 0 {
			t.Error("Expected zero total workouts")
		}
	})

	t.Run("Completing an exercise records a workout", func(t *testing.T) {
		doc, err = client.GetDoc(ctx, "/planner/Monday")
		if err != nil {
			t.Fatalf("Failed to get document: %v", err)
		}
		if _, err = client.SubmitForm(ctx, doc, "/planner/Monday/exercises/Push-up/complete", nil); err != nil {
			t.Fatalf("Failed to submit form: %v", err)
		}

		doc, err = client.GetDoc(ctx, "/progress")
		if err != nil {
			t.Fatalf("Failed to get document: %v", err)
		}

		if got := doc.Find(".stats-summary:contains('Total workouts: 1')").Length(); got == 0 {
			t.Error("Expected one total workout")
		}
		if got := doc.Find(".stats-summary:contains('Streak: 1 days')").Length(); got == 0 {
			t.Error("Expected a one-day streak")
		}
		if got := doc.Find("table.history tbody tr").Length(); got != 1 {
			t.Errorf("Expected 1 history row, found %d", got)
		}
		// 3 sets of 12 reps at half a calorie per rep.
		if got := doc.Find("table.history td:contains('18')").Length(); got == 0 {
			t.Error("Expected the recorded calories in the history table")
		}
	})

	t.Run("Editing a workout corrects the record", func(t *testing.T) {
		form := doc.Find("table.history form[action$='/update']")
		action, exists := form.Attr("action")
		if !exists {
			t.Fatal("Expected an edit form in the history table")
		}

		doc, err = client.SubmitForm(ctx, doc, action, map[string]string{
			"Sets":     "5",
			"Calories": "30",
		})
		if err != nil {
			t.Fatalf("Failed to submit form: %v", err)
		}

		if got := doc.Find("table.history td:contains('5x12-15')").Length(); got == 0 {
			t.Error("Expected the corrected sets in the history table")
		}
		if got := doc.Find("table.history td:contains('30')").Length(); got == 0 {
			t.Error("Expected the corrected calories in the history table")
		}
	})

	t.Run("Deleting a workout clears the history", func(t *testing.T) {
		form := doc.Find("table.history form[action$='/delete']")
		action, exists := form.Attr("action")
		if !exists {
			t.Fatal("Expected a delete form in the history table")
		}

		doc, err = client.SubmitForm(ctx, doc, action, nil)
		if err != nil {
			t.Fatalf("Failed to submit form: %v", err)
		}

		if got := doc.Find("p.empty").Length(); got != 1 {
			t.Errorf("Expected the empty state message, found %d", got)
		}
		if got := doc.Find(".stats-summary:contains('Total workouts: 0')").Length(); got == 0 {
			t.Error("Expected zero total workouts after deletion")
		}
	})
}
