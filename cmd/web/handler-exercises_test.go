package main

import (
	"net/http"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/bersitedi/MyWorkoutPlanner/internal/e2etest"
	"github.com/bersitedi/MyWorkoutPlanner/internal/testhelpers"
)

func Test_application_exercises(t *testing.T) {
	var (
		ctx = t.Context()
		doc *goquery.Document
	)
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()
	if _, err = client.Register(ctx, "browser@example.com", "correct horse battery"); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	t.Run("Catalog listing", func(t *testing.T) {
		doc, err = client.GetDoc(ctx, "/exercises")
		if err != nil {
			t.Fatalf("Failed to get document: %v", err)
		}

		if got := doc.Find(".exercise-card").Length(); got == 0 {
			t.Error("Expected the built-in catalog to be listed")
		}
		if got := doc.Find(".exercise-card h2:contains('Push-up')").Length(); got == 0 {
			t.Error("Expected Push-up in the catalog listing")
		}
	})

	t.Run("Search filters the catalog", func(t *testing.T) {
		doc, err = client.GetDoc(ctx, "/exercises?q=cardio")
		if err != nil {
			t.Fatalf("Failed to get document: %v", err)
		}

		if got := doc.Find(".exercise-card h2:contains('Jumping Jacks')").Length(); got == 0 {
			t.Error("Expected Jumping Jacks in the cardio results")
		}
		if got := doc.Find(".exercise-card h2:contains('Pull-up')").Length(); got != 0 {
			t.Error("Did not expect Pull-up in the cardio results")
		}
	})

	t.Run("Exercise details", func(t *testing.T) {
		doc, err = client.GetDoc(ctx, "/exercises/Push-up")
		if err != nil {
			t.Fatalf("Failed to get document: %v", err)
		}

		if got := doc.Find("h1:contains('Push-up')").Length(); got == 0 {
			t.Error("Expected the exercise name as the heading")
		}
		if got := doc.Find(".instructions ol li").Length(); got == 0 {
			t.Error("Expected rendered instructions")
		}
	})

	t.Run("Exercise details by catalog ID", func(t *testing.T) {
		doc, err = client.GetDoc(ctx, "/exercises/local-push-up")
		if err != nil {
			t.Fatalf("Failed to get document: %v", err)
		}

		if got := doc.Find("h1:contains('Push-up')").Length(); got == 0 {
			t.Error("Expected the ID link form to resolve to the same page")
		}
	})

	t.Run("Unknown exercise is not found", func(t *testing.T) {
		var resp *http.Response
		resp, err = client.Get(ctx, "/exercises/Telekinesis")
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
}
